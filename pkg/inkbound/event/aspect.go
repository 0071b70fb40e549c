package event

import "strings"

// AspectKind enumerates the known Inkbound character classes.
type AspectKind int

const (
	// AspectUnknown is a class code this package does not recognize.
	// The code found in the log is kept in Aspect.Code.
	AspectUnknown AspectKind = iota
	MagmaMiner
	Mosscloak
	Clairvoyant
	Weaver
	Obelisk
	StarCaptain
	Chainbreaker
	Godkeeper
)

// Aspect is a player's class. Known classes are identified by Kind alone;
// unrecognized classes keep the code found in the log so they can still be
// displayed and told apart.
type Aspect struct {
	Kind AspectKind
	Code string // only set when Kind == AspectUnknown
}

type aspectInfo struct {
	kind    AspectKind
	code    string
	display string
}

// aspects is the canonical class table. C06 has never been seen with a
// name and is deliberately absent, so it surfaces as an unknown code.
var aspects = []aspectInfo{
	{MagmaMiner, "C01", "Magma Miner"},
	{Mosscloak, "C02", "Mosscloak"},
	{Clairvoyant, "C03", "Clairvoyant"},
	{Weaver, "C04", "Weaver"},
	{Obelisk, "C05", "Obelisk"},
	{StarCaptain, "C07", "Star Captain"},
	{Chainbreaker, "C08", "Chainbreaker"},
	{Godkeeper, "C09", "Godkeeper"},
}

var (
	aspectByCode = func() map[string]AspectKind {
		m := make(map[string]AspectKind, len(aspects))
		for _, a := range aspects {
			m[a.code] = a.kind
		}
		return m
	}()

	aspectByDisplay = func() map[string]AspectKind {
		m := make(map[string]AspectKind, len(aspects))
		for _, a := range aspects {
			m[strings.ToLower(a.display)] = a.kind
		}
		return m
	}()
)

// AspectFromCode translates the class code written by the game (e.g. "C02").
func AspectFromCode(code string) Aspect {
	if kind, ok := aspectByCode[code]; ok {
		return Aspect{Kind: kind}
	}
	return UnknownAspect(code)
}

// UnknownAspect returns the fallback aspect carrying code.
func UnknownAspect(code string) Aspect {
	return Aspect{Kind: AspectUnknown, Code: code}
}

// Known reports whether the aspect is one of the recognized classes.
func (a Aspect) Known() bool {
	return a.Kind != AspectUnknown
}

// String returns the display name, or the raw code for unknown classes.
func (a Aspect) String() string {
	for _, info := range aspects {
		if info.kind == a.Kind {
			return info.display
		}
	}
	return a.Code
}

// GameCode returns the class code as the game writes it.
func (a Aspect) GameCode() string {
	for _, info := range aspects {
		if info.kind == a.Kind {
			return info.code
		}
	}
	return a.Code
}

// MarshalText implements encoding.TextMarshaler.
func (a Aspect) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Accepts a game code or a display name; anything else becomes an unknown
// aspect holding the text.
func (a *Aspect) UnmarshalText(text []byte) error {
	s := string(text)
	if kind, ok := aspectByCode[s]; ok {
		*a = Aspect{Kind: kind}
		return nil
	}
	if kind, ok := aspectByDisplay[strings.ToLower(s)]; ok {
		*a = Aspect{Kind: kind}
		return nil
	}
	*a = UnknownAspect(s)
	return nil
}

// Aspects returns every known aspect in class code order.
func Aspects() []Aspect {
	out := make([]Aspect, len(aspects))
	for i, info := range aspects {
		out[i] = Aspect{Kind: info.kind}
	}
	return out
}
