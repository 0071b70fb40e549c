package inkbound

import (
	"log/slog"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/inkbound-tools/inkbound-go/internal/parser"
	"github.com/inkbound-tools/inkbound-go/pkg/inkbound/event"
)

// WarnRateLimit is the maximum number of parser warnings logged per second.
// A log with a broken name registration can produce one warning per orb.
const WarnRateLimit = 5

// ParserOption configures a LogParser.
type ParserOption func(*LogParser)

// WithParserLogger sets the logger used for dropped lines and warnings.
// If logger is nil, logging is disabled (default behavior).
func WithParserLogger(logger *slog.Logger) ParserOption {
	return func(p *LogParser) {
		if logger != nil {
			p.log = logger
		}
	}
}

// WithRawLines attaches the source line to every emitted event.
func WithRawLines(include bool) ParserOption {
	return func(p *LogParser) {
		p.includeRawLine = include
	}
}

// LogParser turns log lines into events.
//
// It remembers which handles belong to which player names and classes, so
// the order lines are fed in matters. A LogParser is not safe for concurrent
// use; give every reader its own.
type LogParser struct {
	names   map[int64]string
	aspects map[int64]event.Aspect

	includeRawLine bool
	log            *slog.Logger
	warnLimiter    *rate.Limiter
}

// NewLogParser returns a parser with empty identity caches.
func NewLogParser(opts ...ParserOption) *LogParser {
	p := &LogParser{
		names:       make(map[int64]string),
		aspects:     make(map[int64]event.Aspect),
		log:         discardLogger,
		warnLimiter: rate.NewLimiter(WarnRateLimit, WarnRateLimit),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// ParseLine parses a single line. It returns false when the line produces
// no event: unrecognized lines, identity registrations and orb pickups by
// unknown handles.
func (p *LogParser) ParseLine(line string) (event.Event, bool) {
	res, err := parser.Classify(line)
	if err != nil {
		p.log.Debug("skipping malformed line", "error", err)
		return event.Event{}, false
	}

	ev, ok := p.convert(res)
	if ok && p.includeRawLine {
		ev.RawLine = line
	}
	return ev, ok
}

// ParseLines parses lines in order and returns the events they produce.
// May return an empty slice if no lines are useful.
func (p *LogParser) ParseLines(lines []string) []event.Event {
	events := make([]event.Event, 0, len(lines)/4)
	for _, line := range lines {
		if ev, ok := p.ParseLine(line); ok {
			events = append(events, ev)
		}
	}
	return events
}

func (p *LogParser) convert(res parser.Result) (event.Event, bool) {
	switch res.Kind {
	case parser.KindEvent:
		return *res.Event, true

	case parser.KindRegisterName:
		p.names[res.ID] = res.Name
		return event.Event{}, false

	case parser.KindUnitClass:
		p.aspects[res.ID] = event.AspectFromCode(res.Class)
		return event.Event{}, false

	case parser.KindDiveEnd:
		// Handles are only unique within a dive.
		clear(p.names)
		clear(p.aspects)
		return event.Event{Type: event.DiveEnd}, true

	case parser.KindDamage:
		dmg := *res.Damage
		dmg.Source = p.resolve(dmg.Source)
		dmg.Target = p.resolve(dmg.Target)
		return event.Event{Type: damageType(dmg.Direction()), Damage: &dmg}, true

	case parser.KindStatusEffect:
		st := *res.Status
		st.Source = p.resolve(st.Source)
		st.Target = p.resolve(st.Target)
		return event.Event{Type: event.StatusEffectAdded, Status: &st}, true

	case parser.KindOrbPickup:
		ent := p.resolve(event.Handle(res.ID))
		if !ent.Resolved() {
			if p.warnLimiter.Allow() {
				p.log.Warn("unknown entity picked up an orb, ignoring", "handle", res.ID)
			}
			return event.Event{}, false
		}
		return event.Event{Type: event.OrbPickup, Player: ent.Player}, true

	default:
		return event.Event{}, false
	}
}

// resolve looks up a handle in the identity caches. A handle with a name
// but no class becomes a player whose aspect is unknown.
func (p *LogParser) resolve(e event.Entity) event.Entity {
	if e.Resolved() {
		return e
	}
	name, ok := p.names[e.ID]
	if !ok {
		return e
	}
	aspect, ok := p.aspects[e.ID]
	if !ok {
		aspect = event.UnknownAspect(strconv.FormatInt(e.ID, 10))
	}
	return event.PlayerEntity(event.Player{Name: name, Aspect: aspect, ID: e.ID})
}

func damageType(d event.Direction) event.Type {
	switch d {
	case event.Dealt:
		return event.DamageDealt
	case event.Received:
		return event.DamageReceived
	default:
		return event.DamageOther
	}
}
