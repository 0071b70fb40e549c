package inkbound

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/inkbound-tools/inkbound-go/internal/safefile"
)

// maxLineBytes bounds a single log line. Inkbound lines are a few hundred
// bytes; anything near this size is not a game log.
const maxLineBytes = 1024 * 1024

// ParseReader parses a complete log from r into a new DataLog.
// Lines that are not recognized are skipped, and so are lines longer than
// maxLineBytes. Only read errors from r are returned.
func ParseReader(r io.Reader, opts ...ParserOption) (*DataLog, error) {
	p := NewLogParser(opts...)
	dl := NewDataLog()

	br := bufio.NewReaderSize(r, 64*1024)
	var (
		line    []byte
		tooLong bool
	)
	for {
		frag, err := br.ReadSlice('\n')
		switch {
		case tooLong:
		case len(line)+len(frag) > maxLineBytes:
			tooLong = true
			line = line[:0]
		default:
			line = append(line, frag...)
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}

		if tooLong {
			p.log.Debug("skipping over-long line", "limit", maxLineBytes)
			tooLong = false
		} else if len(line) > 0 {
			if ev, ok := p.ParseLine(strings.TrimRight(string(line), "\r\n")); ok {
				dl.HandleEvent(ev)
			}
		}
		line = line[:0]

		if err == io.EOF {
			return dl, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading log: %w", err)
		}
	}
}

// ParseFile parses the log file at path into a new DataLog.
//
// Example:
//
//	dl, err := inkbound.ParseFile("logfile.log")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, dive := range dl.Dives {
//	    fmt.Println(dive.ID, len(dive.Combats))
//	}
func ParseFile(path string, opts ...ParserOption) (*DataLog, error) {
	f, _, err := safefile.OpenLog(path)
	if err != nil {
		return nil, &ReaderError{Op: ReaderOpOpen, Path: path, Err: err}
	}
	defer f.Close()

	dl, err := ParseReader(f, opts...)
	if err != nil {
		return nil, &ReaderError{Op: ReaderOpRead, Path: path, Err: err}
	}
	return dl, nil
}

// ParseFileJSON parses the log file at path and returns the DataLog as JSON:
// dives newest first, each with its combats newest first, each holding a
// map of player name to statistics.
func ParseFileJSON(path string, opts ...ParserOption) ([]byte, error) {
	dl, err := ParseFile(path, opts...)
	if err != nil {
		return nil, err
	}
	return json.Marshal(dl)
}
