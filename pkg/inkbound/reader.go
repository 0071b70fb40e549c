package inkbound

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/inkbound-tools/inkbound-go/internal/safefile"
	"github.com/inkbound-tools/inkbound-go/pkg/inkbound/event"
)

// exitCheckInterval is how many lines the ingestion goroutine reads between
// cancellation checks, so Close is not held up by a large backlog.
const exitCheckInterval = 64

// headBytes is how much of the start of the file the watcher remembers to
// notice the log being rewritten in place.
const headBytes = 256

// LogReader keeps a DataLog up to date with a log file that is still being
// written.
//
// Each reader runs two goroutines: a watcher that polls the file and
// signals changes, and an ingestion goroutine that owns the file handle and
// a private LogParser. Parsed events are applied to the shared DataLog in
// the order their lines were read, one lock acquisition per batch.
type LogReader struct {
	path string
	cfg  config // immutable after creation
	log  *slog.Logger

	mu     sync.Mutex
	state  *readerState
	closed bool
}

// readerState is everything Reset tears down and rebuilds.
type readerState struct {
	path    string
	data    *SharedDataLog
	status  *readerStatus
	file    *os.File
	cancel  context.CancelFunc
	group   *errgroup.Group
	updates chan struct{}

	stopOnce sync.Once
	stopErr  error
}

// NewLogReader opens path and starts ingesting it.
//
// Unless WithSkipCurrent is set, the existing content is parsed first as a
// backlog; the status stays StatusInitializing until that pass is applied.
// A file that cannot be opened is reported here as a *ReaderError.
//
// Example:
//
//	r, err := inkbound.NewLogReader(path, inkbound.WithPollInterval(time.Second))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	snapshot := r.DataLog().Snapshot()
func NewLogReader(path string, opts ...Option) (*LogReader, error) {
	cfg := applyOptions(opts)
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	r := &LogReader{
		path: path,
		cfg:  *cfg,
		log:  cfg.logger,
	}

	state, err := r.start(cfg.skipCurrent)
	if err != nil {
		return nil, err
	}
	r.state = state
	return r, nil
}

// Path returns the log file path the reader was created with.
func (r *LogReader) Path() string {
	return r.path
}

// DataLog returns the shared DataLog. The handle is replaced by Reset, so
// callers that hold on to it across a reset keep seeing the old history.
func (r *LogReader) DataLog() *SharedDataLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.data
}

// Status returns the current ingestion status.
func (r *LogReader) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.status.load()
}

// LastError returns the error that put the reader into StatusErrored, if any.
func (r *LogReader) LastError() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.status.lastError()
}

// Reset stops the reader, discards all parsed history, and starts again
// from the beginning of the same file. Use it to recover from
// StatusErrored or after the game truncates its log.
//
// If the file cannot be reopened the error is returned and the reader is
// left errored; Reset may be called again later.
func (r *LogReader) Reset() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrReaderClosed
	}

	r.log.Debug("resetting log reader", "path", r.path)
	if err := r.state.stop(); err != nil {
		r.log.Debug("previous reader stopped with error", "error", err)
	}

	state, err := r.start(false)
	if err != nil {
		r.state.status.fail(err)
		return err
	}
	r.state = state
	return nil
}

// Close stops the reader and waits for its goroutines to exit.
// Safe to call multiple times.
func (r *LogReader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true
	return r.state.stop()
}

// start opens the file and launches the watcher and ingestion goroutines.
func (r *LogReader) start(skipCurrent bool) (*readerState, error) {
	f, info, err := safefile.OpenLog(r.path)
	if err != nil {
		return nil, &ReaderError{Op: ReaderOpOpen, Path: r.path, Err: err}
	}

	if skipCurrent {
		if _, err := f.Seek(0, io.SeekEnd); err != nil {
			f.Close()
			return nil, &ReaderError{Op: ReaderOpSeek, Path: r.path, Err: err}
		}
	}

	head, err := readHead(f)
	if err != nil {
		f.Close()
		return nil, &ReaderError{Op: ReaderOpRead, Path: r.path, Err: err}
	}

	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	s := &readerState{
		path:    r.path,
		data:    newSharedDataLog(),
		status:  newReaderStatus(),
		file:    f,
		cancel:  cancel,
		group:   g,
		updates: make(chan struct{}, 1),
	}

	// Parse the backlog before any live update arrives. When skipping, the
	// first pass reads nothing and just moves the status to Idle.
	s.updates <- struct{}{}

	parser := NewLogParser(WithParserLogger(r.log))
	reader := bufio.NewReader(f)
	last := fileStamp{info: info, head: head}

	g.Go(func() error {
		return s.ingest(ctx, reader, parser, r.log)
	})
	g.Go(func() error {
		s.watch(ctx, r.cfg.pollInterval, last, r.log)
		return nil
	})

	r.log.Debug("started log reader", "path", r.path, "skip_current", skipCurrent)
	return s, nil
}

// stop cancels both goroutines, waits for them, and closes the file.
// Only the first call does any work.
func (s *readerState) stop() error {
	s.stopOnce.Do(func() {
		s.cancel()
		s.stopErr = s.group.Wait()
		if err := s.file.Close(); err != nil && s.stopErr == nil {
			s.stopErr = err
		}
	})
	return s.stopErr
}

// ingest waits for update signals and drains every complete line into
// the shared DataLog.
func (s *readerState) ingest(ctx context.Context, r *bufio.Reader, p *LogParser, log *slog.Logger) error {
	var pending strings.Builder // partial line at EOF, completed by a later write
	batch := make([]event.Event, 0, 256)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.updates:
		}

		lines := 0
		for {
			chunk, err := r.ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				rerr := &ReaderError{Op: ReaderOpRead, Path: s.path, Err: err}
				s.status.fail(rerr)
				log.Error("reading log failed", "error", err)
				return rerr
			}
			if !strings.HasSuffix(chunk, "\n") {
				// Leave incomplete lines until the writer finishes them.
				pending.WriteString(chunk)
				break
			}

			line := chunk
			if pending.Len() > 0 {
				pending.WriteString(chunk)
				line = pending.String()
				pending.Reset()
			}

			s.status.reading()
			if ev, ok := p.ParseLine(line); ok {
				batch = append(batch, ev)
			}

			lines++
			if lines%exitCheckInterval == 0 && ctx.Err() != nil {
				log.Debug("stop requested mid read", "lines", lines)
				return nil
			}
		}

		if len(batch) > 0 {
			s.data.apply(batch)
			clear(batch)
			batch = batch[:0]
		}
		s.status.idle()
		log.Debug("applied log batch", "lines", lines)
	}
}

// fileStamp is what the watcher compares between polls.
type fileStamp struct {
	info os.FileInfo
	head []byte // first headBytes of the file, fewer while it is short
}

func (f fileStamp) changed(o fileStamp) bool {
	return f.info.Size() != o.info.Size() || !f.info.ModTime().Equal(o.info.ModTime())
}

// readHead reads up to headBytes from the start of f without moving its
// offset.
func readHead(f *os.File) ([]byte, error) {
	buf := make([]byte, headBytes)
	n, err := f.ReadAt(buf, 0)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return buf[:n], nil
}

// check compares the current state of the file against the last poll.
// It returns ErrFileReplaced when path now names a different file and
// ErrFileTruncated when the file shrank or its start was rewritten.
func (s *readerState) check(last fileStamp, info os.FileInfo) (fileStamp, error) {
	if !os.SameFile(last.info, info) {
		return last, ErrFileReplaced
	}
	if info.Size() < last.info.Size() {
		return last, ErrFileTruncated
	}

	head, err := readHead(s.file)
	if err != nil {
		return last, err
	}
	if len(head) < len(last.head) || !bytes.Equal(head[:len(last.head)], last.head) {
		return last, ErrFileTruncated
	}
	return fileStamp{info: info, head: head}, nil
}

// watch polls path and signals the ingestion goroutine on every change.
// On failure it marks the reader errored and stops; the ingestion goroutine
// is left running but will not receive further updates until Reset.
func (s *readerState) watch(ctx context.Context, interval time.Duration, last fileStamp, log *slog.Logger) {
	path := s.path
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		info, err := os.Stat(path)
		if err != nil {
			log.Error("watching log failed", "path", path, "error", err)
			s.status.fail(&ReaderError{Op: ReaderOpWatch, Path: path, Err: err})
			return
		}

		cur, err := s.check(last, info)
		if err != nil {
			log.Warn("log file changed underneath reader", "path", path,
				"size", info.Size(), "previous", last.info.Size(), "error", err)
			s.status.fail(&ReaderError{Op: ReaderOpWatch, Path: path, Err: err})
			return
		}
		if !cur.changed(last) {
			continue
		}
		last = cur

		// One pending signal is enough; the ingestion goroutine drains to EOF.
		select {
		case s.updates <- struct{}{}:
		default:
		}
	}
}
