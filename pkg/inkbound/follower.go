package inkbound

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/inkbound-tools/inkbound-go/internal/safefile"
	"github.com/inkbound-tools/inkbound-go/internal/tailer"
	"github.com/inkbound-tools/inkbound-go/pkg/inkbound/event"
)

// followerErrBuffer is the buffer size for the error channel.
const followerErrBuffer = 16

// Follower streams events from a log file as lines are appended, without
// keeping any aggregate state. It is the building block for consumers that
// want individual hits rather than a DataLog.
type Follower struct {
	path string
	cfg  config // immutable after creation
	log  *slog.Logger

	mu        sync.Mutex
	closed    bool
	cancel    context.CancelFunc
	doneCh    chan struct{}
	following bool
}

// NewFollower checks that path is a readable log file and returns a
// Follower for it. Nothing is read until Follow is called.
//
// WithSkipCurrent(false) replays the existing content first; by default
// a Follower starts at the end of the file like tail -f.
func NewFollower(path string, opts ...Option) (*Follower, error) {
	cfg := applyOptions(append([]Option{WithSkipCurrent(true)}, opts...))
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	f, _, err := safefile.OpenLog(path)
	if err != nil {
		return nil, &ReaderError{Op: ReaderOpOpen, Path: path, Err: err}
	}
	f.Close()

	return &Follower{
		path: path,
		cfg:  *cfg,
		log:  cfg.logger,
	}, nil
}

// Follow starts following and returns channels.
// Both channels close on ctx.Done(), Close, or a fatal tail error.
// Follow can only be called once per Follower instance.
//
// Returns ErrFollowerClosed if the follower has been closed.
// Returns ErrAlreadyFollowing if Follow has already been called.
func (f *Follower) Follow(ctx context.Context) (<-chan event.Event, <-chan error, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, nil, ErrFollowerClosed
	}
	if f.following {
		return nil, nil, ErrAlreadyFollowing
	}
	f.following = true

	ctx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.doneCh = make(chan struct{})

	eventCh := make(chan event.Event)
	errCh := make(chan error, followerErrBuffer)

	go f.run(ctx, eventCh, errCh)

	return eventCh, errCh, nil
}

// Close stops the follower and releases resources.
// Safe to call multiple times.
// Blocks until the goroutine has exited.
func (f *Follower) Close() error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil
	}
	f.closed = true

	if f.cancel != nil {
		f.cancel()
	}
	doneCh := f.doneCh
	f.mu.Unlock()

	if doneCh != nil {
		<-doneCh
	}
	return nil
}

func (f *Follower) run(ctx context.Context, eventCh chan<- event.Event, errCh chan<- error) {
	defer close(f.doneCh)
	defer close(eventCh)
	defer close(errCh)

	cfg := tailer.DefaultConfig()
	cfg.FromStart = !f.cfg.skipCurrent
	cfg.MaxLineSize = maxLineBytes

	t, err := tailer.New(ctx, f.path, cfg)
	if err != nil {
		sendError(ctx, errCh, &ReaderError{Op: ReaderOpTail, Path: f.path, Err: err})
		return
	}
	defer func() { _ = t.Stop() }()
	f.log.Debug("started following", "path", f.path, "from_start", cfg.FromStart)

	parser := NewLogParser(
		WithParserLogger(f.log),
		WithRawLines(f.cfg.includeRawLine),
	)

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-t.Lines():
			if !ok {
				return
			}
			ev, ok := parser.ParseLine(line)
			if !ok {
				continue
			}
			select {
			case eventCh <- ev:
			case <-ctx.Done():
				return
			}
		case err, ok := <-t.Errors():
			if !ok {
				return
			}
			sendError(ctx, errCh, &ReaderError{Op: ReaderOpTail, Path: f.path, Err: err})
		}
	}
}

// sendError sends an error to the channel without blocking on a stalled consumer.
func sendError(ctx context.Context, errCh chan<- error, err error) {
	select {
	case errCh <- err:
	case <-ctx.Done():
	default:
	}
}
