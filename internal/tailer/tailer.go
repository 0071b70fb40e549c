// Package tailer follows a growing log file line by line.
package tailer

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/nxadm/tail"
)

// Config configures a Tailer.
type Config struct {
	// FromStart reads the existing content before following. Otherwise
	// only lines written after New are delivered.
	FromStart bool

	// Poll checks the file by polling instead of OS notifications.
	// The game's log sits in a Proton prefix on Linux, where inotify on
	// the Windows-side path is unreliable.
	Poll bool

	// MaxLineSize splits lines longer than this many bytes. 0 = unlimited.
	MaxLineSize int
}

// DefaultConfig returns the configuration used by the library.
func DefaultConfig() Config {
	return Config{Poll: true}
}

// Tailer delivers complete lines appended to a file.
type Tailer struct {
	t      *tail.Tail
	lines  chan string
	errs   chan error
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// New starts following path. The file must exist.
// Lines are delivered without their trailing newline; partially written
// lines are held back until completed.
func New(ctx context.Context, path string, cfg Config) (*Tailer, error) {
	var loc *tail.SeekInfo
	if !cfg.FromStart {
		loc = &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd}
	}

	t, err := tail.TailFile(path, tail.Config{
		Location:      loc,
		MustExist:     true,
		Follow:        true,
		Poll:          cfg.Poll,
		CompleteLines: true,
		MaxLineSize:   cfg.MaxLineSize,
		Logger:        tail.DiscardingLogger,
	})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	tl := &Tailer{
		t:      t,
		lines:  make(chan string),
		errs:   make(chan error, 1),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go tl.run(ctx)
	return tl, nil
}

// Lines returns the channel of lines. It is closed when the tailer stops.
func (tl *Tailer) Lines() <-chan string {
	return tl.lines
}

// Errors returns the channel of read errors. It is closed when the tailer stops.
func (tl *Tailer) Errors() <-chan error {
	return tl.errs
}

// Stop stops following and waits for the delivery goroutine to exit.
// Safe to call multiple times.
func (tl *Tailer) Stop() error {
	var err error
	tl.once.Do(func() {
		tl.cancel()
		err = tl.t.Stop()
		tl.t.Cleanup()
		<-tl.done
	})
	return err
}

func (tl *Tailer) run(ctx context.Context) {
	defer close(tl.done)
	defer close(tl.lines)
	defer close(tl.errs)

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-tl.t.Lines:
			if !ok {
				return
			}
			if line.Err != nil {
				select {
				case tl.errs <- line.Err:
				default:
				}
				continue
			}
			select {
			case tl.lines <- strings.TrimRight(line.Text, "\r"):
			case <-ctx.Done():
				return
			}
		}
	}
}
