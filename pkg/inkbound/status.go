package inkbound

import (
	"sync"
	"sync/atomic"
)

// Status is the state of a LogReader's ingestion.
type Status int32

const (
	// StatusInitializing is reported until the first batch (the backlog,
	// unless skipped) has been applied.
	StatusInitializing Status = iota + 1
	// StatusReading is reported while new lines are being parsed.
	StatusReading
	// StatusIdle is reported when all complete lines have been applied.
	StatusIdle
	// StatusErrored is sticky until Reset. The reader stays idle.
	StatusErrored
)

func (s Status) String() string {
	switch s {
	case StatusInitializing:
		return "Initializing"
	case StatusReading:
		return "Reading"
	case StatusIdle:
		return "Idle"
	case StatusErrored:
		return "Errored"
	default:
		return "Unknown"
	}
}

// readerStatus is shared by the watcher and ingestion goroutines.
type readerStatus struct {
	v atomic.Int32

	mu  sync.Mutex
	err error
}

func newReaderStatus() *readerStatus {
	s := &readerStatus{}
	s.v.Store(int32(StatusInitializing))
	return s
}

func (s *readerStatus) load() Status {
	return Status(s.v.Load())
}

// reading moves to StatusReading. It never leaves Initializing, so the
// backlog pass is reported as a whole, and never clears Errored.
func (s *readerStatus) reading() {
	for {
		cur := s.v.Load()
		if Status(cur) == StatusInitializing || Status(cur) == StatusErrored || Status(cur) == StatusReading {
			return
		}
		if s.v.CompareAndSwap(cur, int32(StatusReading)) {
			return
		}
	}
}

// idle moves to StatusIdle unless the reader has errored.
func (s *readerStatus) idle() {
	for {
		cur := s.v.Load()
		if Status(cur) == StatusErrored {
			return
		}
		if s.v.CompareAndSwap(cur, int32(StatusIdle)) {
			return
		}
	}
}

// fail records err and moves to StatusErrored. The first error wins.
func (s *readerStatus) fail(err error) {
	s.mu.Lock()
	if s.err == nil {
		s.err = err
	}
	s.mu.Unlock()
	s.v.Store(int32(StatusErrored))
}

func (s *readerStatus) lastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
