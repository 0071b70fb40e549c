package inkbound

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrReaderClosed is returned by LogReader.Reset after Close.
	ErrReaderClosed = errors.New("log reader closed")

	// ErrFileTruncated is recorded when the log shrinks underneath a reader.
	// The game truncates its log on launch; call Reset to start over.
	ErrFileTruncated = errors.New("log file truncated")

	// ErrFileReplaced is recorded when the log path is recreated or renamed
	// over while a reader has the old file open. Call Reset to reopen it.
	ErrFileReplaced = errors.New("log file replaced")

	// ErrFollowerClosed is returned by Follow after Close.
	ErrFollowerClosed = errors.New("follower closed")

	// ErrAlreadyFollowing is returned when Follow is called twice.
	ErrAlreadyFollowing = errors.New("already following")
)

// ReaderOp identifies the operation that failed.
type ReaderOp string

const (
	ReaderOpOpen  ReaderOp = "open"
	ReaderOpSeek  ReaderOp = "seek"
	ReaderOpRead  ReaderOp = "read"
	ReaderOpWatch ReaderOp = "watch"
	ReaderOpTail  ReaderOp = "tail"
)

// ReaderError wraps a failure of a LogReader or Follower with the operation
// and file involved.
type ReaderError struct {
	Op   ReaderOp
	Path string
	Err  error
}

func (e *ReaderError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ReaderError) Unwrap() error {
	return e.Err
}
