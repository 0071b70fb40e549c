// Package safefile opens log files that are verified to be regular files.
package safefile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotRegularFile is returned when the log path resolves to something other
// than a regular file (directory, FIFO, device, socket).
var ErrNotRegularFile = errors.New("not a regular file")

// OpenLog opens a log file for reading and verifies it is a regular file.
//
// Symlinks are resolved first: on Linux the game runs under a Steam
// compatibility prefix that is often linked to another drive. The resolved
// target, not the link, must be a regular file. The opened descriptor is
// stat'ed again so a file swapped between the check and the open is caught.
//
// The caller must close the returned file.
func OpenLog(path string) (*os.File, os.FileInfo, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil, nil, err
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return nil, nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, nil, fmt.Errorf("%s: %w", resolved, ErrNotRegularFile)
	}

	f, err := os.Open(resolved)
	if err != nil {
		return nil, nil, err
	}

	info, err = f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, nil, fmt.Errorf("%s: %w", resolved, ErrNotRegularFile)
	}

	return f, info, nil
}
