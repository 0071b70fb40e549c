// Package logfinder locates the Inkbound log file.
package logfinder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// EnvLogFile is the environment variable name for specifying the log file.
const EnvLogFile = "INKBOUND_LOG"

// LogFileName is the name the game gives its log.
const LogFileName = "logfile.log"

// steamAppID is Inkbound's Steam app ID, which names its Proton prefix.
const steamAppID = "1062810"

// ErrLogFileNotFound is returned when no log file can be located.
var ErrLogFileNotFound = errors.New("log file not found")

// DefaultLogPaths returns candidate log file paths in priority order for
// the running OS.
func DefaultLogPaths() []string {
	return defaultLogPaths(runtime.GOOS, os.Getenv)
}

func defaultLogPaths(goos string, getenv func(string) string) []string {
	var paths []string

	switch goos {
	case "windows":
		if profile := getenv("USERPROFILE"); profile != "" {
			paths = append(paths, filepath.Join(profile, "AppData", "LocalLow", "Shiny Shoe", "Inkbound", LogFileName))
		}
	case "linux":
		if home := getenv("HOME"); home != "" {
			// Proton prefix of the default Steam library.
			paths = append(paths, filepath.Join(home, ".steam", "steam", "steamapps", "compatdata", steamAppID,
				"pfx", "drive_c", "users", "steamuser", "AppData", "LocalLow", "Shiny Shoe", "Inkbound", LogFileName))
		}
	}

	// A copy next to the binary, for inspecting logs from another machine.
	return append(paths, LogFileName)
}

// FindLogFile returns the Inkbound log file.
//
// Priority:
//  1. explicit (if non-empty)
//  2. INKBOUND_LOG environment variable
//  3. Auto-detect from DefaultLogPaths()
//
// Returns ErrLogFileNotFound if no regular file is found.
// The returned path has symlinks resolved.
func FindLogFile(explicit string) (string, error) {
	if explicit != "" {
		if resolved := resolveLogFile(explicit); resolved != "" {
			return resolved, nil
		}
		return "", fmt.Errorf("%w: %s", ErrLogFileNotFound, explicit)
	}

	if env := os.Getenv(EnvLogFile); env != "" {
		if resolved := resolveLogFile(env); resolved != "" {
			return resolved, nil
		}
		return "", fmt.Errorf("%w: %s environment variable points to %s", ErrLogFileNotFound, EnvLogFile, env)
	}

	for _, path := range DefaultLogPaths() {
		if resolved := resolveLogFile(path); resolved != "" {
			return resolved, nil
		}
	}

	return "", ErrLogFileNotFound
}

// resolveLogFile resolves symlinks and checks that path is a regular file.
// Returns the resolved path if valid, empty string otherwise.
func resolveLogFile(path string) string {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return ""
	}
	info, err := os.Stat(resolved)
	if err != nil || !info.Mode().IsRegular() {
		return ""
	}
	return resolved
}
