// Package history persists calculation results to a plain-text, append-only
// log file. The file is opened and closed within each operation; no handle is
// held between calls.
package history

import (
	"fmt"
	"io"
	"os"
)

// Log appends one human-readable line per saved calculation.
type Log struct {
	path string
}

// New creates a Log backed by the file at path. The file is created lazily on
// the first append.
func New(path string) *Log {
	return &Log{path: path}
}

// Path returns the log file path.
func (l *Log) Path() string {
	return l.path
}

// Append writes one summary line to the end of the log.
func (l *Log) Append(line string) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, line); err != nil {
		return fmt.Errorf("failed to write log file: %w", err)
	}
	return nil
}

// WriteTo copies the log contents verbatim to w. A log that was never
// written to reads as empty.
func (l *Log) WriteTo(w io.Writer) (int64, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()

	return io.Copy(w, f)
}

// Clear truncates the log to empty. Clearing an already-empty or missing log
// succeeds.
func (l *Log) Clear() error {
	if err := os.WriteFile(l.path, nil, 0o644); err != nil {
		return fmt.Errorf("failed to clear log file: %w", err)
	}
	return nil
}
