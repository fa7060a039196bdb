package history

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func newTestLog(t *testing.T) *Log {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "calc_log.txt"))
}

func TestAppendAndWriteTo(t *testing.T) {
	log := newTestLog(t)

	if err := log.Append("[Color→Resistance] (4,7,m=2,t=6) = 4700 Ω, tol ±5%"); err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	if err := log.Append("[Resistance→Color] R=996 → (1,0,m=2)"); err != nil {
		t.Fatalf("Append() error: %v", err)
	}

	var buf bytes.Buffer
	if _, err := log.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error: %v", err)
	}

	want := "[Color→Resistance] (4,7,m=2,t=6) = 4700 Ω, tol ±5%\n" +
		"[Resistance→Color] R=996 → (1,0,m=2)\n"
	if buf.String() != want {
		t.Errorf("log contents = %q, want %q", buf.String(), want)
	}
}

func TestWriteToMissingFile(t *testing.T) {
	log := newTestLog(t)

	var buf bytes.Buffer
	n, err := log.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() on missing file error: %v", err)
	}
	if n != 0 || buf.Len() != 0 {
		t.Errorf("WriteTo() on missing file copied %d bytes", n)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	log := newTestLog(t)

	if err := log.Append("entry"); err != nil {
		t.Fatalf("Append() error: %v", err)
	}

	// Clearing twice leaves an empty file both times, with no error on the
	// second clear.
	for i := 0; i < 2; i++ {
		if err := log.Clear(); err != nil {
			t.Fatalf("Clear() #%d error: %v", i+1, err)
		}
		data, err := os.ReadFile(log.Path())
		if err != nil {
			t.Fatalf("ReadFile() after clear: %v", err)
		}
		if len(data) != 0 {
			t.Errorf("log not empty after clear #%d: %q", i+1, data)
		}
	}
}

func TestAppendAfterClear(t *testing.T) {
	log := newTestLog(t)

	if err := log.Append("first"); err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	if err := log.Clear(); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if err := log.Append("second"); err != nil {
		t.Fatalf("Append() error: %v", err)
	}

	var buf bytes.Buffer
	if _, err := log.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error: %v", err)
	}
	if buf.String() != "second\n" {
		t.Errorf("log contents = %q, want %q", buf.String(), "second\n")
	}
}

func TestAppendFailureIsReported(t *testing.T) {
	// A directory at the log path makes the open fail.
	dir := t.TempDir()
	log := New(dir)

	if err := log.Append("entry"); err == nil {
		t.Error("Append() to a directory path succeeded, want error")
	}
}
