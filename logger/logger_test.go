package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salis.log")

	for i := 0; i < 2; i++ {
		l, c, err := New(path)
		if err != nil {
			t.Fatalf("New(%q) = %v", path, err)
		}
		l.Printf("run %d", i)
		if err := c.Close(); err != nil {
			t.Fatalf("Close() = %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() = %v", err)
	}
	out := string(data)
	for _, want := range []string{"run 0", "run 1", "SALIS "} {
		if !strings.Contains(out, want) {
			t.Errorf("log = %q, missing %q", out, want)
		}
	}
}

func TestNew_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "salis.log")
	if _, _, err := New(path); err == nil {
		t.Errorf("New(%q) did not fail", path)
	}
}
