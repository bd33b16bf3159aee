package console

import (
	"bytes"
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Command
		wantErr error
	}{
		{"scroll decimal", "s 1024", Command{OpScroll, 1024}, nil},
		{"scroll hex", "scroll 0x400", Command{OpScroll, 1024}, nil},
		{"process", "p 7", Command{OpProcess, 7}, nil},
		{"process long name, upper case", "PROCESS 12", Command{OpProcess, 12}, nil},
		{"quit", "q", Command{Op: OpQuit}, nil},
		{"spaces around", "  quit  ", Command{Op: OpQuit}, nil},
		{"empty", "", Command{}, ErrUnknownCommand},
		{"unknown", "jump 5", Command{}, ErrUnknownCommand},
		{"missing argument", "s", Command{}, ErrBadArguments},
		{"extra argument", "q now", Command{}, ErrBadArguments},
		{"not a number", "p seven", Command{}, ErrBadArguments},
		{"too large", "s 0x100000000", Command{}, ErrBadArguments},
		{"negative", "s -1", Command{}, ErrBadArguments},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.line)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Parse(%q) error = %v, want %v", tt.line, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
		ok   bool
	}{
		{"0", 0, true},
		{"010", 10, true},
		{"0xff", 255, true},
		{"0XFF", 255, true},
		{"4294967295", 0xffffffff, true},
		{"0x", 0, false},
		{"1e3", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseNumber(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("ParseNumber(%q) = %d, %v; want %d, ok %v", tt.in, got, err, tt.want, tt.ok)
		}
	}
}

func TestHistory(t *testing.T) {
	h := NewHistory(3)
	if _, ok := h.Prev(); ok {
		t.Errorf("Prev() on empty history returned a command")
	}

	for _, cmd := range []string{"s 1", "s 2", "s 2", "", "p 3", "q"} {
		h.Add(cmd)
	}
	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}

	for _, want := range []string{"q", "p 3", "s 2"} {
		if got, ok := h.Prev(); !ok || got != want {
			t.Errorf("Prev() = %q, %v; want %q", got, ok, want)
		}
	}
	if _, ok := h.Prev(); ok {
		t.Errorf("Prev() walked past the oldest command")
	}

	if got, _ := h.Next(); got != "p 3" {
		t.Errorf("Next() = %q, want %q", got, "p 3")
	}
	h.Next()
	if got, ok := h.Next(); !ok || got != "" {
		t.Errorf("Next() past the newest = %q, %v; want empty line", got, ok)
	}
	if _, ok := h.Next(); ok {
		t.Errorf("Next() kept walking")
	}
}

func TestSimple(t *testing.T) {
	var buf bytes.Buffer
	c := NewSimple(&buf)
	if err := c.WriteConsole("first\n\nsecond"); err != nil {
		t.Fatalf("WriteConsole() = %v", err)
	}
	if got, want := buf.String(), "first\nsecond\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if c.Lines() != 2 {
		t.Errorf("Lines() = %d, want 2", c.Lines())
	}
}
