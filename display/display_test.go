package display

import (
	"errors"
	"testing"
)

func TestPalette_DistinctColors(t *testing.T) {
	g := NewGrid(1, 1)
	p := NewPalette(g)

	seen := map[ColorID]Role{}
	for r := Role(0); r < roleCount; r++ {
		id := p.Color(r)
		if id == Neutral {
			t.Errorf("role %v bound to the neutral color", r)
		}
		if prev, ok := seen[id]; ok {
			t.Errorf("roles %v and %v share color %d", prev, r, id)
		}
		seen[id] = r
	}

	if got := p.Color(roleCount); got != Neutral {
		t.Errorf("Palette.Color(unknown) = %d, want Neutral", got)
	}
}

func TestGrid_SetRune(t *testing.T) {
	g := NewGrid(2, 3)
	tests := []struct {
		name     string
		row, col int
		wantErr  bool
	}{
		{"origin", 0, 0, false},
		{"last cell", 1, 2, false},
		{"past last column", 0, 3, true},
		{"past last row", 2, 0, true},
		{"negative", -1, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.SetRune(tt.row, tt.col, 'x', Neutral)
			if (err != nil) != tt.wantErr {
				t.Errorf("Grid.SetRune(%d, %d) error = %v, wantErr %v", tt.row, tt.col, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidPoint) {
				t.Errorf("Grid.SetRune() error = %v, want ErrInvalidPoint", err)
			}
		})
	}
	if got := g.String(); got != "x\n  x\n" {
		t.Errorf("Grid.String() = %q", got)
	}
}

func TestText(t *testing.T) {
	g := NewGrid(1, 10)

	if n := Text(g, 0, 1, "zoom", Neutral, 3); n != 3 {
		t.Errorf("Text() used %d columns, want 3", n)
	}
	if got := g.Line(0); got != " zoo      " {
		t.Errorf("Grid.Line(0) = %q", got)
	}

	g.Clear()
	// wide runes take two columns and are not split
	if n := Text(g, 0, 0, "世界", Neutral, 3); n != 2 {
		t.Errorf("Text() with wide runes used %d columns, want 2", n)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("position", 5); got != "posi~" {
		t.Errorf("Truncate() = %q, want %q", got, "posi~")
	}
	if got := Truncate("zoom", 5); got != "zoom" {
		t.Errorf("Truncate() = %q, want %q", got, "zoom")
	}
}

func TestInset(t *testing.T) {
	g := NewGrid(4, 5)
	in := Inset{Surface: g, Bottom: 1}

	if rows, cols := in.Size(); rows != 3 || cols != 5 {
		t.Errorf("Size() = %d, %d; want 3, 5", rows, cols)
	}
	if err := in.SetRune(2, 0, 'a', Neutral); err != nil {
		t.Errorf("SetRune() on a visible row = %v", err)
	}
	if err := in.SetRune(3, 0, 'b', Neutral); !errors.Is(err, ErrInvalidPoint) {
		t.Errorf("SetRune() on the hidden row = %v, want ErrInvalidPoint", err)
	}
	if g.Cell(3, 0).Rune != ' ' {
		t.Errorf("hidden row was drawn")
	}

	if rows, _ := (Inset{Surface: g, Bottom: 9}).Size(); rows != 0 {
		t.Errorf("Size() with everything hidden = %d rows", rows)
	}
}
