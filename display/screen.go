package display

import (
	"github.com/jroimartin/gocui"
)

type pair struct {
	fg, bg gocui.Attribute
}

// Screen draws straight into the gocui back buffer.
// It has to be used from inside a gocui manager (layout) function, which
// runs after the buffer is cleared and before views are drawn on top.
type Screen struct {
	g     *gocui.Gui
	pairs []pair
}

// NewScreen returns a screen with only the neutral color registered
func NewScreen(g *gocui.Gui) *Screen {
	s := new(Screen)
	s.g = g
	s.pairs = []pair{{gocui.ColorDefault, gocui.ColorDefault}}
	return s
}

// RegisterColor adds a color pair and returns its id
func (s *Screen) RegisterColor(fg, bg gocui.Attribute) ColorID {
	s.pairs = append(s.pairs, pair{fg, bg})
	return ColorID(len(s.pairs) - 1)
}

// Size returns rows and columns of the terminal
func (s *Screen) Size() (int, int) {
	maxX, maxY := s.g.Size()
	return maxY, maxX
}

// SetRune writes ch at row / col
func (s *Screen) SetRune(row, col int, ch rune, color ColorID) error {
	p := s.pairs[Neutral]
	if int(color) > 0 && int(color) < len(s.pairs) {
		p = s.pairs[color]
	}
	if err := s.g.SetRune(col, row, ch, p.fg, p.bg); err != nil {
		return ErrInvalidPoint
	}
	return nil
}
