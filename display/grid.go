package display

import (
	"strings"

	"github.com/jroimartin/gocui"
)

// Cell is a single drawn glyph of a Grid
type Cell struct {
	Rune  rune
	Color ColorID
}

// Grid is an in-memory Surface. Used for headless output and tests.
type Grid struct {
	rows, cols int
	cells      []Cell
	pairs      []pair
}

// NewGrid creates a blank grid of the given size
func NewGrid(rows, cols int) *Grid {
	g := new(Grid)
	g.pairs = []pair{{gocui.ColorDefault, gocui.ColorDefault}}
	g.Resize(rows, cols)
	return g
}

// Resize changes the grid dimensions and blanks every cell
func (g *Grid) Resize(rows, cols int) {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	g.rows, g.cols = rows, cols
	g.cells = make([]Cell, rows*cols)
	g.Clear()
}

// Clear blanks every cell
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{' ', Neutral}
	}
}

// RegisterColor adds a color pair and returns its id
func (g *Grid) RegisterColor(fg, bg gocui.Attribute) ColorID {
	g.pairs = append(g.pairs, pair{fg, bg})
	return ColorID(len(g.pairs) - 1)
}

// Size returns the grid dimensions
func (g *Grid) Size() (int, int) {
	return g.rows, g.cols
}

// SetRune stores ch at row / col
func (g *Grid) SetRune(row, col int, ch rune, color ColorID) error {
	if row < 0 || col < 0 || row >= g.rows || col >= g.cols {
		return ErrInvalidPoint
	}
	g.cells[row*g.cols+col] = Cell{ch, color}
	return nil
}

// Cell returns the cell at row / col, a blank cell when out of bounds
func (g *Grid) Cell(row, col int) Cell {
	if row < 0 || col < 0 || row >= g.rows || col >= g.cols {
		return Cell{' ', Neutral}
	}
	return g.cells[row*g.cols+col]
}

// Line returns the glyphs of a row
func (g *Grid) Line(row int) string {
	var sb strings.Builder
	for col := 0; col < g.cols; col++ {
		sb.WriteRune(g.Cell(row, col).Rune)
	}
	return sb.String()
}

// String returns all rows, right trimmed, separated by new lines
func (g *Grid) String() string {
	var sb strings.Builder
	for row := 0; row < g.rows; row++ {
		sb.WriteString(strings.TrimRight(g.Line(row), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
