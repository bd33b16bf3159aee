package display

import (
	"github.com/mattn/go-runewidth"
)

// Text draws s at row / col, using at most width columns.
// Wide runes take two columns; a rune that does not fit ends the line.
// Returns the amount of columns used.
func Text(s Surface, row, col int, text string, color ColorID, width int) int {
	used := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if used+w > width {
			break
		}
		// clipping at the surface edge is fine
		_ = s.SetRune(row, col+used, r, color)
		used += w
	}
	return used
}

// Fill draws width blanks starting at row / col
func Fill(s Surface, row, col, width int, color ColorID) {
	for i := 0; i < width; i++ {
		_ = s.SetRune(row, col+i, ' ', color)
	}
}

// Truncate cuts text to width columns, marking the cut with a tail
func Truncate(text string, width int) string {
	return runewidth.Truncate(text, width, "~")
}
