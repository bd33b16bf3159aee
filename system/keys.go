package system

import (
	"salis/printer"
)

// Key is a non printable key understood by the viewer
type Key int

// special keys
const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyEnter
	KeyEsc
)

// Runes lists every printable key handled by HandleRune
const Runes = "zxZadwsSAiXopflkg 1234567890q"

// HandleKey applies a special key. Arrows move the cursor while it is
// shown and flip or scroll pages otherwise. Returns ErrQuit on Esc.
func (sys *System) HandleKey(k Key) error {
	if sys.Cursor.Active {
		switch k {
		case KeyLeft:
			sys.Cursor.Move(0, -1)
		case KeyRight:
			sys.Cursor.Move(0, 1)
		case KeyUp:
			sys.Cursor.Move(-1, 0)
		case KeyDown:
			sys.Cursor.Move(1, 0)
		case KeyEnter:
			if sys.Cursor.Pick() {
				sys.selected()
			}
		case KeyEsc:
			sys.Cursor.Stop()
		}
		return nil
	}

	switch k {
	case KeyLeft:
		sys.Printer.Flip(-1)
		sys.log.Printf("page %v", sys.Printer.Page)
	case KeyRight:
		sys.Printer.Flip(1)
		sys.log.Printf("page %v", sys.Printer.Page)
	case KeyUp:
		sys.Printer.ScrollMain(-1, sys.dims.rows)
	case KeyDown:
		sys.Printer.ScrollMain(1, sys.dims.rows)
	case KeyEnter:
		sys.Cursor.Start()
	case KeyEsc:
		return ErrQuit
	}
	return nil
}

// HandleRune applies a printable key. World navigation only acts on the
// world page and process table scrolling only on the process page, so keys
// shared between the two never act twice. Returns ErrQuit on 'q'.
func (sys *System) HandleRune(ch rune) error {
	switch ch {
	case 'z':
		sys.View.ZoomIn()
	case 'x':
		sys.View.ZoomOut()
	case 'Z':
		sys.View.ZoomReset()
	case 'a':
		sys.View.PanLeft()
		sys.Printer.ElemLeft()
	case 'd':
		sys.View.PanRight()
		sys.Printer.ElemRight()
	case 'w':
		sys.View.PanUp()
		sys.Printer.ListUp(1)
	case 's':
		sys.View.PanDown()
		sys.Printer.ListDown(1)
	case 'S':
		sys.View.PanReset()
		sys.Printer.ListReset()
	case 'A':
		sys.View.PanReset()
		sys.Printer.ColumnReset()
	case 'g':
		sys.Printer.ToggleGeneView()
	case 'i':
		sys.View.ToggleIP()
	case 'X':
		sys.Printer.ToggleHex()
	case 'o':
		if sys.canSelect() {
			sys.Sel.Prev()
			sys.selected()
		}
	case 'p':
		if sys.canSelect() {
			sys.Sel.Next()
			sys.selected()
		}
	case 'f':
		if sys.canSelect() {
			sys.Sel.First()
			sys.selected()
		}
	case 'l':
		if sys.canSelect() {
			sys.Sel.Last()
			sys.selected()
		}
	case 'k':
		sys.ScrollToSelected()
	case ' ':
		sys.ToggleRunning()
	case '1', '2', '3', '4', '5', '6', '7', '8', '9', '0':
		n := int(ch - '0')
		if n == 0 {
			n = 10
		}
		sys.Cycle(1 << ((n - 1) % 10))
	case 'q':
		return ErrQuit
	}
	return nil
}

// canSelect reports whether the selection keys act on the current page
func (sys *System) canSelect() bool {
	return sys.Printer.Page != printer.PageMemory
}

// selected follows a selection change on the process table
func (sys *System) selected() {
	sys.Printer.ListShow(sys.Sel.ID)
	sys.log.Printf("selected process %d", sys.Sel.ID)
}
