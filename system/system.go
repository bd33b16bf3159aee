package system

import (
	"errors"
	"fmt"
	"log"

	"salis/console"
	"salis/display"
	"salis/printer"
	"salis/process"
	"salis/sim"
	"salis/world"
)

// errors returned by Execute
var (
	ErrQuit       = errors.New("quit")
	ErrNotOnWorld = errors.New("world page not shown")
)

// System definition. Owns the engine and every part of the viewer drawn
// on top of it.
type System struct {
	World    *sim.World
	Sel      *process.Selection
	Printer  *printer.Printer
	View     *world.Viewport
	Renderer *world.Renderer
	Cursor   *world.Picker
	Palette  *display.Palette

	console console.Console
	log     *log.Logger

	// dimensions of the last drawn frame
	dims frame
}

// frame is the Sizer handed to the viewport. It changes only at the start
// of a Frame, so sizes stay stable while drawing.
type frame struct {
	rows, cols int
}

func (f *frame) Size() (int, int) {
	return f.rows, f.cols
}

// InitializeSystem wires the viewer around w. Colors are registered on reg,
// which has to be the surface later passed to Frame.
func InitializeSystem(w *sim.World, reg display.Registrar, c console.Console, log *log.Logger) *System {
	sys := new(System)
	sys.World = w
	sys.console = c
	sys.log = log

	sys.Palette = display.NewPalette(reg)
	sys.Sel = process.NewSelection(w)
	sys.Printer = printer.New(w, sys.Sel, sys.Palette)

	sys.View = world.NewViewport(w, &sys.dims, sys.Printer)
	sys.Printer.SetViewport(sys.View)

	sys.Renderer = world.NewRenderer(sys.View, w, sys.Sel, sys.Palette)
	sys.Cursor = world.NewPicker(sys.View, w, sys.Sel)
	sys.Renderer.SetCursor(sys.Cursor)

	sys.log.Printf("world of %d cells, %d processes", w.Size(), w.Count())
	return sys
}

// Frame draws one full frame on s. A change of dimensions resets the zoom
// so the whole memory stays reachable.
func (sys *System) Frame(s display.Surface) {
	rows, cols := s.Size()
	if rows != sys.dims.rows || cols != sys.dims.cols {
		sys.dims = frame{rows, cols}
		sys.View.ZoomReset()
		sys.Cursor.Clamp()
		sys.log.Printf("resized to %dx%d, zoom %d", rows, cols, sys.View.Zoom)
	}

	if sys.Cursor.Active && !sys.View.Editable() {
		sys.Cursor.Stop()
	}

	sys.Printer.Draw(s)
	if sys.Printer.OnWorld() {
		sys.Renderer.Render(s)
	}
}

// Running reports whether the engine cycles on every tick
func (sys *System) Running() bool {
	return sys.Printer.Running
}

// ToggleRunning starts or pauses the engine
func (sys *System) ToggleRunning() {
	sys.Printer.Running = !sys.Printer.Running
	sys.log.Printf("running: %v", sys.Printer.Running)
}

// Tick runs a single cycle while running
func (sys *System) Tick() {
	if sys.Printer.Running {
		sys.World.Cycle()
	}
}

// Cycle runs n cycles
func (sys *System) Cycle(n int) {
	for i := 0; i < n; i++ {
		sys.World.Cycle()
	}
}

// ScrollToSelected brings the selected process into view: the process
// table starts at its id, the world view at its first block. The world
// view does not move while the process is dead.
func (sys *System) ScrollToSelected() {
	if sys.Printer.Page == printer.PageProcess {
		sys.Printer.ListScrollTo(sys.Sel.ID)
		return
	}
	ext, ok := sys.Sel.Extent()
	if !ok {
		return
	}
	if err := sys.View.ScrollTo(ext.Block1Addr); err != nil {
		sys.report(err)
	}
}

// Select makes id the selected process
func (sys *System) Select(id uint32) error {
	if err := sys.Sel.Select(id); err != nil {
		return err
	}
	sys.selected()
	return nil
}

// Execute runs a console line. Errors are shown on the console as well.
// Returns ErrQuit when the line asks to leave.
func (sys *System) Execute(line string) error {
	sys.log.Printf("console: %q", line)

	cmd, err := console.Parse(line)
	if err != nil {
		sys.report(err)
		return err
	}

	switch cmd.Op {
	case console.OpScroll:
		if !sys.View.Editable() {
			err = fmt.Errorf("scrolling to %#x: %w", cmd.Arg, ErrNotOnWorld)
			break
		}
		err = sys.View.ScrollTo(cmd.Arg)
	case console.OpProcess:
		err = sys.Select(cmd.Arg)
	case console.OpQuit:
		return ErrQuit
	}

	if err != nil {
		sys.report(err)
	}
	return err
}

// report shows err on the console and logs it
func (sys *System) report(err error) {
	sys.log.Printf("error: %v", err)
	_ = sys.console.WriteConsole("ERROR: " + err.Error())
}
