package world

import (
	"salis/display"
	"salis/instset"
	"salis/memory"
	"salis/process"
)

// Selected gives access to the selected process, if it is alive
type Selected interface {
	Extent() (process.Extent, bool)
}

// Renderer draws the world grid: one glyph per cell, colored by the memory
// state under it and by the selected process on top.
type Renderer struct {
	view    *Viewport
	mem     memory.Service
	sel     Selected
	palette *display.Palette
	cursor  *Picker
}

// NewRenderer returns a renderer drawing v
func NewRenderer(v *Viewport, mem memory.Service, sel Selected, palette *display.Palette) *Renderer {
	return &Renderer{
		view:    v,
		mem:     mem,
		sel:     sel,
		palette: palette,
	}
}

// SetCursor makes the renderer highlight the cell under an active cursor
func (r *Renderer) SetCursor(p *Picker) {
	r.cursor = p
}

// Render draws a full frame. Memory is fetched once per frame.
func (r *Renderer) Render(s display.Surface) {
	rows, cols := r.view.Rows(), r.view.Columns()
	count := rows * cols
	if count == 0 || r.mem.Size() == 0 {
		return
	}

	image := r.mem.RenderImage(r.view.Position, r.view.Zoom, uint32(count))
	ext, alive := r.sel.Extent()

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			i := y*cols + x
			ch, color := ' ', display.Neutral

			if addr, ok := r.view.Address(i); ok && i < len(image) {
				status := memory.Status(image[i])
				ch = r.glyph(status)
				color = r.palette.Color(r.classify(status, addr, ext, alive))
			}
			if r.cursor != nil && r.cursor.At(y, x+Margin) {
				color = r.palette.Color(display.RoleCursor)
			}

			// printing on the edge of the screen may fail; ignore it
			_ = s.SetRune(y, x+Margin, ch, color)
		}
	}
}

// classify resolves the color role of the cell starting at addr.
// Selected process overlays win over memory flags; first match wins.
func (r *Renderer) classify(s memory.Status, addr uint32, ext process.Extent, alive bool) display.Role {
	if alive {
		lo := uint64(addr)
		hi := lo + uint64(r.view.Zoom)

		switch {
		case contains(lo, hi, ext.IP):
			return display.RoleSelectedIP
		case contains(lo, hi, ext.SP):
			return display.RoleSelectedSP
		case overlaps(lo, hi, ext.Block1Addr, ext.Block1Size):
			return display.RoleSelectedBlock1
		case overlaps(lo, hi, ext.Block2Addr, ext.Block2Size):
			return display.RoleSelectedBlock2
		}
	}

	switch {
	case r.view.ShowIP && s.IP():
		return display.RoleIP
	case s.BlockStart():
		return display.RoleBlockStart
	case s.Allocated():
		return display.RoleAllocated
	default:
		return display.RoleFree
	}
}

// glyph is the instruction symbol at zoom 1. Zoomed out cells only tell
// whether the mean instruction falls in the upper half of the set.
func (r *Renderer) glyph(s memory.Status) rune {
	if r.view.Zoom == 1 {
		return instset.Symbol(s.Instruction())
	}
	if s.Instruction() >= instset.Count/2 {
		return ':'
	}
	return '.'
}

func contains(lo, hi uint64, addr uint32) bool {
	return lo <= uint64(addr) && uint64(addr) < hi
}

func overlaps(lo, hi uint64, start, size uint32) bool {
	if size == 0 {
		return false
	}
	return hi > uint64(start) && uint64(start)+uint64(size) > lo
}
