package world

import (
	"errors"
	"fmt"

	"salis/memory"
)

// Margin is the width of the data gutter on the left side of the screen.
// The world grid is drawn to the right of it.
const Margin = 25

// ErrInvalidAddress is returned when scrolling outside of memory
var ErrInvalidAddress = errors.New("invalid address")

// Sizer reports the display grid dimensions
type Sizer interface {
	Size() (rows, cols int)
}

// Pager reports whether the world page is the one being displayed
type Pager interface {
	OnWorld() bool
}

// Viewport keeps the visible slice of memory: the address drawn on the
// top-left cell and the amount of addresses per cell.
//
// Zoom is always a power of two in [1, MaxZoom()], Position always a valid
// address while memory is not empty.
type Viewport struct {
	Position uint32
	Zoom     uint32

	// ShowIP enables the "ip present" color of the base classification
	ShowIP bool

	mem   memory.Service
	dims  Sizer
	pages Pager
}

// NewViewport returns a viewport at position 0, zoom 1
func NewViewport(mem memory.Service, dims Sizer, pages Pager) *Viewport {
	return &Viewport{
		Zoom:   1,
		ShowIP: true,
		mem:    mem,
		dims:   dims,
		pages:  pages,
	}
}

// Rows returns the number of grid rows
func (v *Viewport) Rows() int {
	rows, _ := v.dims.Size()
	if rows < 0 {
		return 0
	}
	return rows
}

// Columns returns the number of grid columns right of the gutter
func (v *Viewport) Columns() int {
	_, cols := v.dims.Size()
	if cols <= Margin {
		return 0
	}
	return cols - Margin
}

// Editable is true only on the world page and when the grid has room
// to be drawn at all.
func (v *Viewport) Editable() bool {
	_, cols := v.dims.Size()
	return v.pages.OnWorld() && cols > Margin
}

// MaxZoom returns the smallest power of two zoom showing the whole memory,
// capped at memory.MaxZoom.
func (v *Viewport) MaxZoom() uint32 {
	coverage := uint64(v.Rows()) * uint64(v.Columns())
	size := uint64(v.mem.Size())
	zoom := uint64(1)

	for coverage*zoom < size && zoom < memory.MaxZoom {
		zoom *= 2
	}
	return uint32(zoom)
}

// ZoomIn halves the zoom (zoom //= 2)
func (v *Viewport) ZoomIn() {
	if v.Editable() {
		v.Zoom = max(v.Zoom/2, 1)
	}
}

// ZoomOut doubles the zoom (zoom *= 2)
func (v *Viewport) ZoomOut() {
	if v.Editable() {
		v.Zoom = min(v.Zoom*2, v.MaxZoom())
	}
}

// ZoomReset clamps the zoom down after the display changed size.
// Never increases it.
func (v *Viewport) ZoomReset() {
	v.Zoom = min(v.Zoom, v.MaxZoom())
}

// PanLeft moves one cell back (pos -= zoom)
func (v *Viewport) PanLeft() {
	if v.Editable() {
		v.Position = v.back(uint64(v.Zoom))
	}
}

// PanRight moves one cell forward (pos += zoom)
func (v *Viewport) PanRight() {
	if v.Editable() {
		v.Position = v.forward(uint64(v.Zoom))
	}
}

// PanUp moves one line back (pos -= zoom * columns)
func (v *Viewport) PanUp() {
	if v.Editable() {
		v.Position = v.back(v.lineArea())
	}
}

// PanDown moves one line forward (pos += zoom * columns)
func (v *Viewport) PanDown() {
	if v.Editable() {
		v.Position = v.forward(v.lineArea())
	}
}

// PanReset moves back to address zero
func (v *Viewport) PanReset() {
	if v.Editable() {
		v.Position = 0
	}
}

// ScrollTo moves the top-left cell to addr
func (v *Viewport) ScrollTo(addr uint32) error {
	if !v.Editable() {
		return nil
	}
	if !v.mem.IsAddressValid(addr) {
		return fmt.Errorf("scrolling to %#x: %w", addr, ErrInvalidAddress)
	}
	v.Position = addr
	return nil
}

// ToggleIP turns the "ip present" color on and off, making the underlying
// block structure easier to see.
func (v *Viewport) ToggleIP() {
	if v.Editable() {
		v.ShowIP = !v.ShowIP
	}
}

// amount of addresses covered by a printed line
func (v *Viewport) lineArea() uint64 {
	return uint64(v.Zoom) * uint64(v.Columns())
}

func (v *Viewport) back(step uint64) uint32 {
	if uint64(v.Position) < step {
		return 0
	}
	return uint32(uint64(v.Position) - step)
}

func (v *Viewport) forward(step uint64) uint32 {
	size := v.mem.Size()
	if size == 0 {
		return 0
	}
	return uint32(min(uint64(v.Position)+step, uint64(size-1)))
}

// Address returns the first address of grid cell i and whether it exists
func (v *Viewport) Address(i int) (uint32, bool) {
	if i < 0 {
		return 0, false
	}
	a := uint64(v.Position) + uint64(v.Zoom)*uint64(i)
	if a > memory.Null || !v.mem.IsAddressValid(uint32(a)) {
		return 0, false
	}
	return uint32(a), true
}
