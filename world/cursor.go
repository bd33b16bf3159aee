package world

import (
	"salis/process"
)

// Picker is the world cursor. It maps a screen position back to a memory
// address and selects the process owning it.
type Picker struct {
	Row, Col int
	Active   bool

	view  *Viewport
	table process.Table
	sel   *process.Selection
}

// NewPicker returns an inactive cursor at the top-left world cell
func NewPicker(v *Viewport, table process.Table, sel *process.Selection) *Picker {
	return &Picker{
		Col:   Margin,
		view:  v,
		table: table,
		sel:   sel,
	}
}

// Start shows the cursor. Only possible while the world is editable.
func (p *Picker) Start() bool {
	if !p.view.Editable() {
		return false
	}
	p.Active = true
	p.Clamp()
	return true
}

// Stop hides the cursor
func (p *Picker) Stop() {
	p.Active = false
}

// Move shifts the cursor, keeping it on the world grid
func (p *Picker) Move(dRow, dCol int) {
	p.Row += dRow
	p.Col += dCol
	p.Clamp()
}

// Clamp keeps the cursor on rows [0, rows) and columns [Margin, cols)
func (p *Picker) Clamp() {
	rows := p.view.Rows()
	cols := p.view.Columns() + Margin
	p.Row = max(0, min(p.Row, rows-1))
	p.Col = max(Margin, min(p.Col, cols-1))
}

// At reports whether the active cursor is on row / col
func (p *Picker) At(row, col int) bool {
	return p.Active && p.Row == row && p.Col == col
}

// Address returns the address under the cursor and whether it is valid
func (p *Picker) Address() (uint32, bool) {
	i := p.Row*p.view.Columns() + (p.Col - Margin)
	return p.view.Address(i)
}

// Owner scans all process ids in ascending order and returns the first
// living one owning addr.
func (p *Picker) Owner(addr uint32) (uint32, bool) {
	for id := uint32(0); id < p.table.Capacity(); id++ {
		if p.table.IsFree(id) {
			continue
		}
		if p.table.Extent(id).Owns(addr) {
			return id, true
		}
	}
	return 0, false
}

// Pick selects the process under the cursor. The selection is unchanged
// when the address is invalid or nobody owns it.
func (p *Picker) Pick() bool {
	addr, ok := p.Address()
	if !ok {
		return false
	}
	id, ok := p.Owner(addr)
	if !ok {
		return false
	}
	p.sel.ID = id
	return true
}
