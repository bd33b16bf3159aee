package world

import (
	"testing"

	"salis/display"
	"salis/process"
)

// procs is a process table; nil slots are free
type procs []*process.Extent

func emptyTable(capacity int) procs { return make(procs, capacity) }

func (t procs) Capacity() uint32 { return uint32(len(t)) }
func (t procs) Count() uint32    { return 0 }
func (t procs) First() uint32    { return 0 }
func (t procs) Last() uint32     { return 0 }
func (t procs) IsFree(id uint32) bool {
	return t[id] == nil
}
func (t procs) Extent(id uint32) process.Extent {
	return *t[id]
}

func TestPicker_Address(t *testing.T) {
	v, _ := newTestViewport(sized(1<<16), 10, 40)
	v.Position, v.Zoom = 1000, 4
	p := NewPicker(v, emptyTable(1), nil)
	p.Start()

	p.Move(2, 5)
	// 1000 + 4 * (2 * 40 + 5)
	if addr, ok := p.Address(); !ok || addr != 1340 {
		t.Errorf("Address() = %d, %v; want 1340, true", addr, ok)
	}
}

func TestPicker_Clamp(t *testing.T) {
	v, _ := newTestViewport(sized(1024), 10, 40)
	p := NewPicker(v, emptyTable(1), nil)
	p.Start()

	tests := []struct {
		name           string
		dRow, dCol     int
		wantRow, wantC int
	}{
		{"left of the grid", 0, -5, 0, Margin},
		{"above the grid", -3, 0, 0, Margin},
		{"past the last column", 0, 100, 0, Margin + 39},
		{"past the last row", 100, 0, 9, Margin + 39},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p.Move(tt.dRow, tt.dCol)
			if p.Row != tt.wantRow || p.Col != tt.wantC {
				t.Errorf("cursor at %d,%d; want %d,%d", p.Row, p.Col, tt.wantRow, tt.wantC)
			}
		})
	}
}

func TestPicker_Start(t *testing.T) {
	v := NewViewport(sized(1024), display.NewGrid(10, Margin+40), page(false))
	p := NewPicker(v, emptyTable(1), nil)
	if p.Start() || p.Active {
		t.Errorf("Start() off the world page activated the cursor")
	}
}

func TestPicker_Pick(t *testing.T) {
	single := procs{nil, {Block1Addr: 400, Block1Size: 50}}
	overlapping := procs{
		nil,
		nil,
		{Block1Addr: 600, Block1Size: 10, Block2Addr: 490, Block2Size: 20},
		{Block1Addr: 480, Block1Size: 40},
	}

	tests := []struct {
		name     string
		table    procs
		position uint32
		col      int
		picked   bool
		want     uint32
	}{
		{"nobody owns 500", single, 500, 0, false, 0},
		{"block 1 owner", single, 420, 0, true, 1},
		{"child block, lowest id wins", overlapping, 495, 0, true, 2},
		{"past end of memory", single, 1020, 10, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _ := newTestViewport(sized(1024), 4, 40)
			v.Position = tt.position
			sel := process.NewSelection(tt.table)
			p := NewPicker(v, tt.table, sel)
			p.Start()
			p.Move(0, tt.col)

			if got := p.Pick(); got != tt.picked {
				t.Errorf("Pick() = %v, want %v", got, tt.picked)
			}
			if sel.ID != tt.want {
				t.Errorf("selection = %d, want %d", sel.ID, tt.want)
			}
		})
	}
}
