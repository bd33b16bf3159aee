package world

import (
	"testing"

	"salis/display"
	"salis/memory"
	"salis/process"
)

type selected struct {
	ext   process.Extent
	alive bool
}

func (s selected) Extent() (process.Extent, bool) { return s.ext, s.alive }

// counting wraps a memory service and counts bulk fetches
type counting struct {
	memory.Service
	calls int
}

func (c *counting) RenderImage(position, zoom, count uint32) []byte {
	c.calls++
	return c.Service.RenderImage(position, zoom, count)
}

func newTestRenderer(mem memory.Service, sel Selected, rows, columns int) (*Renderer, *Viewport, *display.Grid, *display.Palette) {
	v, g := newTestViewport(mem, rows, columns)
	p := display.NewPalette(g)
	return NewRenderer(v, mem, sel, p), v, g, p
}

func TestRenderer_OverlayPriority(t *testing.T) {
	mem := make(flat, 1024)
	for a := 100; a < 110; a++ {
		mem[a] = memory.AllocatedFlag
	}
	sel := selected{process.Extent{IP: 105, SP: 107, Block1Addr: 100, Block1Size: 10}, true}

	tests := []struct {
		name     string
		position uint32
		zoom     uint32
		x        int
		want     display.Role
	}{
		{"ip wins over block 1", 100, 1, 5, display.RoleSelectedIP},
		{"block 1 next to the ip", 100, 1, 4, display.RoleSelectedBlock1},
		{"sp wins over block 1", 100, 1, 7, display.RoleSelectedSP},
		{"past block 1", 100, 1, 10, display.RoleFree},
		{"zoomed cell before block 1", 96, 4, 0, display.RoleFree},
		{"zoomed cell overlapping block 1", 96, 4, 1, display.RoleSelectedBlock1},
		{"zoomed cell with ip and block 1", 96, 4, 2, display.RoleSelectedIP},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, v, g, p := newTestRenderer(mem, sel, 1, 40)
			v.Position, v.Zoom = tt.position, tt.zoom
			r.Render(g)
			if got := g.Cell(0, tt.x+Margin).Color; got != p.Color(tt.want) {
				t.Errorf("cell %d color = %d, want %v (%d)", tt.x, got, tt.want, p.Color(tt.want))
			}
		})
	}
}

func TestRenderer_ChildBlock(t *testing.T) {
	mem := make(flat, 256)
	sel := selected{process.Extent{IP: 0, SP: 1, Block1Addr: 0, Block1Size: 4, Block2Addr: 10, Block2Size: 2}, true}
	r, _, g, p := newTestRenderer(mem, sel, 1, 40)
	r.Render(g)

	for x, want := range map[int]display.Role{
		9:  display.RoleFree,
		10: display.RoleSelectedBlock2,
		11: display.RoleSelectedBlock2,
		12: display.RoleFree,
	} {
		if got := g.Cell(0, x+Margin).Color; got != p.Color(want) {
			t.Errorf("cell %d color = %d, want %v", x, got, want)
		}
	}
}

func TestRenderer_BaseClassification(t *testing.T) {
	tests := []struct {
		name   string
		status byte
		showIP bool
		want   display.Role
	}{
		{"free", 0x03, true, display.RoleFree},
		{"allocated", 0x23, true, display.RoleAllocated},
		{"block start", 0x63, true, display.RoleBlockStart},
		{"ip", 0xe3, true, display.RoleIP},
		{"ip hidden", 0xe3, false, display.RoleBlockStart},
		{"ip hidden, no block", 0xa3, false, display.RoleAllocated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := flat{tt.status}
			// the selected process is dead: no overlay even though it
			// claims the cell
			sel := selected{process.Extent{Block1Addr: 0, Block1Size: 1}, false}
			r, v, g, p := newTestRenderer(mem, sel, 1, 10)
			v.ShowIP = tt.showIP
			r.Render(g)
			if got := g.Cell(0, Margin).Color; got != p.Color(tt.want) {
				t.Errorf("color = %d, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderer_Glyphs(t *testing.T) {
	tests := []struct {
		name   string
		zoom   uint32
		status byte
		want   rune
	}{
		{"instruction symbol", 1, 0x0b, '}'},
		{"instruction symbol with flags", 1, 0xe0, '.'},
		{"zoomed, lower half", 2, 0x0f, '.'},
		{"zoomed, code 16 is the first of the upper half", 2, 0x10, ':'},
		{"zoomed, code 17", 2, 0x11, ':'},
		{"zoomed, top", 2, 0x3f, ':'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := flat{tt.status, tt.status}
			r, v, g, _ := newTestRenderer(mem, selected{}, 1, 10)
			v.Zoom = tt.zoom
			r.Render(g)
			if got := g.Cell(0, Margin).Rune; got != tt.want {
				t.Errorf("glyph = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderer_PastEndOfMemory(t *testing.T) {
	mem := make(flat, 50)
	for i := range mem {
		mem[i] = memory.AllocatedFlag
	}
	r, _, g, p := newTestRenderer(mem, selected{}, 2, 40)
	r.Render(g)

	if got := g.Cell(1, Margin+9); got.Color != p.Color(display.RoleAllocated) {
		t.Errorf("last valid cell = %+v, want allocated", got)
	}
	if got := g.Cell(1, Margin+10); got.Rune != ' ' || got.Color != display.Neutral {
		t.Errorf("cell past memory = %+v, want blank neutral", got)
	}
	if got := g.Cell(0, 0); got.Rune != ' ' {
		t.Errorf("gutter cell = %+v, want untouched", got)
	}
}

func TestRenderer_OneFetchPerFrame(t *testing.T) {
	mem := &counting{Service: make(flat, 4096)}
	r, _, g, _ := newTestRenderer(mem, selected{}, 20, 40)
	r.Render(g)
	if mem.calls != 1 {
		t.Errorf("RenderImage() called %d times per frame, want 1", mem.calls)
	}
}

func TestRenderer_NoRoom(t *testing.T) {
	mem := &counting{Service: make(flat, 64)}
	v := NewViewport(mem, display.NewGrid(10, Margin), page(true))
	g := display.NewGrid(10, Margin)
	r := NewRenderer(v, mem, selected{}, display.NewPalette(g))
	r.Render(g)
	if mem.calls != 0 {
		t.Errorf("RenderImage() called with no visible cells")
	}
}

func TestRenderer_Cursor(t *testing.T) {
	mem := make(flat, 64)
	r, v, g, p := newTestRenderer(mem, selected{}, 1, 10)
	c := NewPicker(v, emptyTable(4), nil)
	r.SetCursor(c)

	c.Start()
	c.Move(0, 3)
	r.Render(g)
	if got := g.Cell(0, Margin+3).Color; got != p.Color(display.RoleCursor) {
		t.Errorf("cursor cell color = %d, want cursor", got)
	}
	if got := g.Cell(0, Margin+2).Color; got != p.Color(display.RoleFree) {
		t.Errorf("cell next to cursor color = %d, want free", got)
	}
}
