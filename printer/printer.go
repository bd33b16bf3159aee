package printer

import (
	"fmt"
	"strconv"
	"strings"

	"salis/display"
	"salis/instset"
	"salis/memory"
	"salis/process"
	"salis/world"
)

// Page is one of the data pages of the gutter
type Page int

// data pages, in flip order
const (
	PageMemory Page = iota
	PageProcess
	PageWorld
	pageCount
)

func (p Page) String() string {
	switch p {
	case PageMemory:
		return "MEMORY"
	case PageProcess:
		return "PROCESS"
	case PageWorld:
		return "WORLD"
	default:
		return "UNKNOWN"
	}
}

// Engine is everything the printer reads from the simulation
type Engine interface {
	memory.Service
	memory.Stats
	process.Table
	CycleCount() uint64
	Elements() []string
	ProcData(id uint32) []uint32
	Inst(addr uint32) uint8
}

// Printer draws the data pages: simulation counters on the left gutter and,
// on the process page, a table of all processes below them.
type Printer struct {
	Page    Page
	Hex     bool
	Running bool
	Title   string

	// first id and first element shown on the process table
	ListScroll uint32
	ElemScroll int

	// GeneView shows genomes on the process table, starting at GeneScroll
	GeneView   bool
	GeneScroll uint32

	scroll   int
	selected []uint32

	engine  Engine
	sel     *process.Selection
	view    *world.Viewport
	palette *display.Palette
	main    []Field
	pages   [pageCount][]Field
}

// New returns a printer showing the memory page
func New(engine Engine, sel *process.Selection, palette *display.Palette) *Printer {
	p := new(Printer)
	p.engine = engine
	p.sel = sel
	p.palette = palette
	p.main = mainFields()
	for page := Page(0); page < pageCount; page++ {
		p.pages[page] = pageFields(page, engine.Elements())
	}
	return p
}

// SetViewport links the viewport shown on the world page
func (p *Printer) SetViewport(v *world.Viewport) {
	p.view = v
}

// OnWorld reports whether the world page is being displayed
func (p *Printer) OnWorld() bool {
	return p.Page == PageWorld
}

// Flip changes page by offset, wrapping around
func (p *Printer) Flip(offset int) {
	n := int(pageCount)
	p.Page = Page(((int(p.Page)+offset)%n + n) % n)
	p.scroll = 0
}

// ToggleHex switches between decimal and hexadecimal values
func (p *Printer) ToggleHex() {
	p.Hex = !p.Hex
}

// ScrollMain scrolls the data lines when they do not fit in rows
func (p *Printer) ScrollMain(offset, rows int) {
	maxScroll := len(p.main) + len(p.pages[p.Page]) + 5 - rows
	p.scroll = max(0, min(p.scroll+offset, maxScroll))
}

// Fields returns the fields of the current page
func (p *Printer) Fields() []Field {
	return p.pages[p.Page]
}

// Draw prints the current page on s
func (p *Printer) Draw(s display.Surface) {
	_, cols := s.Size()
	width := cols - 1
	if p.Page == PageWorld {
		width = min(width, world.Margin-1)
	}
	p.selected = p.engine.ProcData(p.sel.ID)

	p.line(s, 1, fmt.Sprintf("SALIS[%s]", p.Title), p.palette.Color(display.RoleHeader), width)
	p.widget(s, 2, p.main, width)

	top := len(p.main) + 3
	p.line(s, top, p.Page.String(), p.palette.Color(display.RoleHeader), width)
	p.widget(s, top+1, p.pages[p.Page], width)

	if p.Page == PageProcess {
		if p.GeneView {
			p.geneList(s, top+len(p.pages[p.Page])+2, width)
		} else {
			p.procList(s, top+len(p.pages[p.Page])+2, width)
		}
	}
}

func (p *Printer) widget(s display.Surface, y int, fields []Field, width int) {
	for i, f := range fields {
		switch f.Kind {
		case KindSeparator:
			continue
		case KindHeader:
			p.line(s, y+i, f.Label, p.palette.Color(display.RoleHeader), width)
		case KindValue:
			p.line(s, y+i, p.format(f), display.Neutral, width)
		case KindSelected:
			color := display.Neutral
			if p.sel.Alive() {
				color = p.palette.Color(display.RoleSelected)
			}
			p.line(s, y+i, p.format(f), color, width)
		}
	}
}

func (p *Printer) format(f Field) string {
	return fmt.Sprintf("%-10s : %10s", display.Truncate(f.Label, 10), p.Value(f))
}

// Value returns the printed value of a field
func (p *Printer) Value(f Field) string {
	switch f.Key {
	case KeyCycle:
		return p.wide(p.engine.CycleCount())
	case KeyState:
		if p.Running {
			return "running"
		}
		return "paused"
	case KeyOrder:
		return p.number(p.engine.Order())
	case KeySize:
		return p.number(p.engine.Size())
	case KeyAllocated:
		return p.number(p.engine.Allocated())
	case KeyInstCount:
		return p.number(p.engine.InstCount(uint8(f.Index)))
	case KeyCount:
		return p.number(p.engine.Count())
	case KeyCapacity:
		return p.number(p.engine.Capacity())
	case KeyFirst:
		return p.number(p.engine.First())
	case KeyLast:
		return p.number(p.engine.Last())
	case KeySelected:
		return p.number(p.sel.ID)
	case KeyPosition:
		if p.view != nil {
			return p.number(p.view.Position)
		}
	case KeyZoom:
		if p.view != nil {
			return p.number(p.view.Zoom)
		}
	case KeyProcElement:
		if p.selected == nil {
			p.selected = p.engine.ProcData(p.sel.ID)
		}
		if f.Index >= 0 && f.Index < len(p.selected) {
			return p.number(p.selected[f.Index])
		}
	}
	return ""
}

// number formats a 32 bit engine value; memory.Null prints as dashes
func (p *Printer) number(v uint32) string {
	if v == memory.Null {
		return "---"
	}
	return p.wide(uint64(v))
}

func (p *Printer) wide(v uint64) string {
	if p.Hex {
		return "0x" + strconv.FormatUint(v, 16)
	}
	return strconv.FormatUint(v, 10)
}

// line prints text on the gutter, scrolled
func (p *Printer) line(s display.Surface, y int, text string, color display.ColorID, width int) {
	rows, _ := s.Size()
	y -= p.scroll
	if y < 0 || y >= rows {
		return
	}
	display.Text(s, y, 1, text, color, width)
}

func (p *Printer) procList(s display.Surface, y int, width int) {
	rows, _ := s.Size()
	elements := p.engine.Elements()
	first := min(max(p.ElemScroll, 0), len(elements))

	cells := []string{fmt.Sprintf("%-10s", "pidx")}
	for _, e := range elements[first:] {
		cells = append(cells, fmt.Sprintf("%10s", e))
	}
	p.line(s, y, strings.Join(cells, " | "), p.palette.Color(display.RoleHeader), width)

	id := p.ListScroll
	for y++; y-p.scroll < rows; y++ {
		if id >= p.engine.Capacity() {
			break
		}
		color := display.Neutral
		if id == p.sel.ID {
			color = p.palette.Color(display.RoleSelected)
		}

		cells = []string{fmt.Sprintf("%-10s", p.wide(uint64(id)))}
		for _, v := range p.engine.ProcData(id)[first:] {
			cells = append(cells, fmt.Sprintf("%10s", p.number(v)))
		}
		p.line(s, y, strings.Join(cells, " | "), color, width)
		id++
	}
}

// genes start right of the "pidx |" column
const geneColumn = 14

// geneList prints the genome of every process: block 1 then block 2, in
// the colors of the selected process on the world page
func (p *Printer) geneList(s display.Surface, y int, width int) {
	rows, _ := s.Size()
	header := fmt.Sprintf("%-10s | genes %s -->", "pidx", p.wide(uint64(p.GeneScroll)))
	p.line(s, y, header, p.palette.Color(display.RoleHeader), width)

	id := p.ListScroll
	for y++; y-p.scroll < rows; y++ {
		if id >= p.engine.Capacity() {
			break
		}
		color := display.Neutral
		if id == p.sel.ID {
			color = p.palette.Color(display.RoleSelected)
		}
		p.line(s, y, fmt.Sprintf("%-10s |", p.wide(uint64(id))), color, width)

		if !p.engine.IsFree(id) && y-p.scroll >= 0 {
			p.genome(s, y-p.scroll, p.engine.Extent(id), width+1)
		}
		id++
	}
}

func (p *Printer) genome(s display.Surface, row int, ext process.Extent, limit int) {
	x := p.geneBlock(s, row, p.GeneScroll, geneColumn, ext.Block1Addr, ext.Block1Size, ext, display.RoleSelectedBlock1, limit)

	var gidx uint32
	if ext.Block1Size < p.GeneScroll {
		gidx = p.GeneScroll - ext.Block1Size
	}
	p.geneBlock(s, row, gidx, x, ext.Block2Addr, ext.Block2Size, ext, display.RoleSelectedBlock2, limit)
}

// geneBlock prints genes [gidx, size) of the block at addr from column x
// on. Returns the column after the last gene printed.
func (p *Printer) geneBlock(s display.Surface, row int, gidx uint32, x int, addr, size uint32, ext process.Extent, role display.Role, limit int) int {
	for ; gidx < size && x < limit; gidx++ {
		gaddr := addr + gidx

		r := role
		switch gaddr {
		case ext.IP:
			r = display.RoleSelectedIP
		case ext.SP:
			r = display.RoleSelectedSP
		}
		_ = s.SetRune(row, x, instset.Symbol(p.engine.Inst(gaddr)), p.palette.Color(r))
		x++
	}
	return x
}
