package display

import (
	"errors"

	"github.com/jroimartin/gocui"
)

// ErrInvalidPoint is returned when drawing outside of the surface.
// Callers drawing cell by cell are expected to ignore it.
var ErrInvalidPoint = errors.New("invalid point")

// ColorID identifies a registered fg/bg color pair
type ColorID int

// Neutral is the default terminal color pair, always registered
const Neutral ColorID = 0

// Surface is a fixed size character grid
type Surface interface {
	// Size returns the current grid dimensions
	Size() (rows, cols int)

	// SetRune draws a single glyph. Out of bounds coordinates return
	// ErrInvalidPoint and draw nothing.
	SetRune(row, col int, ch rune, color ColorID) error
}

// Registrar hands out color identifiers
type Registrar interface {
	RegisterColor(fg, bg gocui.Attribute) ColorID
}

// Role is the semantic meaning of a color
type Role int

// world roles first, data gutter roles after
const (
	RoleFree Role = iota
	RoleAllocated
	RoleBlockStart
	RoleIP
	RoleSelectedBlock1
	RoleSelectedBlock2
	RoleSelectedSP
	RoleSelectedIP
	RoleHeader
	RoleSelected
	RoleError
	RoleCursor
	roleCount
)

var roleNames = [roleCount]string{
	"free", "allocated", "block-start", "ip",
	"selected-mb1", "selected-mb2", "selected-sp", "selected-ip",
	"header", "selected", "error", "cursor",
}

func (r Role) String() string {
	if r < 0 || r >= roleCount {
		return "unknown"
	}
	return roleNames[r]
}

// fg / bg pairs for every role. Header and error are bold.
var roleColors = [roleCount]struct {
	fg, bg gocui.Attribute
}{
	RoleFree:           {gocui.ColorBlue, gocui.ColorDefault},
	RoleAllocated:      {gocui.ColorBlack, gocui.ColorBlue},
	RoleBlockStart:     {gocui.ColorBlack, gocui.ColorCyan},
	RoleIP:             {gocui.ColorBlack, gocui.ColorWhite},
	RoleSelectedBlock1: {gocui.ColorBlack, gocui.ColorYellow},
	RoleSelectedBlock2: {gocui.ColorBlack, gocui.ColorGreen},
	RoleSelectedSP:     {gocui.ColorBlack, gocui.ColorMagenta},
	RoleSelectedIP:     {gocui.ColorBlack, gocui.ColorRed},
	RoleHeader:         {gocui.ColorBlue | gocui.AttrBold, gocui.ColorDefault},
	RoleSelected:       {gocui.ColorYellow, gocui.ColorDefault},
	RoleError:          {gocui.ColorRed | gocui.AttrBold, gocui.ColorDefault},
	RoleCursor:         {gocui.ColorDefault | gocui.AttrReverse, gocui.ColorDefault},
}

// Palette binds every role to a color registered once at startup.
// It is never modified afterwards.
type Palette struct {
	ids [roleCount]ColorID
}

// NewPalette registers all roles with r
func NewPalette(r Registrar) *Palette {
	p := new(Palette)
	for role, c := range roleColors {
		p.ids[role] = r.RegisterColor(c.fg, c.bg)
	}
	return p
}

// Color returns the color bound to role
func (p *Palette) Color(role Role) ColorID {
	if role < 0 || role >= roleCount {
		return Neutral
	}
	return p.ids[role]
}

// Inset hides the bottom rows of a surface, leaving them to other widgets
type Inset struct {
	Surface
	Bottom int
}

// Size returns the dimensions left after the hidden rows
func (i Inset) Size() (int, int) {
	rows, cols := i.Surface.Size()
	return max(rows-i.Bottom, 0), cols
}

// SetRune draws ch unless it falls on a hidden row
func (i Inset) SetRune(row, col int, ch rune, color ColorID) error {
	if rows, _ := i.Size(); row >= rows {
		return ErrInvalidPoint
	}
	return i.Surface.SetRune(row, col, ch, color)
}
