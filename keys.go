package main

import (
	"salis/system"

	"github.com/jroimartin/gocui"
)

// keysView is an empty view holding the focus while the console is closed.
// World key bindings are attached to it so they never fire while typing.
const keysView = "keys"

var specialKeys = map[gocui.Key]system.Key{
	gocui.KeyArrowLeft:  system.KeyLeft,
	gocui.KeyArrowRight: system.KeyRight,
	gocui.KeyArrowUp:    system.KeyUp,
	gocui.KeyArrowDown:  system.KeyDown,
	gocui.KeyEnter:      system.KeyEnter,
	gocui.KeyEsc:        system.KeyEsc,
}

// bindKeys attaches every viewer key
func bindKeys(g *gocui.Gui, sys *system.System) error {
	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		return err
	}

	for key, k := range specialKeys {
		k := k
		handler := func(g *gocui.Gui, v *gocui.View) error {
			return checkQuit(sys.HandleKey(k))
		}
		if err := g.SetKeybinding(keysView, key, gocui.ModNone, handler); err != nil {
			return err
		}
	}

	for _, ch := range system.Runes {
		ch := ch
		handler := func(g *gocui.Gui, v *gocui.View) error {
			return checkQuit(sys.HandleRune(ch))
		}
		if err := g.SetKeybinding(keysView, ch, gocui.ModNone, handler); err != nil {
			return err
		}
	}

	// c leaves the cursor, or opens the console
	if err := g.SetKeybinding(keysView, 'c', gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
		if sys.Cursor.Active {
			sys.Cursor.Stop()
			return nil
		}
		return openConsole(g)
	}); err != nil {
		return err
	}

	return bindConsole(g, sys)
}

// checkQuit turns the system quit request into the gocui one
func checkQuit(err error) error {
	if err == system.ErrQuit {
		return gocui.ErrQuit
	}
	return err
}
