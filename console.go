package main

import (
	"fmt"
	"strings"

	"salis/console"
	"salis/system"

	"github.com/jroimartin/gocui"
)

// consoleView is the command input line, shown over the status line while
// a command is typed
const consoleView = "console"

var history = console.NewHistory(console.HistorySize)

// openConsole creates the input view and gives it the focus
func openConsole(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	v, err := g.SetView(consoleView, -1, maxY-2, maxX, maxY)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	v.Frame = false
	v.Editable = true
	v.Clear()
	_ = v.SetCursor(0, 0)
	g.Cursor = true
	_, err = g.SetCurrentView(consoleView)
	return err
}

// closeConsole drops the input view and gives the focus back to the world
func closeConsole(g *gocui.Gui) error {
	g.Cursor = false
	if err := g.DeleteView(consoleView); err != nil {
		return err
	}
	_, err := g.SetCurrentView(keysView)
	return err
}

// bindConsole attaches the keys of the input line
func bindConsole(g *gocui.Gui, sys *system.System) error {
	execute := func(g *gocui.Gui, v *gocui.View) error {
		line := strings.TrimSpace(v.Buffer())
		history.Add(line)
		if err := closeConsole(g); err != nil {
			return err
		}
		if line == "" {
			return nil
		}
		return checkQuit(sys.Execute(line))
	}
	cancel := func(g *gocui.Gui, v *gocui.View) error {
		history.Add("")
		return closeConsole(g)
	}
	prev := func(g *gocui.Gui, v *gocui.View) error {
		if cmd, ok := history.Prev(); ok {
			setLine(v, cmd)
		}
		return nil
	}
	next := func(g *gocui.Gui, v *gocui.View) error {
		if cmd, ok := history.Next(); ok {
			setLine(v, cmd)
		}
		return nil
	}

	bindings := []struct {
		key     gocui.Key
		handler func(*gocui.Gui, *gocui.View) error
	}{
		{gocui.KeyEnter, execute},
		{gocui.KeyEsc, cancel},
		{gocui.KeyArrowUp, prev},
		{gocui.KeyArrowDown, next},
	}
	for _, b := range bindings {
		if err := g.SetKeybinding(consoleView, b.key, gocui.ModNone, b.handler); err != nil {
			return err
		}
	}
	return nil
}

// setLine replaces the input line with s, cursor at its end
func setLine(v *gocui.View, s string) {
	v.Clear()
	fmt.Fprint(v, s)
	_ = v.SetCursor(len(s), 0)
}
