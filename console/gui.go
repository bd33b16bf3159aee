package console

import (
	"fmt"
	"strings"

	"github.com/jroimartin/gocui"
)

// StatusView is the name of the gocui view messages are written to
const StatusView = "status"

// Gui shows messages on the status view. Lines are handed to a goroutine
// which applies them in the gocui main loop.
type Gui struct {
	consoleOut chan string // lines waiting to be drawn
	g          *gocui.Gui  // main gocui GUI object
}

// NewGui returns a console writing to the status view of g
func NewGui(g *gocui.Gui) *Gui {
	c := new(Gui)
	c.consoleOut = make(chan string, 16)
	c.g = g
	c.initGui()
	return c
}

// initGui starts the goroutine moving lines into the main loop
func (c *Gui) initGui() {
	go func() {
		for s := range c.consoleOut {
			line := s
			c.g.Update(func(g *gocui.Gui) error {
				v, err := g.View(StatusView)
				if err != nil {
					// not laid out yet, the line is lost
					return nil
				}
				v.Clear()
				fmt.Fprint(v, line)
				return nil
			})
		}
	}()
}

// WriteConsole displays msg on the status view. The view holds one line,
// so only the last non empty line of msg stays visible.
func (c *Gui) WriteConsole(msg string) error {
	for _, line := range strings.Split(msg, "\n") {
		if line != "" {
			c.consoleOut <- line
		}
	}
	return nil
}
