package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"salis/console"
	"salis/display"
	"salis/logger"
	"salis/printer"
	"salis/sim"
	"salis/system"

	"github.com/jroimartin/gocui"
	"golang.org/x/term"
)

// headless frame dimensions
const (
	textRows = 40
	textCols = 120
)

// refresh period of the main loop while the engine runs
const tick = 50 * time.Millisecond

func main() {
	order := flag.Uint("order", 16, "memory order, the world has 1<<order cells")
	procs := flag.Int("procs", 32, "number of organisms seeded at start")
	seed := flag.Int64("seed", 1, "random seed")
	logPath := flag.String("log", "salis.log", "log file, empty for stdout")
	headless := flag.Bool("headless", false, "print a single frame and exit")
	flag.Parse()

	l, closer, err := logger.New(*logPath)
	if err != nil {
		log.Fatalln(err)
	}
	defer closer.Close()

	w, err := sim.New(uint32(*order))
	if err != nil {
		log.Fatalln(err)
	}
	placed := w.Seed(*procs, rand.New(rand.NewSource(*seed)))
	l.Printf("order %d, seed %d, %d organisms placed", *order, *seed, placed)

	if *headless || !term.IsTerminal(int(os.Stdout.Fd())) {
		printFrame(w, l)
		return
	}

	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln("Couldn't create gui!")
	}
	defer g.Close()
	g.InputEsc = true

	screen := display.NewScreen(g)
	sys := system.InitializeSystem(w, screen, console.NewGui(g), l)
	sys.Printer.Title = fmt.Sprintf("order %d", *order)

	// the bottom row belongs to the status and console views
	g.SetManagerFunc(layout(sys, display.Inset{Surface: screen, Bottom: 1}))

	if err := bindKeys(g, sys); err != nil {
		log.Panicln(err)
	}
	run(g, sys)

	if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
}

// printFrame writes the world page of a single frame to stdout
func printFrame(w *sim.World, l *log.Logger) {
	grid := display.NewGrid(textRows, textCols)
	sys := system.InitializeSystem(w, grid, console.NewSimple(os.Stderr), l)
	sys.Printer.Page = printer.PageWorld
	sys.Printer.Title = "headless"
	sys.Frame(grid)

	// show the whole memory
	for sys.View.Zoom < sys.View.MaxZoom() {
		sys.View.ZoomOut()
	}
	grid.Clear()
	sys.Frame(grid)
	fmt.Print(grid.String())
}

// run refreshes the screen on every tick. gocui only allows touching the
// screen through Update, so the engine also cycles from there.
func run(g *gocui.Gui, sys *system.System) {
	ticker := time.NewTicker(tick)

	go func() {
		for range ticker.C {
			g.Update(func(g *gocui.Gui) error {
				sys.Tick()
				return nil
			})
		}
	}()
}

// gocui layout: the whole screen is drawn by the system, the status line
// and the console are views on the bottom row.
func layout(sys *system.System, s display.Surface) func(g *gocui.Gui) error {
	return func(g *gocui.Gui) error {
		maxX, maxY := g.Size()

		sys.Frame(s)

		if v, err := g.SetView(keysView, -1, -1, 0, 0); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
			v.Frame = false
			if _, err := g.SetCurrentView(keysView); err != nil {
				return err
			}
		}

		if v, err := g.SetView(console.StatusView, -1, maxY-2, maxX, maxY); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
			v.Frame = false
		}

		if _, err := g.View(consoleView); err == nil {
			if _, err := g.SetView(consoleView, -1, maxY-2, maxX, maxY); err != nil {
				return err
			}
		}
		return nil
	}
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}
