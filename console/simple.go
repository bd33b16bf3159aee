package console

import (
	"io"
	"strings"
	"sync"
)

// Simple console writes every message line to w
type Simple struct {
	mu          sync.Mutex
	w           io.Writer
	currentLine int // amount of lines written
}

// NewSimple returns a console writing to w
func NewSimple(w io.Writer) *Simple {
	return &Simple{w: w}
}

// WriteConsole writes each non empty line of msg
func (c *Simple) WriteConsole(msg string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, line := range strings.Split(msg, "\n") {
		if line == "" {
			continue
		}
		if _, err := io.WriteString(c.w, line+"\n"); err != nil {
			return err
		}
		c.currentLine++
	}
	return nil
}

// Lines returns the amount of lines written so far
func (c *Simple) Lines() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentLine
}
