package process

import (
	"errors"
	"fmt"
)

// ErrInvalidProcess is returned when selecting an id outside the table
var ErrInvalidProcess = errors.New("invalid process")

// Extent is the part of a process the viewer overlays on memory.
// Only meaningful while the process is alive.
type Extent struct {
	IP         uint32
	SP         uint32
	Block1Addr uint32
	Block1Size uint32
	Block2Addr uint32
	Block2Size uint32
}

// HasChild returns false while the process owns only its first block
func (e Extent) HasChild() bool {
	return e.Block2Size != 0
}

// Owns reports whether addr falls inside block 1 or block 2
func (e Extent) Owns(addr uint32) bool {
	return inBlock(addr, e.Block1Addr, e.Block1Size) ||
		inBlock(addr, e.Block2Addr, e.Block2Size)
}

func inBlock(addr, start, size uint32) bool {
	return addr >= start && uint64(addr) < uint64(start)+uint64(size)
}

// Table is the query interface of the simulation process table
type Table interface {
	// Capacity returns the amount of process slots (ids are [0, Capacity))
	Capacity() uint32

	// Count returns the amount of living processes
	Count() uint32

	// First and Last return the top and bottom of the reaper queue
	First() uint32
	Last() uint32

	IsFree(id uint32) bool
	Extent(id uint32) Extent
}

// Selection keeps the id of the currently selected process.
// The id stays selected after the process dies; Alive tells them apart.
type Selection struct {
	ID    uint32
	table Table
}

// NewSelection returns a selection pointing at process 0
func NewSelection(table Table) *Selection {
	return &Selection{table: table}
}

// Alive returns true if the selected process is running
func (s *Selection) Alive() bool {
	return s.ID < s.table.Capacity() && !s.table.IsFree(s.ID)
}

// Extent returns the selected process extent and whether it can be trusted
func (s *Selection) Extent() (Extent, bool) {
	if !s.Alive() {
		return Extent{}, false
	}
	return s.table.Extent(s.ID), true
}

// Prev selects the previous id, wrapping around the table capacity
func (s *Selection) Prev() {
	c := s.table.Capacity()
	if c == 0 {
		return
	}
	s.ID = (s.ID + c - 1) % c
}

// Next selects the next id, wrapping around the table capacity
func (s *Selection) Next() {
	c := s.table.Capacity()
	if c == 0 {
		return
	}
	s.ID = (s.ID + 1) % c
}

// First selects the process on top of the reaper queue
func (s *Selection) First() {
	if s.table.Count() > 0 {
		s.ID = s.table.First()
	}
}

// Last selects the process closest to death
func (s *Selection) Last() {
	if s.table.Count() > 0 {
		s.ID = s.table.Last()
	}
}

// Select selects the given id
func (s *Selection) Select(id uint32) error {
	if id >= s.table.Capacity() {
		return fmt.Errorf("selecting process %d: %w", id, ErrInvalidProcess)
	}
	s.ID = id
	return nil
}
