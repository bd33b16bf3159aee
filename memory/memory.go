package memory

// Service is the query interface of the simulation memory.
// Implementations may sit in process, behind a socket or a pipe; the viewer
// only ever reads through it.
type Service interface {

	// Size returns the amount of addressable cells
	Size() uint32

	// IsAddressValid reports whether addr < Size()
	IsAddressValid(addr uint32) bool

	// RenderImage returns count status bytes, one per rendered cell, where
	// cell i covers the addresses [position+zoom*i, position+zoom*(i+1)).
	// position must be a valid address, zoom must be in [1, MaxZoom].
	RenderImage(position, zoom, count uint32) []byte
}

// Stats is implemented by memory services able to report usage counters.
type Stats interface {
	Order() uint32
	Allocated() uint32
	InstCount(inst uint8) uint32
}

// MaxZoom is the largest stride RenderImage has to support
const MaxZoom = 1 << 16

// Null is used by the engine as an empty address / id
const Null = 0xffffffff
