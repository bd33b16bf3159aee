package sim

import (
	"errors"
	"fmt"
	"math/rand"

	"salis/instset"
	"salis/memory"
	"salis/process"
)

// errors returned by World
var (
	ErrBadOrder    = errors.New("memory order out of range")
	ErrBadBlock    = errors.New("block outside of memory")
	ErrNotFree     = errors.New("memory already allocated")
	ErrNoProcesses = errors.New("no living processes")
)

// MaxOrder is the largest supported memory order (size == 1 << order)
const MaxOrder = 31

// Process is a single organism: two memory blocks, a virtual CPU with four
// registers and a stack of eight.
type Process struct {
	MB1A, MB1S uint32
	MB2A, MB2S uint32
	IP, SP     uint32
	RAX, RBX   uint32
	RCX, RDX   uint32
	Stack      [8]uint32
}

// Extent returns the part of the process drawn by the viewer
func (p Process) Extent() process.Extent {
	return process.Extent{
		IP:         p.IP,
		SP:         p.SP,
		Block1Addr: p.MB1A,
		Block1Size: p.MB1S,
		Block2Addr: p.MB2A,
		Block2Size: p.MB2S,
	}
}

// World is an in-process stand-in for the simulation engine. Every memory
// byte keeps an allocated flag and an instruction; processes own blocks of
// memory. It implements memory.Service, memory.Stats and process.Table.
type World struct {
	order uint32
	mem   []byte
	procs []Process
	alive []bool

	// reaper queue, oldest (closest to death) first
	queue []uint32

	allocated uint32
	counts    [instset.Count]uint32
	cycles    uint64
}

// New returns an empty world with 1 << order memory cells
func New(order uint32) (*World, error) {
	if order < 1 || order > MaxOrder {
		return nil, fmt.Errorf("order %d: %w", order, ErrBadOrder)
	}
	w := new(World)
	w.order = order
	w.mem = make([]byte, uint32(1)<<order)
	w.counts[0] = w.Size()
	return w, nil
}

// Order returns the memory order
func (w *World) Order() uint32 {
	return w.order
}

// Size returns the amount of memory cells
func (w *World) Size() uint32 {
	return uint32(len(w.mem))
}

// IsAddressValid checks addr < Size()
func (w *World) IsAddressValid(addr uint32) bool {
	return uint64(addr) < uint64(len(w.mem))
}

// Allocated returns the amount of cells with the allocated flag set
func (w *World) Allocated() uint32 {
	return w.allocated
}

// InstCount returns the amount of cells holding inst
func (w *World) InstCount(inst uint8) uint32 {
	return w.counts[inst%instset.Count]
}

// CycleCount returns the amount of cycles run so far
func (w *World) CycleCount() uint64 {
	return w.cycles
}

// Inst returns the instruction at addr
func (w *World) Inst(addr uint32) uint8 {
	return w.mem[addr] & memory.InstructionMask
}

// Write puts inst at addr, keeping the allocated flag
func (w *World) Write(addr uint32, inst uint8) error {
	if !w.IsAddressValid(addr) {
		return fmt.Errorf("writing %#x: %w", addr, ErrBadBlock)
	}
	inst &= memory.InstructionMask
	w.counts[w.Inst(addr)]--
	w.counts[inst]++
	w.mem[addr] = w.mem[addr]&memory.AllocatedFlag | inst
	return nil
}

// RenderImage renders count cells of zoom addresses each, starting at
// position. A cell keeps the mean instruction of its addresses and the
// allocated flag if any of them is allocated. IP and block start flags are
// added for every living process.
func (w *World) RenderImage(position, zoom, count uint32) []byte {
	image := make([]byte, count)
	if zoom == 0 || zoom > memory.MaxZoom || !w.IsAddressValid(position) {
		return image
	}

	for i := range image {
		var sum, alloc uint32
		start := uint64(position) + uint64(zoom)*uint64(i)

		for a := start; a < start+uint64(zoom) && a < uint64(len(w.mem)); a++ {
			b := w.mem[a]
			sum += uint32(b & memory.InstructionMask)
			if b&memory.AllocatedFlag != 0 {
				alloc = memory.AllocatedFlag
			}
		}
		image[i] = byte(sum/zoom) | byte(alloc)
	}

	end := uint64(position) + uint64(zoom)*uint64(count)
	flag := func(addr uint32, f byte) {
		if uint64(addr) >= uint64(position) && uint64(addr) < end {
			image[(addr-position)/zoom] |= f
		}
	}
	for id, p := range w.procs {
		if !w.alive[id] {
			continue
		}
		flag(p.IP, memory.IPFlag)
		flag(p.MB1A, memory.BlockFlag)
		if p.MB2S != 0 {
			flag(p.MB2A, memory.BlockFlag)
		}
	}
	return image
}

// Capacity returns the amount of process slots
func (w *World) Capacity() uint32 {
	return uint32(len(w.procs))
}

// Count returns the amount of living processes
func (w *World) Count() uint32 {
	return uint32(len(w.queue))
}

// First returns the newest process, memory.Null if there is none
func (w *World) First() uint32 {
	if len(w.queue) == 0 {
		return memory.Null
	}
	return w.queue[len(w.queue)-1]
}

// Last returns the process closest to death, memory.Null if there is none
func (w *World) Last() uint32 {
	if len(w.queue) == 0 {
		return memory.Null
	}
	return w.queue[0]
}

// IsFree returns true if slot id holds no living process
func (w *World) IsFree(id uint32) bool {
	return id >= uint32(len(w.procs)) || !w.alive[id]
}

// Extent returns the extent of process id
func (w *World) Extent(id uint32) process.Extent {
	return w.Proc(id).Extent()
}

// Proc returns a copy of process id. Free slots return a process with all
// fields set to memory.Null.
func (w *World) Proc(id uint32) Process {
	if w.IsFree(id) {
		return nullProcess()
	}
	return w.procs[id]
}

// ProcElements names the fields returned by ProcData, in order
var ProcElements = []string{
	"mb1a", "mb1s", "mb2a", "mb2s", "ip", "sp",
	"rax", "rbx", "rcx", "rdx",
	"stack[0]", "stack[1]", "stack[2]", "stack[3]",
	"stack[4]", "stack[5]", "stack[6]", "stack[7]",
}

// Elements returns the names of the process data fields
func (w *World) Elements() []string {
	return ProcElements
}

// ProcData returns all fields of process id, in ProcElements order
func (w *World) ProcData(id uint32) []uint32 {
	p := w.Proc(id)
	data := []uint32{
		p.MB1A, p.MB1S, p.MB2A, p.MB2S, p.IP, p.SP,
		p.RAX, p.RBX, p.RCX, p.RDX,
	}
	return append(data, p.Stack[:]...)
}

func nullProcess() Process {
	p := Process{
		MB1A: memory.Null, MB1S: memory.Null,
		MB2A: memory.Null, MB2S: memory.Null,
		IP: memory.Null, SP: memory.Null,
		RAX: memory.Null, RBX: memory.Null,
		RCX: memory.Null, RDX: memory.Null,
	}
	for i := range p.Stack {
		p.Stack[i] = memory.Null
	}
	return p
}

// Create allocates size cells at addr and starts a process on them.
// Returns the id of the new process.
func (w *World) Create(addr, size uint32) (uint32, error) {
	if err := w.checkFree(addr, size); err != nil {
		return 0, err
	}
	w.allocate(addr, size)

	p := Process{MB1A: addr, MB1S: size, IP: addr, SP: addr}
	id := w.slot()
	w.procs[id] = p
	w.alive[id] = true
	w.queue = append(w.queue, id)
	return id, nil
}

// Kill frees the process closest to death
func (w *World) Kill() error {
	if len(w.queue) == 0 {
		return ErrNoProcesses
	}
	id := w.queue[0]
	w.queue = w.queue[1:]

	p := w.procs[id]
	w.unallocate(p.MB1A, p.MB1S)
	w.unallocate(p.MB2A, p.MB2S)
	w.alive[id] = false
	return nil
}

func (w *World) checkFree(addr, size uint32) error {
	if size == 0 || uint64(addr)+uint64(size) > uint64(len(w.mem)) {
		return fmt.Errorf("block %#x+%d: %w", addr, size, ErrBadBlock)
	}
	for a := addr; a < addr+size; a++ {
		if w.mem[a]&memory.AllocatedFlag != 0 {
			return fmt.Errorf("block %#x+%d: %w", addr, size, ErrNotFree)
		}
	}
	return nil
}

func (w *World) allocate(addr, size uint32) {
	for a := addr; a < addr+size; a++ {
		w.mem[a] |= memory.AllocatedFlag
	}
	w.allocated += size
}

func (w *World) unallocate(addr, size uint32) {
	for a := addr; a < addr+size; a++ {
		w.mem[a] &^= memory.AllocatedFlag
	}
	w.allocated -= size
}

// slot returns the lowest free process id, growing the table if needed
func (w *World) slot() uint32 {
	for id, alive := range w.alive {
		if !alive {
			return uint32(id)
		}
	}
	w.procs = append(w.procs, Process{})
	w.alive = append(w.alive, false)
	return uint32(len(w.procs) - 1)
}

// Seed scatters count organisms with random genomes over memory.
// Returns the amount actually placed.
func (w *World) Seed(count int, r *rand.Rand) int {
	placed := 0
	for tries := 0; placed < count && tries < count*16; tries++ {
		size := uint32(16 + r.Intn(48))
		if size*2 >= w.Size() {
			break
		}
		addr := uint32(r.Int63n(int64(w.Size() - size*2)))
		id, err := w.Create(addr, size)
		if err != nil {
			continue
		}
		for a := addr; a < addr+size; a++ {
			_ = w.Write(a, uint8(r.Intn(instset.Count)))
		}
		w.procs[id].SP = addr + uint32(r.Intn(int(size)))
		placed++
	}
	return placed
}
