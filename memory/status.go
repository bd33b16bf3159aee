package memory

/**
Status byte package
*/

// status byte layout. Values here are bit masks.
const (
	// IPFlag is set when an instruction pointer resides in the cell
	IPFlag = 0x80

	// BlockFlag is set when a memory block starts in the cell
	BlockFlag = 0x40

	// AllocatedFlag is set when the cell belongs to some process
	AllocatedFlag = 0x20

	// InstructionMask selects the instruction code
	InstructionMask = 0x1f
)

// Status keeps one rendered cell as produced by Service.RenderImage
type Status byte

// Get returns the raw status byte
func (s Status) Get() byte {
	return byte(s)
}

// IP returns true if an instruction pointer is in the cell
func (s Status) IP() bool {
	return s.getFlag(IPFlag)
}

// BlockStart returns true if a memory block starts in the cell
func (s Status) BlockStart() bool {
	return s.getFlag(BlockFlag)
}

// Allocated returns true if the cell is owned by a process
func (s Status) Allocated() bool {
	return s.getFlag(AllocatedFlag)
}

// Free returns true if none of the three high bits are set
func (s Status) Free() bool {
	return s&(IPFlag|BlockFlag|AllocatedFlag) == 0
}

// Instruction returns the instruction code in [0, 31]
func (s Status) Instruction() uint8 {
	return uint8(s & InstructionMask)
}

// generic get flag function
func (s Status) getFlag(mask byte) bool {
	return byte(s)&mask != 0
}

// GetFlags returns the set flags, IP / block start / allocated
func (s Status) GetFlags() string {
	flags := ""
	if s.IP() {
		flags += "I"
	} else {
		flags += " "
	}
	if s.BlockStart() {
		flags += "B"
	} else {
		flags += " "
	}
	if s.Allocated() {
		flags += "A"
	} else {
		flags += " "
	}
	return "[" + flags + "]"
}
