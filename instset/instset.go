package instset

// Count is the amount of instructions known to the simulation
const Count = 32

// Instruction describes a single opcode: a four letter mnemonic and the
// glyph used to draw it on the world grid.
type Instruction struct {
	Name   string
	Symbol rune
	Desc   string
}

var table = [Count]Instruction{
	{"NOP0", '.', "template constructor"},
	{"NOP1", ':', "template constructor"},
	{"MODA", 'a', "register modifier"},
	{"MODB", 'b', "register modifier"},
	{"MODC", 'c', "register modifier"},
	{"MODD", 'd', "register modifier"},
	{"JMPB", '(', "jump back to template complement"},
	{"JMPF", ')', "jump forward to template complement"},
	{"ADRB", '[', "search back for template complement"},
	{"ADRF", ']', "search forward for template complement"},
	{"MALB", '{', "allocate backwards"},
	{"MALF", '}', "allocate forward"},
	{"SWAP", '%', "swap memory blocks"},
	{"SPLT", '$', "split child memory block"},
	{"INCN", '^', "increment register"},
	{"DECN", 'v', "decrement register"},
	{"ZERO", '0', "zero out register"},
	{"UNIT", '1', "place 1 on register"},
	{"NOTN", '!', "negation operator"},
	{"IFNZ", '?', "conditional operator"},
	{"SUMN", '+', "add two registers"},
	{"SUBN", '-', "subtract two registers"},
	{"MULN", '*', "multiply two registers"},
	{"DIVN", '/', "divide two registers"},
	{"LOAD", 'L', "load instruction from memory"},
	{"WRTE", 'W', "write instruction into memory"},
	{"SEND", 'S', "send instruction to common pipe"},
	{"RECV", 'R', "receive instruction from common pipe"},
	{"PSHN", '#', "push value to stack"},
	{"POPN", '~', "pop value from stack"},
	{"EATB", '<', "eat backwards"},
	{"EATF", '>', "eat forward"},
}

// Get returns the instruction for code. Only the low 5 bits are used.
func Get(code uint8) Instruction {
	return table[code%Count]
}

// Symbol returns the glyph of code
func Symbol(code uint8) rune {
	return Get(code).Symbol
}

// Name returns the mnemonic of code
func Name(code uint8) string {
	return Get(code).Name
}

// Lookup finds the code of a glyph
func Lookup(symbol rune) (uint8, bool) {
	for i, inst := range table {
		if inst.Symbol == symbol {
			return uint8(i), true
		}
	}
	return 0, false
}
