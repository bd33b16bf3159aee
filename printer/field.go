package printer

import (
	"salis/instset"
)

// Kind tells how a Field is printed
type Kind int

// field kinds
const (
	// KindValue prints "label : value"
	KindValue Kind = iota

	// KindHeader prints the label in bold
	KindHeader

	// KindSeparator prints nothing and takes a line
	KindSeparator

	// KindSelected prints a value of the selected process, highlighted
	// while it is alive
	KindSelected
)

// Key names the value shown by a Field
type Key int

// field keys
const (
	KeyNone Key = iota
	KeyCycle
	KeyState
	KeyOrder
	KeySize
	KeyAllocated
	KeyInstCount
	KeyCount
	KeyCapacity
	KeyFirst
	KeyLast
	KeySelected
	KeyPosition
	KeyZoom
	KeyProcElement
)

// Field is one line of a data page. Index picks the instruction for
// KeyInstCount and the process element for KeyProcElement.
type Field struct {
	Kind  Kind
	Label string
	Key   Key
	Index int
}

func value(label string, key Key) Field {
	return Field{Kind: KindValue, Label: label, Key: key}
}

func header(label string) Field {
	return Field{Kind: KindHeader, Label: label}
}

func separator() Field {
	return Field{Kind: KindSeparator}
}

// mainFields are printed on top of every page
func mainFields() []Field {
	return []Field{
		value("cycle", KeyCycle),
		value("state", KeyState),
	}
}

func pageFields(page Page, elements []string) []Field {
	switch page {
	case PageMemory:
		fields := []Field{
			value("order", KeyOrder),
			value("size", KeySize),
			value("allocated", KeyAllocated),
			separator(),
			header("INSTRUCTIONS"),
		}
		for i := 0; i < instset.Count; i++ {
			fields = append(fields, Field{KindValue, instset.Name(uint8(i)), KeyInstCount, i})
		}
		return fields
	case PageProcess:
		return []Field{
			value("count", KeyCount),
			value("capacity", KeyCapacity),
			value("first", KeyFirst),
			value("last", KeyLast),
			value("selected", KeySelected),
		}
	case PageWorld:
		fields := []Field{
			value("position", KeyPosition),
			value("zoom", KeyZoom),
			value("selected", KeySelected),
			separator(),
			header("SELECTED PROC"),
		}
		for i, e := range elements {
			fields = append(fields, Field{KindSelected, e, KeyProcElement, i})
		}
		return fields
	}
	return nil
}
