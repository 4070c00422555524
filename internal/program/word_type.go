package program

import (
	"fmt"
	"strings"
)

// WordType defines the type of a decoded word.
type WordType uint8

// word types.
const (
	UnknownWord   WordType = 1 << iota // no instruction is defined for the opcode and field
	CompoundWord                       // instruction was selected by the field
	NegativeWord                       // sign byte is set
)

// IsType returns whether the word is of given type.
func (w *Word) IsType(typ WordType) bool {
	return w.Type&typ != 0
}

// SetType sets the type of the word.
func (w *Word) SetType(typ WordType) {
	w.Type |= typ
}

// ClearType unsets the type of the word.
func (w *Word) ClearType(typ WordType) {
	mask := ^(typ)
	w.Type &= mask
}

// HexBytes returns the raw word bytes as lowercase hex pairs separated by spaces.
func (w *Word) HexBytes() string {
	buf := &strings.Builder{}
	for i, b := range w.Data {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "%02x", b)
	}
	return buf.String()
}
