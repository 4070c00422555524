package mix

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// WordSize is the size of a MIX word in bytes.
const WordSize = 6

// ErrWordSize is returned when a word is decoded from a buffer that is not exactly WordSize bytes long.
var ErrWordSize = errors.New("invalid word size")

// Word contains the fields of a single instruction word.
type Word struct {
	Sign      uint8 // raw sign byte, kept to allow an exact re-encoding
	Magnitude int16 // address magnitude as stored in the word
	Index     uint8
	Field     Field
	Opcode    uint8
}

// SplitWord splits a raw word into its fields.
func SplitWord(data []byte) (Word, error) {
	if len(data) != WordSize {
		return Word{}, fmt.Errorf("%w: %d bytes", ErrWordSize, len(data))
	}

	return Word{
		Sign:      data[0],
		Magnitude: int16(binary.BigEndian.Uint16(data[1:3])),
		Index:     data[3],
		Field:     Field(data[4]),
		Opcode:    data[5],
	}, nil
}

// EncodeWord is the inverse of SplitWord.
func EncodeWord(w Word) [WordSize]byte {
	var data [WordSize]byte
	data[0] = w.Sign
	binary.BigEndian.PutUint16(data[1:3], uint16(w.Magnitude))
	data[3] = w.Index
	data[4] = uint8(w.Field)
	data[5] = w.Opcode
	return data
}

// Negative returns whether the sign byte marks the address as negative.
// Any non-zero sign byte counts as negative.
func (w Word) Negative() bool {
	return w.Sign != 0
}

// Address returns the signed address. A negative sign with a zero magnitude returns 0.
func (w Word) Address() int {
	addr := int(w.Magnitude)
	if w.Negative() {
		return -addr
	}
	return addr
}

// Mnemonic returns the resolved mnemonic of the word.
func (w Word) Mnemonic() string {
	return ResolveMnemonic(w.Opcode, uint8(w.Field))
}
