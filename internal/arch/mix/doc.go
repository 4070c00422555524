// Package mix provides MIX architecture support for the disassembler.
//
// # Word Layout
//
// A MIX memory image is a sequence of 6 byte words. An instruction word is laid out as:
//
//	byte 0     sign, 0 is positive, any other value is negative
//	byte 1-2   address magnitude, big-endian
//	byte 3     index register selector I
//	byte 4     field specifier F, encoded as 8*L + R
//	byte 5     operation code C
//
// # Opcodes
//
// The 64 major opcodes either map to a single instruction or, for compound opcodes,
// to a list of variants that is indexed by the F field. The jump family shares
// opcode 39 for example, JMP(0), JSJ(1), JOV(2) and so on.
//
// Some variant slots are reserved, opcode 5 defines NUM(0), CHAR(1) and HLT(2)
// followed by a gap up to NOT(9). Reserved slots and fields past the end of a
// variant list resolve to UnknownMnemonic, as does any opcode above 63.
//
// # Usage Example
//
//	word, err := mix.SplitWord(data[:mix.WordSize])
//	if err != nil {
//		return err
//	}
//	name := mix.ResolveMnemonic(word.Opcode, uint8(word.Field))
package mix
