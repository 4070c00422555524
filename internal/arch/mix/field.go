package mix

import "fmt"

// Field is the F part of an instruction word. For most opcodes it describes a
// partial field (L:R) encoded as 8*L + R, for compound opcodes it selects the variant.
type Field uint8

// NewField returns the field specifier for the partial field (l:r).
func NewField(l, r uint8) Field {
	return Field(8*l + r)
}

// Left returns the left byte boundary L.
func (f Field) Left() uint8 {
	return uint8(f) / 8
}

// Right returns the right byte boundary R.
func (f Field) Right() uint8 {
	return uint8(f) % 8
}

// String returns the field in L:R notation.
func (f Field) String() string {
	return fmt.Sprintf("%d:%d", f.Left(), f.Right())
}
