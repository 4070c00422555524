package program

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestWord_IsType(t *testing.T) {
	word := &Word{}

	word.SetType(CompoundWord)
	assert.True(t, word.IsType(CompoundWord))
	assert.False(t, word.IsType(UnknownWord))

	word.SetType(UnknownWord)
	assert.True(t, word.IsType(CompoundWord))
	assert.True(t, word.IsType(UnknownWord))
	assert.True(t, word.IsType(UnknownWord|NegativeWord))
	assert.False(t, word.IsType(NegativeWord))
}

func TestWord_ClearType(t *testing.T) {
	word := &Word{}
	word.SetType(CompoundWord)
	word.SetType(UnknownWord)

	word.ClearType(CompoundWord)
	assert.False(t, word.IsType(CompoundWord))
	assert.True(t, word.IsType(UnknownWord))

	word.ClearType(UnknownWord)
	assert.False(t, word.IsType(CompoundWord))
	assert.False(t, word.IsType(UnknownWord))
}

func TestWord_HexBytes(t *testing.T) {
	tests := []struct {
		name     string
		data     [6]byte
		expected string
	}{
		{
			name:     "zero word",
			data:     [6]byte{},
			expected: "00 00 00 00 00 00",
		},
		{
			name:     "mixed bytes",
			data:     [6]byte{0x00, 0x01, 0xf4, 0x02, 0x03, 0x08},
			expected: "00 01 f4 02 03 08",
		},
		{
			name:     "lowercase",
			data:     [6]byte{0xAB, 0xCD, 0xEF, 0xFF, 0x0A, 0x27},
			expected: "ab cd ef ff 0a 27",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word := &Word{Data: tt.data}
			assert.Equal(t, tt.expected, word.HexBytes())
		})
	}
}

func TestProgram_Count(t *testing.T) {
	app := New(3)
	assert.Equal(t, 3, len(app.Words))

	app.Words[0].SetType(UnknownWord)
	app.Words[2].SetType(UnknownWord | NegativeWord)

	assert.Equal(t, 2, app.Count(UnknownWord))
	assert.Equal(t, 1, app.Count(NegativeWord))
	assert.Equal(t, 0, app.Count(CompoundWord))
}
