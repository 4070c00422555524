// Package program represents a decoded MIX memory image.
package program

import (
	"github.com/retroenv/mixdisasm/internal/arch/mix"
)

// Word defines a single decoded word of the memory image.
type Word struct {
	Index    int // sequence index of the word in the image
	Data     [mix.WordSize]byte
	Decoded  mix.Word
	Mnemonic string

	Type WordType
}

// Program defines a decoded memory image.
type Program struct {
	Words    []Word
	Checksum uint32 // CRC32 checksum of the image
}

// New creates a new program with room for the given number of words.
func New(wordCount int) *Program {
	return &Program{
		Words: make([]Word, wordCount),
	}
}

// Count returns the number of words that are of the given type.
func (p *Program) Count(typ WordType) int {
	var count int
	for i := range p.Words {
		if p.Words[i].IsType(typ) {
			count++
		}
	}
	return count
}
