// Package writer implements the listing output.
package writer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/retroenv/mixdisasm/internal/arch/mix"
	"github.com/retroenv/mixdisasm/internal/program"
)

// Writer writes the listing of a decoded program.
type Writer struct {
	app     *program.Program
	options Options
	writer  io.Writer
}

// Options of the writer.
type Options struct {
	HexBytes  bool // output the raw word bytes
	WordIndex bool // output the word sequence index
}

// New creates a new writer.
func New(app *program.Program, writer io.Writer, options Options) *Writer {
	return &Writer{
		app:     app,
		options: options,
		writer:  writer,
	}
}

// Write writes one line per word in word order.
func (w Writer) Write() error {
	for i := range w.app.Words {
		word := &w.app.Words[i]

		columns := make([]string, 0, 3)
		if w.options.WordIndex {
			columns = append(columns, fmt.Sprintf("%-4d", word.Index))
		}
		if w.options.HexBytes {
			columns = append(columns, word.HexBytes())
		}
		columns = append(columns, FormatInstruction(word.Decoded.Address(), word.Decoded.Index,
			word.Decoded.Field, word.Mnemonic))

		if _, err := fmt.Fprintln(w.writer, strings.Join(columns, "\t")); err != nil {
			return fmt.Errorf("writing line %d: %w", word.Index, err)
		}
	}
	return nil
}

// FormatLine returns the listing line of a single word.
func FormatLine(index int, data [mix.WordSize]byte, address int, indexRegister uint8, field mix.Field, mnemonic string) string {
	word := program.Word{Data: data}
	return fmt.Sprintf("%-4d\t%s\t%s", index, word.HexBytes(),
		FormatInstruction(address, indexRegister, field, mnemonic))
}

// FormatInstruction returns the decoded instruction as
// mnemonic, address with trailing comma, index register and field (L:R).
func FormatInstruction(address int, indexRegister uint8, field mix.Field, mnemonic string) string {
	return fmt.Sprintf("%-8s%-6s%-2d(%s)", mnemonic, strconv.Itoa(address)+",", indexRegister, field)
}
