// Package verification verifies that the decoded words recreate the input.
package verification

import (
	"errors"
	"fmt"

	"github.com/retroenv/mixdisasm/internal/arch/mix"
	"github.com/retroenv/mixdisasm/internal/program"
	"github.com/retroenv/retrogolib/log"
)

// ErrMismatch is returned when the encoded words do not match the input.
var ErrMismatch = errors.New("encoded words do not match input")

const maxLoggedMismatches = 10

// VerifyOutput encodes all decoded words again and compares the result with the input image.
func VerifyOutput(logger *log.Logger, input []byte, app *program.Program) error {
	output := make([]byte, 0, len(app.Words)*mix.WordSize)
	for i := range app.Words {
		encoded := mix.EncodeWord(app.Words[i].Decoded)
		output = append(output, encoded[:]...)
	}

	if err := checkBufferEqual(logger, input, output); err != nil {
		return fmt.Errorf("memory image mismatch: %w", err)
	}
	return nil
}

func checkBufferEqual(logger *log.Logger, input, output []byte) error {
	if len(input) != len(output) {
		return fmt.Errorf("%w: mismatched lengths, %d != %d", ErrMismatch, len(input), len(output))
	}

	var diffs uint64
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs <= maxLoggedMismatches {
			logger.Error("Offset mismatch",
				log.Int("word", i/mix.WordSize),
				log.Hex("offset", i),
				log.Hex("expected", input[i]),
				log.Hex("got", output[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d offset mismatches", ErrMismatch, diffs)
}
