// Package disasm implements the MIX memory image disassembler.
package disasm

import (
	"context"
	"errors"
	"fmt"
	"hash/crc32"

	"github.com/retroenv/mixdisasm/internal/arch/mix"
	"github.com/retroenv/mixdisasm/internal/config"
	"github.com/retroenv/mixdisasm/internal/options"
	"github.com/retroenv/mixdisasm/internal/program"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/sync/errgroup"
)

// ErrMalformedLength is returned for images whose length is not a multiple of the word size.
var ErrMalformedLength = errors.New("image length is not a multiple of the word size")

// Disasm implements a disassembler.
type Disasm struct {
	logger  *log.Logger
	options options.Disassembler
	workers int
}

// New creates a new disassembler.
func New(logger *log.Logger, options options.Disassembler) *Disasm {
	return &Disasm{
		logger:  logger,
		options: options,
		workers: config.WorkerCount(options.Workers),
	}
}

// Process decodes all words of the image. The whole image is validated before
// any word gets decoded, a malformed image does not return a partial program.
func (dis *Disasm) Process(ctx context.Context, data []byte) (*program.Program, error) {
	if len(data)%mix.WordSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrMalformedLength, len(data))
	}

	wordCount := len(data) / mix.WordSize
	app := program.New(wordCount)
	app.Checksum = crc32.ChecksumIEEE(data)

	workers := min(dis.workers, wordCount)
	if workers == 0 {
		return app, nil
	}
	chunkSize := (wordCount + workers - 1) / workers

	group, ctx := errgroup.WithContext(ctx)
	for start := 0; start < wordCount; start += chunkSize {
		end := min(start+chunkSize, wordCount)
		// every worker writes a distinct range of the word slice, output order is
		// the word order independent of the worker scheduling
		group.Go(func() error {
			return decodeRange(ctx, app, data, start, end)
		})
	}
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("decoding words: %w", err)
	}

	dis.logger.Debug("Decoded memory image",
		log.Int("words", wordCount),
		log.Int("workers", workers),
		log.Int("unknown", app.Count(program.UnknownWord)),
		log.Hex("crc32", app.Checksum))

	return app, nil
}

// decodeRange decodes the words from start up to excluding end.
func decodeRange(ctx context.Context, app *program.Program, data []byte, start, end int) error {
	for i := start; i < end; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		word := &app.Words[i]
		word.Index = i
		copy(word.Data[:], data[i*mix.WordSize:])

		if err := decodeWord(word); err != nil {
			return fmt.Errorf("decoding word %d: %w", i, err)
		}
	}
	return nil
}

func decodeWord(word *program.Word) error {
	decoded, err := mix.SplitWord(word.Data[:])
	if err != nil {
		return err
	}
	word.Decoded = decoded

	if decoded.Negative() {
		word.SetType(program.NegativeWord)
	}
	if mix.CompoundOpcodes.Contains(decoded.Opcode) {
		word.SetType(program.CompoundWord)
	}

	ins, ok := mix.Resolve(decoded.Opcode, decoded.Field)
	if !ok {
		word.Mnemonic = mix.UnknownMnemonic
		word.SetType(program.UnknownWord)
		return nil
	}
	word.Mnemonic = ins.Name
	return nil
}
