// Package pipeline orchestrates the disassembly workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/mixdisasm/internal/disasm"
	"github.com/retroenv/mixdisasm/internal/loader"
	"github.com/retroenv/mixdisasm/internal/options"
	"github.com/retroenv/mixdisasm/internal/program"
	"github.com/retroenv/mixdisasm/internal/verification"
	"github.com/retroenv/mixdisasm/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete disassembly workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new disassembly pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
	}
}

// Execute runs the complete disassembly pipeline.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, disasmOpts options.Disassembler, writer io.Writer) (*program.Program, error) {
	data, err := p.loader.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading memory image: %w", err)
	}

	return p.ExecuteWithData(ctx, data, opts, disasmOpts, writer)
}

// ExecuteWithData runs the disassembly pipeline with a pre-loaded memory image.
// This is useful for testing and programmatic usage where the image is already in memory.
// Nothing is written if the image can not be decoded.
func (p *Pipeline) ExecuteWithData(ctx context.Context, data []byte, opts options.Program,
	disasmOpts options.Disassembler, writer io.Writer) (*program.Program, error) {

	p.printInfo(opts, data)

	dis := disasm.New(p.logger, disasmOpts)
	app, err := dis.Process(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("disassembling: %w", err)
	}

	if err := p.writeListing(app, disasmOpts, writer); err != nil {
		return nil, err
	}

	// Verify output (if requested)
	if opts.AssembleTest {
		if err := verification.VerifyOutput(p.logger, data, app); err != nil {
			return nil, fmt.Errorf("verification failed: %w", err)
		}
		p.logger.Info("Verification successful")
	}

	return app, nil
}

// writeListing writes the listing of the decoded program.
func (p *Pipeline) writeListing(app *program.Program, disasmOpts options.Disassembler, out io.Writer) error {
	w := writer.New(app, out, writer.Options{
		HexBytes:  disasmOpts.HexBytes,
		WordIndex: disasmOpts.WordIndex,
	})
	if err := w.Write(); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}
	return nil
}

// printInfo prints information about the memory image being processed.
func (p *Pipeline) printInfo(opts options.Program, data []byte) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Processing MIX memory image",
		log.String("file", opts.Input),
		log.Int("size", len(data)),
	)
}
