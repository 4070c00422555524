package verification

import (
	"context"
	"errors"
	"testing"

	"github.com/retroenv/mixdisasm/internal/disasm"
	"github.com/retroenv/mixdisasm/internal/options"
	"github.com/retroenv/mixdisasm/internal/program"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestVerifyOutput(t *testing.T) {
	logger := log.NewTestLogger(t)

	input := []byte{
		0x00, 0x00, 0x05, 0x00, 0x00, 0x00,
		0x07, 0x00, 0x00, 0x00, 0x01, 0x27, // non canonical negative sign with zero magnitude
		0x00, 0xff, 0xff, 0xff, 0xff, 0xff,
	}

	app, err := disasm.New(logger, options.NewDisassembler(2)).Process(context.Background(), input)
	assert.NoError(t, err)

	assert.NoError(t, VerifyOutput(logger, input, app))
}

func TestVerifyOutputMismatch(t *testing.T) {
	logger := log.NewTestLogger(t)

	input := []byte{0x00, 0x00, 0x05, 0x00, 0x00, 0x00}
	app, err := disasm.New(logger, options.NewDisassembler(1)).Process(context.Background(), input)
	assert.NoError(t, err)

	app.Words[0].Decoded.Magnitude = 6
	err = VerifyOutput(logger, input, app)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrMismatch))
	assert.ErrorContains(t, err, "1 offset mismatches")

	err = VerifyOutput(logger, append(input, input...), app)
	assert.True(t, errors.Is(err, ErrMismatch))
	assert.ErrorContains(t, err, "mismatched lengths")
}

func TestVerifyOutputEmpty(t *testing.T) {
	logger := log.NewTestLogger(t)
	assert.NoError(t, VerifyOutput(logger, nil, program.New(0)))
}
