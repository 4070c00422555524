package fileprocessor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/mixdisasm/internal/disasm"
	"github.com/retroenv/mixdisasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestProcessFile(t *testing.T) {
	logger := log.NewTestLogger(t)
	dir := t.TempDir()

	input := filepath.Join(dir, "image.bin")
	err := os.WriteFile(input, []byte{0x00, 0x00, 0x05, 0x00, 0x00, 0x00}, 0o600)
	assert.NoError(t, err)

	opts := options.Program{}
	opts.Input = input
	opts.Output = GenerateOutputFilename(input)
	opts.Quiet = true

	err = ProcessFile(context.Background(), logger, opts, options.NewDisassembler(0))
	assert.NoError(t, err)

	listing, err := os.ReadFile(opts.Output)
	assert.NoError(t, err)
	assert.Equal(t, "0   \t00 00 05 00 00 00\tNOP     5,    0 (0:0)\n", string(listing))
}

func TestProcessFileMalformedLength(t *testing.T) {
	logger := log.NewTestLogger(t)
	dir := t.TempDir()

	input := filepath.Join(dir, "image.bin")
	err := os.WriteFile(input, []byte{0x00, 0x00, 0x05, 0x00, 0x00}, 0o600)
	assert.NoError(t, err)

	opts := options.Program{}
	opts.Input = input
	opts.Output = filepath.Join(dir, "image.lst")

	err = ProcessFile(context.Background(), logger, opts, options.NewDisassembler(0))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, disasm.ErrMalformedLength))

	_, err = os.Stat(opts.Output)
	assert.True(t, errors.Is(err, os.ErrNotExist), "no listing should be written")
}

func TestGetFilesToProcess(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.bin", "b.bin", "c.txt"} {
		err := os.WriteFile(filepath.Join(dir, name), nil, 0o600)
		assert.NoError(t, err)
	}

	opts := &options.Program{}
	opts.Batch = filepath.Join(dir, "*.bin")
	files, err := GetFilesToProcess(opts)
	assert.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.bin"), filepath.Join(dir, "b.bin")}, files)

	opts = &options.Program{}
	opts.Input = "image.bin"
	files, err = GetFilesToProcess(opts)
	assert.NoError(t, err)
	assert.Equal(t, []string{"image.bin"}, files)

	opts.Batch = "[" // malformed pattern
	_, err = GetFilesToProcess(opts)
	assert.Error(t, err)
}

func TestGenerateOutputFilename(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"image.bin", "image.lst"},
		{"dir/vm_mem.bin", "dir/vm_mem.lst"},
		{"noext", "noext.lst"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateOutputFilename(tt.input))
		})
	}
}
