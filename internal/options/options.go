// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input  string // input memory image
	Output string // output listing file, stdout if empty
	Batch  string // batch process files matching a glob pattern
}

// Flags contains behavior options.
type Flags struct {
	Debug        bool
	Quiet        bool
	AssembleTest bool // re-encode the decoded words and compare with the input
	Workers      int
}

// OutputFlags contains output formatting options.
type OutputFlags struct {
	NoHex   bool
	NoIndex bool
}

// Program options of the disassembler.
type Program struct {
	Parameters
	Flags
	OutputFlags
}

// Disassembler defines options to control the disassembler.
type Disassembler struct {
	Workers int // number of decode workers, 0 uses GOMAXPROCS

	HexBytes  bool // output the raw word bytes
	WordIndex bool // output the word sequence index
}

// NewDisassembler returns a new options instance with default options.
func NewDisassembler(workers int) Disassembler {
	return Disassembler{
		Workers:   workers,
		HexBytes:  true,
		WordIndex: true,
	}
}
