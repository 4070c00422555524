package mix

import "github.com/retroenv/retrogolib/set"

// UnknownMnemonic is returned for opcode and field combinations that do not define an instruction.
const UnknownMnemonic = "???"

// Instruction is a single MIX instruction.
type Instruction struct {
	Name string
}

// Opcode describes a major opcode. Exactly one of Instruction and Variants is set,
// compound opcodes carry the list of variants selected by the F field where a nil
// entry marks a reserved slot.
type Opcode struct {
	Name        string // mnemonic, or family name for compound opcodes
	Instruction *Instruction
	Variants    []*Instruction
}

// Compound returns whether the instruction depends on the F field.
func (o Opcode) Compound() bool {
	return o.Variants != nil
}

// Defined returns whether the opcode is assigned.
func (o Opcode) Defined() bool {
	return o.Instruction != nil || o.Variants != nil
}

// Lookup returns the instruction for the given field. The field is ignored for
// opcodes that are not compound.
func (o Opcode) Lookup(field Field) (*Instruction, bool) {
	if !o.Compound() {
		return o.Instruction, o.Instruction != nil
	}
	if int(field) >= len(o.Variants) {
		return nil, false
	}
	ins := o.Variants[field]
	return ins, ins != nil
}

// Opcodes maps all major opcodes to their definition.
var Opcodes = [64]Opcode{
	0: single("NOP"),
	1: single("ADD"),
	2: single("SUB"),
	3: single("MUL"),
	4: single("DIV"),
	5: compound("SPEC",
		ins("NUM"), ins("CHAR"), ins("HLT"),
		nil, nil, nil, nil, nil, nil, // reserved
		ins("NOT"), ins("AND"), ins("OR"), ins("XOR")),
	6: compound("SHIFT",
		ins("SLA"), ins("SRA"), ins("SLAX"), ins("SRAX"),
		ins("SLC"), ins("SRC"), ins("SLB"), ins("SRB")),
	7: single("MOVE"),

	8:  single("LDA"),
	9:  single("LD1"),
	10: single("LD2"),
	11: single("LD3"),
	12: single("LD4"),
	13: single("LD5"),
	14: single("LD6"),
	15: single("LDX"),

	16: single("LDAN"),
	17: single("LD1N"),
	18: single("LD2N"),
	19: single("LD3N"),
	20: single("LD4N"),
	21: single("LD5N"),
	22: single("LD6N"),
	23: single("LDXN"),

	24: single("STA"),
	25: single("ST1"),
	26: single("ST2"),
	27: single("ST3"),
	28: single("ST4"),
	29: single("ST5"),
	30: single("ST6"),
	31: single("STX"),

	32: single("STJ"),
	33: single("STZ"),
	34: single("JBUS"),
	35: single("IOC"),
	36: single("IN"),
	37: single("OUT"),
	38: single("JRED"),
	39: compound("JMP",
		ins("JMP"), ins("JSJ"), ins("JOV"), ins("JNOV"), ins("JL"),
		ins("JE"), ins("JG"), ins("JGE"), ins("JNE"), ins("JLE")),

	40: registerJumps("A"),
	41: registerJumps("1"),
	42: registerJumps("2"),
	43: registerJumps("3"),
	44: registerJumps("4"),
	45: registerJumps("5"),
	46: registerJumps("6"),
	47: compound("JX",
		ins("JXN"), ins("JXZ"), ins("JXP"), ins("JXNN"),
		ins("JXNZ"), ins("JXNP"), ins("JXE"), ins("JXO")),

	48: addressTransfers("A"),
	49: addressTransfers("1"),
	50: addressTransfers("2"),
	51: addressTransfers("3"),
	52: addressTransfers("4"),
	53: addressTransfers("5"),
	54: addressTransfers("6"),
	55: addressTransfers("X"),

	56: single("CMPA"),
	57: single("CMP1"),
	58: single("CMP2"),
	59: single("CMP3"),
	60: single("CMP4"),
	61: single("CMP5"),
	62: single("CMP6"),
	63: single("CMPX"),
}

// CompoundOpcodes contains all opcodes whose instruction is selected by the F field.
var CompoundOpcodes = compoundOpcodes()

func ins(name string) *Instruction {
	return &Instruction{Name: name}
}

func single(name string) Opcode {
	return Opcode{Name: name, Instruction: ins(name)}
}

func compound(name string, variants ...*Instruction) Opcode {
	return Opcode{Name: name, Variants: variants}
}

// registerJumps returns the jump family testing the given register, JAN(0) to JANP(5).
func registerJumps(register string) Opcode {
	prefix := "J" + register
	return compound(prefix,
		ins(prefix+"N"), ins(prefix+"Z"), ins(prefix+"P"),
		ins(prefix+"NN"), ins(prefix+"NZ"), ins(prefix+"NP"))
}

// addressTransfers returns the INC, DEC, ENT and ENN family of the given register.
func addressTransfers(register string) Opcode {
	return compound("MODIFY"+register,
		ins("INC"+register), ins("DEC"+register),
		ins("ENT"+register), ins("ENN"+register))
}

func compoundOpcodes() set.Set[uint8] {
	opcodes := set.New[uint8]()
	for i, op := range Opcodes {
		if op.Compound() {
			opcodes.Add(uint8(i))
		}
	}
	return opcodes
}
