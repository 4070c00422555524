package mix

// Resolve returns the instruction encoded by the opcode and field. The returned
// bool is false if no instruction is defined for the combination.
func Resolve(opcode uint8, field Field) (*Instruction, bool) {
	if int(opcode) >= len(Opcodes) {
		return nil, false
	}
	return Opcodes[opcode].Lookup(field)
}

// ResolveMnemonic returns the mnemonic for the opcode and raw field byte, or
// UnknownMnemonic if the combination does not define an instruction.
func ResolveMnemonic(opcode, field uint8) string {
	ins, ok := Resolve(opcode, Field(field))
	if !ok {
		return UnknownMnemonic
	}
	return ins.Name
}
