package cpu

// Instruction is a decoded instruction. It is laid out as the bytes appear in
// memory: the opcode followed by up to two operand bytes. Operand bytes the
// addressing mode does not use are always zero.
type Instruction struct {
	Opcode  Opcode
	Operand [2]byte
}

// Peeker reads memory without side effects.
type Peeker interface {
	Peek(addr uint16) byte
}

// FromBytes reinterprets a three byte window as an instruction. It never
// fails: every byte value is an opcode.
func FromBytes(window [3]byte) Instruction {
	in := Instruction{Opcode: Opcode(window[0])}
	switch in.Len() {
	case 3:
		in.Operand = [2]byte{window[1], window[2]}
	case 2:
		in.Operand[0] = window[1]
	}
	return in
}

// Decode reads the instruction at addr, consuming only the bytes its
// addressing mode requires.
func Decode(mem Peeker, addr uint16) Instruction {
	in := Instruction{Opcode: Opcode(mem.Peek(addr))}
	switch in.Opcode.Definition().Mode.Length() {
	case 3:
		in.Operand[1] = mem.Peek(addr + 2)
		fallthrough
	case 2:
		in.Operand[0] = mem.Peek(addr + 1)
	}
	return in
}

// Definition returns the opcode table entry.
func (in Instruction) Definition() Definition {
	return Definitions[in.Opcode]
}

// Len is the encoded length in bytes (1, 2 or 3).
func (in Instruction) Len() int {
	return Definitions[in.Opcode].Mode.Length()
}

// Bytes returns the encoded form of the instruction.
func (in Instruction) Bytes() []byte {
	b := []byte{byte(in.Opcode), in.Operand[0], in.Operand[1]}
	return b[:in.Len()]
}

// Byte is the one byte operand.
func (in Instruction) Byte() byte {
	return in.Operand[0]
}

// Word is the two byte little-endian operand.
func (in Instruction) Word() uint16 {
	return uint16(in.Operand[1])<<8 | uint16(in.Operand[0])
}

// Offset is the signed branch displacement.
func (in Instruction) Offset() int8 {
	return int8(in.Operand[0])
}

// BranchTarget is the destination of a relative branch located at pc.
func (in Instruction) BranchTarget(pc uint16) uint16 {
	return pc + 2 + uint16(int16(in.Offset()))
}
