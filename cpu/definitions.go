package cpu

import "fmt"

// Opcode is the first byte of an instruction. Each value names exactly one
// mnemonic and addressing mode pair.
type Opcode byte

func (op Opcode) String() string {
	return opcodeNames[op]
}

// Definition returns the table entry for the opcode.
func (op Opcode) Definition() Definition {
	return Definitions[op]
}

// AddressingMode describes how an instruction finds its operand.
type AddressingMode int

// List of addressing modes.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
	Relative
)

var modeNames = [...]string{
	"Implied", "Accumulator", "Immediate", "ZeroPage", "ZeroPageX", "ZeroPageY",
	"Absolute", "AbsoluteX", "AbsoluteY", "Indirect", "IndirectX", "IndirectY", "Relative",
}

func (m AddressingMode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("AddressingMode(%d)", int(m))
}

// Length is the number of bytes, opcode included, that an instruction using
// the mode occupies.
func (m AddressingMode) Length() int {
	switch m {
	case Implied, Accumulator:
		return 1
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 3
	}
	return 2
}

// Mnemonic identifies the operation independently of addressing mode.
type Mnemonic int

// List of mnemonics, official and undocumented.
const (
	ADC Mnemonic = iota
	AHX
	ALR
	ANC
	AND
	ARR
	ASL
	AXS
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DCP
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	ISC
	JMP
	JSR
	KIL
	LAS
	LAX
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	RLA
	ROL
	ROR
	RRA
	RTI
	RTS
	SAX
	SBC
	SEC
	SED
	SEI
	SHX
	SHY
	SLO
	SRE
	STA
	STX
	STY
	TAS
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA
	XAA
)

var mnemonicNames = [...]string{
	"ADC", "AHX", "ALR", "ANC", "AND", "ARR", "ASL", "AXS", "BCC", "BCS", "BEQ",
	"BIT", "BMI", "BNE", "BPL", "BRK", "BVC", "BVS", "CLC", "CLD", "CLI", "CLV",
	"CMP", "CPX", "CPY", "DCP", "DEC", "DEX", "DEY", "EOR", "INC", "INX", "INY",
	"ISC", "JMP", "JSR", "KIL", "LAS", "LAX", "LDA", "LDX", "LDY", "LSR", "NOP",
	"ORA", "PHA", "PHP", "PLA", "PLP", "RLA", "ROL", "ROR", "RRA", "RTI", "RTS",
	"SAX", "SBC", "SEC", "SED", "SEI", "SHX", "SHY", "SLO", "SRE", "STA", "STX",
	"STY", "TAS", "TAX", "TAY", "TSX", "TXA", "TXS", "TYA", "XAA",
}

func (m Mnemonic) String() string {
	if int(m) < len(mnemonicNames) {
		return mnemonicNames[m]
	}
	return fmt.Sprintf("Mnemonic(%d)", int(m))
}

// Definition describes one entry of the opcode table.
type Definition struct {
	OpCode   Opcode
	Mnemonic Mnemonic
	Mode     AddressingMode

	// Cycles is the base cycle count before page-cross and branch penalties.
	Cycles int

	// PageSensitive instructions take one extra cycle when indexing crosses a
	// page boundary.
	PageSensitive bool

	Official bool
}

// Length is the encoded size of the instruction in bytes.
func (d Definition) Length() int {
	return d.Mode.Length()
}

// unstable opcodes have no modelled effect. Evaluating one stops the machine.
func (d Definition) unstable() bool {
	switch d.Mnemonic {
	case AHX, TAS, SHX, SHY, XAA, KIL:
		return true
	}
	// LAX #imm (LXA) depends on analogue effects
	return d.OpCode == LaxImmediate
}
