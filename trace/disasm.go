package trace

import (
	"fmt"
	"strings"

	"github.com/meadori/nescore/cpu"
)

// Disassemble returns the assembler form of in, located at r.PC. The
// registers are used to resolve indexed and indirect operands.
func Disassemble(mem cpu.Peeker, r cpu.Registers, in cpu.Instruction) string {
	def := in.Definition()
	mnemonic := def.Mnemonic.String()

	switch def.Mode {
	case cpu.Implied:
		return mnemonic
	case cpu.Accumulator:
		return mnemonic + " A"
	case cpu.Immediate:
		return fmt.Sprintf("%s #$%02X", mnemonic, in.Byte())
	case cpu.Relative:
		return fmt.Sprintf("%s $%04X", mnemonic, in.BranchTarget(r.PC))
	case cpu.Indirect:
		return fmt.Sprintf("%s ($%04X) = $%04X", mnemonic, in.Word(), indirect(mem, in.Word()))
	}

	if def.Mnemonic == cpu.JMP || def.Mnemonic == cpu.JSR {
		return fmt.Sprintf("%s $%04X", mnemonic, in.Word())
	}

	var s strings.Builder
	s.WriteString(mnemonic)
	s.WriteByte(' ')

	var addr uint16
	switch def.Mode {
	case cpu.ZeroPage:
		addr = uint16(in.Byte())
		fmt.Fprintf(&s, "$%02X", in.Byte())
	case cpu.ZeroPageX:
		addr = uint16(in.Byte() + r.X)
		fmt.Fprintf(&s, "$%02X,X @ $%02X", in.Byte(), addr)
	case cpu.ZeroPageY:
		addr = uint16(in.Byte() + r.Y)
		fmt.Fprintf(&s, "$%02X,Y @ $%02X", in.Byte(), addr)
	case cpu.Absolute:
		addr = in.Word()
		fmt.Fprintf(&s, "$%04X", addr)
	case cpu.AbsoluteX:
		addr = in.Word() + uint16(r.X)
		fmt.Fprintf(&s, "$%04X,X @ $%04X", in.Word(), addr)
	case cpu.AbsoluteY:
		addr = in.Word() + uint16(r.Y)
		fmt.Fprintf(&s, "$%04X,Y @ $%04X", in.Word(), addr)
	case cpu.IndirectX:
		addr = zeroPageWord(mem, in.Byte()+r.X)
		fmt.Fprintf(&s, "($%02X,X) @ $%04X", in.Byte(), addr)
	case cpu.IndirectY:
		base := zeroPageWord(mem, in.Byte())
		addr = base + uint16(r.Y)
		fmt.Fprintf(&s, "($%02X),Y = $%04X @ $%04X", in.Byte(), base, addr)
	}

	fmt.Fprintf(&s, " = #$%02X", mem.Peek(addr))
	return s.String()
}

// indirect follows a JMP pointer, including the failure to carry into the
// high byte of the pointer.
func indirect(mem cpu.Peeker, ptr uint16) uint16 {
	lo := uint16(mem.Peek(ptr))
	hi := uint16(mem.Peek(ptr&0xFF00 | uint16(byte(ptr)+1)))
	return hi<<8 | lo
}

func zeroPageWord(mem cpu.Peeker, ptr byte) uint16 {
	lo := uint16(mem.Peek(uint16(ptr)))
	hi := uint16(mem.Peek(uint16(ptr + 1)))
	return hi<<8 | lo
}
