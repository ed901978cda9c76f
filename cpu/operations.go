package cpu

// fetch reads the operand value for modes that have one.
func (c *CPU) fetch(in Instruction, mode AddressingMode, addr uint16) byte {
	switch mode {
	case Immediate:
		return in.Byte()
	case Accumulator:
		return c.A
	}
	return c.bus.Read(addr)
}

// store writes back the result of a shift, rotate or read-modify-write.
func (c *CPU) store(mode AddressingMode, addr uint16, v byte) {
	if mode == Accumulator {
		c.A = v
		return
	}
	c.bus.Write(addr, v)
}

// operate applies the instruction and returns cycles beyond the table count.
// pc is the address of the instruction; c.PC already points past it.
func (c *CPU) operate(in Instruction, def Definition, pc uint16, addr uint16) int {
	mode := def.Mode

	switch def.Mnemonic {
	// loads and stores
	case LDA:
		c.A = c.fetch(in, mode, addr)
		c.setZN(c.A)
	case LDX:
		c.X = c.fetch(in, mode, addr)
		c.setZN(c.X)
	case LDY:
		c.Y = c.fetch(in, mode, addr)
		c.setZN(c.Y)
	case STA:
		c.bus.Write(addr, c.A)
	case STX:
		c.bus.Write(addr, c.X)
	case STY:
		c.bus.Write(addr, c.Y)

	// transfers
	case TAX:
		c.X = c.A
		c.setZN(c.X)
	case TAY:
		c.Y = c.A
		c.setZN(c.Y)
	case TXA:
		c.A = c.X
		c.setZN(c.A)
	case TYA:
		c.A = c.Y
		c.setZN(c.A)
	case TSX:
		c.X = c.SP
		c.setZN(c.X)
	case TXS:
		c.SP = c.X

	// stack
	case PHA:
		c.push(c.A)
	case PHP:
		c.push(c.P.Pushed(true))
	case PLA:
		c.A = c.pull()
		c.setZN(c.A)
	case PLP:
		c.P = Pulled(c.pull())

	// logic and arithmetic
	case AND:
		c.A &= c.fetch(in, mode, addr)
		c.setZN(c.A)
	case ORA:
		c.A |= c.fetch(in, mode, addr)
		c.setZN(c.A)
	case EOR:
		c.A ^= c.fetch(in, mode, addr)
		c.setZN(c.A)
	case BIT:
		v := c.fetch(in, mode, addr)
		c.P.Set(FlagZero, c.A&v == 0)
		c.P.Set(FlagOverflow, v&0x40 != 0)
		c.P.Set(FlagNegative, v&0x80 != 0)
	case ADC:
		c.adc(c.fetch(in, mode, addr))
	case SBC:
		c.adc(^c.fetch(in, mode, addr))
	case CMP:
		c.compare(c.A, c.fetch(in, mode, addr))
	case CPX:
		c.compare(c.X, c.fetch(in, mode, addr))
	case CPY:
		c.compare(c.Y, c.fetch(in, mode, addr))

	// increments and decrements
	case INC:
		v := c.fetch(in, mode, addr) + 1
		c.store(mode, addr, v)
		c.setZN(v)
	case DEC:
		v := c.fetch(in, mode, addr) - 1
		c.store(mode, addr, v)
		c.setZN(v)
	case INX:
		c.X++
		c.setZN(c.X)
	case INY:
		c.Y++
		c.setZN(c.Y)
	case DEX:
		c.X--
		c.setZN(c.X)
	case DEY:
		c.Y--
		c.setZN(c.Y)

	// shifts and rotates
	case ASL:
		c.store(mode, addr, c.asl(c.fetch(in, mode, addr)))
	case LSR:
		c.store(mode, addr, c.lsr(c.fetch(in, mode, addr)))
	case ROL:
		c.store(mode, addr, c.rol(c.fetch(in, mode, addr)))
	case ROR:
		c.store(mode, addr, c.ror(c.fetch(in, mode, addr)))

	// control flow
	case JMP:
		c.PC = addr
	case JSR:
		c.push16(c.PC - 1)
		c.PC = addr
	case RTS:
		c.PC = c.pull16() + 1
	case RTI:
		c.P = Pulled(c.pull())
		c.PC = c.pull16()
	case BRK:
		// the byte after BRK is skipped
		c.PC = pc + 2
		c.interrupt(IRQVector, true)

	case BCC:
		return c.branch(in, pc, !c.P.Carry())
	case BCS:
		return c.branch(in, pc, c.P.Carry())
	case BNE:
		return c.branch(in, pc, !c.P.Zero())
	case BEQ:
		return c.branch(in, pc, c.P.Zero())
	case BPL:
		return c.branch(in, pc, !c.P.Negative())
	case BMI:
		return c.branch(in, pc, c.P.Negative())
	case BVC:
		return c.branch(in, pc, !c.P.Overflow())
	case BVS:
		return c.branch(in, pc, c.P.Overflow())

	// flags
	case CLC:
		c.P.Set(FlagCarry, false)
	case SEC:
		c.P.Set(FlagCarry, true)
	case CLI:
		c.P.Set(FlagInterrupt, false)
	case SEI:
		c.P.Set(FlagInterrupt, true)
	case CLD:
		c.P.Set(FlagDecimal, false)
	case SED:
		c.P.Set(FlagDecimal, true)
	case CLV:
		c.P.Set(FlagOverflow, false)

	case NOP:
		// undocumented forms still perform their operand read
		if mode != Implied && mode != Immediate {
			c.bus.Read(addr)
		}

	// undocumented
	case LAX:
		c.A = c.fetch(in, mode, addr)
		c.X = c.A
		c.setZN(c.A)
	case SAX:
		c.bus.Write(addr, c.A&c.X)
	case DCP:
		v := c.fetch(in, mode, addr) - 1
		c.bus.Write(addr, v)
		c.compare(c.A, v)
	case ISC:
		v := c.fetch(in, mode, addr) + 1
		c.bus.Write(addr, v)
		c.adc(^v)
	case SLO:
		v := c.asl(c.fetch(in, mode, addr))
		c.bus.Write(addr, v)
		c.A |= v
		c.setZN(c.A)
	case RLA:
		v := c.rol(c.fetch(in, mode, addr))
		c.bus.Write(addr, v)
		c.A &= v
		c.setZN(c.A)
	case SRE:
		v := c.lsr(c.fetch(in, mode, addr))
		c.bus.Write(addr, v)
		c.A ^= v
		c.setZN(c.A)
	case RRA:
		v := c.ror(c.fetch(in, mode, addr))
		c.bus.Write(addr, v)
		c.adc(v)
	case ANC:
		c.A &= in.Byte()
		c.setZN(c.A)
		c.P.Set(FlagCarry, c.A&0x80 != 0)
	case ALR:
		c.A = c.lsr(c.A & in.Byte())
	case ARR:
		c.A &= in.Byte()
		c.A = c.A>>1 | carryBit(c.P)<<7
		c.setZN(c.A)
		c.P.Set(FlagCarry, c.A&0x40 != 0)
		c.P.Set(FlagOverflow, (c.A>>6^c.A>>5)&1 != 0)
	case AXS:
		ax := c.A & c.X
		v := in.Byte()
		c.P.Set(FlagCarry, ax >= v)
		c.X = ax - v
		c.setZN(c.X)
	case LAS:
		v := c.fetch(in, mode, addr) & c.SP
		c.A, c.X, c.SP = v, v, v
		c.setZN(v)

	default:
		// every remaining mnemonic is rejected by Definition.unstable before
		// reaching here
		panic("cpu: no evaluator for " + def.Mnemonic.String())
	}

	return 0
}

func carryBit(p Status) byte {
	if p.Carry() {
		return 1
	}
	return 0
}

func (c *CPU) adc(v byte) {
	sum := uint16(c.A) + uint16(v) + uint16(carryBit(c.P))
	r := byte(sum)
	c.P.Set(FlagCarry, sum > 0xFF)
	c.P.Set(FlagOverflow, (c.A^r)&(v^r)&0x80 != 0)
	c.A = r
	c.setZN(c.A)
}

func (c *CPU) compare(reg, v byte) {
	c.P.Set(FlagCarry, reg >= v)
	c.setZN(reg - v)
}

func (c *CPU) asl(v byte) byte {
	c.P.Set(FlagCarry, v&0x80 != 0)
	v <<= 1
	c.setZN(v)
	return v
}

func (c *CPU) lsr(v byte) byte {
	c.P.Set(FlagCarry, v&0x01 != 0)
	v >>= 1
	c.setZN(v)
	return v
}

func (c *CPU) rol(v byte) byte {
	r := v<<1 | carryBit(c.P)
	c.P.Set(FlagCarry, v&0x80 != 0)
	c.setZN(r)
	return r
}

func (c *CPU) ror(v byte) byte {
	r := v>>1 | carryBit(c.P)<<7
	c.P.Set(FlagCarry, v&0x01 != 0)
	c.setZN(r)
	return r
}

// branch redirects the program counter when taken. A taken branch costs one
// extra cycle, two when the target is on a different page.
func (c *CPU) branch(in Instruction, pc uint16, taken bool) int {
	if !taken {
		return 0
	}
	target := in.BranchTarget(pc)
	extra := 1
	if pageCrossed(c.PC, target) {
		extra++
	}
	c.PC = target
	return extra
}
