package cpu

import "github.com/meadori/nescore/curated"

// Bus defines the interface for the CPU to interact with the bus.
type Bus interface {
	Read(addr uint16) byte
	Write(addr uint16, data byte)
}

// Interrupt vectors.
const (
	NMIVector   uint16 = 0xFFFA
	ResetVector uint16 = 0xFFFC
	IRQVector   uint16 = 0xFFFE
)

const stackPage uint16 = 0x0100

// interruptCycles is the length of the NMI, IRQ and BRK sequences.
const interruptCycles = 7

// Registers is the programmer visible state of the CPU.
type Registers struct {
	// Accumulator
	A byte

	// Index Register X
	X byte

	// Index Register Y
	Y byte

	// Stack Pointer, an offset into page one
	SP byte

	// Processor Status
	P Status

	// Program Counter
	PC uint16
}

// CPU represents the 6502 CPU.
type CPU struct {
	Registers

	bus Bus

	nmiPending bool
	irqLine    bool
}

// New creates a new CPU instance.
func New() *CPU {
	return &CPU{}
}

// ConnectBus connects the CPU to the bus.
func (c *CPU) ConnectBus(bus Bus) {
	c.bus = bus
}

// PowerOn puts the CPU into its power-up state and loads the program counter
// from the reset vector.
func (c *CPU) PowerOn() {
	c.A = 0
	c.X = 0
	c.Y = 0
	c.SP = 0xFD
	c.P = FlagUnused | FlagInterrupt
	c.nmiPending = false
	c.irqLine = false
	c.PC = c.readWord(ResetVector)
}

// Reset performs the reset sequence: three phantom pushes and the interrupt
// disable flag set. Other registers are untouched.
func (c *CPU) Reset() {
	c.SP -= 3
	c.P.Set(FlagInterrupt, true)
	c.nmiPending = false
	c.PC = c.readWord(ResetVector)
}

// TriggerNMI latches a non-maskable interrupt, serviced before the next
// instruction.
func (c *CPU) TriggerNMI() {
	c.nmiPending = true
}

// SetIRQ sets the level of the maskable interrupt line.
func (c *CPU) SetIRQ(asserted bool) {
	c.irqLine = asserted
}

// NMIPending reports whether an NMI is waiting to be serviced.
func (c *CPU) NMIPending() bool {
	return c.nmiPending
}

// ServiceInterrupt runs a pending NMI, or an IRQ when the line is asserted and
// interrupts are enabled. It returns the cycles used, zero when nothing was
// pending.
func (c *CPU) ServiceInterrupt() int {
	switch {
	case c.nmiPending:
		c.nmiPending = false
		c.interrupt(NMIVector, false)
		return interruptCycles
	case c.irqLine && !c.P.Interrupt():
		c.interrupt(IRQVector, false)
		return interruptCycles
	}
	return 0
}

func (c *CPU) interrupt(vector uint16, brk bool) {
	c.push16(c.PC)
	c.push(c.P.Pushed(brk))
	c.P.Set(FlagInterrupt, true)
	c.PC = c.readWord(vector)
}

// Fetch reads the instruction at PC over the bus, one read per byte, as the
// fetch cycles of the real CPU do.
func (c *CPU) Fetch() Instruction {
	in := Instruction{Opcode: Opcode(c.bus.Read(c.PC))}
	switch in.Len() {
	case 3:
		in.Operand[0] = c.bus.Read(c.PC + 1)
		in.Operand[1] = c.bus.Read(c.PC + 2)
	case 2:
		in.Operand[0] = c.bus.Read(c.PC + 1)
	}
	return in
}

// Execute performs the full effect of an instruction located at PC and
// returns the number of cycles it took. The program counter is advanced past
// the instruction or redirected by control flow.
//
// Opcodes with no modelled effect stop with curated.Unimplemented.
func (c *CPU) Execute(in Instruction) int {
	def := in.Definition()
	if def.unstable() {
		curated.Unimplemented("cpu: unimplemented opcode %02X (%s) at %04X", byte(in.Opcode), def.Mnemonic, c.PC)
	}

	pc := c.PC
	c.PC += uint16(def.Length())

	cycles := def.Cycles
	addr, crossed := c.effectiveAddress(in, def.Mode)
	if crossed && def.PageSensitive {
		cycles++
	}

	return cycles + c.operate(in, def, pc, addr)
}

// effectiveAddress resolves the memory address of the operand. Implied,
// accumulator and immediate modes have none.
func (c *CPU) effectiveAddress(in Instruction, mode AddressingMode) (uint16, bool) {
	switch mode {
	case ZeroPage:
		return uint16(in.Byte()), false
	case ZeroPageX:
		return uint16(in.Byte() + c.X), false
	case ZeroPageY:
		return uint16(in.Byte() + c.Y), false
	case Absolute:
		return in.Word(), false
	case AbsoluteX:
		base := in.Word()
		addr := base + uint16(c.X)
		return addr, pageCrossed(base, addr)
	case AbsoluteY:
		base := in.Word()
		addr := base + uint16(c.Y)
		return addr, pageCrossed(base, addr)
	case Indirect:
		// the high byte is fetched without carrying into the next page
		ptr := in.Word()
		lo := uint16(c.bus.Read(ptr))
		hi := uint16(c.bus.Read(ptr&0xFF00 | uint16(byte(ptr)+1)))
		return hi<<8 | lo, false
	case IndirectX:
		ptr := in.Byte() + c.X
		return c.readZeroPageWord(ptr), false
	case IndirectY:
		base := c.readZeroPageWord(in.Byte())
		addr := base + uint16(c.Y)
		return addr, pageCrossed(base, addr)
	}
	return 0, false
}

func pageCrossed(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

func (c *CPU) readWord(addr uint16) uint16 {
	lo := uint16(c.bus.Read(addr))
	hi := uint16(c.bus.Read(addr + 1))
	return hi<<8 | lo
}

func (c *CPU) readZeroPageWord(ptr byte) uint16 {
	lo := uint16(c.bus.Read(uint16(ptr)))
	hi := uint16(c.bus.Read(uint16(ptr + 1)))
	return hi<<8 | lo
}

func (c *CPU) push(data byte) {
	c.bus.Write(stackPage|uint16(c.SP), data)
	c.SP--
}

func (c *CPU) pull() byte {
	c.SP++
	return c.bus.Read(stackPage | uint16(c.SP))
}

func (c *CPU) push16(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

func (c *CPU) pull16() uint16 {
	lo := uint16(c.pull())
	hi := uint16(c.pull())
	return hi<<8 | lo
}

func (c *CPU) setZN(v byte) {
	c.P.Set(FlagZero, v == 0)
	c.P.Set(FlagNegative, v&0x80 != 0)
}
