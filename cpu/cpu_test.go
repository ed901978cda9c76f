package cpu

import (
	"testing"

	"github.com/meadori/nescore/curated"
	"github.com/meadori/nescore/test"
)

type mockBus struct {
	ram [65536]byte
}

func (b *mockBus) Read(addr uint16) byte {
	return b.ram[addr]
}

func (b *mockBus) Write(addr uint16, data byte) {
	b.ram[addr] = data
}

func (b *mockBus) Peek(addr uint16) byte {
	return b.ram[addr]
}

func (b *mockBus) load(addr uint16, program ...byte) {
	copy(b.ram[addr:], program)
}

// executeOneInstruction decodes the instruction at PC and runs it, returning
// the cycles taken.
func executeOneInstruction(c *CPU, bus *mockBus) int {
	return c.Execute(Decode(bus, c.PC))
}

func setupCPU(t *testing.T) (*CPU, *mockBus) {
	t.Helper()
	c := New()
	bus := &mockBus{}
	bus.ram[ResetVector] = 0x00
	bus.ram[ResetVector+1] = 0x80
	c.ConnectBus(bus)
	c.PowerOn()
	if c.PC != 0x8000 {
		t.Fatalf("reset vector not loaded: PC=%04X", c.PC)
	}
	return c, bus
}

func TestPowerOn(t *testing.T) {
	c, _ := setupCPU(t)
	test.ExpectEquality(t, c.SP, byte(0xFD))
	test.ExpectEquality(t, byte(c.P), byte(0x24))
}

func TestLoadStore(t *testing.T) {
	c, bus := setupCPU(t)

	// LDA #$42 ; STA $0110
	bus.load(0x8000, 0xA9, 0x42, 0x8D, 0x10, 0x01)
	executeOneInstruction(c, bus)
	if c.A != 0x42 {
		t.Error("LDA IMM failed")
	}
	executeOneInstruction(c, bus)
	if bus.ram[0x0110] != 0x42 {
		t.Error("STA ABS failed")
	}
	test.ExpectEquality(t, c.PC, uint16(0x8005))

	// LDA #$00 sets Z and clears N
	c.P.Set(FlagNegative, true)
	bus.load(0x8005, 0xA9, 0x00)
	executeOneInstruction(c, bus)
	test.ExpectSuccess(t, c.P.Zero())
	test.ExpectFailure(t, c.P.Negative())
}

func TestArithmetic(t *testing.T) {
	c, bus := setupCPU(t)

	// ADC #$05
	c.A = 10
	bus.load(0x8000, 0x69, 5)
	executeOneInstruction(c, bus)
	if c.A != 15 {
		t.Error("ADC failed")
	}

	// SBC #$05
	c.P.Set(FlagCarry, true)
	bus.load(0x8002, 0xE9, 5)
	executeOneInstruction(c, bus)
	if c.A != 10 {
		t.Error("SBC failed")
	}
	test.ExpectSuccess(t, c.P.Carry())

	// signed overflow: $50 + $50 = $A0
	c.A = 0x50
	c.P.Set(FlagCarry, false)
	bus.load(0x8004, 0x69, 0x50)
	executeOneInstruction(c, bus)
	test.ExpectEquality(t, c.A, byte(0xA0))
	test.ExpectSuccess(t, c.P.Overflow())
	test.ExpectSuccess(t, c.P.Negative())
	test.ExpectFailure(t, c.P.Carry())

	// unsigned carry out: $FF + $01 = $00
	c.A = 0xFF
	bus.load(0x8006, 0x69, 0x01)
	executeOneInstruction(c, bus)
	test.ExpectEquality(t, c.A, byte(0x00))
	test.ExpectSuccess(t, c.P.Carry())
	test.ExpectSuccess(t, c.P.Zero())
	test.ExpectFailure(t, c.P.Overflow())
}

func TestCompare(t *testing.T) {
	c, bus := setupCPU(t)

	c.A = 0x40
	bus.load(0x8000, 0xC9, 0x40, 0xC9, 0x41, 0xC9, 0x3F)
	executeOneInstruction(c, bus)
	test.ExpectSuccess(t, c.P.Zero())
	test.ExpectSuccess(t, c.P.Carry())
	executeOneInstruction(c, bus)
	test.ExpectFailure(t, c.P.Carry())
	test.ExpectSuccess(t, c.P.Negative())
	executeOneInstruction(c, bus)
	test.ExpectSuccess(t, c.P.Carry())
	test.ExpectFailure(t, c.P.Zero())
}

func TestIncDec(t *testing.T) {
	c, bus := setupCPU(t)

	// INC $10
	bus.ram[0x10] = 0x41
	bus.load(0x8000, 0xE6, 0x10)
	executeOneInstruction(c, bus)
	if bus.ram[0x10] != 0x42 {
		t.Error("INC failed")
	}

	// INX
	c.X = 0x10
	bus.load(0x8002, 0xE8)
	executeOneInstruction(c, bus)
	if c.X != 0x11 {
		t.Error("INX failed")
	}

	// DEY wraps
	c.Y = 0
	bus.load(0x8003, 0x88)
	executeOneInstruction(c, bus)
	test.ExpectEquality(t, c.Y, byte(0xFF))
	test.ExpectSuccess(t, c.P.Negative())
}

func TestLogical(t *testing.T) {
	c, bus := setupCPU(t)

	// AND #$0F
	c.A = 0b10101010
	bus.load(0x8000, 0x29, 0b00001111)
	executeOneInstruction(c, bus)
	if c.A != 0b00001010 {
		t.Error("AND failed")
	}

	// BIT $20
	bus.ram[0x20] = 0xC0
	bus.load(0x8002, 0x24, 0x20)
	executeOneInstruction(c, bus)
	test.ExpectSuccess(t, c.P.Zero())
	test.ExpectSuccess(t, c.P.Overflow())
	test.ExpectSuccess(t, c.P.Negative())
}

func TestShiftRotate(t *testing.T) {
	c, bus := setupCPU(t)

	// ASL A
	c.A = 0b01010101
	bus.load(0x8000, 0x0A)
	executeOneInstruction(c, bus)
	if c.A != 0b10101010 {
		t.Error("ASL failed")
	}
	if c.P.Carry() {
		t.Error("ASL carry failed")
	}

	// LSR A
	bus.load(0x8001, 0x4A)
	executeOneInstruction(c, bus)
	if c.A != 0b01010101 {
		t.Error("LSR failed")
	}
	if c.P.Carry() {
		t.Error("LSR carry failed")
	}

	// ROR $30 with carry in
	c.P.Set(FlagCarry, true)
	bus.ram[0x30] = 0x01
	bus.load(0x8002, 0x66, 0x30)
	executeOneInstruction(c, bus)
	test.ExpectEquality(t, bus.ram[0x30], byte(0x80))
	test.ExpectSuccess(t, c.P.Carry())
}

func TestBranch(t *testing.T) {
	c, bus := setupCPU(t)

	// BEQ (not taken)
	bus.load(0x8000, 0xF0, 0x10)
	cycles := executeOneInstruction(c, bus)
	if c.PC != 0x8002 {
		t.Error("BEQ (not taken) failed")
	}
	test.ExpectEquality(t, cycles, 2)

	// BEQ (taken)
	c.P.Set(FlagZero, true)
	bus.load(0x8002, 0xF0, 0x10)
	cycles = executeOneInstruction(c, bus)
	if c.PC != 0x8014 {
		t.Error("BEQ (taken) failed")
	}
	test.ExpectEquality(t, cycles, 3)

	// BNE backwards across a page
	c.PC = 0x8100
	c.P.Set(FlagZero, false)
	bus.load(0x8100, 0xD0, 0xFC)
	cycles = executeOneInstruction(c, bus)
	test.ExpectEquality(t, c.PC, uint16(0x80FE))
	test.ExpectEquality(t, cycles, 4)
}

func TestPageCrossCycles(t *testing.T) {
	c, bus := setupCPU(t)

	// LDA $80F0,X with X=$20 crosses into $8110
	c.X = 0x20
	bus.ram[0x8110] = 0x99
	bus.load(0x8000, 0xBD, 0xF0, 0x80)
	cycles := executeOneInstruction(c, bus)
	test.ExpectEquality(t, c.A, byte(0x99))
	test.ExpectEquality(t, cycles, 5)

	// STA $80F0,X always takes 5
	bus.load(0x8003, 0x9D, 0xF0, 0x80)
	cycles = executeOneInstruction(c, bus)
	test.ExpectEquality(t, cycles, 5)

	// LDA ($40),Y crossing
	bus.ram[0x40] = 0xFF
	bus.ram[0x41] = 0x02
	bus.ram[0x0300] = 0x11
	c.Y = 1
	bus.load(0x8006, 0xB1, 0x40)
	cycles = executeOneInstruction(c, bus)
	test.ExpectEquality(t, c.A, byte(0x11))
	test.ExpectEquality(t, cycles, 6)
}

func TestZeroPageWrap(t *testing.T) {
	c, bus := setupCPU(t)

	// LDA $F0,X with X=$20 reads $0010, not $0110
	c.X = 0x20
	bus.ram[0x0010] = 0x01
	bus.ram[0x0110] = 0x02
	bus.load(0x8000, 0xB5, 0xF0)
	executeOneInstruction(c, bus)
	test.ExpectEquality(t, c.A, byte(0x01))

	// LDA ($FF,X) takes its pointer from $FF and $00
	c.X = 0
	bus.ram[0x00FF] = 0x34
	bus.ram[0x0000] = 0x12
	bus.ram[0x1234] = 0x77
	bus.load(0x8002, 0xA1, 0xFF)
	executeOneInstruction(c, bus)
	test.ExpectEquality(t, c.A, byte(0x77))
}

func TestJMPIndirectPageBug(t *testing.T) {
	c, bus := setupCPU(t)

	bus.ram[0x02FF] = 0x00
	bus.ram[0x0200] = 0x90
	bus.ram[0x0300] = 0x40
	bus.load(0x8000, 0x6C, 0xFF, 0x02)
	executeOneInstruction(c, bus)
	test.ExpectEquality(t, c.PC, uint16(0x9000))
}

func TestSubroutine(t *testing.T) {
	c, bus := setupCPU(t)

	// JSR $9000 ; at $9000 RTS
	bus.load(0x8000, 0x20, 0x00, 0x90)
	bus.load(0x9000, 0x60)
	cycles := executeOneInstruction(c, bus)
	test.ExpectEquality(t, cycles, 6)
	test.ExpectEquality(t, c.PC, uint16(0x9000))
	test.ExpectEquality(t, c.SP, byte(0xFB))
	test.ExpectEquality(t, bus.ram[0x01FD], byte(0x80))
	test.ExpectEquality(t, bus.ram[0x01FC], byte(0x02))

	executeOneInstruction(c, bus)
	test.ExpectEquality(t, c.PC, uint16(0x8003))
	test.ExpectEquality(t, c.SP, byte(0xFD))
}

func TestStackWraps(t *testing.T) {
	c, bus := setupCPU(t)

	c.SP = 0x00
	c.A = 0x5A
	bus.load(0x8000, 0x48, 0x68)
	executeOneInstruction(c, bus)
	test.ExpectEquality(t, bus.ram[0x0100], byte(0x5A))
	test.ExpectEquality(t, c.SP, byte(0xFF))
	c.A = 0
	executeOneInstruction(c, bus)
	test.ExpectEquality(t, c.A, byte(0x5A))
	test.ExpectEquality(t, c.SP, byte(0x00))
}

func TestStatusRoundTrip(t *testing.T) {
	c, bus := setupCPU(t)

	for v := 0; v < 256; v++ {
		c.PC = 0x8000
		c.SP = 0xFD
		c.P = Status(v) | FlagUnused
		want := byte(c.P | FlagBreak)

		// PHP ; PLP
		bus.load(0x8000, 0x08, 0x28)
		executeOneInstruction(c, bus)
		test.ExpectEquality(t, bus.ram[0x01FD], want, v)
		executeOneInstruction(c, bus)
		test.ExpectEquality(t, byte(c.P), want, v)
	}
}

func TestBRKAndRTI(t *testing.T) {
	c, bus := setupCPU(t)

	bus.ram[IRQVector] = 0x00
	bus.ram[IRQVector+1] = 0xA0
	bus.load(0xA000, 0x40)
	c.P = FlagUnused | FlagCarry

	bus.load(0x8000, 0x00, 0xEA)
	cycles := executeOneInstruction(c, bus)
	test.ExpectEquality(t, cycles, 7)
	test.ExpectEquality(t, c.PC, uint16(0xA000))
	test.ExpectSuccess(t, c.P.Interrupt())
	test.ExpectEquality(t, bus.ram[0x01FB], byte(FlagUnused|FlagCarry|FlagBreak))

	executeOneInstruction(c, bus)
	test.ExpectEquality(t, c.PC, uint16(0x8002))
	test.ExpectSuccess(t, c.P.Carry())
	test.ExpectFailure(t, c.P.Interrupt())
}

func TestInterrupts(t *testing.T) {
	c, bus := setupCPU(t)

	bus.ram[NMIVector] = 0x00
	bus.ram[NMIVector+1] = 0xB0
	bus.ram[IRQVector] = 0x00
	bus.ram[IRQVector+1] = 0xC0

	// IRQ is masked by the power-on I flag
	c.SetIRQ(true)
	test.ExpectEquality(t, c.ServiceInterrupt(), 0)

	c.P.Set(FlagInterrupt, false)
	test.ExpectEquality(t, c.ServiceInterrupt(), 7)
	test.ExpectEquality(t, c.PC, uint16(0xC000))
	test.ExpectEquality(t, bus.ram[0x01FB]&byte(FlagBreak), byte(0))
	c.SetIRQ(false)

	// NMI ignores the I flag
	c.TriggerNMI()
	test.ExpectSuccess(t, c.NMIPending())
	test.ExpectEquality(t, c.ServiceInterrupt(), 7)
	test.ExpectEquality(t, c.PC, uint16(0xB000))
	test.ExpectFailure(t, c.NMIPending())
	test.ExpectEquality(t, c.ServiceInterrupt(), 0)
}

func TestReset(t *testing.T) {
	c, _ := setupCPU(t)
	c.P.Set(FlagInterrupt, false)
	c.A = 0x12
	c.Reset()
	test.ExpectEquality(t, c.SP, byte(0xFA))
	test.ExpectSuccess(t, c.P.Interrupt())
	test.ExpectEquality(t, c.A, byte(0x12))
	test.ExpectEquality(t, c.PC, uint16(0x8000))
}

func TestUndocumented(t *testing.T) {
	c, bus := setupCPU(t)

	// LAX $10
	bus.ram[0x10] = 0x84
	bus.load(0x8000, 0xA7, 0x10)
	executeOneInstruction(c, bus)
	test.ExpectEquality(t, c.A, byte(0x84))
	test.ExpectEquality(t, c.X, byte(0x84))
	test.ExpectSuccess(t, c.P.Negative())

	// SAX $11
	c.A, c.X = 0xF0, 0x3C
	bus.load(0x8002, 0x87, 0x11)
	executeOneInstruction(c, bus)
	test.ExpectEquality(t, bus.ram[0x11], byte(0x30))

	// DCP $12
	c.A = 0x40
	bus.ram[0x12] = 0x41
	bus.load(0x8004, 0xC7, 0x12)
	executeOneInstruction(c, bus)
	test.ExpectEquality(t, bus.ram[0x12], byte(0x40))
	test.ExpectSuccess(t, c.P.Zero())
	test.ExpectSuccess(t, c.P.Carry())

	// ISC $13
	c.A = 0x10
	c.P.Set(FlagCarry, true)
	bus.ram[0x13] = 0x04
	bus.load(0x8006, 0xE7, 0x13)
	executeOneInstruction(c, bus)
	test.ExpectEquality(t, bus.ram[0x13], byte(0x05))
	test.ExpectEquality(t, c.A, byte(0x0B))

	// SLO $14
	c.A = 0x01
	bus.ram[0x14] = 0x40
	bus.load(0x8008, 0x07, 0x14)
	executeOneInstruction(c, bus)
	test.ExpectEquality(t, bus.ram[0x14], byte(0x80))
	test.ExpectEquality(t, c.A, byte(0x81))

	// AXS #$02
	c.A, c.X = 0x0F, 0x07
	bus.load(0x800A, 0xCB, 0x02)
	executeOneInstruction(c, bus)
	test.ExpectEquality(t, c.X, byte(0x05))
	test.ExpectSuccess(t, c.P.Carry())

	// NOP $2000,X reads and changes nothing else
	a, x := c.A, c.X
	bus.load(0x800C, 0x1C, 0x00, 0x20)
	executeOneInstruction(c, bus)
	test.ExpectEquality(t, c.PC, uint16(0x800F))
	test.ExpectEquality(t, c.A, a)
	test.ExpectEquality(t, c.X, x)

	// SBC #imm, undocumented copy
	c.A = 0x05
	c.P.Set(FlagCarry, true)
	bus.load(0x800F, 0xEB, 0x01)
	executeOneInstruction(c, bus)
	test.ExpectEquality(t, c.A, byte(0x04))
}

func TestUnstableOpcodeStops(t *testing.T) {
	for _, op := range []Opcode{Kil02, XaaImmediate, TasAbsoluteY, LaxImmediate} {
		c, bus := setupCPU(t)
		bus.load(0x8000, byte(op))

		func() {
			defer func() {
				err := curated.RecoverUnimplemented(recover())
				test.ExpectSuccess(t, curated.IsUnimplemented(err), op)
			}()
			executeOneInstruction(c, bus)
		}()

		// nothing was executed
		test.ExpectEquality(t, c.PC, uint16(0x8000), op)
	}
}

func TestFetch(t *testing.T) {
	c, bus := setupCPU(t)
	bus.load(0x8000, 0xAD, 0x02, 0x20, 0xEA)

	in := c.Fetch()
	test.ExpectEquality(t, in, Instruction{Opcode: LdaAbsolute, Operand: [2]byte{0x02, 0x20}})
	test.ExpectEquality(t, c.PC, uint16(0x8000))

	c.PC = 0x8003
	in = c.Fetch()
	test.ExpectEquality(t, in, Instruction{Opcode: Nop})
}
