package bus

import (
	"testing"

	"github.com/meadori/nescore/curated"
	"github.com/meadori/nescore/mapper"
	"github.com/meadori/nescore/ppu"
	"github.com/meadori/nescore/test"
)

// mockMapper is a flat 48KB cartridge from $4020 to $FFFF with nothing
// connected below $6000.
type mockMapper struct {
	mem    [0x10000]byte
	writes int
}

func (m *mockMapper) CPURead(addr uint16) (byte, bool) {
	if addr < 0x6000 {
		return 0, false
	}
	return m.mem[addr], true
}

func (m *mockMapper) CPUWrite(addr uint16, data byte) bool {
	m.writes++
	if addr < 0x6000 {
		return false
	}
	m.mem[addr] = data
	return true
}

func (m *mockMapper) PPURead(addr uint16) (byte, bool)     { return 0, true }
func (m *mockMapper) PPUPeek(addr uint16) (byte, bool)     { return 0, true }
func (m *mockMapper) PPUWrite(addr uint16, data byte) bool { return false }
func (m *mockMapper) Mirroring() mapper.Mirroring          { return mapper.MirrorVertical }
func (m *mockMapper) ID() int                              { return -1 }
func (m *mockMapper) String() string                       { return "mock" }

func setupBus() (*Bus, *ppu.PPU, *mockMapper) {
	p := ppu.New(nil)
	m := &mockMapper{}
	p.ConnectMapper(m)
	return New(p, m), p, m
}

func expectStop(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		err := curated.RecoverUnimplemented(recover())
		test.ExpectSuccess(t, curated.IsUnimplemented(err))
	}()
	f()
	t.Error("expected unimplemented stop")
}

func TestRAMMirroring(t *testing.T) {
	b, _, _ := setupBus()

	b.Write(0x0001, 0x42)
	for _, addr := range []uint16{0x0001, 0x0801, 0x1001, 0x1801} {
		test.ExpectEquality(t, b.Read(addr), byte(0x42), addr)
	}

	// stable between writes
	test.ExpectEquality(t, b.Read(0x0801), b.Read(0x0801))
}

func TestLatch(t *testing.T) {
	b, _, m := setupBus()

	b.Write(0x0010, 0x99)
	test.ExpectEquality(t, b.Latch(), byte(0x99))

	m.mem[0x8000] = 0x12
	b.Read(0x8000)
	test.ExpectEquality(t, b.Latch(), byte(0x12))

	// unconnected cartridge space is open bus
	test.ExpectEquality(t, b.Read(0x5000), byte(0x12))

	// write-only PPU registers read back the latch
	test.ExpectEquality(t, b.Read(0x2000), byte(0x12))
}

func TestPPURegisterMirroring(t *testing.T) {
	b, p, _ := setupBus()

	b.Write(0x3456, 0x21) // $2006
	b.Write(0x200E, 0x08) // $2006
	b.Write(0x2007, 0x77)
	test.ExpectEquality(t, p.PeekMemory(0x2108), byte(0x77))
}

func TestStatusReadSideEffect(t *testing.T) {
	b, p, _ := setupBus()

	for {
		p.Step()
		if p.Status().VBlank() {
			break
		}
	}

	// peek is side-effect free
	test.ExpectEquality(t, b.Peek(0x2002)&0x80, byte(0x80))
	test.ExpectEquality(t, b.Peek(0x2002)&0x80, byte(0x80))

	test.ExpectEquality(t, b.Read(0x2002)&0x80, byte(0x80))
	test.ExpectEquality(t, b.Read(0x2002)&0x80, byte(0x00))
	test.ExpectEquality(t, b.Read(0x3FFA)&0x80, byte(0x00))
}

func TestPeekDoesNotLatch(t *testing.T) {
	b, _, m := setupBus()
	m.mem[0x9000] = 0x33
	b.Write(0x0000, 0x01)
	test.ExpectEquality(t, b.Peek(0x9000), byte(0x33))
	test.ExpectEquality(t, b.Latch(), byte(0x01))
}

func TestCartridgeWrites(t *testing.T) {
	b, _, m := setupBus()
	b.Write(0x6000, 0xAB)
	test.ExpectEquality(t, m.mem[0x6000], byte(0xAB))
	test.ExpectEquality(t, b.Read(0x6000), byte(0xAB))
	b.Write(0x4020, 0x01)
	test.ExpectEquality(t, m.writes, 2)
}

func TestOAMDMA(t *testing.T) {
	b, p, _ := setupBus()

	for i := 0; i < 256; i++ {
		b.Write(0x0200+uint16(i), byte(i))
	}
	b.Write(0x2003, 0x00)
	b.Write(OAMDMA, 0x02)
	test.ExpectSuccess(t, b.TakeDMA())
	test.ExpectFailure(t, b.TakeDMA())

	oam := p.OAM()
	for i := 0; i < 256; i++ {
		test.ExpectEquality(t, oam[i], byte(i), i)
	}
}

func TestControllerPorts(t *testing.T) {
	b, _, _ := setupBus()
	b.Controller(0).SetButtons([8]bool{true, false, true})
	b.Controller(1).SetButtons([8]bool{false, true})

	b.Write(Joy1, 1)
	b.Write(Joy1, 0)

	test.ExpectEquality(t, b.Peek(Joy1)&1, byte(1))
	test.ExpectEquality(t, b.Read(Joy1)&1, byte(1))
	test.ExpectEquality(t, b.Read(Joy1)&1, byte(0))
	test.ExpectEquality(t, b.Read(Joy1)&1, byte(1))

	test.ExpectEquality(t, b.Read(Joy2)&1, byte(0))
	test.ExpectEquality(t, b.Read(Joy2)&1, byte(1))
}

func TestIOGapStops(t *testing.T) {
	b, _, _ := setupBus()
	expectStop(t, func() { b.Write(0x4000, 0x30) })
	expectStop(t, func() { b.Read(0x4015) })
	expectStop(t, func() { b.Write(Joy2, 0x40) })
	expectStop(t, func() { b.Read(0x4018) })

	// peeking never stops
	test.ExpectEquality(t, b.Peek(0x4015), b.Latch())
}

func TestCartridgeSpaceBoundary(t *testing.T) {
	b, _, m := setupBus()
	expectStop(t, func() { b.Read(mapper.CPUOrigin - 1) })

	// the first cartridge address belongs to the board even when nothing is
	// connected there
	b.Write(0x0000, 0x5A)
	test.ExpectEquality(t, b.Read(0x0000), byte(0x5A))
	test.ExpectEquality(t, b.Read(mapper.CPUOrigin), byte(0x5A))
	writes := m.writes
	b.Write(mapper.CPUOrigin, 0x01)
	test.ExpectEquality(t, m.writes, writes+1)
}

func TestMutedAPU(t *testing.T) {
	b, _, _ := setupBus()
	b.MuteAPU(true)

	b.Write(0x4000, 0x30)
	b.Write(Joy2, 0x40)
	test.ExpectEquality(t, b.Read(0x4015), byte(0x40))

	// test-mode registers are still a gap
	expectStop(t, func() { b.Write(0x401A, 0x00) })
}
