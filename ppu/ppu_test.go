package ppu

import (
	"testing"

	"github.com/meadori/nescore/mapper"
	"github.com/meadori/nescore/test"
)

// mockMapper implements the mapper.Mapper interface for testing purposes.
type mockMapper struct {
	chr       [0x2000]byte
	mirroring mapper.Mirroring
	scanlines int
}

func (m *mockMapper) CPURead(addr uint16) (byte, bool)     { return 0, false }
func (m *mockMapper) CPUWrite(addr uint16, data byte) bool { return false }

func (m *mockMapper) PPURead(addr uint16) (byte, bool) {
	if addr <= 0x1FFF {
		return m.chr[addr], true
	}
	return 0, false
}

func (m *mockMapper) PPUPeek(addr uint16) (byte, bool) {
	return m.PPURead(addr)
}

func (m *mockMapper) PPUWrite(addr uint16, data byte) bool {
	if addr <= 0x1FFF {
		m.chr[addr] = data
		return true
	}
	return false
}

func (m *mockMapper) Mirroring() mapper.Mirroring { return m.mirroring }
func (m *mockMapper) ID() int                     { return -1 }
func (m *mockMapper) String() string              { return "mock" }
func (m *mockMapper) Scanline()                   { m.scanlines++ }

func setupPPU(m mapper.Mirroring) (*PPU, *mockMapper) {
	mm := &mockMapper{mirroring: m}
	p := New(nil)
	p.ConnectMapper(mm)
	return p, mm
}

// stepTo steps the PPU until it is about to process the given position.
func stepTo(p *PPU, scanline, dot int) {
	for {
		s, d, _ := p.Position()
		if s == scanline && d == dot {
			return
		}
		p.Step()
	}
}

func setAddr(p *PPU, addr uint16) {
	p.Write(6, byte(addr>>8))
	p.Write(6, byte(addr))
}

func TestTimingWraparound(t *testing.T) {
	p, _ := setupPPU(mapper.MirrorHorizontal)

	wraps := 0
	for i := 0; i < DotsPerLine*LinesPerFrame; i++ {
		s, d, _ := p.Position()
		test.DemandSuccess(t, s >= 0 && s < LinesPerFrame && d >= 0 && d < DotsPerLine)

		if s == vblankLine && d == 0 {
			test.ExpectFailure(t, p.Status().VBlank())
		}
		p.Step()
		if s == vblankLine && d == 0 {
			test.ExpectSuccess(t, p.Status().VBlank())
		}

		s, d, _ = p.Position()
		if s == 0 && d == 0 {
			wraps++
		}
	}

	s, d, f := p.Position()
	test.ExpectEquality(t, s, 0)
	test.ExpectEquality(t, d, 0)
	test.ExpectEquality(t, f, uint64(1))
	test.ExpectEquality(t, wraps, 1)

	// nothing read the status register so vblank is forced clear at (0,0)
	test.ExpectSuccess(t, p.Status().VBlank())
	p.Step()
	test.ExpectFailure(t, p.Status().VBlank())
}

func TestStatusReadClearsVBlank(t *testing.T) {
	p, _ := setupPPU(mapper.MirrorHorizontal)
	stepTo(p, vblankLine, 1)

	test.ExpectEquality(t, p.Peek(2, 0x00)&0x80, byte(0x80))
	test.ExpectEquality(t, p.Peek(2, 0x00)&0x80, byte(0x80))

	test.ExpectEquality(t, p.Read(2, 0x1F), byte(0x80|0x1F))
	test.ExpectEquality(t, p.Read(2, 0x1F), byte(0x1F))
}

func TestNMI(t *testing.T) {
	p, _ := setupPPU(mapper.MirrorHorizontal)

	// vblank without NMI enabled
	stepTo(p, vblankLine, 1)
	test.ExpectSuccess(t, p.Status().VBlank())
	test.ExpectFailure(t, p.PollNMI())

	// enabling NMI during vblank raises one immediately
	p.Write(0, 0x80)
	test.ExpectSuccess(t, p.PollNMI())
	test.ExpectFailure(t, p.PollNMI())

	// next frame
	p.Step()
	stepTo(p, vblankLine, 1)
	test.ExpectSuccess(t, p.PollNMI())
}

func TestWriteOnlyRegistersReadOpenBus(t *testing.T) {
	p, _ := setupPPU(mapper.MirrorHorizontal)
	for _, reg := range []uint16{0, 1, 3, 5, 6} {
		test.ExpectEquality(t, p.Read(reg, 0xA5), byte(0xA5), reg)
	}
}

func TestDataPort(t *testing.T) {
	p, _ := setupPPU(mapper.MirrorHorizontal)

	setAddr(p, 0x2108)
	p.Write(7, 0x55)
	p.Write(7, 0x66)

	setAddr(p, 0x2108)
	p.Read(7, 0) // stale buffer
	test.ExpectEquality(t, p.Read(7, 0), byte(0x55))
	test.ExpectEquality(t, p.Read(7, 0), byte(0x66))

	// +32 increment
	p.Write(0, 0x04)
	setAddr(p, 0x2000)
	p.Write(7, 0x01)
	p.Write(7, 0x02)
	test.ExpectEquality(t, p.PeekMemory(0x2020), byte(0x02))

	// palette reads are not buffered
	p.Write(0, 0x00)
	setAddr(p, 0x3F01)
	p.Write(7, 0x21)
	setAddr(p, 0x3F01)
	test.ExpectEquality(t, p.Read(7, 0), byte(0x21))
}

func TestOAMPort(t *testing.T) {
	p, _ := setupPPU(mapper.MirrorHorizontal)

	p.Write(3, 0x10)
	p.Write(4, 0xAA)
	p.Write(4, 0xBB)
	oam := p.OAM()
	test.ExpectEquality(t, oam[0x10], byte(0xAA))
	test.ExpectEquality(t, oam[0x11], byte(0xBB))

	p.Write(3, 0x11)
	test.ExpectEquality(t, p.Read(4, 0), byte(0xBB))
	test.ExpectEquality(t, p.Read(4, 0), byte(0xBB))
}

func TestScrollRegisters(t *testing.T) {
	p, _ := setupPPU(mapper.MirrorHorizontal)

	p.Write(0, 0x00)
	p.Write(5, 0x7D)
	_, tmp, fineX, w := p.Scroll()
	test.ExpectEquality(t, tmp, uint16(0x000F))
	test.ExpectEquality(t, fineX, byte(5))
	test.ExpectSuccess(t, w)

	p.Write(5, 0x5E)
	_, tmp, _, w = p.Scroll()
	test.ExpectEquality(t, tmp, uint16(0x616F))
	test.ExpectFailure(t, w)

	p.Write(6, 0x3D)
	_, tmp, _, _ = p.Scroll()
	test.ExpectEquality(t, tmp, uint16(0x3D6F))

	p.Write(6, 0xF0)
	v, tmp, _, _ := p.Scroll()
	test.ExpectEquality(t, tmp, uint16(0x3DF0))
	test.ExpectEquality(t, v, uint16(0x3DF0))

	// reading status resets the toggle
	p.Write(5, 0x00)
	p.Read(2, 0)
	_, _, _, w = p.Scroll()
	test.ExpectFailure(t, w)

	// nametable select goes into t
	p.Write(0, 0x03)
	_, tmp, _, _ = p.Scroll()
	test.ExpectEquality(t, tmp&0x0C00, uint16(0x0C00))
	test.ExpectEquality(t, p.Ctrl().NametableBits(), uint16(3))
}

func TestPaletteMirrors(t *testing.T) {
	p, _ := setupPPU(mapper.MirrorHorizontal)

	setAddr(p, 0x3F10)
	p.Write(7, 0x2A)
	test.ExpectEquality(t, p.PeekMemory(0x3F00), byte(0x2A))
	test.ExpectEquality(t, p.PeekMemory(0x3F20), byte(0x2A))

	setAddr(p, 0x3F11)
	p.Write(7, 0x15)
	test.ExpectEquality(t, p.PeekMemory(0x3F01), byte(0x00))
	test.ExpectEquality(t, p.PeekMemory(0x3F11), byte(0x15))
}

func TestNametableMirroring(t *testing.T) {
	p, mm := setupPPU(mapper.MirrorHorizontal)

	setAddr(p, 0x2005)
	p.Write(7, 0x77)
	test.ExpectEquality(t, p.PeekMemory(0x2405), byte(0x77))
	test.ExpectEquality(t, p.PeekMemory(0x2805), byte(0x00))
	test.ExpectEquality(t, p.PeekMemory(0x3005), byte(0x77))

	mm.mirroring = mapper.MirrorVertical
	test.ExpectEquality(t, p.PeekMemory(0x2805), byte(0x77))
	test.ExpectEquality(t, p.PeekMemory(0x2405), byte(0x00))

	mm.mirroring = mapper.MirrorOneScreenLower
	test.ExpectEquality(t, p.PeekMemory(0x2C05), byte(0x77))
}

func TestPatternMemoryThroughMapper(t *testing.T) {
	p, mm := setupPPU(mapper.MirrorHorizontal)
	setAddr(p, 0x0123)
	p.Write(7, 0x42)
	test.ExpectEquality(t, mm.chr[0x0123], byte(0x42))
}

func TestScanlineCounterClocked(t *testing.T) {
	p, mm := setupPPU(mapper.MirrorHorizontal)

	// rendering disabled: no clocks
	stepTo(p, 0, 0)
	for i := 0; i < DotsPerLine*LinesPerFrame; i++ {
		p.Step()
	}
	test.ExpectEquality(t, mm.scanlines, 0)

	p.Write(1, 0x18)
	for i := 0; i < DotsPerLine*LinesPerFrame; i++ {
		p.Step()
	}
	test.ExpectEquality(t, mm.scanlines, Height+1)
}
