// Package mapper defines the contract between cartridge hardware and the rest
// of the console. Implementations live in the cartridge package.
package mapper

// Mirroring describes how the two physical nametables are arranged in the
// PPU's four logical nametable slots.
type Mirroring byte

// Mirroring types
const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
	MirrorOneScreenLower
	MirrorOneScreenUpper
	MirrorFourScreen
)

func (m Mirroring) String() string {
	switch m {
	case MirrorHorizontal:
		return "horizontal"
	case MirrorVertical:
		return "vertical"
	case MirrorOneScreenLower:
		return "one-screen lower"
	case MirrorOneScreenUpper:
		return "one-screen upper"
	case MirrorFourScreen:
		return "four-screen"
	}
	return "unknown"
}

// CPUOrigin is the first address of cartridge space as seen by the CPU.
// Cartridge space runs to the top of memory.
const CPUOrigin uint16 = 0x4020

// Mapper translates CPU and PPU addresses into cartridge memory.
//
// CPURead and CPUWrite return false for addresses outside 0x4020-0xFFFF or
// for addresses the board leaves unconnected. Translation is a pure function
// of the address and the committed bank registers: a bank-select write only
// affects later reads.
type Mapper interface {
	CPURead(addr uint16) (byte, bool)
	CPUWrite(addr uint16, data byte) bool

	// PPURead may clock board hardware that watches the PPU address bus.
	PPURead(addr uint16) (byte, bool)
	PPUWrite(addr uint16, data byte) bool

	// PPUPeek is PPURead without side effects.
	PPUPeek(addr uint16) (byte, bool)

	Mirroring() Mirroring

	// ID is the iNES mapper number.
	ID() int
	String() string
}

// Interrupter is implemented by boards that can assert the CPU's IRQ line.
type Interrupter interface {
	IRQ() bool
}

// ScanlineCounter is implemented by boards that count rendered scanlines.
// The PPU calls Scanline once per visible or pre-render line while rendering
// is enabled.
type ScanlineCounter interface {
	Scanline()
}

// InRange reports whether addr is in cartridge space.
func InRange(addr uint16) bool {
	return addr >= CPUOrigin
}
