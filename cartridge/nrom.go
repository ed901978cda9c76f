package cartridge

import "github.com/meadori/nescore/mapper"

// nrom (mapper 0) has no bank switching. 16KB images are mirrored into the
// upper half of the PRG window.
type nrom struct {
	prgROM []byte
	prgRAM []byte
	chr    []byte
	chrRAM bool
	mirror mapper.Mirroring
}

func newNROM(cart *Cartridge) *nrom {
	return &nrom{
		prgROM: cart.PRGROM,
		prgRAM: make([]byte, 8192),
		chr:    cart.CHRROM,
		chrRAM: cart.IsCHRRAM,
		mirror: cart.Mirror,
	}
}

func (n *nrom) ID() int {
	return 0
}

func (n *nrom) String() string {
	return "NROM"
}

// CPURead implements the mapper.Mapper interface.
func (n *nrom) CPURead(addr uint16) (byte, bool) {
	switch {
	case addr >= 0x8000:
		return n.prgROM[n.prgOffset(addr)], true
	case addr >= 0x6000:
		return n.prgRAM[addr-0x6000], true
	}
	return 0, false
}

func (n *nrom) prgOffset(addr uint16) int {
	offset := int(addr - 0x8000)
	if len(n.prgROM) == prgUnit {
		offset &= 0x3FFF
	}
	return offset
}

// CPUWrite implements the mapper.Mapper interface. Writes to ROM are
// swallowed by the board.
func (n *nrom) CPUWrite(addr uint16, data byte) bool {
	switch {
	case addr >= 0x8000:
		return true
	case addr >= 0x6000:
		n.prgRAM[addr-0x6000] = data
		return true
	}
	return false
}

// PPURead implements the mapper.Mapper interface.
func (n *nrom) PPURead(addr uint16) (byte, bool) {
	if addr <= 0x1FFF {
		return n.chr[addr], true
	}
	return 0, false
}

// PPUPeek implements the mapper.Mapper interface.
func (n *nrom) PPUPeek(addr uint16) (byte, bool) {
	return n.PPURead(addr)
}

// PPUWrite implements the mapper.Mapper interface. Only CHR-RAM is writable.
func (n *nrom) PPUWrite(addr uint16, data byte) bool {
	if addr <= 0x1FFF && n.chrRAM {
		n.chr[addr] = data
		return true
	}
	return false
}

// Mirroring implements the mapper.Mapper interface.
func (n *nrom) Mirroring() mapper.Mirroring {
	return n.mirror
}
