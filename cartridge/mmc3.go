package cartridge

import (
	"github.com/meadori/nescore/curated"
	"github.com/meadori/nescore/mapper"
)

const (
	prgBankSize = 8192
	chrBankSize = 1024
)

// mmc3 represents Mapper 4 (MMC3).
//
// PRG ROM is addressed in 8KB banks. An even address in $8000-$9FFF selects
// which bank register the next odd-address write commits. The last two 8KB
// banks are fixed at $C000 and $E000. CHR is addressed in 1KB banks and a
// scanline counter drives the IRQ line.
type mmc3 struct {
	prgROM []byte
	chr    []byte
	prgRAM []byte
	chrRAM bool

	targetRegister byte
	chrInversion   bool // false: two 2KB banks at $0000, true: two 2KB banks at $1000
	registers      [8]byte

	prgRAMEnabled bool
	prgRAMProtect bool

	prgBanks int
	chrBanks int

	// IRQ State
	irqCounter byte
	irqLatch   byte
	irqReload  bool
	irqEnabled bool
	irqPending bool

	fourScreen bool
	mirroring  mapper.Mirroring
}

func newMMC3(cart *Cartridge) *mmc3 {
	m := &mmc3{
		prgROM:        cart.PRGROM,
		chr:           cart.CHRROM,
		prgRAM:        make([]byte, 8192),
		chrRAM:        cart.IsCHRRAM,
		prgBanks:      len(cart.PRGROM) / prgBankSize,
		chrBanks:      len(cart.CHRROM) / chrBankSize,
		prgRAMEnabled: true,
		fourScreen:    cart.Mirror == mapper.MirrorFourScreen,
		mirroring:     cart.Mirror,
	}

	// power-up bank layout as commonly observed on hardware
	m.registers = [8]byte{0, 2, 4, 5, 6, 7, 0, 1}

	return m
}

func (m *mmc3) ID() int {
	return 4
}

func (m *mmc3) String() string {
	return "MMC3"
}

// CPURead implements the mapper.Mapper interface.
func (m *mmc3) CPURead(addr uint16) (byte, bool) {
	switch {
	case addr >= 0x8000:
		return m.prgROM[m.prgOffset(addr)], true
	case addr >= 0x6000:
		if !m.prgRAMEnabled {
			return 0, false
		}
		return m.prgRAM[addr-0x6000], true
	}
	return 0, false
}

// prgOffset translates a CPU address in $8000-$FFFF into an offset in PRG ROM.
func (m *mmc3) prgOffset(addr uint16) int {
	return m.prgBank(addr)*prgBankSize + int(addr&0x1FFF)
}

func (m *mmc3) prgBank(addr uint16) int {
	switch {
	case addr <= 0x9FFF:
		return int(m.registers[6]&0x3F) % m.prgBanks
	case addr <= 0xBFFF:
		return int(m.registers[7]&0x3F) % m.prgBanks
	case addr <= 0xDFFF:
		return m.prgBanks - 2
	}
	return m.prgBanks - 1
}

// CPUWrite implements the mapper.Mapper interface.
func (m *mmc3) CPUWrite(addr uint16, data byte) bool {
	switch {
	case addr >= 0x8000:
		m.writeRegister(addr, data)
		return true
	case addr >= 0x6000:
		if m.prgRAMEnabled && !m.prgRAMProtect {
			m.prgRAM[addr-0x6000] = data
		}
		return true
	}
	return false
}

func (m *mmc3) writeRegister(addr uint16, data byte) {
	even := addr&1 == 0

	switch {
	case addr <= 0x9FFF:
		if even {
			if data&0x40 != 0 {
				curated.Unimplemented("mmc3: PRG mode 1 (swappable $C000) selected by write %02X to %04X", data, addr)
			}
			m.targetRegister = data & 0x07
			m.chrInversion = data&0x80 != 0
		} else {
			m.registers[m.targetRegister] = data
		}
	case addr <= 0xBFFF:
		if even {
			if data&1 == 0 {
				m.mirroring = mapper.MirrorVertical
			} else {
				m.mirroring = mapper.MirrorHorizontal
			}
		} else {
			m.prgRAMEnabled = data&0x80 != 0
			m.prgRAMProtect = data&0x40 != 0
		}
	case addr <= 0xDFFF:
		if even {
			m.irqLatch = data
		} else {
			m.irqCounter = 0
			m.irqReload = true
		}
	default:
		if even {
			m.irqEnabled = false
			m.irqPending = false
		} else {
			m.irqEnabled = true
		}
	}
}

// PPURead implements the mapper.Mapper interface.
func (m *mmc3) PPURead(addr uint16) (byte, bool) {
	return m.PPUPeek(addr)
}

// PPUPeek implements the mapper.Mapper interface. The IRQ counter is clocked
// through Scanline rather than by watching A12, so reads have no side effects.
func (m *mmc3) PPUPeek(addr uint16) (byte, bool) {
	if addr <= 0x1FFF {
		return m.chr[m.chrOffset(addr)], true
	}
	return 0, false
}

// PPUWrite implements the mapper.Mapper interface.
func (m *mmc3) PPUWrite(addr uint16, data byte) bool {
	if addr <= 0x1FFF && m.chrRAM {
		m.chr[m.chrOffset(addr)] = data
		return true
	}
	return false
}

func (m *mmc3) chrOffset(addr uint16) int {
	return m.chrBank(addr)*chrBankSize + int(addr&0x03FF)
}

func (m *mmc3) chrBank(addr uint16) int {
	// the inversion bit swaps the 2KB and 1KB halves of the pattern space
	if m.chrInversion {
		addr ^= 0x1000
	}

	var bank int
	switch {
	case addr <= 0x07FF:
		bank = int(m.registers[0]&0xFE) | int(addr>>10&1)
	case addr <= 0x0FFF:
		bank = int(m.registers[1]&0xFE) | int(addr>>10&1)
	default:
		bank = int(m.registers[2+(addr-0x1000)>>10])
	}
	return bank % m.chrBanks
}

// Scanline implements the mapper.ScanlineCounter interface.
func (m *mmc3) Scanline() {
	if m.irqCounter == 0 || m.irqReload {
		m.irqCounter = m.irqLatch
		m.irqReload = false
	} else {
		m.irqCounter--
	}

	if m.irqCounter == 0 && m.irqEnabled {
		m.irqPending = true
	}
}

// IRQ implements the mapper.Interrupter interface.
func (m *mmc3) IRQ() bool {
	return m.irqPending
}

// Mirroring implements the mapper.Mapper interface.
func (m *mmc3) Mirroring() mapper.Mirroring {
	if m.fourScreen {
		return mapper.MirrorFourScreen
	}
	return m.mirroring
}
