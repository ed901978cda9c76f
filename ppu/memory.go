package ppu

import "github.com/meadori/nescore/mapper"

// nametableOffset maps $2000-$2FFF (and the $3000-$3EFF mirror) into the 2KB
// of console VRAM.
func nametableOffset(addr uint16, m mapper.Mirroring) uint16 {
	addr &= 0x0FFF
	table := addr / 0x0400
	offset := addr & 0x03FF

	switch m {
	case mapper.MirrorHorizontal:
		// $2000 = $2400, $2800 = $2C00
		return (table/2)*0x0400 + offset
	case mapper.MirrorVertical:
		// $2000 = $2800, $2400 = $2C00
		return (table%2)*0x0400 + offset
	case mapper.MirrorOneScreenLower:
		return offset
	case mapper.MirrorOneScreenUpper:
		return 0x0400 + offset
	}

	// four-screen boards carry extra RAM we do not model
	return (table%2)*0x0400 + offset
}

// paletteOffset folds $3F00-$3FFF onto the 32 bytes of palette RAM. The
// sprite backdrop entries alias the background ones.
func paletteOffset(addr uint16) uint16 {
	addr &= 0x001F
	if addr >= 0x10 && addr&0x03 == 0 {
		addr -= 0x10
	}
	return addr
}

func (p *PPU) mirroring() mapper.Mirroring {
	if p.mapper == nil {
		return mapper.MirrorHorizontal
	}
	return p.mapper.Mirroring()
}

func (p *PPU) read(addr uint16) byte {
	addr &= 0x3FFF
	switch {
	case addr <= 0x1FFF:
		if p.mapper != nil {
			if data, ok := p.mapper.PPURead(addr); ok {
				return data
			}
		}
		return 0
	case addr <= 0x3EFF:
		return p.vram[nametableOffset(addr, p.mirroring())]
	}
	return p.palette[paletteOffset(addr)]
}

// peek is read without mapper side effects.
func (p *PPU) peek(addr uint16) byte {
	addr &= 0x3FFF
	if addr <= 0x1FFF {
		if p.mapper != nil {
			if data, ok := p.mapper.PPUPeek(addr); ok {
				return data
			}
		}
		return 0
	}
	return p.read(addr)
}

func (p *PPU) write(addr uint16, data byte) {
	addr &= 0x3FFF
	switch {
	case addr <= 0x1FFF:
		if p.mapper != nil {
			p.mapper.PPUWrite(addr, data)
		}
	case addr <= 0x3EFF:
		p.vram[nametableOffset(addr, p.mirroring())] = data
	default:
		p.palette[paletteOffset(addr)] = data & 0x3F
	}
}
