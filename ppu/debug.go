package ppu

// PeekMemory reads PPU address space without side effects on the board.
func (p *PPU) PeekMemory(addr uint16) byte {
	return p.peek(addr)
}

// OAM returns a copy of object attribute memory.
func (p *PPU) OAM() [256]byte {
	return p.oam
}

// Scroll returns the loopy registers: current and temporary VRAM address,
// fine X and the write toggle.
func (p *PPU) Scroll() (v, t uint16, fineX byte, w bool) {
	return p.v, p.t, p.fineX, p.w
}

// PatternTable extracts the requested pattern table (0 or 1) into a 128x128
// RGBA byte slice using the specified palette (0-7).
func (p *PPU) PatternTable(i int, palette byte, dest []byte) {
	for tileY := 0; tileY < 16; tileY++ {
		for tileX := 0; tileX < 16; tileX++ {
			offset := uint16(tileY*256 + tileX*16)
			for row := uint16(0); row < 8; row++ {
				lo := p.peek(uint16(i)*0x1000 + offset + row)
				hi := p.peek(uint16(i)*0x1000 + offset + row + 8)

				for col := 0; col < 8; col++ {
					pixel := (lo>>7)&1 | ((hi>>7)&1)<<1
					lo <<= 1
					hi <<= 1

					c := SystemPalette[0x0F]
					if pixel != 0 {
						c = SystemPalette[p.peek(0x3F00+uint16(palette)*4+uint16(pixel))&0x3F]
					}

					idx := ((tileY*8+int(row))*128 + tileX*8 + col) * 4
					dest[idx] = c.R
					dest[idx+1] = c.G
					dest[idx+2] = c.B
					dest[idx+3] = 0xFF
				}
			}
		}
	}
}
