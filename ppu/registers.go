package ppu

// Ctrl is the value written to PPUCTRL ($2000).
type Ctrl byte

// NametableBits are the low two bits selecting the base nametable.
func (c Ctrl) NametableBits() uint16 { return uint16(c & 0x03) }

// Increment is the amount PPUADDR advances after a PPUDATA access.
func (c Ctrl) Increment() uint16 {
	if c&0x04 != 0 {
		return 32
	}
	return 1
}

// SpriteTable is the pattern table used by 8x8 sprites.
func (c Ctrl) SpriteTable() uint16 {
	if c&0x08 != 0 {
		return 0x1000
	}
	return 0
}

// BackgroundTable is the pattern table used by the background.
func (c Ctrl) BackgroundTable() uint16 {
	if c&0x10 != 0 {
		return 0x1000
	}
	return 0
}

// SpriteHeight is 8 or 16.
func (c Ctrl) SpriteHeight() int {
	if c&0x20 != 0 {
		return 16
	}
	return 8
}

// NMIEnabled reports whether an NMI is generated at the start of vblank.
func (c Ctrl) NMIEnabled() bool { return c&0x80 != 0 }

// Mask is the value written to PPUMASK ($2001).
type Mask byte

func (m Mask) Greyscale() bool          { return m&0x01 != 0 }
func (m Mask) ShowBackgroundLeft() bool { return m&0x02 != 0 }
func (m Mask) ShowSpritesLeft() bool    { return m&0x04 != 0 }
func (m Mask) ShowBackground() bool     { return m&0x08 != 0 }
func (m Mask) ShowSprites() bool        { return m&0x10 != 0 }

// Rendering is true when either layer is enabled.
func (m Mask) Rendering() bool { return m&0x18 != 0 }

// Status is the value read from PPUSTATUS ($2002). Only the top three bits
// are driven; the rest come from the open bus.
type Status byte

// Status bits.
const (
	StatusOverflow Status = 0x20
	StatusSprite0  Status = 0x40
	StatusVBlank   Status = 0x80
)

func (s Status) VBlank() bool         { return s&StatusVBlank != 0 }
func (s Status) Sprite0Hit() bool     { return s&StatusSprite0 != 0 }
func (s Status) SpriteOverflow() bool { return s&StatusOverflow != 0 }

// Sprite is one 4-byte OAM record.
type Sprite struct {
	Y    byte
	Tile byte
	Attr byte
	X    byte
}

// Palette is the sprite palette, 0 to 3.
func (s Sprite) Palette() byte { return s.Attr & 0x03 }

// Behind is the priority bit. Sprites with it set are drawn behind opaque
// background pixels.
func (s Sprite) Behind() bool { return s.Attr&0x20 != 0 }

func (s Sprite) FlipH() bool { return s.Attr&0x40 != 0 }
func (s Sprite) FlipV() bool { return s.Attr&0x80 != 0 }

// CoversLine reports whether the sprite has a row on scanline. Sprites are
// drawn one line below their OAM Y coordinate.
func (s Sprite) CoversLine(scanline, height int) bool {
	top := int(s.Y) + 1
	return scanline >= top && scanline < top+height
}

// CoversDot reports whether the sprite has a column at dot.
func (s Sprite) CoversDot(dot int) bool {
	return dot >= int(s.X) && dot < int(s.X)+8
}
