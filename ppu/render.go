package ppu

import (
	"image/color"
	"slices"
)

// SelectedSprite is a sprite chosen for a scanline along with its OAM index.
type SelectedSprite struct {
	Sprite
	Index int
}

// tileCache holds the pattern row of the most recently fetched background
// tile so that the eight dots of a tile share one fetch.
type tileCache struct {
	valid   bool
	ntAddr  uint16
	fineY   uint16
	lo, hi  byte
	palette byte
}

// SelectSprites returns the sprites drawn on scanline in the order they are
// tested against each dot. OAM entries are stably sorted by X, then by the
// priority bit, then by OAM index; those covering the scanline are kept and
// at most eight are returned. The second return value is true when more than
// eight sprites covered the scanline.
func SelectSprites(oam *[256]byte, scanline, height int, dst []SelectedSprite) ([]SelectedSprite, bool) {
	var all [64]SelectedSprite
	for i := range all {
		all[i] = SelectedSprite{
			Sprite: Sprite{Y: oam[i*4], Tile: oam[i*4+1], Attr: oam[i*4+2], X: oam[i*4+3]},
			Index:  i,
		}
	}

	slices.SortStableFunc(all[:], func(a, b SelectedSprite) int {
		if a.X != b.X {
			return int(a.X) - int(b.X)
		}
		if a.Behind() != b.Behind() {
			if a.Behind() {
				return 1
			}
			return -1
		}
		return a.Index - b.Index
	})

	dst = dst[:0]
	overflow := false
	for _, s := range all {
		if !s.CoversLine(scanline, height) {
			continue
		}
		if len(dst) == 8 {
			overflow = true
			break
		}
		dst = append(dst, s)
	}
	return dst, overflow
}

// startLine latches the scroll position and selects sprites for the scanline.
func (p *PPU) startLine() {
	p.lineV = p.v
	p.tile.valid = false

	var overflow bool
	p.lineSprites, overflow = SelectSprites(&p.oam, p.scanline, p.ctrl.SpriteHeight(), p.lineSprites)
	if overflow && p.mask.Rendering() {
		p.status |= StatusOverflow
	}
}

func (p *PPU) renderDot() {
	x := p.dot
	y := p.scanline

	var idx byte
	if p.mask.Rendering() {
		idx = p.pixelIndex(x, y)
	} else if p.v&0x3F00 == 0x3F00 {
		// with rendering off and v pointing into palette RAM the PPU outputs
		// that entry
		idx = byte(p.v & 0x1F)
	}

	c := p.palette[paletteOffset(uint16(idx))]
	if p.mask.Greyscale() {
		c &= 0x30
	}
	rgba := SystemPalette[c&0x3F]

	o := (y*Width + x) * 4
	p.back[o] = rgba.R
	p.back[o+1] = rgba.G
	p.back[o+2] = rgba.B
	p.back[o+3] = 0xFF
}

// pixelIndex returns the palette RAM index for the dot. Zero is the
// universal background colour.
func (p *PPU) pixelIndex(x, y int) byte {
	bg := p.backgroundPixel(x)

	pix, pal, behind, zero := p.spritePixel(x, y)
	if pix == 0 {
		return bg
	}

	if zero && bg&0x03 != 0 && x != 255 && p.mask.ShowBackground() {
		p.status |= StatusSprite0
	}

	if bg&0x03 != 0 && behind {
		return bg
	}
	return 0x10 | pal<<2 | pix
}

// backgroundPixel returns a 4-bit palette index for the background at dot x,
// or zero when the background is transparent there.
func (p *PPU) backgroundPixel(x int) byte {
	if !p.mask.ShowBackground() || (x < 8 && !p.mask.ShowBackgroundLeft()) {
		return 0
	}

	v := p.lineV
	fx := int(p.fineX) + x
	coarseX := uint16(v&0x001F) + uint16(fx/8)
	nt := v & 0x0C00
	if coarseX >= 32 {
		coarseX -= 32
		nt ^= 0x0400
	}
	coarseY := (v >> 5) & 0x001F
	fineY := (v >> 12) & 0x0007

	ntAddr := 0x2000 | nt | coarseY<<5 | coarseX
	if !p.tile.valid || p.tile.ntAddr != ntAddr || p.tile.fineY != fineY {
		tile := uint16(p.read(ntAddr))

		attr := p.read(0x23C0 | nt | (coarseY>>2)<<3 | coarseX>>2)
		shift := (coarseY&0x02)<<1 | coarseX&0x02

		pattern := p.ctrl.BackgroundTable() | tile<<4 | fineY
		p.tile = tileCache{
			valid:   true,
			ntAddr:  ntAddr,
			fineY:   fineY,
			lo:      p.read(pattern),
			hi:      p.read(pattern + 8),
			palette: (attr >> shift) & 0x03,
		}
	}

	bit := 7 - uint(fx%8)
	pix := (p.tile.lo>>bit)&1 | ((p.tile.hi>>bit)&1)<<1
	if pix == 0 {
		return 0
	}
	return p.tile.palette<<2 | pix
}

// spritePixel returns the first opaque sprite pixel at dot x among the
// sprites selected for the scanline.
func (p *PPU) spritePixel(x, y int) (pix, palette byte, behind, zero bool) {
	if !p.mask.ShowSprites() || (x < 8 && !p.mask.ShowSpritesLeft()) {
		return 0, 0, false, false
	}

	height := p.ctrl.SpriteHeight()
	for _, s := range p.lineSprites {
		if !s.CoversDot(x) {
			continue
		}

		row := y - (int(s.Y) + 1)
		if s.FlipV() {
			row = height - 1 - row
		}

		var addr uint16
		if height == 16 {
			table := uint16(s.Tile&0x01) * 0x1000
			tile := uint16(s.Tile &^ 0x01)
			if row >= 8 {
				tile++
				row -= 8
			}
			addr = table | tile<<4 | uint16(row)
		} else {
			addr = p.ctrl.SpriteTable() | uint16(s.Tile)<<4 | uint16(row)
		}

		col := x - int(s.X)
		if s.FlipH() {
			col = 7 - col
		}
		bit := 7 - uint(col)

		lo := p.read(addr)
		hi := p.read(addr + 8)
		pix = (lo>>bit)&1 | ((hi>>bit)&1)<<1
		if pix == 0 {
			continue
		}
		return pix, s.Palette(), s.Behind(), s.Index == 0
	}

	return 0, 0, false, false
}

// Colour is one cell of the output frame.
type Colour = color.RGBA
