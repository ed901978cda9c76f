package ppu

import (
	"github.com/meadori/nescore/logger"
	"github.com/meadori/nescore/mapper"
)

// Frame geometry and timing.
const (
	Width  = 256
	Height = 240

	DotsPerLine   = 341
	LinesPerFrame = 262

	vblankLine    = 241
	preRenderLine = 261

	// dot at which boards with a scanline counter are clocked
	scanlineClockDot = 260
)

// PPU represents the Picture Processing Unit.
type PPU struct {
	mapper mapper.Mapper

	vram    [2048]byte
	oam     [256]byte
	palette [32]byte

	ctrl    Ctrl
	mask    Mask
	status  Status
	oamAddr byte

	// loopy registers: current and temporary VRAM address, fine X scroll and
	// the shared write toggle of $2005/$2006
	v     uint16
	t     uint16
	fineX byte
	w     bool

	dataBuffer byte

	dot      int
	scanline int
	frame    uint64

	nmi bool

	// scroll position latched at the start of the current scanline and the
	// sprites selected for it
	lineV       uint16
	lineSprites []SelectedSprite
	tile        tileCache

	back  []byte
	Frame *Frame
}

// New creates a new PPU instance that publishes completed frames to f.
func New(f *Frame) *PPU {
	if f == nil {
		f = NewFrame()
	}
	p := &PPU{
		Frame:       f,
		back:        make([]byte, Width*Height*4),
		lineSprites: make([]SelectedSprite, 0, 64),
	}
	return p
}

// ConnectMapper connects the PPU to the mapper for CHR access and mirroring.
func (p *PPU) ConnectMapper(m mapper.Mapper) {
	p.mapper = m
}

// Reset clears the registers affected by the console's reset line.
func (p *PPU) Reset() {
	p.ctrl = 0
	p.mask = 0
	p.w = false
	p.dataBuffer = 0
	p.fineX = 0
	p.t = 0
}

// Position returns the current scanline, dot and frame.
func (p *PPU) Position() (scanline, dot int, frame uint64) {
	return p.scanline, p.dot, p.frame
}

// Status returns the status register without side effects.
func (p *PPU) Status() Status {
	return p.status
}

// Ctrl returns the value last written to PPUCTRL.
func (p *PPU) Ctrl() Ctrl {
	return p.ctrl
}

// Mask returns the value last written to PPUMASK.
func (p *PPU) Mask() Mask {
	return p.mask
}

// PollNMI reports whether the PPU has raised an NMI since the last call.
func (p *PPU) PollNMI() bool {
	nmi := p.nmi
	p.nmi = false
	return nmi
}

// Step advances the PPU by one dot.
func (p *PPU) Step() {
	rendering := p.mask.Rendering()

	switch {
	case p.scanline < Height:
		if p.dot == 0 {
			p.startLine()
		}
		if p.dot < Width {
			p.renderDot()
		}
		if rendering {
			p.scroll()
		}
	case p.scanline == vblankLine && p.dot == 0:
		p.status |= StatusVBlank
		if p.ctrl.NMIEnabled() {
			p.nmi = true
		}
		p.publish()
	case p.scanline == preRenderLine:
		if p.dot == 1 {
			p.status &^= StatusSprite0 | StatusOverflow
		}
		if rendering {
			p.scroll()
			if p.dot >= 280 && p.dot <= 304 {
				// vertical bits of t into v
				p.v = p.v&0x841F | p.t&0x7BE0
			}
		}
	}

	if p.scanline == 0 && p.dot == 0 && p.status.VBlank() {
		// nothing read $2002 during vblank
		p.status &^= StatusVBlank
		logger.Log("ppu", "vblank forced clear")
	}

	if rendering && p.dot == scanlineClockDot && (p.scanline < Height || p.scanline == preRenderLine) {
		if sc, ok := p.mapper.(mapper.ScanlineCounter); ok {
			sc.Scanline()
		}
	}

	p.dot++
	if p.dot >= DotsPerLine {
		p.dot = 0
		p.scanline++
		if p.scanline >= LinesPerFrame {
			p.scanline = 0
			p.frame++
		}
	}
}

// scroll performs the end of line updates to v made while rendering.
func (p *PPU) scroll() {
	switch p.dot {
	case 256:
		p.incrementY()
	case 257:
		// horizontal bits of t into v
		p.v = p.v&0xFBE0 | p.t&0x041F
	}
}

func (p *PPU) incrementY() {
	if p.v&0x7000 != 0x7000 {
		p.v += 0x1000
		return
	}
	p.v &^= 0x7000
	y := (p.v & 0x03E0) >> 5
	switch y {
	case 29:
		y = 0
		p.v ^= 0x0800
	case 31:
		y = 0
	default:
		y++
	}
	p.v = p.v&^0x03E0 | y<<5
}

func (p *PPU) publish() {
	p.Frame.publish(p.back, p.frame)
}

// Read reads from PPU register reg (0 to 7). Bits the PPU does not drive come
// from openBus.
func (p *PPU) Read(reg uint16, openBus byte) byte {
	switch reg & 0x07 {
	case 2:
		data := byte(p.status)&0xE0 | openBus&0x1F
		p.status &^= StatusVBlank
		p.w = false
		return data
	case 4:
		return p.oam[p.oamAddr]
	case 7:
		addr := p.v & 0x3FFF
		data := p.dataBuffer
		if addr >= 0x3F00 {
			// palette reads are not buffered; the buffer fills from the
			// nametable underneath
			data = p.read(addr) | openBus&0xC0
			p.dataBuffer = p.read(addr - 0x1000)
		} else {
			p.dataBuffer = p.read(addr)
		}
		p.v += p.ctrl.Increment()
		return data
	}
	return openBus
}

// Peek returns what Read would return without changing any state.
func (p *PPU) Peek(reg uint16, openBus byte) byte {
	switch reg & 0x07 {
	case 2:
		return byte(p.status)&0xE0 | openBus&0x1F
	case 4:
		return p.oam[p.oamAddr]
	case 7:
		addr := p.v & 0x3FFF
		if addr >= 0x3F00 {
			return p.peek(addr) | openBus&0xC0
		}
		return p.dataBuffer
	}
	return openBus
}

// Write writes to PPU register reg (0 to 7).
func (p *PPU) Write(reg uint16, data byte) {
	switch reg & 0x07 {
	case 0:
		old := p.ctrl
		p.ctrl = Ctrl(data)
		p.t = p.t&0xF3FF | p.ctrl.NametableBits()<<10
		if !old.NMIEnabled() && p.ctrl.NMIEnabled() && p.status.VBlank() {
			p.nmi = true
		}
	case 1:
		p.mask = Mask(data)
	case 3:
		p.oamAddr = data
	case 4:
		p.oam[p.oamAddr] = data
		p.oamAddr++
	case 5: // PPUSCROLL
		if !p.w {
			p.fineX = data & 0x07
			p.t = p.t&0xFFE0 | uint16(data)>>3
		} else {
			p.t = p.t&0x8C1F | uint16(data&0x07)<<12 | uint16(data&0xF8)<<2
		}
		p.w = !p.w
	case 6: // PPUADDR
		if !p.w {
			p.t = p.t&0x00FF | uint16(data&0x3F)<<8
		} else {
			p.t = p.t&0xFF00 | uint16(data)
			p.v = p.t
		}
		p.w = !p.w
	case 7: // PPUDATA
		p.write(p.v, data)
		p.v += p.ctrl.Increment()
	}
}

// WriteOAM stores one byte through OAMDATA. It is used by OAM DMA.
func (p *PPU) WriteOAM(data byte) {
	p.oam[p.oamAddr] = data
	p.oamAddr++
}
