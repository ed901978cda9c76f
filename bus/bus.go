// Package bus routes CPU memory accesses to RAM, the PPU registers, the IO
// ports and the cartridge.
//
//	$0000-$1FFF  2KB RAM, mirrored every 2KB
//	$2000-$3FFF  PPU registers, mirrored every 8 bytes
//	$4000-$401F  APU and IO registers
//	$4020-$FFFF  cartridge
//
// Every Read and Write updates the bus latch with the value transferred.
// Reads from unconnected addresses return the latch.
package bus

import (
	"github.com/meadori/nescore/controller"
	"github.com/meadori/nescore/curated"
	"github.com/meadori/nescore/logger"
	"github.com/meadori/nescore/mapper"
	"github.com/meadori/nescore/ppu"
)

// IO register addresses.
const (
	OAMDMA uint16 = 0x4014
	Joy1   uint16 = 0x4016
	Joy2   uint16 = 0x4017
)

// Bus represents the system bus.
type Bus struct {
	ram    [2048]byte
	ppu    *ppu.PPU
	mapper mapper.Mapper
	pads   [2]*controller.Controller

	latch byte

	// set by a write to $4014 and collected by the machine, which charges
	// the CPU for the transfer
	dma bool

	muteAPU bool
	apuSeen [0x20]bool
}

// New creates a new Bus instance.
func New(p *ppu.PPU, m mapper.Mapper) *Bus {
	return &Bus{
		ppu:    p,
		mapper: m,
		pads:   [2]*controller.Controller{controller.New(), controller.New()},
	}
}

// Controller returns the controller plugged into port 0 or 1.
func (b *Bus) Controller(port int) *controller.Controller {
	return b.pads[port]
}

// MuteAPU controls what happens to accesses to the audio registers. With
// mute off they stop emulation as unimplemented. With mute on writes are
// dropped and reads return the bus latch; the first access to each register
// is logged.
func (b *Bus) MuteAPU(mute bool) {
	b.muteAPU = mute
}

// Latch returns the last value transferred over the bus.
func (b *Bus) Latch() byte {
	return b.latch
}

// TakeDMA reports whether an OAM DMA transfer happened since the last call.
func (b *Bus) TakeDMA() bool {
	dma := b.dma
	b.dma = false
	return dma
}

// Read reads a byte from the bus.
func (b *Bus) Read(addr uint16) byte {
	var data byte
	switch {
	case addr <= 0x1FFF:
		data = b.ram[addr&0x07FF]
	case addr <= 0x3FFF:
		data = b.ppu.Read(addr&0x0007, b.latch)
	case !mapper.InRange(addr):
		data = b.readIO(addr)
	default:
		var ok bool
		if data, ok = b.mapper.CPURead(addr); !ok {
			data = b.latch
		}
	}
	b.latch = data
	return data
}

// Peek returns the value Read would return without any side effects: the
// latch is not updated, the PPU status register is not cleared and the
// controller shift registers do not advance.
func (b *Bus) Peek(addr uint16) byte {
	switch {
	case addr <= 0x1FFF:
		return b.ram[addr&0x07FF]
	case addr <= 0x3FFF:
		return b.ppu.Peek(addr&0x0007, b.latch)
	case !mapper.InRange(addr):
		switch addr {
		case Joy1:
			return b.pads[0].Peek() | b.latch&0xE0
		case Joy2:
			return b.pads[1].Peek() | b.latch&0xE0
		}
		return b.latch
	}
	if data, ok := b.mapper.CPURead(addr); ok {
		return data
	}
	return b.latch
}

// Write writes a byte to the bus.
func (b *Bus) Write(addr uint16, data byte) {
	b.latch = data
	switch {
	case addr <= 0x1FFF:
		b.ram[addr&0x07FF] = data
	case addr <= 0x3FFF:
		b.ppu.Write(addr&0x0007, data)
	case !mapper.InRange(addr):
		b.writeIO(addr, data)
	default:
		b.mapper.CPUWrite(addr, data)
	}
}

func (b *Bus) readIO(addr uint16) byte {
	switch addr {
	case Joy1:
		return b.pads[0].Read() | b.latch&0xE0
	case Joy2:
		return b.pads[1].Read() | b.latch&0xE0
	}
	if b.apu(addr) {
		return b.latch
	}
	curated.Unimplemented("bus: read from unmodelled IO register %04X", addr)
	return 0
}

func (b *Bus) writeIO(addr uint16, data byte) {
	switch addr {
	case OAMDMA:
		page := uint16(data) << 8
		for i := uint16(0); i < 256; i++ {
			b.ppu.WriteOAM(b.Read(page | i))
		}
		b.dma = true
		return
	case Joy1:
		b.pads[0].Write(data)
		b.pads[1].Write(data)
		return
	}
	if b.apu(addr) {
		return
	}
	curated.Unimplemented("bus: write of %02X to unmodelled IO register %04X", data, addr)
}

// apu reports whether an access to addr is absorbed by the muted APU.
func (b *Bus) apu(addr uint16) bool {
	if !b.muteAPU || addr > Joy2 {
		return false
	}
	i := addr - 0x4000
	if !b.apuSeen[i] {
		b.apuSeen[i] = true
		logger.Logf("bus", "audio register %04X accessed while APU is muted", addr)
	}
	return true
}
