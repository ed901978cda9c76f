package ppu

import (
	"image"
	"sync"
)

// Frame is the output image shared between the emulation goroutine and the
// presentation layer. The PPU replaces its contents once per frame; readers
// copy it out. The lock is only held for the duration of a copy.
type Frame struct {
	mu     sync.Mutex
	pix    []byte
	number uint64
}

// NewFrame returns a black frame.
func NewFrame() *Frame {
	f := &Frame{pix: make([]byte, Width*Height*4)}
	for i := 3; i < len(f.pix); i += 4 {
		f.pix[i] = 0xFF
	}
	return f
}

func (f *Frame) publish(src []byte, number uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.pix, src)
	f.number = number
}

// Snapshot copies the RGBA pixels into dst, which must hold Width*Height*4
// bytes. It returns the number of the PPU frame the pixels belong to.
func (f *Frame) Snapshot(dst []byte) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.pix)
	return f.number
}

// Image returns a copy of the frame as an image.
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	f.Snapshot(img.Pix)
	return img
}

// At returns the colour of one cell.
func (f *Frame) At(x, y int) Colour {
	f.mu.Lock()
	defer f.mu.Unlock()
	o := (y*Width + x) * 4
	return Colour{R: f.pix[o], G: f.pix[o+1], B: f.pix[o+2], A: f.pix[o+3]}
}
