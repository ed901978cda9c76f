// Package screenshot exports frames as PNG images.
package screenshot

import (
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"

	"github.com/meadori/nescore/curated"
	"github.com/meadori/nescore/ppu"
)

// ErrWrite is the pattern of errors returned by Save.
const ErrWrite = "screenshot: %v"

// Scale returns the frame enlarged by an integer factor with nearest
// neighbour sampling. A factor below one is treated as one.
func Scale(src image.Image, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// Write encodes the frame, scaled by factor, as a PNG.
func Write(w io.Writer, f *ppu.Frame, factor int) error {
	return png.Encode(w, Scale(f.Image(), factor))
}

// Save writes the frame, scaled by factor, to a PNG file.
func Save(path string, f *ppu.Frame, factor int) error {
	out, err := os.Create(path)
	if err != nil {
		return curated.Errorf(ErrWrite, err)
	}
	if err := Write(out, f, factor); err != nil {
		out.Close()
		return curated.Errorf(ErrWrite, err)
	}
	if err := out.Close(); err != nil {
		return curated.Errorf(ErrWrite, err)
	}
	return nil
}

// FromPixels wraps raw RGBA pixels, as returned by the debugger service, in
// an image.
func FromPixels(pix []byte) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, ppu.Width, ppu.Height))
	copy(img.Pix, pix)
	return img
}
