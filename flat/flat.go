// Package flat decodes the fixed-size floor/ceiling texture lumps.
//
// A flat is exactly 4096 raw palette-index bytes forming a 64x64 grid in
// row-major order. There is no header and no transparency; flats are drawn
// aligned to a fixed world grid.
package flat

import (
	"errors"
	"fmt"
	"image"

	"badc0de.net/pkg/go-wad/pal"
)

const (
	// Width and Height are the fixed flat dimensions.
	Width  = 64
	Height = 64
	// Size is the exact flat lump payload size.
	Size = Width * Height
)

// ErrInvalidSize indicates a flat lump payload that is not exactly 4096 bytes.
var ErrInvalidSize = errors.New("invalid flat size")

// Flat is a decoded 64x64 raw bitmap. Immutable once constructed.
type Flat struct {
	data [Size]byte
}

// New decodes a flat lump. Anything other than exactly 4096 bytes is rejected.
func New(b []byte) (*Flat, error) {
	if len(b) != Size {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSize, len(b), Size)
	}
	f := &Flat{}
	copy(f.data[:], b)
	return f, nil
}

// GetPixel returns the palette index at (x, y). Flats have no transparency
// concept, so out-of-bounds coordinates return palette index 0 rather than
// a miss; the call is total.
func (f *Flat) GetPixel(x, y int) uint8 {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return 0
	}
	return f.data[y*Width+x]
}

// RGBA renders the flat through the chosen palette. Every pixel is opaque.
func (f *Flat) RGBA(pals *pal.PaletteSet, palette int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			c := pals.Color(palette, f.data[y*Width+x])
			off := img.PixOffset(x, y)
			img.Pix[off+0] = c.R
			img.Pix[off+1] = c.G
			img.Pix[off+2] = c.B
			img.Pix[off+3] = 0xFF
		}
	}
	return img
}
