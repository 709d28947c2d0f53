package pic

import (
	"image"

	"badc0de.net/pkg/go-wad/pal"
)

// Patch is a picture used as a placeable fragment of a wall texture or as
// a UI graphic. It carries no pixel data of its own; it wraps a Picture
// and adds color resolution against a palette.
type Patch struct {
	pic *Picture
}

// LoadPatch decodes a patch lump. Patches and pictures share one on-disk
// encoding, so this is Decode plus the wrapper.
func LoadPatch(b []byte) (*Patch, error) {
	p, err := Decode(b)
	if err != nil {
		return nil, err
	}
	return &Patch{pic: p}, nil
}

// NewPatch wraps an already decoded picture.
func NewPatch(p *Picture) *Patch {
	return &Patch{pic: p}
}

// Picture returns the wrapped picture.
func (p *Patch) Picture() *Picture { return p.pic }

// Width returns the patch width in pixels.
func (p *Patch) Width() int { return p.pic.Width() }

// Height returns the patch height in pixels.
func (p *Patch) Height() int { return p.pic.Height() }

// GetPixel returns the palette index at (x, y) and whether it is opaque.
func (p *Patch) GetPixel(x, y int) (uint8, bool) {
	return p.pic.GetPixel(x, y)
}

// ResolveColor resolves the pixel at (x, y) through the chosen palette.
// The second return is false for transparent pixels.
func (p *Patch) ResolveColor(x, y int, pals *pal.PaletteSet, palette int) (pal.RGB, bool) {
	idx, ok := p.pic.GetPixel(x, y)
	if !ok {
		return pal.RGB{}, false
	}
	return pals.Color(palette, idx), true
}

// RGBA renders the patch into a freshly allocated bitmap sized exactly
// width by height. Transparent pixels keep zero alpha; opaque pixels are
// resolved through the chosen palette and get full alpha.
func (p *Patch) RGBA(pals *pal.PaletteSet, palette int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.Width(), p.Height()))
	for x := 0; x < p.Width(); x++ {
		for y := 0; y < p.Height(); y++ {
			idx, ok := p.pic.GetPixel(x, y)
			if !ok {
				continue
			}
			c := pals.Color(palette, idx)
			off := img.PixOffset(x, y)
			img.Pix[off+0] = c.R
			img.Pix[off+1] = c.G
			img.Pix[off+2] = c.B
			img.Pix[off+3] = 0xFF
		}
	}
	return img
}
