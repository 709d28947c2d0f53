package pic

// This file adapts decoded pictures to the standard image.Image interface
// so that decoded assets can be passed straight to image/draw, image/png
// and the terminal printers.

import (
	"image"
	"image/color"

	"badc0de.net/pkg/go-wad/pal"
)

// paletteImage is a read-only image.Image view over a picture bound to one
// palette. It allocates nothing; At resolves pixels on demand.
type paletteImage struct {
	p       *Picture
	pals    *pal.PaletteSet
	palette int
}

// Image returns an image.Image view of the picture resolved through the
// chosen palette. Transparent pixels read as fully transparent black.
func (p *Picture) Image(pals *pal.PaletteSet, palette int) image.Image {
	return &paletteImage{p: p, pals: pals, palette: palette}
}

func (pi *paletteImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (pi *paletteImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, pi.p.Width(), pi.p.Height())
}

func (pi *paletteImage) At(x, y int) color.Color {
	idx, ok := pi.p.GetPixel(x, y)
	if !ok {
		return color.RGBA{}
	}
	c := pi.pals.Color(pi.palette, idx)
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}
