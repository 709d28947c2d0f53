package sprite

import (
	"image"

	"badc0de.net/pkg/go-wad/pal"
	"badc0de.net/pkg/go-wad/pic"
)

// Sprite is a decoded sprite lump: a picture bound to its parsed name.
// The picture is immutable and may back several rotations at once (the
// mirror rotation reads it flipped); per-instance animation state lives in
// Animation, never here.
type Sprite struct {
	name Name
	pic  *pic.Picture
}

// New decodes a sprite from its lump name and payload.
func New(name string, b []byte) (*Sprite, error) {
	n, err := ParseName(name)
	if err != nil {
		return nil, err
	}
	p, err := pic.Decode(b)
	if err != nil {
		return nil, err
	}
	return &Sprite{name: n, pic: p}, nil
}

// NewFromPicture binds an already decoded picture to a parsed name.
func NewFromPicture(n Name, p *pic.Picture) *Sprite {
	return &Sprite{name: n, pic: p}
}

// Name returns the parsed lump name.
func (s *Sprite) Name() Name { return s.name }

// Picture returns the underlying picture.
func (s *Sprite) Picture() *pic.Picture { return s.pic }

// Width returns the sprite width in pixels.
func (s *Sprite) Width() int { return s.pic.Width() }

// Height returns the sprite height in pixels.
func (s *Sprite) Height() int { return s.pic.Height() }

// Covers reports whether the sprite's stored image serves the passed
// rotation slot, directly, via its mirror pair, or via an alias pair.
// Rotation 0 in the name covers every slot.
func (s *Sprite) Covers(rotation uint8) bool {
	if s.name.First.Rotation == 0 {
		return true
	}
	if s.name.First.Rotation == rotation {
		return true
	}
	return s.name.Second != nil && s.name.Second.Rotation == rotation
}

// GetPixel returns the palette index at (x, y) as seen from the passed
// rotation slot. A rotation matching the mirror pair reads the stored
// image with the x axis flipped; every other rotation reads it as stored.
// This flip is the only geometric transform in the codec layer.
func (s *Sprite) GetPixel(x, y int, rotation uint8) (uint8, bool) {
	if s.name.Mirrored() && rotation == s.name.Second.Rotation {
		return s.pic.GetPixel(s.pic.Width()-1-x, y)
	}
	return s.pic.GetPixel(x, y)
}

// RGBA renders the sprite as seen from the passed rotation slot.
// Transparent pixels keep zero alpha.
func (s *Sprite) RGBA(rotation uint8, pals *pal.PaletteSet, palette int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.Width(), s.Height()))
	for x := 0; x < s.Width(); x++ {
		for y := 0; y < s.Height(); y++ {
			idx, ok := s.GetPixel(x, y, rotation)
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
