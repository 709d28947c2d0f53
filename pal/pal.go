// Package pal decodes the PLAYPAL palette lump and the COLORMAP shading
// lump, and resolves palette indices into displayable colors.
//
// Every pixel-producing package resolves its palette-index pixels through
// these two tables: COLORMAP first remaps an index for a light level, and
// PLAYPAL then yields the actual RGB triplet.
package pal

import (
	"errors"
	"fmt"
	"image/color"
)

const (
	// NumPalettes is how many full palettes the PLAYPAL lump carries.
	NumPalettes = 14
	// NumShades is how many remap tables the COLORMAP lump carries.
	NumShades = 34

	// PaletteSetSize is the exact PLAYPAL payload size: 14 palettes of
	// 256 RGB triplets.
	PaletteSetSize = NumPalettes * 256 * 3
	// ShadingSetSize is the exact COLORMAP payload size: 34 maps of 256
	// palette indices.
	ShadingSetSize = NumShades * 256
)

// ErrInvalidSize indicates a palette or shading lump payload of the wrong length.
var ErrInvalidSize = errors.New("invalid palette lump size")

// RGB is one palette entry. It implements image/color.Color.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color. Palette entries are always fully opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xFFFF
}

// PaletteSet is a decoded PLAYPAL lump: fourteen palettes of 256 colors.
//
// Palette 0 is the ordinary view; the others are the pain, item-pickup and
// radiation-suit tints the engine swaps in wholesale.
type PaletteSet struct {
	palettes [NumPalettes][256]RGB
}

// NewPaletteSet decodes a PLAYPAL payload. Anything other than exactly
// 14*256*3 bytes is rejected.
func NewPaletteSet(b []byte) (*PaletteSet, error) {
	if len(b) != PaletteSetSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSize, len(b), PaletteSetSize)
	}
	p := &PaletteSet{}
	for i := 0; i < NumPalettes; i++ {
		for j := 0; j < 256; j++ {
			off := (i*256 + j) * 3
			p.palettes[i][j] = RGB{R: b[off], G: b[off+1], B: b[off+2]}
		}
	}
	return p, nil
}

// Color resolves a palette index against the chosen palette. The palette
// number is the caller's responsibility to keep below NumPalettes.
func (p *PaletteSet) Color(palette int, index uint8) RGB {
	return p.palettes[palette][index]
}

// ShadingSet is a decoded COLORMAP lump: 34 light-level remap tables.
//
// Tables 0 through 31 cover bright to dark, 32 is the invulnerability
// inverse map and 33 is all black.
type ShadingSet struct {
	maps [NumShades][256]uint8
}

// NewShadingSet decodes a COLORMAP payload. Anything other than exactly
// 34*256 bytes is rejected.
func NewShadingSet(b []byte) (*ShadingSet, error) {
	if len(b) != ShadingSetSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSize, len(b), ShadingSetSize)
	}
	s := &ShadingSet{}
	for i := 0; i < NumShades; i++ {
		copy(s.maps[i][:], b[i*256:(i+1)*256])
	}
	return s, nil
}

// Shade remaps a palette index for the passed light level: the level
// divided by 8 picks the remap table, clamped to the last one. The result
// is another palette index; resolving it to a color takes a further
// PaletteSet.Color call.
func (s *ShadingSet) Shade(index uint8, light uint8) uint8 {
	table := int(light) / 8
	if table > NumShades-1 {
		table = NumShades - 1
	}
	return s.maps[table][index]
}

// Table returns the remap table at the given index, for callers that pick
// tables directly (e.g. the invulnerability map).
func (s *ShadingSet) Table(i int) [256]uint8 {
	return s.maps[i]
}

var _ color.Color = RGB{}
