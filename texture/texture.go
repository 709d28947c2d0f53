// Package texture parses the PNAMES patch-name table and the
// TEXTURE1/TEXTURE2 definition lumps, and assembles composite wall
// textures by compositing positioned patches onto one canvas.
//
// Texture definitions only reference patches by index into PNAMES; the
// patch images themselves live elsewhere in the archive and are resolved
// through a registry at render time. A texture can therefore parse cleanly
// and still fail to render if its patches never got loaded.
package texture

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"strings"

	"badc0de.net/pkg/go-wad/pal"
	"badc0de.net/pkg/go-wad/pic"
)

var (
	// ErrTruncatedTable indicates a PNAMES or TEXTUREx lump shorter than
	// its own counts declare.
	ErrTruncatedTable = errors.New("truncated table")
	// ErrPatchIndexOutOfBounds indicates a placement referencing a patch
	// index past the end of the name table.
	ErrPatchIndexOutOfBounds = errors.New("patch index out of bounds")
	// ErrPatchNotFound indicates a render-time lookup miss: the name table
	// knows the patch but the registry never loaded it.
	ErrPatchNotFound = errors.New("patch not found")
)

const (
	texHeaderSize = 8 + 4 + 2 + 2 + 4 + 2
	placementSize = 10
	nameFieldSize = 8
	pnamesHdrSize = 4
)

// NameTable is the decoded PNAMES lump: patch names addressed by the
// zero-based indices texture definitions use.
type NameTable []string

// ParsePatchNames decodes a PNAMES lump: a 4-byte count followed by
// count 8-byte null-padded names. Names are upper-cased, since a few
// archives ship lower-case entries while the patch lumps themselves are
// stored upper-case.
func ParsePatchNames(b []byte) (NameTable, error) {
	if len(b) < pnamesHdrSize {
		return nil, fmt.Errorf("%w: %d byte PNAMES lump", ErrTruncatedTable, len(b))
	}
	count := int(binary.LittleEndian.Uint32(b))
	if len(b) < pnamesHdrSize+count*nameFieldSize {
		return nil, fmt.Errorf("%w: PNAMES declares %d names in %d bytes", ErrTruncatedTable, count, len(b))
	}
	names := make(NameTable, count)
	for i := 0; i < count; i++ {
		off := pnamesHdrSize + i*nameFieldSize
		names[i] = strings.ToUpper(trimName(b[off : off+nameFieldSize]))
	}
	return names, nil
}

func trimName(b []byte) string {
	for i, c := range b {
		if c < 0x20 || c > 0x7e {
			return string(b[:i])
		}
	}
	return string(b)
}

// Placement positions one patch on a texture canvas. Offsets are signed;
// a patch may hang partially or fully off the canvas and is clipped, not
// rejected.
type Placement struct {
	PatchName string
	X, Y      int
}

// CompositeTexture is one parsed texture definition: a canvas size and an
// ordered list of patch placements. Later placements draw over earlier
// ones wherever both are opaque.
type CompositeTexture struct {
	Name          string
	Width, Height int
	Placements    []Placement
}

// ParseTextureLump decodes a TEXTURE1/TEXTURE2 lump against an already
// parsed name table.
//
// The lump is a 4-byte texture count, that many 4-byte offsets into the
// same lump, and one texture record per offset. Each record is parsed
// independently; a placement referencing past the name table aborts the
// whole lump decode.
func ParseTextureLump(b []byte, names NameTable) ([]*CompositeTexture, error) {
	if len(b) < 4 {
		return nil, fmt.Errorf("%w: %d byte texture lump", ErrTruncatedTable, len(b))
	}
	count := int(binary.LittleEndian.Uint32(b))
	if len(b) < 4+count*4 {
		return nil, fmt.Errorf("%w: texture lump declares %d offsets in %d bytes", ErrTruncatedTable, count, len(b))
	}
	textures := make([]*CompositeTexture, 0, count)
	for i := 0; i < count; i++ {
		off := int(binary.LittleEndian.Uint32(b[4+i*4:]))
		t, err := parseTexture(b, off, names)
		if err != nil {
			return nil, fmt.Errorf("texture %d: %w", i, err)
		}
		textures = append(textures, t)
	}
	return textures, nil
}

// parseTexture decodes one texture record at off: an 8-byte name, 4
// skipped bytes, u16 width, u16 height, 4 more skipped bytes, a u16 patch
// count, and 10-byte placement records.
func parseTexture(b []byte, off int, names NameTable) (*CompositeTexture, error) {
	if off < 0 || off+texHeaderSize > len(b) {
		return nil, fmt.Errorf("%w: record at %d in %d byte lump", ErrTruncatedTable, off, len(b))
	}
	t := &CompositeTexture{
		Name:   strings.ToUpper(trimName(b[off : off+8])),
		Width:  int(binary.LittleEndian.Uint16(b[off+12:])),
		Height: int(binary.LittleEndian.Uint16(b[off+14:])),
	}
	patchCount := int(binary.LittleEndian.Uint16(b[off+20:]))
	if off+texHeaderSize+patchCount*placementSize > len(b) {
		return nil, fmt.Errorf("%w: %d placements at %d in %d byte lump", ErrTruncatedTable, patchCount, off, len(b))
	}
	t.Placements = make([]Placement, 0, patchCount)
	for i := 0; i < patchCount; i++ {
		p := off + texHeaderSize + i*placementSize
		idx := int(binary.LittleEndian.Uint16(b[p+4:]))
		if idx >= len(names) {
			return nil, fmt.Errorf("%w: placement %d references %d, table has %d names", ErrPatchIndexOutOfBounds, i, idx, len(names))
		}
		t.Placements = append(t.Placements, Placement{
			PatchName: names[idx],
			X:         int(int16(binary.LittleEndian.Uint16(b[p:]))),
			Y:         int(int16(binary.LittleEndian.Uint16(b[p+2:]))),
		})
	}
	return t, nil
}

// PatchRegistry resolves a patch name to its decoded image. The assets
// registry satisfies this.
type PatchRegistry interface {
	Patch(name string) (*pic.Patch, bool)
}

// Render composites the texture into a freshly allocated bitmap owned by
// the caller.
//
// The canvas starts fully transparent. Placements draw in list order; a
// later patch overwrites earlier pixels wherever it is opaque, with no
// blending. Each placement is clipped against the canvas. A placement
// whose patch the registry cannot resolve fails the render: the name table
// and the patch lumps load independently, so the miss only surfaces here.
func (t *CompositeTexture) Render(reg PatchRegistry, pals *pal.PaletteSet, palette int) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, t.Width, t.Height))
	for _, pl := range t.Placements {
		patch, ok := reg.Patch(pl.PatchName)
		if !ok {
			return nil, fmt.Errorf("%w: %q in texture %q", ErrPatchNotFound, pl.PatchName, t.Name)
		}
		x0 := max(pl.X, 0)
		y0 := max(pl.Y, 0)
		x1 := min(pl.X+patch.Width(), t.Width)
		y1 := min(pl.Y+patch.Height(), t.Height)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				idx, opaque := patch.GetPixel(x-pl.X, y-pl.Y)
				if !opaque {
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
	}
	return img, nil
}
