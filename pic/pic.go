package pic

import (
	"encoding/binary"
	"fmt"
)

const headerSize = 8

// Post is a vertical run of opaque pixels within one column.
type Post struct {
	Row    int
	Pixels []byte
}

// Column is the list of posts covering one x coordinate. Posts are kept in
// the order they were decoded; they are not guaranteed sorted by row and
// may overlap in damaged lumps.
type Column []Post

// Picture is a decoded column/post image. It is immutable once decoded;
// pixels are addressed through GetPixel.
type Picture struct {
	width, height int
	left, top     int
	columns       []Column
}

// Decode parses a picture lump payload.
//
// It fails rather than returning a partial picture: a bad dimension, an
// out-of-bounds column offset or a truncated post each abort the whole
// decode. A decoder loop is capped at 2*height posts per column so that a
// hostile offset table terminates as a silent truncation instead of
// hanging.
func Decode(b []byte) (*Picture, error) {
	if len(b) < headerSize {
		return nil, fmt.Errorf("%w: %d byte lump is shorter than the header", ErrInvalidDimensions, len(b))
	}
	width := int(int16(binary.LittleEndian.Uint16(b[0:])))
	height := int(int16(binary.LittleEndian.Uint16(b[2:])))
	left := int(int16(binary.LittleEndian.Uint16(b[4:])))
	top := int(int16(binary.LittleEndian.Uint16(b[6:])))
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(b) < headerSize+width*4 {
		return nil, fmt.Errorf("%w: %d byte lump cannot carry %d column offsets", ErrInvalidDimensions, len(b), width)
	}

	p := &Picture{
		width:   width,
		height:  height,
		left:    left,
		top:     top,
		columns: make([]Column, width),
	}
	for x := 0; x < width; x++ {
		off := binary.LittleEndian.Uint32(b[headerSize+x*4:])
		if int64(off) >= int64(len(b)) {
			return nil, fmt.Errorf("%w: column %d at %d, lump is %d bytes", ErrInvalidColumnOffset, x, off, len(b))
		}
		col, err := decodeColumn(b, int(off), height)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", x, err)
		}
		p.columns[x] = col
	}
	return p, nil
}

// decodeColumn reads posts starting at off until the 0xFF terminator, the
// end of the buffer, or the iteration cap.
func decodeColumn(b []byte, off, height int) (Column, error) {
	var col Column
	for i := 0; i < 2*height; i++ {
		if off >= len(b) {
			break
		}
		row := b[off]
		if row == 0xFF {
			break
		}
		if off+1 >= len(b) {
			return nil, fmt.Errorf("%w: post header at %d", ErrTruncatedPost, off)
		}
		length := int(b[off+1])
		// Layout: row, length, pad, pixels, pad.
		if off+4+length > len(b) {
			return nil, fmt.Errorf("%w: %d pixel post at %d overruns %d byte lump", ErrTruncatedPost, length, off, len(b))
		}
		pixels := make([]byte, length)
		copy(pixels, b[off+3:off+3+length])
		col = append(col, Post{Row: int(row), Pixels: pixels})
		off += 4 + length
	}
	return col, nil
}

// Width returns the picture width in pixels.
func (p *Picture) Width() int { return p.width }

// Height returns the picture height in pixels.
func (p *Picture) Height() int { return p.height }

// LeftOffset returns the signed horizontal drawing offset.
func (p *Picture) LeftOffset() int { return p.left }

// TopOffset returns the signed vertical drawing offset.
func (p *Picture) TopOffset() int { return p.top }

// Column returns the posts covering the given x coordinate, or nil when x
// is out of bounds.
func (p *Picture) Column(x int) Column {
	if x < 0 || x >= p.width {
		return nil
	}
	return p.columns[x]
}

// GetPixel returns the palette index at (x, y) and whether the pixel is
// opaque. Out-of-bounds coordinates and rows covered by no post are
// transparent, not errors. Posts are scanned in decoded order and the
// first post covering the row wins.
func (p *Picture) GetPixel(x, y int) (uint8, bool) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0, false
	}
	for _, post := range p.columns[x] {
		if y >= post.Row && y < post.Row+len(post.Pixels) {
			return post.Pixels[y-post.Row], true
		}
	}
	return 0, false
}
