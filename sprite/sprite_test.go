package sprite

import (
	"bytes"
	"encoding/binary"
	"testing"

	"badc0de.net/pkg/go-wad/wtesting"
)

// buildSolidPicture serializes a fully opaque picture whose pixel at (x, y)
// is x*16+y, so horizontal flips are detectable.
func buildSolidPicture(width, height int) []byte {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, int16(width))
	binary.Write(&buf, binary.LittleEndian, int16(height))
	binary.Write(&buf, binary.LittleEndian, int16(0))
	binary.Write(&buf, binary.LittleEndian, int16(0))

	var streams bytes.Buffer
	base := 8 + width*4
	offsets := make([]uint32, width)
	for x := 0; x < width; x++ {
		offsets[x] = uint32(base + streams.Len())
		streams.WriteByte(0)
		streams.WriteByte(uint8(height))
		streams.WriteByte(0)
		for y := 0; y < height; y++ {
			streams.WriteByte(uint8(x*16 + y))
		}
		streams.WriteByte(0)
		streams.WriteByte(0xFF)
	}
	binary.Write(&buf, binary.LittleEndian, offsets)
	buf.Write(streams.Bytes())
	return buf.Bytes()
}

func TestNew(t *testing.T) {
	s, err := New("TROOA1", buildSolidPicture(3, 2))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	wtesting.AssertEqualInt(t, "width", s.Width(), 3)
	wtesting.AssertEqualInt(t, "height", s.Height(), 2)
	wtesting.AssertEqualString(t, "name", s.Name().String(), "TROOA1")

	if _, err := New("TROOA9", buildSolidPicture(1, 1)); err == nil {
		t.Errorf("New with bad rotation succeeded; want error")
	}
	if _, err := New("TROOA1", []byte{1, 2, 3}); err == nil {
		t.Errorf("New with truncated payload succeeded; want error")
	}
}

func TestCovers(t *testing.T) {
	s, err := New("TROOA2A8", buildSolidPicture(1, 1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	wtesting.AssertTrue(t, "covers 2", s.Covers(2))
	wtesting.AssertTrue(t, "covers 8", s.Covers(8))
	wtesting.AssertTrue(t, "does not cover 3", !s.Covers(3))

	omni, err := New("TROOA0", buildSolidPicture(1, 1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for r := uint8(0); r <= 8; r++ {
		wtesting.AssertTrue(t, "rotation 0 covers all", omni.Covers(r))
	}
}

func TestGetPixelMirror(t *testing.T) {
	s, err := New("TROOA2A8", buildSolidPicture(4, 2))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for x := 0; x < 4; x++ {
		for y := 0; y < 2; y++ {
			direct, ok := s.GetPixel(x, y, 2)
			wtesting.AssertTrue(t, "direct opaque", ok)
			flipped, ok := s.GetPixel(4-1-x, y, 8)
			wtesting.AssertTrue(t, "mirrored opaque", ok)
			wtesting.AssertEqualUint8(t, "mirror flips x", flipped, direct)
		}
	}
}

func TestGetPixelAliasUnflipped(t *testing.T) {
	s, err := New("SPIDA1D1", buildSolidPicture(4, 1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// Alias pairs reuse the image as stored for both frames.
	got, ok := s.GetPixel(3, 0, 1)
	wtesting.AssertTrue(t, "opaque", ok)
	wtesting.AssertEqualUint8(t, "no flip for alias", got, 3*16)
}
