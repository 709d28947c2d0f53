package texture

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"badc0de.net/pkg/go-wad/pal"
	"badc0de.net/pkg/go-wad/pic"
	"badc0de.net/pkg/go-wad/wtesting"
)

func buildPatchNames(names ...string) []byte {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint32(len(names)))
	for _, n := range names {
		var field [nameFieldSize]byte
		copy(field[:], n)
		buf.Write(field[:])
	}
	return buf.Bytes()
}

type placementSpec struct {
	x, y int16
	idx  uint16
}

type textureSpec struct {
	name          string
	width, height uint16
	placements    []placementSpec
}

func buildTextureLump(textures ...textureSpec) []byte {
	var records bytes.Buffer
	offsets := make([]uint32, len(textures))
	base := 4 + len(textures)*4
	for i, t := range textures {
		offsets[i] = uint32(base + records.Len())
		var name [8]byte
		copy(name[:], t.name)
		records.Write(name[:])
		records.Write(make([]byte, 4))
		binary.Write(&records, binary.LittleEndian, t.width)
		binary.Write(&records, binary.LittleEndian, t.height)
		records.Write(make([]byte, 4))
		binary.Write(&records, binary.LittleEndian, uint16(len(t.placements)))
		for _, p := range t.placements {
			binary.Write(&records, binary.LittleEndian, p.x)
			binary.Write(&records, binary.LittleEndian, p.y)
			binary.Write(&records, binary.LittleEndian, p.idx)
			records.Write(make([]byte, 4))
		}
	}

	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint32(len(textures)))
	binary.Write(&buf, binary.LittleEndian, offsets)
	buf.Write(records.Bytes())
	return buf.Bytes()
}

func TestParsePatchNames(t *testing.T) {
	names, err := ParsePatchNames(buildPatchNames("WALL00", "w94_1", "DOOR2_4"))
	if err != nil {
		t.Fatalf("ParsePatchNames: %v", err)
	}
	wtesting.AssertEqualInt(t, "count", len(names), 3)
	wtesting.AssertEqualString(t, "first name", names[0], "WALL00")
	wtesting.AssertEqualString(t, "lower case entry upper cased", names[1], "W94_1")
}

func TestParsePatchNamesTruncated(t *testing.T) {
	good := buildPatchNames("WALL00", "WALL01")
	for _, b := range [][]byte{nil, good[:3], good[:len(good)-1]} {
		if _, err := ParsePatchNames(b); !errors.Is(err, ErrTruncatedTable) {
			t.Errorf("%d bytes: got %v; want ErrTruncatedTable", len(b), err)
		}
	}
}

func TestParseTextureLump(t *testing.T) {
	names, err := ParsePatchNames(buildPatchNames("BODIES", "RW22_2"))
	if err != nil {
		t.Fatalf("ParsePatchNames: %v", err)
	}
	lump := buildTextureLump(
		textureSpec{name: "aastinky", width: 24, height: 72, placements: []placementSpec{
			{x: 0, y: 0, idx: 1},
			{x: -6, y: 8, idx: 0},
		}},
		textureSpec{name: "SKY1", width: 256, height: 128},
	)
	textures, err := ParseTextureLump(lump, names)
	if err != nil {
		t.Fatalf("ParseTextureLump: %v", err)
	}
	wtesting.AssertEqualInt(t, "texture count", len(textures), 2)

	first := textures[0]
	wtesting.AssertEqualString(t, "name upper cased", first.Name, "AASTINKY")
	wtesting.AssertEqualInt(t, "width", first.Width, 24)
	wtesting.AssertEqualInt(t, "height", first.Height, 72)
	wtesting.AssertEqualInt(t, "placements", len(first.Placements), 2)
	wtesting.AssertEqualString(t, "placement patch", first.Placements[0].PatchName, "RW22_2")
	wtesting.AssertEqualInt(t, "negative x kept signed", first.Placements[1].X, -6)

	wtesting.AssertEqualInt(t, "patchless texture", len(textures[1].Placements), 0)
}

func TestParseTextureLumpErrors(t *testing.T) {
	names := NameTable{"WALL00"}

	if _, err := ParseTextureLump([]byte{1, 2}, names); !errors.Is(err, ErrTruncatedTable) {
		t.Errorf("short lump: got %v; want ErrTruncatedTable", err)
	}

	lump := buildTextureLump(textureSpec{name: "T", width: 8, height: 8, placements: []placementSpec{{idx: 0}}})
	if _, err := ParseTextureLump(lump[:len(lump)-4], names); !errors.Is(err, ErrTruncatedTable) {
		t.Errorf("cut record: got %v; want ErrTruncatedTable", err)
	}

	oob := buildTextureLump(textureSpec{name: "T", width: 8, height: 8, placements: []placementSpec{{idx: 7}}})
	if _, err := ParseTextureLump(oob, names); !errors.Is(err, ErrPatchIndexOutOfBounds) {
		t.Errorf("index 7 of 1: got %v; want ErrPatchIndexOutOfBounds", err)
	}
}

// mapRegistry is a PatchRegistry over a plain map.
type mapRegistry map[string]*pic.Patch

func (m mapRegistry) Patch(name string) (*pic.Patch, bool) {
	p, ok := m[name]
	return p, ok
}

// buildSolidPatch serializes a fully opaque picture filled with one index.
func buildSolidPatch(t *testing.T, width, height int, index uint8) *pic.Patch {
	t.Helper()
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
		streams.Write(bytes.Repeat([]byte{index}, height))
		streams.WriteByte(0)
		streams.WriteByte(0xFF)
	}
	binary.Write(&buf, binary.LittleEndian, offsets)
	buf.Write(streams.Bytes())

	p, err := pic.LoadPatch(buf.Bytes())
	if err != nil {
		t.Fatalf("LoadPatch: %v", err)
	}
	return p
}

// grayPalettes maps every index i to the color (i, i, i) in every palette.
func grayPalettes(t *testing.T) *pal.PaletteSet {
	t.Helper()
	b := make([]byte, pal.PaletteSetSize)
	for i := range b {
		b[i] = uint8(i / 3 % 256)
	}
	p, err := pal.NewPaletteSet(b)
	if err != nil {
		t.Fatalf("NewPaletteSet: %v", err)
	}
	return p
}

func TestRenderFullCoverage(t *testing.T) {
	reg := mapRegistry{
		"TOP":    buildSolidPatch(t, 64, 64, 5),
		"BOTTOM": buildSolidPatch(t, 64, 64, 9),
	}
	tex := &CompositeTexture{
		Name: "WALL", Width: 64, Height: 128,
		Placements: []Placement{
			{PatchName: "TOP", X: 0, Y: 0},
			{PatchName: "BOTTOM", X: 0, Y: 64},
		},
	}
	img, err := tex.Render(reg, grayPalettes(t), 0)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	// Both halves opaque, no pixel left transparent.
	for _, y := range []int{0, 63} {
		_, _, _, a := img.At(10, y).RGBA()
		wtesting.AssertEqualInt(t, "top opaque", int(a>>8), 0xFF)
	}
	r, _, _, a := img.At(10, 100).RGBA()
	wtesting.AssertEqualInt(t, "bottom opaque", int(a>>8), 0xFF)
	wtesting.AssertEqualInt(t, "bottom color", int(r>>8), 9)
	r, _, _, _ = img.At(10, 10).RGBA()
	wtesting.AssertEqualInt(t, "top color", int(r>>8), 5)
}

func TestRenderLaterPlacementWins(t *testing.T) {
	reg := mapRegistry{
		"UNDER": buildSolidPatch(t, 16, 16, 3),
		"OVER":  buildSolidPatch(t, 8, 8, 7),
	}
	tex := &CompositeTexture{
		Name: "OVERLAP", Width: 16, Height: 16,
		Placements: []Placement{
			{PatchName: "UNDER", X: 0, Y: 0},
			{PatchName: "OVER", X: 4, Y: 4},
		},
	}
	img, err := tex.Render(reg, grayPalettes(t), 0)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	r, _, _, _ := img.At(5, 5).RGBA()
	wtesting.AssertEqualInt(t, "overlap takes later patch", int(r>>8), 7)
	r, _, _, _ = img.At(0, 0).RGBA()
	wtesting.AssertEqualInt(t, "outside overlap keeps earlier patch", int(r>>8), 3)

	// Swapped order flips the overlap result.
	tex.Placements[0], tex.Placements[1] = tex.Placements[1], tex.Placements[0]
	img, err = tex.Render(reg, grayPalettes(t), 0)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	r, _, _, _ = img.At(5, 5).RGBA()
	wtesting.AssertEqualInt(t, "overlap order sensitive", int(r>>8), 3)
}

func TestRenderClipsPlacements(t *testing.T) {
	reg := mapRegistry{"BIG": buildSolidPatch(t, 32, 32, 6)}
	tex := &CompositeTexture{
		Name: "SMALL", Width: 16, Height: 16,
		Placements: []Placement{{PatchName: "BIG", X: -8, Y: -8}},
	}
	img, err := tex.Render(reg, grayPalettes(t), 0)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	wtesting.AssertEqualInt(t, "canvas width unchanged", img.Bounds().Dx(), 16)
	r, _, _, a := img.At(0, 0).RGBA()
	wtesting.AssertEqualInt(t, "clipped pixel drawn", int(a>>8), 0xFF)
	wtesting.AssertEqualInt(t, "clipped pixel color", int(r>>8), 6)
}

func TestRenderMissingPatch(t *testing.T) {
	tex := &CompositeTexture{
		Name: "GHOST", Width: 8, Height: 8,
		Placements: []Placement{{PatchName: "NOWHERE"}},
	}
	if _, err := tex.Render(mapRegistry{}, grayPalettes(t), 0); !errors.Is(err, ErrPatchNotFound) {
		t.Errorf("got %v; want ErrPatchNotFound", err)
	}
}
