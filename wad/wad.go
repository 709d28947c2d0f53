package wad

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const (
	headerSize   = 12
	dirEntrySize = 16
)

// Name is an up-to-8-byte lump name as stored on disk. Names shorter than
// eight bytes are zero padded, but real archives also carry garbage past
// the first non-printable byte, so comparisons must stop there.
type Name [8]byte

// MakeName builds an on-disk name from a string, truncating to eight bytes.
func MakeName(s string) Name {
	var n Name
	copy(n[:], s)
	return n
}

// String returns the readable part of the name: everything up to the first
// zero or otherwise non-printable byte.
func (n Name) String() string {
	for i, b := range n {
		if b < 0x20 || b > 0x7e {
			return string(n[:i])
		}
	}
	return string(n[:])
}

type binHeader struct {
	Magic     [4]byte
	LumpCount uint32
	DirOffset uint32
}

type binDirEntry struct {
	Offset uint32
	Size   uint32
	Name   Name
}

// DirEntry describes one lump: where it sits in the file and how it is named.
type DirEntry struct {
	Name   Name
	Offset uint32
	Size   uint32
}

// Archive is an open WAD file together with its decoded directory.
//
// It keeps the underlying reader open; lump payloads are fetched lazily
// through Read. An Archive constructed via Open should be Closed once all
// lumps of interest have been read.
type Archive struct {
	r      io.ReadSeeker
	closer io.Closer

	magic [4]byte
	dir   []DirEntry
}

// Open opens the WAD file at path and decodes its directory.
func Open(path string) (*Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	a, err := New(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	a.closer = f
	return a, nil
}

// New decodes the archive header and directory from the passed reader.
//
// The reader stays owned by the caller unless the archive was constructed
// through Open; it must remain usable for as long as lumps are read.
func New(r io.ReadSeeker) (*Archive, error) {
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("could not measure archive: %v", err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("could not rewind archive: %v", err)
	}

	var h binHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("could not read archive header: %v", err)
	}
	if magic := string(h.Magic[:]); magic != "IWAD" && magic != "PWAD" {
		return nil, fmt.Errorf("%w: got %q, want \"IWAD\" or \"PWAD\"", ErrInvalidMagic, magic)
	}

	dirEnd := int64(h.DirOffset) + int64(h.LumpCount)*dirEntrySize
	if int64(h.DirOffset) > size || dirEnd > size {
		return nil, fmt.Errorf("%w: directory [%d, %d) does not fit in %d byte file", ErrTruncatedDirectory, h.DirOffset, dirEnd, size)
	}
	if _, err := r.Seek(int64(h.DirOffset), io.SeekStart); err != nil {
		return nil, fmt.Errorf("could not seek to directory: %v", err)
	}

	a := &Archive{r: r, magic: h.Magic}
	a.dir = make([]DirEntry, h.LumpCount)
	for i := range a.dir {
		var e binDirEntry
		if err := binary.Read(r, binary.LittleEndian, &e); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrTruncatedDirectory, i, err)
		}
		a.dir[i] = DirEntry{Name: e.Name, Offset: e.Offset, Size: e.Size}
	}
	return a, nil
}

// Close releases the underlying file if the archive owns one.
func (a *Archive) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// Magic returns the 4-byte archive type tag ("IWAD" or "PWAD").
func (a *Archive) Magic() string {
	return string(a.magic[:])
}

// Lumps returns the directory in file order. The returned slice is the
// archive's own; callers must not modify it.
func (a *Archive) Lumps() []DirEntry {
	return a.dir
}

// Find scans the directory for the first lump carrying the passed name.
// Names are compared after truncation at the first non-printable byte on
// both sides; real archives carry duplicate names, and the first entry in
// directory order wins.
func (a *Archive) Find(name string) (DirEntry, bool) {
	want := MakeName(name).String()
	for _, e := range a.dir {
		if e.Name.String() == want {
			return e, true
		}
	}
	return DirEntry{}, false
}

// Read returns the payload of the passed directory entry.
func (a *Archive) Read(e DirEntry) ([]byte, error) {
	if _, err := a.r.Seek(int64(e.Offset), io.SeekStart); err != nil {
		return nil, fmt.Errorf("could not seek to lump %q: %v", e.Name, err)
	}
	b := make([]byte, e.Size)
	if _, err := io.ReadFull(a.r, b); err != nil {
		return nil, fmt.Errorf("%w: lump %q: %v", ErrTruncatedRead, e.Name, err)
	}
	return b, nil
}

// ReadName finds the named lump and returns its payload.
func (a *Archive) ReadName(name string) ([]byte, error) {
	e, ok := a.Find(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrLumpNotFound, name)
	}
	return a.Read(e)
}

// LumpsBetween returns the directory entries strictly between the start
// and end marker lumps, in file order. Marker-delimited ranges are how the
// archive groups flats (F_START/F_END) and sprites (S_START/S_END).
func (a *Archive) LumpsBetween(start, end string) ([]DirEntry, error) {
	first := -1
	for i, e := range a.dir {
		if e.Name.String() == start {
			first = i + 1
			break
		}
	}
	if first < 0 {
		return nil, fmt.Errorf("%w: %q", ErrLumpNotFound, start)
	}
	for i := first; i < len(a.dir); i++ {
		if a.dir[i].Name.String() == end {
			return a.dir[first:i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrLumpNotFound, end)
}
