package wad

import "errors"

var (
	// ErrInvalidMagic indicates the archive type tag is neither IWAD nor PWAD.
	ErrInvalidMagic = errors.New("invalid archive magic")
	// ErrTruncatedDirectory indicates the lump directory extends past the end of the file.
	ErrTruncatedDirectory = errors.New("truncated lump directory")
	// ErrTruncatedRead indicates a lump read returned fewer bytes than the directory promised.
	ErrTruncatedRead = errors.New("truncated lump read")
	// ErrLumpNotFound indicates no directory entry carries the requested name.
	ErrLumpNotFound = errors.New("lump not found")
)
