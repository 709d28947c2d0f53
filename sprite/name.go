// Package sprite handles the sprite lump naming grammar, rotation-aware
// pixel access including mirrored rotations, and the timed animation
// cursor that sequences frames.
//
// A sprite lump name is a 4-byte prefix followed by one or two
// (frame, rotation) pairs: "TROOA1" is frame A seen from rotation 1, and
// "TROOA2A8" stores one image reused for rotations 2 and 8, the second
// with the x axis flipped. Rotation 0 marks a view-angle-independent
// frame.
package sprite

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidName is the umbrella for every naming grammar violation.
	ErrInvalidName = errors.New("invalid sprite name")
	// ErrInvalidNameLength indicates a name that is not 6 or 8 bytes.
	ErrInvalidNameLength = fmt.Errorf("%w: bad length", ErrInvalidName)
	// ErrInvalidFrame indicates a frame character outside [A-Z0-9].
	ErrInvalidFrame = fmt.Errorf("%w: bad frame", ErrInvalidName)
	// ErrInvalidRotation indicates a rotation character outside [0-8].
	ErrInvalidRotation = fmt.Errorf("%w: bad rotation", ErrInvalidName)
	// ErrInvalidDigitFrameRotation indicates a digit frame paired with a
	// rotation other than 0.
	ErrInvalidDigitFrameRotation = fmt.Errorf("%w: digit frame requires rotation 0", ErrInvalidName)
	// ErrRedundantPair indicates a second (frame, rotation) pair identical
	// to the first.
	ErrRedundantPair = fmt.Errorf("%w: redundant pair", ErrInvalidName)
)

// FrameRotation is one (frame, rotation) pair from a sprite name. Frame is
// the literal character ('A'-'Z' or '0'-'9'); Rotation is the numeric slot
// 0 through 8, where 0 means used for all viewing angles.
type FrameRotation struct {
	Frame    byte
	Rotation uint8
}

// Name is a parsed sprite lump name.
type Name struct {
	// Prefix is the 4-character sprite family, e.g. "TROO".
	Prefix string
	// First is the pair every name carries.
	First FrameRotation
	// Second is the optional trailing pair of an 8-character name, nil
	// otherwise.
	Second *FrameRotation
}

func parsePair(frame, rot byte) (FrameRotation, error) {
	frameOK := (frame >= 'A' && frame <= 'Z') || (frame >= '0' && frame <= '9')
	if !frameOK {
		return FrameRotation{}, fmt.Errorf("%w: %q", ErrInvalidFrame, frame)
	}
	if rot < '0' || rot > '8' {
		return FrameRotation{}, fmt.Errorf("%w: %q", ErrInvalidRotation, rot)
	}
	if frame >= '0' && frame <= '9' && rot != '0' {
		return FrameRotation{}, fmt.Errorf("%w: frame %q with rotation %q", ErrInvalidDigitFrameRotation, frame, rot)
	}
	return FrameRotation{Frame: frame, Rotation: rot - '0'}, nil
}

// ParseName parses a sprite lump name of exactly 6 or 8 characters.
//
// For 8-character names the trailing pair is classified by comparison with
// the first: the same frame under a different rotation is a mirror pair
// (the stored image is reused flipped), a different frame is an alias pair
// (same rotation slot, different source image), and an exact duplicate is
// rejected. Any other shape fails rather than being guessed at.
func ParseName(s string) (Name, error) {
	if len(s) != 6 && len(s) != 8 {
		return Name{}, fmt.Errorf("%w: %q is %d bytes", ErrInvalidNameLength, s, len(s))
	}
	for i := 0; i < 4; i++ {
		if s[i] < 0x21 || s[i] > 0x7e {
			return Name{}, fmt.Errorf("%w: prefix %q", ErrInvalidNameLength, s[:4])
		}
	}
	first, err := parsePair(s[4], s[5])
	if err != nil {
		return Name{}, fmt.Errorf("%w in %q", err, s)
	}
	n := Name{Prefix: s[:4], First: first}
	if len(s) == 8 {
		second, err := parsePair(s[6], s[7])
		if err != nil {
			return Name{}, fmt.Errorf("%w in %q", err, s)
		}
		if second == first {
			return Name{}, fmt.Errorf("%w: %q", ErrRedundantPair, s)
		}
		n.Second = &second
	}
	return n, nil
}

// String formats the name back into its lump spelling. For every name
// accepted by ParseName, ParseName(n.String()) reproduces n.
func (n Name) String() string {
	s := n.Prefix + string(n.First.Frame) + string('0'+n.First.Rotation)
	if n.Second != nil {
		s += string(n.Second.Frame) + string('0'+n.Second.Rotation)
	}
	return s
}

// Mirrored reports whether the name declares a mirror pair: a second pair
// reusing the first pair's frame under a different rotation.
func (n Name) Mirrored() bool {
	return n.Second != nil && n.Second.Frame == n.First.Frame && n.Second.Rotation != n.First.Rotation
}

// Alias reports whether the name declares an alternate-frame alias: a
// second pair with a different frame. The stored image serves both frames
// unflipped.
func (n Name) Alias() bool {
	return n.Second != nil && n.Second.Frame != n.First.Frame
}
