package sprite

import (
	"testing"
	"time"

	"badc0de.net/pkg/go-wad/wtesting"
)

func TestNewSequence(t *testing.T) {
	seq := NewSequence([]byte{'C', 'A', 'B', 'A', 'C'})
	wtesting.AssertEqualString(t, "sorted and deduplicated", string(seq), "ABC")

	wtesting.AssertEqualInt(t, "empty input", len(NewSequence(nil)), 0)
	wtesting.AssertEqualString(t, "single frame", string(NewSequence([]byte{'D'})), "D")
}

func TestAnimationPlayStop(t *testing.T) {
	a := NewAnimation(NewSequence([]byte{'A', 'B'}), time.Second)

	wtesting.AssertTrue(t, "starts stopped", !a.Playing())
	a.Play()
	wtesting.AssertTrue(t, "playing after Play", a.Playing())
	a.Stop()
	a.Stop()
	wtesting.AssertTrue(t, "stopped after Stop", !a.Playing())
}

func TestAnimationAdvance(t *testing.T) {
	a := NewAnimation(NewSequence([]byte{'A', 'B', 'C'}), time.Second)
	start := time.Now()
	a.Play()
	a.last = start

	wtesting.AssertEqualUint8(t, "initial frame", a.Frame(), 'A')

	a.advance(start.Add(time.Second / 2))
	wtesting.AssertEqualUint8(t, "half a period does not advance", a.Frame(), 'A')

	a.advance(start.Add(time.Second))
	wtesting.AssertEqualUint8(t, "one period advances", a.Frame(), 'B')

	a.advance(start.Add(2 * time.Second))
	a.advance(start.Add(3 * time.Second))
	wtesting.AssertEqualUint8(t, "wraps past the end", a.Frame(), 'A')
	wtesting.AssertEqualInt(t, "cursor wrapped", a.Index(), 0)
}

func TestAnimationStoppedDoesNotAdvance(t *testing.T) {
	a := NewAnimation(NewSequence([]byte{'A', 'B'}), time.Second)
	a.advance(time.Now().Add(time.Hour))
	wtesting.AssertEqualUint8(t, "frame unchanged while stopped", a.Frame(), 'A')
}

func TestAnimationPlayWhilePlaying(t *testing.T) {
	a := NewAnimation(NewSequence([]byte{'A', 'B'}), time.Second)
	start := time.Now()
	a.Play()
	a.last = start

	// A second Play must not reset the pending advance.
	a.Play()
	wtesting.AssertTrue(t, "timestamp kept", a.last.Equal(start))

	a.advance(start.Add(time.Second))
	wtesting.AssertEqualUint8(t, "advance still due", a.Frame(), 'B')
}

func TestAnimationSetFrame(t *testing.T) {
	a := NewAnimation(NewSequence([]byte{'A', 'B', 'C'}), time.Second)

	a.SetFrame(2)
	wtesting.AssertEqualUint8(t, "cursor moved", a.Frame(), 'C')

	a.SetFrame(-1)
	a.SetFrame(3)
	wtesting.AssertEqualUint8(t, "out of range ignored", a.Frame(), 'C')
}

func TestAnimationEmptySequence(t *testing.T) {
	a := NewAnimation(nil, 0)
	a.Play()
	a.Update()
	wtesting.AssertEqualUint8(t, "empty sequence frame", a.Frame(), 0)
	wtesting.AssertEqualInt(t, "cursor stays put", a.Index(), 0)
}

func TestAnimationDefaultDuration(t *testing.T) {
	a := NewAnimation(NewSequence([]byte{'A', 'B'}), 0)
	start := time.Now()
	a.Play()
	a.last = start

	a.advance(start.Add(DefaultFrameDuration / 2))
	wtesting.AssertEqualUint8(t, "before default period", a.Frame(), 'A')
	a.advance(start.Add(DefaultFrameDuration))
	wtesting.AssertEqualUint8(t, "after default period", a.Frame(), 'B')
}
