package sprite

import (
	"sort"
	"time"
)

// DefaultFrameDuration is the frame advance interval an Animation starts
// with unless the caller picks another.
const DefaultFrameDuration = 200 * time.Millisecond

// Sequence is the ordered list of frame letters an animation cycles
// through. Build one with NewSequence to get de-duplication and ascending
// order; a registry typically builds one sequence per rotation slot.
type Sequence []byte

// NewSequence sorts the passed frame letters ascending and drops
// duplicates.
func NewSequence(frames []byte) Sequence {
	sorted := append([]byte(nil), frames...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	seq := sorted[:0]
	for i, f := range sorted {
		if i == 0 || f != seq[len(seq)-1] {
			seq = append(seq, f)
		}
	}
	return Sequence(seq)
}

// Animation is a per-instance frame cursor over a sequence. Several
// animations may reference one sprite family's immutable pictures without
// aliasing concerns, since the cursor is all that mutates.
//
// The state machine is Stopped or Playing; Update advances the cursor only
// while playing and only once the configured duration has elapsed, then
// wraps past the last frame.
type Animation struct {
	seq      Sequence
	cursor   int
	playing  bool
	last     time.Time
	duration time.Duration
}

// NewAnimation creates a stopped animation over the passed sequence. A
// non-positive duration falls back to DefaultFrameDuration.
func NewAnimation(seq Sequence, frameDuration time.Duration) *Animation {
	if frameDuration <= 0 {
		frameDuration = DefaultFrameDuration
	}
	return &Animation{seq: seq, duration: frameDuration}
}

// Play starts the animation. Calling Play while already playing is a
// no-op; the frame timestamp resets only on the stopped-to-playing
// transition.
func (a *Animation) Play() {
	if a.playing {
		return
	}
	a.playing = true
	a.last = time.Now()
}

// Stop halts the animation, keeping the cursor where it is. Idempotent.
func (a *Animation) Stop() {
	a.playing = false
}

// Playing reports whether the animation is advancing.
func (a *Animation) Playing() bool { return a.playing }

// Frame returns the current frame letter, or 0 for an empty sequence.
func (a *Animation) Frame() byte {
	if len(a.seq) == 0 {
		return 0
	}
	return a.seq[a.cursor]
}

// Index returns the current cursor position.
func (a *Animation) Index() int { return a.cursor }

// SetFrame moves the cursor to i. An out-of-range i is ignored rather
// than reported, so callers must not assume the write took effect.
func (a *Animation) SetFrame(i int) {
	if i < 0 || i >= len(a.seq) {
		return
	}
	a.cursor = i
}

// Update advances the cursor if the animation is playing and the frame
// duration has elapsed since the last advance, wrapping to the first frame
// past the end.
func (a *Animation) Update() {
	a.advance(time.Now())
}

func (a *Animation) advance(now time.Time) {
	if !a.playing || len(a.seq) == 0 {
		return
	}
	if now.Sub(a.last) < a.duration {
		return
	}
	a.cursor = (a.cursor + 1) % len(a.seq)
	a.last = now
}
