// Package wtesting carries tiny assert helpers shared by the decoder
// tests.
package wtesting

import (
	"testing"
)

func AssertEqualInt(t *testing.T, name string, got, want int) {
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d; want %d", got, want)
		}
	})
}

func AssertEqualUint8(t *testing.T, name string, got, want uint8) {
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d; want %d", got, want)
		}
	})
}

func AssertEqualString(t *testing.T, name string, got, want string) {
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %q; want %q", got, want)
		}
	})
}

func AssertTrue(t *testing.T, name string, got bool) {
	t.Run(name, func(t *testing.T) {
		if !got {
			t.Errorf("got false; want true")
		}
	})
}
