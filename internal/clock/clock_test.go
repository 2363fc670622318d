package clock

import (
	"testing"
	"time"
)

func TestRealClock_Now(t *testing.T) {
	clock := &RealClock{}

	before := time.Now()
	actual := clock.Now()
	after := time.Now()

	if actual.Before(before) || actual.After(after) {
		t.Errorf("RealClock.Now() = %v, expected between %v and %v", actual, before, after)
	}
}

func TestFakeClock(t *testing.T) {
	fixed := time.Date(2026, 2, 9, 15, 30, 45, 0, time.UTC)
	clock := NewFakeClock(fixed)

	t.Run("returns fixed time", func(t *testing.T) {
		if got := clock.Now(); !got.Equal(fixed) {
			t.Errorf("Now() = %v, want %v", got, fixed)
		}
		time.Sleep(1 * time.Millisecond)
		if got := clock.Now(); !got.Equal(fixed) {
			t.Errorf("Now() drifted to %v", got)
		}
	})

	t.Run("advance accumulates", func(t *testing.T) {
		clock.Advance(1 * time.Hour)
		clock.Advance(30 * time.Minute)

		want := fixed.Add(90 * time.Minute)
		if got := clock.Now(); !got.Equal(want) {
			t.Errorf("Now() after advances = %v, want %v", got, want)
		}
	})

	t.Run("independent instances", func(t *testing.T) {
		other := NewFakeClock(fixed)
		if other.Now().Equal(clock.Now()) {
			t.Error("advancing one clock affected another")
		}
	})
}
