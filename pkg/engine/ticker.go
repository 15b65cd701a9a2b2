package engine

import (
	"sync"
	"time"
)

// Clock provides time for frame stepping. The default implementation
// uses system time. Tests can inject a fake clock via SetClock to
// control timing deterministically.
type Clock interface {
	Now() time.Time
}

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// clock is the package-level time source, replaceable for testing.
var clock Clock = realClock{}

// SetClock replaces the engine clock. Returns the previous clock so
// callers can restore it during cleanup.
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }

// stepper is implemented by handles that consume frame deltas.
type stepper interface {
	step(dt time.Duration)
}

var (
	stepMu      sync.Mutex
	active      = make(map[stepper]struct{})
	lastAdvance time.Time
)

func register(s stepper) {
	stepMu.Lock()
	active[s] = struct{}{}
	stepMu.Unlock()
}

func unregister(s stepper) {
	stepMu.Lock()
	delete(active, s)
	stepMu.Unlock()
}

// Advance steps all active handles by the wall-clock time since the
// previous Advance. The first call establishes the baseline and steps
// by zero. Hosts call this once per frame.
func Advance() {
	now := Now()
	stepMu.Lock()
	var dt time.Duration
	if !lastAdvance.IsZero() {
		dt = now.Sub(lastAdvance)
	}
	lastAdvance = now
	stepMu.Unlock()

	AdvanceBy(dt)
}

// AdvanceBy steps all active handles by an explicit delta. Tests and
// fixed-timestep hosts use this directly.
func AdvanceBy(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}

	stepMu.Lock()
	if len(active) == 0 {
		stepMu.Unlock()
		return
	}
	// Copy to avoid holding the lock during callbacks; a step may
	// unregister its handle or fire OnComplete.
	steppers := make([]stepper, 0, len(active))
	for s := range active {
		steppers = append(steppers, s)
	}
	stepMu.Unlock()

	for _, s := range steppers {
		s.step(dt)
	}
}

// HasActive returns true if any handles are currently playing.
func HasActive() bool {
	stepMu.Lock()
	defer stepMu.Unlock()
	return len(active) > 0
}

// ActiveCount returns the number of currently playing handles.
func ActiveCount() int {
	stepMu.Lock()
	defer stepMu.Unlock()
	return len(active)
}
