package engine

import (
	"sync"
	"time"
)

// Handle is the control surface of one in-flight or idle animation.
// Every method is safe to call at any point in the handle's life,
// including after Kill; dead handles ignore controls.
type Handle interface {
	// Play starts or resumes playback.
	Play()
	// Pause suspends playback, keeping the current position.
	Pause()
	// Resume is an alias for Play.
	Resume()
	// Restart rewinds to the beginning and plays.
	Restart()
	// Seek jumps to an offset within the active phase (after any
	// delay) and renders the values at that position immediately.
	Seek(offset time.Duration)
	// Progress jumps to a fraction in [0, 1] of the active duration
	// and renders immediately.
	Progress(fraction float64)
	// IsActive reports whether the handle is currently playing.
	IsActive() bool
	// Kill stops playback and permanently disables the handle.
	Kill()
}

// Timeline is a handle over an ordered set of tweens with relative
// timing offsets.
type Timeline interface {
	Handle

	// To appends a tween starting when the previous content ends.
	To(target Target, vars TweenVars) Timeline
	// Add inserts a tween at an explicit content-relative offset.
	Add(target Target, vars TweenVars, at time.Duration) Timeline
	// Duration returns the content duration, excluding the timeline's
	// own delay.
	Duration() time.Duration
}

// Engine creates animation handles. The default implementation is
// backed by github.com/tanema/gween; tests substitute fakes.
type Engine interface {
	// CreateTween builds a tween for the target and starts it unless
	// vars.Paused is set. Start values are captured at creation.
	CreateTween(target Target, vars TweenVars) Handle
	// CreateTimeline builds an empty timeline and starts it unless
	// vars.Paused is set.
	CreateTimeline(vars TimelineVars) Timeline
	// SetProperties applies values immediately with no animation.
	SetProperties(target Target, values Values) Handle
}

var (
	defaultOnce   sync.Once
	defaultEngine Engine
)

// Default returns the shared gween-backed engine, sealing the
// process-wide plugin set on first use.
func Default() Engine {
	defaultOnce.Do(func() {
		defaultEngine = &gweenEngine{plugins: ensurePlugins()}
	})
	return defaultEngine
}

// New creates a gween-backed engine. With no arguments it uses the
// process-wide plugin set; passing plugins gives the engine a private
// set, which tests use to avoid global state.
func New(plugins ...Plugin) Engine {
	if len(plugins) == 0 {
		return &gweenEngine{plugins: ensurePlugins()}
	}
	return &gweenEngine{plugins: plugins}
}

type gweenEngine struct {
	plugins []Plugin
}

func (e *gweenEngine) CreateTween(target Target, vars TweenVars) Handle {
	t := newTween(target, vars, e.plugins)
	if !vars.Paused {
		t.Play()
	}
	return t
}

func (e *gweenEngine) CreateTimeline(vars TimelineVars) Timeline {
	return newTimeline(vars, e.plugins)
}

func (e *gweenEngine) SetProperties(target Target, values Values) Handle {
	for name, value := range values {
		applyValue(e.plugins, target, name, value)
	}
	return setHandle{}
}

// setHandle is the inert handle returned by SetProperties: the write
// already happened, so every control is a no-op.
type setHandle struct{}

func (setHandle) Play()              {}
func (setHandle) Pause()             {}
func (setHandle) Resume()            {}
func (setHandle) Restart()           {}
func (setHandle) Seek(time.Duration) {}
func (setHandle) Progress(float64)   {}
func (setHandle) IsActive() bool     { return false }
func (setHandle) Kill()              {}
