package bind

import (
	"time"

	"github.com/go-drift/motion/pkg/engine"
	"github.com/go-drift/motion/pkg/scope"
)

// MountPolicy decides what happens to a timeline handle when the owning
// component mounts.
type MountPolicy int

const (
	// KeepOnMount keeps the timeline alive while mounted and kills it
	// when the scope is disposed. This is the default.
	KeepOnMount MountPolicy = iota
	// DestroyOnMount kills the timeline the moment the component
	// mounts. This preserves the destroy-on-mount wiring some callers
	// depend on for one-shot setup timelines.
	DestroyOnMount
)

// WithMountPolicy sets the mount policy for a timeline binding. Tween
// bindings ignore it.
func WithMountPolicy(p MountPolicy) Option {
	return func(o *options) { o.mountPolicy = p }
}

// TimelineBinding owns a timeline handle created eagerly at call time.
// Unlike tween bindings it is not gated on a target reference, since a
// timeline has no single element; mounting only gates the OnMounted
// notification.
type TimelineBinding struct {
	handle     engine.Timeline
	sc         *scope.Scope
	unregister func()
	disposed   bool
}

// Timeline creates a timeline immediately and registers teardown with
// the scope. The control surface is usable straight away, before the
// component mounts.
func Timeline(sc *scope.Scope, vars engine.TimelineVars, opts ...Option) *TimelineBinding {
	o := buildOptions(opts)

	tb := &TimelineBinding{
		handle: o.eng.CreateTimeline(vars),
		sc:     sc,
	}
	tb.unregister = sc.OnDispose(tb.Dispose)
	if o.mountPolicy == DestroyOnMount {
		sc.OnMount(tb.handle.Kill)
	}
	return tb
}

// OnMounted registers fn to receive the timeline handle once, when the
// owning component finishes mounting. If it is already mounted, fn runs
// immediately. Returns a cancel function.
func (tb *TimelineBinding) OnMounted(fn func(engine.Timeline)) func() {
	return tb.sc.OnMount(func() {
		fn(tb.handle)
	})
}

// Handle returns the underlying timeline.
func (tb *TimelineBinding) Handle() engine.Timeline {
	return tb.handle
}

// To appends a tween starting when the previous content ends.
func (tb *TimelineBinding) To(target engine.Target, vars engine.TweenVars) *TimelineBinding {
	tb.handle.To(target, vars)
	return tb
}

// Add inserts a tween at an explicit content-relative offset.
func (tb *TimelineBinding) Add(target engine.Target, vars engine.TweenVars, at time.Duration) *TimelineBinding {
	tb.handle.Add(target, vars, at)
	return tb
}

// Play starts or resumes the timeline.
func (tb *TimelineBinding) Play() { tb.handle.Play() }

// Pause suspends the timeline.
func (tb *TimelineBinding) Pause() { tb.handle.Pause() }

// Resume is an alias for Play.
func (tb *TimelineBinding) Resume() { tb.handle.Resume() }

// Restart rewinds the timeline and plays.
func (tb *TimelineBinding) Restart() { tb.handle.Restart() }

// Seek jumps to a content-relative offset.
func (tb *TimelineBinding) Seek(offset time.Duration) { tb.handle.Seek(offset) }

// Progress jumps to a fraction in [0, 1] of the content duration.
func (tb *TimelineBinding) Progress(fraction float64) { tb.handle.Progress(fraction) }

// IsActive reports whether the timeline is playing.
func (tb *TimelineBinding) IsActive() bool { return tb.handle.IsActive() }

// Dispose kills the timeline. It is idempotent and registered with the
// owning scope automatically.
func (tb *TimelineBinding) Dispose() {
	if tb.disposed {
		return
	}
	tb.disposed = true
	if tb.unregister != nil {
		tb.unregister()
	}
	tb.handle.Kill()
}
