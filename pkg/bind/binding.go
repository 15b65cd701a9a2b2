package bind

import (
	"time"

	"github.com/go-drift/motion/pkg/engine"
	"github.com/go-drift/motion/pkg/scope"
)

// Option configures a binding.
type Option func(*options)

type options struct {
	eng         engine.Engine
	mountPolicy MountPolicy
}

// WithEngine substitutes the engine used by the binding. The default
// is [engine.Default].
func WithEngine(e engine.Engine) Option {
	return func(o *options) { o.eng = e }
}

func buildOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.eng == nil {
		o.eng = engine.Default()
	}
	return o
}

// Binding owns at most one live animation handle, tied to a reactive
// target reference and an owning scope.
type Binding struct {
	resolve    func() (func() engine.Handle, bool)
	handle     engine.Handle
	unwatch    func()
	unregister func()
	disposed   bool
}

// newBinding wires the lifecycle protocol: one teardown registration at
// creation, a watch on the target reference, and an immediate first
// run.
func newBinding[T engine.Target](sc *scope.Scope, target Target[T], create func(e engine.Engine, t T) engine.Handle, opts []Option) *Binding {
	o := buildOptions(opts)

	b := &Binding{}
	b.resolve = func() (func() engine.Handle, bool) {
		v, ok := target.Resolve()
		if !ok {
			return nil, false
		}
		return func() engine.Handle { return create(o.eng, v) }, true
	}

	b.unregister = sc.OnDispose(b.Dispose)
	b.unwatch = target.Watch(b.Refresh)
	b.Refresh()
	return b
}

// Refresh re-resolves the target reference. An absent target leaves the
// current handle untouched; a present one kills the previous handle and
// creates its replacement. Hosts without a scope.Ref-based reference
// call this from their own change notifications.
func (b *Binding) Refresh() {
	if b.disposed {
		return
	}
	build, ok := b.resolve()
	if !ok {
		return
	}
	if b.handle != nil {
		b.handle.Kill()
		b.handle = nil
	}
	b.handle = build()
}

// Dispose stops watching and kills the current handle, if any. It is
// idempotent and registered with the owning scope automatically.
func (b *Binding) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	if b.unwatch != nil {
		b.unwatch()
	}
	if b.unregister != nil {
		b.unregister()
	}
	if b.handle != nil {
		b.handle.Kill()
		b.handle = nil
	}
}

// Handle returns the current engine handle, or nil if the target has
// not resolved yet.
func (b *Binding) Handle() engine.Handle {
	return b.handle
}

// Play starts or resumes the underlying handle. No-op before the first
// resolution.
func (b *Binding) Play() {
	if b.handle != nil {
		b.handle.Play()
	}
}

// Pause suspends the underlying handle. No-op before the first
// resolution.
func (b *Binding) Pause() {
	if b.handle != nil {
		b.handle.Pause()
	}
}

// Resume is an alias for Play.
func (b *Binding) Resume() {
	if b.handle != nil {
		b.handle.Resume()
	}
}

// Restart rewinds and plays the underlying handle. No-op before the
// first resolution.
func (b *Binding) Restart() {
	if b.handle != nil {
		b.handle.Restart()
	}
}

// Seek jumps the underlying handle to an offset. No-op before the first
// resolution.
func (b *Binding) Seek(offset time.Duration) {
	if b.handle != nil {
		b.handle.Seek(offset)
	}
}

// Progress jumps the underlying handle to a fraction of its duration.
// No-op before the first resolution.
func (b *Binding) Progress(fraction float64) {
	if b.handle != nil {
		b.handle.Progress(fraction)
	}
}

// IsActive reports whether a handle exists and is playing.
func (b *Binding) IsActive() bool {
	return b.handle != nil && b.handle.IsActive()
}

// Set applies values immediately (no animation) each time the target
// reference resolves.
func Set[T engine.Target](sc *scope.Scope, target Target[T], values engine.Values, opts ...Option) *Binding {
	return newBinding(sc, target, func(e engine.Engine, t T) engine.Handle {
		return e.SetProperties(t, values)
	}, opts)
}

// To animates the listed properties from their current values to
// values.
func To[T engine.Target](sc *scope.Scope, target Target[T], values engine.Values, vars engine.TweenVars, opts ...Option) *Binding {
	vars.To = values
	return Animate(sc, target, vars, opts...)
}

// From applies values immediately, then animates back to the values the
// target held when it resolved.
func From[T engine.Target](sc *scope.Scope, target Target[T], values engine.Values, vars engine.TweenVars, opts ...Option) *Binding {
	vars.From = values
	return Animate(sc, target, vars, opts...)
}

// FromTo interpolates between two explicit property maps.
func FromTo[T engine.Target](sc *scope.Scope, target Target[T], from, to engine.Values, vars engine.TweenVars, opts ...Option) *Binding {
	vars.From = from
	vars.To = to
	return Animate(sc, target, vars, opts...)
}

// Animate creates a tween from fully-populated vars, as produced by
// preset.Resolve.
func Animate[T engine.Target](sc *scope.Scope, target Target[T], vars engine.TweenVars, opts ...Option) *Binding {
	return newBinding(sc, target, func(e engine.Engine, t T) engine.Handle {
		return e.CreateTween(t, vars)
	}, opts)
}
