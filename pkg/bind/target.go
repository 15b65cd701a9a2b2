package bind

import (
	"github.com/go-drift/motion/pkg/engine"
	"github.com/go-drift/motion/pkg/scope"
)

// Target is a possibly-reactive reference to an animation target.
// Resolve returns the current target and whether one is present; Watch
// registers a callback for when the resolution may have changed.
type Target[T engine.Target] interface {
	Resolve() (T, bool)
	Watch(fn func()) (cancel func())
}

// Watchable is any dependency that can signal changes, such as
// [scope.Ref].
type Watchable interface {
	Watch(fn func()) (cancel func())
}

// Targetable constrains reactive references to comparable engine
// targets, so absence can be detected as the zero value.
type Targetable interface {
	comparable
	engine.Target
}

// Value wraps a target that is always present and never changes.
// The value must be usable as an engine target; passing a nil pointer
// defeats the absent-target guard.
func Value[T engine.Target](v T) Target[T] {
	return staticTarget[T]{value: v}
}

type staticTarget[T engine.Target] struct {
	value T
}

func (s staticTarget[T]) Resolve() (T, bool) { return s.value, true }

func (s staticTarget[T]) Watch(func()) func() { return func() {} }

// Deref adapts a reactive ref. The target is absent while the ref
// holds the zero value (nil for pointer targets).
func Deref[T Targetable](ref *scope.Ref[T]) Target[T] {
	return refTarget[T]{ref: ref}
}

type refTarget[T Targetable] struct {
	ref *scope.Ref[T]
}

func (r refTarget[T]) Resolve() (T, bool) {
	var zero T
	v := r.ref.Value()
	return v, v != zero
}

func (r refTarget[T]) Watch(fn func()) func() {
	return r.ref.Watch(fn)
}

// Provider adapts a resolver function with explicit dependencies. The
// binding re-resolves whenever any dependency signals a change.
func Provider[T engine.Target](resolve func() (T, bool), deps ...Watchable) Target[T] {
	return providerTarget[T]{resolve: resolve, deps: deps}
}

type providerTarget[T engine.Target] struct {
	resolve func() (T, bool)
	deps    []Watchable
}

func (p providerTarget[T]) Resolve() (T, bool) {
	return p.resolve()
}

func (p providerTarget[T]) Watch(fn func()) func() {
	cancels := make([]func(), 0, len(p.deps))
	for _, dep := range p.deps {
		cancels = append(cancels, dep.Watch(fn))
	}
	return func() {
		for _, cancel := range cancels {
			cancel()
		}
	}
}
