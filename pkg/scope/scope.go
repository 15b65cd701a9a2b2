// Package scope provides the component-lifecycle surface that motion
// bindings attach to.
//
// A [Scope] models the lifetime of one owning UI component: cleanup
// callbacks registered with OnDispose run exactly once, in reverse
// order, when the scope ends; mount callbacks registered with OnMount
// fire exactly once when the host reports that the component finished
// mounting. [Ref] is a reactive cell that notifies listeners after the
// new value has been stored, so observers always see settled state.
//
// The package is framework-agnostic: a host embeds or owns a Scope per
// component and calls Mount and Dispose from its own lifecycle, and
// drives Refs from its own update pass. Everything here is
// single-threaded by contract; call it from the UI thread only.
package scope

import "sync"

// Scope tracks disposal and mount lifecycle for one owning component.
type Scope struct {
	mu        sync.Mutex
	disposers []func()
	disposed  bool
	mounted   bool
	mountFns  []func()
}

// New creates an unmounted scope.
func New() *Scope {
	return &Scope{}
}

// OnDispose registers a cleanup function to be called when the scope is
// disposed. Returns an unregister function that can be called to remove
// the disposer. The cleanup function will only be called once. If the
// scope is already disposed, cleanup runs immediately.
func (s *Scope) OnDispose(cleanup func()) func() {
	if cleanup == nil {
		return func() {}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		cleanup()
		return func() {}
	}

	index := len(s.disposers)
	s.disposers = append(s.disposers, cleanup)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if index < len(s.disposers) {
			s.disposers[index] = nil
		}
	}
}

// OnMount registers fn to run once when the scope mounts. If the scope
// is already mounted, fn runs immediately. Returns a cancel function;
// cancelling after the scope has mounted is a no-op.
func (s *Scope) OnMount(fn func()) func() {
	if fn == nil {
		return func() {}
	}

	s.mu.Lock()
	if s.mounted {
		s.mu.Unlock()
		fn()
		return func() {}
	}
	index := len(s.mountFns)
	s.mountFns = append(s.mountFns, fn)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if index < len(s.mountFns) {
			s.mountFns[index] = nil
		}
	}
}

// Mount marks the scope as mounted and fires pending mount callbacks in
// registration order. Calling Mount again is a no-op.
func (s *Scope) Mount() {
	s.mu.Lock()
	if s.mounted || s.disposed {
		s.mu.Unlock()
		return
	}
	s.mounted = true
	fns := s.mountFns
	s.mountFns = nil
	s.mu.Unlock()

	for _, fn := range fns {
		if fn != nil {
			fn()
		}
	}
}

// IsMounted returns true if Mount has been called.
func (s *Scope) IsMounted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mounted
}

// Dispose runs all registered disposers in reverse order (LIFO).
// Calling Dispose again is a no-op.
func (s *Scope) Dispose() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	disposers := s.disposers
	s.disposers = nil
	s.mountFns = nil
	s.mu.Unlock()

	for i := len(disposers) - 1; i >= 0; i-- {
		if disposers[i] != nil {
			disposers[i]()
		}
	}
}

// IsDisposed returns true if this scope has been disposed.
func (s *Scope) IsDisposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}

// Disposable is anything that releases resources via Dispose.
type Disposable interface {
	Dispose()
}

// Use creates a resource and registers it for automatic disposal when
// the scope ends.
//
// Example:
//
//	handle := scope.Use(sc, func() *myController {
//	    return newMyController()
//	})
func Use[C Disposable](s *Scope, create func() C) C {
	resource := create()
	s.OnDispose(func() {
		resource.Dispose()
	})
	return resource
}
