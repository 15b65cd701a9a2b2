package scope

// Ref holds a value and notifies listeners when it changes.
//
// Notification happens after the new value is stored, so a listener
// that reads Value observes the settled state for that update. This is
// the ordering the motion binder relies on: by the time a binding's
// watch runs, the target reference already points at the new element.
//
// Ref is NOT thread-safe. It must only be accessed from the UI thread.
type Ref[T any] struct {
	value     T
	listeners map[int]func(T)
	nextID    int
}

// NewRef creates a ref holding initial.
func NewRef[T any](initial T) *Ref[T] {
	return &Ref[T]{value: initial}
}

// Value returns the current value.
func (r *Ref[T]) Value() T {
	return r.value
}

// Set stores the value, then notifies listeners.
func (r *Ref[T]) Set(value T) {
	r.value = value
	for _, fn := range r.listeners {
		fn(value)
	}
}

// Update applies a transformation to the current value and notifies
// listeners.
func (r *Ref[T]) Update(transform func(T) T) {
	r.Set(transform(r.value))
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (r *Ref[T]) AddListener(fn func(T)) func() {
	if r.listeners == nil {
		r.listeners = make(map[int]func(T))
	}
	id := r.nextID
	r.nextID++
	r.listeners[id] = fn
	return func() {
		delete(r.listeners, id)
	}
}

// Watch adds a value-agnostic change callback. Returns an unsubscribe
// function.
func (r *Ref[T]) Watch(fn func()) func() {
	return r.AddListener(func(T) {
		fn()
	})
}

// ListenerCount returns the number of registered listeners.
func (r *Ref[T]) ListenerCount() int {
	return len(r.listeners)
}
