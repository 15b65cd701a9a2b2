// Package bind connects reactive target references to animation
// handles with correct creation and disposal timing.
//
// A binding watches a possibly-reactive [Target] reference. The watch
// runs once at creation and again whenever the reference changes. While
// the reference resolves to nothing, the binding does nothing; the
// first time it resolves, the binding asks the engine for a handle.
// When the reference moves to a new target, the previous handle is
// killed before the replacement is created, so a binding owns at most
// one live handle. When the owning [scope.Scope] is disposed, whatever
// handle is current is killed exactly once.
//
// The returned [Binding] is a stable control surface: Play, Pause,
// Seek and the rest are safe to call before any handle exists and after
// disposal.
//
//	sc := scope.New()
//	card := scope.NewRef[*engine.Object](nil)
//
//	b := bind.To(sc, bind.Deref(card), engine.Values{"x": 100},
//	    engine.TweenVars{Duration: 300 * time.Millisecond})
//
//	card.Set(engine.NewObject(nil)) // handle created here
//	sc.Dispose()                    // handle killed here
//
// [Timeline] bindings are not gated on a target: the timeline handle
// exists from the call onward, and OnMounted delivers it once when the
// owning component finishes mounting.
//
// Bindings are framework-independent: [Binding.Refresh] and
// [Binding.Dispose] are exported so a host adapter can drive the
// lifecycle without scope and Target wiring.
package bind
