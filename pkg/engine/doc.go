// Package engine exposes tween and timeline primitives behind a narrow
// interface, with a default implementation backed by
// github.com/tanema/gween.
//
// # Core Components
//
//   - [Engine]: the factory boundary. CreateTween and CreateTimeline
//     return a [Handle] with playback controls; SetProperties applies
//     values immediately with no animation.
//
//   - [Handle]: the control surface of one in-flight or idle animation:
//     Play, Pause, Resume, Restart, Seek, Progress, IsActive, Kill.
//     Every method is safe to call after Kill.
//
//   - [Ease]: a sealed easing contract. Values are either one of the
//     named eases declared in this package ([Linear], [QuadOut],
//     [Power2Out], ...) or a custom normalized [EaseFunc]. There is no
//     runtime validation; the type system closes the set.
//
//   - [Plugin]: process-wide property handlers registered once at first
//     engine use. Call [RegisterPlugins] before constructing an engine
//     to replace the default set.
//
// # Stepping
//
// Handles do not own timers. The host's frame loop calls [Advance] (or
// [AdvanceBy] with an explicit delta) once per frame to advance every
// active handle; tests drive time the same way. The package-level clock
// is injectable via [SetClock] for deterministic tests.
//
// All stepping and control calls are single-threaded by contract: they
// must come from the host's UI thread. The only internal lock guards
// the active-handle registry, mirroring how hosts hand frames over.
package engine
