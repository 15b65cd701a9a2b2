package engine

import "time"

// TweenVars configures a single tween.
//
// Exactly one shape applies:
//   - To only: animate the listed properties from their current values.
//   - From only: apply the listed values immediately, then animate back
//     to the values the target held at creation.
//   - From and To: interpolate between the two explicit maps.
//   - Keyframes: animate each property through the waypoint list;
//     From/To are ignored.
type TweenVars struct {
	// From holds explicit start values.
	From Values
	// To holds explicit end values.
	To Values
	// Keyframes animates properties through successive waypoints.
	Keyframes []Keyframe

	// Duration is the active length of the tween. Ignored when
	// Keyframes is set (each keyframe carries its own duration).
	Duration time.Duration
	// Delay postpones the start of the active phase.
	Delay time.Duration
	// Ease transforms progress. Nil means linear.
	Ease Ease
	// Paused creates the tween without starting playback.
	Paused bool
	// OnComplete is called once when the tween finishes.
	OnComplete func()
}

// Keyframe is one waypoint of a keyframed tween. Properties missing
// from Values hold their previous value for the duration of the frame.
type Keyframe struct {
	Values   Values
	Duration time.Duration
}

// TimelineVars configures a timeline.
type TimelineVars struct {
	// Delay postpones the start of the first entry.
	Delay time.Duration
	// Repeat replays the timeline the given number of extra times.
	// Negative means repeat forever.
	Repeat int
	// Paused creates the timeline without starting playback.
	Paused bool
	// OnComplete is called once when the final repeat finishes.
	OnComplete func()
}
