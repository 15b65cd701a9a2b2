package engine

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// minTrackSeconds substitutes for zero-length durations so gween never
// divides by zero; a zero-duration tween renders its end state.
const minTrackSeconds = 1e-6

// propAnim produces the value of one property at an absolute time
// within the active phase.
type propAnim interface {
	at(t float32) float32
}

// gweenAnim wraps a single gween tween; Set gives random access.
type gweenAnim struct {
	tw *gween.Tween
}

func (a gweenAnim) at(t float32) float32 {
	v, _ := a.tw.Set(t)
	return v
}

// seqAnim plays per-segment tweens laid end to end, one per keyframe.
// Lookup is random access: the segment containing t renders at its
// local offset, which keeps seeks and restarts exact at boundaries.
type seqAnim struct {
	segs   []*gween.Tween
	starts []float32
	durs   []float32
}

func (a *seqAnim) at(t float32) float32 {
	i := 0
	for i < len(a.segs)-1 && t >= a.starts[i]+a.durs[i] {
		i++
	}
	local := t - a.starts[i]
	if local < 0 {
		local = 0
	}
	if local > a.durs[i] {
		local = a.durs[i]
	}
	v, _ := a.segs[i].Set(local)
	return v
}

// track animates one property of the target.
type track struct {
	property string
	anim     propAnim
}

type tween struct {
	target  Target
	plugins []Plugin
	tracks  []track

	delay       time.Duration
	duration    time.Duration // active-phase length
	contentSecs float32       // duration in gween time, epsilon-adjusted

	position   time.Duration
	playing    bool
	completed  bool
	killed     bool
	onComplete func()
}

func newTween(target Target, vars TweenVars, plugins []Plugin) *tween {
	t := &tween{
		target:     target,
		plugins:    plugins,
		delay:      vars.Delay,
		onComplete: vars.OnComplete,
	}

	easing := easeOf(vars.Ease)
	if len(vars.Keyframes) > 0 {
		t.tracks, t.duration, t.contentSecs = keyframeTracks(target, vars.Keyframes, easing)
	} else {
		t.tracks = spanTracks(target, vars.From, vars.To, vars.Duration, easing)
		t.duration = vars.Duration
		t.contentSecs = trackSeconds(vars.Duration)
	}

	// Render the start state immediately so from-style tweens take
	// effect before the first frame, delay included.
	t.render()
	return t
}

// spanTracks builds one gween tween per property for a from/to span.
// Properties missing from either map anchor at the target's current
// value.
func spanTracks(target Target, from, to Values, duration time.Duration, easing ease.TweenFunc) []track {
	secs := trackSeconds(duration)
	tracks := make([]track, 0, len(from)+len(to))
	seen := make(map[string]struct{}, len(from)+len(to))

	add := func(property string) {
		if _, ok := seen[property]; ok {
			return
		}
		seen[property] = struct{}{}

		begin := float32(target.Property(property))
		if v, ok := from[property]; ok {
			begin = float32(v)
		}
		end := float32(target.Property(property))
		if v, ok := to[property]; ok {
			end = float32(v)
		}
		tracks = append(tracks, track{
			property: property,
			anim:     gweenAnim{tw: gween.New(begin, end, secs, easing)},
		})
	}

	for property := range from {
		add(property)
	}
	for property := range to {
		add(property)
	}
	return tracks
}

// keyframeTracks builds one gween sequence per property across the
// waypoint list. A property missing from a keyframe holds its previous
// value for that segment.
func keyframeTracks(target Target, keyframes []Keyframe, easing ease.TweenFunc) ([]track, time.Duration, float32) {
	var duration time.Duration
	properties := make(map[string]struct{})
	for _, kf := range keyframes {
		duration += kf.Duration
		for property := range kf.Values {
			properties[property] = struct{}{}
		}
	}

	var contentSecs float32
	tracks := make([]track, 0, len(properties))
	for property := range properties {
		anim := &seqAnim{
			segs:   make([]*gween.Tween, 0, len(keyframes)),
			starts: make([]float32, 0, len(keyframes)),
			durs:   make([]float32, 0, len(keyframes)),
		}
		current := float32(target.Property(property))
		var total float32
		for _, kf := range keyframes {
			end := current
			if v, ok := kf.Values[property]; ok {
				end = float32(v)
			}
			secs := trackSeconds(kf.Duration)
			anim.segs = append(anim.segs, gween.New(current, end, secs, easing))
			anim.starts = append(anim.starts, total)
			anim.durs = append(anim.durs, secs)
			current = end
			total += secs
		}
		contentSecs = total
		tracks = append(tracks, track{property: property, anim: anim})
	}
	return tracks, duration, contentSecs
}

func trackSeconds(d time.Duration) float32 {
	secs := float32(d.Seconds())
	if secs <= 0 {
		return minTrackSeconds
	}
	return secs
}

// render applies the property values for the current position.
func (t *tween) render() {
	local := t.position - t.delay
	if local < 0 {
		local = 0
	}
	if local > t.duration {
		local = t.duration
	}

	at := float32(local.Seconds())
	if t.duration <= 0 || at > t.contentSecs {
		at = t.contentSecs
	}

	for _, tr := range t.tracks {
		applyValue(t.plugins, t.target, tr.property, float64(tr.anim.at(at)))
	}
}

func (t *tween) step(dt time.Duration) {
	if !t.playing || t.completed || t.killed {
		return
	}

	t.position += dt
	t.render()

	if t.position >= t.delay+t.duration {
		t.completed = true
		t.playing = false
		unregister(t)
		if t.onComplete != nil {
			t.onComplete()
		}
	}
}

func (t *tween) Play() {
	if t.killed || t.completed || t.playing {
		return
	}
	t.playing = true
	register(t)
}

func (t *tween) Resume() { t.Play() }

func (t *tween) Pause() {
	if t.killed || !t.playing {
		return
	}
	t.playing = false
	unregister(t)
}

func (t *tween) Restart() {
	if t.killed {
		return
	}
	t.position = 0
	t.completed = false
	t.render()
	if !t.playing {
		t.playing = true
		register(t)
	}
}

func (t *tween) Seek(offset time.Duration) {
	if t.killed {
		return
	}
	if offset < 0 {
		offset = 0
	}
	if offset > t.duration {
		offset = t.duration
	}
	t.position = t.delay + offset
	t.render()
}

func (t *tween) Progress(fraction float64) {
	if fraction < 0 {
		fraction = 0
	} else if fraction > 1 {
		fraction = 1
	}
	t.Seek(time.Duration(fraction * float64(t.duration)))
}

func (t *tween) IsActive() bool {
	return t.playing && !t.completed && !t.killed
}

func (t *tween) Kill() {
	if t.killed {
		return
	}
	t.killed = true
	t.playing = false
	unregister(t)
}
