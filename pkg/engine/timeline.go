package engine

import "time"

// timelineEntry is one tween placed on the timeline's content axis.
type timelineEntry struct {
	target      Target
	tracks      []track
	start       time.Duration // content-relative, includes the entry's own delay
	duration    time.Duration
	contentSecs float32
}

type timeline struct {
	plugins []Plugin
	entries []*timelineEntry

	delay   time.Duration
	content time.Duration // end of the last entry
	repeat  int
	cycles  int

	position   time.Duration
	playing    bool
	completed  bool
	killed     bool
	onComplete func()
}

func newTimeline(vars TimelineVars, plugins []Plugin) *timeline {
	tl := &timeline{
		plugins:    plugins,
		delay:      vars.Delay,
		repeat:     vars.Repeat,
		onComplete: vars.OnComplete,
	}
	if !vars.Paused {
		tl.playing = true
		register(tl)
	}
	return tl
}

// To appends a tween starting when the previous content ends.
func (tl *timeline) To(target Target, vars TweenVars) Timeline {
	return tl.Add(target, vars, tl.content)
}

// Add inserts a tween at a content-relative offset. Start values are
// captured now, not when the playhead arrives. The entry's Paused and
// OnComplete fields are ignored; the timeline owns playback.
func (tl *timeline) Add(target Target, vars TweenVars, at time.Duration) Timeline {
	if tl.killed {
		return tl
	}

	entry := &timelineEntry{target: target, start: at + vars.Delay}
	easing := easeOf(vars.Ease)
	if len(vars.Keyframes) > 0 {
		entry.tracks, entry.duration, entry.contentSecs = keyframeTracks(target, vars.Keyframes, easing)
	} else {
		entry.tracks = spanTracks(target, vars.From, vars.To, vars.Duration, easing)
		entry.duration = vars.Duration
		entry.contentSecs = trackSeconds(vars.Duration)
	}
	tl.entries = append(tl.entries, entry)

	if end := entry.start + entry.duration; end > tl.content {
		tl.content = end
	}
	// New content revives a finished timeline; the caller decides
	// whether to Play again.
	tl.completed = false
	return tl
}

// Duration returns the content duration, excluding the timeline delay.
func (tl *timeline) Duration() time.Duration {
	return tl.content
}

// render applies values for the current position. Entries whose start
// the playhead has not reached yet are left untouched.
func (tl *timeline) render() {
	local := tl.position - tl.delay
	if local < 0 {
		local = 0
	}
	if local > tl.content {
		local = tl.content
	}

	for _, entry := range tl.entries {
		offset := local - entry.start
		if offset < 0 {
			continue
		}
		if offset > entry.duration {
			offset = entry.duration
		}
		at := float32(offset.Seconds())
		if entry.duration <= 0 || at > entry.contentSecs {
			at = entry.contentSecs
		}
		for _, tr := range entry.tracks {
			applyValue(tl.plugins, entry.target, tr.property, float64(tr.anim.at(at)))
		}
	}
}

func (tl *timeline) step(dt time.Duration) {
	if !tl.playing || tl.completed || tl.killed || len(tl.entries) == 0 {
		return
	}

	tl.position += dt
	tl.render()

	total := tl.delay + tl.content
	if tl.position < total {
		return
	}

	if tl.repeat < 0 || tl.cycles < tl.repeat {
		tl.cycles++
		overshoot := tl.position - total
		if tl.content > 0 {
			overshoot %= tl.content
		} else {
			overshoot = 0
		}
		tl.position = tl.delay + overshoot
		tl.render()
		return
	}

	tl.completed = true
	tl.playing = false
	unregister(tl)
	if tl.onComplete != nil {
		tl.onComplete()
	}
}

func (tl *timeline) Play() {
	if tl.killed || tl.completed || tl.playing {
		return
	}
	tl.playing = true
	register(tl)
}

func (tl *timeline) Resume() { tl.Play() }

func (tl *timeline) Pause() {
	if tl.killed || !tl.playing {
		return
	}
	tl.playing = false
	unregister(tl)
}

func (tl *timeline) Restart() {
	if tl.killed {
		return
	}
	tl.position = 0
	tl.cycles = 0
	tl.completed = false
	tl.render()
	if !tl.playing {
		tl.playing = true
		register(tl)
	}
}

func (tl *timeline) Seek(offset time.Duration) {
	if tl.killed {
		return
	}
	if offset < 0 {
		offset = 0
	}
	if offset > tl.content {
		offset = tl.content
	}
	tl.position = tl.delay + offset
	tl.render()
}

func (tl *timeline) Progress(fraction float64) {
	if fraction < 0 {
		fraction = 0
	} else if fraction > 1 {
		fraction = 1
	}
	tl.Seek(time.Duration(fraction * float64(tl.content)))
}

func (tl *timeline) IsActive() bool {
	return tl.playing && !tl.completed && !tl.killed
}

func (tl *timeline) Kill() {
	if tl.killed {
		return
	}
	tl.killed = true
	tl.playing = false
	unregister(tl)
}
