package engine

import (
	"testing"
	"time"
)

func TestTimelineSequencesEntries(t *testing.T) {
	eng := testEngine()
	box := NewObject(Values{"x": 0, "opacity": 0})

	tl := eng.CreateTimeline(TimelineVars{})
	tl.To(box, TweenVars{To: Values{"opacity": 1}, Duration: time.Second})
	tl.To(box, TweenVars{To: Values{"x": 100}, Duration: time.Second})

	if got := tl.Duration(); got != 2*time.Second {
		t.Errorf("Expected 2s content, got %v", got)
	}

	AdvanceBy(500 * time.Millisecond)
	if got := box.Property("opacity"); !approx(got, 0.5) {
		t.Errorf("Expected opacity=0.5, got %v", got)
	}
	if got := box.Property("x"); !approx(got, 0) {
		t.Errorf("Second entry should not have started, got x=%v", got)
	}

	AdvanceBy(time.Second)
	if got := box.Property("opacity"); !approx(got, 1) {
		t.Errorf("Expected opacity=1, got %v", got)
	}
	if got := box.Property("x"); !approx(got, 50) {
		t.Errorf("Expected x=50 midway through second entry, got %v", got)
	}

	AdvanceBy(500 * time.Millisecond)
	if got := box.Property("x"); !approx(got, 100) {
		t.Errorf("Expected x=100 at end, got %v", got)
	}
	if tl.IsActive() {
		t.Error("Timeline should be inactive after completing")
	}
}

func TestTimelineAddAtOffset(t *testing.T) {
	eng := testEngine()
	a := NewObject(Values{"x": 0})
	b := NewObject(Values{"x": 0})

	tl := eng.CreateTimeline(TimelineVars{Paused: true})
	tl.To(a, TweenVars{To: Values{"x": 100}, Duration: time.Second})
	tl.Add(b, TweenVars{To: Values{"x": 100}, Duration: time.Second}, 500*time.Millisecond)

	if got := tl.Duration(); got != 1500*time.Millisecond {
		t.Errorf("Expected 1.5s content, got %v", got)
	}

	tl.Seek(time.Second)
	if got := a.Property("x"); !approx(got, 100) {
		t.Errorf("Expected a.x=100, got %v", got)
	}
	if got := b.Property("x"); !approx(got, 50) {
		t.Errorf("Expected b.x=50, got %v", got)
	}
}

func TestTimelineDelay(t *testing.T) {
	eng := testEngine()
	box := NewObject(Values{"x": 0})

	tl := eng.CreateTimeline(TimelineVars{Delay: 500 * time.Millisecond})
	tl.To(box, TweenVars{To: Values{"x": 100}, Duration: time.Second})

	AdvanceBy(500 * time.Millisecond)
	if got := box.Property("x"); !approx(got, 0) {
		t.Errorf("Expected x=0 during delay, got %v", got)
	}

	AdvanceBy(500 * time.Millisecond)
	if got := box.Property("x"); !approx(got, 50) {
		t.Errorf("Expected x=50, got %v", got)
	}

	tl.Kill()
}

func TestTimelineRepeat(t *testing.T) {
	eng := testEngine()
	box := NewObject(Values{"x": 0})
	done := false

	tl := eng.CreateTimeline(TimelineVars{Repeat: 1, OnComplete: func() { done = true }})
	tl.To(box, TweenVars{To: Values{"x": 100}, Duration: time.Second})

	// First pass ends and wraps into the second.
	AdvanceBy(1250 * time.Millisecond)
	if done {
		t.Error("Timeline should still be repeating")
	}
	if got := box.Property("x"); !approx(got, 25) {
		t.Errorf("Expected x=25 after wrap, got %v", got)
	}
	if !tl.IsActive() {
		t.Error("Repeating timeline should be active")
	}

	AdvanceBy(750 * time.Millisecond)
	if !done {
		t.Error("Timeline should complete after the repeat")
	}
	if got := box.Property("x"); !approx(got, 100) {
		t.Errorf("Expected x=100 at final completion, got %v", got)
	}
}

func TestTimelinePauseSeekProgress(t *testing.T) {
	eng := testEngine()
	box := NewObject(Values{"x": 0})

	tl := eng.CreateTimeline(TimelineVars{Paused: true})
	tl.To(box, TweenVars{To: Values{"x": 100}, Duration: 2 * time.Second})

	if tl.IsActive() {
		t.Error("Paused timeline should not be active")
	}

	tl.Seek(time.Second)
	if got := box.Property("x"); !approx(got, 50) {
		t.Errorf("Expected x=50 after Seek, got %v", got)
	}

	tl.Progress(0.25)
	if got := box.Property("x"); !approx(got, 25) {
		t.Errorf("Expected x=25 after Progress, got %v", got)
	}

	tl.Play()
	if !tl.IsActive() {
		t.Error("Timeline should be active after Play")
	}

	AdvanceBy(500 * time.Millisecond)
	if got := box.Property("x"); !approx(got, 50) {
		t.Errorf("Expected x=50 after resuming from Progress(0.25), got %v", got)
	}

	tl.Kill()
}

func TestTimelineRestart(t *testing.T) {
	eng := testEngine()
	box := NewObject(Values{"x": 0})

	tl := eng.CreateTimeline(TimelineVars{})
	tl.To(box, TweenVars{To: Values{"x": 100}, Duration: time.Second})

	AdvanceBy(time.Second)
	if tl.IsActive() {
		t.Error("Timeline should be done")
	}

	tl.Restart()
	if !tl.IsActive() {
		t.Error("Restarted timeline should be active")
	}
	if got := box.Property("x"); !approx(got, 0) {
		t.Errorf("Restart should rewind values, got %v", got)
	}

	AdvanceBy(500 * time.Millisecond)
	if got := box.Property("x"); !approx(got, 50) {
		t.Errorf("Expected x=50 on replay, got %v", got)
	}

	tl.Kill()
}

func TestTimelineKill(t *testing.T) {
	eng := testEngine()
	box := NewObject(Values{"x": 0})

	tl := eng.CreateTimeline(TimelineVars{})
	tl.To(box, TweenVars{To: Values{"x": 100}, Duration: time.Second})

	AdvanceBy(250 * time.Millisecond)
	tl.Kill()

	AdvanceBy(time.Second)
	if got := box.Property("x"); !approx(got, 25) {
		t.Errorf("Killed timeline should stop mutating, got %v", got)
	}

	// Dead handle swallows everything.
	tl.Play()
	tl.Restart()
	tl.Seek(time.Second)
	tl.To(box, TweenVars{To: Values{"x": 0}, Duration: time.Second})
	tl.Kill()

	if tl.IsActive() {
		t.Error("Killed timeline should never report active")
	}
}

func TestTimelineAddRevivesCompleted(t *testing.T) {
	eng := testEngine()
	box := NewObject(Values{"x": 0})

	tl := eng.CreateTimeline(TimelineVars{})
	tl.To(box, TweenVars{To: Values{"x": 100}, Duration: time.Second})
	AdvanceBy(time.Second)

	if tl.IsActive() {
		t.Error("Timeline should be done")
	}

	tl.To(box, TweenVars{To: Values{"x": 200}, Duration: time.Second})
	tl.Play()
	if !tl.IsActive() {
		t.Error("Timeline with new content should play again")
	}

	AdvanceBy(time.Second)
	if got := box.Property("x"); !approx(got, 200) {
		t.Errorf("Expected x=200 after appended entry, got %v", got)
	}
}

func TestEmptyTimelineNeverCompletes(t *testing.T) {
	eng := testEngine()

	tl := eng.CreateTimeline(TimelineVars{OnComplete: func() {
		t.Error("Empty timeline should not complete")
	}})

	AdvanceBy(time.Second)
	tl.Kill()
}
