package preset

import (
	"strings"
	"testing"
	"time"

	"github.com/go-drift/motion/pkg/engine"
)

func TestEveryConstantHasATableEntry(t *testing.T) {
	for _, name := range Names() {
		if _, ok := lookup(name); !ok {
			t.Errorf("Constant %q has no entry in the embedded table", name)
		}
	}
}

func TestEveryTableEntryHasAConstant(t *testing.T) {
	declared := make(map[Name]bool, len(builtin))
	for _, name := range builtin {
		declared[name] = true
	}

	registryMu.RLock()
	defer registryMu.RUnlock()
	for name := range registry {
		if !declared[name] {
			t.Errorf("Table entry %q has no declared constant", name)
		}
	}
}

func TestResolveFadeIn(t *testing.T) {
	vars := Resolve(FadeIn)

	if vars.Duration != 400*time.Millisecond {
		t.Errorf("Expected 400ms, got %v", vars.Duration)
	}
	if vars.Ease != engine.Power2Out {
		t.Errorf("Expected power2.out, got %v", vars.Ease)
	}
	if vars.From["opacity"] != 0 || vars.To["opacity"] != 1 {
		t.Errorf("Unexpected values: from=%v to=%v", vars.From, vars.To)
	}
}

func TestResolvePulseKeyframes(t *testing.T) {
	vars := Resolve(Pulse)

	if len(vars.Keyframes) != 2 {
		t.Fatalf("Expected 2 keyframes, got %d", len(vars.Keyframes))
	}
	if vars.Keyframes[0].Values["scale"] != 1.06 {
		t.Errorf("Unexpected first waypoint: %v", vars.Keyframes[0].Values)
	}
	if vars.Keyframes[1].Duration != 250*time.Millisecond {
		t.Errorf("Expected 250ms second keyframe, got %v", vars.Keyframes[1].Duration)
	}
	if vars.Ease != engine.SineInOut {
		t.Errorf("Expected sine.inOut, got %v", vars.Ease)
	}
}

func TestOverrideReplacesOnlyProvidedFields(t *testing.T) {
	table := []byte(`
presets:
  fade-in:
    duration: 1
    ease: power1
    to: { opacity: 1 }
`)
	if err := Load(table); err != nil {
		t.Fatal(err)
	}
	defer ResetTable()

	vars := Resolve(FadeIn, Override{Duration: 2 * time.Second})

	if vars.Duration != 2*time.Second {
		t.Errorf("Override duration should win, got %v", vars.Duration)
	}
	if vars.Ease != engine.Power1Out {
		t.Errorf("Preset ease should survive, got %v", vars.Ease)
	}
}

func TestOverrideValuesMergePerKey(t *testing.T) {
	vars := Resolve(SlideInUp, Override{Values: engine.Values{"y": 10}})

	if vars.To["y"] != 10 {
		t.Errorf("Override value should win, got %v", vars.To["y"])
	}
	if vars.To["opacity"] != 1 {
		t.Errorf("Untouched keys should survive, got %v", vars.To["opacity"])
	}

	// The shared registry entry must not be mutated by the merge.
	again := Resolve(SlideInUp)
	if again.To["y"] != 0 {
		t.Errorf("Resolve should not mutate the registry, got y=%v", again.To["y"])
	}
}

func TestOverridesApplyInOrder(t *testing.T) {
	vars := Resolve(FadeIn,
		Override{Duration: time.Second},
		Override{Duration: 3 * time.Second, Ease: engine.Linear},
	)

	if vars.Duration != 3*time.Second {
		t.Errorf("Later override should win, got %v", vars.Duration)
	}
	if vars.Ease != engine.Linear {
		t.Errorf("Expected linear, got %v", vars.Ease)
	}
}

func TestResolveUnknownPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Resolve should panic on an unknown name")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "unknown preset") {
			t.Errorf("Unexpected panic value: %v", r)
		}
	}()

	Resolve(Name("does-not-exist"))
}

func TestLoadRejectsUnknownEase(t *testing.T) {
	err := Load([]byte(`
presets:
  fade-in:
    duration: 1
    ease: wobble
    to: { opacity: 1 }
`))
	if err == nil {
		ResetTable()
		t.Fatal("Expected an error for an unknown ease")
	}
	if !strings.Contains(err.Error(), "wobble") {
		t.Errorf("Error should name the bad ease: %v", err)
	}
}

func TestLoadRejectsEmptyTable(t *testing.T) {
	if err := Load([]byte("presets: {}\n")); err == nil {
		ResetTable()
		t.Fatal("Expected an error for an empty table")
	}
}

func TestLoadRejectsValuelessPreset(t *testing.T) {
	err := Load([]byte(`
presets:
  fade-in:
    duration: 1
`))
	if err == nil {
		ResetTable()
		t.Fatal("Expected an error for a preset with no values")
	}
	if !strings.Contains(err.Error(), "fade-in") {
		t.Errorf("Error should name the preset: %v", err)
	}
}

func TestFailedLoadKeepsPreviousTable(t *testing.T) {
	if err := Load([]byte("not yaml: [")); err == nil {
		t.Fatal("Expected a parse error")
	}

	vars := Resolve(FadeIn)
	if vars.Duration != 400*time.Millisecond {
		t.Errorf("Registry should survive a failed load, got %v", vars.Duration)
	}
}

func TestResolvedPresetDrivesEngine(t *testing.T) {
	eng := engine.New(engine.OpacityClamp())
	box := engine.NewObject(engine.Values{"opacity": 0.5})

	h := eng.CreateTween(box, Resolve(FadeIn))

	if got := box.Property("opacity"); got != 0 {
		t.Errorf("Fade-in should start from opacity 0, got %v", got)
	}

	h.Progress(1)
	if got := box.Property("opacity"); got != 1 {
		t.Errorf("Fade-in should end at opacity 1, got %v", got)
	}

	h.Kill()
}
