// Package preset maps named, build-time-registered animation
// configurations to the options structure the engine expects.
//
// The identifier space is closed: the [Name] constants below mirror the
// embedded preset table, and a registry test keeps the two in sync.
// Resolving an identifier that is not in the table is a programmer
// error and panics; there is no runtime lookup-failure path.
//
//	vars := preset.Resolve(preset.FadeIn, preset.Override{
//	    Duration: 200 * time.Millisecond,
//	})
//	bind.Animate(sc, bind.Deref(card), vars)
package preset

import (
	"fmt"
	"time"

	"github.com/go-drift/motion/pkg/engine"
)

// Name identifies a registered preset.
type Name string

// The built-in preset set, matching presets.yaml.
const (
	FadeIn       Name = "fade-in"
	FadeOut      Name = "fade-out"
	SlideInUp    Name = "slide-in-up"
	SlideInDown  Name = "slide-in-down"
	SlideInLeft  Name = "slide-in-left"
	SlideInRight Name = "slide-in-right"
	ZoomIn       Name = "zoom-in"
	ZoomOut      Name = "zoom-out"
	Pulse        Name = "pulse"
	Shake        Name = "shake"
)

// builtin lists every declared constant; the registry test checks each
// one against the embedded table.
var builtin = []Name{
	FadeIn, FadeOut,
	SlideInUp, SlideInDown, SlideInLeft, SlideInRight,
	ZoomIn, ZoomOut,
	Pulse, Shake,
}

// Override adjusts a preset's defaults. Merge semantics are shallow
// field replacement: a non-zero field wins over the preset's value, and
// entries in Values win per-key over the preset's end values.
type Override struct {
	Duration time.Duration
	Delay    time.Duration
	Ease     engine.Ease
	Values   engine.Values
}

// Resolve returns the options for a preset, merged with any overrides
// in order. Unknown names panic: the name set is closed at build time,
// so a miss is a bug, not an input error.
func Resolve(name Name, overrides ...Override) engine.TweenVars {
	vars, ok := lookup(name)
	if !ok {
		panic(fmt.Sprintf("preset: unknown preset %q; names must come from the preset.Name constants", name))
	}

	for _, ov := range overrides {
		if ov.Duration != 0 {
			vars.Duration = ov.Duration
		}
		if ov.Delay != 0 {
			vars.Delay = ov.Delay
		}
		if ov.Ease != nil {
			vars.Ease = ov.Ease
		}
		if len(ov.Values) > 0 {
			merged := make(engine.Values, len(vars.To)+len(ov.Values))
			for k, v := range vars.To {
				merged[k] = v
			}
			for k, v := range ov.Values {
				merged[k] = v
			}
			vars.To = merged
		}
	}
	return vars
}

// Names returns the declared preset identifiers.
func Names() []Name {
	out := make([]Name, len(builtin))
	copy(out, builtin)
	return out
}
