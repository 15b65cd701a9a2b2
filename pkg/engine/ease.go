package engine

import "github.com/tanema/gween/ease"

// Ease selects the easing applied to a tween. The set is closed at
// compile time: a value is either one of the named eases declared below
// or a custom [EaseFunc]. Nothing validates ease values at runtime
// because nothing else can satisfy the interface.
type Ease interface {
	tweenFunc() ease.TweenFunc
}

// EaseFunc is a custom easing function over normalized progress:
// it receives t in [0, 1] and returns eased progress.
type EaseFunc func(t float64) float64

func (f EaseFunc) tweenFunc() ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		if d <= 0 {
			return b + c
		}
		return b + c*float32(f(float64(t/d)))
	}
}

// namedEase is a key into the ease table. Being a plain string keeps
// named eases comparable, which presets and tests rely on.
type namedEase string

func (e namedEase) tweenFunc() ease.TweenFunc {
	return easeTable[string(e)]
}

func (e namedEase) String() string {
	return string(e)
}

// Named eases, wrapping the gween/ease catalog. The power1..power4
// names are aliases for quad..quint; a bare power name means its .out
// variant, which is the conventional default for UI enter motion.
var (
	Linear Ease = namedEase("linear")

	QuadIn     Ease = namedEase("quad.in")
	QuadOut    Ease = namedEase("quad.out")
	QuadInOut  Ease = namedEase("quad.inOut")
	CubicIn    Ease = namedEase("cubic.in")
	CubicOut   Ease = namedEase("cubic.out")
	CubicInOut Ease = namedEase("cubic.inOut")
	QuartIn    Ease = namedEase("quart.in")
	QuartOut   Ease = namedEase("quart.out")
	QuartInOut Ease = namedEase("quart.inOut")
	QuintIn    Ease = namedEase("quint.in")
	QuintOut   Ease = namedEase("quint.out")
	QuintInOut Ease = namedEase("quint.inOut")

	SineIn       Ease = namedEase("sine.in")
	SineOut      Ease = namedEase("sine.out")
	SineInOut    Ease = namedEase("sine.inOut")
	ExpoIn       Ease = namedEase("expo.in")
	ExpoOut      Ease = namedEase("expo.out")
	ExpoInOut    Ease = namedEase("expo.inOut")
	CircIn       Ease = namedEase("circ.in")
	CircOut      Ease = namedEase("circ.out")
	CircInOut    Ease = namedEase("circ.inOut")
	BackIn       Ease = namedEase("back.in")
	BackOut      Ease = namedEase("back.out")
	BackInOut    Ease = namedEase("back.inOut")
	BounceIn     Ease = namedEase("bounce.in")
	BounceOut    Ease = namedEase("bounce.out")
	BounceInOut  Ease = namedEase("bounce.inOut")
	ElasticIn    Ease = namedEase("elastic.in")
	ElasticOut   Ease = namedEase("elastic.out")
	ElasticInOut Ease = namedEase("elastic.inOut")

	Power1In    = QuadIn
	Power1Out   = QuadOut
	Power1InOut = QuadInOut
	Power2In    = CubicIn
	Power2Out   = CubicOut
	Power2InOut = CubicInOut
	Power3In    = QuartIn
	Power3Out   = QuartOut
	Power3InOut = QuartInOut
	Power4In    = QuintIn
	Power4Out   = QuintOut
	Power4InOut = QuintInOut
)

var easeTable = map[string]ease.TweenFunc{
	"linear":        ease.Linear,
	"quad.in":       ease.InQuad,
	"quad.out":      ease.OutQuad,
	"quad.inOut":    ease.InOutQuad,
	"cubic.in":      ease.InCubic,
	"cubic.out":     ease.OutCubic,
	"cubic.inOut":   ease.InOutCubic,
	"quart.in":      ease.InQuart,
	"quart.out":     ease.OutQuart,
	"quart.inOut":   ease.InOutQuart,
	"quint.in":      ease.InQuint,
	"quint.out":     ease.OutQuint,
	"quint.inOut":   ease.InOutQuint,
	"sine.in":       ease.InSine,
	"sine.out":      ease.OutSine,
	"sine.inOut":    ease.InOutSine,
	"expo.in":       ease.InExpo,
	"expo.out":      ease.OutExpo,
	"expo.inOut":    ease.InOutExpo,
	"circ.in":       ease.InCirc,
	"circ.out":      ease.OutCirc,
	"circ.inOut":    ease.InOutCirc,
	"back.in":       ease.InBack,
	"back.out":      ease.OutBack,
	"back.inOut":    ease.InOutBack,
	"bounce.in":     ease.InBounce,
	"bounce.out":    ease.OutBounce,
	"bounce.inOut":  ease.InOutBounce,
	"elastic.in":    ease.InElastic,
	"elastic.out":   ease.OutElastic,
	"elastic.inOut": ease.InOutElastic,
}

// easeAliases maps alternative spellings accepted in preset tables.
var easeAliases = map[string]string{
	"power1":       "quad.out",
	"power1.in":    "quad.in",
	"power1.out":   "quad.out",
	"power1.inOut": "quad.inOut",
	"power2":       "cubic.out",
	"power2.in":    "cubic.in",
	"power2.out":   "cubic.out",
	"power2.inOut": "cubic.inOut",
	"power3":       "quart.out",
	"power3.in":    "quart.in",
	"power3.out":   "quart.out",
	"power3.inOut": "quart.inOut",
	"power4":       "quint.out",
	"power4.in":    "quint.in",
	"power4.out":   "quint.out",
	"power4.inOut": "quint.inOut",
	"quad":         "quad.out",
	"cubic":        "cubic.out",
	"quart":        "quart.out",
	"quint":        "quint.out",
	"sine":         "sine.out",
	"expo":         "expo.out",
	"circ":         "circ.out",
	"back":         "back.out",
	"bounce":       "bounce.out",
	"elastic":      "elastic.out",
}

// EaseByName looks up a named ease, accepting both canonical names
// ("cubic.out") and the power aliases ("power2.out"). It reports false
// for unknown names. Preset tables use this at load time; application
// code should use the typed variables instead.
func EaseByName(name string) (Ease, bool) {
	if canonical, ok := easeAliases[name]; ok {
		name = canonical
	}
	if _, ok := easeTable[name]; !ok {
		return nil, false
	}
	return namedEase(name), true
}

// easeOf resolves the easing function for a tween, defaulting to
// linear.
func easeOf(e Ease) ease.TweenFunc {
	if e == nil {
		return ease.Linear
	}
	if fn := e.tweenFunc(); fn != nil {
		return fn
	}
	return ease.Linear
}
