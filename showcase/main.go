// Command showcase drives a few bindings against a fixed-timestep loop
// and prints the animated values, demonstrating the lifecycle protocol
// without a UI host.
package main

import (
	"fmt"
	"time"

	"github.com/go-drift/motion/pkg/bind"
	"github.com/go-drift/motion/pkg/engine"
	"github.com/go-drift/motion/pkg/preset"
	"github.com/go-drift/motion/pkg/scope"
)

const frame = 100 * time.Millisecond

func main() {
	sc := scope.New()
	defer sc.Dispose()

	// The element reference starts empty, the way a component's element
	// is absent until layout. The binding waits for it.
	card := scope.NewRef[*engine.Object](nil)
	fade := bind.Animate(sc, bind.Deref(card), preset.Resolve(preset.FadeIn, preset.Override{
		Duration: 400 * time.Millisecond,
	}))

	fmt.Println("before mount: handle resolved =", fade.Handle() != nil)

	box := engine.NewObject(engine.Values{"opacity": 0, "y": 0})
	card.Set(box)
	sc.Mount()

	fmt.Println("after mount:  handle resolved =", fade.Handle() != nil)

	tl := bind.Timeline(sc, engine.TimelineVars{})
	tl.To(box, engine.TweenVars{To: engine.Values{"y": 40}, Duration: 300 * time.Millisecond}).
		To(box, engine.TweenVars{To: engine.Values{"y": 0}, Duration: 300 * time.Millisecond})

	for engine.HasActive() {
		engine.AdvanceBy(frame)
		fmt.Printf("opacity=%.2f y=%.1f\n", box.Property("opacity"), box.Property("y"))
	}

	// Swapping the element kills the old handle and starts a fresh one.
	card.Set(engine.NewObject(engine.Values{"opacity": 0}))
	fmt.Println("after swap:   active =", fade.IsActive())
}
