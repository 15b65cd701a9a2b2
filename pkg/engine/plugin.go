package engine

import (
	"errors"
	"fmt"
	"math"
	"sync"

	motionerrors "github.com/go-drift/motion/pkg/errors"
)

// Plugin intercepts property writes for the properties it owns. The
// first registered plugin whose Handles reports true receives the
// write; otherwise the value goes straight to Target.SetProperty.
type Plugin interface {
	// Name identifies the plugin in diagnostics.
	Name() string
	// Handles reports whether the plugin owns the property.
	Handles(property string) bool
	// Apply writes the property value to the target.
	Apply(target Target, property string, value float64)
}

var (
	pluginOnce  sync.Once
	pluginMu    sync.Mutex
	pluginSet   []Plugin
	stagedSet   []Plugin
	pluginsInit bool
)

var errPluginsSealed = errors.New("plugins already registered; RegisterPlugins must run before first engine use")

// RegisterPlugins replaces the default plugin set. It is a process-wide,
// one-time configuration and must run before the first engine is
// constructed; later calls are reported as a misuse error and ignored.
func RegisterPlugins(plugins ...Plugin) {
	pluginMu.Lock()
	defer pluginMu.Unlock()
	if pluginsInit {
		motionerrors.Report(&motionerrors.Error{
			Op:   "engine.RegisterPlugins",
			Kind: motionerrors.KindEngine,
			Err:  errPluginsSealed,
		})
		return
	}
	stagedSet = plugins
}

// ensurePlugins seals and returns the process-wide plugin set,
// installing the default set if the caller never registered one.
func ensurePlugins() []Plugin {
	pluginOnce.Do(func() {
		pluginMu.Lock()
		defer pluginMu.Unlock()
		if stagedSet != nil {
			pluginSet = stagedSet
		} else {
			pluginSet = DefaultPlugins()
		}
		stagedSet = nil
		pluginsInit = true
	})
	return pluginSet
}

// DefaultPlugins returns the plugin set installed when the caller
// registers nothing: opacity clamping only.
func DefaultPlugins() []Plugin {
	return []Plugin{OpacityClamp()}
}

// OpacityClamp returns a plugin that clamps the "opacity" property to
// [0, 1] on every write.
func OpacityClamp() Plugin {
	return opacityClamp{}
}

type opacityClamp struct{}

func (opacityClamp) Name() string { return "opacity-clamp" }

func (opacityClamp) Handles(property string) bool { return property == "opacity" }

func (opacityClamp) Apply(target Target, property string, value float64) {
	if value < 0 {
		value = 0
	} else if value > 1 {
		value = 1
	}
	target.SetProperty(property, value)
}

// Snap returns a plugin that rounds the listed properties to whole
// numbers on every write, for pixel-snapped motion.
func Snap(properties ...string) Plugin {
	owned := make(map[string]struct{}, len(properties))
	for _, p := range properties {
		owned[p] = struct{}{}
	}
	return snapPlugin{owned: owned}
}

type snapPlugin struct {
	owned map[string]struct{}
}

func (p snapPlugin) Name() string {
	return fmt.Sprintf("snap(%d)", len(p.owned))
}

func (p snapPlugin) Handles(property string) bool {
	_, ok := p.owned[property]
	return ok
}

func (p snapPlugin) Apply(target Target, property string, value float64) {
	target.SetProperty(property, math.Round(value))
}

// applyValue routes one property write through the plugin chain.
func applyValue(plugins []Plugin, target Target, property string, value float64) {
	for _, p := range plugins {
		if p.Handles(property) {
			p.Apply(target, property, value)
			return
		}
	}
	target.SetProperty(property, value)
}
