package preset

import (
	_ "embed"
	"fmt"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/motion/pkg/engine"
)

//go:embed presets.yaml
var defaultTable []byte

var (
	registryMu sync.RWMutex
	registry   map[Name]engine.TweenVars
)

func init() {
	table, err := parseTable(defaultTable)
	if err != nil {
		panic(fmt.Sprintf("preset: embedded table is invalid: %v", err))
	}
	registry = table
}

func lookup(name Name) (engine.TweenVars, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	vars, ok := registry[name]
	return vars, ok
}

// Load parses a preset table and replaces the registry atomically. It
// exists for dev tooling ([Reloader]); production code treats the
// embedded table as immutable.
func Load(data []byte) error {
	table, err := parseTable(data)
	if err != nil {
		return err
	}
	registryMu.Lock()
	registry = table
	registryMu.Unlock()
	return nil
}

// ResetTable restores the embedded table, undoing any Load.
func ResetTable() {
	table, err := parseTable(defaultTable)
	if err != nil {
		panic(fmt.Sprintf("preset: embedded table is invalid: %v", err))
	}
	registryMu.Lock()
	registry = table
	registryMu.Unlock()
}

// tableFile mirrors the YAML layout of a preset table.
type tableFile struct {
	Presets map[string]definition `yaml:"presets"`
}

// definition is one preset entry. Durations are seconds.
type definition struct {
	Duration  float64            `yaml:"duration"`
	Delay     float64            `yaml:"delay"`
	Ease      string             `yaml:"ease"`
	From      map[string]float64 `yaml:"from"`
	To        map[string]float64 `yaml:"to"`
	Keyframes []keyframeDef      `yaml:"keyframes"`
}

type keyframeDef struct {
	Duration float64            `yaml:"duration"`
	Values   map[string]float64 `yaml:"values"`
}

func parseTable(data []byte) (map[Name]engine.TweenVars, error) {
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse preset table: %w", err)
	}
	if len(file.Presets) == 0 {
		return nil, fmt.Errorf("preset table defines no presets")
	}

	table := make(map[Name]engine.TweenVars, len(file.Presets))
	for name, def := range file.Presets {
		vars, err := def.toVars()
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		table[Name(name)] = vars
	}
	return table, nil
}

func (d definition) toVars() (engine.TweenVars, error) {
	vars := engine.TweenVars{
		Duration: seconds(d.Duration),
		Delay:    seconds(d.Delay),
		From:     values(d.From),
		To:       values(d.To),
	}

	if d.Ease != "" {
		ease, ok := engine.EaseByName(d.Ease)
		if !ok {
			return engine.TweenVars{}, fmt.Errorf("unknown ease %q", d.Ease)
		}
		vars.Ease = ease
	}

	for _, kf := range d.Keyframes {
		vars.Keyframes = append(vars.Keyframes, engine.Keyframe{
			Values:   values(kf.Values),
			Duration: seconds(kf.Duration),
		})
	}

	if len(vars.Keyframes) == 0 && len(vars.From) == 0 && len(vars.To) == 0 {
		return engine.TweenVars{}, fmt.Errorf("defines no values")
	}
	return vars, nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func values(m map[string]float64) engine.Values {
	if len(m) == 0 {
		return nil
	}
	out := make(engine.Values, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
