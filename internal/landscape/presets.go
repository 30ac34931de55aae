package landscape

import (
	"sort"
	"strings"
)

// Preset is a named rule selection.
type Preset struct {
	Name     string
	Family   Family
	Rule     uint32
	Topology Topology
}

var presets = map[string]Preset{}

func register(p Preset) {
	presets[p.Name] = p
}

func lifeLike(name, rule string) Preset {
	r, err := ParseLifeLike(rule)
	if err != nil {
		panic(err)
	}
	return Preset{Name: name, Family: LifeLike, Rule: r, Topology: Torus}
}

func elementary(name string, rule uint32) Preset {
	return Preset{Name: name, Family: Elementary, Rule: rule, Topology: Clamped}
}

func init() {
	register(lifeLike("conway", "B3/S23"))
	register(lifeLike("highlife", "B36/S23"))
	register(lifeLike("seeds", "B2/S"))
	register(lifeLike("daynight", "B3678/S34678"))
	register(elementary("rule30", 30))
	register(elementary("rule90", 90))
	register(elementary("rule110", Rule110))
}

// LookupPreset finds a preset by case-insensitive name.
func LookupPreset(name string) (Preset, bool) {
	p, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// PresetNames lists the registered presets alphabetically.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Rule110Preset is elementary rule 110 between hard walls.
func Rule110Preset() Preset {
	return presets["rule110"]
}
