package saveset

import (
	"fmt"
	"sort"
	"strings"

	"save-sync/core/reconcile"
)

const (
	// PresetValheim selects the paired .fwl/.db layout.
	PresetValheim = "valheim"
	// PresetTerraria selects the single .wld layout.
	PresetTerraria = "terraria"
)

var presets = map[string]func(world string) reconcile.Profile{
	PresetValheim:  Valheim,
	PresetTerraria: Terraria,
}

// Valheim returns the paired profile for a Valheim world.
func Valheim(world string) reconcile.Profile {
	return reconcile.Profile{
		Name:   PresetValheim,
		Files:  []string{world + ".fwl", world + ".db"},
		Paired: true,
		IsLive: LiveMatcher(),
	}
}

// Terraria returns the single-file profile for a Terraria world.
func Terraria(world string) reconcile.Profile {
	return reconcile.Profile{
		Name:   PresetTerraria,
		Files:  []string{world + ".wld"},
		IsLive: LiveMatcher(),
	}
}

// LiveMatcher accepts only a candidate named exactly like the tracked file.
// Backups always carry a marker in their name, so an exact match never
// selects one.
func LiveMatcher() reconcile.LiveMatcher {
	return func(tracked, candidate string) bool {
		return candidate == tracked
	}
}

// Resolve returns the profile for a configured preset and world name.
func Resolve(preset, world string) (reconcile.Profile, error) {
	world = strings.TrimSpace(world)
	if world == "" {
		return reconcile.Profile{}, fmt.Errorf("%w: world name is empty", reconcile.ErrConfigInvalid)
	}

	build, ok := presets[strings.ToLower(strings.TrimSpace(preset))]
	if !ok {
		return reconcile.Profile{}, fmt.Errorf("%w: unknown game preset %q (want one of %s)",
			reconcile.ErrConfigInvalid, preset, strings.Join(Presets(), ", "))
	}
	return build(world), nil
}

// Presets lists the supported preset names.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
