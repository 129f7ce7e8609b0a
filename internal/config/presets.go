package config

import "sort"

// Presets are named ready-to-run configurations, grouped by mode.
var Presets = map[string]map[string]*Config{
	"process": {
		"expansion": {
			Mode: "process", Steps: DefaultSteps, AllowedError: DefaultAllowedError,
			Process: ProcessConfig{
				Kind: "isothermal", Monatomic: true, Moles: 1, Volume: 0.01, Temperature: 300,
				Target: Target{Variable: "volume", Value: 0.02},
			},
		},
		"heating": {
			Mode: "process", Steps: DefaultSteps, AllowedError: DefaultAllowedError,
			Process: ProcessConfig{
				Kind: "isochoric", Diatomic: true, Moles: 1, Volume: 0.01, Temperature: 300,
				Target: Target{Variable: "temperature", Value: 600},
			},
		},
		"compression": {
			Mode: "process", Steps: DefaultSteps, AllowedError: DefaultAllowedError,
			Process: ProcessConfig{
				Kind: "adiabatic", Gas: "Air", Moles: 1, Volume: 0.02, Temperature: 300,
				Target: Target{Variable: "volume", Value: 0.01},
			},
		},
	},
	"cycle": {
		"carnot": {
			Mode: "cycle", Steps: DefaultSteps, AllowedError: DefaultAllowedError,
			Cycle: CycleConfig{
				Kind: "carnot", CompressionRatio: 5, THot: 500, TCold: 300,
				Moles: 1, Volume: 0.01, Monatomic: true,
			},
		},
		"otto": {
			Mode: "cycle", Steps: DefaultSteps, AllowedError: DefaultAllowedError,
			Cycle: CycleConfig{
				Kind: "otto", CompressionRatio: 8, THot: 1500, TCold: 300,
				Moles: 1, Volume: 0.001, Diatomic: true,
			},
		},
		"diesel-ish": {
			Mode: "cycle", Steps: DefaultSteps, AllowedError: DefaultAllowedError,
			Cycle: CycleConfig{
				Kind: "otto", CompressionRatio: 18, THot: 2000, TCold: 320,
				Moles: 1, Volume: 0.002, Gas: "Air",
			},
		},
	},
}

// GetPreset returns the named preset for a mode, or nil.
func GetPreset(mode, name string) *Config {
	group, ok := Presets[mode]
	if !ok {
		return nil
	}
	return group[name]
}

// ListPresets returns the preset names for a mode, or nil for an unknown
// mode.
func ListPresets(mode string) []string {
	group, ok := Presets[mode]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
