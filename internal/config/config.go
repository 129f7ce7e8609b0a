package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSteps            = 10000
	DefaultAllowedError     = 1e-4
	DefaultCompressionRatio = 5.0
	DefaultTHot             = 500.0
	DefaultTCold            = 300.0
	DefaultMoles            = 1.0
	DefaultVolume           = 0.01
)

// Config is a run configuration for the termo CLI. Zero-valued state
// fields are treated as omitted and back-filled from the ideal gas law.
type Config struct {
	Mode         string        `yaml:"mode"` // "process" or "cycle"
	Steps        int           `yaml:"steps"`
	AllowedError float64       `yaml:"allowed_error"`
	Process      ProcessConfig `yaml:"process"`
	Cycle        CycleConfig   `yaml:"cycle"`
}

type ProcessConfig struct {
	Kind        string  `yaml:"kind"` // isothermal, isobaric, isochoric, adiabatic
	Gas         string  `yaml:"gas"`
	Monatomic   bool    `yaml:"monatomic"`
	Diatomic    bool    `yaml:"diatomic"`
	Moles       float64 `yaml:"moles"`
	Pressure    float64 `yaml:"pressure"`
	Volume      float64 `yaml:"volume"`
	Temperature float64 `yaml:"temperature"`
	Target      Target  `yaml:"target"`
}

// Target selects the swept variable and its final value.
type Target struct {
	Variable string  `yaml:"variable"` // "pressure", "volume" or "temperature"
	Value    float64 `yaml:"value"`
}

type CycleConfig struct {
	Kind             string  `yaml:"kind"` // carnot, otto, ...
	CompressionRatio float64 `yaml:"compression_ratio"`
	THot             float64 `yaml:"t_hot"`
	TCold            float64 `yaml:"t_cold"`
	Moles            float64 `yaml:"moles"`
	Pressure         float64 `yaml:"pressure"`
	Volume           float64 `yaml:"volume"`
	Monatomic        bool    `yaml:"monatomic"`
	Diatomic         bool    `yaml:"diatomic"`
	Gas              string  `yaml:"gas"`
}

func DefaultConfig() *Config {
	return &Config{
		Mode:         "process",
		Steps:        DefaultSteps,
		AllowedError: DefaultAllowedError,
		Process: ProcessConfig{
			Kind:        "isothermal",
			Monatomic:   true,
			Moles:       DefaultMoles,
			Volume:      DefaultVolume,
			Temperature: DefaultTCold,
			Target:      Target{Variable: "volume", Value: 2 * DefaultVolume},
		},
		Cycle: CycleConfig{
			Kind:             "carnot",
			CompressionRatio: DefaultCompressionRatio,
			THot:             DefaultTHot,
			TCold:            DefaultTCold,
			Moles:            DefaultMoles,
			Volume:           DefaultVolume,
			Monatomic:        true,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
