package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DeviceConfig describes the stimulator attached to the rig.
type DeviceConfig struct {
	Type                string `yaml:"type"`                           // "rehastim2"
	Port                string `yaml:"port,omitempty"`                 // serial port, e.g. /dev/ttyUSB0
	StimulationInterval int    `yaml:"stimulation_interval,omitempty"` // ms between pulse trains
	LowFrequencyFactor  int    `yaml:"low_frequency_factor,omitempty"`
	ShowLog             bool   `yaml:"show_log,omitempty"`
}

// ChannelConfig describes one electrode channel and the stride window in
// which it should stimulate.
type ChannelConfig struct {
	Index     int     `yaml:"index"`
	Amplitude float64 `yaml:"amplitude"` // mA
	Side      string  `yaml:"side,omitempty"`
	From      float64 `yaml:"from,omitempty"` // stride fraction [0,1)
	To        float64 `yaml:"to,omitempty"`
}

// Profile is a named rig setup: one device plus its channel layout.
type Profile struct {
	Device   DeviceConfig    `yaml:"device"`
	Channels []ChannelConfig `yaml:"channels,omitempty"`
}

// ThemeConfig holds the console appearance settings.
type ThemeConfig struct {
	Seed string `yaml:"seed,omitempty"` // ANSI-256 color the theme is derived from
}

// Config represents the main configuration file (~/.lokictl.yaml)
type Config struct {
	CurrentProfile string              `yaml:"current_profile,omitempty"`
	Profiles       map[string]*Profile `yaml:"profiles,omitempty"`
	Theme          *ThemeConfig        `yaml:"theme,omitempty"`
}

// DefaultSeed is the theme seed color used when none is configured.
const DefaultSeed = "63"

// GetConfigPath returns the config file path (~/.lokictl.yaml)
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".lokictl.yaml"
	}
	return filepath.Join(home, ".lokictl.yaml")
}

// Load reads the configuration from ~/.lokictl.yaml
func Load() (*Config, error) {
	configPath := GetConfigPath()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Return default config if file doesn't exist
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Initialize maps if nil
	if cfg.Profiles == nil {
		cfg.Profiles = make(map[string]*Profile)
	}
	if cfg.Theme == nil {
		cfg.Theme = &ThemeConfig{Seed: DefaultSeed}
	}

	return &cfg, nil
}

// Save writes the configuration to ~/.lokictl.yaml
func Save(cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	configPath := GetConfigPath()
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the configuration used when no file exists: a single
// Rehastim2 profile stimulating both legs during late swing.
func DefaultConfig() *Config {
	return &Config{
		CurrentProfile: "default",
		Profiles: map[string]*Profile{
			"default": {
				Device: DeviceConfig{
					Type:                "rehastim2",
					Port:                "/dev/ttyUSB0",
					StimulationInterval: 30,
					LowFrequencyFactor:  2,
				},
				Channels: []ChannelConfig{
					{Index: 1, Amplitude: 25, Side: "left", From: 0.6, To: 0.9},
					{Index: 2, Amplitude: 25, Side: "right", From: 0.6, To: 0.9},
				},
			},
		},
		Theme: &ThemeConfig{Seed: DefaultSeed},
	}
}

// SeedColor returns the configured theme seed color.
func (c *Config) SeedColor() string {
	if c.Theme == nil || c.Theme.Seed == "" {
		return DefaultSeed
	}
	return c.Theme.Seed
}
