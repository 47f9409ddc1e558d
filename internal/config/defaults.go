package config

import (
	_ "embed"
)

//go:embed defaults/carom.yaml
var defaultCaromYAML []byte

// DefaultConfig returns the built-in session configuration.
func DefaultConfig() Config {
	return Config{
		Targets: TargetsConfig{
			Base: 0.90,
			Step: 0.10,
		},
		Projection: ProjectionConfig{
			Horizon: 10,
		},
		History: HistoryConfig{
			SeedMoyenne: 1.00,
		},
	}
}
