// Package config provides YAML-based session configuration loading
// for the carom coach: target moyennes, projection horizon, and the
// history seed default.
package config

// Config contains the tunable parameters of a coaching session.
type Config struct {
	Targets    TargetsConfig    `yaml:"targets"`
	Projection ProjectionConfig `yaml:"projection"`
	History    HistoryConfig    `yaml:"history"`
}

// TargetsConfig defines the evaluated target tiers: the base moyenne
// and the spacing between the three tiers.
type TargetsConfig struct {
	Base float64 `yaml:"base"`
	Step float64 `yaml:"step"`
}

// ProjectionConfig defines how far ahead the needed-score table looks.
type ProjectionConfig struct {
	Horizon int `yaml:"horizon"`
}

// HistoryConfig defines how an underfilled moyenne history is seeded.
type HistoryConfig struct {
	SeedMoyenne float64 `yaml:"seed_moyenne"`
}

// Validate clamps out-of-range values back to their defaults so a
// hand-edited config can never produce a degenerate session.
func (c *Config) Validate() {
	def := DefaultConfig()
	if c.Targets.Base <= 0 {
		c.Targets.Base = def.Targets.Base
	}
	if c.Targets.Step <= 0 {
		c.Targets.Step = def.Targets.Step
	}
	if c.Projection.Horizon < 1 {
		c.Projection.Horizon = def.Projection.Horizon
	}
	if c.History.SeedMoyenne <= 0 {
		c.History.SeedMoyenne = def.History.SeedMoyenne
	}
}
