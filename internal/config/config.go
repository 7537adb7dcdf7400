// Package config provides configuration loading and management.
package config

// Default values.
const (
	// DefaultAggregatorMatch keeps substring duplicate detection.
	DefaultAggregatorMatch = "substring"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// ScaffoldConfig contains defaults for scaffold runs.
type ScaffoldConfig struct {
	// NoClobber refuses to overwrite existing output files.
	// Env: AEGIS_SCAFFOLD_NOCLOBBER, Default: false
	NoClobber bool `mapstructure:"noClobber" yaml:"noClobber"`
}

// AggregatorsConfig contains aggregator update settings.
type AggregatorsConfig struct {
	// Match is the duplicate detection mode: "substring" or "line".
	// Env: AEGIS_AGGREGATORS_MATCH, Default: "substring"
	Match string `mapstructure:"match" yaml:"match"`
}

// Config represents the aegis CLI configuration, loaded from
// ~/.aegis/config.yaml.
type Config struct {
	// ArchetypesDir overrides archetype directory discovery.
	// Env: AEGIS_ARCHETYPES_DIR
	ArchetypesDir string `mapstructure:"archetypesDir" yaml:"archetypesDir,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log"`

	// Scaffold contains defaults for scaffold runs.
	Scaffold ScaffoldConfig `mapstructure:"scaffold" yaml:"scaffold"`

	// Aggregators contains aggregator update settings.
	Aggregators AggregatorsConfig `mapstructure:"aggregators" yaml:"aggregators"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `aegis config init` to generate the initial config file.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		Log:         LogConfig{Timestamps: &timestamps},
		Aggregators: AggregatorsConfig{Match: DefaultAggregatorMatch},
	}
}

// WithDefaults fills unset values with their defaults.
func (c *Config) WithDefaults() *Config {
	if c.Aggregators.Match == "" {
		c.Aggregators.Match = DefaultAggregatorMatch
	}
	return c
}
