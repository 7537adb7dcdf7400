package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variables read by aegis.
const (
	envPrefix = "AEGIS"

	// EnvConfig overrides the config file path.
	EnvConfig = "AEGIS_CONFIG"

	// EnvArchetypesDir overrides archetype directory discovery.
	EnvArchetypesDir = "AEGIS_ARCHETYPES_DIR"
)

// envKeys maps config keys to the environment variables that set them.
var envKeys = map[string]string{
	"archetypesDir":      EnvArchetypesDir,
	"log.timestamps":     "AEGIS_LOG_TIMESTAMPS",
	"scaffold.noClobber": "AEGIS_SCAFFOLD_NOCLOBBER",
	"aggregators.match":  "AEGIS_AGGREGATORS_MATCH",
}

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal only sees env values for keys viper already knows about.
	for key, env := range envKeys {
		_ = v.BindEnv(key, env)
	}

	v.SetDefault("aggregators.match", DefaultAggregatorMatch)

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// Environment variables take precedence over file values. A missing file is
// not an error.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file %s: %w", expandedPath, err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg.WithDefaults(), nil
}

// InFile reports whether key was set by the config file itself.
func (l *Loader) InFile(key string) bool {
	return l.v.InConfig(key)
}

// Source reports where the loaded value of key came from.
func (l *Loader) Source(key string) ConfigSource {
	if env, ok := envKeys[key]; ok {
		if _, set := os.LookupEnv(env); set {
			return SourceEnv
		}
	}
	if l.InFile(key) {
		return SourceConfig
	}
	return SourceDefault
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return false, err
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
