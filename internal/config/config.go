// Package config loads lvxtal settings from an optional YAML file,
// LVXTAL_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvxtal/internal/logging"
	"github.com/katalvlaran/lvxtal/scattering"
)

// envPrefix maps "compute.max_index" to LVXTAL_COMPUTE_MAX_INDEX.
const envPrefix = "LVXTAL"

// FileName is the config file looked up in the working and home directories
// when no explicit path is given.
const FileName = ".lvxtal"

// homeDir is swapped in tests to keep the user's own config out.
var homeDir = os.UserHomeDir

// ErrInvalidConfig indicates a setting outside its accepted values.
var ErrInvalidConfig = errors.New("config: invalid setting")

// ComputeConfig holds the ComputeReflectors parameters.
type ComputeConfig struct {
	MaxIndex             int     `mapstructure:"max_index"`
	MinRelativeIntensity float64 `mapstructure:"min_relative_intensity"`
	Model                string  `mapstructure:"model"`
	RangePolicy          string  `mapstructure:"range_policy"`
}

// BatchConfig holds the batch runner settings.
type BatchConfig struct {
	Concurrency int  `mapstructure:"concurrency"`
	FailFast    bool `mapstructure:"fail_fast"`
}

// MetricsConfig holds the Prometheus endpoint; an empty Addr disables it.
type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

// Config is the full runtime configuration.
type Config struct {
	Log     logging.LogConfig `mapstructure:"log"`
	Compute ComputeConfig     `mapstructure:"compute"`
	Batch   BatchConfig       `mapstructure:"batch"`
	Metrics MetricsConfig     `mapstructure:"metrics"`

	// File is the config file actually read, empty when none was found.
	File string `mapstructure:"-"`
}

// flagKeys binds command-line flag names to config keys.
var flagKeys = map[string]string{
	"log-level":     "log.level",
	"log-format":    "log.format",
	"max-index":     "compute.max_index",
	"min-intensity": "compute.min_relative_intensity",
	"model":         "compute.model",
	"range-policy":  "compute.range_policy",
	"concurrency":   "batch.concurrency",
	"fail-fast":     "batch.fail_fast",
	"metrics-addr":  "metrics.addr",
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log.level", logging.LevelInfo)
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output_paths", []string{"stderr"})
	v.SetDefault("compute.max_index", 3)
	v.SetDefault("compute.min_relative_intensity", 0.01)
	v.SetDefault("compute.model", scattering.NameXRay)
	v.SetDefault("compute.range_policy", scattering.RangeStrict.String())
	v.SetDefault("batch.concurrency", runtime.NumCPU())
	v.SetDefault("batch.fail_fast", false)
	v.SetDefault("metrics.addr", "")

	return v
}

// Load builds the configuration.
// Stage 1: defaults, env prefix and the flags of fs that are present (fs may be nil).
// Stage 2: the config file. An explicit path must exist; otherwise
// .lvxtal.yaml is looked up in "." and $HOME and may be absent.
// Stage 3: unmarshal and Validate.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	// Stage 1: defaults, env, flags
	v := newViper()
	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind --%s: %w", name, err)
				}
			}
		}
	}

	// Stage 2: file
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %q: %w", path, err)
		}
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(".")
		if home, err := homeDir(); err == nil {
			v.AddConfigPath(home)
		}
		if err := v.ReadInConfig(); err != nil {
			var nf viper.ConfigFileNotFoundError
			if !errors.As(err, &nf) {
				return nil, fmt.Errorf("config: %w", err)
			}
		}
	}

	// Stage 3: decode
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every setting against the values its consumer accepts.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %v: %w", err, ErrInvalidConfig)
	}
	switch c.Log.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("config: log.format %q: %w", c.Log.Format, ErrInvalidConfig)
	}
	if c.Compute.MaxIndex <= 0 {
		return fmt.Errorf("config: compute.max_index %d must be positive: %w", c.Compute.MaxIndex, ErrInvalidConfig)
	}
	if m := c.Compute.MinRelativeIntensity; !(m >= 0 && m < 1) {
		return fmt.Errorf("config: compute.min_relative_intensity %g outside [0,1): %w", m, ErrInvalidConfig)
	}
	if _, err := c.Compute.ScatteringModel(); err != nil {
		return fmt.Errorf("config: compute: %v: %w", err, ErrInvalidConfig)
	}
	if c.Batch.Concurrency <= 0 {
		return fmt.Errorf("config: batch.concurrency %d must be positive: %w", c.Batch.Concurrency, ErrInvalidConfig)
	}

	return nil
}

// ScatteringModel resolves Model and RangePolicy.
func (c ComputeConfig) ScatteringModel() (scattering.Model, error) {
	policy, err := scattering.ParseRangePolicy(c.RangePolicy)
	if err != nil {
		return nil, err
	}

	return scattering.Lookup(c.Model, scattering.WithRangePolicy(policy))
}
