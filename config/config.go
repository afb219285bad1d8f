// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	// DefaultK is the k-mer length when neither a flag nor a settings file sets one
	DefaultK = 3

	// DefaultMinOverlap is the shortest suffix/prefix overlap reported by default
	DefaultMinOverlap = 3

	// EnvPrefix is the prefix of environment variables read into settings, ex: DNAKIT_KMER
	EnvPrefix = "dnakit"
)

// Output formats
const (
	Text = "text"
	JSON = "json"
)

// Config is the root-level settings struct and is a mix
// of settings available in a settings file, the environment,
// and those available from the command line
type Config struct {
	// Kmer is the k-mer length for kmer-distance, pattern-query, index-sorted and sequence-compare
	Kmer int `mapstructure:"kmer"`

	// MinOverlap is the shortest overlap find-overlap reports
	MinOverlap int `mapstructure:"min-overlap"`

	// Output is the result format, "text" or "json"
	Output string `mapstructure:"output"`

	// Out is an optional file to write results to instead of stdout
	Out string `mapstructure:"out"`

	// Verbose is whether to log input details and timing to stderr
	Verbose bool `mapstructure:"verbose"`

	// Settings is the path to the settings file that was read, if any
	Settings string `mapstructure:"settings"`
}

func init() {
	SetDefaults(viper.GetViper())
}

// SetDefaults registers the default for every setting on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("kmer", DefaultK)
	v.SetDefault("min-overlap", DefaultMinOverlap)
	v.SetDefault("output", Text)
	v.SetDefault("out", "")
	v.SetDefault("verbose", false)
	v.SetDefault("settings", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// New returns a new Config struct populated by the global Viper
// (defaults, the settings file and/or command line arguments)
func New() (*Config, error) {
	return From(viper.GetViper())
}

// From reads and validates a Config from v. If v has a "settings" path,
// that file is merged in first.
func From(v *viper.Viper) (*Config, error) {
	if settings := v.GetString("settings"); settings != "" {
		v.SetConfigFile(settings)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %v", settings, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %v", err)
	}

	c.Output = strings.ToLower(c.Output)
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	if c.Kmer < 1 {
		return fmt.Errorf("kmer must be at least 1, got %d", c.Kmer)
	}
	if c.MinOverlap < 1 {
		return fmt.Errorf("min-overlap must be at least 1, got %d", c.MinOverlap)
	}
	if c.Output != Text && c.Output != JSON {
		return fmt.Errorf("output must be %q or %q, got %q", Text, JSON, c.Output)
	}
	return nil
}
