package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/itsmostafa/mdtoc/internal/toc"
)

// Output formats
const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatJSON     = "json"
)

// Config holds the generator settings.
type Config struct {
	Input        string        `mapstructure:"input"`
	Output       string        `mapstructure:"output"`
	Format       string        `mapstructure:"format"`
	BaseLevel    int           `mapstructure:"base_level"`
	SkipKeywords []string      `mapstructure:"skip_keywords"`
	Debounce     time.Duration `mapstructure:"debounce"`
	Verbose      bool          `mapstructure:"verbose"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() *Config {
	return &Config{
		Input:        "README.md",
		Output:       "TOC.md",
		Format:       FormatMarkdown,
		BaseLevel:    1,
		SkipKeywords: slices.Clone(toc.DefaultSkipKeywords),
		Debounce:     200 * time.Millisecond,
	}
}

// Load reads configuration from defaults, an optional .mdtoc.yaml file,
// MDTOC_* environment variables and flags, in increasing precedence.
// Flags are matched to keys by name, with '-' in place of '_'.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("input", defaults.Input)
	v.SetDefault("output", defaults.Output)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("base_level", defaults.BaseLevel)
	v.SetDefault("skip_keywords", defaults.SkipKeywords)
	v.SetDefault("debounce", defaults.Debounce)
	v.SetDefault("verbose", defaults.Verbose)

	v.SetEnvPrefix("MDTOC")
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".mdtoc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if flags != nil {
		for _, key := range knownKeys {
			f := flags.Lookup(strings.ReplaceAll(key, "_", "-"))
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", f.Name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

var knownKeys = []string{"input", "output", "format", "base_level", "skip_keywords", "debounce", "verbose"}

// Validate checks the configuration for values the generator cannot use.
func (c *Config) Validate() error {
	if c.Input == "" {
		return errors.New("input path is required")
	}
	switch c.Format {
	case FormatMarkdown, FormatHTML, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q (valid: %s, %s, %s)", c.Format, FormatMarkdown, FormatHTML, FormatJSON)
	}
	if c.BaseLevel < 1 || c.BaseLevel > 6 {
		return fmt.Errorf("base level must be between 1 and 6, got %d", c.BaseLevel)
	}
	if c.Debounce <= 0 {
		return fmt.Errorf("debounce must be positive, got %s", c.Debounce)
	}
	if c.Output != "" && samePath(c.Input, c.Output) {
		return fmt.Errorf("output %s would overwrite the input", c.Output)
	}
	return nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// BuilderOptions returns the toc options matching this configuration.
func (c *Config) BuilderOptions() []toc.Option {
	return []toc.Option{
		toc.WithSkipKeywords(c.SkipKeywords...),
		toc.WithBaseLevel(c.BaseLevel),
	}
}
