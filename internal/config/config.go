// Package config loads generator settings from .bundlegen.yaml, BUNDLEGEN_*
// environment variables and built-in defaults.
package config

import (
	"time"

	"github.com/zhouyinchun6/bundleWrite-processor/internal/pipeline"
)

// FileName is the config file looked up in the root directory.
const FileName = ".bundlegen"

// EnvPrefix prefixes every environment override, e.g. BUNDLEGEN_TAG.
const EnvPrefix = "BUNDLEGEN"

// Config is the complete generator configuration.
type Config struct {
	// Tag is the struct tag key that marks injectable fields.
	Tag string `mapstructure:"tag" yaml:"tag"`
	// Packages are the go/packages patterns to process.
	Packages []string `mapstructure:"packages" yaml:"packages"`
	// Include and Exclude filter owner types by glob.
	Include []string `mapstructure:"include" yaml:"include"`
	Exclude []string `mapstructure:"exclude" yaml:"exclude"`
	// DryRun renders files without writing them.
	DryRun bool `mapstructure:"dry_run" yaml:"dry_run"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// Report is the path of the YAML plan report; empty disables it.
	Report string `mapstructure:"report" yaml:"report"`
	// DebugUnformatted dumps template output that go/format rejects.
	DebugUnformatted bool `mapstructure:"debug_unformatted" yaml:"debug_unformatted"`
	// Strict fails the pass when an injector cannot be rendered or written.
	Strict bool `mapstructure:"strict" yaml:"strict"`
	// Watch configures the watch command.
	Watch WatchConfig `mapstructure:"watch" yaml:"watch"`
}

// WatchConfig configures the watch command.
type WatchConfig struct {
	// Debounce is the quiet period after the last change before a pass runs.
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Tag:      "bundle",
		Packages: []string{"./..."},
		Include:  []string{},
		Exclude:  []string{},
		LogLevel: "info",
		Watch: WatchConfig{
			Debounce: 300 * time.Millisecond,
		},
	}
}

// Options converts the configuration into pipeline options rooted at dir.
func (c *Config) Options(dir string) pipeline.Options {
	return pipeline.Options{
		Patterns:         c.Packages,
		Dir:              dir,
		Tag:              c.Tag,
		Include:          c.Include,
		Exclude:          c.Exclude,
		Report:           c.Report,
		DebugUnformatted: c.DebugUnformatted,
		Strict:           c.Strict,
	}
}
