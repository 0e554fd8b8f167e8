package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Loader reads configuration for one root directory.
type Loader struct {
	rootDir string
	file    string
}

// NewLoader creates a loader that looks for .bundlegen.yaml in rootDir.
// A non-empty file overrides the lookup with an explicit path.
func NewLoader(rootDir, file string) *Loader {
	return &Loader{rootDir: rootDir, file: file}
}

// Load resolves the configuration with the following priority (highest to lowest):
// 1. Environment variables (BUNDLEGEN_*)
// 2. Config file
// 3. Default values
// A missing config file is not an error unless it was named explicitly.
func (l *Loader) Load() (*Config, error) {
	v := viper.New()

	if l.file != "" {
		v.SetConfigFile(l.file)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(l.rootDir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("tag", d.Tag)
	v.SetDefault("packages", d.Packages)
	v.SetDefault("include", d.Include)
	v.SetDefault("exclude", d.Exclude)
	v.SetDefault("dry_run", d.DryRun)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("report", d.Report)
	v.SetDefault("debug_unformatted", d.DebugUnformatted)
	v.SetDefault("strict", d.Strict)
	v.SetDefault("watch.debounce", d.Watch.Debounce)
}
