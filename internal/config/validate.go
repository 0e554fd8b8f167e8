package config

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
)

var (
	// ErrInvalidTag indicates a tag key that cannot appear in a struct tag.
	ErrInvalidTag = errors.New("invalid tag key")

	// ErrNoPackages indicates an empty package pattern list.
	ErrNoPackages = errors.New("no package patterns")

	// ErrInvalidLogLevel indicates an unknown log level.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidDebounce indicates a non-positive watch debounce.
	ErrInvalidDebounce = errors.New("invalid watch debounce")
)

// Validate checks the configuration and reports every problem at once.
func Validate(cfg *Config) error {
	var errs []error

	if !validTagKey(cfg.Tag) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidTag, cfg.Tag))
	}

	if len(cfg.Packages) == 0 {
		errs = append(errs, ErrNoPackages)
	}

	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		errs = append(errs, err)
	}

	if cfg.Watch.Debounce <= 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidDebounce, cfg.Watch.Debounce))
	}

	return errors.Join(errs...)
}

// ParseLevel maps a configured level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLogLevel, name)
	}
}

// validTagKey reports whether key can be looked up in a struct tag.
func validTagKey(key string) bool {
	if key == "" || strings.ContainsAny(key, ` :"`) {
		return false
	}

	_, ok := reflect.StructTag(key + `:"x"`).Lookup(key)

	return ok
}
