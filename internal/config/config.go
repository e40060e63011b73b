package config

import (
	"fmt"
	"strings"
	"time"
)

// Poll interval bounds.
const (
	MinPollInterval = time.Millisecond
	MaxPollInterval = 10 * time.Second
)

// Log levels accepted in [log].level.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config holds all editor settings.
type Config struct {
	Editor EditorConfig `toml:"editor"`
	Log    LogConfig    `toml:"log"`
}

// EditorConfig holds settings for the editor loop.
type EditorConfig struct {
	// PollInterval bounds how long the loop waits for input before it
	// renders again.
	PollInterval Duration `toml:"poll_interval"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			PollInterval: Duration{100 * time.Millisecond},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks every setting and returns the first *ValidationError found.
func (c *Config) Validate() error {
	if d := c.Editor.PollInterval.Duration; d < MinPollInterval || d > MaxPollInterval {
		return &ValidationError{
			Path:    "editor.poll_interval",
			Message: fmt.Sprintf("must be between %s and %s", MinPollInterval, MaxPollInterval),
			Value:   d,
			Code:    ErrCodeOutOfRange,
		}
	}

	if !validLevel(c.Log.Level) {
		return &ValidationError{
			Path:    "log.level",
			Message: "must be one of " + strings.Join(LogLevels, ", "),
			Value:   c.Log.Level,
			Code:    ErrCodeInvalidEnum,
		}
	}

	return nil
}

func validLevel(level string) bool {
	for _, l := range LogLevels {
		if strings.EqualFold(level, l) {
			return true
		}
	}
	return false
}

// Duration is a time.Duration written in TOML as a string such as "250ms".
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}
