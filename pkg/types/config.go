package types

import (
	"errors"
	"fmt"
)

// Config holds the runtime options of the contacts shell.
type Config struct {
	Prompt         string        `json:"prompt" yaml:"prompt" mapstructure:"prompt"`
	Greeting       string        `json:"greeting" yaml:"greeting" mapstructure:"greeting"`
	LowercaseInput bool          `json:"lowercase_input" yaml:"lowercase_input" mapstructure:"lowercase_input"`
	LeapDay        LeapDayPolicy `json:"leap_day" yaml:"leap_day" mapstructure:"leap_day"`
	LogLevel       string        `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	LogFile        string        `json:"log_file,omitempty" yaml:"log_file,omitempty" mapstructure:"log_file"`
}

// Default option values.
const (
	DefaultPrompt   = "> "
	DefaultGreeting = "How can I help you?"
	DefaultLogLevel = "warn"
)

// Config validation errors.
var (
	ErrLeapDayUnknown  = errors.New("unknown leap day policy")
	ErrLogLevelUnknown = errors.New("unknown log level")
)

var knownLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// DefaultConfig returns a Config populated with the default values.
func DefaultConfig() Config {
	return Config{
		Prompt:         DefaultPrompt,
		Greeting:       DefaultGreeting,
		LowercaseInput: true,
		LeapDay:        DefaultLeapDayPolicy,
		LogLevel:       DefaultLogLevel,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package, wrapped with the offending value, on failure.
func (c Config) Validate() error {
	if !c.LeapDay.Valid() {
		return fmt.Errorf("%w: %q", ErrLeapDayUnknown, c.LeapDay)
	}
	if !knownLogLevels[c.LogLevel] {
		return fmt.Errorf("%w: %q", ErrLogLevelUnknown, c.LogLevel)
	}
	return nil
}
