package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/contacts/internal/paths"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"
	envPrefix      = "CONTACTS"

	cfgKeyPrompt         = "prompt"
	cfgKeyGreeting       = "greeting"
	cfgKeyLowercaseInput = "lowercase_input"
	cfgKeyLeapDay        = "leap_day"
	cfgKeyLogLevel       = "log_level"
	cfgKeyLogFile        = "log_file"
)

// loadConfig reads config.yaml from the resolved config directory using
// Viper, applying defaults and CONTACTS_* environment overrides. A missing
// config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	defaults := types.DefaultConfig()

	v := viper.New()
	v.SetDefault(cfgKeyPrompt, defaults.Prompt)
	v.SetDefault(cfgKeyGreeting, defaults.Greeting)
	v.SetDefault(cfgKeyLowercaseInput, defaults.LowercaseInput)
	v.SetDefault(cfgKeyLeapDay, string(defaults.LeapDay))
	v.SetDefault(cfgKeyLogLevel, defaults.LogLevel)
	v.SetDefault(cfgKeyLogFile, defaults.LogFile)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// decodeConfig converts the loaded settings into a validated types.Config.
func decodeConfig(v *viper.Viper) (types.Config, error) {
	cfg := types.Config{
		Prompt:         v.GetString(cfgKeyPrompt),
		Greeting:       v.GetString(cfgKeyGreeting),
		LowercaseInput: v.GetBool(cfgKeyLowercaseInput),
		LeapDay:        types.LeapDayPolicy(v.GetString(cfgKeyLeapDay)),
		LogLevel:       v.GetString(cfgKeyLogLevel),
		LogFile:        v.GetString(cfgKeyLogFile),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

// resolveConfig resolves the config directory from the flag and loads the
// configuration found there.
func resolveConfig(flags *rootFlags) (types.Config, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve config dir: %w", err)
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return types.Config{}, err
	}
	cfg, err := decodeConfig(v)
	if err != nil {
		return types.Config{}, fmt.Errorf("config %s: %w", configDir, err)
	}
	return cfg, nil
}
