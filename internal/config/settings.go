package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Settings holds program settings: flags, environment and the optional
// settings file, in that order of precedence.
type Settings struct {
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
	Presets  string `mapstructure:"presets"` // preset file path; empty means the default location
	Mouse    bool   `mapstructure:"mouse"`
	Preset   string `mapstructure:"preset"` // preset used by simulate
}

// SettingsEnvVar names a settings file that replaces the default lookup.
const SettingsEnvVar = "SPINBUTTON_CONFIG"

// NewViper returns a viper instance with defaults, env binding and the
// settings file search path configured. Flags are bound by the caller.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("log_level", "")
	v.SetDefault("log_file", "")
	v.SetDefault("presets", "")
	v.SetDefault("mouse", true)
	v.SetDefault("preset", "volume")

	v.SetConfigType("toml")
	if path := os.Getenv(SettingsEnvVar); path != "" {
		v.SetConfigFile(path)
	} else {
		if dir, err := GetConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.SetConfigName("settings")
	}

	v.SetEnvPrefix("SPINBUTTON")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	return v
}

// LoadSettings reads the settings file if there is one and decodes v.
func LoadSettings(v *viper.Viper) (Settings, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Settings{}, fmt.Errorf("read settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	return s, nil
}
