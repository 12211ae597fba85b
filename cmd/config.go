// File: cmd/config.go
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the settings read from the config file and environment.
type Config struct {
	Interpreter string `mapstructure:"interpreter" json:"interpreter" yaml:"interpreter"`
	Script      string `mapstructure:"script" json:"script,omitempty" yaml:"script,omitempty"`
	Format      string `mapstructure:"format" json:"format" yaml:"format"`
	Debug       bool   `mapstructure:"debug" json:"debug" yaml:"debug"`

	// File is the config file that was read, empty when none was.
	File string `mapstructure:"-" json:"file,omitempty" yaml:"file,omitempty"`
}

const envPrefix = "TUNNELBLICKCTL"

// defaultConfigPath returns $HOME/.config/tunnelblickctl/config.yaml.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "tunnelblickctl", "config.yaml")
}

// loadConfig reads path, or the default location when path is empty.
// A missing default file yields the built-in defaults; a missing
// explicitly named file is an error.
func loadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("interpreter", "osascript")
	v.SetDefault("script", "")
	v.SetDefault("format", "table")
	v.SetDefault("debug", false)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}

	used := ""
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if filepath.Ext(path) == "" {
				v.SetConfigType("yaml")
			}
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			used = path
		} else if explicit {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.File = used

	if config.Interpreter == "" {
		return nil, fmt.Errorf("config: interpreter must not be empty")
	}
	return &config, nil
}
