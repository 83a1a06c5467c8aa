package utils

import (
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

const configFileName = ".poium.ini"

// Config holds defaults read from the optional ~/.poium.ini file.
// Command-line flags always take precedence over these values.
type Config struct {
	RemoteAddress string
	Platform      string
}

// DefaultConfig returns the configuration used when no ini file exists
func DefaultConfig() *Config {
	return &Config{
		RemoteAddress: "localhost:4723",
		Platform:      "android",
	}
}

// ConfigPath returns the location of the user config file
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return configFileName
	}
	return filepath.Join(home, configFileName)
}

// LoadConfig reads the ini file at path, falling back to defaults when the
// file is missing or a key is absent
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil, err
	}

	section := file.Section("remote")
	if addr := section.Key("address").String(); addr != "" {
		cfg.RemoteAddress = addr
	}
	if platform := section.Key("platform").String(); platform != "" {
		cfg.Platform = platform
	}

	return cfg, nil
}
