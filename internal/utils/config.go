package utils

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Output formats understood by the client.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
)

// ConfigEnvVar names the environment variable that overrides the config path.
const ConfigEnvVar = "LISTLAB_CONFIG"

// Config struct holds application configuration
type Config struct {
	LogFile          string `yaml:"log_file"`
	Debug            bool   `yaml:"debug"`
	OutputFormat     string `yaml:"output_format"`
	VerifyInvariants bool   `yaml:"verify_invariants"`
}

var (
	configInstance *Config   // Singleton configInstance
	configOnce     sync.Once // Ensures thread-safe initialization
)

// LoadConfig initializes the singleton configInstance
func LoadConfig(filename string) (*Config, error) {
	var err error
	configOnce.Do(func() {
		configInstance, err = loadConfigFromFile(filename)
	})
	if err != nil {
		return nil, err
	}
	return configInstance, nil
}

// DefaultConfigPath resolves the config file location: $LISTLAB_CONFIG first,
// then ~/.listlab/listlab.yaml.
func DefaultConfigPath() (string, error) {
	if path := os.Getenv(ConfigEnvVar); path != "" {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".listlab", "listlab.yaml"), nil
}

// loadConfigFromFile reads and parses the config file
func loadConfigFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return getDefaultConfig(), nil
		}
		return nil, err
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	applyDefaults(config)
	return config, nil
}

// GetConfig returns the singleton config configInstance
func GetConfig() (*Config, error) {
	if configInstance == nil {
		return nil, errors.New("config not initialized, call LoadConfig() first")
	}
	return configInstance, nil
}

// getDefaultConfig returns default config values
func getDefaultConfig() *Config {
	return &Config{
		OutputFormat:     FormatText,
		VerifyInvariants: false,
	}
}

// applyDefaults ensures missing values get defaults
func applyDefaults(config *Config) {
	switch config.OutputFormat {
	case FormatText, FormatJSON, FormatMsgpack:
	default:
		config.OutputFormat = FormatText
	}
}
