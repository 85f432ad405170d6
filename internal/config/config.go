package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ConnectionConfig holds the client connection settings of a project file.
// The password is deliberately absent; it is read from the environment or a prompt.
type ConnectionConfig struct {
	Mode      string `yaml:"mode"`
	Database  string `yaml:"database"`
	Username  string `yaml:"username"`
	Container string `yaml:"container,omitempty"`
	Client    string `yaml:"client,omitempty"`
	Runtime   string `yaml:"runtime,omitempty"`
}

type ProjectConfig struct {
	InputDir   string           `yaml:"input_dir"`
	OutputDir  string           `yaml:"output_dir"`
	Order      string           `yaml:"order"`
	Connection ConnectionConfig `yaml:"connection"`
}

const ConfigFileName = "sqlstage.yaml"

// Load reads the project file at configPath.
func Load(configPath string) (*ProjectConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
