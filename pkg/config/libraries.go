// Package config manages the user-level matforge configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Library represents a configured pseudopotential library
type Library struct {
	Name       string `yaml:"name"`
	Path       string `yaml:"path"`
	Functional string `yaml:"functional,omitempty"`
}

// Config holds the pseudopotential library configurations
type Config struct {
	Libraries []Library `yaml:"libraries"`
	Selected  string    `yaml:"selected,omitempty"`
}

// LoadLibraries loads library configurations from the default location
func LoadLibraries() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	configPath := filepath.Join(homeDir, ".matforge", "libraries.yaml")
	return LoadLibrariesFromFile(configPath)
}

// LoadLibrariesFromFile loads library configurations from a specific file
func LoadLibrariesFromFile(path string) (*Config, error) {
	// If file doesn't exist, return empty config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveLibraries saves the library configuration
func SaveLibraries(config *Config) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".matforge")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, "libraries.yaml")
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Find returns the named library, or the selected one when name is empty.
func (c *Config) Find(name string) (*Library, bool) {
	if name == "" {
		name = c.Selected
	}
	if name == "" {
		return nil, false
	}
	for i := range c.Libraries {
		if c.Libraries[i].Name == name {
			return &c.Libraries[i], true
		}
	}
	return nil, false
}
