package config

import (
	"fmt"

	"github.com/lerenn/bumped/configs"
	"github.com/lerenn/bumped/pkg/fs"
	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// DefaultConfigFileName is the configuration file looked up in the working directory.
const DefaultConfigFileName = ".bumpedrc"

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	GetConfig() (Config, error)
	GetConfigWithFallback() (Config, error)
	SaveConfig(config Config) error
	Exists() (bool, error)
	Remove() error
	GetConfigPath() string
	SetConfigPath(configPath string)
	DefaultConfig() Config
}

type realManager struct {
	fs         fs.FS
	configPath string
}

// NewManager creates a new Manager instance with the specified config path.
func NewManager(fs fs.FS, configPath string) Manager {
	if configPath == "" {
		configPath = DefaultConfigFileName
	}
	return &realManager{
		fs:         fs,
		configPath: configPath,
	}
}

// GetConfig loads configuration from the embedded config path.
func (c *realManager) GetConfig() (Config, error) {
	exists, err := c.Exists()
	if err != nil {
		return Config{}, fmt.Errorf("failed to check config file: %w", err)
	}
	if !exists {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotInitialized, c.configPath)
	}

	data, err := c.fs.ReadFile(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// GetConfigWithFallback loads the configuration, falling back to an empty one when missing.
// A file that exists but is broken is still an error.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	exists, err := c.Exists()
	if err != nil {
		return Config{}, fmt.Errorf("failed to check config file: %w", err)
	}
	if !exists {
		return Config{}, nil
	}
	return c.GetConfig()
}

// SaveConfig saves configuration to the embedded config path.
func (c *realManager) SaveConfig(config Config) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if config.Files == nil {
		config.Files = []string{}
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if err := c.fs.WriteFileAtomic(c.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	return nil
}

// Exists reports whether the configuration file is present.
func (c *realManager) Exists() (bool, error) {
	return c.fs.Exists(c.configPath)
}

// Remove deletes the configuration file if present.
func (c *realManager) Remove() error {
	exists, err := c.Exists()
	if err != nil || !exists {
		return err
	}
	return c.fs.Remove(c.configPath)
}

// GetConfigPath returns the embedded config path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

// SetConfigPath updates the embedded config path.
func (c *realManager) SetConfigPath(configPath string) {
	c.configPath = configPath
}

// DefaultConfig returns the scaffold used by init: no files and the default plugins.
func (c *realManager) DefaultConfig() Config {
	var config Config
	if err := yaml.Unmarshal(configs.DefaultConfigYAML, &config); err != nil {
		// The embedded scaffold is covered by tests.
		panic(fmt.Sprintf("invalid embedded default configuration: %v", err))
	}
	return config
}
