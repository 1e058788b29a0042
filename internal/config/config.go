package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Version    int            `toml:"version"`
	Sources    SourceSettings `toml:"sources"`
	Tool       ToolSettings   `toml:"tool"`
	UISettings UISettings     `toml:"ui"`
}

// SourceSettings controls which association files are ingested.
type SourceSettings struct {
	// Extra association files, read after the standard XDG locations.
	Extra []string `toml:"extra"`
	// IncludeSystem adds /usr/share/applications/mimeinfo.cache.
	IncludeSystem bool `toml:"include_system"`
}

// ToolSettings configures the external default-handler registry tool.
type ToolSettings struct {
	Name string `toml:"name"` // binary name, default "xdg-mime"
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowCommandLog bool `toml:"show_command_log"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	appDir := filepath.Join(configDir, "xdgmimer")
	os.MkdirAll(appDir, 0755)

	return &configService{
		filePath: filepath.Join(appDir, "config.toml"),
	}
}

// Load loads the configuration from the default path. A missing file
// yields the default config, not an error.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the default path.
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Tool.Name == "" {
		cfg.Tool.Name = "xdg-mime"
	}

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Sources: SourceSettings{
			IncludeSystem: true,
		},
		Tool: ToolSettings{
			Name: "xdg-mime",
		},
		UISettings: UISettings{
			ShowCommandLog: true,
		},
	}
}
