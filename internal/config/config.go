package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"

	"github.com/andrader/pmpts/internal/prompt"
)

// fileName is the settings file kept in the user's home directory.
const fileName = ".pmpts.json"

// Config is the persisted settings: the prompt root and the single-slot
// record of the last mutating action. Callers load it, run an operation,
// store the returned action (or clear it after undo), and save.
type Config struct {
	Root       string         `json:"root,omitempty"`
	LastAction *prompt.Action `json:"last_action,omitempty"`
}

// Path returns the settings file location.
func Path() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, fileName), nil
}

// Load reads the settings file. A missing, unreadable, or corrupt file
// yields an empty config rather than an error; settings are best-effort.
func Load() *Config {
	cfg := &Config{}
	path, err := Path()
	if err != nil {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return &Config{}
	}
	return cfg
}

// Save writes the settings file.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// RootDir returns the configured prompt root, falling back to the VS
// Code user prompts directory when unset.
func (c *Config) RootDir() string {
	if c.Root != "" {
		return c.Root
	}
	return DefaultRoot()
}

// DefaultRoot is the VS Code user prompts directory for this platform
// (AppData/Roaming on Windows, ~/.config on Linux, Application Support
// on macOS).
func DefaultRoot() string {
	base, err := os.UserConfigDir()
	if err != nil {
		home, _ := homedir.Dir()
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "Code", "User", "prompts")
}
