package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Download identifies one URL to check, labelled with a human-readable name
// that shows up in notifications. Name/URL uniqueness is not enforced.
type Download struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Config is the user's configuration file. The first six fields are
// required; the rest are optional and filled by ApplyDefaults.
type Config struct {
	SMTPServer    string     `yaml:"smtp_server"`
	SMTPPort      int        `yaml:"smtp_port"`
	EmailAddress  string     `yaml:"email_address"`
	EmailPassword string     `yaml:"email_password"`
	Recipients    []string   `yaml:"recipients"`
	Downloads     []Download `yaml:"downloads"`

	Timeout   int    `yaml:"timeout"` // seconds per HEAD request
	UserAgent string `yaml:"user_agent"`
	LogDir    string `yaml:"log_dir"` // empty means console logging only
}

// DefaultPath returns the conventional per-user config location,
// $HOME/.config/url_checker/config.yml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "url_checker", "config.yml"), nil
}

// Load reads and parses the configuration file at path. An empty file
// parses to a zero Config, which Validate then rejects key by key.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}
