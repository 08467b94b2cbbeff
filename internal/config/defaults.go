package config

import (
	"fmt"
	"os"
	"os/user"

	"go.uber.org/zap"
)

const defaultTimeoutSeconds = 5

// ApplyDefaults fills in optional settings that were absent from the file.
// It may mutate cfg and must be called only after Validate.
func ApplyDefaults(cfg *Config, log *zap.Logger) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeoutSeconds
		log.Info("timeout_defaulted", zap.Int("seconds", cfg.Timeout))
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = fmt.Sprintf("%s's URL availability checker", localUsername())
	}
}

// localUsername names the invoking OS user, falling back to $USER and then
// a fixed tag when the lookup is unavailable.
func localUsername() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "urlcheck"
}
