package config

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// Validate checks configuration correctness. It performs declarative
// validation only and MUST NOT mutate cfg. Every problem is collected so a
// single run reports the full list instead of the first hit.
func Validate(cfg *Config) error {
	var errs error

	if cfg.SMTPServer == "" {
		errs = multierr.Append(errs, errors.New("smtp_server is not present"))
	}
	if cfg.SMTPPort == 0 {
		errs = multierr.Append(errs, errors.New("smtp_port is not present"))
	}
	if cfg.EmailAddress == "" {
		errs = multierr.Append(errs, errors.New("email_address is not present"))
	}
	if cfg.EmailPassword == "" {
		errs = multierr.Append(errs, errors.New("email_password is not present"))
	}

	if cfg.Recipients == nil {
		errs = multierr.Append(errs, errors.New("recipients is not present"))
	} else if len(cfg.Recipients) < 1 {
		errs = multierr.Append(errs, errors.New("at least one recipient is required"))
	}

	if cfg.Downloads == nil {
		errs = multierr.Append(errs, errors.New("downloads is not present"))
	}
	for i, d := range cfg.Downloads {
		if d.Name == "" {
			errs = multierr.Append(errs, fmt.Errorf("download %d is missing a name", i))
		}
		if d.URL == "" {
			errs = multierr.Append(errs, fmt.Errorf("download %d is missing a url", i))
		}
	}

	return errs
}
