// cmd/preflight/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/multierr"

	"github.com/kylelaker/urlcheck/internal/config"
)

func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	configPath := flag.String("config", "", "path to the configuration file (default $HOME/.config/url_checker/config.yml)")
	flag.Parse()

	path := *configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			fail(err.Error())
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		fail(err.Error())
	}
	ok("loaded " + path)

	if err := config.Validate(cfg); err != nil {
		for _, e := range multierr.Errors(err) {
			fmt.Fprintln(os.Stderr, "✖", e.Error())
		}
		os.Exit(1)
	}
	ok("required keys present")

	if len(cfg.Downloads) == 0 {
		warn("downloads list is empty; every run will be a no-op.")
	} else {
		ok(fmt.Sprintf("%d download(s) configured", len(cfg.Downloads)))
	}

	if cfg.Timeout <= 0 {
		warn("timeout not set; the 5 second default applies.")
	}
	if cfg.UserAgent == "" {
		warn("user_agent not set; a default derived from the local username applies.")
	}
	if cfg.LogDir == "" {
		warn("log_dir not set; logs go to the console only.")
	}

	// The SMTP password sits in plaintext, so the file's permissions are
	// the only thing protecting it.
	if info, err := os.Stat(path); err == nil && info.Mode().Perm()&0o077 != 0 {
		warn("config file is readable by other users; it contains email_password in plaintext.")
	}

	ok("preflight passed")
}
