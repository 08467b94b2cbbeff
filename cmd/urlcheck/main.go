package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/kylelaker/urlcheck/internal/config"
	"github.com/kylelaker/urlcheck/internal/logging"
	"github.com/kylelaker/urlcheck/internal/notify"
	"github.com/kylelaker/urlcheck/internal/probe"
	"github.com/kylelaker/urlcheck/internal/runner"
)

// maxExitCode clamps the failure-count exit code below the range where
// shells assign their own meanings (126+).
const maxExitCode = 125

func main() {
	configPath := flag.String("config", "", "path to the configuration file (default $HOME/.config/url_checker/config.yml)")
	flag.Parse()

	path := *configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			log.Fatalf("locate config: %v", err)
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatalf("set up logging: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		for _, e := range multierr.Errors(err) {
			logger.Error("invalid_config", zap.Error(e))
		}
		_ = logger.Sync()
		os.Exit(1)
	}
	config.ApplyDefaults(cfg, logger)

	checker := probe.NewHeadChecker(time.Duration(cfg.Timeout)*time.Second, cfg.UserAgent, logger)
	mailer := notify.NewMailer(cfg.SMTPServer, cfg.SMTPPort, cfg.EmailAddress, cfg.EmailPassword, cfg.Recipients)
	run := runner.NewRunner(logger, checker, mailer)

	failures := run.Run(context.Background(), cfg.Downloads)
	logger.Info("run_complete",
		zap.Int("downloads", len(cfg.Downloads)),
		zap.Int("failures", failures),
	)
	_ = logger.Sync()

	if failures > maxExitCode {
		failures = maxExitCode
	}
	os.Exit(failures)
}
