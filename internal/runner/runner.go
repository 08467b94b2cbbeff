package runner

import (
	"context"

	"go.uber.org/zap"

	"github.com/kylelaker/urlcheck/internal/config"
	"github.com/kylelaker/urlcheck/internal/notify"
	"github.com/kylelaker/urlcheck/internal/probe"
	"github.com/kylelaker/urlcheck/internal/report"
)

// Runner performs one pass over the configured downloads: every URL is
// checked in order, failures are collected, and a single notification
// goes out at the end when anything failed.
type Runner struct {
	Logger   *zap.Logger
	Checker  probe.Checker
	Notifier notify.Notifier
}

func NewRunner(logger *zap.Logger, checker probe.Checker, notifier notify.Notifier) *Runner {
	return &Runner{
		Logger:   logger,
		Checker:  checker,
		Notifier: notifier,
	}
}

// Run checks each download sequentially and returns the failure count.
// A notification failure is logged but does not affect the count.
func (r *Runner) Run(ctx context.Context, downloads []config.Download) int {
	rep := report.New()

	for _, d := range downloads {
		status, err := r.Checker.Check(ctx, d.URL)
		rep.Record(d.Name, d.URL, status, err)
		switch {
		case err != nil:
			r.Logger.Warn("check_failed",
				zap.String("name", d.Name),
				zap.String("url", d.URL),
				zap.Error(err),
			)
		case status != 200:
			r.Logger.Warn("check_failed",
				zap.String("name", d.Name),
				zap.String("url", d.URL),
				zap.Int("status", status),
			)
		default:
			r.Logger.Info("checked",
				zap.String("name", d.Name),
				zap.String("url", d.URL),
				zap.Int("status", status),
			)
		}
	}

	if rep.HasFailures() {
		subject, body := rep.Render()
		if err := r.Notifier.Send(ctx, subject, body); err != nil {
			r.Logger.Error("email_send_failed",
				zap.String("subject", subject),
				zap.Error(err),
			)
		} else {
			r.Logger.Info("email_sent",
				zap.String("subject", subject),
				zap.Int("failures", rep.Len()),
			)
		}
	}

	return rep.Len()
}
