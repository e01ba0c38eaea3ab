package config

import (
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/materia/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Sentry is the error reporting configuration. Reporting stays disabled
// unless a DSN is given.
type Sentry struct {
	dsn string
	env string
}

func (x *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN for error reporting (disabled when empty)",
			Category:    "Error reporting",
			Sources:     cli.EnvVars("MATERIA_SENTRY_DSN"),
			Destination: &x.dsn,
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment name",
			Category:    "Error reporting",
			Sources:     cli.EnvVars("MATERIA_SENTRY_ENV"),
			Destination: &x.env,
		},
	}
}

// Configure initializes the Sentry client when a DSN is set. The
// returned closer flushes buffered events on shutdown.
func (x *Sentry) Configure(release string) (func(), error) {
	if x.dsn == "" {
		logging.Default().Info("Sentry is not configured, error reporting disabled")
		return func() {}, nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         x.dsn,
		Environment: x.env,
		Release:     release,
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to initialize sentry")
	}

	logging.Default().Info("Sentry error reporting enabled", "env", x.env)

	return func() {
		sentry.Flush(2 * time.Second)
	}, nil
}

// LogValue renders the configuration in startup logs with the DSN
// masked.
func (x Sentry) LogValue() slog.Value {
	dsn := ""
	if x.dsn != "" {
		dsn = "(set)"
	}
	return slog.GroupValue(
		slog.String("dsn", dsn),
		slog.String("env", x.env),
	)
}
