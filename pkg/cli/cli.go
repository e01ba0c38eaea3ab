package cli

import (
	"context"

	"github.com/secmon-lab/materia/pkg/cli/config"
	"github.com/secmon-lab/materia/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func Run(ctx context.Context, args []string, version string) error {
	var loggerCfg config.Logger
	var closer func()

	app := &cli.Command{
		Name:    "materia",
		Usage:   "Materia double materiality map service",
		Version: version,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) error {
			f, err := loggerCfg.Configure()
			if err != nil {
				return err
			}
			closer = f

			logging.Default().Info("Starting materia", "logger", loggerCfg)
			return nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if closer != nil {
				closer()
			}
			return nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdTemplate(),
			cmdValidate(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		logging.Default().Error("failed to run app", "error", err)
		return err
	}

	return nil
}
