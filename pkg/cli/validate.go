package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/materia/pkg/service/dataset"
	"github.com/secmon-lab/materia/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var file string

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate a materiality workbook without serving it",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "Path to the workbook to validate",
				Required:    true,
				Sources:     cli.EnvVars("MATERIA_VALIDATE_FILE"),
				Destination: &file,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			ds, err := dataset.Load(ctx, file)
			if err != nil {
				if cols := dataset.MissingColumns(err); cols != nil {
					names := make([]string, len(cols))
					for i, col := range cols {
						names[i] = col.String()
					}
					logger.Error("Workbook is missing required columns",
						"path", file,
						"missing_columns", names,
					)
				}
				return goerr.Wrap(err, "workbook validation failed",
					goerr.V("path", file),
				)
			}

			logger.Info("Workbook is valid",
				"path", file,
				"rows", ds.Len(),
				"sub_topics", ds.SubTopics(),
			)
			return nil
		},
	}
}
