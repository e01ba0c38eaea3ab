package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/materia/pkg/service/dataset"
	"github.com/secmon-lab/materia/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdTemplate() *cli.Command {
	var output string

	return &cli.Command{
		Name:    "template",
		Aliases: []string{"t"},
		Usage:   "Write the upload template workbook to a file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Output path of the template workbook",
				Value:       "Materiality_Template.xlsx",
				Sources:     cli.EnvVars("MATERIA_TEMPLATE_OUTPUT"),
				Destination: &output,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := dataset.SaveTemplate(ctx, output); err != nil {
				return goerr.Wrap(err, "failed to write template workbook")
			}

			logging.Default().Info("Wrote template workbook", "path", output)
			return nil
		},
	}
}
