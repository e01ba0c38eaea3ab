package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/materia/pkg/cli/config"
	httpctrl "github.com/secmon-lab/materia/pkg/controller/http"
	"github.com/secmon-lab/materia/pkg/service/dataset"
	"github.com/secmon-lab/materia/pkg/usecase"
	"github.com/secmon-lab/materia/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var addr string
	var templatePath string
	var siteCfg config.Site
	var sentryCfg config.Sentry

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("MATERIA_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "template",
			Usage:       "Path to the template workbook loaded at startup and served for download",
			Value:       filepath.Join("data", "Materiality_Template.xlsx"),
			Sources:     cli.EnvVars("MATERIA_TEMPLATE"),
			Destination: &templatePath,
		},
	}

	// Add shared config flags
	flags = append(flags, siteCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			closeSentry, err := sentryCfg.Configure(c.Root().Version)
			if err != nil {
				return goerr.Wrap(err, "failed to configure error reporting")
			}
			defer closeSentry()

			site, err := siteCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load site configuration")
			}

			// The default dataset is loaded once and shared read-only by
			// all requests. Load failures fall back to the built-in
			// sample data inside Default.
			ds := dataset.Default(ctx, templatePath)
			logger.Info("Loaded default dataset",
				"dataset_id", ds.ID,
				"rows", ds.Len(),
				"sub_topics", ds.SubTopics(),
				"template", templatePath,
			)

			uc := usecase.New(ds, usecase.WithTemplatePath(templatePath))

			httpHandler, err := httpctrl.New(uc, httpctrl.WithSite(site))
			if err != nil {
				return goerr.Wrap(err, "failed to create http server")
			}
			server := &http.Server{
				Addr:              addr,
				Handler:           httpHandler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logger.Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			// Wait for shutdown signal or server error
			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logger.Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logger.Info("Server shutdown completed")
				return nil
			}
		},
	}
}
