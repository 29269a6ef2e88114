package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vantage/pkg/cli/config"
	httpctrl "github.com/secmon-lab/vantage/pkg/controller/http"
	"github.com/secmon-lab/vantage/pkg/usecase"
	"github.com/secmon-lab/vantage/pkg/utils/logging"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

func cmdServe() *cli.Command {
	var addr string
	var enableMetrics bool
	var enableLegacyAPI bool
	var bootstrapCfg config.Bootstrap
	var legacyCfg config.LegacyStore

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("VANTAGE_ADDR"),
			Destination: &addr,
		},
		&cli.BoolFlag{
			Name:        "metrics",
			Usage:       "Expose Prometheus metrics on /metrics",
			Value:       true,
			Sources:     cli.EnvVars("VANTAGE_METRICS"),
			Destination: &enableMetrics,
		},
		&cli.BoolFlag{
			Name:        "legacy-api",
			Usage:       "Expose direct writes to the legacy store on /api/legacy/config",
			Value:       true,
			Sources:     cli.EnvVars("VANTAGE_LEGACY_API"),
			Destination: &enableLegacyAPI,
		},
	}

	// Add shared config flags
	flags = append(flags, bootstrapCfg.Flags()...)
	flags = append(flags, legacyCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			defaults, err := bootstrapCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load bootstrap configuration")
			}

			repo, err := legacyCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize legacy store")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			uc := usecase.New(repo, usecase.WithConfigDefaults(defaults))

			httpOpts := []httpctrl.Options{
				httpctrl.WithConfigUseCase(uc.Config),
				httpctrl.WithFieldUseCase(uc.Field),
				httpctrl.WithMetrics(enableMetrics),
			}
			if enableLegacyAPI {
				httpOpts = append(httpOpts, httpctrl.WithLegacyStore(repo.LegacyConfig()))
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(httpOpts...),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			g, ctx := errgroup.WithContext(ctx)

			g.Go(func() error {
				if err := uc.Config.Start(ctx); err != nil {
					return goerr.Wrap(err, "config state stopped")
				}
				return nil
			})

			g.Go(func() error {
				logging.Default().Info("Starting HTTP server", "addr", addr, "metrics", enableMetrics, "legacy_backend", legacyCfg.Backend())
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return goerr.Wrap(err, "failed to start server")
				}
				return nil
			})

			g.Go(func() error {
				<-ctx.Done()
				logging.Default().Info("Shutting down HTTP server")

				// Create shutdown context with timeout
				shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}
				return nil
			})

			if err := g.Wait(); err != nil {
				return err
			}

			logging.Default().Info("Server shutdown completed")
			return nil
		},
	}
}
