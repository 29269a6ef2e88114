package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vantage/pkg/cli/config"
	"github.com/secmon-lab/vantage/pkg/usecase"
	"github.com/secmon-lab/vantage/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// ErrAllowlistGap is returned when a field allowlist names an unknown field
var ErrAllowlistGap = goerr.New("field allowlist names undefined fields")

func cmdValidate() *cli.Command {
	var bootstrapCfg config.Bootstrap

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate the bootstrap file and the field allowlists",
		Flags:   bootstrapCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			// Step 1: Load and validate the bootstrap file
			defaults, err := bootstrapCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "configuration validation failed")
			}
			logger.Info("Bootstrap configuration validation passed", "default_keys", len(defaults))

			// Step 2: Check that every allowlisted field has a definition
			var gaps int
			for _, report := range usecase.NewFieldUseCase().Validate(ctx) {
				if len(report.Missing) > 0 {
					logger.Error("Field set has undefined fields",
						"set", report.Set,
						"total", report.Total,
						"missing", report.Missing,
					)
					gaps += len(report.Missing)
					continue
				}
				logger.Info("Field set validated", "set", report.Set, "total", report.Total)
			}

			if gaps > 0 {
				return goerr.Wrap(ErrAllowlistGap, "field validation failed", goerr.V("missing", gaps))
			}
			return nil
		},
	}
}
