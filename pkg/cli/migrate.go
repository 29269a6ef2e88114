package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/fireconf"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vantage/pkg/cli/config"
	"github.com/secmon-lab/vantage/pkg/repository/firestore"
	"github.com/secmon-lab/vantage/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdMigrate() *cli.Command {
	var legacyCfg config.LegacyStore
	var dryRun bool

	flags := append(legacyCfg.FirestoreFlags(), &cli.BoolFlag{
		Name:        "dry-run",
		Usage:       "Print the index changes without applying them",
		Destination: &dryRun,
	})

	return &cli.Command{
		Name:    "migrate",
		Aliases: []string{"m"},
		Usage:   "Create the Firestore indexes used by the legacy config history",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if legacyCfg.ProjectID() == "" {
				return goerr.Wrap(config.ErrInvalidConfig, "firestore-project-id is required")
			}

			logger := logging.Default().With(
				"project_id", legacyCfg.ProjectID(),
				"database_id", legacyCfg.DatabaseID(),
				"collection_prefix", legacyCfg.CollectionPrefix(),
			)
			indexConfig := getIndexConfig(legacyCfg.CollectionPrefix())
			client, err := fireconf.New(ctx, legacyCfg.ProjectID(), databaseID(legacyCfg.DatabaseID()), indexConfig,
				fireconfOptions(legacyCfg.Credentials(), logger, dryRun)...)
			if err != nil {
				return goerr.Wrap(err, "failed to create fireconf client")
			}
			defer func() {
				if err := client.Close(); err != nil {
					logger.Error("failed to close fireconf client", "error", err.Error())
				}
			}()

			if dryRun {
				return previewIndexes(ctx, client, indexConfig, logger)
			}

			if err := client.Migrate(ctx); err != nil {
				return goerr.Wrap(err, "failed to migrate legacy history indexes")
			}
			logger.Info("Legacy history indexes are up to date")
			return nil
		},
	}
}

func databaseID(id string) string {
	if id == "" {
		return "(default)"
	}
	return id
}

func fireconfOptions(credentials string, logger *slog.Logger, dryRun bool) []fireconf.Option {
	opts := []fireconf.Option{
		fireconf.WithLogger(logger),
		fireconf.WithDryRun(dryRun),
	}
	if credentials != "" {
		opts = append(opts, fireconf.WithCredentialsFile(credentials))
	}
	return opts
}

// previewIndexes logs the difference between the deployed indexes and
// indexConfig without changing anything
func previewIndexes(ctx context.Context, client *fireconf.Client, indexConfig *fireconf.Config, logger *slog.Logger) error {
	names := make([]string, len(indexConfig.Collections))
	for i, c := range indexConfig.Collections {
		names[i] = c.Name
	}

	current, err := client.Import(ctx, names...)
	if err != nil {
		return goerr.Wrap(err, "failed to read deployed indexes")
	}
	diff, err := client.DiffConfigs(current)
	if err != nil {
		return goerr.Wrap(err, "failed to compare indexes")
	}

	logger.Info("Dry run", "collections", len(diff.Collections))
	for _, c := range diff.Collections {
		logger.Info("Planned index change",
			"collection", c.Name,
			"action", c.Action,
			"add", len(c.IndexesToAdd),
			"delete", len(c.IndexesToDelete))
	}
	return nil
}

// getIndexConfig returns the Firestore index configuration of the legacy
// config history
func getIndexConfig(prefix string) *fireconf.Config {
	return &fireconf.Config{
		Collections: []fireconf.Collection{
			{
				Name: firestore.CollectionName(prefix, firestore.LegacyHistoryCollection),
				Indexes: []fireconf.Index{
					// recent changes of a scope
					{
						Fields: []fireconf.IndexField{
							{Path: "scope", Order: fireconf.OrderAscending},
							{Path: "changed_at", Order: fireconf.OrderDescending},
						},
					},
					// history of one key within a scope
					{
						Fields: []fireconf.IndexField{
							{Path: "scope", Order: fireconf.OrderAscending},
							{Path: "key", Order: fireconf.OrderAscending},
							{Path: "changed_at", Order: fireconf.OrderDescending},
						},
					},
				},
			},
		},
	}
}
