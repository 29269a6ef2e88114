package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vantage/pkg/domain/interfaces"
	"github.com/secmon-lab/vantage/pkg/domain/types"
	"github.com/secmon-lab/vantage/pkg/repository/file"
	"github.com/secmon-lab/vantage/pkg/repository/firestore"
	"github.com/secmon-lab/vantage/pkg/repository/memory"
	"github.com/secmon-lab/vantage/pkg/utils/logging"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/option"
)

// Legacy store backends
const (
	BackendMemory    = "memory"
	BackendFirestore = "firestore"
	BackendFile      = "file"
)

// LegacyStore holds CLI flags for the legacy configuration store backend
type LegacyStore struct {
	backend          string
	scope            string
	projectID        string
	databaseID       string
	collectionPrefix string
	credentials      string
	filePath         string
}

// Flags returns CLI flags for legacy store configuration
func (l *LegacyStore) Flags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "legacy-backend",
			Usage:       "Legacy config store backend (memory, firestore or file)",
			Value:       BackendMemory,
			Category:    "Legacy store",
			Sources:     cli.EnvVars("VANTAGE_LEGACY_BACKEND"),
			Destination: &l.backend,
		},
		&cli.StringFlag{
			Name:        "legacy-scope",
			Usage:       "Document ID holding the legacy config (firestore backend)",
			Value:       string(types.DefaultScopeID),
			Category:    "Legacy store",
			Sources:     cli.EnvVars("VANTAGE_LEGACY_SCOPE"),
			Destination: &l.scope,
		},
		&cli.StringFlag{
			Name:        "legacy-file",
			Usage:       "TOML or YAML file holding the legacy config (file backend)",
			Category:    "Legacy store",
			Sources:     cli.EnvVars("VANTAGE_LEGACY_FILE"),
			Destination: &l.filePath,
		},
	}
	return append(flags, l.FirestoreFlags()...)
}

// FirestoreFlags returns the flags selecting the Firestore database and
// collections
func (l *LegacyStore) FirestoreFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore Project ID (required when using firestore backend)",
			Category:    "Legacy store",
			Sources:     cli.EnvVars("VANTAGE_FIRESTORE_PROJECT_ID"),
			Destination: &l.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore Database ID",
			Category:    "Legacy store",
			Sources:     cli.EnvVars("VANTAGE_FIRESTORE_DATABASE_ID"),
			Destination: &l.databaseID,
		},
		&cli.StringFlag{
			Name:        "firestore-credentials",
			Usage:       "Service account key file for Firestore (application default credentials when empty)",
			Category:    "Legacy store",
			Sources:     cli.EnvVars("VANTAGE_FIRESTORE_CREDENTIALS"),
			Destination: &l.credentials,
		},
		&cli.StringFlag{
			Name:        "firestore-collection-prefix",
			Usage:       "Prefix of the Firestore collections",
			Category:    "Legacy store",
			Sources:     cli.EnvVars("VANTAGE_FIRESTORE_COLLECTION_PREFIX"),
			Destination: &l.collectionPrefix,
		},
	}
}

// LogValue implements slog.LogValuer
func (l LegacyStore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", l.backend),
		slog.String("scope", l.scope),
		slog.String("project_id", l.projectID),
		slog.String("database_id", l.databaseID),
		slog.String("file", l.filePath),
	)
}

// Backend returns the configured backend type
func (l *LegacyStore) Backend() string {
	return l.backend
}

// ProjectID returns the Firestore project ID
func (l *LegacyStore) ProjectID() string {
	return l.projectID
}

// DatabaseID returns the Firestore database ID
func (l *LegacyStore) DatabaseID() string {
	return l.databaseID
}

// Credentials returns the Firestore service account key file, empty for
// application default credentials
func (l *LegacyStore) Credentials() string {
	return l.credentials
}

// CollectionPrefix returns the Firestore collection prefix
func (l *LegacyStore) CollectionPrefix() string {
	return l.collectionPrefix
}

// Configure initializes and returns a repository based on the configured backend.
// The caller is responsible for calling Close() on the returned repository.
func (l *LegacyStore) Configure(ctx context.Context) (interfaces.Repository, error) {
	switch l.backend {
	case BackendFirestore:
		if l.projectID == "" {
			return nil, goerr.Wrap(ErrInvalidConfig, "firestore-project-id is required when using firestore backend")
		}
		opts := []firestore.Option{
			firestore.WithScope(types.ScopeID(l.scope)),
			firestore.WithCollectionPrefix(l.collectionPrefix),
		}
		if l.credentials != "" {
			opts = append(opts, firestore.WithClientOptions(option.WithCredentialsFile(l.credentials)))
		}
		repo, err := firestore.New(ctx, l.projectID, l.databaseID, opts...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize firestore repository")
		}
		logging.Default().Info("Using Firestore legacy store",
			"project_id", l.projectID,
			"database_id", l.databaseID,
			"scope", l.scope,
		)
		return repo, nil

	case BackendFile:
		if l.filePath == "" {
			return nil, goerr.Wrap(ErrInvalidConfig, "legacy-file is required when using file backend")
		}
		repo, err := file.New(l.filePath)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize file repository")
		}
		logging.Default().Info("Using file legacy store", "path", l.filePath)
		return repo, nil

	case BackendMemory:
		logging.Default().Info("Using in-memory legacy store (development mode)")
		return memory.New(), nil

	default:
		return nil, goerr.Wrap(ErrInvalidConfig, "invalid legacy backend", goerr.V("backend", l.backend))
	}
}
