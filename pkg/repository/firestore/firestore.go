package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vantage/pkg/domain/interfaces"
	"github.com/secmon-lab/vantage/pkg/domain/types"
	"google.golang.org/api/option"
)

type Firestore struct {
	client       *firestore.Client
	legacyConfig *legacyConfigStore
}

var _ interfaces.Repository = &Firestore{}

type settings struct {
	collectionPrefix string
	scope            types.ScopeID
	clientOptions    []option.ClientOption
}

type Option func(*settings)

func WithCollectionPrefix(prefix string) Option {
	return func(s *settings) {
		s.collectionPrefix = prefix
	}
}

func WithScope(scope types.ScopeID) Option {
	return func(s *settings) {
		s.scope = scope
	}
}

// WithClientOptions passes options such as credentials to the Firestore client
func WithClientOptions(opts ...option.ClientOption) Option {
	return func(s *settings) {
		s.clientOptions = append(s.clientOptions, opts...)
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	cfg := settings{scope: types.DefaultScopeID}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.scope.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid legacy config scope")
	}

	if databaseID == "" {
		databaseID = firestore.DefaultDatabaseID
	}

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID, cfg.clientOptions...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID))
	}

	legacy := newLegacyConfigStore(client, cfg.scope)
	legacy.collectionPrefix = cfg.collectionPrefix

	return &Firestore{
		client:       client,
		legacyConfig: legacy,
	}, nil
}

func (f *Firestore) LegacyConfig() interfaces.LegacyConfigStore {
	return f.legacyConfig
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
