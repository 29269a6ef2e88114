package firestore

import (
	"context"
	"reflect"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vantage/pkg/domain/interfaces"
	"github.com/secmon-lab/vantage/pkg/domain/model"
	"github.com/secmon-lab/vantage/pkg/domain/types"
	"github.com/secmon-lab/vantage/pkg/utils/async"
	"github.com/secmon-lab/vantage/pkg/utils/logging"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Collections written by the legacy config store
const (
	LegacyConfigCollection  = "legacy_config"
	LegacyHistoryCollection = "legacy_config_history"
)

// CollectionName returns the name of collection under prefix
func CollectionName(prefix, collection string) string {
	if prefix != "" {
		return prefix + "_" + collection
	}
	return collection
}

type legacyConfigStore struct {
	client           *firestore.Client
	scope            types.ScopeID
	collectionPrefix string
}

var _ interfaces.LegacyConfigStore = &legacyConfigStore{}

func newLegacyConfigStore(client *firestore.Client, scope types.ScopeID) *legacyConfigStore {
	return &legacyConfigStore{
		client: client,
		scope:  scope,
	}
}

// legacyHistoryDoc is the Firestore persistence model of one change
type legacyHistoryDoc struct {
	Scope     string    `firestore:"scope"`
	Key       string    `firestore:"key"`
	Value     any       `firestore:"value"`
	ChangedAt time.Time `firestore:"changed_at"`
}

func (s *legacyConfigStore) collectionName(name string) string {
	return CollectionName(s.collectionPrefix, name)
}

func (s *legacyConfigStore) doc() *firestore.DocumentRef {
	return s.client.Collection(s.collectionName(LegacyConfigCollection)).Doc(string(s.scope))
}

func (s *legacyConfigStore) Set(ctx context.Context, key string, value any) error {
	now := time.Now().UTC()

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		// FieldPath keeps dotted keys such as "user.timezone" as one field
		if err := tx.Set(s.doc(), map[string]any{key: value}, firestore.Merge(firestore.FieldPath{key})); err != nil {
			return err
		}
		history := s.client.Collection(s.collectionName(LegacyHistoryCollection)).NewDoc()
		return tx.Create(history, &legacyHistoryDoc{
			Scope:     string(s.scope),
			Key:       key,
			Value:     value,
			ChangedAt: now,
		})
	})
	if err != nil {
		return goerr.Wrap(err, "failed to set legacy config value",
			goerr.V("scope", s.scope),
			goerr.V("key", key))
	}
	return nil
}

func (s *legacyConfigStore) UpdateTheme(ctx context.Context, theme types.Theme) error {
	return s.Set(ctx, model.KeyTheme.Name(), string(theme))
}

func (s *legacyConfigStore) Snapshot(ctx context.Context) (model.ConfigRecord, error) {
	snap, err := s.doc().Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return model.ConfigRecord{}, nil
		}
		return nil, goerr.Wrap(err, "failed to get legacy config", goerr.V("scope", s.scope))
	}
	return model.ConfigRecord(snap.Data()), nil
}

// Subscribe listens to the scope document. The first snapshot is delivered
// whole, so writes landing between Subscribe and Snapshot are not lost; each
// later snapshot is compared with the previous one and only the changed keys
// are delivered.
func (s *legacyConfigStore) Subscribe(ctx context.Context, handler interfaces.LegacyConfigHandler) (func(), error) {
	cancel := async.DispatchUntil(ctx, "legacy config listener", func(ctx context.Context) error {
		iter := s.doc().Snapshots(ctx)
		defer iter.Stop()

		var prev model.ConfigRecord
		for {
			snap, err := iter.Next()
			if err != nil {
				if ctx.Err() != nil || status.Code(err) == codes.Canceled {
					return nil
				}
				return goerr.Wrap(err, "legacy config listener stopped", goerr.V("scope", s.scope))
			}

			current := model.ConfigRecord{}
			if snap.Exists() {
				current = snap.Data()
			}

			if patch := listenerPatch(prev, current); len(patch) > 0 {
				logging.From(ctx).Debug("legacy config changed", "scope", s.scope, "keys", len(patch))
				handler(ctx, patch)
			}
			prev = current
		}
	})

	return cancel, nil
}

// listenerPatch returns what a listener reports for current. prev is nil
// for the first snapshot, which is reported in full.
func listenerPatch(prev, current model.ConfigRecord) model.ConfigRecord {
	if prev == nil {
		return current.Clone()
	}
	return diffRecords(prev, current)
}

// diffRecords returns the keys of next whose value differs from prev. Keys
// removed from next are not reported; the legacy store never deletes.
func diffRecords(prev, next model.ConfigRecord) model.ConfigRecord {
	patch := model.ConfigRecord{}
	for k, v := range next {
		if old, ok := prev[k]; !ok || !reflect.DeepEqual(old, v) {
			patch[k] = v
		}
	}
	return patch
}
