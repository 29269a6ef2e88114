package interfaces

import (
	"context"

	"github.com/secmon-lab/vantage/pkg/domain/model"
	"github.com/secmon-lab/vantage/pkg/domain/types"
)

// LegacyConfigHandler receives the keys changed in the legacy store
type LegacyConfigHandler func(ctx context.Context, patch model.ConfigRecord)

// LegacyConfigStore is the configuration store that predates the reducer.
// Both copies are kept in sync until the migration is complete.
type LegacyConfigStore interface {
	// Set writes one setting. The change is reported to subscribers.
	Set(ctx context.Context, key string, value any) error

	// UpdateTheme writes the theme. The change is reported to subscribers.
	UpdateTheme(ctx context.Context, theme types.Theme) error

	// Snapshot returns every setting currently held by the store
	Snapshot(ctx context.Context) (model.ConfigRecord, error)

	// Subscribe registers handler for change notifications until the
	// returned function is called or ctx is done
	Subscribe(ctx context.Context, handler LegacyConfigHandler) (func(), error)
}
