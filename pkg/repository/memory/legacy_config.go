package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/secmon-lab/vantage/pkg/domain/interfaces"
	"github.com/secmon-lab/vantage/pkg/domain/model"
	"github.com/secmon-lab/vantage/pkg/domain/types"
)

type legacyConfigStore struct {
	mu          sync.RWMutex
	values      model.ConfigRecord
	subscribers map[uuid.UUID]interfaces.LegacyConfigHandler
}

var _ interfaces.LegacyConfigStore = &legacyConfigStore{}

func newLegacyConfigStore(initial model.ConfigRecord) *legacyConfigStore {
	return &legacyConfigStore{
		values:      initial.Clone(),
		subscribers: make(map[uuid.UUID]interfaces.LegacyConfigHandler),
	}
}

func (s *legacyConfigStore) Set(ctx context.Context, key string, value any) error {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()

	s.notify(ctx, model.ConfigRecord{key: value})
	return nil
}

func (s *legacyConfigStore) UpdateTheme(ctx context.Context, theme types.Theme) error {
	return s.Set(ctx, model.KeyTheme.Name(), string(theme))
}

func (s *legacyConfigStore) Snapshot(ctx context.Context) (model.ConfigRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values.Clone(), nil
}

func (s *legacyConfigStore) Subscribe(ctx context.Context, handler interfaces.LegacyConfigHandler) (func(), error) {
	id := uuid.New()

	s.mu.Lock()
	s.subscribers[id] = handler
	s.mu.Unlock()

	remove := func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
	stop := context.AfterFunc(ctx, remove)

	return func() {
		stop()
		remove()
	}, nil
}

// notify calls subscribers synchronously on the writer's goroutine, the way
// the legacy store emits its change events
func (s *legacyConfigStore) notify(ctx context.Context, patch model.ConfigRecord) {
	s.mu.RLock()
	handlers := make([]interfaces.LegacyConfigHandler, 0, len(s.subscribers))
	for _, h := range s.subscribers {
		handlers = append(handlers, h)
	}
	s.mu.RUnlock()

	for _, h := range handlers {
		h(ctx, patch.Clone())
	}
}
