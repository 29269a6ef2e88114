package usecase

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vantage/pkg/domain/interfaces"
	"github.com/secmon-lab/vantage/pkg/domain/model"
	"github.com/secmon-lab/vantage/pkg/domain/types"
	"github.com/secmon-lab/vantage/pkg/utils/eventloop"
	"github.com/secmon-lab/vantage/pkg/utils/logging"
	"github.com/secmon-lab/vantage/pkg/utils/metrics"
)

// ConfigObserver is called on the event loop after each committed transition
type ConfigObserver func(ctx context.Context, prev, next model.ConfigRecord, action model.ConfigAction)

// ConfigUseCase owns the authoritative ConfigRecord. Every transition runs
// as a task on the event loop, one at a time.
type ConfigUseCase struct {
	legacy   interfaces.LegacyConfigStore
	loop     *eventloop.Loop
	reducer  *ConfigReducer
	defaults model.ConfigRecord

	mu        sync.RWMutex
	state     model.ConfigRecord
	observers map[uuid.UUID]ConfigObserver
}

// NewConfigUseCase creates a ConfigUseCase. defaults are applied on top of
// model.DefaultConfigRecord and below the legacy snapshot loaded by Start.
func NewConfigUseCase(legacy interfaces.LegacyConfigStore, loop *eventloop.Loop, defaults model.ConfigRecord) *ConfigUseCase {
	base := model.DefaultConfigRecord().Merge(defaults)
	return &ConfigUseCase{
		legacy:    legacy,
		loop:      loop,
		reducer:   NewConfigReducer(legacy, loop),
		defaults:  base,
		state:     base.Clone(),
		observers: make(map[uuid.UUID]ConfigObserver),
	}
}

// Start loads the legacy snapshot, follows legacy change notifications and
// runs the event loop until ctx is done.
func (uc *ConfigUseCase) Start(ctx context.Context) error {
	if uc.legacy != nil {
		// Subscribe before reading the snapshot; notifications queue on the
		// loop and merge on top of it.
		unsubscribe, err := uc.legacy.Subscribe(ctx, uc.onLegacyChange)
		if err != nil {
			return goerr.Wrap(err, "failed to subscribe legacy config")
		}
		defer unsubscribe()

		snapshot, err := uc.legacy.Snapshot(ctx)
		if err != nil {
			return goerr.Wrap(err, "failed to load legacy config snapshot")
		}

		uc.mu.Lock()
		uc.state = uc.defaults.Merge(typedRecord(ctx, snapshot))
		uc.mu.Unlock()

		logging.From(ctx).Info("config bootstrapped", "keys", len(snapshot))
	}

	return uc.loop.Run(ctx)
}

func (uc *ConfigUseCase) onLegacyChange(ctx context.Context, patch model.ConfigRecord) {
	patch = typedRecord(ctx, patch)
	if len(patch) == 0 {
		return
	}
	metrics.LegacyPatches.Inc()
	uc.DispatchAsync(ctx, model.Patch(patch))
}

// typedRecord converts values read from the legacy store, which keeps
// themes as strings and lists as []any, to the types of their well-known
// keys. Values that cannot be converted are dropped.
func typedRecord(ctx context.Context, rec model.ConfigRecord) model.ConfigRecord {
	typed := make(model.ConfigRecord, len(rec))
	for key, value := range rec {
		action, err := BuildSetValueAction(key, value)
		if err != nil {
			logging.From(ctx).Warn("dropping legacy config value of unexpected type",
				"key", key,
				"type", fmt.Sprintf("%T", value))
			continue
		}
		typed[key] = action.Value
	}
	return typed
}

type transitionResult struct {
	record model.ConfigRecord
	err    error
}

// Dispatch queues action and waits until it is committed. Theme and value
// changes are mirrored to the legacy store after the commit.
func (uc *ConfigUseCase) Dispatch(ctx context.Context, action model.ConfigAction) (model.ConfigRecord, error) {
	done := make(chan transitionResult, 1)

	uc.loop.Post(taskName(action), func(ctx context.Context) error {
		defer func() {
			if r := recover(); r != nil {
				done <- transitionResult{err: goerr.Wrap(ErrTransitionAborted, "config transition panicked",
					goerr.V("panic", fmt.Sprintf("%v", r)))}
				panic(r)
			}
		}()

		done <- transitionResult{record: uc.commit(ctx, action)}
		return nil
	})

	select {
	case res := <-done:
		return res.record, res.err
	case <-ctx.Done():
		return nil, goerr.Wrap(ctx.Err(), "config transition not committed",
			goerr.V("action", taskName(action)))
	}
}

// DispatchAsync queues action without waiting for it. It is safe to call
// from inside a loop task.
func (uc *ConfigUseCase) DispatchAsync(ctx context.Context, action model.ConfigAction) {
	uc.loop.Post(taskName(action), func(ctx context.Context) error {
		uc.commit(ctx, action)
		return nil
	})
}

// SetTheme validates theme and dispatches a theme change
func (uc *ConfigUseCase) SetTheme(ctx context.Context, theme types.Theme) (model.ConfigRecord, error) {
	if err := theme.Validate(); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfigValue, err.Error(), goerr.V(ConfigKeyKey, model.KeyTheme.Name()))
	}
	return uc.Dispatch(ctx, model.SetTheme(theme))
}

// SetValue dispatches a value change for a decoded value such as a JSON
// body. Values of well-known keys are checked against the key's type.
func (uc *ConfigUseCase) SetValue(ctx context.Context, key string, value any) (model.ConfigRecord, error) {
	action, err := BuildSetValueAction(key, value)
	if err != nil {
		return nil, err
	}
	return uc.Dispatch(ctx, action)
}

// Current returns a copy of the committed record
func (uc *ConfigUseCase) Current() model.ConfigRecord {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.state.Clone()
}

// Subscribe registers an observer until the returned function is called
func (uc *ConfigUseCase) Subscribe(fn ConfigObserver) func() {
	id := uuid.New()

	uc.mu.Lock()
	uc.observers[id] = fn
	uc.mu.Unlock()

	return func() {
		uc.mu.Lock()
		delete(uc.observers, id)
		uc.mu.Unlock()
	}
}

// commit runs on the loop goroutine, the only writer of uc.state
func (uc *ConfigUseCase) commit(ctx context.Context, action model.ConfigAction) model.ConfigRecord {
	uc.mu.RLock()
	old := uc.state
	uc.mu.RUnlock()

	next := uc.reducer.Reduce(ctx, old, action, true)

	uc.mu.Lock()
	uc.state = next
	observers := make([]ConfigObserver, 0, len(uc.observers))
	for fn := range maps.Values(uc.observers) {
		observers = append(observers, fn)
	}
	uc.mu.Unlock()

	metrics.ConfigTransitions.WithLabelValues(string(action.Type())).Inc()
	logging.From(ctx).Debug("config transition committed", "action", action.Type())

	for _, fn := range observers {
		fn(ctx, old, next, action)
	}

	return next.Clone()
}

func taskName(action model.ConfigAction) string {
	if action == nil {
		return "config.<nil>"
	}
	return "config." + string(action.Type())
}

// BuildSetValueAction converts a decoded value into a SetConfigValueAction.
// Well-known keys only accept values of their declared type; other keys
// accept any value.
func BuildSetValueAction(key string, value any) (model.SetConfigValueAction, error) {
	invalid := func() error {
		return goerr.Wrap(ErrInvalidConfigValue, "value does not match key type",
			goerr.V(ConfigKeyKey, key),
			goerr.V("value", fmt.Sprintf("%v", value)))
	}

	if key == "" {
		return model.SetConfigValueAction{}, goerr.Wrap(ErrInvalidConfigValue, "config key is empty")
	}

	switch key {
	case model.KeyTheme.Name():
		theme, ok := themeFromValue(value)
		if !ok {
			return model.SetConfigValueAction{}, invalid()
		}
		return model.SetConfigValue(model.KeyTheme, theme), nil

	case model.KeyLanguage.Name(), model.KeyTimezone.Name(), model.KeyDSN.Name():
		s, ok := value.(string)
		if !ok {
			return model.SetConfigValueAction{}, invalid()
		}
		return model.SetConfigValue(model.ConfigKey[string](key), s), nil

	case model.KeyClock24Hours.Name():
		b, ok := value.(bool)
		if !ok {
			return model.SetConfigValueAction{}, invalid()
		}
		return model.SetConfigValue(model.KeyClock24Hours, b), nil

	case model.KeyFeatures.Name():
		features, ok := stringSlice(value)
		if !ok {
			return model.SetConfigValueAction{}, invalid()
		}
		return model.SetConfigValue(model.KeyFeatures, features), nil

	default:
		return model.SetConfigValue(model.ConfigKey[any](key), value), nil
	}
}

func themeFromValue(v any) (types.Theme, bool) {
	var theme types.Theme
	switch t := v.(type) {
	case types.Theme:
		theme = t
	case string:
		theme = types.Theme(t)
	default:
		return "", false
	}
	return theme, theme.Validate() == nil
}

func stringSlice(v any) ([]string, bool) {
	switch s := v.(type) {
	case []string:
		return s, true
	case []any:
		out := make([]string, len(s))
		for i, item := range s {
			str, ok := item.(string)
			if !ok {
				return nil, false
			}
			out[i] = str
		}
		return out, true
	default:
		return nil, false
	}
}
