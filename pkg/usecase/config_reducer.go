package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vantage/pkg/domain/interfaces"
	"github.com/secmon-lab/vantage/pkg/domain/model"
	"github.com/secmon-lab/vantage/pkg/utils/logging"
	"github.com/secmon-lab/vantage/pkg/utils/metrics"
)

// Legacy store operations, used as task names and metric labels
const (
	legacyOpSet         = "set"
	legacyOpUpdateTheme = "update_theme"
)

// ConfigReducer computes configuration transitions and mirrors user
// initiated changes to the legacy store.
type ConfigReducer struct {
	legacy    interfaces.LegacyConfigStore
	scheduler interfaces.Scheduler
}

// NewConfigReducer creates a ConfigReducer. A nil legacy store disables
// bridging.
func NewConfigReducer(legacy interfaces.LegacyConfigStore, scheduler interfaces.Scheduler) *ConfigReducer {
	return &ConfigReducer{
		legacy:    legacy,
		scheduler: scheduler,
	}
}

// Reduce returns the record obtained by applying action to state. state is
// not modified.
//
// When bridge is true, theme and value changes are written to the legacy
// store by a task deferred to the scheduler, so the write never happens
// before Reduce returns. Patches are never written back: they originate
// from the legacy store itself.
//
// Reduce panics on any action outside the ConfigAction set.
func (r *ConfigReducer) Reduce(ctx context.Context, state model.ConfigRecord, action model.ConfigAction, bridge bool) model.ConfigRecord {
	switch a := action.(type) {
	case model.SetConfigValueAction:
		next := state.Clone()
		next[a.Key] = a.Value
		if bridge {
			r.bridge(ctx, legacyOpSet, a.Key, func(ctx context.Context) error {
				return r.legacy.Set(ctx, a.Key, a.Value)
			})
		}
		return next

	case model.SetThemeAction:
		next := state.Clone()
		next[model.KeyTheme.Name()] = a.Theme
		if bridge {
			r.bridge(ctx, legacyOpUpdateTheme, model.KeyTheme.Name(), func(ctx context.Context) error {
				return r.legacy.UpdateTheme(ctx, a.Theme)
			})
		}
		return next

	case model.PatchAction:
		return state.Merge(a.Values)

	default:
		panic(goerr.New("unrecognized config action",
			goerr.V("action", fmt.Sprintf("%#v", action)),
			goerr.V("type", fmt.Sprintf("%T", action)),
		))
	}
}

func (r *ConfigReducer) bridge(ctx context.Context, op, key string, write func(ctx context.Context) error) {
	if r.legacy == nil || r.scheduler == nil {
		return
	}

	transitionID := uuid.New()
	r.scheduler.Defer(ctx, "legacy_config."+op, func(ctx context.Context) error {
		if err := write(ctx); err != nil {
			metrics.LegacyWrites.WithLabelValues(op, metrics.ResultFailure).Inc()
			return goerr.Wrap(err, "failed to write legacy config",
				goerr.V("operation", op),
				goerr.V("key", key),
				goerr.V("transition_id", transitionID.String()),
			)
		}

		metrics.LegacyWrites.WithLabelValues(op, metrics.ResultSuccess).Inc()
		logging.From(ctx).Debug("legacy config written",
			"operation", op,
			"key", key,
			"transition_id", transitionID.String(),
		)
		return nil
	})
}
