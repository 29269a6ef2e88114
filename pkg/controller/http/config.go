package http

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vantage/pkg/domain/interfaces"
	"github.com/secmon-lab/vantage/pkg/domain/model"
	"github.com/secmon-lab/vantage/pkg/domain/types"
	"github.com/secmon-lab/vantage/pkg/usecase"
	"github.com/secmon-lab/vantage/pkg/utils/errutil"
)

// ConfigUseCase is the configuration state container served over HTTP
type ConfigUseCase interface {
	Current() model.ConfigRecord
	SetTheme(ctx context.Context, theme types.Theme) (model.ConfigRecord, error)
	SetValue(ctx context.Context, key string, value any) (model.ConfigRecord, error)
}

type configResponse struct {
	Config model.ConfigRecord `json:"config"`
}

func getConfigHandler(uc ConfigUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, configResponse{Config: uc.Current()})
	}
}

func putThemeHandler(uc ConfigUseCase) http.HandlerFunc {
	type request struct {
		Theme types.Theme `json:"theme"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := decodeJSON(w, r, &req); err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}

		next, err := uc.SetTheme(r.Context(), req.Theme)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, configErrorStatus(err))
			return
		}
		writeJSON(w, r, http.StatusOK, configResponse{Config: next})
	}
}

func putValueHandler(uc ConfigUseCase) http.HandlerFunc {
	type request struct {
		Value any `json:"value"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")

		var req request
		if err := decodeJSON(w, r, &req); err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}

		next, err := uc.SetValue(r.Context(), key, req.Value)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, configErrorStatus(err))
			return
		}
		writeJSON(w, r, http.StatusOK, configResponse{Config: next})
	}
}

// putLegacyConfigHandler writes straight into the legacy store. The changes
// reach the config state only through the store's own notifications.
func putLegacyConfigHandler(store interfaces.LegacyConfigStore) http.HandlerFunc {
	type request struct {
		Values map[string]any `json:"values"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req request
		if err := decodeJSON(w, r, &req); err != nil {
			errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
			return
		}
		if len(req.Values) == 0 {
			errutil.HandleHTTP(ctx, w, goerr.New("values must not be empty"), http.StatusBadRequest)
			return
		}

		keys := make([]string, 0, len(req.Values))
		for key := range req.Values {
			keys = append(keys, key)
		}
		slices.Sort(keys)

		for _, key := range keys {
			value := req.Values[key]
			if key == model.KeyTheme.Name() {
				s, _ := value.(string)
				theme := types.Theme(s)
				if err := theme.Validate(); err != nil {
					errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
					return
				}
				if err := store.UpdateTheme(ctx, theme); err != nil {
					errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to update legacy theme"), http.StatusInternalServerError)
					return
				}
				continue
			}

			if err := store.Set(ctx, key, value); err != nil {
				errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to set legacy config", goerr.V("key", key)), http.StatusInternalServerError)
				return
			}
		}

		snapshot, err := store.Snapshot(ctx)
		if err != nil {
			errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to read legacy config"), http.StatusInternalServerError)
			return
		}
		writeJSON(w, r, http.StatusAccepted, configResponse{Config: snapshot})
	}
}

func configErrorStatus(err error) int {
	switch {
	case errors.Is(err, usecase.ErrInvalidConfigValue):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
