package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vantage/pkg/domain/fields"
	"github.com/secmon-lab/vantage/pkg/domain/model"
	"github.com/secmon-lab/vantage/pkg/domain/types"
	"github.com/secmon-lab/vantage/pkg/usecase"
	"github.com/secmon-lab/vantage/pkg/utils/errutil"
)

// FieldUseCase is the field catalog served over HTTP
type FieldUseCase interface {
	Lookup(ctx context.Context, key string) (model.FieldDefinition, error)
	List(ctx context.Context, set usecase.FieldSet) ([]usecase.FieldEntry, error)
	Conditions(ctx context.Context, dataset types.Dataset, query string, eventTypes []types.EventType, discover bool) (string, error)
}

type fieldResponse struct {
	Key        string                `json:"key"`
	Definition model.FieldDefinition `json:"definition"`
	Alertable  bool                  `json:"alertable"`
}

func getFieldHandler(uc FieldUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")

		def, err := uc.Lookup(r.Context(), key)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, fieldErrorStatus(err))
			return
		}
		writeJSON(w, r, http.StatusOK, fieldResponse{
			Key:        key,
			Definition: def,
			Alertable:  fields.IsAlertable(key),
		})
	}
}

func listFieldsHandler(uc FieldUseCase) http.HandlerFunc {
	type response struct {
		Set    usecase.FieldSet     `json:"set"`
		Fields []usecase.FieldEntry `json:"fields"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		set := usecase.FieldSet(r.URL.Query().Get("set"))
		if set == "" {
			set = usecase.FieldSetAll
		}

		entries, err := uc.List(r.Context(), set)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, fieldErrorStatus(err))
			return
		}
		writeJSON(w, r, http.StatusOK, response{Set: set, Fields: entries})
	}
}

func conditionsHandler(uc FieldUseCase) http.HandlerFunc {
	type response struct {
		Query string `json:"query"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		var discover bool
		if v := q.Get("discover"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid discover parameter"), http.StatusBadRequest)
				return
			}
			discover = b
		}

		var eventTypes []types.EventType
		for _, v := range q["event_type"] {
			for _, et := range strings.Split(v, ",") {
				if et = strings.TrimSpace(et); et != "" {
					eventTypes = append(eventTypes, types.EventType(et))
				}
			}
		}

		query, err := uc.Conditions(r.Context(), types.Dataset(q.Get("dataset")), q.Get("query"), eventTypes, discover)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, fieldErrorStatus(err))
			return
		}
		writeJSON(w, r, http.StatusOK, response{Query: query})
	}
}

func fieldErrorStatus(err error) int {
	switch {
	case errors.Is(err, usecase.ErrFieldNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrInvalidFieldSet), errors.Is(err, usecase.ErrInvalidQuery):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
