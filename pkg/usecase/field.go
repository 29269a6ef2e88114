package usecase

import (
	"context"
	"slices"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vantage/pkg/domain/fields"
	"github.com/secmon-lab/vantage/pkg/domain/model"
	"github.com/secmon-lab/vantage/pkg/domain/types"
	"github.com/secmon-lab/vantage/pkg/utils/logging"
	"github.com/secmon-lab/vantage/pkg/utils/metrics"
)

// FieldSet selects a list of field keys
type FieldSet string

const (
	FieldSetIssue    FieldSet = "issue"
	FieldSetDiscover FieldSet = "discover"
	FieldSetAll      FieldSet = "all"
)

// Validate checks if the FieldSet is known
func (s FieldSet) Validate() error {
	switch s {
	case FieldSetIssue, FieldSetDiscover, FieldSetAll:
		return nil
	default:
		return goerr.Wrap(ErrInvalidFieldSet, "field set must be issue, discover or all", goerr.V("set", string(s)))
	}
}

// FieldEntry is one key of a field set. Found is false when the key has no
// definition in the catalog.
type FieldEntry struct {
	Key        string                `json:"key"`
	Definition model.FieldDefinition `json:"definition"`
	Found      bool                  `json:"found"`
}

// FieldSetReport lists the keys of an allowlist missing from the catalog
type FieldSetReport struct {
	Set     FieldSet `json:"set"`
	Total   int      `json:"total"`
	Missing []string `json:"missing"`
}

// FieldUseCase serves the static field catalog
type FieldUseCase struct{}

// NewFieldUseCase creates a FieldUseCase
func NewFieldUseCase() *FieldUseCase {
	return &FieldUseCase{}
}

// Lookup returns the definition of key
func (uc *FieldUseCase) Lookup(ctx context.Context, key string) (model.FieldDefinition, error) {
	def, ok := fields.Lookup(key)
	if !ok {
		metrics.FieldLookups.WithLabelValues(metrics.ResultMissing).Inc()
		return model.FieldDefinition{}, goerr.Wrap(ErrFieldNotFound, "no definition for field", goerr.V(FieldKeyKey, key))
	}
	metrics.FieldLookups.WithLabelValues(metrics.ResultFound).Inc()
	return def, nil
}

// List returns the entries of set. Allowlists keep their declared order and
// report keys without a definition; the full catalog is sorted by key.
func (uc *FieldUseCase) List(ctx context.Context, set FieldSet) ([]FieldEntry, error) {
	if err := set.Validate(); err != nil {
		return nil, err
	}

	keys := setKeys(set)
	entries := make([]FieldEntry, len(keys))
	missing := 0
	for i, key := range keys {
		def, ok := fields.Lookup(key)
		entries[i] = FieldEntry{Key: key, Definition: def, Found: ok}
		if !ok {
			missing++
		}
	}

	if missing > 0 {
		logging.From(ctx).Warn("field set has keys without definition", "set", set, "missing", missing)
	}
	return entries, nil
}

// Validate reports allowlist keys that have no definition
func (uc *FieldUseCase) Validate(ctx context.Context) []FieldSetReport {
	sets := []FieldSet{FieldSetIssue, FieldSetDiscover}
	reports := make([]FieldSetReport, len(sets))
	for i, set := range sets {
		keys := setKeys(set)
		reports[i] = FieldSetReport{
			Set:     set,
			Total:   len(keys),
			Missing: fields.Missing(keys),
		}
	}
	return reports
}

// Conditions scopes query to the event types of dataset
func (uc *FieldUseCase) Conditions(ctx context.Context, dataset types.Dataset, query string, eventTypes []types.EventType, discover bool) (string, error) {
	if err := dataset.Validate(); err != nil {
		return "", goerr.Wrap(ErrInvalidQuery, err.Error())
	}
	for _, et := range eventTypes {
		if err := et.Validate(); err != nil {
			return "", goerr.Wrap(ErrInvalidQuery, err.Error())
		}
	}
	return fields.ApplyDatasetConditions(dataset, query, eventTypes, discover), nil
}

func setKeys(set FieldSet) []string {
	switch set {
	case FieldSetIssue:
		return fields.IssueFields
	case FieldSetDiscover:
		return fields.DiscoverFields
	default:
		keys := make([]string, 0, len(fields.AllFields))
		for key := range fields.AllFields {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		return keys
	}
}
