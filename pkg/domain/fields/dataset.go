package fields

import (
	"fmt"
	"strings"

	"github.com/secmon-lab/vantage/pkg/domain/types"
)

// DatasetConditions are the implicit event type filters of each dataset
var DatasetConditions = map[types.Dataset]string{
	types.DatasetEvents:       "event.type:error",
	types.DatasetTransactions: "event.type:transaction",
}

// AlertBlockedFields cannot be used in alert rule queries
var AlertBlockedFields = map[string]struct{}{
	"start":             {},
	"end":               {},
	"last_seen()":       {},
	"time":              {},
	"timestamp":         {},
	"timestamp.to_hour": {},
	"timestamp.to_day":  {},
}

// IsAlertable reports whether key may be used in an alert rule query
func IsAlertable(key string) bool {
	_, blocked := AlertBlockedFields[key]
	return !blocked
}

// ApplyDatasetConditions scopes query to the dataset's event types, turning
// `release:123` into `(event.type:error) AND (release:123)`.
//
// Transactions queries are returned unchanged unless discover is set: that
// dataset only holds transactions, and an explicit event.type there would be
// read as a tag search. Explicit eventTypes replace the dataset default.
func ApplyDatasetConditions(dataset types.Dataset, query string, eventTypes []types.EventType, discover bool) string {
	if !discover && dataset == types.DatasetTransactions {
		return query
	}

	var cond string
	switch {
	case len(eventTypes) > 0:
		parts := make([]string, len(eventTypes))
		for i, et := range eventTypes {
			parts[i] = "event.type:" + strings.ToLower(string(et))
		}
		cond = strings.Join(parts, " OR ")
	case DatasetConditions[dataset] != "":
		cond = DatasetConditions[dataset]
	default:
		return query
	}

	if query == "" {
		return cond
	}
	return fmt.Sprintf("(%s) AND (%s)", cond, query)
}
