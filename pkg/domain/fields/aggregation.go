package fields

import (
	"github.com/secmon-lab/vantage/pkg/domain/model"
	"github.com/secmon-lab/vantage/pkg/domain/types"
)

// AggregationFields are the functions available in queries. Functions whose
// result type follows their argument (min, max, percentiles, ...) use
// FieldValueNever.
var AggregationFields = map[string]model.FieldDefinition{
	"count": {
		Desc:      "count of events",
		Kind:      types.FieldKindFunction,
		ValueType: types.FieldValueNumber,
	},
	"count_if": {
		Desc:      "Count of events matching a condition on a column",
		Kind:      types.FieldKindFunction,
		ValueType: types.FieldValueNumber,
	},
	"count_unique": {
		Desc:      "Unique count of the field values",
		Kind:      types.FieldKindFunction,
		ValueType: types.FieldValueInteger,
	},
	"count_miserable": {
		Desc:      "Count of unique miserable users",
		Kind:      types.FieldKindFunction,
		ValueType: types.FieldValueNumber,
	},
	"count_web_vitals": {
		Desc:      "Count of web vitals with a specific status",
		Kind:      types.FieldKindFunction,
		ValueType: types.FieldValueNumber,
	},
	"eps": {
		Desc:      "Events per second",
		Kind:      types.FieldKindFunction,
		ValueType: types.FieldValueNumber,
	},
	"epm": {
		Desc:      "Events per minute",
		Kind:      types.FieldKindFunction,
		ValueType: types.FieldValueNumber,
	},
	"failure_count": {
		Desc:      "Failed event count",
		Kind:      types.FieldKindFunction,
		ValueType: types.FieldValueNumber,
	},
	"failure_rate": {
		Desc:      "Failed event percentage based on transaction.status",
		Kind:      types.FieldKindFunction,
		ValueType: types.FieldValuePercentage,
	},
	"apdex": {
		Desc:      "Performance score based on a duration threshold",
		Kind:      types.FieldKindFunction,
		ValueType: types.FieldValueNumber,
	},
	"user_misery": {
		Desc:      "User-weighted performance metric that counts the number of unique users who were frustrated",
		Kind:      types.FieldKindFunction,
		ValueType: types.FieldValueNumber,
	},
	"min": {
		Desc:      "Returns results with the lowest value",
		Kind:      types.FieldKindFunction,
		ValueType: types.FieldValueNever,
	},
	"max": {
		Desc:      "Returns results with the highest value",
		Kind:      types.FieldKindFunction,
		ValueType: types.FieldValueNever,
	},
	"sum": {
		Desc:      "Returns results with the sum of the field values",
		Kind:      types.FieldKindFunction,
		ValueType: types.FieldValueNever,
	},
	"avg": {
		Desc:      "Returns averages for a selected field",
		Kind:      types.FieldKindFunction,
		ValueType: types.FieldValueNever,
	},
	"any": {
		Desc:      "Not Recommended, a random field value",
		Kind:      types.FieldKindFunction,
		ValueType: types.FieldValueNever,
	},
	"percentile": {
		Desc:      "Returns the percentile of the field value",
		Kind:      types.FieldKindFunction,
		ValueType: types.FieldValueNever,
	},
	"p50": {
		Desc:      "Returns the 50th percentile of the field value",
		Kind:      types.FieldKindFunction,
		ValueType: types.FieldValueNever,
	},
	"p75": {
		Desc:      "Returns the 75th percentile of the field value",
		Kind:      types.FieldKindFunction,
		ValueType: types.FieldValueNever,
	},
	"p95": {
		Desc:      "Returns the 95th percentile of the field value",
		Kind:      types.FieldKindFunction,
		ValueType: types.FieldValueNever,
	},
	"p99": {
		Desc:      "Returns the 99th percentile of the field value",
		Kind:      types.FieldKindFunction,
		ValueType: types.FieldValueNever,
	},
	"p100": {
		Desc:      "Returns the 100th percentile of the field value",
		Kind:      types.FieldKindFunction,
		ValueType: types.FieldValueNever,
	},
	"last_seen": {
		Desc:      "Issues last seen at a date and time",
		Kind:      types.FieldKindFunction,
		ValueType: types.FieldValueDate,
	},
}
