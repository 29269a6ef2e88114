// Package fields is the static catalog of searchable fields.
//
// The catalog is assembled once at package initialization from three
// tables, folded in order: AggregationFields, MeasurementFields, Fields.
// A key present in more than one table takes the definition from the last
// table that declares it. There is no runtime registration.
package fields

import (
	"maps"

	"github.com/secmon-lab/vantage/pkg/domain/model"
)

// AllFields is the merged catalog
var AllFields = merge(AggregationFields, MeasurementFields, Fields)

func merge(tables ...map[string]model.FieldDefinition) map[string]model.FieldDefinition {
	merged := make(map[string]model.FieldDefinition)
	for _, table := range tables {
		maps.Copy(merged, table)
	}
	return merged
}

// Lookup returns the definition for an exact, case-sensitive key
func Lookup(key string) (model.FieldDefinition, bool) {
	def, ok := AllFields[key]
	return def, ok
}

// Missing returns the keys of list that have no definition, in list order
func Missing(list []string) []string {
	var missing []string
	for _, key := range list {
		if _, ok := AllFields[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}
