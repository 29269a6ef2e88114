package model

import "github.com/secmon-lab/vantage/pkg/domain/types"

// FieldDefinition describes one searchable field
type FieldDefinition struct {
	Kind      types.FieldKind      `json:"kind"`
	ValueType types.FieldValueType `json:"value_type"`
	Desc      string               `json:"desc,omitempty"`
}
