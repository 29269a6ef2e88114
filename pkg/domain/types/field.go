package types

// FieldKind classifies how a searchable field is produced
type FieldKind string

const (
	FieldKindTag            FieldKind = "tag"
	FieldKindMeasurement    FieldKind = "measurement"
	FieldKindBreakdown      FieldKind = "breakdown"
	FieldKindField          FieldKind = "field"
	FieldKindFunction       FieldKind = "function"
	FieldKindEquation       FieldKind = "equation"
	FieldKindMetrics        FieldKind = "metric"
	FieldKindNumericMetrics FieldKind = "numeric_metric"
)

// AllFieldKinds returns all valid field kinds
func AllFieldKinds() []FieldKind {
	return []FieldKind{
		FieldKindTag,
		FieldKindMeasurement,
		FieldKindBreakdown,
		FieldKindField,
		FieldKindFunction,
		FieldKindEquation,
		FieldKindMetrics,
		FieldKindNumericMetrics,
	}
}

// IsValid checks if the field kind is valid
func (k FieldKind) IsValid() bool {
	switch k {
	case FieldKindTag,
		FieldKindMeasurement,
		FieldKindBreakdown,
		FieldKindField,
		FieldKindFunction,
		FieldKindEquation,
		FieldKindMetrics,
		FieldKindNumericMetrics:
		return true
	default:
		return false
	}
}

// String returns the string representation of the field kind
func (k FieldKind) String() string {
	return string(k)
}

// FieldValueType is the type of value a field produces. FieldValueNever is
// used by functions whose output type depends on their argument.
type FieldValueType string

const (
	FieldValueBoolean    FieldValueType = "boolean"
	FieldValueDate       FieldValueType = "date"
	FieldValueDuration   FieldValueType = "duration"
	FieldValueInteger    FieldValueType = "integer"
	FieldValueNumber     FieldValueType = "number"
	FieldValuePercentage FieldValueType = "percentage"
	FieldValueString     FieldValueType = "string"
	FieldValueNever      FieldValueType = "never"
)

// AllFieldValueTypes returns all valid field value types
func AllFieldValueTypes() []FieldValueType {
	return []FieldValueType{
		FieldValueBoolean,
		FieldValueDate,
		FieldValueDuration,
		FieldValueInteger,
		FieldValueNumber,
		FieldValuePercentage,
		FieldValueString,
		FieldValueNever,
	}
}

// IsValid checks if the value type is valid
func (t FieldValueType) IsValid() bool {
	switch t {
	case FieldValueBoolean,
		FieldValueDate,
		FieldValueDuration,
		FieldValueInteger,
		FieldValueNumber,
		FieldValuePercentage,
		FieldValueString,
		FieldValueNever:
		return true
	default:
		return false
	}
}

// IsNumeric reports whether values of this type can be aggregated numerically
func (t FieldValueType) IsNumeric() bool {
	switch t {
	case FieldValueDuration, FieldValueInteger, FieldValueNumber, FieldValuePercentage:
		return true
	default:
		return false
	}
}

// String returns the string representation of the value type
func (t FieldValueType) String() string {
	return string(t)
}
