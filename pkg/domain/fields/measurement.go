package fields

import (
	"github.com/secmon-lab/vantage/pkg/domain/model"
	"github.com/secmon-lab/vantage/pkg/domain/types"
)

// MeasurementFields are web and mobile vitals recorded on transactions
var MeasurementFields = map[string]model.FieldDefinition{
	"measurements.app_start_cold": {
		Desc:      "First launch (not in memory and no process exists)",
		Kind:      types.FieldKindMeasurement,
		ValueType: types.FieldValueDuration,
	},
	"measurements.app_start_warm": {
		Desc:      "Already launched (partial memory and process may exist)",
		Kind:      types.FieldKindMeasurement,
		ValueType: types.FieldValueDuration,
	},
	"measurements.cls": {
		Desc:      "Cumulative Layout Shift",
		Kind:      types.FieldKindMeasurement,
		ValueType: types.FieldValueNumber,
	},
	"measurements.fcp": {
		Desc:      "First Contentful Paint",
		Kind:      types.FieldKindMeasurement,
		ValueType: types.FieldValueDuration,
	},
	"measurements.fid": {
		Desc:      "First Input Delay",
		Kind:      types.FieldKindMeasurement,
		ValueType: types.FieldValueDuration,
	},
	"measurements.fp": {
		Desc:      "First Paint",
		Kind:      types.FieldKindMeasurement,
		ValueType: types.FieldValueDuration,
	},
	"measurements.inp": {
		Desc:      "Interaction to Next Paint",
		Kind:      types.FieldKindMeasurement,
		ValueType: types.FieldValueDuration,
	},
	"measurements.lcp": {
		Desc:      "Largest Contentful Paint",
		Kind:      types.FieldKindMeasurement,
		ValueType: types.FieldValueDuration,
	},
	"measurements.ttfb": {
		Desc:      "Time To First Byte",
		Kind:      types.FieldKindMeasurement,
		ValueType: types.FieldValueDuration,
	},
	"measurements.ttfb.requesttime": {
		Desc:      "Time between start of request to start of response",
		Kind:      types.FieldKindMeasurement,
		ValueType: types.FieldValueDuration,
	},
	"measurements.frames_frozen": {
		Desc:      "The number of frozen frames (took longer than 700ms to render)",
		Kind:      types.FieldKindMeasurement,
		ValueType: types.FieldValueInteger,
	},
	"measurements.frames_frozen_rate": {
		Desc:      "Percentage of frames that were frozen",
		Kind:      types.FieldKindMeasurement,
		ValueType: types.FieldValuePercentage,
	},
	"measurements.frames_slow": {
		Desc:      "The number of slow frames (took more than 16ms to render)",
		Kind:      types.FieldKindMeasurement,
		ValueType: types.FieldValueInteger,
	},
	"measurements.frames_slow_rate": {
		Desc:      "Percentage of frames that were slow",
		Kind:      types.FieldKindMeasurement,
		ValueType: types.FieldValuePercentage,
	},
	"measurements.frames_total": {
		Desc:      "Total number of frames",
		Kind:      types.FieldKindMeasurement,
		ValueType: types.FieldValueInteger,
	},
	"measurements.stall_count": {
		Desc:      "Count of slow Javascript event loops (React Native)",
		Kind:      types.FieldKindMeasurement,
		ValueType: types.FieldValueInteger,
	},
	"measurements.stall_longest_time": {
		Desc:      "Duration of slowest Javascript event loop (React Native)",
		Kind:      types.FieldKindMeasurement,
		ValueType: types.FieldValueDuration,
	},
	"measurements.stall_percentage": {
		Desc:      "Total stall duration out of the total transaction duration (React Native)",
		Kind:      types.FieldKindMeasurement,
		ValueType: types.FieldValuePercentage,
	},
	"measurements.stall_total_time": {
		Desc:      "Combined duration of all slow Javascript event loops (React Native)",
		Kind:      types.FieldKindMeasurement,
		ValueType: types.FieldValueDuration,
	},
	"measurements.time_to_initial_display": {
		Desc:      "The time between application launch and complete display of all resources and views",
		Kind:      types.FieldKindMeasurement,
		ValueType: types.FieldValueDuration,
	},
	"measurements.time_to_full_display": {
		Desc:      "The time between application launch and display of the first frame",
		Kind:      types.FieldKindMeasurement,
		ValueType: types.FieldValueDuration,
	},
}
