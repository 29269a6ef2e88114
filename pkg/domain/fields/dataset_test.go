package fields_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/vantage/pkg/domain/fields"
	"github.com/secmon-lab/vantage/pkg/domain/types"
)

func TestApplyDatasetConditions(t *testing.T) {
	tests := []struct {
		name       string
		dataset    types.Dataset
		query      string
		eventTypes []types.EventType
		discover   bool
		want       string
	}{
		{
			name:    "events dataset with query",
			dataset: types.DatasetEvents,
			query:   "release:123 or release:456",
			want:    "(event.type:error) AND (release:123 or release:456)",
		},
		{
			name:    "events dataset without query",
			dataset: types.DatasetEvents,
			want:    "event.type:error",
		},
		{
			name:    "transactions untouched outside discover",
			dataset: types.DatasetTransactions,
			query:   "transaction.op:http",
			want:    "transaction.op:http",
		},
		{
			name:     "transactions in discover",
			dataset:  types.DatasetTransactions,
			query:    "transaction.op:http",
			discover: true,
			want:     "(event.type:transaction) AND (transaction.op:http)",
		},
		{
			name:       "explicit event types",
			dataset:    types.DatasetEvents,
			query:      "level:fatal",
			eventTypes: []types.EventType{types.EventTypeError, types.EventTypeDefault},
			want:       "(event.type:error OR event.type:default) AND (level:fatal)",
		},
		{
			name:    "dataset without condition",
			dataset: types.DatasetSessions,
			query:   "release:1.0",
			want:    "release:1.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fields.ApplyDatasetConditions(tt.dataset, tt.query, tt.eventTypes, tt.discover)
			gt.Value(t, got).Equal(tt.want)
		})
	}
}

func TestIsAlertable(t *testing.T) {
	gt.Bool(t, fields.IsAlertable("release")).True()
	gt.Bool(t, fields.IsAlertable("timestamp")).False()
	gt.Bool(t, fields.IsAlertable("last_seen()")).False()
	gt.Bool(t, fields.IsAlertable("timestamp.to_day")).False()
}
