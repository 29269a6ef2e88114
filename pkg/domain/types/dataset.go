package types

import "github.com/m-mizutani/goerr/v2"

// Dataset is a queryable event store
type Dataset string

const (
	DatasetEvents       Dataset = "events"
	DatasetTransactions Dataset = "transactions"
	DatasetSessions     Dataset = "sessions"
	DatasetMetrics      Dataset = "metrics"
)

// Validate checks if the Dataset is known
func (d Dataset) Validate() error {
	switch d {
	case DatasetEvents, DatasetTransactions, DatasetSessions, DatasetMetrics:
		return nil
	default:
		return goerr.New("unknown dataset", goerr.V("dataset", string(d)))
	}
}

// EventType narrows a dataset query to one kind of event
type EventType string

const (
	EventTypeError       EventType = "error"
	EventTypeDefault     EventType = "default"
	EventTypeTransaction EventType = "transaction"
)

// Validate checks if the EventType is known
func (e EventType) Validate() error {
	switch e {
	case EventTypeError, EventTypeDefault, EventTypeTransaction:
		return nil
	default:
		return goerr.New("unknown event type", goerr.V("event_type", string(e)))
	}
}
