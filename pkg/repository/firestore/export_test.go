package firestore

import "github.com/secmon-lab/vantage/pkg/domain/model"

// DiffRecords exposes diffRecords for testing
func DiffRecords(prev, next model.ConfigRecord) model.ConfigRecord {
	return diffRecords(prev, next)
}

// ListenerPatch exposes listenerPatch for testing
func ListenerPatch(prev, current model.ConfigRecord) model.ConfigRecord {
	return listenerPatch(prev, current)
}
