package firestore_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/vantage/pkg/domain/model"
	"github.com/secmon-lab/vantage/pkg/repository/firestore"
)

func TestDiffRecords(t *testing.T) {
	prev := model.ConfigRecord{
		"theme":    "light",
		"language": "en",
		"features": []any{"a", "b"},
	}
	next := model.ConfigRecord{
		"theme":    "dark",
		"language": "en",
		"features": []any{"a", "b"},
		"timezone": "UTC",
	}

	patch := firestore.DiffRecords(prev, next)
	gt.Number(t, len(patch)).Equal(2)
	gt.Value(t, patch["theme"]).Equal("dark")
	gt.Value(t, patch["timezone"]).Equal("UTC")

	gt.Number(t, len(firestore.DiffRecords(next, next))).Equal(0)
}

func TestListenerPatch(t *testing.T) {
	t.Run("first snapshot is reported in full", func(t *testing.T) {
		current := model.ConfigRecord{"theme": "dark", "language": "de"}

		patch := firestore.ListenerPatch(nil, current)
		gt.Number(t, len(patch)).Equal(2)
		gt.Value(t, patch["theme"]).Equal("dark")
		gt.Value(t, patch["language"]).Equal("de")
	})

	t.Run("empty first snapshot reports nothing", func(t *testing.T) {
		gt.Number(t, len(firestore.ListenerPatch(nil, model.ConfigRecord{}))).Equal(0)
	})

	t.Run("later snapshots report changed keys", func(t *testing.T) {
		prev := model.ConfigRecord{"theme": "dark", "language": "de"}
		current := model.ConfigRecord{"theme": "dark", "language": "fr"}

		patch := firestore.ListenerPatch(prev, current)
		gt.Number(t, len(patch)).Equal(1)
		gt.Value(t, patch["language"]).Equal("fr")
	})
}
