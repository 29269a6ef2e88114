package repository_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/vantage/pkg/domain/interfaces"
	"github.com/secmon-lab/vantage/pkg/domain/model"
	"github.com/secmon-lab/vantage/pkg/domain/types"
	"github.com/secmon-lab/vantage/pkg/repository/file"
	"github.com/secmon-lab/vantage/pkg/repository/firestore"
	"github.com/secmon-lab/vantage/pkg/repository/memory"
)

func waitPatch(t *testing.T, ch <-chan model.ConfigRecord) model.ConfigRecord {
	t.Helper()
	select {
	case patch := <-ch:
		return patch
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification received")
		return nil
	}
}

func runLegacyConfigTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Set is visible in Snapshot", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		store := repo.LegacyConfig()

		gt.NoError(t, store.Set(ctx, "language", "fr")).Required()

		snap, err := store.Snapshot(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, snap["language"]).Equal("fr")
	})

	t.Run("UpdateTheme writes the theme key", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		store := repo.LegacyConfig()

		gt.NoError(t, store.UpdateTheme(ctx, types.ThemeDark)).Required()

		snap, err := store.Snapshot(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, snap.Theme()).Equal(types.ThemeDark)
	})

	t.Run("Subscribe receives changed keys", func(t *testing.T) {
		repo := newRepo(t)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		store := repo.LegacyConfig()

		patches := make(chan model.ConfigRecord, 8)
		unsubscribe, err := store.Subscribe(ctx, func(ctx context.Context, patch model.ConfigRecord) {
			patches <- patch
		})
		gt.NoError(t, err).Required()
		defer unsubscribe()

		// give listener-based stores time to prime their first snapshot
		time.Sleep(200 * time.Millisecond)

		gt.NoError(t, store.UpdateTheme(ctx, types.ThemeDark)).Required()

		patch := waitPatch(t, patches)
		gt.Value(t, patch.Theme()).Equal(types.ThemeDark)
	})

	t.Run("Unsubscribe stops notifications", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		store := repo.LegacyConfig()

		patches := make(chan model.ConfigRecord, 8)
		unsubscribe, err := store.Subscribe(ctx, func(ctx context.Context, patch model.ConfigRecord) {
			patches <- patch
		})
		gt.NoError(t, err).Required()
		unsubscribe()

		gt.NoError(t, store.Set(ctx, "language", "it")).Required()

		select {
		case <-patches:
			t.Fatal("notification after unsubscribe")
		case <-time.After(300 * time.Millisecond):
		}
	})
}

func TestLegacyConfig_Memory(t *testing.T) {
	runLegacyConfigTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestLegacyConfig_File(t *testing.T) {
	runLegacyConfigTest(t, func(t *testing.T) interfaces.Repository {
		repo, err := file.New(filepath.Join(t.TempDir(), "legacy.toml"))
		gt.NoError(t, err).Required()
		return repo
	})
}

func TestLegacyConfig_Firestore(t *testing.T) {
	projectID := os.Getenv("VANTAGE_TEST_FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("VANTAGE_TEST_FIRESTORE_PROJECT_ID not set")
	}
	databaseID := os.Getenv("VANTAGE_TEST_FIRESTORE_DATABASE_ID")

	runLegacyConfigTest(t, func(t *testing.T) interfaces.Repository {
		repo, err := firestore.New(context.Background(), projectID, databaseID,
			firestore.WithCollectionPrefix("test"),
			firestore.WithScope(types.ScopeID("test-"+uuid.NewString()[:8])),
		)
		gt.NoError(t, err).Required()
		t.Cleanup(func() { _ = repo.Close() })
		return repo
	})
}

func TestLegacyConfig_FirestoreReportsExistingDocument(t *testing.T) {
	projectID := os.Getenv("VANTAGE_TEST_FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("VANTAGE_TEST_FIRESTORE_PROJECT_ID not set")
	}
	databaseID := os.Getenv("VANTAGE_TEST_FIRESTORE_DATABASE_ID")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo, err := firestore.New(ctx, projectID, databaseID,
		firestore.WithCollectionPrefix("test"),
		firestore.WithScope(types.ScopeID("test-"+uuid.NewString()[:8])),
	)
	gt.NoError(t, err).Required()
	defer func() { _ = repo.Close() }()

	store := repo.LegacyConfig()
	gt.NoError(t, store.Set(ctx, "language", "pt")).Required()

	patches := make(chan model.ConfigRecord, 8)
	unsubscribe, err := store.Subscribe(ctx, func(ctx context.Context, patch model.ConfigRecord) {
		patches <- patch
	})
	gt.NoError(t, err).Required()
	defer unsubscribe()

	patch := waitPatch(t, patches)
	gt.Value(t, patch["language"]).Equal("pt")
}
