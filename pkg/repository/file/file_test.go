package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/vantage/pkg/domain/model"
	"github.com/secmon-lab/vantage/pkg/repository/file"
)

func TestNew_UnsupportedFormat(t *testing.T) {
	_, err := file.New(filepath.Join(t.TempDir(), "config.ini"))
	gt.Error(t, err).Is(file.ErrUnsupportedFormat)
}

func TestNew_InvalidContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	gt.NoError(t, os.WriteFile(path, []byte("theme = = dark"), 0o600)).Required()

	_, err := file.New(path)
	gt.Value(t, err).NotNil()
}

func TestLegacyConfig_ReadsExistingFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "toml",
			file:    "config.toml",
			content: "theme = \"dark\"\nlanguage = \"ja\"\n",
		},
		{
			name:    "yaml",
			file:    "config.yaml",
			content: "theme: dark\nlanguage: ja\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			gt.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600)).Required()

			repo, err := file.New(path)
			gt.NoError(t, err).Required()

			snap, err := repo.LegacyConfig().Snapshot(context.Background())
			gt.NoError(t, err).Required()
			gt.Value(t, snap.Theme()).Equal("dark")
			gt.Value(t, snap["language"]).Equal("ja")
		})
	}
}

func TestLegacyConfig_SetPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	repo, err := file.New(path)
	gt.NoError(t, err).Required()

	ctx := context.Background()
	gt.NoError(t, repo.LegacyConfig().Set(ctx, "timezone", "Asia/Tokyo")).Required()

	reopened, err := file.New(path)
	gt.NoError(t, err).Required()
	snap, err := reopened.LegacyConfig().Snapshot(ctx)
	gt.NoError(t, err).Required()
	gt.Value(t, snap["timezone"]).Equal("Asia/Tokyo")
}

func TestLegacyConfig_ExternalEditIsReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	gt.NoError(t, os.WriteFile(path, []byte("theme = \"light\"\n"), 0o600)).Required()

	repo, err := file.New(path)
	gt.NoError(t, err).Required()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	patches := make(chan model.ConfigRecord, 4)
	unsubscribe, err := repo.LegacyConfig().Subscribe(ctx, func(ctx context.Context, patch model.ConfigRecord) {
		patches <- patch
	})
	gt.NoError(t, err).Required()
	defer unsubscribe()

	gt.NoError(t, os.WriteFile(path, []byte("theme = \"dark\"\nlanguage = \"de\"\n"), 0o600)).Required()

	select {
	case patch := <-patches:
		gt.Value(t, patch.Theme()).Equal("dark")
		gt.Value(t, patch["language"]).Equal("de")
	case <-time.After(3 * time.Second):
		t.Fatal("external edit was not reported")
	}
}

func TestLegacyConfig_OwnWriteDoesNotEcho(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	repo, err := file.New(path)
	gt.NoError(t, err).Required()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	patches := make(chan model.ConfigRecord, 4)
	unsubscribe, err := repo.LegacyConfig().Subscribe(ctx, func(ctx context.Context, patch model.ConfigRecord) {
		patches <- patch
	})
	gt.NoError(t, err).Required()
	defer unsubscribe()

	gt.NoError(t, repo.LegacyConfig().Set(ctx, "features", []string{"replay", "profiling"})).Required()

	// Notification from Set itself
	select {
	case patch := <-patches:
		gt.Value(t, patch["features"]).Equal(any([]any{"replay", "profiling"}))
	case <-time.After(time.Second):
		t.Fatal("write was not reported")
	}

	// The watcher sees the rewrite but finds nothing new
	select {
	case patch := <-patches:
		t.Fatalf("unexpected echo: %v", patch)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestLegacyConfig_EditBeforeSubscribeIsReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	gt.NoError(t, os.WriteFile(path, []byte("theme = \"light\"\n"), 0o600)).Required()

	repo, err := file.New(path)
	gt.NoError(t, err).Required()

	// Not watched yet
	gt.NoError(t, os.WriteFile(path, []byte("theme = \"dark\"\n"), 0o600)).Required()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	patches := make(chan model.ConfigRecord, 4)
	unsubscribe, err := repo.LegacyConfig().Subscribe(ctx, func(ctx context.Context, patch model.ConfigRecord) {
		patches <- patch
	})
	gt.NoError(t, err).Required()
	defer unsubscribe()

	select {
	case patch := <-patches:
		gt.Value(t, patch.Theme()).Equal("dark")
	case <-time.After(3 * time.Second):
		t.Fatal("edit made before Subscribe was not reported")
	}
}

func TestLegacyConfig_NilValue(t *testing.T) {
	ctx := context.Background()

	t.Run("toml rejects nil", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		repo, err := file.New(path)
		gt.NoError(t, err).Required()

		patches := make(chan model.ConfigRecord, 4)
		unsubscribe, err := repo.LegacyConfig().Subscribe(ctx, func(ctx context.Context, patch model.ConfigRecord) {
			patches <- patch
		})
		gt.NoError(t, err).Required()
		defer unsubscribe()

		gt.Error(t, repo.LegacyConfig().Set(ctx, "beta", nil)).Is(file.ErrUnsupportedValue)
		gt.Error(t, repo.LegacyConfig().Set(ctx, "nested", map[string]any{"x": nil})).Is(file.ErrUnsupportedValue)

		snap, err := repo.LegacyConfig().Snapshot(ctx)
		gt.NoError(t, err).Required()
		gt.Map(t, snap).NotHasKey("beta")

		select {
		case patch := <-patches:
			t.Fatalf("rejected write was reported: %v", patch)
		case <-time.After(300 * time.Millisecond):
		}
	})

	t.Run("yaml keeps nil", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		repo, err := file.New(path)
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.LegacyConfig().Set(ctx, "beta", nil)).Required()

		reopened, err := file.New(path)
		gt.NoError(t, err).Required()
		snap, err := reopened.LegacyConfig().Snapshot(ctx)
		gt.NoError(t, err).Required()
		gt.Map(t, snap).HasKey("beta")
		gt.Value(t, snap["beta"]).Nil()
	})
}
