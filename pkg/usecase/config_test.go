package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/vantage/pkg/domain/model"
	"github.com/secmon-lab/vantage/pkg/domain/types"
	"github.com/secmon-lab/vantage/pkg/repository/memory"
	"github.com/secmon-lab/vantage/pkg/usecase"
)

func startConfig(t *testing.T, repo *memory.Memory, opts ...usecase.Option) *usecase.ConfigUseCase {
	t.Helper()

	uc := usecase.New(repo, opts...)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- uc.Config.Start(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		gt.NoError(t, <-done)
	})

	// the first committed transition marks the end of bootstrap
	waitCtx, waitCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer waitCancel()
	_, err := uc.Config.Dispatch(waitCtx, model.Patch(nil))
	gt.NoError(t, err).Required()

	return uc.Config
}

func eventually(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestConfigUseCase_Bootstrap(t *testing.T) {
	repo := memory.New(memory.WithLegacyConfig(model.ConfigRecord{
		"theme":    "dark",
		"language": "de",
	}))

	uc := startConfig(t, repo, usecase.WithConfigDefaults(model.ConfigRecord{
		"language": "fr",
		"timezone": "Europe/Berlin",
	}))

	current := uc.Current()
	gt.Value(t, current.Theme()).Equal(types.ThemeDark)
	gt.Value(t, current["language"]).Equal("de")
	gt.Value(t, current["timezone"]).Equal("Europe/Berlin")
	gt.Value(t, current["clock24Hours"]).Equal(false)
}

func TestConfigUseCase_SetTheme(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := startConfig(t, repo)

	var mu sync.Mutex
	var actions []model.ConfigActionType
	unsubscribe := uc.Subscribe(func(ctx context.Context, prev, next model.ConfigRecord, action model.ConfigAction) {
		mu.Lock()
		defer mu.Unlock()
		actions = append(actions, action.Type())
	})
	defer unsubscribe()

	next, err := uc.SetTheme(ctx, types.ThemeDark)
	gt.NoError(t, err).Required()
	gt.Value(t, next.Theme()).Equal(types.ThemeDark)

	// the legacy write echoes back as a patch, which is not written again
	eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(actions) == 2
	})

	mu.Lock()
	gt.Array(t, actions).Equal([]model.ConfigActionType{model.ConfigActionSetTheme, model.ConfigActionPatch})
	mu.Unlock()

	snap, err := repo.LegacyConfig().Snapshot(ctx)
	gt.NoError(t, err).Required()
	gt.Value(t, snap.Theme()).Equal(types.ThemeDark)
	gt.Value(t, uc.Current().Theme()).Equal(types.ThemeDark)

	// the echo carries the legacy string form, the record keeps the typed value
	theme, ok := model.Get(uc.Current(), model.KeyTheme)
	gt.B(t, ok).True()
	gt.Value(t, theme).Equal(types.ThemeDark)

	t.Run("invalid theme", func(t *testing.T) {
		_, err := uc.SetTheme(ctx, types.Theme("sepia"))
		gt.Error(t, err).Is(usecase.ErrInvalidConfigValue)
	})
}

func TestConfigUseCase_LegacyChange(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := startConfig(t, repo)

	gt.NoError(t, repo.LegacyConfig().Set(ctx, "language", "es")).Required()

	eventually(t, func() bool {
		return uc.Current()["language"] == "es"
	})
}

func TestConfigUseCase_LegacyValuesKeepDeclaredTypes(t *testing.T) {
	ctx := context.Background()
	repo := memory.New(memory.WithLegacyConfig(model.ConfigRecord{
		"theme":    "dark",
		"features": []any{"replay"},
	}))
	uc := startConfig(t, repo)

	t.Run("snapshot", func(t *testing.T) {
		theme, ok := model.Get(uc.Current(), model.KeyTheme)
		gt.B(t, ok).True()
		gt.Value(t, theme).Equal(types.ThemeDark)

		features, ok := model.Get(uc.Current(), model.KeyFeatures)
		gt.B(t, ok).True()
		gt.Array(t, features).Equal([]string{"replay"})
	})

	t.Run("patch", func(t *testing.T) {
		gt.NoError(t, repo.LegacyConfig().Set(ctx, "features", []any{"profiling", "crons"})).Required()

		eventually(t, func() bool {
			features, ok := model.Get(uc.Current(), model.KeyFeatures)
			return ok && len(features) == 2
		})
		features, _ := model.Get(uc.Current(), model.KeyFeatures)
		gt.Array(t, features).Equal([]string{"profiling", "crons"})
	})

	t.Run("value of wrong type is dropped", func(t *testing.T) {
		gt.NoError(t, repo.LegacyConfig().Set(ctx, "theme", "purple")).Required()
		gt.NoError(t, repo.LegacyConfig().Set(ctx, "language", "it")).Required()

		// patches commit in order, so the theme patch has been handled
		eventually(t, func() bool {
			return uc.Current()["language"] == "it"
		})
		theme, ok := model.Get(uc.Current(), model.KeyTheme)
		gt.B(t, ok).True()
		gt.Value(t, theme).Equal(types.ThemeDark)
	})
}

func TestConfigUseCase_InterleavedThemeChangesSettle(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := startConfig(t, repo)

	var mu sync.Mutex
	var themes []types.Theme
	unsubscribe := uc.Subscribe(func(ctx context.Context, prev, next model.ConfigRecord, action model.ConfigAction) {
		mu.Lock()
		defer mu.Unlock()
		themes = append(themes, next.Theme())
	})
	defer unsubscribe()

	uc.DispatchAsync(ctx, model.SetTheme(types.ThemeDark))
	uc.DispatchAsync(ctx, model.SetTheme(types.ThemeLight))

	// two commits and two echoes; the stale dark echo may land between them
	eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(themes) == 4
	})

	mu.Lock()
	gt.Value(t, themes[len(themes)-1]).Equal(types.ThemeLight)
	mu.Unlock()
	gt.Value(t, uc.Current().Theme()).Equal(types.ThemeLight)

	snap, err := repo.LegacyConfig().Snapshot(ctx)
	gt.NoError(t, err).Required()
	gt.Value(t, snap.Theme()).Equal(types.ThemeLight)
}

func TestConfigUseCase_SetValue(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := startConfig(t, repo)

	t.Run("well-known key", func(t *testing.T) {
		next, err := uc.SetValue(ctx, "features", []any{"replay", "profiling"})
		gt.NoError(t, err).Required()

		features, ok := model.Get(next, model.KeyFeatures)
		gt.B(t, ok).True()
		gt.Array(t, features).Equal([]string{"replay", "profiling"})

		eventually(t, func() bool {
			snap, err := repo.LegacyConfig().Snapshot(ctx)
			return err == nil && snap["features"] != nil
		})
	})

	t.Run("unknown key accepts any value", func(t *testing.T) {
		next, err := uc.SetValue(ctx, "sidebarWidth", float64(240))
		gt.NoError(t, err).Required()
		gt.Value(t, next["sidebarWidth"]).Equal(any(float64(240)))
	})

	t.Run("type mismatch", func(t *testing.T) {
		_, err := uc.SetValue(ctx, "clock24Hours", "yes")
		gt.Error(t, err).Is(usecase.ErrInvalidConfigValue)
	})
}

func TestConfigUseCase_DispatchTwiceEqualsOnce(t *testing.T) {
	ctx := context.Background()
	uc := startConfig(t, memory.New())

	action := model.SetConfigValue(model.KeyLanguage, "pt")
	once, err := uc.Dispatch(ctx, action)
	gt.NoError(t, err).Required()
	twice, err := uc.Dispatch(ctx, action)
	gt.NoError(t, err).Required()

	gt.Value(t, twice["language"]).Equal(once["language"])
	gt.Number(t, len(twice)).Equal(len(once))
}

func TestConfigUseCase_DispatchPanicIsReported(t *testing.T) {
	ctx := context.Background()
	uc := startConfig(t, memory.New())

	_, err := uc.Dispatch(ctx, foreignAction{ConfigAction: model.SetTheme(types.ThemeDark)})
	gt.Error(t, err).Is(usecase.ErrTransitionAborted)

	// the loop survives the panic
	next, err := uc.Dispatch(ctx, model.SetTheme(types.ThemeDark))
	gt.NoError(t, err).Required()
	gt.Value(t, next.Theme()).Equal(types.ThemeDark)
}

func TestConfigUseCase_DispatchCanceled(t *testing.T) {
	// no Start: nothing drains the loop
	uc := usecase.New(memory.New())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := uc.Config.Dispatch(ctx, model.SetTheme(types.ThemeDark))
	gt.Error(t, err).Is(context.DeadlineExceeded)
}

func TestBuildSetValueAction(t *testing.T) {
	testCases := []struct {
		name    string
		key     string
		value   any
		want    any
		wantErr bool
	}{
		{name: "theme string", key: "theme", value: "dark", want: types.ThemeDark},
		{name: "invalid theme", key: "theme", value: "blue", wantErr: true},
		{name: "language", key: "language", value: "ja", want: "ja"},
		{name: "language not string", key: "language", value: 1.0, wantErr: true},
		{name: "clock", key: "clock24Hours", value: true, want: true},
		{name: "features", key: "features", value: []any{"a"}, want: []string{"a"}},
		{name: "features with number", key: "features", value: []any{"a", 1.0}, wantErr: true},
		{name: "custom", key: "custom", value: map[string]any{"x": 1.0}, want: map[string]any{"x": 1.0}},
		{name: "empty key", key: "", value: "x", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			action, err := usecase.BuildSetValueAction(tc.key, tc.value)
			if tc.wantErr {
				gt.Error(t, err).Is(usecase.ErrInvalidConfigValue)
				return
			}
			gt.NoError(t, err).Required()
			gt.Value(t, action.Key).Equal(tc.key)
			gt.Value(t, action.Value).Equal(tc.want)
		})
	}
}
