package file

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vantage/pkg/domain/interfaces"
	"github.com/secmon-lab/vantage/pkg/domain/model"
	"github.com/secmon-lab/vantage/pkg/domain/types"
	"github.com/secmon-lab/vantage/pkg/utils/async"
	"github.com/secmon-lab/vantage/pkg/utils/logging"
)

// debounceDelay collapses the burst of events editors produce on save
const debounceDelay = 100 * time.Millisecond

type legacyConfigStore struct {
	path  string
	codec codec

	mu          sync.Mutex
	known       model.ConfigRecord
	subscribers map[uuid.UUID]interfaces.LegacyConfigHandler
}

var _ interfaces.LegacyConfigStore = &legacyConfigStore{}

func newLegacyConfigStore(path string) (*legacyConfigStore, error) {
	c, err := codecFor(path)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve legacy config path", goerr.V("path", path))
	}

	s := &legacyConfigStore{
		path:        abs,
		codec:       c,
		subscribers: make(map[uuid.UUID]interfaces.LegacyConfigHandler),
	}

	known, err := s.read()
	if err != nil {
		return nil, err
	}
	s.known = known
	return s, nil
}

func (s *legacyConfigStore) read() (model.ConfigRecord, error) {
	// #nosec G304 - path is provided by CLI argument
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.ConfigRecord{}, nil
		}
		return nil, goerr.Wrap(err, "failed to read legacy config file", goerr.V("path", s.path))
	}
	rec, err := s.codec.decode(data)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid legacy config file", goerr.V("path", s.path))
	}
	return rec, nil
}

// write replaces the file with rec and returns rec as it reads back, so
// that later diffs compare decoded values with decoded values
func (s *legacyConfigStore) write(rec model.ConfigRecord) (model.ConfigRecord, error) {
	data, err := s.codec.encode(rec)
	if err != nil {
		return nil, err
	}
	written, err := s.codec.decode(data)
	if err != nil {
		return nil, err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return nil, goerr.Wrap(err, "failed to write legacy config file", goerr.V("path", tmp))
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return nil, goerr.Wrap(err, "failed to replace legacy config file", goerr.V("path", s.path))
	}
	return written, nil
}

func (s *legacyConfigStore) Set(ctx context.Context, key string, value any) error {
	s.mu.Lock()
	written, err := s.write(s.known.Merge(model.ConfigRecord{key: value}))
	if err != nil {
		s.mu.Unlock()
		return goerr.Wrap(err, "failed to set legacy config value", goerr.V("key", key))
	}
	s.known = written
	s.mu.Unlock()

	s.notify(ctx, model.ConfigRecord{key: written[key]})
	return nil
}

func (s *legacyConfigStore) UpdateTheme(ctx context.Context, theme types.Theme) error {
	return s.Set(ctx, model.KeyTheme.Name(), string(theme))
}

func (s *legacyConfigStore) Snapshot(ctx context.Context) (model.ConfigRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.known.Clone(), nil
}

// Subscribe registers handler and watches the file's directory for external
// edits until the returned function is called or ctx is done.
func (s *legacyConfigStore) Subscribe(ctx context.Context, handler interfaces.LegacyConfigHandler) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create file watcher")
	}
	// Watch the directory: editors replace the file rather than write to it
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		_ = watcher.Close()
		return nil, goerr.Wrap(err, "failed to watch legacy config directory", goerr.V("path", s.path))
	}

	id := uuid.New()
	s.mu.Lock()
	s.subscribers[id] = handler
	s.mu.Unlock()

	cancel := async.DispatchUntil(ctx, "legacy config file watcher", func(ctx context.Context) error {
		defer func() {
			if err := watcher.Close(); err != nil {
				logging.From(ctx).Warn("failed to close file watcher", logging.ErrAttr(err))
			}
		}()
		return s.watch(ctx, watcher)
	})

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
		cancel()
	}, nil
}

func (s *legacyConfigStore) watch(ctx context.Context, watcher *fsnotify.Watcher) error {
	var timer *time.Timer
	reload := make(chan struct{}, 1)

	// Edits made before the watcher was added
	s.reload(ctx)

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != s.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceDelay, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})

		case <-reload:
			s.reload(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.From(ctx).Warn("legacy config watcher error", logging.ErrAttr(err), "path", s.path)
		}
	}
}

// reload re-reads the file and reports keys that differ from the last
// content this store wrote or read. Our own writes therefore do not echo.
func (s *legacyConfigStore) reload(ctx context.Context) {
	s.mu.Lock()
	rec, err := s.read()
	if err != nil {
		s.mu.Unlock()
		logging.From(ctx).Warn("ignoring unreadable legacy config file", logging.ErrAttr(err), "path", s.path)
		return
	}

	patch := model.ConfigRecord{}
	for k, v := range rec {
		if old, ok := s.known[k]; !ok || !reflect.DeepEqual(old, v) {
			patch[k] = v
		}
	}
	s.known = rec
	s.mu.Unlock()

	if len(patch) > 0 {
		logging.From(ctx).Info("legacy config file changed", "path", s.path, "keys", len(patch))
		s.notify(ctx, patch)
	}
}

func (s *legacyConfigStore) notify(ctx context.Context, patch model.ConfigRecord) {
	s.mu.Lock()
	handlers := make([]interfaces.LegacyConfigHandler, 0, len(s.subscribers))
	for _, h := range s.subscribers {
		handlers = append(handlers, h)
	}
	s.mu.Unlock()

	for _, h := range handlers {
		h(ctx, patch.Clone())
	}
}
