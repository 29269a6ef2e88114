// Package file keeps the legacy configuration in a local TOML or YAML file.
//
// Writes rewrite the whole file. Edits made to the file by other processes
// are picked up with fsnotify and reported to subscribers as patches.
package file

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vantage/pkg/domain/interfaces"
)

var (
	ErrUnsupportedFormat = goerr.New("unsupported legacy config file format")
	ErrUnsupportedValue  = goerr.New("value cannot be stored in legacy config file")
)

type File struct {
	legacyConfig *legacyConfigStore
}

var _ interfaces.Repository = &File{}

// New opens path as the legacy configuration file. The format follows the
// extension: .toml, .yaml or .yml. A missing file is created on first write.
func New(path string) (*File, error) {
	store, err := newLegacyConfigStore(path)
	if err != nil {
		return nil, err
	}
	return &File{legacyConfig: store}, nil
}

func (f *File) LegacyConfig() interfaces.LegacyConfigStore {
	return f.legacyConfig
}

func (f *File) Close() error {
	return nil
}
