package memory

import (
	"github.com/secmon-lab/vantage/pkg/domain/interfaces"
	"github.com/secmon-lab/vantage/pkg/domain/model"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

type Memory struct {
	legacyConfig *legacyConfigStore
}

var _ interfaces.Repository = &Memory{}

type Option func(*Memory)

// WithLegacyConfig seeds the legacy configuration store
func WithLegacyConfig(values model.ConfigRecord) Option {
	return func(m *Memory) {
		m.legacyConfig = newLegacyConfigStore(values)
	}
}

func New(opts ...Option) *Memory {
	m := &Memory{
		legacyConfig: newLegacyConfigStore(nil),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Memory) LegacyConfig() interfaces.LegacyConfigStore {
	return m.legacyConfig
}

func (m *Memory) Close() error {
	return nil
}
