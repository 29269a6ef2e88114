package usecase

import (
	"github.com/secmon-lab/vantage/pkg/domain/interfaces"
	"github.com/secmon-lab/vantage/pkg/domain/model"
	"github.com/secmon-lab/vantage/pkg/utils/eventloop"
)

type UseCases struct {
	repo     interfaces.Repository
	loop     *eventloop.Loop
	defaults model.ConfigRecord
	Config   *ConfigUseCase
	Field    *FieldUseCase
}

type Option func(*UseCases)

// WithConfigDefaults sets bootstrap values applied below the legacy snapshot
func WithConfigDefaults(defaults model.ConfigRecord) Option {
	return func(uc *UseCases) {
		uc.defaults = defaults
	}
}

// WithEventLoop replaces the event loop the config use case runs on
func WithEventLoop(loop *eventloop.Loop) Option {
	return func(uc *UseCases) {
		uc.loop = loop
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.loop == nil {
		uc.loop = eventloop.New()
	}

	var legacy interfaces.LegacyConfigStore
	if repo != nil {
		legacy = repo.LegacyConfig()
	}

	uc.Config = NewConfigUseCase(legacy, uc.loop, uc.defaults)
	uc.Field = NewFieldUseCase()

	return uc
}
