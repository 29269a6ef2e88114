package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vantage/pkg/domain/model"
	"github.com/secmon-lab/vantage/pkg/domain/types"
)

// Sentinel errors for configuration validation
var (
	ErrConfigNotFound = goerr.New("configuration file not found")
	ErrInvalidConfig  = goerr.New("invalid configuration")
)

// Context keys for error values
const (
	ConfigPathKey = "config_path"
	ConfigKeyKey  = "config_key"
)

func themeOf(s string) (types.Theme, error) {
	theme := types.Theme(s)
	return theme, theme.Validate()
}

func isWellKnownKey(key string) bool {
	switch key {
	case model.KeyTheme.Name(), model.KeyLanguage.Name(), model.KeyTimezone.Name(),
		model.KeyClock24Hours.Name(), model.KeyFeatures.Name(), model.KeyDSN.Name():
		return true
	}
	return false
}
