package model

import (
	"maps"

	"github.com/secmon-lab/vantage/pkg/domain/types"
)

// ConfigRecord is the open-ended set of console-wide settings. Values are
// heterogeneous; well-known keys are declared as ConfigKey below.
type ConfigRecord map[string]any

// Clone returns a shallow copy of the record. A nil record clones to an
// empty one.
func (r ConfigRecord) Clone() ConfigRecord {
	if r == nil {
		return ConfigRecord{}
	}
	return maps.Clone(r)
}

// Merge returns a shallow copy of r with every key of patch overwritten
func (r ConfigRecord) Merge(patch ConfigRecord) ConfigRecord {
	merged := r.Clone()
	maps.Copy(merged, patch)
	return merged
}

// Theme returns the theme stored in the record, or ThemeLight when unset.
// Legacy stores hand the theme back as a plain string.
func (r ConfigRecord) Theme() types.Theme {
	switch v := r[KeyTheme.Name()].(type) {
	case types.Theme:
		return v
	case string:
		return types.Theme(v)
	default:
		return types.ThemeLight
	}
}

// ConfigKey is the name of a setting whose values have type T
type ConfigKey[T any] string

// Name returns the key as stored in a ConfigRecord
func (k ConfigKey[T]) Name() string {
	return string(k)
}

// Well-known settings
const (
	KeyTheme        ConfigKey[types.Theme] = "theme"
	KeyLanguage     ConfigKey[string]      = "language"
	KeyTimezone     ConfigKey[string]      = "timezone"
	KeyClock24Hours ConfigKey[bool]        = "clock24Hours"
	KeyFeatures     ConfigKey[[]string]    = "features"
	KeyDSN          ConfigKey[string]      = "dsn"
)

// Get returns the value stored under key if it is present and has type T
func Get[T any](r ConfigRecord, key ConfigKey[T]) (T, bool) {
	v, ok := r[key.Name()].(T)
	return v, ok
}

// DefaultConfigRecord is the record the console starts from before any
// bootstrap file or legacy snapshot is applied
func DefaultConfigRecord() ConfigRecord {
	return ConfigRecord{
		KeyTheme.Name():        types.ThemeLight,
		KeyLanguage.Name():     "en",
		KeyTimezone.Name():     "UTC",
		KeyClock24Hours.Name(): false,
		KeyFeatures.Name():     []string{},
	}
}
