package model

import "github.com/secmon-lab/vantage/pkg/domain/types"

// ConfigActionType names a ConfigAction variant
type ConfigActionType string

const (
	ConfigActionPatch          ConfigActionType = "patch"
	ConfigActionSetTheme       ConfigActionType = "set_theme"
	ConfigActionSetConfigValue ConfigActionType = "set_config_value"
)

// ConfigAction is the closed set of transitions a ConfigRecord accepts:
// PatchAction, SetThemeAction and SetConfigValueAction.
type ConfigAction interface {
	Type() ConfigActionType
	configAction()
}

// PatchAction merges values reported by the legacy store's own change
// notifications. It is never mirrored back to the legacy store.
type PatchAction struct {
	Values ConfigRecord
}

func (PatchAction) Type() ConfigActionType { return ConfigActionPatch }
func (PatchAction) configAction()          {}

// SetThemeAction switches the console theme
type SetThemeAction struct {
	Theme types.Theme
}

func (SetThemeAction) Type() ConfigActionType { return ConfigActionSetTheme }
func (SetThemeAction) configAction()          {}

// SetConfigValueAction replaces one setting. Build it with SetConfigValue so
// that the key and value types match.
type SetConfigValueAction struct {
	Key   string
	Value any
}

func (SetConfigValueAction) Type() ConfigActionType { return ConfigActionSetConfigValue }
func (SetConfigValueAction) configAction()          {}

// Patch builds a PatchAction
func Patch(values ConfigRecord) PatchAction {
	return PatchAction{Values: values}
}

// SetTheme builds a SetThemeAction
func SetTheme(theme types.Theme) SetThemeAction {
	return SetThemeAction{Theme: theme}
}

// SetConfigValue builds a SetConfigValueAction for a typed key
func SetConfigValue[T any](key ConfigKey[T], value T) SetConfigValueAction {
	return SetConfigValueAction{Key: key.Name(), Value: value}
}
