package types

import "github.com/m-mizutani/goerr/v2"

// Theme is the console color scheme
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ErrInvalidTheme is returned when a theme is neither light nor dark
var ErrInvalidTheme = goerr.New("invalid theme")

// Validate checks if the Theme is light or dark
func (t Theme) Validate() error {
	switch t {
	case ThemeLight, ThemeDark:
		return nil
	default:
		return goerr.Wrap(ErrInvalidTheme, "theme must be light or dark", goerr.V("theme", string(t)))
	}
}

// String returns the string representation of Theme
func (t Theme) String() string {
	return string(t)
}
