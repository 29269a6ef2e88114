package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/vantage/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// AppConfig is the content of the bootstrap TOML file
type AppConfig struct {
	Defaults Defaults `toml:"defaults"`
}

// Defaults are the settings used before the legacy snapshot is applied
type Defaults struct {
	Theme        string         `toml:"theme"`
	Language     string         `toml:"language"`
	Timezone     string         `toml:"timezone"`
	Clock24Hours *bool          `toml:"clock24Hours"`
	Features     []string       `toml:"features"`
	DSN          string         `toml:"dsn" masq:"secret"`
	Extra        map[string]any `toml:"extra"`
}

// Validate checks if the Defaults are valid
func (d *Defaults) Validate() error {
	if d.Theme != "" {
		if _, err := themeOf(d.Theme); err != nil {
			return goerr.Wrap(ErrInvalidConfig, "invalid default theme", goerr.V("theme", d.Theme))
		}
	}

	seen := make(map[string]bool)
	for _, f := range d.Features {
		if f == "" {
			return goerr.Wrap(ErrInvalidConfig, "feature name is empty")
		}
		if seen[f] {
			return goerr.Wrap(ErrInvalidConfig, "duplicate feature", goerr.V("feature", f))
		}
		seen[f] = true
	}

	for key := range d.Extra {
		if isWellKnownKey(key) {
			return goerr.Wrap(ErrInvalidConfig, "well-known key in extra table", goerr.V(ConfigKeyKey, key))
		}
	}

	return nil
}

// Record converts the defaults into a ConfigRecord holding only the keys
// that were set
func (d *Defaults) Record() model.ConfigRecord {
	rec := model.ConfigRecord{}
	for k, v := range d.Extra {
		rec[k] = v
	}
	if d.Theme != "" {
		theme, _ := themeOf(d.Theme)
		rec[model.KeyTheme.Name()] = theme
	}
	if d.Language != "" {
		rec[model.KeyLanguage.Name()] = d.Language
	}
	if d.Timezone != "" {
		rec[model.KeyTimezone.Name()] = d.Timezone
	}
	if d.Clock24Hours != nil {
		rec[model.KeyClock24Hours.Name()] = *d.Clock24Hours
	}
	if d.Features != nil {
		rec[model.KeyFeatures.Name()] = d.Features
	}
	if d.DSN != "" {
		rec[model.KeyDSN.Name()] = d.DSN
	}
	return rec
}

// Validate checks if the AppConfig is valid
func (a *AppConfig) Validate() error {
	if err := a.Defaults.Validate(); err != nil {
		return goerr.Wrap(err, "invalid defaults")
	}
	return nil
}

// LoadAppConfiguration loads the bootstrap configuration from a TOML file
func LoadAppConfiguration(path string) (*AppConfig, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(ErrConfigNotFound, "bootstrap file does not exist", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V(ConfigPathKey, path))
	}

	var config AppConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "failed to parse TOML config",
			goerr.V(ConfigPathKey, path), goerr.V("error", err.Error()))
	}

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "config validation failed", goerr.V(ConfigPathKey, path))
	}

	return &config, nil
}

// Bootstrap holds the CLI flag of the bootstrap file
type Bootstrap struct {
	path string
}

// Flags returns CLI flags for the bootstrap file
func (b *Bootstrap) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Bootstrap TOML file with a [defaults] table",
			Sources:     cli.EnvVars("VANTAGE_CONFIG"),
			Destination: &b.path,
		},
	}
}

// Configure loads the bootstrap defaults. Without a file it returns an
// empty record.
func (b *Bootstrap) Configure() (model.ConfigRecord, error) {
	if b.path == "" {
		return model.ConfigRecord{}, nil
	}

	cfg, err := LoadAppConfiguration(b.path)
	if err != nil {
		return nil, err
	}
	return cfg.Defaults.Record(), nil
}
