package file

import (
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/vantage/pkg/domain/model"
	"gopkg.in/yaml.v3"
)

type codec interface {
	decode(data []byte) (model.ConfigRecord, error)
	encode(rec model.ConfigRecord) ([]byte, error)
}

func codecFor(path string) (codec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return tomlCodec{}, nil
	case ".yaml", ".yml":
		return yamlCodec{}, nil
	default:
		return nil, goerr.Wrap(ErrUnsupportedFormat, "legacy config file must be .toml, .yaml or .yml", goerr.V("path", path))
	}
}

type tomlCodec struct{}

func (tomlCodec) decode(data []byte) (model.ConfigRecord, error) {
	rec := model.ConfigRecord{}
	if err := toml.Unmarshal(data, &rec); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML legacy config")
	}
	return rec, nil
}

func (tomlCodec) encode(rec model.ConfigRecord) ([]byte, error) {
	// TOML has no null; go-toml would silently omit the key
	for key, value := range rec {
		if hasNil(value) {
			return nil, goerr.Wrap(ErrUnsupportedValue, "TOML cannot hold null values", goerr.V("key", key))
		}
	}

	data, err := toml.Marshal(map[string]any(rec))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode TOML legacy config")
	}
	return data, nil
}

type yamlCodec struct{}

func (yamlCodec) decode(data []byte) (model.ConfigRecord, error) {
	rec := model.ConfigRecord{}
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML legacy config")
	}
	return rec, nil
}

func (yamlCodec) encode(rec model.ConfigRecord) ([]byte, error) {
	data, err := yaml.Marshal(map[string]any(rec))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode YAML legacy config")
	}
	return data, nil
}

func hasNil(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case map[string]any:
		for _, item := range t {
			if hasNil(item) {
				return true
			}
		}
	case []any:
		for _, item := range t {
			if hasNil(item) {
				return true
			}
		}
	}
	return false
}
