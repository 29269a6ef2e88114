package usecase

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for use case layer
var (
	// Config errors
	ErrInvalidConfigValue = goerr.New("invalid config value")
	ErrTransitionAborted  = goerr.New("config transition aborted")

	// Field errors
	ErrFieldNotFound   = goerr.New("field not found")
	ErrInvalidFieldSet = goerr.New("invalid field set")
	ErrInvalidQuery    = goerr.New("invalid dataset query")
)

// Context keys for error values
const (
	ConfigKeyKey = "config_key"
	FieldKeyKey  = "field_key"
)
