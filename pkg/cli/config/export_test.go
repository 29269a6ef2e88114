package config

// NewLegacyStoreForTest creates a LegacyStore config for testing purposes
func NewLegacyStoreForTest(backend, scope, filePath string) *LegacyStore {
	return &LegacyStore{
		backend:  backend,
		scope:    scope,
		filePath: filePath,
	}
}

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}

// NewBootstrapForTest creates a Bootstrap config for testing purposes
func NewBootstrapForTest(path string) *Bootstrap {
	return &Bootstrap{path: path}
}

// Redactor is exported for testing
var Redactor = redactor

// NewSentryForTest creates a Sentry config for testing purposes
func NewSentryForTest(dsn, env string) *Sentry {
	return &Sentry{dsn: dsn, env: env}
}
