package types

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

// ScopeID identifies one legacy configuration document, usually an
// organization slug
type ScopeID string

// DefaultScopeID is used when no scope is configured
const DefaultScopeID ScopeID = "default"

var idPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Validate checks if the ScopeID is valid
func (s ScopeID) Validate() error {
	if s == "" {
		return goerr.New("scope ID cannot be empty")
	}
	if !idPattern.MatchString(string(s)) {
		return goerr.New("scope ID must be lowercase alphanumeric with hyphens", goerr.V("scope", s))
	}
	return nil
}

// String returns the string representation of ScopeID
func (s ScopeID) String() string {
	return string(s)
}
