// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

// ConfigError reports a structural configuration problem: a required
// section or key is absent, or an enumerated method name is not
// recognized. It is always fatal to the calling engine and is propagated
// unwrapped to the caller.
type ConfigError struct {
	// Key is the dotted configuration path at fault
	// (e.g. "evidence_strength.frequency_aggregation").
	Key string

	// Reason describes what is wrong with the key.
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error at %q: %s", e.Key, e.Reason)
}

// NewConfigError builds a ConfigError for the given dotted key.
func NewConfigError(key, format string, args ...any) *ConfigError {
	return &ConfigError{Key: key, Reason: fmt.Sprintf(format, args...)}
}

// CalcError wraps any non-configuration failure that occurs while
// computing a score. The orchestrator does not retry these.
type CalcError struct {
	// Stage names the calculation that failed
	// ("evidence", "sentiment", "trend", "assembly").
	Stage string

	// Err is the underlying failure.
	Err error
}

func (e *CalcError) Error() string {
	return fmt.Sprintf("%s calculation failed: %v", e.Stage, e.Err)
}

func (e *CalcError) Unwrap() error { return e.Err }

// Violation is one field-level contract breach found by the validator.
type Violation struct {
	// Field is the JSON path of the offending field
	// (e.g. "relationship_mentions[2].year").
	Field string

	// Reason describes the breach.
	Reason string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Reason)
}

// ValidationError reports every contract breach found in an input bundle
// or an assembled result, not just the first one.
type ValidationError struct {
	// Subject says which contract was violated ("input" or "output").
	Subject string

	// Violations lists each field-level breach.
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("%s validation failed: %s", e.Subject, strings.Join(parts, "; "))
}
