package types

import "fmt"

// ConfigError indicates invalid generation configuration: a malformed
// fallback token, an unsupported separator, or an owner that is not a usable
// document. Configuration errors are raised eagerly at construction time,
// never deferred to first use.
type ConfigError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// TypeMismatchError indicates that a supplied value is not the kind of
// document or entity it was claimed to be.
type TypeMismatchError struct {
	Expected string
	Got      interface{}
}

// Error implements the error interface
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("expected %s, got %T", e.Expected, e.Got)
}
