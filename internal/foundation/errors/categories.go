package errors

import "maps"

// ErrorCategory classifies a failure for exit-code mapping and log routing.
type ErrorCategory string

const (
	// User input problems.
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Content and filesystem problems.
	CategoryFileSystem  ErrorCategory = "filesystem"
	CategoryFrontmatter ErrorCategory = "frontmatter"

	// Pipeline and process problems.
	CategoryBuild    ErrorCategory = "build"
	CategoryRuntime  ErrorCategory = "runtime"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how far an error propagates.
type ErrorSeverity string

const (
	SeverityFatal ErrorSeverity = "fatal" // aborts the run
	SeverityError ErrorSeverity = "error" // fails the current operation
)

// ErrorContext holds structured key/value details for an error.
type ErrorContext map[string]any

// Set stores value under key, allocating the map when needed.
func (c ErrorContext) Set(key string, value any) ErrorContext {
	if c == nil {
		c = make(ErrorContext)
	}
	c[key] = value
	return c
}

// Get returns the value stored under key.
func (c ErrorContext) Get(key string) (any, bool) {
	v, ok := c[key]
	return v, ok
}

// GetString returns the value stored under key when it is a string.
func (c ErrorContext) GetString(key string) (string, bool) {
	v, ok := c.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Merge returns a new context holding both sets of values; other wins on
// conflicting keys.
func (c ErrorContext) Merge(other ErrorContext) ErrorContext {
	if len(c) == 0 {
		return other
	}
	if len(other) == 0 {
		return c
	}
	out := make(ErrorContext, len(c)+len(other))
	maps.Copy(out, c)
	maps.Copy(out, other)
	return out
}
