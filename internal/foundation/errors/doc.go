// Package errors provides the classified error type used for user-facing
// failures in docnav.
//
// A ClassifiedError carries a category (what kind of failure), a severity and
// free-form context. Package-level sentinel errors stay plain `errors.New`
// values; they are wrapped into a ClassifiedError at the boundary where the
// failure becomes a command result.
//
// Example:
//
//	err := errors.WrapError(cause, errors.CategoryFileSystem, "read group directory").
//		WithContext("group", name).
//		Build()
package errors
