package nav

import "errors"

var (
	// ErrRootNotFound is returned when the documentation root cannot be listed.
	ErrRootNotFound = errors.New("documentation root not found")
	// ErrGroupRead is returned when a group directory cannot be listed.
	ErrGroupRead = errors.New("failed to read group directory")
)
