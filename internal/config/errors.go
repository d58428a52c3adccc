package config

import "errors"

var (
	// ErrConfigNotFound indicates the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrConfigExists indicates Init would overwrite an existing file.
	ErrConfigExists = errors.New("configuration file already exists")

	// ErrUnsupportedVersion indicates a schema version this build cannot read.
	ErrUnsupportedVersion = errors.New("unsupported configuration version")
)
