package simpleval

import "errors"

var (
	// ErrLoadingConfig is returned when the environment cannot be parsed into Config.
	ErrLoadingConfig = errors.New("failed to load validator config")

	// ErrInvalidConfig is returned when a Config field holds an unusable value.
	ErrInvalidConfig = errors.New("invalid validator config")

	// ErrLoadingMessages is returned when the message catalog cannot be loaded.
	ErrLoadingMessages = errors.New("failed to load message catalog")

	// ErrLanguageNotFound is returned when the catalog has no messages for the configured language.
	ErrLanguageNotFound = errors.New("no messages for language")
)
