package i18n

import "errors"

var (
	// Parsing
	ErrParsingCancelled   = errors.New("catalog parsing cancelled")
	ErrFailedToParseJSON  = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML  = errors.New("failed to parse YAML content")
	ErrInvalidStructure   = errors.New("invalid catalog structure")
	ErrUnsupportedFormat  = errors.New("unsupported catalog format")
	ErrInvalidLanguageTag = errors.New("invalid language tag")

	// Loading
	ErrLoadingCancelled = errors.New("loading catalog cancelled")
	ErrFailedToReadFile = errors.New("failed to read catalog file")
	ErrNoCatalogFiles   = errors.New("no catalog files found")
	ErrNilAdapter       = errors.New("catalog adapter is nil")
)
