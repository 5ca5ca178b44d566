package i18n

import "errors"

// Loading errors keep the underlying cause joined so callers can inspect both.
var (
	ErrNilAdapter = errors.New("translation adapter is nil")

	// JSON operations
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// File and directory operations
	ErrLoadingCancelled       = errors.New("loading translations cancelled")
	ErrFailedToReadFile       = errors.New("failed to read translation file")
	ErrFailedToParseFile      = errors.New("failed to parse translation file")
	ErrEmptyTranslationFile   = errors.New("translation file is empty")
	ErrFailedToReadDirectory  = errors.New("failed to read translation directory")
	ErrNoTranslationFiles     = errors.New("no translation files found")
	ErrUnsupportedFileType    = errors.New("unsupported translation file type")
	ErrInvalidTranslationTree = errors.New("invalid translation structure")
)

// Catalog construction errors. NewCatalog reports every problem it finds at
// once, joined with errors.Join.
var (
	ErrInvalidLanguage        = errors.New("invalid language tag")
	ErrDefaultLanguageMissing = errors.New("default language has no templates")
	ErrMissingTemplate        = errors.New("missing message template")
	ErrInvalidTemplate        = errors.New("invalid message template")
	ErrUnknownPlaceholder     = errors.New("unknown placeholder")
	ErrMissingOtherBranch     = errors.New("plural template has no 'other' branch")
	ErrInvalidPluralCategory  = errors.New("invalid plural category")
	ErrInvalidPluralSelector  = errors.New("invalid plural selector")
	ErrKindCodeCollision      = errors.New("custom kind code collides with a built-in kind")
)

// ErrMissingParameter is returned by Resolve when a template references a
// parameter the kind does not carry.
var ErrMissingParameter = errors.New("missing template parameter")
