package i18n

import "errors"

var (
	ErrNilAdapter                = errors.New("translation adapter is nil")
	ErrLanguageNotSupported      = errors.New("language not supported")
	ErrYAMLParsingCancelled      = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML         = errors.New("failed to parse YAML content")
	ErrInvalidTranslationFile    = errors.New("invalid translation file")
	ErrLoadingTranslationsCancel = errors.New("loading translations cancelled")
	ErrFailedToReadDirectory     = errors.New("failed to read translations directory")
	ErrFailedToReadFile          = errors.New("failed to read translation file")
	ErrNoTranslationsFound       = errors.New("no translation files found")
)
