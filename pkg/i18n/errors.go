package i18n

import "errors"

var (
	ErrNilAdapter         = errors.New("i18n: adapter is nil")
	ErrNoTranslations     = errors.New("i18n: no translations loaded")
	ErrFailedToParseYAML  = errors.New("i18n: failed to parse YAML content")
	ErrInvalidStructure   = errors.New("i18n: top-level keys must map language codes to trees")
	ErrFailedToReadDir    = errors.New("i18n: failed to read translations directory")
	ErrFailedToReadFile   = errors.New("i18n: failed to read translation file")
	ErrLoadingCancelled   = errors.New("i18n: loading translations cancelled")
	ErrInvalidLanguageTag = errors.New("i18n: invalid language tag")
)
