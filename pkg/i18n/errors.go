package i18n

import (
	"errors"
	"fmt"
)

var (
	// Parsing
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")
	ErrInvalidStructure     = errors.New("invalid translation structure")

	// Loading
	ErrLoadingCancelled  = errors.New("loading translations cancelled")
	ErrFailedToReadDir   = errors.New("failed to read translations directory")
	ErrFailedToReadFile  = errors.New("failed to read translation file")
	ErrFailedToParseFile = errors.New("failed to parse translation file")
	ErrNoTranslations    = errors.New("no translations found")

	// Catalog
	ErrInvalidLanguage        = errors.New("invalid language tag")
	ErrDefaultLanguageMissing = errors.New("default language has no translations")
)

// StructureError reports a top-level entry that is not a map of translations.
type StructureError struct {
	Language string
	Got      any
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("invalid translations for language %q: expected map, got %T", e.Language, e.Got)
}

func (e *StructureError) Unwrap() error {
	return ErrInvalidStructure
}
