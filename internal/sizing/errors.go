package sizing

import "errors"

var (
	// ErrUnsupportedAutocompleteType is returned for an autocomplete_type
	// outside edgeGram/nGram.
	ErrUnsupportedAutocompleteType = errors.New("unsupported autocomplete type")

	// ErrUnknownFieldType is returned for a field_type outside the closed
	// variant set. Unknown fields fail the whole estimate rather than
	// being skipped.
	ErrUnknownFieldType = errors.New("unknown field type")

	// ErrMissingConfiguration is returned when an Embedded field carries no
	// embedded_sizing payload. The walker never guesses a nested schema.
	ErrMissingConfiguration = errors.New("missing configuration")

	// ErrInvalidGramRange is returned when min_grams exceeds max_grams.
	ErrInvalidGramRange = errors.New("min_grams exceeds max_grams")

	// ErrSchemaTooDeep is returned when embedded schemas nest beyond the
	// depth guard.
	ErrSchemaTooDeep = errors.New("embedded schema nested too deeply")
)
