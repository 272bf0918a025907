package sizing

import "fmt"

// maxSchemaDepth bounds recursion over embedded schemas. Real schemas nest
// two or three levels; anything past this is malformed input.
const maxSchemaDepth = 32

// storageBytes walks the field tree and returns the raw index bytes for
// numDocs documents. Embedded schemas are sized once for their own document
// count, then scaled by the parent's documents (embedded storage is
// per-parent-document). Vector fields are sized by the vector estimator,
// not here.
func storageBytes(numDocs int, fields []Field, depth int) (float64, error) {
	if depth > maxSchemaDepth {
		return 0, fmt.Errorf("%w: depth %d", ErrSchemaTooDeep, depth)
	}

	var total float64
	for i, f := range fields {
		count := float64(f.count())

		switch f.FieldType {
		case FieldTypeString:
			total += float64(f.Size) * f.storageMultiplier() * float64(numDocs) * count

		case FieldTypeAutocomplete:
			chars, err := autocompleteChars(f)
			if err != nil {
				return 0, fmt.Errorf("field %d: %w", i, err)
			}
			total += float64(chars) * float64(numDocs) * count

		case FieldTypeEmbedded:
			if f.EmbeddedSizing == nil {
				return 0, fmt.Errorf("field %d: embedded_sizing: %w", i, ErrMissingConfiguration)
			}
			nested, err := storageBytes(f.EmbeddedSizing.numDocuments(), f.EmbeddedSizing.Fields, depth+1)
			if err != nil {
				return 0, fmt.Errorf("field %d: %w", i, err)
			}
			total += nested * float64(numDocs) * count

		case FieldTypeVector:
			// Counted by the vector estimator.

		default:
			return 0, fmt.Errorf("field %d: %w: %q", i, ErrUnknownFieldType, f.FieldType)
		}
	}

	return total, nil
}

// expandedDocCount returns how many extra documents the embedded fields fan
// out to. Each embedded field contributes its own documents per parent
// document, plus whatever its own embedded fields fan out to below that,
// scaled by the field's count.
func expandedDocCount(numDocs int, fields []Field, depth int) (int, error) {
	if depth > maxSchemaDepth {
		return 0, fmt.Errorf("%w: depth %d", ErrSchemaTooDeep, depth)
	}

	added := 0
	for i, f := range fields {
		switch f.FieldType {
		case FieldTypeString, FieldTypeAutocomplete, FieldTypeVector:
			// Only embedded fields expand the document count.

		case FieldTypeEmbedded:
			if f.EmbeddedSizing == nil {
				return 0, fmt.Errorf("field %d: embedded_sizing: %w", i, ErrMissingConfiguration)
			}
			direct := f.EmbeddedSizing.numDocuments() * numDocs
			nested, err := expandedDocCount(direct, f.EmbeddedSizing.Fields, depth+1)
			if err != nil {
				return 0, fmt.Errorf("field %d: %w", i, err)
			}
			added += (direct + nested) * f.count()

		default:
			return 0, fmt.Errorf("field %d: %w: %q", i, ErrUnknownFieldType, f.FieldType)
		}
	}

	return added, nil
}
