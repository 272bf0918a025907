package sizing

import (
	"errors"
	"math"
	"testing"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func almostEqual(a, b float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) < 1e-9*scale
}

func TestStorageBytes_StringField(t *testing.T) {
	fields := []Field{
		{FieldType: FieldTypeString, Size: 150, Count: 2},
	}

	got, err := storageBytes(1000, fields, 0)
	if err != nil {
		t.Fatalf("storageBytes returned error: %v", err)
	}

	want := 150 * defaultStorageMultiplier * 1000 * 2
	if !almostEqual(got, want) {
		t.Errorf("storage = %f, want %f", got, want)
	}
}

func TestStorageBytes_StorageMultiplierOverride(t *testing.T) {
	fields := []Field{
		{FieldType: FieldTypeString, Size: 100, StorageMultiplier: 2.0},
	}

	got, err := storageBytes(10, fields, 0)
	if err != nil {
		t.Fatalf("storageBytes returned error: %v", err)
	}

	if !almostEqual(got, 2000) {
		t.Errorf("storage = %f, want 2000", got)
	}
}

func TestStorageBytes_EmbeddedTwoLevels(t *testing.T) {
	fields := []Field{
		{
			FieldType: FieldTypeEmbedded,
			Count:     1,
			EmbeddedSizing: &SchemaConfig{
				NumDocuments: intPtr(5),
				Fields: []Field{
					{FieldType: FieldTypeString, Size: 50},
				},
			},
		},
	}

	got, err := storageBytes(10, fields, 0)
	if err != nil {
		t.Fatalf("storageBytes returned error: %v", err)
	}

	// The nested schema is sized for its own 5 documents, then scaled by
	// the 10 parent documents.
	want := 10 * 1 * (5 * 50 * defaultStorageMultiplier)
	if !almostEqual(got, want) {
		t.Errorf("embedded storage = %f, want %f", got, want)
	}

	docs, err := expandedDocCount(10, fields, 0)
	if err != nil {
		t.Fatalf("expandedDocCount returned error: %v", err)
	}
	if docs != 50 {
		t.Errorf("expanded docs = %d, want 50", docs)
	}
}

func TestExpandedDocCount_ThreeLevels(t *testing.T) {
	fields := []Field{
		{
			FieldType: FieldTypeEmbedded,
			EmbeddedSizing: &SchemaConfig{
				NumDocuments: intPtr(5),
				Fields: []Field{
					{
						FieldType: FieldTypeEmbedded,
						EmbeddedSizing: &SchemaConfig{
							NumDocuments: intPtr(3),
							Fields:       []Field{{FieldType: FieldTypeString, Size: 10}},
						},
					},
				},
			},
		},
	}

	got, err := expandedDocCount(10, fields, 0)
	if err != nil {
		t.Fatalf("expandedDocCount returned error: %v", err)
	}

	// Level one fans out to 5*10=50 documents; level two adds 3 children
	// for each of those, 150 more.
	if got != 200 {
		t.Errorf("expanded docs = %d, want 200", got)
	}
}

func TestStorageBytes_VectorFieldIgnored(t *testing.T) {
	fields := []Field{
		{FieldType: FieldTypeVector, Dimensions: 1536},
		{FieldType: FieldTypeString, Size: 10},
	}

	got, err := storageBytes(100, fields, 0)
	if err != nil {
		t.Fatalf("storageBytes returned error: %v", err)
	}

	want := 10 * defaultStorageMultiplier * 100
	if !almostEqual(got, want) {
		t.Errorf("storage = %f, want %f (vector field must not contribute)", got, want)
	}
}

func TestStorageBytes_UnknownFieldType(t *testing.T) {
	fields := []Field{
		{FieldType: "Geo"},
	}

	_, err := storageBytes(100, fields, 0)
	if err == nil {
		t.Fatal("expected error for unknown field type")
	}
	if !errors.Is(err, ErrUnknownFieldType) {
		t.Errorf("error = %v, want ErrUnknownFieldType", err)
	}

	_, err = expandedDocCount(100, fields, 0)
	if !errors.Is(err, ErrUnknownFieldType) {
		t.Errorf("expandedDocCount error = %v, want ErrUnknownFieldType", err)
	}
}

func TestStorageBytes_MissingEmbeddedSizing(t *testing.T) {
	fields := []Field{
		{FieldType: FieldTypeEmbedded},
	}

	_, err := storageBytes(100, fields, 0)
	if !errors.Is(err, ErrMissingConfiguration) {
		t.Errorf("storageBytes error = %v, want ErrMissingConfiguration", err)
	}

	_, err = expandedDocCount(100, fields, 0)
	if !errors.Is(err, ErrMissingConfiguration) {
		t.Errorf("expandedDocCount error = %v, want ErrMissingConfiguration", err)
	}
}

func TestStorageBytes_DepthGuard(t *testing.T) {
	// Build a chain nested past the guard.
	inner := []Field{{FieldType: FieldTypeString, Size: 1}}
	for i := 0; i < maxSchemaDepth+2; i++ {
		inner = []Field{
			{
				FieldType: FieldTypeEmbedded,
				EmbeddedSizing: &SchemaConfig{
					NumDocuments: intPtr(1),
					Fields:       inner,
				},
			},
		}
	}

	_, err := storageBytes(1, inner, 0)
	if !errors.Is(err, ErrSchemaTooDeep) {
		t.Errorf("storageBytes error = %v, want ErrSchemaTooDeep", err)
	}

	_, err = expandedDocCount(1, inner, 0)
	if !errors.Is(err, ErrSchemaTooDeep) {
		t.Errorf("expandedDocCount error = %v, want ErrSchemaTooDeep", err)
	}
}
