// Package sizing estimates the hardware capacity (storage, RAM, vCPU) needed
// to run a hybrid lexical-plus-vector search workload, and recommends the
// smallest instance from a fixed catalog that satisfies the estimate.
//
// Everything in this package is pure synchronous computation: estimates
// depend only on the supplied configuration, so concurrent calls need no
// synchronization.
package sizing

// FieldType identifies a field descriptor variant. The set is closed:
// anything outside it is rejected, never skipped.
type FieldType string

const (
	FieldTypeString       FieldType = "String"
	FieldTypeAutocomplete FieldType = "Autocomplete"
	FieldTypeEmbedded     FieldType = "Embedded"
	FieldTypeVector       FieldType = "Vector"
)

// AutocompleteType selects the autocomplete indexing strategy.
type AutocompleteType string

const (
	EdgeGram AutocompleteType = "edgeGram"
	NGram    AutocompleteType = "nGram"
)

// QuantizationType selects how vectors are compressed, if at all.
type QuantizationType string

const (
	QuantizationNone   QuantizationType = "none"
	QuantizationScalar QuantizationType = "scalar"
	QuantizationBinary QuantizationType = "binary"
)

// QuantizationMethod selects where the quantized representation lives.
type QuantizationMethod string

const (
	// QuantizationInMemory keeps only the quantized vectors.
	QuantizationInMemory QuantizationMethod = "in_memory"
	// QuantizationDatabase persists both the raw and the quantized vectors.
	QuantizationDatabase QuantizationMethod = "database"
)

// Field is one schema field descriptor. Which members apply depends on
// FieldType: Size/StorageMultiplier for String, the gram settings for
// Autocomplete, EmbeddedSizing for Embedded, Dimensions for Vector.
// Count applies to all variants.
type Field struct {
	FieldType FieldType `json:"field_type" yaml:"field_type"`

	// Count is the number of values per document. Values below 1
	// (including the zero value) mean the default of 1.
	Count int `json:"count,omitempty" yaml:"count,omitempty"`

	// String fields.
	Size              int     `json:"size,omitempty" yaml:"size,omitempty"`
	StorageMultiplier float64 `json:"storage_multiplier,omitempty" yaml:"storage_multiplier,omitempty"`

	// Autocomplete fields.
	AutocompleteType AutocompleteType `json:"autocomplete_type,omitempty" yaml:"autocomplete_type,omitempty"`
	MinGrams         int              `json:"min_grams,omitempty" yaml:"min_grams,omitempty"`
	MaxGrams         int              `json:"max_grams,omitempty" yaml:"max_grams,omitempty"`
	AvgChars         int              `json:"avg_chars,omitempty" yaml:"avg_chars,omitempty"`

	// Embedded fields.
	EmbeddedSizing *SchemaConfig `json:"embedded_sizing,omitempty" yaml:"embedded_sizing,omitempty"`

	// Vector fields.
	Dimensions int `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`
}

// SchemaConfig describes one search subsystem: its document count, field
// schema, and query load. The lexical and vector configurations share this
// shape; only the vector side reads QuantizationSettings.
//
// Pointer members distinguish "absent" from an explicit zero, since an
// explicit zero is meaningful for all of them (zero documents, zero load).
type SchemaConfig struct {
	NumDocuments *int     `json:"num_documents,omitempty" yaml:"num_documents,omitempty"`
	Fields       []Field  `json:"fields,omitempty" yaml:"fields,omitempty"`
	QPS          *float64 `json:"qps,omitempty" yaml:"qps,omitempty"`
	Latency      *float64 `json:"latency,omitempty" yaml:"latency,omitempty"`

	// IndexSizeToRAMRatioDenominator is the fraction of on-disk index size
	// kept hot in memory, expressed as a divisor. Defaults to 8.
	IndexSizeToRAMRatioDenominator *float64 `json:"index_size_to_ram_ratio_denominator,omitempty" yaml:"index_size_to_ram_ratio_denominator,omitempty"`

	QuantizationSettings *QuantizationSettings `json:"quantization_settings,omitempty" yaml:"quantization_settings,omitempty"`
}

// QuantizationSettings configures vector compression.
type QuantizationSettings struct {
	Type   QuantizationType   `json:"type,omitempty" yaml:"type,omitempty"`
	Method QuantizationMethod `json:"method,omitempty" yaml:"method,omitempty"`
}

// Documented defaults for optional numeric configuration. Structural fields
// (field_type, embedded_sizing, autocomplete_type) are mandatory; numeric
// tuning fields fall back to these instead of failing.
const (
	defaultNumDocuments      = 1000
	defaultQPS               = 20.0
	defaultLexicalLatency    = 0.05
	defaultVectorLatency     = 0.3
	defaultRAMDenominator    = 8.0
	defaultStorageMultiplier = 3.33
	defaultMinGrams          = 3
	defaultMaxGrams          = 15
	defaultAvgChars          = 30
	defaultDimensions        = 1536

	// bytesPerComponent assumes 32-bit float vector components before
	// quantization.
	bytesPerComponent = 4

	gib = 1 << 30
)

// DefaultReindexMultiplier is the storage headroom factor for a full
// reindex, during which old and new index generations coexist.
const DefaultReindexMultiplier = 2.25

func (c SchemaConfig) numDocuments() int {
	if c.NumDocuments == nil {
		return defaultNumDocuments
	}
	return *c.NumDocuments
}

func (c SchemaConfig) qps() float64 {
	if c.QPS == nil {
		return defaultQPS
	}
	return *c.QPS
}

func (c SchemaConfig) latency(fallback float64) float64 {
	if c.Latency == nil {
		return fallback
	}
	return *c.Latency
}

func (c SchemaConfig) ramDenominator() float64 {
	if c.IndexSizeToRAMRatioDenominator == nil || *c.IndexSizeToRAMRatioDenominator <= 0 {
		return defaultRAMDenominator
	}
	return *c.IndexSizeToRAMRatioDenominator
}

func (f Field) count() int {
	if f.Count < 1 {
		return 1
	}
	return f.Count
}

func (f Field) storageMultiplier() float64 {
	if f.StorageMultiplier <= 0 {
		return defaultStorageMultiplier
	}
	return f.StorageMultiplier
}

func (f Field) gramRange() (min, max int) {
	min, max = f.MinGrams, f.MaxGrams
	if min == 0 {
		min = defaultMinGrams
	}
	if max == 0 {
		max = defaultMaxGrams
	}
	return min, max
}

func (f Field) dimensions() int {
	if f.Dimensions <= 0 {
		return defaultDimensions
	}
	return f.Dimensions
}
