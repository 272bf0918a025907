package sizing

import (
	"fmt"
	"math"
)

// VectorEstimate holds the resource needs of the vector subsystem.
type VectorEstimate struct {
	StorageGB float64
	RAMGB     float64
	VCPU      int
}

// quantizationFactor returns the compression ratio for a quantization type.
// Scalar quantization packs 32-bit floats into bytes (with index overhead,
// a 3.75x reduction); binary packs them into bits with some bookkeeping
// (24x). Anything else, including none, leaves vectors uncompressed.
func quantizationFactor(t QuantizationType) float64 {
	switch t {
	case QuantizationScalar:
		return 3.75
	case QuantizationBinary:
		return 24
	default:
		return 1.0
	}
}

// EstimateVector computes storage, RAM and vCPU for the vector subsystem,
// applying the configured quantization model.
//
// Raw vector bytes assume 32-bit float components. When quantization is
// active, RAM holds the quantized form plus 10% for index structures;
// storage holds only the quantized form, unless the database method is
// selected, which persists raw and quantized vectors side by side.
func EstimateVector(cfg SchemaConfig) (VectorEstimate, error) {
	numDocs := cfg.numDocuments()

	var perDoc float64
	for i, f := range cfg.Fields {
		switch f.FieldType {
		case FieldTypeVector:
			perDoc += float64(f.dimensions()) * bytesPerComponent * float64(f.count())
		case FieldTypeString, FieldTypeAutocomplete, FieldTypeEmbedded:
			// Lexical-side fields contribute no vector bytes.
		default:
			return VectorEstimate{}, fmt.Errorf("field %d: %w: %q", i, ErrUnknownFieldType, f.FieldType)
		}
	}
	baseBytes := perDoc * float64(numDocs)

	qType := QuantizationNone
	var qMethod QuantizationMethod
	if cfg.QuantizationSettings != nil {
		if cfg.QuantizationSettings.Type != "" {
			qType = cfg.QuantizationSettings.Type
		}
		qMethod = cfg.QuantizationSettings.Method
	}

	var ramBytes, diskBytes float64
	if qType != QuantizationNone {
		quantized := baseBytes / quantizationFactor(qType)
		ramBytes = 1.1 * quantized
		if qMethod == QuantizationDatabase {
			diskBytes = baseBytes + quantized
		} else {
			diskBytes = quantized
		}
	} else {
		ramBytes = 1.1 * baseBytes
		diskBytes = baseBytes
	}

	return VectorEstimate{
		StorageGB: diskBytes / gib,
		RAMGB:     ramBytes / gib,
		VCPU:      int(math.Ceil(cfg.qps() * cfg.latency(defaultVectorLatency))),
	}, nil
}
