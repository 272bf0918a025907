package sizing

import "math"

// CustomSizingMessage is returned in place of an instance name when no
// catalog tier is large enough.
const CustomSizingMessage = "Custom sizing required. No suitable instance found."

// Result is the output of one estimate. Storage and RAM are rounded to
// three decimal places; the key names match the sizing tool's wire contract.
type Result struct {
	StorageGB         float64 `json:"StorageGb"`
	RAMGB             float64 `json:"RAMGb"`
	VCPU              int     `json:"vCPU"`
	LexicalDocs       int     `json:"LexicalDocs"`
	SuggestedInstance string  `json:"suggested_instance"`
}

// Estimate sizes a hybrid search workload. The lexical and vector
// subsystems are estimated independently, combined, and matched against the
// instance catalog. Total storage is scaled by reindexMultiplier to leave
// room for a full reindex (old and new index generations coexisting); a
// multiplier of zero or below means the 2.25 default.
//
// Either a complete Result is returned or the call fails; there are no
// partial results.
func Estimate(lexical, vector SchemaConfig, reindexMultiplier float64) (Result, error) {
	if reindexMultiplier <= 0 {
		reindexMultiplier = DefaultReindexMultiplier
	}

	lex, err := EstimateLexical(lexical)
	if err != nil {
		return Result{}, err
	}

	vec, err := EstimateVector(vector)
	if err != nil {
		return Result{}, err
	}

	totalStorage := (lex.StorageGB + vec.StorageGB) * reindexMultiplier
	totalRAM := lex.RAMGB + vec.RAMGB
	// Subsystem vCPUs were already rounded up independently; their sum is
	// not re-ceiled.
	totalVCPU := lex.VCPU + vec.VCPU

	suggested := CustomSizingMessage
	if inst, ok := SelectInstance(totalRAM, totalVCPU, totalStorage); ok {
		suggested = inst.Name
	}

	return Result{
		StorageGB:         round3(totalStorage),
		RAMGB:             round3(totalRAM),
		VCPU:              totalVCPU,
		LexicalDocs:       lex.Docs,
		SuggestedInstance: suggested,
	}, nil
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
