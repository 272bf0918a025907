package sizing

import "math"

// LexicalEstimate holds the resource needs of the lexical (text) subsystem.
type LexicalEstimate struct {
	StorageGB float64
	RAMGB     float64
	VCPU      int
	Docs      int
}

// EstimateLexical computes storage, RAM, vCPU and the expanded document
// count for the lexical subsystem.
//
// RAM models the fraction of on-disk index size kept hot in memory
// (index size / denominator). vCPU is a Little's-law concurrency estimate:
// the expected in-flight requests qps*latency, rounded up to whole cores.
func EstimateLexical(cfg SchemaConfig) (LexicalEstimate, error) {
	numDocs := cfg.numDocuments()

	bytes, err := storageBytes(numDocs, cfg.Fields, 0)
	if err != nil {
		return LexicalEstimate{}, err
	}

	expanded, err := expandedDocCount(numDocs, cfg.Fields, 0)
	if err != nil {
		return LexicalEstimate{}, err
	}

	return LexicalEstimate{
		StorageGB: bytes / gib,
		RAMGB:     (bytes / cfg.ramDenominator()) / gib,
		VCPU:      int(math.Ceil(cfg.qps() * cfg.latency(defaultLexicalLatency))),
		Docs:      numDocs + expanded,
	}, nil
}
