// Package scenario loads sizing scenario files: a YAML description of the
// lexical and vector workloads handed to the estimator.
package scenario

import (
	"fmt"
	"os"

	"github.com/First008/searchsizer/internal/sizing"
	"gopkg.in/yaml.v3"
)

// Scenario is one estimation request read from disk.
type Scenario struct {
	LexicalSizing sizing.SchemaConfig `yaml:"lexical_sizing" json:"lexical_sizing"`
	VectorSizing  sizing.SchemaConfig `yaml:"vector_sizing" json:"vector_sizing"`

	// ReindexSpaceMultiplier scales total storage for reindex headroom.
	// Zero means the estimator default of 2.25.
	ReindexSpaceMultiplier float64 `yaml:"reindex_space_multiplier" json:"reindex_space_multiplier"`
}

// Load reads and validates a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("unmarshal scenario: %w", err)
	}

	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &sc, nil
}

// Validate checks the parts of a scenario the estimator itself defaults
// rather than rejects.
func (s *Scenario) Validate() error {
	if s.ReindexSpaceMultiplier < 0 {
		return fmt.Errorf("reindex_space_multiplier must not be negative")
	}

	if len(s.LexicalSizing.Fields) == 0 && len(s.VectorSizing.Fields) == 0 {
		return fmt.Errorf("at least one of lexical_sizing or vector_sizing must declare fields")
	}

	return nil
}
