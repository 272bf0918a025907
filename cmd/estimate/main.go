package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/First008/searchsizer/internal/scenario"
	"github.com/First008/searchsizer/internal/sizing"
	"github.com/rs/zerolog"
)

func main() {
	// Parse flags
	scenarioPath := flag.String("scenario", "", "Path to scenario YAML file")
	reindex := flag.Float64("reindex", 0, "Override reindex space multiplier (0 = scenario value or 2.25 default)")
	asJSON := flag.Bool("json", false, "Print the result as JSON")
	flag.Parse()

	// Setup logger
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Logger()

	// Validate required flags
	if *scenarioPath == "" {
		logger.Fatal().Msg("--scenario flag is required")
	}

	sc, err := scenario.Load(*scenarioPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load scenario")
	}

	multiplier := sc.ReindexSpaceMultiplier
	if *reindex > 0 {
		multiplier = *reindex
	}

	logger.Info().
		Str("scenario", *scenarioPath).
		Int("lexical_fields", len(sc.LexicalSizing.Fields)).
		Int("vector_fields", len(sc.VectorSizing.Fields)).
		Msg("Running estimate")

	result, err := sizing.Estimate(sc.LexicalSizing, sc.VectorSizing, multiplier)
	if err != nil {
		logger.Fatal().Err(err).Msg("Estimate failed")
	}

	if *asJSON {
		payload, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to marshal result")
		}
		fmt.Println(string(payload))
		return
	}

	fmt.Printf("\n✅ Sizing estimate\n")
	fmt.Printf("   Storage: %.3f GB\n", result.StorageGB)
	fmt.Printf("   RAM: %.3f GB\n", result.RAMGB)
	fmt.Printf("   vCPU: %d\n", result.VCPU)
	fmt.Printf("   Lexical documents: %d\n", result.LexicalDocs)
	fmt.Printf("   Suggested instance: %s\n", result.SuggestedInstance)
}
