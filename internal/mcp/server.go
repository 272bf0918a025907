// Package mcpserver exposes the sizing estimator as an MCP tool over stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/First008/searchsizer/internal/sizing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
)

// Server wraps the MCP server for the sizing calculator
type Server struct {
	mcpServer *mcp.Server
	logger    zerolog.Logger
}

// SizingToolArgs defines the arguments for the sizing tool
type SizingToolArgs struct {
	LexicalSizing          sizing.SchemaConfig `json:"lexical_sizing" jsonschema:"description:Configuration for lexical search: num_documents, qps, latency and a list of String/Autocomplete/Embedded field descriptors"`
	VectorSizing           sizing.SchemaConfig `json:"vector_sizing" jsonschema:"description:Configuration for vector search: num_documents, qps, latency, Vector field descriptors and optional quantization_settings"`
	ReindexSpaceMultiplier float64             `json:"reindex_space_multiplier,omitempty" jsonschema:"description:Storage multiplier for reindex headroom. Defaults to 2.25"`
}

// New creates a new MCP server
func New(logger zerolog.Logger) (*Server, error) {
	s := &Server{
		logger: logger,
	}

	impl := &mcp.Implementation{
		Name:    "searchsizer",
		Version: "1.0.0",
	}

	mcpServer := mcp.NewServer(impl, nil)

	mcp.AddTool(
		mcpServer,
		&mcp.Tool{
			Name:        "calculate_sizing_requirements",
			Description: "Calculates estimated storage, RAM, and vCPU for a hybrid lexical+vector search system and suggests the smallest instance that fits. Provide detailed configurations for both the lexical and vector components.",
		},
		s.handleSizingTool,
	)

	s.mcpServer = mcpServer

	logger.Info().
		Str("tool", "calculate_sizing_requirements").
		Msg("MCP server initialized")

	return s, nil
}

// ServeStdio starts the MCP server in stdio mode
func (s *Server) ServeStdio(ctx context.Context) error {
	s.logger.Info().Msg("Starting MCP server in stdio mode")

	transport := &mcp.StdioTransport{}

	return s.mcpServer.Run(ctx, transport)
}

// handleSizingTool handles the sizing tool invocation
func (s *Server) handleSizingTool(ctx context.Context, request *mcp.CallToolRequest, args SizingToolArgs) (*mcp.CallToolResult, any, error) {
	s.logger.Info().
		Int("lexical_fields", len(args.LexicalSizing.Fields)).
		Int("vector_fields", len(args.VectorSizing.Fields)).
		Float64("reindex_space_multiplier", args.ReindexSpaceMultiplier).
		Msg("MCP tool invoked")

	result, err := sizing.Estimate(args.LexicalSizing, args.VectorSizing, args.ReindexSpaceMultiplier)
	if err != nil {
		return nil, nil, fmt.Errorf("sizing error: %w", err)
	}

	s.logger.Info().
		Float64("storage_gb", result.StorageGB).
		Float64("ram_gb", result.RAMGB).
		Int("vcpu", result.VCPU).
		Str("instance", result.SuggestedInstance).
		Msg("MCP tool completed")

	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("marshal result: %w", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(payload)},
		},
	}, result, nil
}
