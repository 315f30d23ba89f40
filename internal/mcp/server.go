package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/xpcalc/internal/service"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
)

const serverName = "xpcalc"

// Server exposes the calculator service as MCP tools.
type Server struct {
	calc   service.CalculatorService
	logger zerolog.Logger
	server *sdk.Server
}

// NewServer creates a new MCP server and registers every tool.
func NewServer(calc service.CalculatorService, logger zerolog.Logger, version string) *Server {
	s := &Server{
		calc:   calc,
		logger: logger.With().Str("component", "mcp").Logger(),
		server: sdk.NewServer(&sdk.Implementation{Name: serverName, Version: version}, nil),
	}
	s.registerTools()
	return s
}

// Run serves requests on t until the client disconnects or ctx is done.
// Use &sdk.StdioTransport{} for the stdio server.
func (s *Server) Run(ctx context.Context, t sdk.Transport) error {
	s.logger.Info().Str("transport", fmt.Sprintf("%T", t)).Msg("MCP server starting")
	if err := s.server.Run(ctx, t); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}

// jsonResult renders v as the single text content block of a tool result.
func jsonResult(v any) (*sdk.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("encoding result: %w", err)
	}
	return &sdk.CallToolResult{
		Content: []sdk.Content{&sdk.TextContent{Text: string(data)}},
	}, nil, nil
}
