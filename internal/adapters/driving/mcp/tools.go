package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/textpipe-cli/internal/core/domain"
)

// AnalyzeInput is the input schema for the analyze_text tool.
type AnalyzeInput struct {
	Text       string `json:"text" jsonschema:"the raw text to analyse"`
	SourceName string `json:"source_name,omitempty" jsonschema:"optional source name used for format detection"`
	Save       bool   `json:"save,omitempty" jsonschema:"persist the report to the local history store"`
}

// AnalyzeOutput is the output schema for the analyze_text tool.
type AnalyzeOutput struct {
	Report domain.Report `json:"report"`
	Saved  bool          `json:"saved"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_text",
		Description: "Run the extraction and review pipeline over a text blob",
	}, s.handleAnalyze)
}

// handleAnalyze handles the analyze_text tool invocation.
func (s *Server) handleAnalyze(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeInput,
) (*mcp.CallToolResult, AnalyzeOutput, error) {
	report, err := s.ports.Pipeline.Process(ctx, &domain.AnalysisRequest{
		Text:       input.Text,
		SourceName: input.SourceName,
	})
	if err != nil {
		return nil, AnalyzeOutput{}, err
	}

	saved := false
	if input.Save && s.ports.Reports != nil {
		if err := s.ports.Reports.SaveReport(ctx, report); err != nil {
			return nil, AnalyzeOutput{}, err
		}
		saved = true
	}

	return nil, AnalyzeOutput{Report: *report, Saved: saved}, nil
}
