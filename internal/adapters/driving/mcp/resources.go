package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for Textpipe resources.
const uriScheme = "textpipe://"

// reportListLimit caps the summaries exposed through the reports resource.
const reportListLimit = 50

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing recent reports.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "reports",
		Name:        "reports",
		Description: "Summaries of recently stored analysis reports",
		MIMEType:    "application/json",
	}, s.handleReportsResource)

	// Template for a single report.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "reports/{reportId}",
		Name:        "report",
		Description: "A stored analysis report",
		MIMEType:    "application/json",
	}, s.handleReportResource)
}

// handleReportsResource returns summaries of stored reports.
func (s *Server) handleReportsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Reports == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	summaries, err := s.ports.Reports.ListReports(ctx, reportListLimit)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}

	data, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling summaries: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleReportResource returns a single stored report as JSON.
func (s *Server) handleReportResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Reports == nil {
		return nil, fmt.Errorf("report store not configured")
	}

	reportID := strings.TrimPrefix(req.Params.URI, uriScheme+"reports/")

	report, err := s.ports.Reports.GetReport(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("loading report %s: %w", reportID, err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling report: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
