package mcp

import (
	"github.com/custodia-labs/textpipe-cli/internal/core/ports/driven"
	"github.com/custodia-labs/textpipe-cli/internal/core/ports/driving"
)

// Ports aggregates the port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Pipeline runs the analysis.
	Pipeline driving.PipelineService

	// Reports provides report history. Optional; without it the
	// analyze tool cannot save and the report resources are empty.
	Reports driven.ReportStore
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Pipeline == nil {
		return ErrMissingPipelineService
	}
	// Reports is optional
	return nil
}
