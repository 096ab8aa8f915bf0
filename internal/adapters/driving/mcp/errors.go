// Package mcp provides an MCP (Model Context Protocol) server adapter
// for Textpipe. It lets AI assistants run the text analysis pipeline
// and browse stored reports.
package mcp

import "errors"

// ErrMissingPipelineService is returned when the pipeline service is not provided.
var ErrMissingPipelineService = errors.New("mcp: pipeline service is required")
