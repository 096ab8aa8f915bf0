// Package domain defines the core business entities for Textpipe.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - AnalysisRequest: A raw text blob plus an optional source name
//   - ExtractionRecord: Normalised text, metadata and format guess
//   - ReviewRecord: Validation, verification and digest results
//   - Report: The combined pipeline output
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
