// Package domain defines the core business entities for Legible.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A loaded, normalised text document
//   - Stats: Word, sentence and syllable counts plus the Flesch score
//   - Report: The result of analysing one document with one strategy
//   - BenchmarkConfig / BenchmarkResult: Timing runs over growing prefixes
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
