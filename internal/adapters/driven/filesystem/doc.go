// Package filesystem reads documents from local files and standard input.
//
// Loader reads a bounded prefix of a file measured in characters, which is
// what the benchmark needs to analyse growing slices of one corpus.
// Expand turns command-line arguments into file paths, expanding
// doublestar glob patterns.
package filesystem
