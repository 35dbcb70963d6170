// Package file provides the TOML-backed configuration store.
//
// Settings live in config.toml inside the legible config directory
// (~/.legible by default). Nested tables are exposed as dot-notation
// keys, so [benchmark] trials = 50 is read as "benchmark.trials".
package file
