package tui

import "errors"

// ErrMissingBenchmarkService is returned when the benchmark service is not provided.
var ErrMissingBenchmarkService = errors.New("tui: benchmark service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
