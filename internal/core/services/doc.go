// Package services implements the driving port interfaces.
// Services contain the core logic and orchestrate calls to driven ports
// (counters, normalisers, loaders, config and report stores).
//
// Services are pure Go with no CGO or external dependencies beyond the
// concurrency and rate helpers from golang.org/x.
package services
