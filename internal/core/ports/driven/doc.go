// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Counter: Counts words, sentences and syllables in text
//   - CounterRegistry: Looks up counting strategies by name
//   - DocumentLoader: Reads a bounded prefix of a file
//   - Normaliser: Turns raw bytes into analysable text
//   - NormaliserRegistry: Selects the appropriate normaliser
//   - ConfigStore: Application configuration
//   - ReportStore: Bounded history of reports from a watch session
//   - FileWatcher: Change notifications for a single file
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, counter, or normaliser package
package driven
