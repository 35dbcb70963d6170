// Package normalisers provides implementations of the Normaliser interface
// for the document formats Legible can analyse. Each normaliser knows how
// to turn the raw bytes of one MIME type into plain text whose words,
// sentences and syllables can be counted.
//
// Normalisers are registered with the Registry at startup.
package normalisers
