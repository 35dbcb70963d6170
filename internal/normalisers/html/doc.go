// Package html provides a Normaliser for HTML pages. It keeps the readable
// text and drops scripts, styles and preformatted blocks.
package html
