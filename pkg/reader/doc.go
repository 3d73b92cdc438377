// Package reader runs the layout engine in reverse: from a compiled picture
// it regenerates a decomposition pattern per line and applies it to
// previously rendered text, recovering the variable values that produced it.
// Field kinds drive type inference, so numeric fields come back as numbers
// and justified fields come back with their padding stripped.
package reader
