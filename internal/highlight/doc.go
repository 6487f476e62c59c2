// Package highlight renders numbered excerpts of source code
// for terminal output, pointing at a position of interest.
// Excerpts may be syntax highlighted with the Chroma library.
package highlight
