//go:build matrix_nocheck

package matrix

// SizeCheckEnabled reports whether Scale compares input and output shapes.
const SizeCheckEnabled = false
