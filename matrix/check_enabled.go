//go:build !matrix_nocheck

package matrix

// SizeCheckEnabled reports whether Scale compares input and output shapes.
// Build with -tags matrix_nocheck to compile the check out.
const SizeCheckEnabled = true
