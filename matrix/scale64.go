package matrix

import "github.com/cwbudde/algo-vecmath"

// Scale64 writes dst[i][j] = src[i][j] * scale for float64 matrices.
// Shape checking and caller obligations match Scale.
func Scale64(src *F64, scale float64, dst *F64) Status {
	if SizeCheckEnabled && !src.SizeCompatible(dst) {
		return SizeMismatch
	}

	total := src.Rows * src.Cols
	if total == 0 {
		return Success
	}

	_ = src.Data[total-1]
	_ = dst.Data[total-1]

	vecmath.ScaleBlock(dst.Data[:total], src.Data[:total], scale)
	return Success
}

// ScaleInPlace64 multiplies every element of m by scale.
func ScaleInPlace64(m *F64, scale float64) {
	total := m.Rows * m.Cols
	if total == 0 {
		return
	}
	vecmath.ScaleBlockInPlace(m.Data[:total], scale)
}
