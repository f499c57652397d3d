// Package matrix provides dense row-major matrix descriptors and the scalar
// scaling kernel that operates on them.
//
// A descriptor ([F32], [F64]) is a view over a caller-owned buffer plus its
// row and column counts. The kernels never allocate and never change the
// shape of either descriptor.
//
// # Scaling
//
//	src := matrix.WrapF32(2, 2, []float32{1, 2, 3, 4})
//	dst := matrix.NewF32(2, 2)
//	if st := matrix.Scale(src, 2.5, dst); st != matrix.Success {
//		return st.Err()
//	}
//	// dst.Data == [2.5 5 7.5 10]
//
// [Scale] reports [SizeMismatch] when input and output shapes disagree and
// writes nothing in that case. The check is compiled in by default; building
// with the matrix_nocheck tag removes it from [Scale] (see
// [SizeCheckEnabled]). [ScaleChecked] and [ScaleUnchecked] select the
// behavior explicitly, and [Scaler] selects it at run time.
//
// # Caller obligations
//
// Only the shape comparison is checked. The following are not reported as a
// status:
//
//   - nil descriptors
//   - a Data buffer shorter than Rows*Cols
//   - input and output buffers that overlap at an offset
//
// Identical input and output buffers (in-place scaling) are always safe.
// A buffer shorter than Rows*Cols panics with a bounds error before any
// element is written.
//
// # Kernels
//
// The float32 linear pass is dispatched to the best kernel registered for
// the running CPU (see [KernelName]). Every kernel computes the plain IEEE-754
// product src[i]*scale in row-major order, so results are bit-identical
// across kernels. Scaling of [F64] delegates to algo-vecmath.
package matrix
