package matrix

import (
	"sync"

	archregistry "github.com/cwbudde/algo-matrix/matrix/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

var (
	scaleBlockImpl     archregistry.ScaleBlockFn
	scaleBlockName     string
	scaleBlockInitOnce sync.Once
)

// Scale writes dst[i][j] = src[i][j] * scale for every element.
//
// With the size check compiled in (SizeCheckEnabled), Scale returns
// SizeMismatch and leaves dst untouched when the shapes differ. Without it,
// Scale behaves like ScaleUnchecked.
//
// dst.Data must hold at least src.Rows*src.Cols values. src and dst may be
// the same descriptor.
func Scale(src *F32, scale float32, dst *F32) Status {
	if SizeCheckEnabled && !src.SizeCompatible(dst) {
		return SizeMismatch
	}
	scaleF32(src, scale, dst)
	return Success
}

// ScaleChecked is Scale with the shape comparison always performed.
func ScaleChecked(src *F32, scale float32, dst *F32) Status {
	if !src.SizeCompatible(dst) {
		return SizeMismatch
	}
	scaleF32(src, scale, dst)
	return Success
}

// ScaleUnchecked scales src.Rows*src.Cols elements of src into dst without
// comparing shapes. It always returns Success.
//
// If either buffer is shorter than src.Rows*src.Cols it panics before any
// element is written.
func ScaleUnchecked(src *F32, scale float32, dst *F32) Status {
	scaleF32(src, scale, dst)
	return Success
}

// ScaleInPlace multiplies every element of m by scale.
func ScaleInPlace(m *F32, scale float32) {
	scaleF32(m, scale, m)
}

func scaleF32(src *F32, scale float32, dst *F32) {
	scaleBlockInitOnce.Do(initScaleBlockKernel)
	scaleWith(scaleBlockImpl, src, scale, dst)
}

// scaleWith runs kernel over the first src.Rows*src.Cols elements.
func scaleWith(kernel archregistry.ScaleBlockFn, src *F32, scale float32, dst *F32) {
	total := src.Rows * src.Cols
	if total == 0 {
		return
	}

	// Index both buffers at the last element so a short buffer panics
	// ahead of the first write.
	_ = src.Data[total-1]
	_ = dst.Data[total-1]

	kernel(dst.Data[:total], src.Data[:total], scale)
}

// KernelName returns the name of the float32 kernel selected for this CPU.
func KernelName() string {
	scaleBlockInitOnce.Do(initScaleBlockKernel)
	return scaleBlockName
}

// Kernels returns the names of all registered float32 kernels in registration order.
func Kernels() []string {
	entries := archregistry.Global.ListEntries()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

func initScaleBlockKernel() {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("matrix: no ScaleBlock kernel registered (missing generic fallback?)")
	}

	if entry.ScaleBlock == nil {
		panic("matrix: selected kernel missing ScaleBlock")
	}

	scaleBlockImpl = entry.ScaleBlock
	scaleBlockName = entry.Name
}
