package generic

import (
	"github.com/cwbudde/algo-matrix/matrix/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:       "generic",
		SIMDLevel:  cpu.SIMDNone,
		Priority:   0,
		ScaleBlock: ScaleBlock,
	})
}

// ScaleBlock is the portable kernel: dst[i] = src[i] * scale in increasing
// index order. dst and src must have equal length.
func ScaleBlock(dst, src []float32, scale float32) {
	src = src[:len(dst)]
	for i := range dst {
		dst[i] = src[i] * scale
	}
}
