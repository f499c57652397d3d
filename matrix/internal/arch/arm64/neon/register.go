//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-matrix/matrix/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:       "neon",
		SIMDLevel:  cpu.SIMDNEON,
		Priority:   15,
		ScaleBlock: scaleBlock,
	})
}

// scaleBlock processes four lanes per iteration, matching one 128-bit NEON
// register of float32.
func scaleBlock(dst, src []float32, scale float32) {
	n := len(dst)
	src = src[:n]

	i := 0
	for ; i+3 < n; i += 4 {
		s := src[i : i+4 : i+4]
		d := dst[i : i+4 : i+4]
		d[0] = s[0] * scale
		d[1] = s[1] * scale
		d[2] = s[2] * scale
		d[3] = s[3] * scale
	}

	for ; i < n; i++ {
		dst[i] = src[i] * scale
	}
}
