//go:build arm64 && !purego

package matrix

import (
	_ "github.com/cwbudde/algo-matrix/matrix/internal/arch/arm64/neon"
	_ "github.com/cwbudde/algo-matrix/matrix/internal/arch/generic"
)
