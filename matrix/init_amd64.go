//go:build amd64 && !purego

package matrix

import (
	_ "github.com/cwbudde/algo-matrix/matrix/internal/arch/amd64/avx2" // register AVX2 backend
	_ "github.com/cwbudde/algo-matrix/matrix/internal/arch/generic"    // register generic backend
)
