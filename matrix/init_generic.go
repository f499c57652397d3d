//go:build purego || !(amd64 || arm64)

package matrix

import (
	_ "github.com/cwbudde/algo-matrix/matrix/internal/arch/generic"
)
