package matrix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-matrix/internal/testutil"
)

func TestScale64(t *testing.T) {
	src := WrapF64(2, 2, []float64{1, 2, 3, 4})
	dst := NewF64(2, 2)

	require.Equal(t, Success, Scale64(src, 2.5, dst))
	testutil.RequireSliceNearlyEqual(t, dst.Data, []float64{2.5, 5, 7.5, 10}, 0)
	assert.Equal(t, 10.0, dst.At(1, 1))
}

func TestScale64Mismatch(t *testing.T) {
	if !SizeCheckEnabled {
		t.Skip("size check compiled out")
	}

	src := WrapF64(1, 3, []float64{1, 2, 3})
	dst := WrapF64(3, 1, []float64{4, 4, 4})

	assert.Equal(t, SizeMismatch, Scale64(src, 2, dst))
	assert.Equal(t, []float64{4, 4, 4}, dst.Data)
}

func TestScale64Large(t *testing.T) {
	const rows, cols = 17, 23
	src := NewF64(rows, cols)
	for i := range src.Data {
		src.Data[i] = math.Sin(float64(i))
	}
	dst := NewF64(rows, cols)

	require.Equal(t, Success, Scale64(src, -math.Pi, dst))
	testutil.RequireFinite(t, dst.Data)

	want := make([]float64, len(src.Data))
	for i, v := range src.Data {
		want[i] = v * -math.Pi
	}
	diff, err := testutil.MaxAbsDiff(dst.Data, want)
	require.NoError(t, err)
	assert.LessOrEqual(t, diff, 1e-12)
}

func TestScaleInPlace64(t *testing.T) {
	m := WrapF64(1, 5, []float64{1, 2, 3, 4, 5})
	ScaleInPlace64(m, 2)
	assert.Equal(t, []float64{2, 4, 6, 8, 10}, m.Data)

	ScaleInPlace64(NewF64(0, 0), 2)
}

func TestScale64ZeroNonFinite(t *testing.T) {
	src := WrapF64(1, 4, []float64{math.Inf(1), math.Inf(-1), math.NaN(), -2})
	dst := NewF64(1, 4)

	require.Equal(t, Success, Scale64(src, 0, dst))
	for i := 0; i < 3; i++ {
		assert.True(t, math.IsNaN(dst.Data[i]), "index %d: got %v, want NaN", i, dst.Data[i])
	}
	assert.Zero(t, dst.Data[3])
}

func TestScale64NonFiniteFactor(t *testing.T) {
	src := WrapF64(1, 3, []float64{1, -1, 0})
	dst := NewF64(1, 3)

	require.Equal(t, Success, Scale64(src, math.Inf(1), dst))
	assert.True(t, math.IsInf(dst.Data[0], 1))
	assert.True(t, math.IsInf(dst.Data[1], -1))
	assert.True(t, math.IsNaN(dst.Data[2]))

	require.Equal(t, Success, Scale64(src, math.NaN(), dst))
	for i, v := range dst.Data {
		assert.True(t, math.IsNaN(v), "index %d: got %v, want NaN", i, v)
	}
}

func TestScale64ShortOutputPanicsWithoutWriting(t *testing.T) {
	src := WrapF64(2, 3, []float64{1, 2, 3, 4, 5, 6})
	before := []float64{5, 5, 5, 5}
	dst := &F64{Rows: 2, Cols: 3, Data: append(make([]float64, 0, 16), before...)}

	assert.Panics(t, func() { Scale64(src, 2, dst) })
	assert.Equal(t, before, dst.Data)
	assert.Equal(t, []float64{0, 0}, dst.Data[:cap(dst.Data)][4:6])
}
