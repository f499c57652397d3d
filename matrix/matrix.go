package matrix

import "fmt"

// F32 describes a dense row-major matrix of float32 values.
// Element (i, j) lives at Data[i*Cols+j].
type F32 struct {
	Rows int
	Cols int
	Data []float32
}

// NewF32 allocates a zeroed rows x cols matrix.
// Panics if rows or cols is negative.
func NewF32(rows, cols int) *F32 {
	mustShape(rows, cols)
	return &F32{Rows: rows, Cols: cols, Data: make([]float32, rows*cols)}
}

// WrapF32 returns a descriptor over data without copying.
// Panics if rows or cols is negative or data holds fewer than rows*cols values.
func WrapF32(rows, cols int, data []float32) *F32 {
	mustShape(rows, cols)
	if len(data) < rows*cols {
		panic(fmt.Sprintf("matrix: buffer holds %d values, %dx%d needs %d", len(data), rows, cols, rows*cols))
	}
	return &F32{Rows: rows, Cols: cols, Data: data}
}

// Len returns Rows*Cols.
func (m *F32) Len() int {
	return m.Rows * m.Cols
}

// SizeCompatible reports whether m and o have equal rows and equal cols.
func (m *F32) SizeCompatible(o *F32) bool {
	return m.Rows == o.Rows && m.Cols == o.Cols
}

// At returns element (i, j). Panics if the index is out of range.
func (m *F32) At(i, j int) float32 {
	checkIndex(m.Rows, m.Cols, i, j)
	return m.Data[i*m.Cols+j]
}

// Set stores v at element (i, j). Panics if the index is out of range.
func (m *F32) Set(i, j int, v float32) {
	checkIndex(m.Rows, m.Cols, i, j)
	m.Data[i*m.Cols+j] = v
}

// Row returns row i as a subslice of Data.
func (m *F32) Row(i int) []float32 {
	checkRow(m.Rows, i)
	return m.Data[i*m.Cols : (i+1)*m.Cols]
}

// F64 describes a dense row-major matrix of float64 values.
type F64 struct {
	Rows int
	Cols int
	Data []float64
}

// NewF64 allocates a zeroed rows x cols matrix.
func NewF64(rows, cols int) *F64 {
	mustShape(rows, cols)
	return &F64{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}
}

// WrapF64 returns a descriptor over data without copying.
func WrapF64(rows, cols int, data []float64) *F64 {
	mustShape(rows, cols)
	if len(data) < rows*cols {
		panic(fmt.Sprintf("matrix: buffer holds %d values, %dx%d needs %d", len(data), rows, cols, rows*cols))
	}
	return &F64{Rows: rows, Cols: cols, Data: data}
}

// Len returns Rows*Cols.
func (m *F64) Len() int {
	return m.Rows * m.Cols
}

// SizeCompatible reports whether m and o have equal rows and equal cols.
func (m *F64) SizeCompatible(o *F64) bool {
	return m.Rows == o.Rows && m.Cols == o.Cols
}

// At returns element (i, j). Panics if the index is out of range.
func (m *F64) At(i, j int) float64 {
	checkIndex(m.Rows, m.Cols, i, j)
	return m.Data[i*m.Cols+j]
}

// Set stores v at element (i, j). Panics if the index is out of range.
func (m *F64) Set(i, j int, v float64) {
	checkIndex(m.Rows, m.Cols, i, j)
	m.Data[i*m.Cols+j] = v
}

// Row returns row i as a subslice of Data.
func (m *F64) Row(i int) []float64 {
	checkRow(m.Rows, i)
	return m.Data[i*m.Cols : (i+1)*m.Cols]
}

func checkIndex(rows, cols, i, j int) {
	if i < 0 || i >= rows || j < 0 || j >= cols {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range %dx%d", i, j, rows, cols))
	}
}

func checkRow(rows, i int) {
	if i < 0 || i >= rows {
		panic(fmt.Sprintf("matrix: row %d out of range [0,%d)", i, rows))
	}
}

func mustShape(rows, cols int) {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("matrix: negative dimensions %dx%d", rows, cols))
	}
}
