package spamscore

// Matrix is a square, symmetric table of pairwise similarities with a zero
// diagonal. A Matrix belongs to the call that built it and is never shared.
type Matrix struct {
	rows [][]float64
}

// NewMatrix allocates an n×n matrix filled with zeros.
func NewMatrix(n int) *Matrix {
	m := &Matrix{}
	m.init(n)
	return m
}

func (m *Matrix) init(n int) {
	m.rows = make([][]float64, n)
	for i := range m.rows {
		m.rows[i] = make([]float64, n)
	}
}

// Set stores value at (i, j) and (j, i). Diagonal entries are always zero.
func (m *Matrix) Set(i, j int, value float64) {
	if i == j {
		m.rows[i][i] = 0
		return
	}
	m.rows[i][j] = value
	m.rows[j][i] = value
}

// At returns the similarity between messages i and j.
func (m *Matrix) At(i, j int) float64 {
	return m.rows[i][j]
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	row := make([]float64, len(m.rows[i]))
	copy(row, m.rows[i])
	return row
}

// Size returns the number of messages the matrix covers.
func (m *Matrix) Size() int {
	if m == nil {
		return 0
	}
	return len(m.rows)
}

// Reset discards all entries.
func (m *Matrix) Reset() {
	m.rows = nil
}

// BuildMatrix computes the similarity of every message pair. Only the lower
// triangle is computed; Set mirrors it and the diagonal stays zero.
func BuildMatrix(freq Frequencies) *Matrix {
	n := freq.Len()
	vectors := make([]map[string]float64, n)
	for i := range vectors {
		vectors[i] = freq.Vector(i)
	}

	m := NewMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			m.Set(i, j, CosineSimilarity(vectors[i], vectors[j]))
		}
	}
	return m
}
