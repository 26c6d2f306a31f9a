package spamscore

import "math"

// Weighted divides every term count by the term's document frequency.
// Every token in tf must be present in df; that holds whenever both come from
// the same ExtractFrequencies call.
func Weighted(tf map[string]int, df map[string]int) map[string]float64 {
	vector := make(map[string]float64, len(tf))
	for token, count := range tf {
		vector[token] = float64(count) / float64(df[token])
	}
	return vector
}

// Magnitude returns the Euclidean norm of v's stored values. Values are
// scaled by the largest magnitude first so large corpora cannot overflow.
func Magnitude(v map[string]float64) float64 {
	var largest float64
	for _, x := range v {
		if math.IsInf(x, 0) {
			return math.Inf(1)
		}
		largest = math.Max(largest, math.Abs(x))
	}
	if largest == 0 {
		return 0
	}
	var sum float64
	for _, x := range v {
		scaled := x / largest
		sum += scaled * scaled
	}
	return largest * math.Sqrt(sum)
}

// CosineSimilarity computes the cosine of the angle between two sparse
// vectors. Absent keys count as zero. An empty (all-zero) vector yields NaN.
func CosineSimilarity(a, b map[string]float64) float64 {
	var dot float64
	for token, x := range a {
		if y, ok := b[token]; ok {
			dot += x * y
		}
	}
	return dot / Magnitude(a) / Magnitude(b)
}
