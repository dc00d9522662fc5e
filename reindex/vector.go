package reindex

import "math"

// normalizeVector scales v to unit length. A zero vector stays zero.
func normalizeVector(v []float32) []float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}

	out := make([]float32, len(v))
	magnitude := math.Sqrt(sum)
	if magnitude == 0 {
		return out
	}

	for i, x := range v {
		out[i] = float32(float64(x) / magnitude)
	}
	return out
}
