package contour

import "math"

// Nominal range used when the grid is flat or its range is not finite.
const (
	NominalMin = -1.0
	NominalMax = 1.0
)

// Thresholds appends levels-1 evenly spaced interior thresholds of
// [min, max] to dst; min and max themselves are excluded. Levels below 2 are
// treated as 2.
func Thresholds(dst []float64, min, max float64, levels int) []float64 {
	if levels < 2 {
		levels = 2
	}
	if !(max > min) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		min, max = NominalMin, NominalMax
	}
	span := max - min
	for i := 1; i < levels; i++ {
		dst = append(dst, min+span*float64(i)/float64(levels))
	}
	return dst
}

// NormalizedLevel returns the position of threshold index i (0-based) in
// [0, 1] for a renderer using levels bands.
func NormalizedLevel(i, levels int) float64 {
	if levels < 2 {
		levels = 2
	}
	return float64(i+1) / float64(levels)
}
