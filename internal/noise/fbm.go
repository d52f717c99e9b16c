package noise

// MaxOctaves caps the octave count accepted by FBM.
const MaxOctaves = 6

// ClampOctaves limits n to [1, MaxOctaves].
func ClampOctaves(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxOctaves {
		return MaxOctaves
	}
	return n
}

// FBM sums octaves of f at frequencies lacunarity^i and amplitudes gain^i,
// normalized by the total amplitude so the result stays within the range of
// f regardless of the octave count. Octaves are clamped to [1, MaxOctaves].
//
// Each call costs one Field evaluation per octave. Sampling a cols×rows grid
// therefore costs cols×rows×octaves evaluations, which makes the octave
// count the primary lever on per-frame noise cost.
func FBM(f Field, x, y float64, octaves int, lacunarity, gain float64) float64 {
	octaves = ClampOctaves(octaves)
	var total, norm float64
	freq, amp := 1.0, 1.0
	for i := 0; i < octaves; i++ {
		total += f.Sample(x*freq, y*freq) * amp
		norm += amp
		freq *= lacunarity
		amp *= gain
	}
	if norm == 0 {
		return 0
	}
	return total / norm
}

// Fractal is a Field that evaluates FBM over a base field.
type Fractal struct {
	Base       Field
	Octaves    int
	Lacunarity float64
	Gain       float64
}

// Sample implements Field.
func (f Fractal) Sample(x, y float64) float64 {
	return FBM(f.Base, x, y, f.Octaves, f.Lacunarity, f.Gain)
}

// EvaluationsPerFrame reports how many base-field evaluations one FBM pass
// over a cols×rows grid performs.
func EvaluationsPerFrame(cols, rows, octaves int) int {
	if cols < 0 || rows < 0 {
		return 0
	}
	return cols * rows * ClampOctaves(octaves)
}
