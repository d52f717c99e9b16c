// Package noise provides deterministic 2D gradient noise and fractal sums
// built on it.
package noise

import "math"

const (
	tableSize = 256
	tableMask = tableSize - 1

	// shuffleState seeds the arithmetic shuffle. It is a constant so every
	// process builds the same table.
	shuffleState uint64 = 0x2545f4914f6cdd1d
)

// Field is a continuous scalar function over the plane returning values in
// approximately [-1, 1].
type Field interface {
	Sample(x, y float64) float64
}

// gradients holds eight unit directions: the axes and the diagonals.
var gradients = [8][2]float64{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{math.Sqrt2 / 2, math.Sqrt2 / 2}, {-math.Sqrt2 / 2, math.Sqrt2 / 2},
	{math.Sqrt2 / 2, -math.Sqrt2 / 2}, {-math.Sqrt2 / 2, -math.Sqrt2 / 2},
}

// Perlin implements 2D gradient noise with a fixed permutation table.
type Perlin struct {
	perm [tableSize * 2]uint8
}

// DefaultPerlin is a shared instance. Perlin is immutable after construction
// and safe for concurrent use.
var DefaultPerlin = NewPerlin()

// NewPerlin builds the permutation table. Every instance is identical: the
// table comes from a Fisher-Yates shuffle driven by a fixed 64-bit LCG, never
// from a seeded or OS-backed RNG.
func NewPerlin() *Perlin {
	p := &Perlin{}

	var base [tableSize]uint8
	for i := range base {
		base[i] = uint8(i)
	}

	s := shuffleState
	for i := tableSize - 1; i > 0; i-- {
		s = s*6364136223846793005 + 1442695040888963407
		j := int((s >> 33) % uint64(i+1))
		base[i], base[j] = base[j], base[i]
	}

	// Doubled so corner hashes never need a second wrap.
	for i := 0; i < tableSize; i++ {
		p.perm[i] = base[i]
		p.perm[i+tableSize] = base[i]
	}
	return p
}

// fade applies the quintic smoothstep 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func dot(hash uint8, x, y float64) float64 {
	g := gradients[hash&7]
	return g[0]*x + g[1]*y
}

// Sample evaluates the noise at (x, y). The result lies in [-1, 1] and is
// continuous across lattice boundaries.
func (p *Perlin) Sample(x, y float64) float64 {
	fx := math.Floor(x)
	fy := math.Floor(y)
	xi := int(int64(fx)) & tableMask
	yi := int(int64(fy)) & tableMask
	xf := x - fx
	yf := y - fy

	u := fade(xf)
	v := fade(yf)

	a := int(p.perm[xi])
	b := int(p.perm[xi+1])
	aa := p.perm[a+yi]
	ab := p.perm[a+yi+1]
	ba := p.perm[b+yi]
	bb := p.perm[b+yi+1]

	x1 := lerp(u, dot(aa, xf, yf), dot(ba, xf-1, yf))
	x2 := lerp(u, dot(ab, xf, yf-1), dot(bb, xf-1, yf-1))
	// Unit gradients bound 2D Perlin noise by sqrt(1/2).
	return lerp(v, x1, x2) * math.Sqrt2
}
