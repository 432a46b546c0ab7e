// Package noise provides the gradient-noise sampling the world generator
// layers into continents, mountain ranges, rainfall bands and temperature
// gradients. Samples are taken on the surface of a sphere so the resulting
// map wraps seamlessly at the left/right edge and stays continuous at the
// poles, the same trick the reference generator uses to avoid visible
// seams on a cylindrical projection.
package noise

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/evoterra/evoterra/internal/mathutil"
)

// Generator is a single normalized 3D gradient noise source. The world
// generator draws many independent-looking "octaves" from one Generator by
// sampling it at different radii with different random offsets, rather
// than constructing a new generator per octave.
type Generator struct {
	gen opensimplex.Noise
}

// NewGenerator builds a noise generator seeded deterministically.
func NewGenerator(seed int64) Generator {
	return Generator{gen: opensimplex.NewNormalized(seed)}
}

// SampleAt evaluates the generator at the point a (alpha, beta) pair on a
// sphere of the given radius maps to, shifted by offset.
func (g Generator) SampleAt(alpha, beta, radius float64, offset mathutil.Vec3) float64 {
	c := mathutil.CartesianCoordinates(alpha, beta, radius)
	return g.gen.Eval3(c.X+offset.X, c.Y+offset.Y, c.Z+offset.Z)
}

// MountainRangeNoise reshapes a noise sample in [0, 1] into a twin-ridge
// profile in [0, 1]: close to 1 just above the midpoint, close to 0 just
// below it, and 0.5 farther away, with widthFactor controlling how narrow
// the ridges are.
func MountainRangeNoise(value, widthFactor float64) float64 {
	v := value*2 - 1
	v1 := -math.Exp(-sq(v*widthFactor + 1))
	v2 := math.Exp(-sq(v*widthFactor - 1))
	return (v1 + v2 + 1) / 2
}

func sq(v float64) float64 { return v * v }
