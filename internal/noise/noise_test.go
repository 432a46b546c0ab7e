package noise

import (
	"math"
	"testing"

	"github.com/evoterra/evoterra/internal/mathutil"
)

func TestSampleAtIsDeterministic(t *testing.T) {
	g := NewGenerator(7)
	offset := mathutil.Vec3{X: 1, Y: 2, Z: 3}
	a := g.SampleAt(1.0, 2.0, 1.0, offset)
	b := g.SampleAt(1.0, 2.0, 1.0, offset)
	if a != b {
		t.Errorf("SampleAt is not deterministic: %f != %f", a, b)
	}
}

func TestSameSeedProducesSameValues(t *testing.T) {
	a := NewGenerator(99)
	b := NewGenerator(99)
	offset := mathutil.Vec3{X: 0.5, Y: 0.5, Z: 0.5}
	if got, want := a.SampleAt(0.3, 1.2, 1.0, offset), b.SampleAt(0.3, 1.2, 1.0, offset); got != want {
		t.Errorf("same seed produced different values: %f != %f", got, want)
	}
}

func TestMountainRangeNoiseBounds(t *testing.T) {
	for _, v := range []float64{0.0, 0.25, 0.5, 0.75, 1.0} {
		got := MountainRangeNoise(v, 25.0)
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Fatalf("MountainRangeNoise(%f) produced non-finite value: %f", v, got)
		}
	}
}

func TestMountainRangeNoiseMatchesReferenceFormula(t *testing.T) {
	value, width := 0.5, 25.0
	v := value*2 - 1
	v1 := -math.Exp(-sq(v*width + 1))
	v2 := math.Exp(-sq(v*width - 1))
	want := (v1 + v2 + 1) / 2

	if got := MountainRangeNoise(value, width); math.Abs(got-want) > 1e-9 {
		t.Errorf("MountainRangeNoise(%f, %f) = %f, want %f", value, width, got, want)
	}
}
