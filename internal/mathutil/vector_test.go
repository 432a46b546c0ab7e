package mathutil

import (
	"math"
	"math/rand"
	"testing"
)

func TestCartesianCoordinatesMagnitude(t *testing.T) {
	v := CartesianCoordinates(math.Pi/2, 0, 2.0)
	mag := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
	if math.Abs(mag-2.0) > 1e-9 {
		t.Errorf("magnitude = %f, want 2.0", mag)
	}
}

func TestRandomPointInSphereWithinRadius(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		v := RandomPointInSphere(rng, 5.0)
		mag := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
		if mag > 5.0+1e-9 {
			t.Fatalf("point outside sphere: magnitude %f > 5.0", mag)
		}
	}
}

func TestMixValuesBlendsEndpoints(t *testing.T) {
	if got := MixValues(0, 10, 0); got != 0 {
		t.Errorf("MixValues(0,10,0) = %f, want 0", got)
	}
	if got := MixValues(0, 10, 1); got != 10 {
		t.Errorf("MixValues(0,10,1) = %f, want 10", got)
	}
	if got := MixValues(0, 10, 0.5); got != 5 {
		t.Errorf("MixValues(0,10,0.5) = %f, want 5", got)
	}
}

func TestRepeatWraps(t *testing.T) {
	if got := Repeat(12, 10); got != 2 {
		t.Errorf("Repeat(12,10) = %f, want 2", got)
	}
	if got := Repeat(-3, 10); got != 7 {
		t.Errorf("Repeat(-3,10) = %f, want 7", got)
	}
	if got := Repeat(5, 10); got != 5 {
		t.Errorf("Repeat(5,10) = %f, want 5", got)
	}
}
