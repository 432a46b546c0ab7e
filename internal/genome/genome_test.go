package genome

import (
	"math/rand"
	"testing"
)

func TestRandomGenesInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g := Random(rng)
	for i, v := range g.Genes {
		if v < 0 || v > 1 {
			t.Errorf("gene %d out of range: %f", i, v)
		}
	}
}

func TestRandomHerbivoreBias(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		g := RandomHerbivore(rng)
		if g.Genes[Diet] >= 0.25 {
			t.Errorf("herbivore diet gene too high: %f", g.Genes[Diet])
		}
	}
}

func TestRandomCarnivoreBias(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		g := RandomCarnivore(rng)
		if g.Genes[Diet] < 0.75 {
			t.Errorf("carnivore diet gene too low: %f", g.Genes[Diet])
		}
	}
}

func TestCrossoverStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	a := Random(rng)
	b := Random(rng)
	for i := 0; i < 100; i++ {
		child := Crossover(a, b, rng)
		for j, v := range child.Genes {
			if v < 0 || v > 1 {
				t.Fatalf("child gene %d out of range: %f", j, v)
			}
		}
	}
}

func TestDistanceZeroForIdenticalGenomes(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g := Random(rng)
	if d := g.Distance(g); d != 0 {
		t.Errorf("expected 0 distance for identical genome, got %f", d)
	}
}

func TestDistanceSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a := Random(rng)
	b := Random(rng)
	if a.Distance(b) != b.Distance(a) {
		t.Errorf("distance should be symmetric")
	}
}

func TestDistanceMaxedOutGenomes(t *testing.T) {
	var a, b Genome
	for i := range a.Genes {
		a.Genes[i] = 0
		b.Genes[i] = 1
	}
	if d := a.Distance(b); d != 1.0 {
		t.Errorf("expected max distance of 1.0, got %f", d)
	}
}
