package creature

import (
	"math/rand"
	"testing"

	"github.com/evoterra/evoterra/internal/genome"
)

func newTestCreature(rng *rand.Rand, herbivore bool) *Creature {
	var g genome.Genome
	if herbivore {
		g = genome.RandomHerbivore(rng)
	} else {
		g = genome.RandomCarnivore(rng)
	}
	return New(1, 1, g, 10, 10, 0)
}

func TestNewCreatureStartsAlive(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := newTestCreature(rng, true)
	if !c.Alive {
		t.Error("new creature should be alive")
	}
	if c.Energy != c.Phenotype.FertilityThresh*0.6 {
		t.Errorf("initial energy = %f, want %f", c.Energy, c.Phenotype.FertilityThresh*0.6)
	}
}

func TestTickMetabolismKillsOnStarvation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := newTestCreature(rng, true)
	c.Energy = 0.01
	c.TickMetabolism()
	if c.Alive {
		t.Error("creature should have died of starvation")
	}
}

func TestTickMetabolismKillsOnOldAge(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := newTestCreature(rng, true)
	c.Age = c.Phenotype.MaxAge + 1
	c.Energy = 1000
	c.TickMetabolism()
	if c.Alive {
		t.Error("creature should have died of old age")
	}
}

func TestTickMetabolismKillsExactlyAtMaxAge(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := newTestCreature(rng, true)
	c.Age = c.Phenotype.MaxAge - 2
	c.Energy = 1000
	c.TickMetabolism()
	if !c.Alive {
		t.Fatal("creature one tick short of max age should still be alive")
	}
	c.TickMetabolism()
	if c.Alive {
		t.Error("creature reaching age == max age should die this tick")
	}
}

func TestEatPlantsOnlyForHerbivores(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	herb := newTestCreature(rng, true)
	carn := newTestCreature(rng, false)

	if consumed := carn.EatPlants(100); consumed != 0 {
		t.Errorf("carnivore ate %f plants, want 0", consumed)
	}
	before := herb.Energy
	consumed := herb.EatPlants(100)
	if consumed <= 0 {
		t.Error("herbivore should consume some plants")
	}
	if herb.Energy <= before {
		t.Error("herbivore energy should increase after eating")
	}
}

func TestHuntRequiresMinimumDietShare(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	herb := newTestCreature(rng, true)
	herb.Phenotype.Diet = 0.1 // below the 0.2 carnivory floor
	prey := newTestCreature(rng, true)
	if herb.Hunt(prey, rng) {
		t.Error("a creature below the hunting diet threshold should not be able to hunt")
	}
	if !prey.Alive {
		t.Error("prey should be unaffected by a failed hunter")
	}
}

func TestHuntSkipsPreyMoreThanOneAndAHalfTimesLarger(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	hunter := newTestCreature(rng, false)
	hunter.Phenotype.BodySize = 1.0
	prey := newTestCreature(rng, true)
	prey.Phenotype.BodySize = 2.0 // more than 1.5x the hunter's body size
	if hunter.Hunt(prey, rng) {
		t.Error("hunter should skip prey more than 1.5x its own body size")
	}
	if !prey.Alive {
		t.Error("oversized prey should survive an ineligible hunt attempt")
	}
}

func TestCanReproduceRequiresEnergyAndAge(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := newTestCreature(rng, true)
	c.Age = 5
	c.Energy = c.Phenotype.FertilityThresh + 10
	if c.CanReproduce() {
		t.Error("creature below maturity age should not reproduce")
	}
	c.Age = 20
	if !c.CanReproduce() {
		t.Error("mature, fed creature should be able to reproduce")
	}
}

func TestReproduceAppliesCooldown(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := newTestCreature(rng, true)
	b := newTestCreature(rng, true)
	a.Age, b.Age = 20, 20
	a.Energy = a.Phenotype.FertilityThresh + 50
	b.Energy = b.Phenotype.FertilityThresh + 50

	offspring := a.Reproduce(b, rng)
	if len(offspring) < 1 || len(offspring) > 4 {
		t.Errorf("offspring count = %d, want between 1 and 4", len(offspring))
	}
	if a.ReproCooldown == 0 || b.ReproCooldown == 0 {
		t.Error("reproduction should set a cooldown on both parents")
	}
}

func TestMoveTowardsTargetWrapsAroundWorld(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := newTestCreature(rng, true)
	c.X = 199
	c.targetX = 1
	c.targetY = c.Y
	c.hasTarget = true
	c.Phenotype.Speed = 5

	c.MoveTowardsTarget(200)
	if c.X < 0 || c.X >= 200 {
		t.Errorf("X out of world bounds after move: %f", c.X)
	}
}
