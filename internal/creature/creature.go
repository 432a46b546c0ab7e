// Package creature implements individual organism state and behavior:
// metabolism, environmental stress, feeding, hunting, and reproduction.
package creature

import (
	"math"
	"math/rand"

	"github.com/evoterra/evoterra/internal/genome"
)

// Activity is what a creature is doing this tick, used by the TUI and
// stats reporting.
type Activity int

const (
	Idle Activity = iota
	MovingToFood
	Eating
	Hunting
	Fleeing
	Reproducing
	Wandering
)

// Creature is a single simulated organism.
type Creature struct {
	ID          uint64
	SpeciesID   uint64
	Genome      genome.Genome
	Phenotype   genome.Phenotype
	X, Y        float64 // tile position, fractional (sub-tile offset)
	Energy      float64
	Health      float64
	Age         int
	Alive       bool
	Activity    Activity
	Generation  int
	ReproCooldown int
	targetX, targetY float64
	hasTarget   bool
}

// New creates a newborn creature from its genome at the given position.
func New(id uint64, speciesID uint64, g genome.Genome, x, y float64, generation int) *Creature {
	p := genome.FromGenome(g)
	return &Creature{
		ID:         id,
		SpeciesID:  speciesID,
		Genome:     g,
		Phenotype:  p,
		X:          x,
		Y:          y,
		Energy:     p.FertilityThresh * 0.6,
		Health:     100.0,
		Age:        0,
		Alive:      true,
		Activity:   Idle,
		Generation: generation,
	}
}

// TickMetabolism ages the creature by one tick, deducts its base energy
// cost, and determines whether it died of age, starvation, or injury.
func (c *Creature) TickMetabolism() {
	if !c.Alive {
		return
	}
	c.Age++
	c.Energy -= c.Phenotype.BaseEnergyCost()
	if c.ReproCooldown > 0 {
		c.ReproCooldown--
	}

	switch {
	case c.Age >= c.Phenotype.MaxAge:
		c.Alive = false
	case c.Energy <= 0:
		c.Alive = false
	case c.Health <= 0:
		c.Alive = false
	}
}

// ApplyTemperatureStress penalizes health and energy proportional to how
// far the local temperature falls outside the creature's tolerance band.
func (c *Creature) ApplyTemperatureStress(localTemp float64) {
	if !c.Alive {
		return
	}
	if c.Phenotype.CanTolerateTemperature(localTemp) {
		return
	}
	var deviation float64
	if localTemp < c.Phenotype.ColdTolerance {
		deviation = c.Phenotype.ColdTolerance - localTemp
	} else {
		deviation = localTemp - c.Phenotype.HeatTolerance
	}
	c.Health -= deviation * 0.5
	c.Energy -= deviation * 0.2
}

// ApplyDroughtStress penalizes a creature on a tile with insufficient
// rainfall relative to its drought tolerance.
func (c *Creature) ApplyDroughtStress(rainfall, rainfallNeeded float64) {
	if !c.Alive || rainfall >= rainfallNeeded {
		return
	}
	deficit := (rainfallNeeded - rainfall) / rainfallNeeded
	tolerance := c.Phenotype.DroughtTolerance
	penalty := deficit * (1.0 - tolerance)
	c.Health -= penalty * 5.0
	c.Energy -= penalty * 2.0
}

// EatPlants consumes up to the creature's intake capacity from available
// plant biomass and converts it to energy, scaled by dietary efficiency.
func (c *Creature) EatPlants(available float64) (consumed float64) {
	if !c.Alive || c.Phenotype.Diet >= 0.6 {
		return 0
	}
	efficiency := 1.0 - c.Phenotype.Diet
	maxIntake := c.Phenotype.BodySize * 3.0 * efficiency
	consumed = math.Min(maxIntake, available)
	c.Energy += consumed * efficiency
	c.Activity = Eating
	return consumed
}

// Hunt attempts to kill prey. detectionChance depends on sense range and
// the prey's camouflage; successChance is a relative-power contest. On
// success the attacker gains energy proportional to the prey's food value
// and the prey dies; on failure both combatants pay a movement energy
// cost and the attacker has a 20% chance of taking health damage.
func (c *Creature) Hunt(prey *Creature, rng *rand.Rand) (success bool) {
	if !c.Alive || !prey.Alive || c.Phenotype.Diet < 0.2 {
		return false
	}
	if prey.Phenotype.BodySize > c.Phenotype.BodySize*1.5 {
		return false
	}
	c.Activity = Hunting

	detectionChance := clamp(c.Phenotype.SenseRange/8.0*(1.0-prey.Phenotype.Camouflage*0.7), 0.1, 0.95)
	if rng.Float64() > detectionChance {
		return false
	}

	hunterPower := c.Phenotype.CombatPower()
	preyPower := prey.Phenotype.CombatPower()
	successChance := clamp(hunterPower/(hunterPower+preyPower*0.6), 0.05, 0.95)

	if rng.Float64() < successChance {
		c.Energy += prey.Phenotype.FoodValue() * c.Phenotype.Diet
		prey.Alive = false
		return true
	}

	c.Energy -= c.Phenotype.MovementEnergyCost()
	prey.Energy -= prey.Phenotype.MovementEnergyCost()
	if rng.Float64() < 0.2 {
		c.Health -= 10.0
	}
	return false
}

// CanReproduce reports whether this creature currently has enough energy,
// maturity, and cooldown to attempt reproduction.
func (c *Creature) CanReproduce() bool {
	return c.Alive &&
		c.Energy > c.Phenotype.FertilityThresh &&
		c.ReproCooldown == 0 &&
		c.Age > 10
}

// Reproduce produces offspring genomes from this creature and a partner,
// deducting the shared energy cost from both parents and resetting their
// cooldowns. The number of genomes returned is the parents' mean
// OffspringCount, clamped to [1, 4].
func (c *Creature) Reproduce(partner *Creature, rng *rand.Rand) []genome.Genome {
	avgOffspring := (c.Phenotype.OffspringCount + partner.Phenotype.OffspringCount) / 2
	count := clampInt(avgOffspring, 1, 4)

	cost := c.Phenotype.FertilityThresh * 0.3 * float64(count)
	c.Energy -= cost * 0.6
	partner.Energy -= cost * 0.4

	c.ReproCooldown = 15 + c.Phenotype.MaxAge/10
	partner.ReproCooldown = 15 + partner.Phenotype.MaxAge/10
	c.Activity = Reproducing

	offspring := make([]genome.Genome, count)
	for i := 0; i < count; i++ {
		offspring[i] = genome.Crossover(c.Genome, partner.Genome, rng)
	}
	return offspring
}

// HasTarget reports whether the creature currently has a wander target to
// move towards.
func (c *Creature) HasTarget() bool { return c.hasTarget }

// ChooseDirection picks a random wander target within the creature's
// sense range.
func (c *Creature) ChooseDirection(rng *rand.Rand, worldWidth, worldHeight float64) {
	angle := rng.Float64() * 2 * math.Pi
	dist := rng.Float64() * c.Phenotype.SenseRange
	c.targetX = math.Mod(c.X+math.Cos(angle)*dist+worldWidth, worldWidth)
	c.targetY = clamp(c.Y+math.Sin(angle)*dist, 0, worldHeight-1)
	c.hasTarget = true
	c.Activity = Wandering
}

// MoveTowardsTarget advances the creature one step towards its current
// target, wrapping horizontally and taking the shorter path around the
// world's east-west seam.
func (c *Creature) MoveTowardsTarget(worldWidth float64) {
	if !c.hasTarget {
		return
	}
	dx := c.targetX - c.X
	if dx > worldWidth/2 {
		dx -= worldWidth
	} else if dx < -worldWidth/2 {
		dx += worldWidth
	}
	dy := c.targetY - c.Y

	dist := math.Hypot(dx, dy)
	if dist < 0.01 {
		c.hasTarget = false
		return
	}
	step := math.Min(c.Phenotype.Speed, dist)
	c.X = math.Mod(c.X+dx/dist*step+worldWidth, worldWidth)
	c.Y += dy / dist * step
	c.Energy -= c.Phenotype.MovementEnergyCost()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
