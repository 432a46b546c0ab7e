// Package species tracks named lineages of creatures: procedurally
// generated names and colors, population bookkeeping, and the
// genetic-distance check that spins off a new species from a diverging
// population.
package species

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/evoterra/evoterra/internal/genome"
)

var prefixes = []string{
	"Gray", "Swift", "Crimson", "Shadow", "Silver", "Thorn", "Moon", "Sun",
	"Frost", "Ember", "Iron", "Storm", "Dusk", "Dawn", "Wild", "Stone",
	"River", "Night", "Amber", "Sable", "Rust", "Pale", "Burning", "Deep",
	"Howling", "Ashen", "Marsh", "Glacier", "Scarlet", "Obsidian",
}

var middles = []string{
	"fang", "claw", "mane", "horn", "wing", "paw", "tusk", "scale",
	"tail", "hide", "stripe", "spot", "eye", "tooth", "snout", "hoof",
	"whisker", "crest", "spine", "shell",
}

var suffixes = []string{
	"stalker", "runner", "grazer", "hunter", "wanderer", "strider",
	"leaper", "crawler", "prowler", "roamer", "darter", "glider",
	"burrower", "skulker", "charger", "lurker", "climber", "drifter",
	"stomper", "sprinter",
}

// GenerateName procedurally generates a species name from three word
// banks, giving a search space of 30*20*20 combinations.
func GenerateName(rng *rand.Rand) string {
	p := prefixes[rng.Intn(len(prefixes))]
	m := middles[rng.Intn(len(middles))]
	s := suffixes[rng.Intn(len(suffixes))]
	return fmt.Sprintf("%s%s %s", p, m, s)
}

// RGB is a color in 0-255 channels.
type RGB struct {
	R, G, B uint8
}

// GenerateColor produces a visually distinct, saturated color for a new
// species via HSV with a random hue and a restricted saturation/value
// band that keeps colors vivid but not washed out.
func GenerateColor(rng *rand.Rand) RGB {
	hue := rng.Float64() * 360.0
	sat := 0.5 + rng.Float64()*0.5
	val := 0.5 + rng.Float64()*0.45
	return hsvToRGB(hue, sat, val)
}

func hsvToRGB(h, s, v float64) RGB {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60.0, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return RGB{
		R: uint8((r + m) * 255),
		G: uint8((g + m) * 255),
		B: uint8((b + m) * 255),
	}
}

// DietLabel classifies a species by its representative genome's diet
// gene. Thresholds here (0.35/0.65) are deliberately different from
// Phenotype.IsHerbivore/IsCarnivore's 0.4/0.6 split — species labeling
// uses a wider omnivore band than individual foraging behavior does.
type DietLabel int

const (
	DietHerbivore DietLabel = iota
	DietOmnivore
	DietCarnivore
)

func (d DietLabel) String() string {
	switch d {
	case DietHerbivore:
		return "Herbivore"
	case DietCarnivore:
		return "Carnivore"
	default:
		return "Omnivore"
	}
}

func labelForDiet(diet float64) DietLabel {
	switch {
	case diet < 0.35:
		return DietHerbivore
	case diet > 0.65:
		return DietCarnivore
	default:
		return DietOmnivore
	}
}

// Species is a named, trackable lineage.
type Species struct {
	ID                 uint64
	Name               string
	Color              RGB
	AncestorID         uint64 // 0 if founding species
	RepresentativeGenome genome.Genome
	Population         int
	TotalBorn          int
	TotalDied          int
	AppearedTick       uint64
	ExtinctTick        *uint64
	PeakPopulation     int
	generationSum      uint64
	DietLabel          DietLabel
}

// AverageGeneration returns the mean generation number over every birth
// ever recorded for this species, or 0 if it has never had a birth.
func (s *Species) AverageGeneration() float64 {
	if s.TotalBorn == 0 {
		return 0
	}
	return float64(s.generationSum) / float64(s.TotalBorn)
}

// RecordBirth accounts for a new member of this species.
func (s *Species) RecordBirth(generation int) {
	s.Population++
	s.TotalBorn++
	s.generationSum += uint64(generation)
	if s.Population > s.PeakPopulation {
		s.PeakPopulation = s.Population
	}
}

// RecordDeath accounts for the loss of a member, marking the species
// extinct (once, at the tick it first hits zero) if none remain.
func (s *Species) RecordDeath(tick uint64) {
	if s.Population > 0 {
		s.Population--
	}
	s.TotalDied++
	if s.Population == 0 && s.ExtinctTick == nil {
		t := tick
		s.ExtinctTick = &t
	}
}

// Registry tracks every species that has ever existed.
type Registry struct {
	species map[uint64]*Species
	nextID  uint64
}

// NewRegistry creates an empty species registry.
func NewRegistry() *Registry {
	return &Registry{species: make(map[uint64]*Species)}
}

// CreateSpecies registers a new species founded at the given tick.
func (r *Registry) CreateSpecies(rng *rand.Rand, ancestorID uint64, rep genome.Genome, tick uint64) *Species {
	r.nextID++
	s := &Species{
		ID:                   r.nextID,
		Name:                 GenerateName(rng),
		Color:                GenerateColor(rng),
		AncestorID:           ancestorID,
		RepresentativeGenome: rep,
		AppearedTick:         tick,
		DietLabel:            labelForDiet(rep.Genes[genome.Diet]),
	}
	r.species[s.ID] = s
	return s
}

// Get returns the species with the given ID, or nil if unknown.
func (r *Registry) Get(id uint64) *Species {
	return r.species[id]
}

// LivingSpecies returns every species with at least one living member.
func (r *Registry) LivingSpecies() []*Species {
	out := make([]*Species, 0, len(r.species))
	for _, s := range r.species {
		if s.Population > 0 {
			out = append(out, s)
		}
	}
	return out
}

// TotalPopulation sums the population of every living species.
func (r *Registry) TotalPopulation() int {
	total := 0
	for _, s := range r.species {
		total += s.Population
	}
	return total
}

// CheckSpeciation reports whether a genome has diverged far enough from
// its species' representative genome to justify splitting off a new
// species, given the configured distance threshold.
func CheckSpeciation(g genome.Genome, parentSpecies *Species, threshold float64) bool {
	return g.Distance(parentSpecies.RepresentativeGenome) > threshold
}
