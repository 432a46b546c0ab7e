package sim

import (
	"fmt"
	"math/rand"

	"github.com/evoterra/evoterra/internal/civ"
	"github.com/evoterra/evoterra/internal/creature"
	"github.com/evoterra/evoterra/internal/ecosystem"
	"github.com/evoterra/evoterra/internal/genome"
	"github.com/evoterra/evoterra/internal/history"
	"github.com/evoterra/evoterra/internal/species"
	"github.com/evoterra/evoterra/internal/worldgen"
)

// tileKey identifies a tile for bucketing creatures during a tick.
type tileKey struct{ x, y int }

// PopulationSnapshot is one entry in the rolling population history.
type PopulationSnapshot struct {
	Tick            uint64
	TotalPopulation int
	HerbivoreCount  int
	CarnivoreCount  int
	SpeciesCount    int
	NationCount     int
	CultureCount    int
	ReligionCount   int
}

// Simulation is the complete, independently-tickable simulation state.
// Construction is deterministic: equal Config values always produce
// identical runs.
type Simulation struct {
	Config Config
	World  *worldgen.World
	Tiles  [][]ecosystem.Tile

	Creatures []*creature.Creature
	Species   *species.Registry
	History   *history.Manager

	Nations   []*civ.Nation
	Cultures  []*civ.Culture
	Religions []*civ.Religion

	tick uint64

	worldRng    *rand.Rand
	creatureRng *rand.Rand

	nextCreatureID uint64
	nextNationID   uint64
	nextCultureID  uint64
	nextReligionID uint64

	PopulationHistory []PopulationSnapshot

	tileIndex map[tileKey][]int // rebuilt each tick; indices into Creatures
}

// New builds a simulation: generates terrain, seeds the ecosystem tiles,
// and populates the initial herbivore and carnivore species. The world
// RNG is seeded directly with cfg.Seed; the creature/reproduction RNG is
// seeded with cfg.Seed+1000, matching the reference engine's
// determinism-preserving split between world generation and population
// dynamics. A malformed cfg is a construction failure, not a panic or a
// silently degenerate simulation.
func New(cfg Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}

	s := &Simulation{
		Config:      cfg,
		World:       worldgen.Generate(cfg.WorldWidth, cfg.WorldHeight, cfg.Seed),
		Species:     species.NewRegistry(),
		History:     history.NewManager(),
		worldRng:    rand.New(rand.NewSource(int64(cfg.Seed))),
		creatureRng: rand.New(rand.NewSource(int64(cfg.Seed) + 1000)),
	}

	s.Tiles = make([][]ecosystem.Tile, cfg.WorldHeight)
	for y := range s.Tiles {
		s.Tiles[y] = make([]ecosystem.Tile, cfg.WorldWidth)
		for x := range s.Tiles[y] {
			cell := &s.World.Terrain[y][x]
			biome := cell.DominantBiome()
			s.Tiles[y][x] = ecosystem.NewTile(biome.MaxPlantBiomass(), biome.PlantGrowthRate())
		}
	}

	s.seedPopulation()
	s.seedCivilization()
	return s, nil
}

func (s *Simulation) seedPopulation() {
	habitable := s.World.HabitableTiles()
	if len(habitable) == 0 {
		return
	}

	seed := func(count int, herbivore bool) {
		for i := 0; i < count; i++ {
			var g genome.Genome
			if herbivore {
				g = genome.RandomHerbivore(s.creatureRng)
			} else {
				g = genome.RandomCarnivore(s.creatureRng)
			}
			sp := s.Species.CreateSpecies(s.creatureRng, 0, g, s.tick)

			for j := 0; j < s.Config.CreaturesPerSpecies; j++ {
				tile := habitable[s.creatureRng.Intn(len(habitable))]
				childGenome := g
				c := creature.New(s.nextCreatureID, sp.ID, childGenome, float64(tile[0]), float64(tile[1]), 0)
				s.nextCreatureID++
				s.Creatures = append(s.Creatures, c)
				sp.RecordBirth(0)
			}

			s.History.Record(history.Event{
				Kind:      history.KindSpeciesAppeared,
				Category:  history.CategoryPopulation,
				Year:      s.tick,
				Description: sp.Name + " emerges",
			})
		}
	}

	seed(s.Config.InitialHerbivoreSpecies, true)
	seed(s.Config.InitialCarnivoreSpecies, false)
}

// seedCivilization founds a single starting nation, culture, and religion
// at a random habitable tile. This is the sketch-depth political layer
// spec.md §3 describes: the nation's settlement population and the
// religion's believer count are derived state recomputed each tick from
// owned tiles; cultures are not recomputed, and none of the three is an
// independently simulated agent.
func (s *Simulation) seedCivilization() {
	habitable := s.World.HabitableTiles()
	if len(habitable) == 0 {
		return
	}
	capital := habitable[s.creatureRng.Intn(len(habitable))]

	s.nextNationID++
	nation := civ.NewNation(s.nextNationID, "Founding Tribe", "Foundling", s.tick, civ.GovTribal)
	nation.CapitalID = 1
	nation.Settlements = append(nation.Settlements, civ.Settlement{
		ID:   1,
		Name: "First Camp",
		Type: civ.SettlementCamp,
		X:    capital[0],
		Y:    capital[1],
	})
	for _, t := range tilesWithinRadius(capital, 2, s.Config.WorldWidth, s.Config.WorldHeight) {
		nation.ControlledTiles = append(nation.ControlledTiles, t[1]*s.Config.WorldWidth+t[0])
	}
	s.Nations = append(s.Nations, nation)

	s.nextCultureID++
	culture := civ.NewCulture(s.nextCultureID, "Founding Culture", s.tick, capital[0], capital[1])
	s.Cultures = append(s.Cultures, culture)

	s.nextReligionID++
	religion := civ.NewReligion(s.nextReligionID, "Old Ways", civ.ReligionAnimist, s.tick, "", culture.ID)
	s.Religions = append(s.Religions, religion)

	s.History.Record(history.Event{
		Kind:        history.KindNationFounded,
		Category:    history.CategoryPolitical,
		Year:        s.tick,
		Description: nation.Name + " is founded",
		NationID:    nation.ID,
	})
	s.History.Record(history.Event{
		Kind:        history.KindCultureFounded,
		Category:    history.CategoryCultural,
		Year:        s.tick,
		Description: culture.Name + " takes root",
		CultureID:   culture.ID,
	})
	s.History.Record(history.Event{
		Kind:        history.KindReligionFounded,
		Category:    history.CategoryReligious,
		Year:        s.tick,
		Description: religion.Name + " is founded",
		ReligionID:  religion.ID,
	})
}

// tilesWithinRadius returns every tile within radius tiles of center,
// wrapping horizontally and clamping vertically to match the world's
// east-west seam.
func tilesWithinRadius(center [2]int, radius, width, height int) [][2]int {
	var out [][2]int
	for dy := -radius; dy <= radius; dy++ {
		y := center[1] + dy
		if y < 0 || y >= height {
			continue
		}
		for dx := -radius; dx <= radius; dx++ {
			x := ((center[0]+dx)%width + width) % width
			out = append(out, [2]int{x, y})
		}
	}
	return out
}

// GetTick returns the current simulation tick.
func (s *Simulation) GetTick() uint64 { return s.tick }
