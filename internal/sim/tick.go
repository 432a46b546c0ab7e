package sim

import (
	"github.com/evoterra/evoterra/internal/creature"
	"github.com/evoterra/evoterra/internal/history"
	"github.com/evoterra/evoterra/internal/species"
)

// Tick advances the simulation by n ticks. Each tick runs ten ordered
// phases: ecosystem prep, metabolism and movement, spatial index
// rebuild, ecosystem count rollup, herbivore feeding, carnivore
// hunting, reproduction, death sweep, periodic speciation, and finally
// the aggregate history rollup.
func (s *Simulation) Tick(n int) {
	for i := 0; i < n; i++ {
		s.tickOnce()
	}
}

func (s *Simulation) tickOnce() {
	s.phaseEcosystemPrep()
	s.phaseMetabolismAndMovement()
	s.phaseRebuildSpatialIndex()
	s.phaseEcosystemCounts()
	s.phaseHerbivoreFeeding()
	s.phaseCarnivoreHunting()
	s.phaseReproduction()
	s.phaseDeathSweep()
	s.phaseSpeciation()
	s.phaseRollup()

	s.tick++
}

func (s *Simulation) phaseEcosystemPrep() {
	for y := range s.Tiles {
		for x := range s.Tiles[y] {
			s.Tiles[y][x].ResetCounts()
			s.Tiles[y][x].TickPlantGrowth()
		}
	}
}

func (s *Simulation) phaseMetabolismAndMovement() {
	width := float64(s.Config.WorldWidth)
	height := float64(s.Config.WorldHeight)

	for _, c := range s.Creatures {
		if !c.Alive {
			continue
		}
		c.TickMetabolism()
		if !c.Alive {
			continue
		}

		tx, ty := tileCoords(c, s.Config.WorldWidth, s.Config.WorldHeight)
		cell := &s.World.Terrain[ty][tx]
		c.ApplyTemperatureStress(cell.Temperature)
		c.ApplyDroughtStress(cell.Rainfall, requiredRainfall(c.Phenotype.DroughtTolerance))
		if !c.Alive {
			continue
		}

		if !c.HasTarget() || c.Age%3 == 0 {
			c.ChooseDirection(s.creatureRng, width, height)
		}
		c.MoveTowardsTarget(width)
	}
}

// requiredRainfall is the minimum rainfall a creature needs to avoid
// drought stress, scaled down by its drought tolerance gene.
func requiredRainfall(droughtTolerance float64) float64 {
	return 6500.0 * (1.0 - droughtTolerance*0.8)
}

func tileCoords(c *creature.Creature, width, height int) (int, int) {
	x := int(c.X) % width
	if x < 0 {
		x += width
	}
	y := int(c.Y)
	if y < 0 {
		y = 0
	}
	if y >= height {
		y = height - 1
	}
	return x, y
}

func (s *Simulation) phaseRebuildSpatialIndex() {
	s.tileIndex = make(map[tileKey][]int)
	for i, c := range s.Creatures {
		if !c.Alive {
			continue
		}
		x, y := tileCoords(c, s.Config.WorldWidth, s.Config.WorldHeight)
		key := tileKey{x, y}
		s.tileIndex[key] = append(s.tileIndex[key], i)
	}
}

func (s *Simulation) phaseEcosystemCounts() {
	for key, indices := range s.tileIndex {
		tile := &s.Tiles[key.y][key.x]
		for _, idx := range indices {
			c := s.Creatures[idx]
			tile.CreatureCount++
			if c.Phenotype.Diet < 0.6 {
				tile.HerbivoreCount++
			}
			if c.Phenotype.Diet >= 0.2 {
				tile.CarnivoreCount++
			}
		}
	}
}

func (s *Simulation) phaseHerbivoreFeeding() {
	for key, indices := range s.tileIndex {
		tile := &s.Tiles[key.y][key.x]
		for _, idx := range indices {
			c := s.Creatures[idx]
			if !c.Alive || c.Phenotype.Diet >= 0.6 {
				continue
			}
			efficiency := 1.0 - c.Phenotype.Diet
			maxIntake := c.Phenotype.BodySize * 3.0 * efficiency
			available := tile.ConsumePlants(maxIntake)
			c.EatPlants(available)
		}
	}
}

func (s *Simulation) phaseCarnivoreHunting() {
	for _, indices := range s.tileIndex {
		for _, idx := range indices {
			hunter := s.Creatures[idx]
			if !hunter.Alive || hunter.Phenotype.Diet < 0.2 {
				continue
			}
			for _, preyIdx := range indices {
				if preyIdx == idx {
					continue
				}
				prey := s.Creatures[preyIdx]
				if !prey.Alive {
					continue
				}
				if hunter.Hunt(prey, s.creatureRng) {
					break
				}
			}
		}
	}
}

func (s *Simulation) phaseReproduction() {
	for _, indices := range s.tileIndex {
		for _, idx := range indices {
			parent := s.Creatures[idx]
			if !parent.CanReproduce() {
				continue
			}
			for _, partnerIdx := range indices {
				if partnerIdx == idx {
					continue
				}
				partner := s.Creatures[partnerIdx]
				if partner.SpeciesID != parent.SpeciesID || !partner.CanReproduce() {
					continue
				}

				genomes := parent.Reproduce(partner, s.creatureRng)
				sp := s.Species.Get(parent.SpeciesID)
				for _, g := range genomes {
					if len(s.Creatures) >= s.Config.MaxCreatures {
						break
					}
					generation := parent.Generation + 1
					child := creature.New(s.nextCreatureID, parent.SpeciesID, g, parent.X, parent.Y, generation)
					s.nextCreatureID++
					s.Creatures = append(s.Creatures, child)
					if sp != nil {
						sp.RecordBirth(generation)
					}
				}
				break
			}
		}
	}
}

func (s *Simulation) phaseDeathSweep() {
	alive := s.Creatures[:0]
	for _, c := range s.Creatures {
		if c.Alive {
			alive = append(alive, c)
			continue
		}
		if sp := s.Species.Get(c.SpeciesID); sp != nil {
			sp.RecordDeath(s.tick)
			if sp.Population == 0 {
				s.History.Record(history.Event{
					Kind:      history.KindSpeciesExtinct,
					Category:  history.CategoryPopulation,
					Year:      s.tick,
					Description: sp.Name + " goes extinct",
				})
			}
		}
	}
	s.Creatures = alive
}

func (s *Simulation) phaseSpeciation() {
	if s.Config.SpeciationCheckInterval == 0 || s.tick%s.Config.SpeciationCheckInterval != 0 {
		return
	}

	for _, c := range s.Creatures {
		if !c.Alive {
			continue
		}
		sp := s.Species.Get(c.SpeciesID)
		if sp == nil {
			continue
		}
		if !species.CheckSpeciation(c.Genome, sp, s.Config.SpeciationThreshold) {
			continue
		}

		newSpecies := s.Species.CreateSpecies(s.creatureRng, sp.ID, c.Genome, s.tick)
		s.History.Record(history.Event{
			Kind:      history.KindSpeciesAppeared,
			Category:  history.CategoryPopulation,
			Year:      s.tick,
			Description: newSpecies.Name + " diverges from " + sp.Name,
		})

		const boxRadius = 15
		const distFactor = 0.7

		for _, other := range s.Creatures {
			if !other.Alive || other.SpeciesID != sp.ID {
				continue
			}
			if absFloat(other.X-c.X) > boxRadius || absFloat(other.Y-c.Y) > boxRadius {
				continue
			}
			if other.Genome.Distance(c.Genome) >= distFactor*s.Config.SpeciationThreshold {
				continue
			}
			sp.RecordDeath(s.tick)
			other.SpeciesID = newSpecies.ID
			newSpecies.RecordBirth(other.Generation)
		}
	}
}

func (s *Simulation) phaseRollup() {
	herb, carn := 0, 0
	for _, c := range s.Creatures {
		if c.Phenotype.IsHerbivore() {
			herb++
		} else if c.Phenotype.IsCarnivore() {
			carn++
		}
	}

	s.recomputeCivAggregates()

	s.PopulationHistory = append(s.PopulationHistory, PopulationSnapshot{
		Tick:            s.tick,
		TotalPopulation: len(s.Creatures),
		HerbivoreCount:  herb,
		CarnivoreCount:  carn,
		SpeciesCount:    len(s.Species.LivingSpecies()),
		NationCount:     len(s.Nations),
		CultureCount:    len(s.Cultures),
		ReligionCount:   len(s.Religions),
	})
}

// recomputeCivAggregates derives each nation's capital population from
// the creature counts of its owned tiles, and each religion's believer
// count from the total population of every nation, exactly as spec.md
// §3 requires for Nation/Culture/Religion ("derived state, not primary").
func (s *Simulation) recomputeCivAggregates() {
	width := s.Config.WorldWidth
	for _, n := range s.Nations {
		pop := 0
		for _, idx := range n.ControlledTiles {
			x, y := idx%width, idx/width
			pop += s.Tiles[y][x].CreatureCount
		}
		if len(n.Settlements) > 0 {
			n.Settlements[0].Population = pop
		}
	}

	totalPop := 0
	for _, n := range s.Nations {
		totalPop += n.Population()
	}
	for _, r := range s.Religions {
		r.Believers = totalPop
	}
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
