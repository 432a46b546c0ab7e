package sim

import "encoding/json"

// GetTerrainRGBA renders the terrain grid as a flat RGBA byte buffer
// (width*height*4 bytes, row-major), one dominant-biome color per tile.
// This mirrors the reference engine's canvas-facing export so a host UI
// can blit it directly into an image buffer.
func (s *Simulation) GetTerrainRGBA() []byte {
	w, h := s.Config.WorldWidth, s.Config.WorldHeight
	buf := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			biome := s.World.Terrain[y][x].DominantBiome()
			c := biome.Color()
			i := (y*w + x) * 4
			buf[i] = c.R
			buf[i+1] = c.G
			buf[i+2] = c.B
			buf[i+3] = 255
		}
	}
	return buf
}

// GetCreatureData returns a flat float32 buffer, eight floats per living
// creature: fractional position (x, y), species color (r, g, b), body
// size, diet, and energy.
func (s *Simulation) GetCreatureData() []float32 {
	out := make([]float32, 0, len(s.Creatures)*8)
	for _, c := range s.Creatures {
		if !c.Alive {
			continue
		}
		sp := s.Species.Get(c.SpeciesID)
		var r, g, b float32
		if sp != nil {
			r = float32(sp.Color.R) / 255.0
			g = float32(sp.Color.G) / 255.0
			b = float32(sp.Color.B) / 255.0
		}
		out = append(out,
			float32(c.X),
			float32(c.Y),
			r, g, b,
			float32(c.Phenotype.BodySize),
			float32(c.Phenotype.Diet),
			float32(c.Energy),
		)
	}
	return out
}

// Stats is the snapshot returned by GetStatsJSON.
type Stats struct {
	Tick            uint64 `json:"tick"`
	TotalPopulation int    `json:"total_population"`
	HerbivoreCount  int    `json:"herbivore_count"`
	CarnivoreCount  int    `json:"carnivore_count"`
	LivingSpecies   int    `json:"living_species"`
}

// GetStatsJSON returns the current tick's aggregate stats as JSON.
func (s *Simulation) GetStatsJSON() ([]byte, error) {
	herb, carn := 0, 0
	for _, c := range s.Creatures {
		if c.Phenotype.IsHerbivore() {
			herb++
		} else if c.Phenotype.IsCarnivore() {
			carn++
		}
	}
	return json.Marshal(Stats{
		Tick:            s.tick,
		TotalPopulation: len(s.Creatures),
		HerbivoreCount:  herb,
		CarnivoreCount:  carn,
		LivingSpecies:   len(s.Species.LivingSpecies()),
	})
}

// GetHistoryJSON returns the rolling population history as JSON.
func (s *Simulation) GetHistoryJSON() ([]byte, error) {
	return json.Marshal(s.PopulationHistory)
}

// BiomePresenceInfo is one biome's normalized share of a tile's character,
// as returned by GetTileInfoJSON.
type BiomePresenceInfo struct {
	Biome    string  `json:"biome"`
	Presence float64 `json:"presence"`
}

// TileCreatureInfo is a brief summary of one creature co-located on a
// tile, as returned by GetTileInfoJSON.
type TileCreatureInfo struct {
	ID        uint64  `json:"id"`
	SpeciesID uint64  `json:"species_id"`
	Diet      float64 `json:"diet"`
	Energy    float64 `json:"energy"`
}

// maxTileInfoCreatures bounds how many co-located creatures
// GetTileInfoJSON lists per tile.
const maxTileInfoCreatures = 20

// TileInfo is the JSON shape returned by GetTileInfoJSON.
type TileInfo struct {
	Altitude      float64             `json:"altitude"`
	Rainfall      float64             `json:"rainfall"`
	Temperature   float64             `json:"temperature"`
	Biome         string              `json:"biome"`
	Biomes        []BiomePresenceInfo `json:"biomes"`
	PlantBiomass  float64             `json:"plant_biomass"`
	CreatureCount int                 `json:"creature_count"`
	Creatures     []TileCreatureInfo  `json:"creatures"`
	IsRiver       bool                `json:"is_river"`
	HasResource   bool                `json:"has_resource"`
	Resource      string              `json:"resource,omitempty"`
}

// GetTileInfoJSON returns details for the tile at (x, y) — terrain
// fields, the full biome-presence breakdown, and up to
// maxTileInfoCreatures co-located creatures — or an empty JSON object if
// the coordinates are out of range.
func (s *Simulation) GetTileInfoJSON(x, y int) ([]byte, error) {
	if x < 0 || y < 0 || x >= s.Config.WorldWidth || y >= s.Config.WorldHeight {
		return []byte("{}"), nil
	}
	cell := &s.World.Terrain[y][x]
	tile := &s.Tiles[y][x]

	info := TileInfo{
		Altitude:      cell.Altitude,
		Rainfall:      cell.Rainfall,
		Temperature:   cell.Temperature,
		Biome:         cell.DominantBiome().Name(),
		PlantBiomass:  tile.PlantBiomass,
		CreatureCount: tile.CreatureCount,
		IsRiver:       cell.IsRiver,
		HasResource:   cell.HasResource,
	}
	if cell.HasResource {
		info.Resource = cell.Resource.Name()
	}
	for _, p := range cell.Presences {
		info.Biomes = append(info.Biomes, BiomePresenceInfo{
			Biome:    p.Biome.Name(),
			Presence: p.Presence,
		})
	}
	for _, c := range s.Creatures {
		if len(info.Creatures) >= maxTileInfoCreatures {
			break
		}
		if !c.Alive {
			continue
		}
		cx, cy := tileCoords(c, s.Config.WorldWidth, s.Config.WorldHeight)
		if cx != x || cy != y {
			continue
		}
		info.Creatures = append(info.Creatures, TileCreatureInfo{
			ID:        c.ID,
			SpeciesID: c.SpeciesID,
			Diet:      c.Phenotype.Diet,
			Energy:    c.Energy,
		})
	}
	return json.Marshal(info)
}
