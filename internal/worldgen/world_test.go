package worldgen

import "testing"

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate(30, 15, 123)
	b := Generate(30, 15, 123)

	for y := 0; y < 15; y++ {
		for x := 0; x < 30; x++ {
			ca, cb := a.Terrain[y][x], b.Terrain[y][x]
			if ca.Altitude != cb.Altitude || ca.Rainfall != cb.Rainfall || ca.Temperature != cb.Temperature {
				t.Fatalf("terrain diverged at (%d,%d) between identical-seed generations", x, y)
			}
		}
	}
}

func TestGeneratedValuesStayInRange(t *testing.T) {
	w := Generate(30, 15, 7)
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			cell := w.Terrain[y][x]
			if cell.Altitude < MinAltitude || cell.Altitude > MaxAltitude {
				t.Fatalf("altitude out of range at (%d,%d): %f", x, y, cell.Altitude)
			}
			if cell.Rainfall < MinRainfall || cell.Rainfall > MaxRainfall {
				t.Fatalf("rainfall out of range at (%d,%d): %f", x, y, cell.Rainfall)
			}
			if cell.Temperature < MinTemperature || cell.Temperature > MaxTemperature {
				t.Fatalf("temperature out of range at (%d,%d): %f", x, y, cell.Temperature)
			}
		}
	}
}

func TestBiomePresencesSumToOne(t *testing.T) {
	w := Generate(20, 10, 3)
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			cell := w.Terrain[y][x]
			total := 0.0
			for _, p := range cell.Presences {
				total += p.Presence
			}
			if len(cell.Presences) > 0 {
				if diff := total - 1.0; diff < -1e-6 || diff > 1e-6 {
					t.Fatalf("presences at (%d,%d) summed to %f, want 1.0", x, y, total)
				}
			}
		}
	}
}

func TestHabitableTilesAreLandBiomes(t *testing.T) {
	w := Generate(30, 15, 5)
	for _, tile := range w.HabitableTiles() {
		biome := w.Terrain[tile[1]][tile[0]].DominantBiome()
		if !biome.IsHabitable() {
			t.Errorf("tile (%d,%d) has non-habitable dominant biome %s", tile[0], tile[1], biome.Name())
		}
	}
}

func TestDifferentSeedsProduceDifferentTerrain(t *testing.T) {
	a := Generate(30, 15, 1)
	b := Generate(30, 15, 2)

	identical := true
	for y := 0; y < 15 && identical; y++ {
		for x := 0; x < 30; x++ {
			if a.Terrain[y][x].Altitude != b.Terrain[y][x].Altitude {
				identical = false
				break
			}
		}
	}
	if identical {
		t.Error("expected different seeds to produce different terrain")
	}
}
