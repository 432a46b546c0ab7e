package ecosystem

import "testing"

func TestNewTileStartsAtHalfCapacity(t *testing.T) {
	tile := NewTile(100.0, 0.1)
	if tile.PlantBiomass != 50.0 {
		t.Errorf("PlantBiomass = %f, want 50.0", tile.PlantBiomass)
	}
}

func TestTickPlantGrowthApproachesCapacity(t *testing.T) {
	tile := NewTile(100.0, 1.0)
	for i := 0; i < 1000; i++ {
		tile.TickPlantGrowth()
	}
	if tile.PlantBiomass > tile.MaxBiomass {
		t.Errorf("biomass exceeded capacity: %f > %f", tile.PlantBiomass, tile.MaxBiomass)
	}
	if tile.PlantBiomass < 90.0 {
		t.Errorf("biomass did not converge near capacity: %f", tile.PlantBiomass)
	}
}

func TestConsumePlantsClampsToAvailable(t *testing.T) {
	tile := NewTile(100.0, 0.1)
	tile.PlantBiomass = 5.0
	consumed := tile.ConsumePlants(20.0)
	if consumed != 5.0 {
		t.Errorf("consumed = %f, want 5.0", consumed)
	}
	if tile.PlantBiomass != 0 {
		t.Errorf("PlantBiomass = %f, want 0", tile.PlantBiomass)
	}
}

func TestResetCounts(t *testing.T) {
	tile := NewTile(100.0, 0.1)
	tile.CreatureCount = 5
	tile.HerbivoreCount = 3
	tile.CarnivoreCount = 2
	tile.ResetCounts()
	if tile.CreatureCount != 0 || tile.HerbivoreCount != 0 || tile.CarnivoreCount != 0 {
		t.Error("ResetCounts did not zero all counts")
	}
}

func TestCarryingCapacity(t *testing.T) {
	if got := CarryingCapacity(100.0); got != 20 {
		t.Errorf("CarryingCapacity(100) = %d, want 20", got)
	}
	if got := CarryingCapacity(0); got != 0 {
		t.Errorf("CarryingCapacity(0) = %d, want 0", got)
	}
}
