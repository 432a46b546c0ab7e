package worldgen

import "testing"

func TestAllBiomesHaveNameAndColor(t *testing.T) {
	for _, b := range AllBiomes {
		if b.Name() == "Unknown" {
			t.Errorf("biome %d has no name mapping", b)
		}
		if b.Color() == (RGB{}) {
			t.Errorf("biome %d has no color mapping", b)
		}
	}
}

func TestOnlyOceanAndIceCapAreUninhabitable(t *testing.T) {
	for _, b := range AllBiomes {
		habitable := b.IsHabitable()
		shouldBeUninhabitable := b == BiomeIceCap || b == BiomeOcean
		if habitable == shouldBeUninhabitable {
			t.Errorf("biome %s habitability = %v, want %v", b.Name(), habitable, !shouldBeUninhabitable)
		}
	}
}

func TestWaterBiomesHaveNoPlantGrowth(t *testing.T) {
	if BiomeOcean.PlantGrowthRate() != 0 || BiomeOcean.MaxPlantBiomass() != 0 {
		t.Error("ocean should have zero plant growth and biomass")
	}
	if BiomeIceCap.PlantGrowthRate() != 0 || BiomeIceCap.MaxPlantBiomass() != 0 {
		t.Error("ice cap should have zero plant growth and biomass")
	}
}

func TestRainforestHasHighestGrowthRate(t *testing.T) {
	for _, b := range AllBiomes {
		if b == BiomeRainforest {
			continue
		}
		if b.PlantGrowthRate() > BiomeRainforest.PlantGrowthRate() {
			t.Errorf("%s growth rate %f exceeds rainforest's %f", b.Name(), b.PlantGrowthRate(), BiomeRainforest.PlantGrowthRate())
		}
	}
}
