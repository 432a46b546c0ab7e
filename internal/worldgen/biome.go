package worldgen

// BiomeType is one of the fixed set of land/ocean covers a terrain cell can
// resolve to. The set is closed: code that switches over BiomeType should
// handle all eight variants explicitly rather than falling back to a
// default case.
type BiomeType int

const (
	BiomeIceCap BiomeType = iota
	BiomeOcean
	BiomeGrassland
	BiomeForest
	BiomeTaiga
	BiomeTundra
	BiomeDesert
	BiomeRainforest
)

// AllBiomes enumerates the fixed biome set in a stable order.
var AllBiomes = [...]BiomeType{
	BiomeIceCap, BiomeOcean, BiomeGrassland, BiomeForest,
	BiomeTaiga, BiomeTundra, BiomeDesert, BiomeRainforest,
}

// RGB is a simple 8-bit-per-channel color.
type RGB struct{ R, G, B uint8 }

// Name returns the display name of the biome.
func (b BiomeType) Name() string {
	switch b {
	case BiomeIceCap:
		return "Ice Cap"
	case BiomeOcean:
		return "Ocean"
	case BiomeGrassland:
		return "Grassland"
	case BiomeForest:
		return "Forest"
	case BiomeTaiga:
		return "Taiga"
	case BiomeTundra:
		return "Tundra"
	case BiomeDesert:
		return "Desert"
	case BiomeRainforest:
		return "Rainforest"
	default:
		return "Unknown"
	}
}

// Color returns the display color used by GetTerrainRGBA.
func (b BiomeType) Color() RGB {
	switch b {
	case BiomeIceCap:
		return RGB{255, 255, 255}
	case BiomeOcean:
		return RGB{28, 66, 84}
	case BiomeGrassland:
		return RGB{167, 177, 84}
	case BiomeForest:
		return RGB{76, 132, 55}
	case BiomeTaiga:
		return RGB{43, 63, 40}
	case BiomeTundra:
		return RGB{139, 139, 128}
	case BiomeDesert:
		return RGB{253, 225, 171}
	case BiomeRainforest:
		return RGB{59, 103, 43}
	default:
		return RGB{0, 0, 0}
	}
}

// PlantGrowthRate is the plant regrowth multiplier for this biome, in [0,1].
func (b BiomeType) PlantGrowthRate() float64 {
	switch b {
	case BiomeIceCap, BiomeOcean:
		return 0.0
	case BiomeGrassland:
		return 0.6
	case BiomeForest:
		return 0.85
	case BiomeTaiga:
		return 0.25
	case BiomeTundra:
		return 0.1
	case BiomeDesert:
		return 0.05
	case BiomeRainforest:
		return 1.0
	default:
		return 0.0
	}
}

// MaxPlantBiomass is the plant carrying capacity of a tile in this biome.
func (b BiomeType) MaxPlantBiomass() float64 {
	switch b {
	case BiomeIceCap, BiomeOcean:
		return 0.0
	case BiomeGrassland:
		return 60.0
	case BiomeForest:
		return 100.0
	case BiomeTaiga:
		return 30.0
	case BiomeTundra:
		return 15.0
	case BiomeDesert:
		return 5.0
	case BiomeRainforest:
		return 120.0
	default:
		return 0.0
	}
}

// IsHabitable reports whether land creatures can occupy this biome.
func (b BiomeType) IsHabitable() bool {
	return b != BiomeIceCap && b != BiomeOcean
}

// biomeStats gives the acceptance window (in world units) a biome is
// plausible in, used by biomePresence's triangular scoring.
type biomeStats struct {
	minAltitude, maxAltitude       float64
	minRainfall, maxRainfall       float64
	minTemperature, maxTemperature float64
}

func (b BiomeType) stats() biomeStats {
	switch b {
	case BiomeIceCap:
		return biomeStats{MinAltitude, MaxAltitude, MinRainfall, MaxRainfall, MinTemperature, -15.0}
	case BiomeOcean:
		return biomeStats{MinAltitude, 0.0, MinRainfall, MaxRainfall, -15.0, MaxTemperature}
	case BiomeGrassland:
		return biomeStats{0.0, MaxAltitude, 15.0, 1575.0, -5.0, MaxTemperature}
	case BiomeForest:
		return biomeStats{0.0, MaxAltitude, 1375.0, 2975.0, -5.0, MaxTemperature}
	case BiomeTaiga:
		return biomeStats{0.0, MaxAltitude, 475.0, MaxRainfall, -15.0, 0.0}
	case BiomeTundra:
		return biomeStats{0.0, MaxAltitude, MinRainfall, 725.0, -20.0, 0.0}
	case BiomeDesert:
		return biomeStats{0.0, MaxAltitude, MinRainfall, 275.0, -5.0, MaxTemperature}
	case BiomeRainforest:
		return biomeStats{0.0, MaxAltitude, 1775.0, MaxRainfall, -5.0, MaxTemperature}
	default:
		return biomeStats{}
	}
}
