package worldgen

// ResourceType is a strategic or trade good a tile may carry. This is a
// simulation-A detail the distilled spec leaves unspecified; the set below
// is a representative subset of the reference economy's resource table,
// scaled down to the fixed eight-biome set this repo uses.
type ResourceType int

const (
	ResourceNone ResourceType = iota
	ResourceGrain
	ResourceFish
	ResourceGame
	ResourceIron
	ResourceGold
	ResourceFurs
	ResourceTimber
	ResourceStone
	ResourceSpices
)

// Name returns the display name of the resource.
func (r ResourceType) Name() string {
	switch r {
	case ResourceGrain:
		return "Grain"
	case ResourceFish:
		return "Fish"
	case ResourceGame:
		return "Game"
	case ResourceIron:
		return "Iron"
	case ResourceGold:
		return "Gold"
	case ResourceFurs:
		return "Furs"
	case ResourceTimber:
		return "Timber"
	case ResourceStone:
		return "Stone"
	case ResourceSpices:
		return "Spices"
	default:
		return "None"
	}
}

// resourceChance is the per-tile probability of a resource deposit in this
// biome, biased towards biomes the reference economy treats as rich.
func (b BiomeType) resourceChance() float64 {
	switch b {
	case BiomeGrassland:
		return 0.05
	case BiomeForest:
		return 0.06
	case BiomeTaiga:
		return 0.04
	case BiomeTundra:
		return 0.02
	case BiomeDesert:
		return 0.02
	case BiomeRainforest:
		return 0.05
	case BiomeOcean:
		return 0.04
	default:
		return 0.0
	}
}

// resourceOptions lists which resources can appear in this biome.
func (b BiomeType) resourceOptions() []ResourceType {
	switch b {
	case BiomeGrassland:
		return []ResourceType{ResourceGrain, ResourceGame}
	case BiomeForest:
		return []ResourceType{ResourceTimber, ResourceGame, ResourceFurs}
	case BiomeTaiga:
		return []ResourceType{ResourceFurs, ResourceTimber}
	case BiomeTundra:
		return []ResourceType{ResourceFurs}
	case BiomeDesert:
		return []ResourceType{ResourceStone, ResourceGold}
	case BiomeRainforest:
		return []ResourceType{ResourceSpices, ResourceTimber}
	case BiomeOcean:
		return []ResourceType{ResourceFish}
	default:
		return nil
	}
}
