package genome

// Phenotype is the expressed, simulation-facing form of a Genome. These
// are the values tick phases actually read; the genome itself is never
// consulted directly outside of reproduction and speciation.
type Phenotype struct {
	BodySize         float64 // 0.2 - 5.0
	Speed            float64 // 0.3 - 3.0 tiles/tick
	SenseRange       float64 // 1.0 - 8.0 tiles
	Diet             float64 // 0 = pure herbivore, 1 = pure carnivore
	ColdTolerance    float64
	HeatTolerance    float64
	Camouflage       float64 // 0 - 1
	Aggression       float64 // 0 - 1
	MaxAge           int     // 50 - 500 ticks
	FertilityThresh  float64 // energy needed to reproduce
	OffspringCount   int     // 1 - 4
	MetabolicRate    float64 // 0.5 - 2.0
	DroughtTolerance float64 // 0 = needs water, 1 = desert-adapted
	TerrainMobility  float64
}

// FromGenome expresses a genome into its phenotype via fixed affine maps.
func FromGenome(g Genome) Phenotype {
	gn := g.Genes
	return Phenotype{
		BodySize:         0.2 + gn[BodySize]*4.8,
		Speed:            0.3 + gn[Speed]*2.7,
		SenseRange:       1.0 + gn[SenseRange]*7.0,
		Diet:             gn[Diet],
		ColdTolerance:    -35.0 + gn[ColdTolerance]*40.0,
		HeatTolerance:    -5.0 + gn[HeatTolerance]*40.0,
		Camouflage:       gn[Camouflage],
		Aggression:       gn[Aggression],
		MaxAge:           50 + int(gn[Longevity]*450.0),
		FertilityThresh:  30.0 + (1.0-gn[Fertility])*70.0,
		OffspringCount:   1 + int(gn[OffspringCount]*3.0),
		MetabolicRate:    0.5 + (1.0-gn[EnergyEfficiency])*1.5,
		DroughtTolerance: 1.0 - gn[WaterNeed],
		TerrainMobility:  gn[LegStrength],
	}
}

// CanTolerateTemperature reports whether temp falls within this
// phenotype's survivable range.
func (p Phenotype) CanTolerateTemperature(temp float64) bool {
	return temp >= p.ColdTolerance && temp <= p.HeatTolerance
}

// BaseEnergyCost is the per-tick metabolism energy cost.
func (p Phenotype) BaseEnergyCost() float64 {
	return p.BodySize * p.MetabolicRate * 0.3
}

// MovementEnergyCost is the energy cost of moving one tile.
func (p Phenotype) MovementEnergyCost() float64 {
	return p.BodySize * p.Speed * 0.15
}

// FoodValue is how much energy this creature yields if eaten.
func (p Phenotype) FoodValue() float64 {
	return p.BodySize * 12.0
}

// CombatPower is combat strength for hunting and defense.
func (p Phenotype) CombatPower() float64 {
	return p.BodySize*p.Speed*0.5 + p.Aggression*2.0
}

// IsHerbivore reports whether diet is low enough to count as herbivorous.
func (p Phenotype) IsHerbivore() bool { return p.Diet < 0.4 }

// IsCarnivore reports whether diet is high enough to count as carnivorous.
func (p Phenotype) IsCarnivore() bool { return p.Diet > 0.6 }
