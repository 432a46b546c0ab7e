package genome

import "testing"

func TestFromGenomeExtremes(t *testing.T) {
	var low, high Genome
	for i := range low.Genes {
		low.Genes[i] = 0
		high.Genes[i] = 1
	}
	pl := FromGenome(low)
	ph := FromGenome(high)

	if pl.BodySize != 0.2 {
		t.Errorf("min body size = %f, want 0.2", pl.BodySize)
	}
	if ph.BodySize != 5.0 {
		t.Errorf("max body size = %f, want 5.0", ph.BodySize)
	}
	if pl.MaxAge != 50 {
		t.Errorf("min max age = %d, want 50", pl.MaxAge)
	}
	if ph.MaxAge != 500 {
		t.Errorf("max max age = %d, want 500", ph.MaxAge)
	}
}

func TestDietClassification(t *testing.T) {
	cases := []struct {
		diet               float64
		herbivore, carnivore bool
	}{
		{0.0, true, false},
		{0.39, true, false},
		{0.4, false, false},
		{0.5, false, false},
		{0.6, false, false},
		{0.61, false, true},
		{1.0, false, true},
	}
	for _, c := range cases {
		p := Phenotype{Diet: c.diet}
		if got := p.IsHerbivore(); got != c.herbivore {
			t.Errorf("diet=%f IsHerbivore=%v, want %v", c.diet, got, c.herbivore)
		}
		if got := p.IsCarnivore(); got != c.carnivore {
			t.Errorf("diet=%f IsCarnivore=%v, want %v", c.diet, got, c.carnivore)
		}
	}
}

func TestCanTolerateTemperature(t *testing.T) {
	p := Phenotype{ColdTolerance: -10, HeatTolerance: 20}
	if !p.CanTolerateTemperature(0) {
		t.Error("expected 0 to be tolerable")
	}
	if p.CanTolerateTemperature(-11) {
		t.Error("expected -11 to be intolerable")
	}
	if p.CanTolerateTemperature(21) {
		t.Error("expected 21 to be intolerable")
	}
}

func TestDerivedCosts(t *testing.T) {
	p := Phenotype{BodySize: 2.0, MetabolicRate: 1.0, Speed: 1.0, Aggression: 0.5}
	if got := p.BaseEnergyCost(); got != 0.6 {
		t.Errorf("BaseEnergyCost = %f, want 0.6", got)
	}
	if got := p.MovementEnergyCost(); got != 0.3 {
		t.Errorf("MovementEnergyCost = %f, want 0.3", got)
	}
	if got := p.FoodValue(); got != 24.0 {
		t.Errorf("FoodValue = %f, want 24.0", got)
	}
	if got := p.CombatPower(); got != 2.0 {
		t.Errorf("CombatPower = %f, want 2.0", got)
	}
}
