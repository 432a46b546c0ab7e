package civ

import "testing"

func TestNationDiplomacyDefaultsToUnknown(t *testing.T) {
	n := NewNation(1, "Kelmoria", "Kelmorian", 100, GovTribal)
	if got := n.StatusWith(2); got != DiploUnknown {
		t.Errorf("status = %v, want Unknown", got)
	}
	n.SetStatusWith(2, DiploWar)
	if got := n.StatusWith(2); got != DiploWar {
		t.Errorf("status = %v, want War", got)
	}
}

func TestNationPopulationSumsSettlements(t *testing.T) {
	n := NewNation(1, "Kelmoria", "Kelmorian", 100, GovMonarchy)
	n.Settlements = []Settlement{
		{ID: 1, Population: 40},
		{ID: 2, Population: 60},
	}
	if got := n.Population(); got != 100 {
		t.Errorf("population = %d, want 100", got)
	}
}

func TestCultureSplitInheritsLanguage(t *testing.T) {
	parent := NewCulture(1, "Old Kelmor", 50, 10, 10)
	parent.LanguageFamily = "Kelmoric"

	child := parent.Split(2, "New Kelmor", 200, 12, 12)
	if child.ParentCultureID != parent.ID {
		t.Errorf("ParentCultureID = %d, want %d", child.ParentCultureID, parent.ID)
	}
	if child.LanguageFamily != "Kelmoric" {
		t.Errorf("LanguageFamily = %q, want inherited %q", child.LanguageFamily, "Kelmoric")
	}
}
