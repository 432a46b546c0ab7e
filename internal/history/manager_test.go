package history

import "testing"

func TestRecordIndexesByYear(t *testing.T) {
	m := NewManager()
	m.Record(Event{Kind: KindSpeciesAppeared, Year: 10})
	m.Record(Event{Kind: KindSpeciesAppeared, Year: 10})
	m.Record(Event{Kind: KindSpeciesAppeared, Year: 11})

	if got := len(m.GetEventsInYear(10)); got != 2 {
		t.Errorf("events in year 10 = %d, want 2", got)
	}
	if got := len(m.GetEventsInYear(11)); got != 1 {
		t.Errorf("events in year 11 = %d, want 1", got)
	}
}

func TestWarDeclaredIndexesBothNations(t *testing.T) {
	m := NewManager()
	m.Record(Event{Kind: KindWarDeclared, Year: 5, NationID: 1, DefenderID: 2})

	if got := len(m.GetEventsForNation(1)); got != 1 {
		t.Errorf("attacker events = %d, want 1", got)
	}
	if got := len(m.GetEventsForNation(2)); got != 1 {
		t.Errorf("defender events = %d, want 1", got)
	}
}

func TestPruneKeepsOnlyImportantEventsAndClearsSecondaryIndices(t *testing.T) {
	m := NewManager()
	m.Record(Event{Kind: KindSpeciesAppeared, Year: 1, NationID: 1}) // importance 2, pruned
	m.Record(Event{Kind: KindNationFounded, Year: 1, NationID: 1})   // importance 7, kept

	if got := len(m.GetEventsForNation(1)); got != 2 {
		t.Fatalf("expected 2 indexed events before prune, got %d", got)
	}

	m.prune()

	if got := len(m.events); got != 1 {
		t.Errorf("events retained after prune = %d, want 1", got)
	}
	if got := len(m.GetEventsInYear(1)); got != 1 {
		t.Errorf("by-year index after prune = %d, want 1 (rebuilt)", got)
	}
	if got := len(m.GetEventsForNation(1)); got != 0 {
		t.Errorf("by-nation index after prune = %d, want 0 (cleared, not rebuilt)", got)
	}
}

func TestGetRecentEventsNewestFirst(t *testing.T) {
	m := NewManager()
	m.Record(Event{Kind: KindSpeciesAppeared, Year: 1})
	m.Record(Event{Kind: KindSpeciesAppeared, Year: 2})
	m.Record(Event{Kind: KindSpeciesAppeared, Year: 3})

	recent := m.GetRecentEvents(2)
	if len(recent) != 2 {
		t.Fatalf("expected 2 recent events, got %d", len(recent))
	}
	if recent[0].Year != 3 || recent[1].Year != 2 {
		t.Errorf("expected newest-first order, got years %d, %d", recent[0].Year, recent[1].Year)
	}
}

func TestGetImportantEvents(t *testing.T) {
	m := NewManager()
	m.Record(Event{Kind: KindSpeciesAppeared, Year: 1}) // importance 2
	m.Record(Event{Kind: KindMassExtinction, Year: 1})  // importance 10

	important := m.GetImportantEvents(5)
	if len(important) != 1 {
		t.Errorf("important events = %d, want 1", len(important))
	}
}

func TestGetTimeline(t *testing.T) {
	m := NewManager()
	m.Record(Event{Kind: KindSpeciesAppeared, Year: 1})
	m.Record(Event{Kind: KindSpeciesAppeared, Year: 5})
	m.Record(Event{Kind: KindSpeciesAppeared, Year: 10})

	timeline := m.GetTimeline(2, 9)
	if len(timeline) != 1 || timeline[0].Year != 5 {
		t.Errorf("expected 1 event in range, got %d", len(timeline))
	}
}
