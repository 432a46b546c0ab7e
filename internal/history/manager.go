package history

// defaultMaxEvents bounds the in-memory log; once full, record() prunes
// before appending rather than growing without limit.
const defaultMaxEvents = 100000

// minRetainedImportance is the threshold prune() keeps: anything at or
// below this is considered noise once space is needed.
const minRetainedImportance = 2

// Manager is the append-only event log plus its secondary indices.
type Manager struct {
	events    []Event
	maxEvents int

	byYear     map[uint64][]int
	byNation   map[uint64][]int
	byCulture  map[uint64][]int
	byReligion map[uint64][]int
}

// NewManager creates an empty history log.
func NewManager() *Manager {
	return &Manager{
		maxEvents:  defaultMaxEvents,
		byYear:     make(map[uint64][]int),
		byNation:   make(map[uint64][]int),
		byCulture:  make(map[uint64][]int),
		byReligion: make(map[uint64][]int),
	}
}

// Record appends an event, pruning first if the log is at capacity. The
// event is always indexed by year; it is indexed by nation, culture, or
// religion only if it carries that key. WarDeclared is special-cased to
// index under both the attacking and defending nation.
func (m *Manager) Record(e Event) {
	if len(m.events) >= m.maxEvents {
		m.prune()
	}

	idx := len(m.events)
	m.events = append(m.events, e)

	m.byYear[e.Year] = append(m.byYear[e.Year], idx)

	if e.NationID != 0 {
		m.byNation[e.NationID] = append(m.byNation[e.NationID], idx)
	}
	if e.Kind == KindWarDeclared && e.DefenderID != 0 {
		m.byNation[e.DefenderID] = append(m.byNation[e.DefenderID], idx)
	}
	if e.CultureID != 0 {
		m.byCulture[e.CultureID] = append(m.byCulture[e.CultureID], idx)
	}
	if e.ReligionID != 0 {
		m.byReligion[e.ReligionID] = append(m.byReligion[e.ReligionID], idx)
	}
}

// prune keeps only events with importance greater than
// minRetainedImportance. It rebuilds the by-year index from the
// retained events but clears (rather than rebuilds) the nation, culture,
// and religion indices — a faithful quirk of the reference chronicle
// this log is modeled on: those indices stay empty until new events
// repopulate them.
func (m *Manager) prune() {
	retained := m.events[:0]
	for _, e := range m.events {
		if e.Importance() > minRetainedImportance {
			retained = append(retained, e)
		}
	}
	m.events = retained

	m.byYear = make(map[uint64][]int)
	for i, e := range m.events {
		m.byYear[e.Year] = append(m.byYear[e.Year], i)
	}
	m.byNation = make(map[uint64][]int)
	m.byCulture = make(map[uint64][]int)
	m.byReligion = make(map[uint64][]int)
}

// GetEventsInYear returns every event recorded in the given year.
func (m *Manager) GetEventsInYear(year uint64) []Event {
	return m.collect(m.byYear[year])
}

// GetEventsForNation returns every indexed event involving the given
// nation.
func (m *Manager) GetEventsForNation(nationID uint64) []Event {
	return m.collect(m.byNation[nationID])
}

// GetEventsForCulture returns every indexed event involving the given
// culture.
func (m *Manager) GetEventsForCulture(cultureID uint64) []Event {
	return m.collect(m.byCulture[cultureID])
}

// GetEventsForReligion returns every indexed event involving the given
// religion.
func (m *Manager) GetEventsForReligion(religionID uint64) []Event {
	return m.collect(m.byReligion[religionID])
}

// GetRecentEvents returns the most recent count events, newest first.
func (m *Manager) GetRecentEvents(count int) []Event {
	n := len(m.events)
	if count > n {
		count = n
	}
	out := make([]Event, count)
	for i := 0; i < count; i++ {
		out[i] = m.events[n-1-i]
	}
	return out
}

// GetImportantEvents returns every event with importance >= minImportance.
func (m *Manager) GetImportantEvents(minImportance uint8) []Event {
	var out []Event
	for _, e := range m.events {
		if e.Importance() >= minImportance {
			out = append(out, e)
		}
	}
	return out
}

// GetTimeline returns every event between start and end years, inclusive.
func (m *Manager) GetTimeline(start, end uint64) []Event {
	var out []Event
	for _, e := range m.events {
		if e.Year >= start && e.Year <= end {
			out = append(out, e)
		}
	}
	return out
}

func (m *Manager) collect(indices []int) []Event {
	out := make([]Event, len(indices))
	for i, idx := range indices {
		out[i] = m.events[idx]
	}
	return out
}

// Len returns the number of events currently retained in the log.
func (m *Manager) Len() int {
	return len(m.events)
}
