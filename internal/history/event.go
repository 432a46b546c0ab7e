// Package history is an append-only log of significant simulation
// events, indexed for fast lookup by year, nation, culture, and
// religion, with importance-based pruning to bound memory growth over
// long runs.
package history

// Category groups related event kinds for filtering and display.
type Category int

const (
	CategoryWorld Category = iota
	CategoryPopulation
	CategoryCultural
	CategoryReligious
	CategoryPolitical
	CategoryMilitary
	CategoryEconomic
	CategoryNatural
)

// Kind enumerates the specific event variants this log understands. This
// is a representative subset of the reference chronicle's tagged union,
// scaled to the sketch depth this repo's civ layer implements.
type Kind int

const (
	// World / population
	KindSpeciesAppeared Kind = iota
	KindSpeciesExtinct
	KindPopulationBoom
	KindPopulationCrash
	KindMassExtinction
	// Cultural
	KindCultureFounded
	KindCultureSplit
	KindTraditionAdopted
	// Religious
	KindReligionFounded
	KindReligionSpread
	KindReligionSchism
	// Political
	KindNationFounded
	KindNationCollapsed
	KindGovernmentChanged
	KindLeaderDied
	KindLeaderAscended
	// Military
	KindWarDeclared
	KindWarEnded
	KindBattleWon
	KindBattleLost
	KindSettlementConquered
	// Economic
	KindTradeRouteEstablished
	KindTradeRouteBroken
	KindResourceDepleted
	KindFamine
	// Natural
	KindClimateShift
	KindNaturalDisaster
)

// Event is a single recorded occurrence.
type Event struct {
	Kind        Kind
	Category    Category
	Year        uint64
	Description string

	// Optional participant keys; zero value means "not applicable" for
	// this event kind. WarDeclared is the one kind that populates both
	// NationID and DefenderID simultaneously.
	NationID   uint64
	DefenderID uint64
	CultureID  uint64
	ReligionID uint64
}

// Importance returns this event's significance score in [0, 10], used
// to decide what survives pruning and what the "important events" query
// surfaces.
func (e Event) Importance() uint8 {
	switch e.Kind {
	case KindMassExtinction, KindNationCollapsed, KindReligionSchism:
		return 10
	case KindWarDeclared, KindWarEnded, KindCultureSplit:
		return 8
	case KindNationFounded, KindReligionFounded, KindSettlementConquered:
		return 7
	case KindBattleWon, KindBattleLost, KindGovernmentChanged, KindFamine:
		return 6
	case KindLeaderAscended, KindLeaderDied, KindClimateShift, KindNaturalDisaster:
		return 5
	case KindCultureFounded, KindReligionSpread, KindResourceDepleted:
		return 4
	case KindSpeciesExtinct, KindPopulationCrash, KindTradeRouteBroken:
		return 3
	case KindSpeciesAppeared, KindPopulationBoom, KindTradeRouteEstablished, KindTraditionAdopted:
		return 2
	default:
		return 1
	}
}
