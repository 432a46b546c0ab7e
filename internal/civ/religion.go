package civ

// ReligionType broadly classifies belief structure.
type ReligionType int

const (
	ReligionAnimist ReligionType = iota
	ReligionPolytheist
	ReligionMonotheist
	ReligionAncestorWorship
	ReligionPhilosophical
)

func (r ReligionType) String() string {
	switch r {
	case ReligionAnimist:
		return "Animist"
	case ReligionPolytheist:
		return "Polytheist"
	case ReligionMonotheist:
		return "Monotheist"
	case ReligionAncestorWorship:
		return "Ancestor Worship"
	case ReligionPhilosophical:
		return "Philosophical"
	default:
		return "Unknown"
	}
}

// Religion is a belief system that originates within a culture and may
// spread beyond it.
type Religion struct {
	ID            uint64
	Name          string
	Type          ReligionType
	FoundedYear   uint64
	FounderName   string
	HolyCityID    uint64
	OriginCultureID uint64

	// Believers is recomputed at each aggregate rollup from the total
	// population of every nation; it is derived state, never primary.
	Believers int

	Beliefs []string
	Deities []string

	SacredAnimal string
	SacredColor  RGB
	HolySymbol   string

	HasClergy    bool
	HasHolyTexts bool
	HierarchyLevel int // 0 = none, higher = more organized priesthood
}

// NewReligion founds a religion within the given culture.
func NewReligion(id uint64, name string, t ReligionType, year uint64, founder string, cultureID uint64) *Religion {
	return &Religion{
		ID:              id,
		Name:            name,
		Type:            t,
		FoundedYear:     year,
		FounderName:     founder,
		OriginCultureID: cultureID,
	}
}
