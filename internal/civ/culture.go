package civ

// Culture is a shared set of traits, practices, and aesthetics carried
// by one or more settlements, optionally descended from a parent
// culture that has since split or diverged.
type Culture struct {
	ID               uint64
	Name             string
	ParentCultureID  uint64 // 0 if a founding culture
	OriginYear       uint64
	OriginX, OriginY int

	Traits    []string
	Practices []string

	LanguageFamily string
	LanguageName   string

	PrimaryColor   RGB
	SecondaryColor RGB
	ArchitecturalStyle string
	ArtStyle           string
	MusicStyle         string
}

// RGB is a color in 0-255 channels, mirroring species.RGB for cultures
// and religions that want their own independent palette.
type RGB struct {
	R, G, B uint8
}

// NewCulture founds a culture with no parent.
func NewCulture(id uint64, name string, year uint64, x, y int) *Culture {
	return &Culture{
		ID:         id,
		Name:       name,
		OriginYear: year,
		OriginX:    x,
		OriginY:    y,
	}
}

// Split creates a descendant culture, inheriting the parent's language
// family and palette but free to diverge in traits and style.
func (c *Culture) Split(newID uint64, name string, year uint64, x, y int) *Culture {
	return &Culture{
		ID:              newID,
		Name:            name,
		ParentCultureID: c.ID,
		OriginYear:      year,
		OriginX:         x,
		OriginY:         y,
		LanguageFamily:  c.LanguageFamily,
		PrimaryColor:    c.PrimaryColor,
		SecondaryColor:  c.SecondaryColor,
	}
}
