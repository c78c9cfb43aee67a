package domain

// Setting describes where a catalog photo was shot.
type Setting string

// Known shooting settings.
const (
	SettingStudioGrey     Setting = "studio-grey"
	SettingLuxuryInterior Setting = "luxury-interior"
)

// Valid returns true for a known setting value.
func (s Setting) Valid() bool {
	return s == SettingStudioGrey || s == SettingLuxuryInterior
}

// Style is the outfit style category of a catalog item.
// Styles map 1:1 onto hotness levels; the two are always kept consistent.
type Style string

// Style categories, ordered by hotness level (1-5).
const (
	StyleConservative Style = "conservative"
	StyleClean        Style = "clean"
	StyleBusiness     Style = "business"
	StyleElegant      Style = "elegant"
	StyleHot          Style = "hot"
)

// CatalogItem is one static rateable entry in the gallery.
// Items are loaded once at startup and never mutated at runtime.
type CatalogItem struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"` // Short outfit description
	Src     string   `json:"src"`   // Image path relative to the asset root
	Tags    []string `json:"tags"`  // Detailed clothing items
	Setting Setting  `json:"setting"`
	Hotness int      `json:"hotness"` // Style-intensity level, 1-5
	Style   Style    `json:"style"`   // Derived from Hotness, bijective
}

// RatedItem pairs a catalog item with the visitor's rating for it.
type RatedItem struct {
	CatalogItem
	Rating int `json:"rating"`
}
