package catalog

import "github.com/ratemyshots/ratemyshots-server/internal/domain"

// styleByHotness is the fixed bijective lookup between hotness levels and
// style categories. Catalog entries are normalized against it on load, so
// hotness and style can never drift apart.
var styleByHotness = map[int]domain.Style{
	1: domain.StyleConservative,
	2: domain.StyleClean,
	3: domain.StyleBusiness,
	4: domain.StyleElegant,
	5: domain.StyleHot,
}

// hotnessByStyle is the inverse of styleByHotness.
var hotnessByStyle = map[domain.Style]int{
	domain.StyleConservative: 1,
	domain.StyleClean:        2,
	domain.StyleBusiness:     3,
	domain.StyleElegant:      4,
	domain.StyleHot:          5,
}

// StyleFromHotness returns the style category for a hotness level.
// The second result is false for levels outside 1-5.
func StyleFromHotness(hotness int) (domain.Style, bool) {
	s, ok := styleByHotness[hotness]
	return s, ok
}

// HotnessFromStyle returns the hotness level for a style category.
func HotnessFromStyle(style domain.Style) (int, bool) {
	h, ok := hotnessByStyle[style]
	return h, ok
}

// StyleInfo carries display metadata for one style category.
type StyleInfo struct {
	Style       domain.Style `json:"style"`
	Label       string       `json:"label"`
	Hotness     int          `json:"hotness"`
	Description string       `json:"description"`
}

// styleInfos lists all style categories in hotness order.
var styleInfos = []StyleInfo{
	{Style: domain.StyleConservative, Label: "Conservative", Hotness: 1, Description: "Fully covered, very professional"},
	{Style: domain.StyleClean, Label: "Clean", Hotness: 2, Description: "Classic, subtle, tidy"},
	{Style: domain.StyleBusiness, Label: "Business", Hotness: 3, Description: "Elegant business, slightly fitted"},
	{Style: domain.StyleElegant, Label: "Elegant", Hotness: 4, Description: "Fitted, feminine, sleeveless"},
	{Style: domain.StyleHot, Label: "Hot", Hotness: 5, Description: "Short, tight, open neckline"},
}

// Styles returns display metadata for every style category in hotness order.
func Styles() []StyleInfo {
	out := make([]StyleInfo, len(styleInfos))
	copy(out, styleInfos)
	return out
}
