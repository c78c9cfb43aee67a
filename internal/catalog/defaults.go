package catalog

import "github.com/ratemyshots/ratemyshots-server/internal/domain"

// defaultItems is the built-in gallery data set. The first two items were shot
// in the luxury interior, the rest against the grey studio backdrop.
var defaultItems = []domain.CatalogItem{
	{
		ID:      "bild-1",
		Title:   "Silk Blouse + Pencil Skirt",
		Src:     "/images/Bild-1.png",
		Setting: domain.SettingLuxuryInterior,
		Hotness: 3,
		Style:   domain.StyleBusiness,
		Tags:    []string{"silk blouse", "pencil skirt", "tablet", "golden hour", "city view"},
	},
	{
		ID:      "bild-2",
		Title:   "Cream Blouse + Midi Skirt",
		Src:     "/images/Bild-2.png",
		Setting: domain.SettingLuxuryInterior,
		Hotness: 3,
		Style:   domain.StyleBusiness,
		Tags:    []string{"cream blouse", "midi skirt", "tablet", "penthouse", "skyline"},
	},
	{
		ID:      "bild-3",
		Title:   "White Shirt + Grey Skirt",
		Src:     "/images/Bild-3.png",
		Setting: domain.SettingStudioGrey,
		Hotness: 2,
		Style:   domain.StyleClean,
		Tags:    []string{"white shirt", "grey pencil skirt", "phone", "loafers", "office look"},
	},
	{
		ID:      "bild-4",
		Title:   "White Shirt + Wool Skirt",
		Src:     "/images/Bild-4.png",
		Setting: domain.SettingStudioGrey,
		Hotness: 2,
		Style:   domain.StyleClean,
		Tags:    []string{"white shirt", "wool skirt", "phone", "brown loafers", "work vibe"},
	},
	{
		ID:      "bild-5",
		Title:   "White Sleeveless Dress",
		Src:     "/images/Bild-5.png",
		Setting: domain.SettingStudioGrey,
		Hotness: 4,
		Style:   domain.StyleElegant,
		Tags:    []string{"white dress", "sleeveless", "v-neck", "phone", "sheer tights", "pumps"},
	},
	{
		ID:      "bild-6",
		Title:   "Black Corset Mini Dress",
		Src:     "/images/Bild-6.png",
		Setting: domain.SettingStudioGrey,
		Hotness: 5,
		Style:   domain.StyleHot,
		Tags:    []string{"corset dress", "mini", "sheer sleeves", "strappy heels", "sheer tights"},
	},
	{
		ID:      "bild-7",
		Title:   "Black Knit Dress + Belt",
		Src:     "/images/Bild-7.png",
		Setting: domain.SettingStudioGrey,
		Hotness: 3,
		Style:   domain.StyleBusiness,
		Tags:    []string{"knit dress", "midi length", "belt", "sheer tights", "pumps"},
	},
	{
		ID:      "bild-8",
		Title:   "Black Blazer + Skinny Jeans",
		Src:     "/images/Bild-8.png",
		Setting: domain.SettingStudioGrey,
		Hotness: 3,
		Style:   domain.StyleBusiness,
		Tags:    []string{"black blazer", "white top", "skinny jeans", "pumps", "casual chic"},
	},
	{
		ID:      "bild-9",
		Title:   "Black Top + Leather Skirt",
		Src:     "/images/Bild-9.png",
		Setting: domain.SettingStudioGrey,
		Hotness: 3,
		Style:   domain.StyleBusiness,
		Tags:    []string{"black top", "leather pencil skirt", "ankle boots", "sheer tights"},
	},
	{
		ID:      "bild-10",
		Title:   "Burgundy Cardigan + Skirt",
		Src:     "/images/Bild-10.png",
		Setting: domain.SettingStudioGrey,
		Hotness: 2,
		Style:   domain.StyleClean,
		Tags:    []string{"burgundy cardigan", "black skirt", "sheer tights", "pumps", "cozy"},
	},
	{
		ID:      "bild-11",
		Title:   "White Sheath Dress",
		Src:     "/images/Bild-11.png",
		Setting: domain.SettingStudioGrey,
		Hotness: 4,
		Style:   domain.StyleElegant,
		Tags:    []string{"white sheath dress", "sleeveless", "sheer tights", "pumps", "necklace"},
	},
	{
		ID:      "bild-12",
		Title:   "Black Sheath Dress + Belt",
		Src:     "/images/Bild-12.png",
		Setting: domain.SettingStudioGrey,
		Hotness: 3,
		Style:   domain.StyleBusiness,
		Tags:    []string{"black dress", "half sleeve", "belt", "sheer tights", "pumps", "classic"},
	},
	{
		ID:      "bild-13",
		Title:   "Turtleneck + Leather Skirt",
		Src:     "/images/Bild-13.png",
		Setting: domain.SettingStudioGrey,
		Hotness: 3,
		Style:   domain.StyleBusiness,
		Tags:    []string{"black turtleneck", "leather skirt", "ankle boots", "sheer tights"},
	},
	{
		ID:      "bild-14",
		Title:   "Beige Turtleneck + Trousers",
		Src:     "/images/Bild-14.png",
		Setting: domain.SettingStudioGrey,
		Hotness: 1,
		Style:   domain.StyleConservative,
		Tags:    []string{"beige turtleneck", "navy trousers", "minimal", "covered", "professional"},
	},
	{
		ID:      "bild-15",
		Title:   "Camel Blazer + Black Jeans",
		Src:     "/images/Bild-15.png",
		Setting: domain.SettingStudioGrey,
		Hotness: 2,
		Style:   domain.StyleClean,
		Tags:    []string{"camel blazer", "white top", "black jeans", "pumps", "smart casual"},
	},
	{
		ID:      "bild-16",
		Title:   "Black Blazer Dress",
		Src:     "/images/Bild-16.png",
		Setting: domain.SettingStudioGrey,
		Hotness: 4,
		Style:   domain.StyleElegant,
		Tags:    []string{"blazer dress", "deep v-neck", "belt", "sheer tights", "stilettos"},
	},
}
