package catalog

import (
	"testing"

	"github.com/ratemyshots/ratemyshots-server/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleFromHotness(t *testing.T) {
	tests := []struct {
		hotness int
		want    domain.Style
	}{
		{1, domain.StyleConservative},
		{2, domain.StyleClean},
		{3, domain.StyleBusiness},
		{4, domain.StyleElegant},
		{5, domain.StyleHot},
	}

	for _, tt := range tests {
		got, ok := StyleFromHotness(tt.hotness)
		require.True(t, ok, "hotness %d", tt.hotness)
		assert.Equal(t, tt.want, got)

		// The mapping is bijective; the inverse must round-trip.
		back, ok := HotnessFromStyle(got)
		require.True(t, ok)
		assert.Equal(t, tt.hotness, back)
	}
}

func TestStyleFromHotness_OutOfRange(t *testing.T) {
	for _, hotness := range []int{0, 6, -1, 100} {
		_, ok := StyleFromHotness(hotness)
		assert.False(t, ok, "hotness %d should be invalid", hotness)
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	assert.Equal(t, 16, c.Len())

	// Every item's style must agree with its hotness under the lookup table.
	for _, item := range c.Items() {
		want, ok := StyleFromHotness(item.Hotness)
		require.True(t, ok, "item %s has hotness %d", item.ID, item.Hotness)
		assert.Equal(t, want, item.Style, "item %s", item.ID)
		assert.True(t, item.Setting.Valid(), "item %s", item.ID)
	}

	item, ok := c.Get("bild-6")
	require.True(t, ok)
	assert.Equal(t, "Black Corset Mini Dress", item.Title)
	assert.Equal(t, domain.StyleHot, item.Style)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestHotnessDistribution(t *testing.T) {
	dist := Default().HotnessDistribution()

	total := 0
	for level := 1; level <= 5; level++ {
		total += dist[level]
	}
	assert.Equal(t, 16, total)
	assert.Equal(t, 1, dist[1])
	assert.Equal(t, 7, dist[3])
}

func TestParse_Valid(t *testing.T) {
	data := []byte(`[
		{"id": "a", "title": "Item A", "setting": "studio-grey", "hotness": 2, "style": "hot"},
		{"id": "b", "title": "Item B", "setting": "luxury-interior", "hotness": 5}
	]`)

	c, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	// Style in the file is ignored; it is recomputed from hotness.
	a, _ := c.Get("a")
	assert.Equal(t, domain.StyleClean, a.Style)
	b, _ := c.Get("b")
	assert.Equal(t, domain.StyleHot, b.Style)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed json", `{not json`},
		{"empty array", `[]`},
		{"missing id", `[{"title": "x", "setting": "studio-grey", "hotness": 1}]`},
		{"missing title", `[{"id": "a", "setting": "studio-grey", "hotness": 1}]`},
		{"duplicate id", `[
			{"id": "a", "title": "x", "setting": "studio-grey", "hotness": 1},
			{"id": "a", "title": "y", "setting": "studio-grey", "hotness": 2}
		]`},
		{"bad setting", `[{"id": "a", "title": "x", "setting": "beach", "hotness": 1}]`},
		{"hotness too high", `[{"id": "a", "title": "x", "setting": "studio-grey", "hotness": 6}]`},
		{"hotness zero", `[{"id": "a", "title": "x", "setting": "studio-grey", "hotness": 0}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestProviderReplace(t *testing.T) {
	p := NewProvider(Default())
	assert.Equal(t, 16, p.Current().Len())

	small := New([]domain.CatalogItem{
		{ID: "x", Title: "X", Setting: domain.SettingStudioGrey, Hotness: 1, Style: domain.StyleConservative},
	})
	p.Replace(small)
	assert.Equal(t, 1, p.Current().Len())
}
