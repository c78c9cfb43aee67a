package catalog

import (
	"encoding/json/v2"
	"fmt"
	"os"

	"github.com/ratemyshots/ratemyshots-server/internal/domain"
)

// Load reads a catalog file and validates its shape. The file holds a JSON
// array of catalog items. Hotness must be 1-5; the style field is recomputed
// from hotness so the two cannot disagree, whatever the file says.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- catalog path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse builds a catalog from raw JSON.
func Parse(data []byte) (*Catalog, error) {
	var items []domain.CatalogItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	seen := make(map[string]bool, len(items))
	for i := range items {
		item := &items[i]
		if item.ID == "" {
			return nil, fmt.Errorf("catalog item %d: missing id", i)
		}
		if seen[item.ID] {
			return nil, fmt.Errorf("catalog item %d: duplicate id %q", i, item.ID)
		}
		seen[item.ID] = true

		if item.Title == "" {
			return nil, fmt.Errorf("catalog item %q: missing title", item.ID)
		}
		if !item.Setting.Valid() {
			return nil, fmt.Errorf("catalog item %q: unknown setting %q", item.ID, item.Setting)
		}
		style, ok := StyleFromHotness(item.Hotness)
		if !ok {
			return nil, fmt.Errorf("catalog item %q: hotness %d out of range", item.ID, item.Hotness)
		}
		// Style always follows hotness under the fixed lookup table.
		item.Style = style
	}

	return New(items), nil
}
