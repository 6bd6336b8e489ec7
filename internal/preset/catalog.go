// Package preset ships the fixed reference catalog offered as a shortcut
// when adding inventory. The catalog is static data embedded at build time;
// quantity is always entered manually by the user.
package preset

import (
	_ "embed"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var catalogYAML []byte

// Item is one reference catalog entry. Selecting it pre-fills name,
// category and price when adding an inventory item.
type Item struct {
	Name     string
	Category string
	Price    decimal.Decimal
}

type rawCatalog struct {
	Presets []rawItem `yaml:"presets"`
}

type rawItem struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Price    string `yaml:"price"`
}

// Load parses the embedded catalog. The data is compiled in, so an error
// here means the build itself is broken.
func Load() ([]Item, error) {
	var raw rawCatalog
	if err := yaml.Unmarshal(catalogYAML, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse preset catalog: %w", err)
	}
	items := make([]Item, 0, len(raw.Presets))
	for i, entry := range raw.Presets {
		price, err := decimal.NewFromString(entry.Price)
		if err != nil {
			return nil, fmt.Errorf("preset %d (%s): bad price %q: %w", i+1, entry.Name, entry.Price, err)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("preset %d (%s): negative price %s", i+1, entry.Name, price)
		}
		items = append(items, Item{
			Name:     entry.Name,
			Category: entry.Category,
			Price:    price,
		})
	}
	return items, nil
}
