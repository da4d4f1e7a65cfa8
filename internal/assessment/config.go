package assessment

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// LoadCatalogFromFile loads a catalog from a JSON file, falling back to the
// built-in catalog on read, parse or validation errors.
func LoadCatalogFromFile(path string) (Catalog, error) {
	c := DefaultCatalog()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read catalog file: %w", err)
	}
	var loaded Catalog
	if err := json.Unmarshal(b, &loaded); err != nil {
		return c, fmt.Errorf("unmarshal catalog: %w", err)
	}
	if err := loaded.Validate(); err != nil {
		return c, fmt.Errorf("validate catalog: %w", err)
	}
	return loaded, nil
}

// Validate checks names, weight ranges and trait id uniqueness.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return errors.New("catalog has no categories")
	}
	seen := make(map[string]struct{})
	for _, cat := range c {
		if strings.TrimSpace(cat.Name) == "" {
			return errors.New("category with empty name")
		}
		for _, t := range cat.Traits {
			if strings.TrimSpace(t.Trait) == "" {
				return fmt.Errorf("category %q: trait with empty name", cat.Name)
			}
			if t.NegativeWeight < 0 || t.NegativeWeight > 100 || t.PositiveWeight < 0 || t.PositiveWeight > 100 {
				return fmt.Errorf("trait %q: weights must be within 0..100", t.Trait)
			}
			id := TraitID(cat.Name, t.Trait)
			if _, dup := seen[id]; dup {
				return fmt.Errorf("duplicate trait id %q", id)
			}
			seen[id] = struct{}{}
		}
	}
	return nil
}
