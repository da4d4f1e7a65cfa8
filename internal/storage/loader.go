package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/denisok6893-rgb/red-flag-checker/internal/domain"
)

// Export is the file form of the persisted documents.
type Export struct {
	TraitProfiles map[string]domain.Selections    `json:"traitProfiles"`
	CustomTraits  map[string][]domain.CustomTrait `json:"customTraits,omitempty"`
}

// LoadExportFromFile reads profiles and custom traits from a JSON file.
func LoadExportFromFile(path string) (Export, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Export{}, fmt.Errorf("read export file: %w", err)
	}

	var exp Export
	if err := json.Unmarshal(b, &exp); err != nil {
		return Export{}, fmt.Errorf("unmarshal export: %w", err)
	}
	return exp, nil
}

// LoadSelectionsFromFile reads a trait id -> level JSON object.
func LoadSelectionsFromFile(path string) (domain.Selections, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read selections file: %w", err)
	}

	var sel domain.Selections
	if err := json.Unmarshal(b, &sel); err != nil {
		return nil, fmt.Errorf("unmarshal selections: %w", err)
	}
	for id, lvl := range sel {
		if !lvl.Valid() {
			return nil, fmt.Errorf("selection %s: unknown level %q", id, lvl)
		}
	}
	return sel, nil
}
