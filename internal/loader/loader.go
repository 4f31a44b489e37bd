// Package loader is the input boundary: it reads a JSON seed file into
// the immutable domain slices the engines consume. This is the one layer
// where a hard failure is acceptable; everything past it treats the data
// as well-typed.
package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mesmerizedfloppa/shop-analytics/internal/domain"
)

// Seed is the decoded shape of a seed file.
type Seed struct {
	Categories []domain.Category `json:"categories"`
	Products   []domain.Product  `json:"products"`
	Users      []domain.User     `json:"users"`
	Orders     []domain.Order    `json:"orders"`
}

// LoadSeed reads and decodes path.
func LoadSeed(path string) (Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed: %w", err)
	}

	var s Seed
	if err := json.Unmarshal(raw, &s); err != nil {
		return Seed{}, fmt.Errorf("decode seed %s: %w", path, err)
	}
	return s, nil
}
