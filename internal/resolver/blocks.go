package resolver

import (
	"context"
	"fmt"
	"sort"

	"tastebook/internal/collection/models"
	domain "tastebook/pkg/domain"
)

// defaultBlocks is the built-in block configuration. Every category gets an
// entry so a newly introduced category is usable before an editor touches it.
var defaultBlocks = []models.BlockConfig{
	{Category: domain.CategoryCuisine, Enabled: true, Order: 10, CardCount: 8, MinThreshold: 0},
	{Category: domain.CategoryScene, Enabled: true, Order: 20, CardCount: 6, MinThreshold: 0},
	{Category: domain.CategoryTaste, Enabled: true, Order: 30, CardCount: 6, MinThreshold: 0},
	{Category: domain.CategoryMethod, Enabled: true, Order: 40, CardCount: 6, MinThreshold: 0},
	{Category: domain.CategoryLocation, Enabled: true, Order: 50, CardCount: 8, MinThreshold: 0},
	{Category: domain.CategoryCrowd, Enabled: false, Order: 60, CardCount: 4, MinThreshold: 0},
	{Category: domain.CategoryOccasion, Enabled: true, Order: 70, CardCount: 6, MinThreshold: 0},
	{Category: domain.CategoryIngredient, Enabled: false, Order: 80, CardCount: 4, MinThreshold: 0},
}

// DefaultBlocks returns a copy of the built-in configuration.
func DefaultBlocks() []models.BlockConfig {
	out := make([]models.BlockConfig, len(defaultBlocks))
	copy(out, defaultBlocks)
	return out
}

// ResolveBlocks merges stored overrides onto the defaults. A stored entry
// replaces its category's default entirely; categories absent from stored keep
// their default untouched. Output is ordered and filtered to enabled blocks.
func ResolveBlocks(stored []models.BlockConfig) []models.BlockConfig {
	overrides := make(map[domain.CollectionCategory]models.BlockConfig, len(stored))
	for _, b := range stored {
		overrides[b.Category] = b
	}

	merged := make([]models.BlockConfig, 0, len(defaultBlocks))
	for _, def := range defaultBlocks {
		if override, ok := overrides[def.Category]; ok {
			merged = append(merged, override)
			continue
		}
		merged = append(merged, def)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Order < merged[j].Order
	})

	enabled := merged[:0]
	for _, b := range merged {
		if b.Enabled {
			enabled = append(enabled, b)
		}
	}
	return enabled
}

// Blocks resolves the per-page block layout from stored overrides.
type Blocks struct {
	store BlockStore
}

// NewBlocks constructs a Blocks resolver over a block store.
func NewBlocks(store BlockStore) *Blocks {
	return &Blocks{store: store}
}

// PageBlocks returns the enabled, ordered block layout for a page.
func (b *Blocks) PageBlocks(ctx context.Context, page string) ([]models.BlockConfig, error) {
	stored, err := b.store.ListBlocks(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("resolve blocks for page %q: %w", page, err)
	}
	return ResolveBlocks(stored), nil
}
