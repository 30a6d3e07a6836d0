package domain

import dErrors "tastebook/pkg/domain-errors"

// CollectionCategory names the editorial axis a collection is curated along.
// Invariant: the value must be one of the supported categories.
type CollectionCategory string

// Supported collection categories.
const (
	CategoryCuisine    CollectionCategory = "cuisine"
	CategoryLocation   CollectionCategory = "location"
	CategoryScene      CollectionCategory = "scene"
	CategoryTaste      CollectionCategory = "taste"
	CategoryMethod     CollectionCategory = "method"
	CategoryCrowd      CollectionCategory = "crowd"
	CategoryOccasion   CollectionCategory = "occasion"
	CategoryIngredient CollectionCategory = "ingredient"
)

// CategoryAliasTheme is a request-level alias that unifies scene and occasion
// collections on aggregation pages. It is never stored.
const CategoryAliasTheme = "theme"

var validCategories = map[CollectionCategory]bool{
	CategoryCuisine:    true,
	CategoryLocation:   true,
	CategoryScene:      true,
	CategoryTaste:      true,
	CategoryMethod:     true,
	CategoryCrowd:      true,
	CategoryOccasion:   true,
	CategoryIngredient: true,
}

// ParseCollectionCategory constructs a CollectionCategory from external input.
// The "theme" alias is not a category; resolve it with ExpandCategoryAlias.
func ParseCollectionCategory(s string) (CollectionCategory, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "category cannot be empty")
	}
	c := CollectionCategory(s)
	if !validCategories[c] {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "unknown category: %s", s)
	}
	return c, nil
}

// ExpandCategoryAlias resolves a requested category string to the underlying
// categories. Concrete categories expand to themselves; the "theme" alias
// expands to scene and occasion.
func ExpandCategoryAlias(s string) ([]CollectionCategory, error) {
	if s == CategoryAliasTheme {
		return []CollectionCategory{CategoryScene, CategoryOccasion}, nil
	}
	c, err := ParseCollectionCategory(s)
	if err != nil {
		return nil, err
	}
	return []CollectionCategory{c}, nil
}

// AllCategories returns every supported category in stable order.
func AllCategories() []CollectionCategory {
	return []CollectionCategory{
		CategoryCuisine,
		CategoryLocation,
		CategoryScene,
		CategoryTaste,
		CategoryMethod,
		CategoryCrowd,
		CategoryOccasion,
		CategoryIngredient,
	}
}

// URLSegment returns the path segment a category is rendered under. Location
// collections ship under "regional" for historical URL compatibility; every
// other category uses its own name.
func (c CollectionCategory) URLSegment() string {
	if c == CategoryLocation {
		return "regional"
	}
	return string(c)
}

func (c CollectionCategory) String() string { return string(c) }
