package rules

import (
	domain "tastebook/pkg/domain"
)

// ContentFacts is the evaluator-facing projection of one recipe: its tag sets
// keyed by taxonomy, its cuisine and location references, and its numeric
// attributes. The catalog builds it; the evaluator only reads it.
type ContentFacts struct {
	ID    domain.RecipeID
	State domain.PublicationState

	Tags     map[domain.TagKind][]domain.TermID
	Cuisine  domain.TermID // nil when the recipe has no cuisine
	Location domain.TermID // nil when the recipe has no location

	// Numbers holds the numeric attributes present on the recipe. An absent
	// key means the recipe has no value for that attribute.
	Numbers map[Field]float64
}

// termsFor returns the recipe's term set relevant to a relation condition.
// Missing data yields an empty set, never an error.
func (f ContentFacts) termsFor(field Field, kind domain.TagKind) []domain.TermID {
	switch field {
	case FieldTag:
		return f.Tags[kind]
	case FieldCuisine:
		if f.Cuisine.IsNil() {
			return nil
		}
		return []domain.TermID{f.Cuisine}
	case FieldLocation:
		if f.Location.IsNil() {
			return nil
		}
		return []domain.TermID{f.Location}
	default:
		return nil
	}
}

// numberFor returns the recipe's numeric attribute and whether it is present.
func (f ContentFacts) numberFor(field Field) (float64, bool) {
	v, ok := f.Numbers[field]
	return v, ok
}
