package handler

import (
	"tastebook/internal/rules"
)

// createCollectionRequest is the admin payload for a new custom collection.
type createCollectionRequest struct {
	Category    string       `json:"category"`
	Slug        string       `json:"slug"`
	Name        string       `json:"name"`
	TargetCount int          `json:"target_count"`
	MinRequired int          `json:"min_required"`
	SortOrder   int          `json:"sort_order"`
	Rules       rules.Config `json:"rules"`
}

// rulesRequest carries a rule config for validate, preview, and save.
type rulesRequest struct {
	Rules rules.Config `json:"rules"`
}

// exclusionsRequest replaces the manual exclusion list wholesale.
type exclusionsRequest struct {
	RecipeIDs []string `json:"recipe_ids"`
}
