package handler

import (
	"time"

	"tastebook/internal/collection/models"
	"tastebook/internal/rules"
)

// collectionResponse is the admin-facing projection of a collection.
type collectionResponse struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Slug     string `json:"slug"`
	Name     string `json:"name"`

	TargetCount int `json:"target_count"`
	MinRequired int `json:"min_required"`

	Rules             rules.Config `json:"rules"`
	ExcludedRecipeIDs []string     `json:"excluded_recipe_ids"`

	CachedPublishedCount int    `json:"cached_published_count"`
	CachedPendingCount   int    `json:"cached_pending_count"`
	CachedDraftCount     int    `json:"cached_draft_count"`
	QualifiedStatus      string `json:"qualified_status"`
	AggregatesUpdatedAt  string `json:"aggregates_updated_at,omitempty"`

	SortOrder        int    `json:"sort_order"`
	PublicationState string `json:"publication_state"`
}

func toCollectionResponse(c *models.Collection) collectionResponse {
	excluded := make([]string, len(c.ExcludedRecipeIDs))
	for i, id := range c.ExcludedRecipeIDs {
		excluded[i] = id.String()
	}

	resp := collectionResponse{
		ID:                   c.ID.String(),
		Category:             string(c.Category),
		Slug:                 c.Slug,
		Name:                 c.Name,
		TargetCount:          c.TargetCount,
		MinRequired:          c.MinRequired,
		Rules:                c.Rules,
		ExcludedRecipeIDs:    excluded,
		CachedPublishedCount: c.CachedPublishedCount,
		CachedPendingCount:   c.CachedPendingCount,
		CachedDraftCount:     c.CachedDraftCount,
		QualifiedStatus:      string(c.QualifiedStatus),
		SortOrder:            c.SortOrder,
		PublicationState:     string(c.PublicationState),
	}
	if !c.AggregatesUpdatedAt.IsZero() {
		resp.AggregatesUpdatedAt = c.AggregatesUpdatedAt.Format(time.RFC3339)
	}
	return resp
}
