package models

import (
	"time"

	"tastebook/internal/rules"
	domain "tastebook/pkg/domain"
)

// QualifiedStatus is the tri-state qualification verdict derived by the
// qualification calculator. It is cached, never computed on a read path.
type QualifiedStatus string

const (
	StatusQualified   QualifiedStatus = "qualified"
	StatusNear        QualifiedStatus = "near"
	StatusUnqualified QualifiedStatus = "unqualified"
)

// Collection is a curated grouping of recipes surfaced on listing pages once
// enough published recipes qualify.
//
// The Cached* fields and QualifiedStatus are derived state owned by the
// qualification calculator; request-path reads treat them as read-only and
// rebuildable at any time.
type Collection struct {
	ID       domain.CollectionID
	Category domain.CollectionCategory
	Slug     string
	Path     string
	Name     string

	// TargetCount is the editorial goal used as the progress denominator.
	// Invariant: >= 1 (enforced on write).
	TargetCount int
	// MinRequired is the published-recipe threshold for qualification.
	MinRequired int

	Rules rules.Config

	// ExcludedRecipeIDs is the manual override layer: a recipe listed here is
	// never counted as matched, even above the rule-level exclusions.
	ExcludedRecipeIDs []domain.RecipeID

	CachedPublishedCount int
	CachedPendingCount   int
	CachedDraftCount     int
	QualifiedStatus      QualifiedStatus
	AggregatesUpdatedAt  time.Time

	SortOrder        int
	PublicationState domain.PublicationState

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsExcluded reports whether a recipe sits on the manual exclusion list.
func (c *Collection) IsExcluded(id domain.RecipeID) bool {
	for _, ex := range c.ExcludedRecipeIDs {
		if ex == id {
			return true
		}
	}
	return false
}

// AggregateResult is the qualification calculator's output for one collection.
type AggregateResult struct {
	MatchedTotal    int             `json:"matched_total"`
	PublishedCount  int             `json:"published_count"`
	PendingCount    int             `json:"pending_count"`
	DraftCount      int             `json:"draft_count"`
	QualifiedStatus QualifiedStatus `json:"qualified_status"`
}

// Card is the display-ready projection of a qualified collection.
type Card struct {
	ID             domain.CollectionID       `json:"id"`
	Category       domain.CollectionCategory `json:"category"`
	Slug           string                    `json:"slug"`
	Name           string                    `json:"name"`
	Path           string                    `json:"path"`
	PublishedCount int                       `json:"published_count"`
	// Progress is cachedPublishedCount/targetCount as a percentage, clamped
	// to [0,100] for display.
	Progress int `json:"progress"`
}

// BlockConfig decides whether and where a category shows up on an aggregation
// page and how many cards it gets.
type BlockConfig struct {
	Category domain.CollectionCategory `json:"category"`
	Enabled  bool                      `json:"enabled"`
	Order    int                       `json:"order"`
	// CardCount is the per-block card limit handed to the resolver.
	CardCount int `json:"card_count"`
	// MinThreshold lets a page demand more qualifying recipes than the
	// collection's own MinRequired before showing the block.
	MinThreshold int `json:"min_threshold"`
}
