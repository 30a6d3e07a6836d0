// Package qualification turns rule matches into the cached aggregate state
// that listing pages read. The calculator is the only writer of a collection's
// cached fields; everything else treats them as derived and rebuildable.
package qualification

import (
	"context"
	"fmt"
	"math"

	"tastebook/internal/catalog"
	"tastebook/internal/collection/models"
	"tastebook/internal/qualification/metrics"
	"tastebook/internal/rules"
	domain "tastebook/pkg/domain"
)

// DefaultNearFraction is the soft warning band when no override is configured.
// Editorial constant; see config.Qualification.NearFraction.
const DefaultNearFraction = 0.6

// Calculator runs the rule evaluator across the recipe corpus and derives the
// tri-state qualification verdict.
type Calculator struct {
	source       catalog.Source
	nearFraction float64
	metrics      *metrics.Metrics
}

// NewCalculator constructs a Calculator. A nearFraction outside (0,1) falls
// back to the default.
func NewCalculator(source catalog.Source, nearFraction float64, m *metrics.Metrics) *Calculator {
	if nearFraction <= 0 || nearFraction >= 1 {
		nearFraction = DefaultNearFraction
	}
	return &Calculator{source: source, nearFraction: nearFraction, metrics: m}
}

// Recompute evaluates every recipe against the collection's rules and
// partitions matches by publication state.
//
// The rule set is read once from the collection snapshot passed in, so a
// concurrent rule edit cannot be observed mid-stream. On any corpus fetch
// failure the error propagates and the caller must leave previously cached
// aggregates untouched.
func (c *Calculator) Recompute(ctx context.Context, col *models.Collection) (models.AggregateResult, error) {
	ruleCfg := col.Rules

	var agg models.AggregateResult
	err := c.source.StreamFacts(ctx, func(facts rules.ContentFacts) error {
		if col.IsExcluded(facts.ID) {
			return nil
		}
		if !rules.Evaluate(ruleCfg, facts).Matched {
			return nil
		}

		agg.MatchedTotal++
		switch facts.State {
		case domain.StatePublished:
			agg.PublishedCount++
		case domain.StatePending:
			agg.PendingCount++
		case domain.StateDraft:
			agg.DraftCount++
		}
		return nil
	})
	if err != nil {
		return models.AggregateResult{}, fmt.Errorf("recompute collection %s: %w", col.ID, err)
	}

	agg.QualifiedStatus = DeriveStatus(col.PublicationState, col.MinRequired, agg.PublishedCount, c.nearFraction)
	return agg, nil
}

// DeriveStatus computes the verdict from cached counts alone. Pending and
// draft recipes never count toward qualification, and an unpublished
// collection can never be qualified. Near is reserved for counts still short
// of the threshold; a fully stocked but unpublished collection reads
// unqualified. Exported so threshold edits can re-derive the verdict without
// re-evaluating rules.
func DeriveStatus(state domain.PublicationState, minRequired, publishedCount int, nearFraction float64) models.QualifiedStatus {
	if state == domain.StatePublished && publishedCount >= minRequired {
		return models.StatusQualified
	}
	nearFloor := int(math.Ceil(float64(minRequired) * nearFraction))
	if minRequired > 0 && publishedCount >= nearFloor && publishedCount < minRequired {
		return models.StatusNear
	}
	return models.StatusUnqualified
}
