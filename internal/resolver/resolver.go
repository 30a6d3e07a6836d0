// Package resolver serves qualified collections to listing pages. It only
// reads state the qualification calculator persisted; nothing on this path
// ever evaluates a rule.
package resolver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"tastebook/internal/collection/models"
	"tastebook/internal/localization"
	domain "tastebook/pkg/domain"
)

const cardCacheKeyPrefix = "cards:"

// CollectionLister is the slice of the collection store the resolver needs.
type CollectionLister interface {
	ListByCategories(ctx context.Context, categories []domain.CollectionCategory, state domain.PublicationState) ([]*models.Collection, error)
}

// Resolver shapes qualified collections into display cards.
type Resolver struct {
	store      CollectionLister
	translator localization.Translator
	cache      *redis.Client // nil disables the card cache
	cacheTTL   time.Duration
	logger     *slog.Logger
}

// New constructs a Resolver. translator and cache may be nil; both degrade to
// defaults (untranslated names, uncached reads).
func New(store CollectionLister, translator localization.Translator, cache *redis.Client, cacheTTL time.Duration, logger *slog.Logger) *Resolver {
	return &Resolver{
		store:      store,
		translator: translator,
		cache:      cache,
		cacheTTL:   cacheTTL,
		logger:     logger,
	}
}

// ListQualified returns up to limit display cards for a category (or the
// "theme" alias), qualified collections only.
//
// Qualification is derived state, not a stored boolean, so the threshold
// filter happens here after the fetch. An unknown category degrades to an
// empty card list rather than a page-rendering error.
func (r *Resolver) ListQualified(ctx context.Context, category, locale string, limit int) ([]models.Card, error) {
	categories, err := domain.ExpandCategoryAlias(category)
	if err != nil {
		r.logger.WarnContext(ctx, "unknown collection category requested",
			"category", category,
		)
		return []models.Card{}, nil
	}
	if limit <= 0 {
		return []models.Card{}, nil
	}

	locale = localization.NormalizeLocale(locale)
	cacheKey := fmt.Sprintf("%s%s:%s:%d", cardCacheKeyPrefix, category, locale, limit)
	if cards, ok := r.cachedCards(ctx, cacheKey); ok {
		return cards, nil
	}

	collections, err := r.store.ListByCategories(ctx, categories, domain.StatePublished)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}

	cards := make([]models.Card, 0, limit)
	for _, col := range collections {
		if col.CachedPublishedCount < col.MinRequired {
			continue
		}
		cards = append(cards, r.toCard(ctx, col, locale))
		if len(cards) == limit {
			break
		}
	}

	r.storeCards(ctx, cacheKey, cards)
	return cards, nil
}

// toCard projects one collection into its display card. A missing translation
// falls back to the collection's default name.
func (r *Resolver) toCard(ctx context.Context, col *models.Collection, locale string) models.Card {
	name := col.Name
	if r.translator != nil && locale != "" {
		translated, err := r.translator.CollectionName(ctx, col.ID, locale)
		switch {
		case err == nil && translated != "":
			name = translated
		case err != nil && !errors.Is(err, localization.ErrNoTranslation):
			r.logger.WarnContext(ctx, "translation lookup failed, using default name",
				"collection_id", col.ID.String(),
				"locale", locale,
				"error", err,
			)
		}
	}

	path := col.Path
	if path == "" {
		path = "/" + col.Category.URLSegment() + "/" + col.Slug
	}

	return models.Card{
		ID:             col.ID,
		Category:       col.Category,
		Slug:           col.Slug,
		Name:           name,
		Path:           path,
		PublishedCount: col.CachedPublishedCount,
		Progress:       Progress(col.CachedPublishedCount, col.TargetCount),
	}
}

// Progress is published/target as a display percentage, clamped to [0,100].
// A target below 1 is floored to 1 so the division is always defined.
func Progress(publishedCount, targetCount int) int {
	if targetCount < 1 {
		targetCount = 1
	}
	if publishedCount < 0 {
		publishedCount = 0
	}
	p := int(float64(publishedCount)/float64(targetCount)*100 + 0.5)
	if p > 100 {
		return 100
	}
	return p
}

func (r *Resolver) cachedCards(ctx context.Context, key string) ([]models.Card, bool) {
	if r.cache == nil {
		return nil, false
	}
	raw, err := r.cache.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var cards []models.Card
	if err := json.Unmarshal(raw, &cards); err != nil {
		return nil, false
	}
	return cards, true
}

func (r *Resolver) storeCards(ctx context.Context, key string, cards []models.Card) {
	if r.cache == nil {
		return
	}
	raw, err := json.Marshal(cards)
	if err != nil {
		return
	}
	if err := r.cache.Set(ctx, key, raw, r.cacheTTL).Err(); err != nil {
		r.logger.WarnContext(ctx, "card cache write failed", "error", err)
	}
}
