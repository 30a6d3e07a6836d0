package localization

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	domain "tastebook/pkg/domain"
)

const nameKeyPrefix = "i18n:collection-name:"

// noTranslationMarker caches negative lookups so a missing translation does
// not hammer the translation backend on every page render.
const noTranslationMarker = "\x00none"

// CachedTranslator decorates a Translator with a Redis lookaside cache.
type CachedTranslator struct {
	next   Translator
	client *redis.Client
	ttl    time.Duration
}

// NewCached wraps next with a Redis cache.
func NewCached(next Translator, client *redis.Client, ttl time.Duration) *CachedTranslator {
	return &CachedTranslator{next: next, client: client, ttl: ttl}
}

// CollectionName serves from cache when possible; cache failures fall through
// to the backend rather than failing the lookup.
func (t *CachedTranslator) CollectionName(ctx context.Context, id domain.CollectionID, locale string) (string, error) {
	key := nameKeyPrefix + id.String() + ":" + NormalizeLocale(locale)

	cached, err := t.client.Get(ctx, key).Result()
	if err == nil {
		if cached == noTranslationMarker {
			return "", ErrNoTranslation
		}
		return cached, nil
	}
	if !errors.Is(err, redis.Nil) {
		// Degraded cache; go straight to the backend.
		return t.next.CollectionName(ctx, id, locale)
	}

	name, err := t.next.CollectionName(ctx, id, locale)
	if err != nil {
		if errors.Is(err, ErrNoTranslation) {
			_ = t.client.Set(ctx, key, noTranslationMarker, t.ttl).Err()
		}
		return "", err
	}

	_ = t.client.Set(ctx, key, name, t.ttl).Err()
	return name, nil
}
