package localization

import (
	"context"
	"sync"

	domain "tastebook/pkg/domain"
)

type nameKey struct {
	id     domain.CollectionID
	locale string
}

// InMemoryTranslator holds translations in memory for tests and development.
type InMemoryTranslator struct {
	mu    sync.RWMutex
	names map[nameKey]string
}

// NewInMemory constructs an empty in-memory translator.
func NewInMemory() *InMemoryTranslator {
	return &InMemoryTranslator{names: make(map[nameKey]string)}
}

// SetName records a translation.
func (t *InMemoryTranslator) SetName(id domain.CollectionID, locale, name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.names[nameKey{id: id, locale: NormalizeLocale(locale)}] = name
}

// CollectionName returns the translated name or ErrNoTranslation.
func (t *InMemoryTranslator) CollectionName(_ context.Context, id domain.CollectionID, locale string) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if name, ok := t.names[nameKey{id: id, locale: NormalizeLocale(locale)}]; ok {
		return name, nil
	}
	return "", ErrNoTranslation
}
