package catalog

import (
	"context"
	"sync"

	"tastebook/internal/rules"
)

// InMemorySource keeps the facts corpus in memory for tests and previews. It
// intentionally favors clarity over performance.
type InMemorySource struct {
	mu    sync.RWMutex
	facts []rules.ContentFacts
}

// NewInMemory constructs an empty in-memory facts source.
func NewInMemory(facts ...rules.ContentFacts) *InMemorySource {
	return &InMemorySource{facts: facts}
}

// Add appends recipes to the corpus.
func (s *InMemorySource) Add(facts ...rules.ContentFacts) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.facts = append(s.facts, facts...)
}

// StreamFacts hands every recipe to fn in insertion order.
func (s *InMemorySource) StreamFacts(ctx context.Context, fn func(rules.ContentFacts) error) error {
	s.mu.RLock()
	snapshot := make([]rules.ContentFacts, len(s.facts))
	copy(snapshot, s.facts)
	s.mu.RUnlock()

	for _, facts := range snapshot {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(facts); err != nil {
			return err
		}
	}
	return nil
}
