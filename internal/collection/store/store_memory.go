package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"tastebook/internal/collection/models"
	"tastebook/internal/rules"
	domain "tastebook/pkg/domain"
	"tastebook/pkg/requestcontext"
)

// InMemoryStore keeps collections in memory for tests. It mirrors the
// postgres store's ordering and not-found semantics.
type InMemoryStore struct {
	mu          sync.RWMutex
	collections map[domain.CollectionID]*models.Collection
}

// NewInMemory constructs an empty in-memory collection store.
func NewInMemory() *InMemoryStore {
	return &InMemoryStore{collections: make(map[domain.CollectionID]*models.Collection)}
}

func (s *InMemoryStore) Create(_ context.Context, c *models.Collection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.TargetCount < 1 {
		c.TargetCount = 1
	}
	clone := *c
	s.collections[c.ID] = &clone
	return nil
}

func (s *InMemoryStore) Get(_ context.Context, id domain.CollectionID) (*models.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.collections[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, ErrNotFound
}

func (s *InMemoryStore) ListByCategories(_ context.Context, categories []domain.CollectionCategory, state domain.PublicationState) ([]*models.Collection, error) {
	wanted := make(map[domain.CollectionCategory]bool, len(categories))
	for _, c := range categories {
		wanted[c] = true
	}

	s.mu.RLock()
	var out []*models.Collection
	for _, c := range s.collections {
		if wanted[c.Category] && c.PublicationState == state {
			clone := *c
			out = append(out, &clone)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].CachedPublishedCount > out[j].CachedPublishedCount
	})
	return out, nil
}

func (s *InMemoryStore) ListActive(_ context.Context) ([]*models.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Collection
	for _, c := range s.collections {
		if c.PublicationState != domain.StateArchived {
			clone := *c
			out = append(out, &clone)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].SortOrder < out[j].SortOrder
	})
	return out, nil
}

func (s *InMemoryStore) FindAutoByRef(_ context.Context, ref domain.TermID) (*models.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.collections {
		if c.Rules.Type == rules.TypeAuto && c.Rules.Auto != nil && c.Rules.Auto.Ref == ref {
			clone := *c
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryStore) UpdateRules(ctx context.Context, id domain.CollectionID, cfg rules.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.collections[id]
	if !ok {
		return ErrNotFound
	}
	c.Rules = cfg
	c.UpdatedAt = requestcontext.Now(ctx)
	return nil
}

func (s *InMemoryStore) UpdateExclusions(ctx context.Context, id domain.CollectionID, excluded []domain.RecipeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.collections[id]
	if !ok {
		return ErrNotFound
	}
	c.ExcludedRecipeIDs = append([]domain.RecipeID(nil), excluded...)
	c.UpdatedAt = requestcontext.Now(ctx)
	return nil
}

func (s *InMemoryStore) UpdateAggregates(_ context.Context, id domain.CollectionID, agg models.AggregateResult, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.collections[id]
	if !ok {
		return ErrNotFound
	}
	c.CachedPublishedCount = agg.PublishedCount
	c.CachedPendingCount = agg.PendingCount
	c.CachedDraftCount = agg.DraftCount
	c.QualifiedStatus = agg.QualifiedStatus
	c.AggregatesUpdatedAt = updatedAt
	return nil
}

func (s *InMemoryStore) Archive(ctx context.Context, id domain.CollectionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.collections[id]
	if !ok {
		return ErrNotFound
	}
	c.PublicationState = domain.StateArchived
	c.UpdatedAt = requestcontext.Now(ctx)
	return nil
}
