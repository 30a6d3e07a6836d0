package qualification

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tastebook/internal/catalog"
	"tastebook/internal/collection/models"
	"tastebook/internal/rules"
	domain "tastebook/pkg/domain"
)

// fakeCollectionStore records aggregate writes without a database.
type fakeCollectionStore struct {
	mu          sync.Mutex
	collections []*models.Collection
	listErr     error
	updateErr   error
	updates     map[domain.CollectionID]models.AggregateResult
}

func newFakeCollectionStore(collections ...*models.Collection) *fakeCollectionStore {
	return &fakeCollectionStore{
		collections: collections,
		updates:     map[domain.CollectionID]models.AggregateResult{},
	}
}

func (s *fakeCollectionStore) ListActive(context.Context) ([]*models.Collection, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.collections, nil
}

func (s *fakeCollectionStore) UpdateAggregates(_ context.Context, id domain.CollectionID, agg models.AggregateResult, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updates[id] = agg
	return nil
}

func testCollection(minRequired int) *models.Collection {
	return &models.Collection{
		ID:               domain.CollectionID(uuid.New()),
		Category:         domain.CategoryTaste,
		MinRequired:      minRequired,
		PublicationState: domain.StatePublished,
		Rules:            rules.MatchAll(),
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSweepAllWritesAggregates(t *testing.T) {
	spicy := domain.TermID(uuid.New())
	source := catalog.NewInMemory(
		publishedRecipe(domain.TagKindTaste, spicy),
		publishedRecipe(domain.TagKindTaste, spicy),
	)

	colA := testCollection(1)
	colB := testCollection(5)
	store := newFakeCollectionStore(colA, colB)

	sweeper := NewSweeper(NewCalculator(source, DefaultNearFraction, nil), store, testLogger(), nil, 4)
	require.NoError(t, sweeper.SweepAll(context.Background()))

	assert.Len(t, store.updates, 2)
	assert.Equal(t, models.StatusQualified, store.updates[colA.ID].QualifiedStatus)
	assert.Equal(t, models.StatusUnqualified, store.updates[colB.ID].QualifiedStatus)
	assert.Equal(t, 2, store.updates[colA.ID].PublishedCount)
}

func TestSweepFailureLeavesCacheUntouched(t *testing.T) {
	col := testCollection(1)
	store := newFakeCollectionStore(col)

	sweeper := NewSweeper(NewCalculator(failingSource{}, DefaultNearFraction, nil), store, testLogger(), nil, 2)
	require.NoError(t, sweeper.SweepAll(context.Background()))

	// Recompute failed for the only collection, so nothing was written.
	assert.Empty(t, store.updates)
}

func TestSweepAllPropagatesListingFailure(t *testing.T) {
	store := newFakeCollectionStore()
	store.listErr = errors.New("db down")

	sweeper := NewSweeper(NewCalculator(catalog.NewInMemory(), DefaultNearFraction, nil), store, testLogger(), nil, 2)
	err := sweeper.SweepAll(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestSweepCategoriesScopesCollections(t *testing.T) {
	source := catalog.NewInMemory(publishedRecipe(domain.TagKindTaste, domain.TermID(uuid.New())))

	taste := testCollection(1)
	cuisine := testCollection(1)
	cuisine.Category = domain.CategoryCuisine
	store := newFakeCollectionStore(taste, cuisine)

	sweeper := NewSweeper(NewCalculator(source, DefaultNearFraction, nil), store, testLogger(), nil, 2)
	require.NoError(t, sweeper.SweepCategories(context.Background(), []domain.CollectionCategory{domain.CategoryCuisine}))

	assert.Len(t, store.updates, 1)
	_, ok := store.updates[cuisine.ID]
	assert.True(t, ok)
}

func TestSweepAggregateWriteFailureDoesNotAbort(t *testing.T) {
	source := catalog.NewInMemory(publishedRecipe(domain.TagKindTaste, domain.TermID(uuid.New())))
	col := testCollection(1)
	store := newFakeCollectionStore(col)
	store.updateErr = errors.New("write refused")

	sweeper := NewSweeper(NewCalculator(source, DefaultNearFraction, nil), store, testLogger(), nil, 1)
	require.NoError(t, sweeper.SweepAll(context.Background()))
	assert.Empty(t, store.updates)
}

func TestRunStopsOnCancel(t *testing.T) {
	store := newFakeCollectionStore()
	sweeper := NewSweeper(NewCalculator(catalog.NewInMemory(), DefaultNearFraction, nil), store, testLogger(), nil, 1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- sweeper.Run(ctx, time.Hour)
	}()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not stop on cancellation")
	}
}
