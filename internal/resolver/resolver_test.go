package resolver

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tastebook/internal/collection/models"
	"tastebook/internal/localization"
	"tastebook/internal/rules"
	domain "tastebook/pkg/domain"
)

// fakeLister returns a canned collection list and records the categories asked
// for.
type fakeLister struct {
	collections []*models.Collection
	err         error
	askedFor    []domain.CollectionCategory
}

func (f *fakeLister) ListByCategories(_ context.Context, categories []domain.CollectionCategory, _ domain.PublicationState) ([]*models.Collection, error) {
	f.askedFor = categories
	if f.err != nil {
		return nil, f.err
	}
	return f.collections, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func qualifiedCollection(category domain.CollectionCategory, slug string, published, minRequired, target int) *models.Collection {
	return &models.Collection{
		ID:                   domain.CollectionID(uuid.New()),
		Category:             category,
		Slug:                 slug,
		Name:                 slug,
		TargetCount:          target,
		MinRequired:          minRequired,
		Rules:                rules.MatchAll(),
		CachedPublishedCount: published,
		QualifiedStatus:      models.StatusQualified,
		PublicationState:     domain.StatePublished,
	}
}

func TestListQualifiedFiltersBelowThreshold(t *testing.T) {
	lister := &fakeLister{collections: []*models.Collection{
		qualifiedCollection(domain.CategoryCuisine, "italian", 8, 4, 12),
		qualifiedCollection(domain.CategoryCuisine, "nordic", 2, 4, 12),
	}}

	r := New(lister, nil, nil, 0, testLogger())
	cards, err := r.ListQualified(context.Background(), "cuisine", "", 10)
	require.NoError(t, err)

	require.Len(t, cards, 1)
	assert.Equal(t, "italian", cards[0].Slug)
}

func TestListQualifiedTruncatesToLimit(t *testing.T) {
	lister := &fakeLister{collections: []*models.Collection{
		qualifiedCollection(domain.CategoryTaste, "spicy", 5, 1, 10),
		qualifiedCollection(domain.CategoryTaste, "sweet", 5, 1, 10),
		qualifiedCollection(domain.CategoryTaste, "sour", 5, 1, 10),
	}}

	r := New(lister, nil, nil, 0, testLogger())
	cards, err := r.ListQualified(context.Background(), "taste", "", 2)
	require.NoError(t, err)

	assert.Len(t, cards, 2)
	assert.Equal(t, "spicy", cards[0].Slug)
	assert.Equal(t, "sweet", cards[1].Slug)
}

func TestListQualifiedUnknownCategoryDegradesToEmpty(t *testing.T) {
	lister := &fakeLister{}

	r := New(lister, nil, nil, 0, testLogger())
	cards, err := r.ListQualified(context.Background(), "galaxy", "", 5)

	require.NoError(t, err)
	assert.Empty(t, cards)
	assert.Nil(t, lister.askedFor)
}

func TestListQualifiedThemeAliasSpansTwoCategories(t *testing.T) {
	lister := &fakeLister{collections: []*models.Collection{
		qualifiedCollection(domain.CategoryScene, "picnic", 5, 1, 10),
		qualifiedCollection(domain.CategoryOccasion, "birthday", 5, 1, 10),
	}}

	r := New(lister, nil, nil, 0, testLogger())
	cards, err := r.ListQualified(context.Background(), "theme", "", 10)
	require.NoError(t, err)

	assert.Len(t, cards, 2)
	assert.Equal(t, []domain.CollectionCategory{domain.CategoryScene, domain.CategoryOccasion}, lister.askedFor)
}

func TestListQualifiedStoreFailurePropagates(t *testing.T) {
	lister := &fakeLister{err: errors.New("db down")}

	r := New(lister, nil, nil, 0, testLogger())
	_, err := r.ListQualified(context.Background(), "cuisine", "", 5)

	require.Error(t, err)
}

func TestToCardPaths(t *testing.T) {
	r := New(&fakeLister{}, nil, nil, 0, testLogger())

	t.Run("location uses the regional url segment", func(t *testing.T) {
		col := qualifiedCollection(domain.CategoryLocation, "tuscany", 5, 1, 10)
		card := r.toCard(context.Background(), col, "")
		assert.Equal(t, "/regional/tuscany", card.Path)
	})

	t.Run("other categories use the category name", func(t *testing.T) {
		col := qualifiedCollection(domain.CategoryCuisine, "italian", 5, 1, 10)
		card := r.toCard(context.Background(), col, "")
		assert.Equal(t, "/cuisine/italian", card.Path)
	})

	t.Run("an explicit path wins", func(t *testing.T) {
		col := qualifiedCollection(domain.CategoryCuisine, "italian", 5, 1, 10)
		col.Path = "/featured/italian-classics"
		card := r.toCard(context.Background(), col, "")
		assert.Equal(t, "/featured/italian-classics", card.Path)
	})
}

func TestToCardTranslation(t *testing.T) {
	col := qualifiedCollection(domain.CategoryCuisine, "italian", 5, 1, 10)
	col.Name = "Italian"

	translator := localization.NewInMemory()
	translator.SetName(col.ID, "de", "Italienisch")

	r := New(&fakeLister{}, translator, nil, 0, testLogger())

	t.Run("translated name is used when present", func(t *testing.T) {
		card := r.toCard(context.Background(), col, "de")
		assert.Equal(t, "Italienisch", card.Name)
	})

	t.Run("missing translation falls back to the default name", func(t *testing.T) {
		card := r.toCard(context.Background(), col, "fr")
		assert.Equal(t, "Italian", card.Name)
	})

	t.Run("empty locale skips the lookup", func(t *testing.T) {
		card := r.toCard(context.Background(), col, "")
		assert.Equal(t, "Italian", card.Name)
	})
}

func TestProgress(t *testing.T) {
	cases := []struct {
		name      string
		published int
		target    int
		want      int
	}{
		{"halfway", 5, 10, 50},
		{"complete", 10, 10, 100},
		{"overshoot clamps to 100", 25, 10, 100},
		{"zero published", 0, 10, 0},
		{"zero target floors to one", 3, 0, 100},
		{"negative target floors to one", 1, -5, 100},
		{"negative published clamps to zero", -3, 10, 0},
		{"rounds to nearest", 1, 3, 33},
		{"rounds up", 2, 3, 67},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Progress(tc.published, tc.target))
		})
	}
}
