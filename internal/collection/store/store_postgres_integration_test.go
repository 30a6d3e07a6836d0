//go:build integration

package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"tastebook/internal/collection/models"
	"tastebook/internal/rules"
	domain "tastebook/pkg/domain"
	"tastebook/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	ctx   context.Context
	pg    *containers.PostgresContainer
	store *PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.ctx = context.Background()
	s.pg = containers.NewPostgresContainer(s.T())
	s.store = NewPostgres(s.pg.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.pg.TruncateTables(s.ctx, "collections"))
}

func (s *PostgresStoreSuite) TestCreateAndGetRoundtrip() {
	excluded := domain.RecipeID(uuid.New())
	term := domain.TermID(uuid.New())

	col := newCollection(domain.CategoryCuisine, "italian")
	col.Path = "/cuisine/italian"
	col.ExcludedRecipeIDs = []domain.RecipeID{excluded}
	col.Rules = rules.Config{
		Type: rules.TypeCustom,
		Custom: &rules.CustomRule{
			Groups: []rules.Group{{
				Logic: rules.LogicOr,
				Conditions: []rules.Condition{
					{Field: rules.FieldCuisine, Operator: rules.OpEq, Value: term.String()},
					{Field: rules.FieldCookTime, Operator: rules.OpLte, Value: float64(30)},
				},
			}},
			Exclude: []rules.Condition{
				{Field: rules.FieldTag, Operator: rules.OpEq, TagKind: domain.TagKindScene, Value: term.String()},
			},
		},
	}

	s.Require().NoError(s.store.Create(s.ctx, col))

	got, err := s.store.Get(s.ctx, col.ID)
	s.Require().NoError(err)
	s.Equal("italian", got.Slug)
	s.Equal("/cuisine/italian", got.Path)
	s.Equal(col.Rules, got.Rules)
	s.Equal([]domain.RecipeID{excluded}, got.ExcludedRecipeIDs)
	s.Equal(models.StatusUnqualified, got.QualifiedStatus)
	s.False(got.CreatedAt.IsZero())
}

func (s *PostgresStoreSuite) TestGetNotFound() {
	_, err := s.store.Get(s.ctx, domain.CollectionID(uuid.New()))
	s.ErrorIs(err, ErrNotFound)
}

func (s *PostgresStoreSuite) TestListByCategoriesOrdering() {
	first := newCollection(domain.CategoryCuisine, "first")
	first.SortOrder = 1
	first.CachedPublishedCount = 2

	tiedHigh := newCollection(domain.CategoryCuisine, "tied-high")
	tiedHigh.SortOrder = 5
	tiedHigh.CachedPublishedCount = 9

	tiedLow := newCollection(domain.CategoryCuisine, "tied-low")
	tiedLow.SortOrder = 5
	tiedLow.CachedPublishedCount = 3

	draft := newCollection(domain.CategoryCuisine, "draft")
	draft.PublicationState = domain.StateDraft

	otherCategory := newCollection(domain.CategoryTaste, "spicy")

	for _, c := range []*models.Collection{tiedLow, draft, first, otherCategory, tiedHigh} {
		s.Require().NoError(s.store.Create(s.ctx, c))
	}

	got, err := s.store.ListByCategories(s.ctx, []domain.CollectionCategory{domain.CategoryCuisine}, domain.StatePublished)
	s.Require().NoError(err)

	s.Require().Len(got, 3)
	s.Equal("first", got[0].Slug)
	s.Equal("tied-high", got[1].Slug)
	s.Equal("tied-low", got[2].Slug)
}

func (s *PostgresStoreSuite) TestFindAutoByRef() {
	ref := domain.TermID(uuid.New())

	auto := newCollection(domain.CategoryCuisine, "italian")
	auto.Rules = rules.Config{Type: rules.TypeAuto, Auto: &rules.AutoRule{Field: rules.FieldCuisine, Ref: ref}}
	custom := newCollection(domain.CategoryCuisine, "handpicked")

	s.Require().NoError(s.store.Create(s.ctx, auto))
	s.Require().NoError(s.store.Create(s.ctx, custom))

	got, err := s.store.FindAutoByRef(s.ctx, ref)
	s.Require().NoError(err)
	s.Equal(auto.ID, got.ID)

	_, err = s.store.FindAutoByRef(s.ctx, domain.TermID(uuid.New()))
	s.ErrorIs(err, ErrNotFound)
}

func (s *PostgresStoreSuite) TestUpdateAggregatesThenRulesPreservesCache() {
	col := newCollection(domain.CategoryCuisine, "italian")
	s.Require().NoError(s.store.Create(s.ctx, col))

	updatedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	agg := models.AggregateResult{
		MatchedTotal:    9,
		PublishedCount:  5,
		PendingCount:    3,
		DraftCount:      1,
		QualifiedStatus: models.StatusQualified,
	}
	s.Require().NoError(s.store.UpdateAggregates(s.ctx, col.ID, agg, updatedAt))

	s.Require().NoError(s.store.UpdateRules(s.ctx, col.ID, rules.MatchAll()))

	got, err := s.store.Get(s.ctx, col.ID)
	s.Require().NoError(err)
	s.Equal(5, got.CachedPublishedCount)
	s.Equal(3, got.CachedPendingCount)
	s.Equal(1, got.CachedDraftCount)
	s.Equal(models.StatusQualified, got.QualifiedStatus)
	s.True(got.AggregatesUpdatedAt.Equal(updatedAt))
}

func (s *PostgresStoreSuite) TestUpdateExclusionsReplacesWholesale() {
	col := newCollection(domain.CategoryCuisine, "italian")
	col.ExcludedRecipeIDs = []domain.RecipeID{domain.RecipeID(uuid.New())}
	s.Require().NoError(s.store.Create(s.ctx, col))

	replacement := []domain.RecipeID{domain.RecipeID(uuid.New()), domain.RecipeID(uuid.New())}
	s.Require().NoError(s.store.UpdateExclusions(s.ctx, col.ID, replacement))

	got, err := s.store.Get(s.ctx, col.ID)
	s.Require().NoError(err)
	s.Equal(replacement, got.ExcludedRecipeIDs)
}

func (s *PostgresStoreSuite) TestArchiveExcludesFromActive() {
	live := newCollection(domain.CategoryCuisine, "live")
	archived := newCollection(domain.CategoryCuisine, "archived")
	s.Require().NoError(s.store.Create(s.ctx, live))
	s.Require().NoError(s.store.Create(s.ctx, archived))

	s.Require().NoError(s.store.Archive(s.ctx, archived.ID))

	got, err := s.store.ListActive(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal("live", got[0].Slug)
}

func (s *PostgresStoreSuite) TestUpdatesOnMissingCollection() {
	id := domain.CollectionID(uuid.New())

	s.ErrorIs(s.store.UpdateRules(s.ctx, id, rules.MatchAll()), ErrNotFound)
	s.ErrorIs(s.store.UpdateExclusions(s.ctx, id, nil), ErrNotFound)
	s.ErrorIs(s.store.UpdateAggregates(s.ctx, id, models.AggregateResult{}, time.Now()), ErrNotFound)
	s.ErrorIs(s.store.Archive(s.ctx, id), ErrNotFound)
}
