package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"tastebook/internal/collection/models"
	"tastebook/internal/resolver/handler/mocks"
	domain "tastebook/pkg/domain"
)

//go:generate mockgen -source=handler.go -destination=mocks/resolver-mocks.go -package=mocks CardResolver,BlockResolver
type PublicHandlerSuite struct {
	suite.Suite
}

func TestPublicHandlerSuite(t *testing.T) {
	suite.Run(t, new(PublicHandlerSuite))
}

func newTestHandler(t *testing.T) (*Handler, *mocks.MockCardResolver, *mocks.MockBlockResolver) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockCards := mocks.NewMockCardResolver(ctrl)
	mockBlocks := mocks.NewMockBlockResolver(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return New(mockCards, mockBlocks, logger), mockCards, mockBlocks
}

// requestWithParam builds a request whose chi route context carries one URL
// parameter, so handler methods can be exercised without the router.
func requestWithParam(target, key, value string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func (s *PublicHandlerSuite) TestHandleCardsDefaultLimit() {
	h, mockCards, _ := newTestHandler(s.T())
	card := models.Card{
		ID:             domain.CollectionID(uuid.New()),
		Category:       domain.CategoryCuisine,
		Slug:           "italian",
		Name:           "Italian",
		Path:           "/cuisine/italian",
		PublishedCount: 7,
		Progress:       58,
	}

	mockCards.EXPECT().ListQualified(gomock.Any(), "cuisine", "", defaultCardLimit).
		Return([]models.Card{card}, nil)

	w := httptest.NewRecorder()
	h.handleCards(w, requestWithParam("/collections/cuisine", "category", "cuisine"))

	assert.Equal(s.T(), http.StatusOK, w.Code)
	var resp cardsResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(s.T(), "cuisine", resp.Category)
	require.Len(s.T(), resp.Cards, 1)
	assert.Equal(s.T(), "italian", resp.Cards[0].Slug)
	assert.Equal(s.T(), 58, resp.Cards[0].Progress)
}

func (s *PublicHandlerSuite) TestHandleCardsExplicitLimitAndLocale() {
	h, mockCards, _ := newTestHandler(s.T())

	mockCards.EXPECT().ListQualified(gomock.Any(), "theme", "de", 3).
		Return([]models.Card{}, nil)

	w := httptest.NewRecorder()
	h.handleCards(w, requestWithParam("/collections/theme?locale=de&limit=3", "category", "theme"))

	assert.Equal(s.T(), http.StatusOK, w.Code)
}

func (s *PublicHandlerSuite) TestHandleCardsRejectsBadLimit() {
	for _, limit := range []string{"abc", "0", "-2", "1.5"} {
		s.Run(limit, func() {
			h, _, _ := newTestHandler(s.T())

			w := httptest.NewRecorder()
			h.handleCards(w, requestWithParam("/collections/cuisine?limit="+limit, "category", "cuisine"))

			assert.Equal(s.T(), http.StatusBadRequest, w.Code)
		})
	}
}

func (s *PublicHandlerSuite) TestHandleCardsResolverFailure() {
	h, mockCards, _ := newTestHandler(s.T())

	mockCards.EXPECT().ListQualified(gomock.Any(), "cuisine", "", defaultCardLimit).
		Return(nil, errors.New("db down"))

	w := httptest.NewRecorder()
	h.handleCards(w, requestWithParam("/collections/cuisine", "category", "cuisine"))

	assert.Equal(s.T(), http.StatusServiceUnavailable, w.Code)
}

func (s *PublicHandlerSuite) TestHandleBlocks() {
	h, _, mockBlocks := newTestHandler(s.T())

	mockBlocks.EXPECT().PageBlocks(gomock.Any(), "home").Return([]models.BlockConfig{
		{Category: domain.CategoryCuisine, Enabled: true, Order: 1, CardCount: 6},
		{Category: domain.CategoryScene, Enabled: true, Order: 2, CardCount: 4},
	}, nil)

	w := httptest.NewRecorder()
	h.handleBlocks(w, requestWithParam("/collections/blocks/home", "page", "home"))

	assert.Equal(s.T(), http.StatusOK, w.Code)
	var resp blocksResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(s.T(), "home", resp.Page)
	require.Len(s.T(), resp.Blocks, 2)
	assert.Equal(s.T(), domain.CategoryCuisine, resp.Blocks[0].Category)
}

func (s *PublicHandlerSuite) TestHandleBlocksResolverFailure() {
	h, _, mockBlocks := newTestHandler(s.T())

	mockBlocks.EXPECT().PageBlocks(gomock.Any(), "home").Return(nil, errors.New("db down"))

	w := httptest.NewRecorder()
	h.handleBlocks(w, requestWithParam("/collections/blocks/home", "page", "home"))

	assert.Equal(s.T(), http.StatusServiceUnavailable, w.Code)
}
