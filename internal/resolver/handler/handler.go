// Package handler exposes the public read surface for listing pages. It is
// read-only and cache-friendly; nothing here evaluates rules or writes state.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"tastebook/internal/collection/models"
	"tastebook/internal/platform/middleware"
	"tastebook/internal/transport/http/shared"
	dErrors "tastebook/pkg/domain-errors"
	"tastebook/pkg/requestcontext"
)

const defaultCardLimit = 8

// CardResolver serves display cards for one category.
type CardResolver interface {
	ListQualified(ctx context.Context, category, locale string, limit int) ([]models.Card, error)
}

// BlockResolver serves the resolved block layout for a page.
type BlockResolver interface {
	PageBlocks(ctx context.Context, page string) ([]models.BlockConfig, error)
}

// Handler handles the public collection endpoints.
type Handler struct {
	logger *slog.Logger
	cards  CardResolver
	blocks BlockResolver
}

// New creates a public collections Handler.
func New(cards CardResolver, blocks BlockResolver, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, cards: cards, blocks: blocks}
}

// Register mounts the public routes.
func (h *Handler) Register(r chi.Router) {
	public := chi.NewRouter()
	public.Use(middleware.Timeout(10 * time.Second))
	public.Use(middleware.ContentTypeJSON)

	public.Get("/blocks/{page}", h.handleBlocks)
	public.Get("/{category}", h.handleCards)

	r.Mount("/collections", public)
}

type cardsResponse struct {
	Category string        `json:"category"`
	Cards    []models.Card `json:"cards"`
}

// handleCards lists qualified cards for a category. Unknown categories come
// back as empty lists, not errors; listing pages render whatever they get.
func (h *Handler) handleCards(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	locale := r.URL.Query().Get("locale")

	limit := defaultCardLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	cards, err := h.cards.ListQualified(r.Context(), category, locale, limit)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "card listing failed",
			"request_id", requestcontext.RequestID(r.Context()),
			"category", category,
			"error", err,
		)
		shared.WriteError(w, dErrors.Wrap(dErrors.CodeUnavailable, "collections unavailable", err))
		return
	}

	shared.WriteJSON(w, http.StatusOK, cardsResponse{Category: category, Cards: cards})
}

type blocksResponse struct {
	Page   string               `json:"page"`
	Blocks []models.BlockConfig `json:"blocks"`
}

func (h *Handler) handleBlocks(w http.ResponseWriter, r *http.Request) {
	page := chi.URLParam(r, "page")

	blocks, err := h.blocks.PageBlocks(r.Context(), page)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "block resolution failed",
			"request_id", requestcontext.RequestID(r.Context()),
			"page", page,
			"error", err,
		)
		shared.WriteError(w, dErrors.Wrap(dErrors.CodeUnavailable, "blocks unavailable", err))
		return
	}

	shared.WriteJSON(w, http.StatusOK, blocksResponse{Page: page, Blocks: blocks})
}
