// Package handler exposes the collection back office over HTTP: validated
// rule writes, non-persisting previews, and explicit recomputes.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"tastebook/internal/collection/models"
	"tastebook/internal/collection/service"
	"tastebook/internal/platform/middleware"
	"tastebook/internal/rules"
	"tastebook/internal/transport/http/shared"
	domain "tastebook/pkg/domain"
	dErrors "tastebook/pkg/domain-errors"
	platformstrings "tastebook/pkg/platform/strings"
	"tastebook/pkg/requestcontext"
)

// Service defines the collection operations the admin surface needs.
type Service interface {
	Get(ctx context.Context, id domain.CollectionID) (*models.Collection, error)
	ValidateRules(cfg rules.Config) rules.ValidationResult
	PreviewRules(ctx context.Context, id domain.CollectionID, cfg *rules.Config) (models.AggregateResult, error)
	SaveRules(ctx context.Context, id domain.CollectionID, cfg rules.Config) error
	SaveExclusions(ctx context.Context, id domain.CollectionID, excluded []domain.RecipeID) error
	Recompute(ctx context.Context, id domain.CollectionID) (models.AggregateResult, error)
	CreateCustom(ctx context.Context, params service.CreateParams) (*models.Collection, error)
	Archive(ctx context.Context, id domain.CollectionID) error
}

// Sweeper triggers the full batch recompute from the admin surface.
type Sweeper interface {
	SweepAll(ctx context.Context) error
}

// Handler handles collection back-office endpoints.
type Handler struct {
	logger     *slog.Logger
	service    Service
	sweeper    Sweeper
	adminToken string
	validator  middleware.TokenValidator
}

// New creates a collection admin Handler.
func New(service Service, sweeper Sweeper, logger *slog.Logger, adminToken string, validator middleware.TokenValidator) *Handler {
	return &Handler{
		logger:     logger,
		service:    service,
		sweeper:    sweeper,
		adminToken: adminToken,
		validator:  validator,
	}
}

// Register mounts the admin routes.
func (h *Handler) Register(r chi.Router) {
	admin := chi.NewRouter()
	admin.Use(middleware.Timeout(30 * time.Second))
	admin.Use(middleware.ContentTypeJSON)
	admin.Use(middleware.RequireAdminToken(h.adminToken, h.logger))
	admin.Use(middleware.RequireEditor(h.validator, h.logger))

	admin.Post("/collections", h.handleCreate)
	admin.Post("/collections/recompute", h.handleSweep)
	admin.Get("/collections/{id}", h.handleGet)
	admin.Delete("/collections/{id}", h.handleArchive)
	admin.Post("/collections/{id}/rules/validate", h.handleValidate)
	admin.Post("/collections/{id}/rules/preview", h.handlePreview)
	admin.Put("/collections/{id}/rules", h.handleSaveRules)
	admin.Put("/collections/{id}/exclusions", h.handleSaveExclusions)
	admin.Post("/collections/{id}/recompute", h.handleRecompute)

	r.Mount("/admin", admin)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createCollectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	category, err := domain.ParseCollectionCategory(req.Category)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	col, err := h.service.CreateCustom(r.Context(), service.CreateParams{
		Category:    category,
		Slug:        req.Slug,
		Name:        req.Name,
		TargetCount: req.TargetCount,
		MinRequired: req.MinRequired,
		SortOrder:   req.SortOrder,
		Rules:       req.Rules,
	})
	if err != nil {
		h.logError(r, "create collection failed", err)
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusCreated, toCollectionResponse(col))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.collectionID(w, r)
	if !ok {
		return
	}

	col, err := h.service.Get(r.Context(), id)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, toCollectionResponse(col))
}

// handleValidate statically checks a rule config without touching the
// collection. Always 200; the verdict is in the body.
func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.collectionID(w, r); !ok {
		return
	}

	var req rulesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	shared.WriteJSON(w, http.StatusOK, h.service.ValidateRules(req.Rules))
}

// handlePreview recomputes against a candidate rule config without persisting
// anything. An empty body previews the stored rules.
func (h *Handler) handlePreview(w http.ResponseWriter, r *http.Request) {
	id, ok := h.collectionID(w, r)
	if !ok {
		return
	}

	var cfg *rules.Config
	var req rulesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err == nil && req.Rules.Type != "" {
		cfg = &req.Rules
	}

	agg, err := h.service.PreviewRules(r.Context(), id, cfg)
	if err != nil {
		h.logError(r, "rule preview failed", err)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, agg)
}

func (h *Handler) handleSaveRules(w http.ResponseWriter, r *http.Request) {
	id, ok := h.collectionID(w, r)
	if !ok {
		return
	}

	var req rulesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	if err := h.service.SaveRules(r.Context(), id, req.Rules); err != nil {
		h.logError(r, "rule save refused", err)
		shared.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleSaveExclusions(w http.ResponseWriter, r *http.Request) {
	id, ok := h.collectionID(w, r)
	if !ok {
		return
	}

	var req exclusionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	// Rule editors paste recipe ID lists; tidy them before parsing.
	recipeIDs := platformstrings.DedupeAndTrim(req.RecipeIDs)

	excluded := make([]domain.RecipeID, 0, len(recipeIDs))
	for _, raw := range recipeIDs {
		recipeID, err := domain.ParseRecipeID(raw)
		if err != nil {
			shared.WriteError(w, err)
			return
		}
		excluded = append(excluded, recipeID)
	}

	if err := h.service.SaveExclusions(r.Context(), id, excluded); err != nil {
		h.logError(r, "exclusion save failed", err)
		shared.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleRecompute(w http.ResponseWriter, r *http.Request) {
	id, ok := h.collectionID(w, r)
	if !ok {
		return
	}

	agg, err := h.service.Recompute(r.Context(), id)
	if err != nil {
		h.logError(r, "recompute failed", err)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, agg)
}

func (h *Handler) handleSweep(w http.ResponseWriter, r *http.Request) {
	if err := h.sweeper.SweepAll(r.Context()); err != nil {
		h.logError(r, "sweep failed", err)
		shared.WriteError(w, dErrors.Wrap(dErrors.CodeUnavailable, "sweep failed", err))
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) handleArchive(w http.ResponseWriter, r *http.Request) {
	id, ok := h.collectionID(w, r)
	if !ok {
		return
	}

	if err := h.service.Archive(r.Context(), id); err != nil {
		h.logError(r, "archive failed", err)
		shared.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) collectionID(w http.ResponseWriter, r *http.Request) (domain.CollectionID, bool) {
	id, err := domain.ParseCollectionID(chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, err)
		return domain.CollectionID{}, false
	}
	return id, true
}

func (h *Handler) logError(r *http.Request, msg string, err error) {
	ctx := r.Context()
	h.logger.WarnContext(ctx, msg,
		"request_id", requestcontext.RequestID(ctx),
		"editor_id", requestcontext.EditorID(ctx),
		"error", err.Error(),
	)
}
