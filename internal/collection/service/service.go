// Package service orchestrates validated collection writes and recomputes.
// It keeps orchestration out of handlers and the domain logic (rules,
// qualification) pure.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"tastebook/internal/collection/models"
	"tastebook/internal/collection/store"
	"tastebook/internal/rules"
	domain "tastebook/pkg/domain"
	dErrors "tastebook/pkg/domain-errors"
	"tastebook/pkg/requestcontext"
)

// Store is the collection persistence the service depends on.
type Store interface {
	Create(ctx context.Context, c *models.Collection) error
	Get(ctx context.Context, id domain.CollectionID) (*models.Collection, error)
	FindAutoByRef(ctx context.Context, ref domain.TermID) (*models.Collection, error)
	UpdateRules(ctx context.Context, id domain.CollectionID, cfg rules.Config) error
	UpdateExclusions(ctx context.Context, id domain.CollectionID, excluded []domain.RecipeID) error
	UpdateAggregates(ctx context.Context, id domain.CollectionID, agg models.AggregateResult, updatedAt time.Time) error
	Archive(ctx context.Context, id domain.CollectionID) error
}

// Recomputer is the slice of the qualification calculator the service needs.
type Recomputer interface {
	Recompute(ctx context.Context, col *models.Collection) (models.AggregateResult, error)
}

// Service coordinates rule validation, persistence, and recomputation.
type Service struct {
	store  Store
	calc   Recomputer
	logger *slog.Logger
}

// New creates a collection Service.
func New(store Store, calc Recomputer, logger *slog.Logger) *Service {
	return &Service{store: store, calc: calc, logger: logger}
}

// Get fetches one collection.
func (s *Service) Get(ctx context.Context, id domain.CollectionID) (*models.Collection, error) {
	return s.store.Get(ctx, id)
}

// ValidateRules statically checks a rule config. Pure; shared by the preview
// and save paths and exposed directly to the admin UI.
func (s *Service) ValidateRules(cfg rules.Config) rules.ValidationResult {
	return rules.Validate(cfg)
}

// PreviewRules recomputes a collection's aggregates against a candidate rule
// config without persisting anything. A nil cfg previews the stored rules.
func (s *Service) PreviewRules(ctx context.Context, id domain.CollectionID, cfg *rules.Config) (models.AggregateResult, error) {
	col, err := s.store.Get(ctx, id)
	if err != nil {
		return models.AggregateResult{}, err
	}

	if cfg != nil {
		candidate := rules.Normalize(*cfg)
		if result := rules.Validate(candidate); !result.Valid {
			return models.AggregateResult{}, dErrors.New(dErrors.CodeValidation, "rule set failed validation").
				WithDetails(result.Errors...)
		}
		col.Rules = candidate
	}

	return s.calc.Recompute(ctx, col)
}

// SaveRules validates and persists a rule config, then recomputes and caches
// the collection's aggregates. An invalid rule set refuses the write and
// surfaces the validator's errors.
func (s *Service) SaveRules(ctx context.Context, id domain.CollectionID, cfg rules.Config) error {
	if cfg.Type == rules.TypeAuto {
		// Auto rules are system-derived; editors cannot rewrite them.
		return dErrors.New(dErrors.CodeBadRequest, "auto rules are maintained by the system")
	}

	normalized := rules.Normalize(cfg)
	if result := rules.Validate(normalized); !result.Valid {
		return dErrors.New(dErrors.CodeValidation, "rule set failed validation").
			WithDetails(result.Errors...)
	}

	// The stored rule type decides editability, not the payload: a custom
	// payload must not overwrite a system-maintained auto collection.
	col, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if col.Rules.Type == rules.TypeAuto {
		return dErrors.New(dErrors.CodeBadRequest, "auto collection rules are maintained by the system")
	}

	if err := s.store.UpdateRules(ctx, id, normalized); err != nil {
		return err
	}

	col.Rules = normalized
	if err := s.persistRecompute(ctx, col); err != nil {
		// The rule write succeeded; the next sweep will repair the cache.
		s.logger.WarnContext(ctx, "recompute after rule save failed",
			"collection_id", id.String(),
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
	return nil
}

// SaveExclusions replaces the manual exclusion list and recomputes.
func (s *Service) SaveExclusions(ctx context.Context, id domain.CollectionID, excluded []domain.RecipeID) error {
	if err := s.store.UpdateExclusions(ctx, id, excluded); err != nil {
		return err
	}

	if err := s.recomputeAndPersist(ctx, id); err != nil {
		s.logger.WarnContext(ctx, "recompute after exclusion save failed",
			"collection_id", id.String(),
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
	return nil
}

// Recompute recomputes one collection and persists the result.
func (s *Service) Recompute(ctx context.Context, id domain.CollectionID) (models.AggregateResult, error) {
	col, err := s.store.Get(ctx, id)
	if err != nil {
		return models.AggregateResult{}, err
	}

	agg, err := s.calc.Recompute(ctx, col)
	if err != nil {
		// Cached aggregates stay untouched on failure.
		return models.AggregateResult{}, dErrors.Wrap(dErrors.CodeUnavailable, "recompute failed", err)
	}

	if err := s.store.UpdateAggregates(ctx, id, agg, time.Now()); err != nil {
		return models.AggregateResult{}, err
	}
	return agg, nil
}

func (s *Service) recomputeAndPersist(ctx context.Context, id domain.CollectionID) error {
	_, err := s.Recompute(ctx, id)
	return err
}

// persistRecompute recomputes an already-loaded collection snapshot and caches
// the result, sparing a refetch when the caller just read the row.
func (s *Service) persistRecompute(ctx context.Context, col *models.Collection) error {
	agg, err := s.calc.Recompute(ctx, col)
	if err != nil {
		return dErrors.Wrap(dErrors.CodeUnavailable, "recompute failed", err)
	}
	return s.store.UpdateAggregates(ctx, col.ID, agg, time.Now())
}

// CreateParams are the editor-supplied fields for a new custom collection.
type CreateParams struct {
	Category    domain.CollectionCategory
	Slug        string
	Name        string
	TargetCount int
	MinRequired int
	SortOrder   int
	Rules       rules.Config
}

// CreateCustom creates an editor-authored collection in draft state.
func (s *Service) CreateCustom(ctx context.Context, params CreateParams) (*models.Collection, error) {
	if params.Slug == "" || params.Name == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "slug and name are required")
	}

	cfg := params.Rules
	if cfg.Type == "" {
		cfg = rules.MatchAll()
	}
	if cfg.Type == rules.TypeAuto {
		return nil, dErrors.New(dErrors.CodeBadRequest, "auto collections are created by the system")
	}
	normalized := rules.Normalize(cfg)
	if result := rules.Validate(normalized); !result.Valid {
		return nil, dErrors.New(dErrors.CodeValidation, "rule set failed validation").
			WithDetails(result.Errors...)
	}

	col := &models.Collection{
		ID:               domain.CollectionID(uuid.New()),
		Category:         params.Category,
		Slug:             params.Slug,
		Name:             params.Name,
		TargetCount:      max(params.TargetCount, 1),
		MinRequired:      params.MinRequired,
		Rules:            normalized,
		QualifiedStatus:  models.StatusUnqualified,
		SortOrder:        params.SortOrder,
		PublicationState: domain.StateDraft,
	}
	if err := s.store.Create(ctx, col); err != nil {
		return nil, err
	}
	return col, nil
}

// EnsureAuto finds or creates the system-derived collection for a taxonomy
// term. Called when taxonomy terms are created elsewhere in the application.
func (s *Service) EnsureAuto(ctx context.Context, category domain.CollectionCategory, field rules.Field, tagKind domain.TagKind, ref domain.TermID, slug, name string) (*models.Collection, error) {
	existing, err := s.store.FindAutoByRef(ctx, ref)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, store.ErrNotFound) && !dErrors.Is(err, dErrors.CodeNotFound) {
		return nil, err
	}

	cfg := rules.Config{
		Type: rules.TypeAuto,
		Auto: &rules.AutoRule{Field: field, TagKind: tagKind, Ref: ref},
	}
	if result := rules.Validate(cfg); !result.Valid {
		return nil, dErrors.New(dErrors.CodeValidation, "auto rule failed validation").
			WithDetails(result.Errors...)
	}

	col := &models.Collection{
		ID:               domain.CollectionID(uuid.New()),
		Category:         category,
		Slug:             slug,
		Name:             name,
		TargetCount:      1,
		MinRequired:      1,
		Rules:            cfg,
		QualifiedStatus:  models.StatusUnqualified,
		PublicationState: domain.StateDraft,
	}
	if err := s.store.Create(ctx, col); err != nil {
		return nil, err
	}
	return col, nil
}

// Archive retires a collection explicitly.
func (s *Service) Archive(ctx context.Context, id domain.CollectionID) error {
	return s.store.Archive(ctx, id)
}
