package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"tastebook/internal/collection/models"
	"tastebook/internal/rules"
	domain "tastebook/pkg/domain"
	"tastebook/pkg/requestcontext"
)

// PostgresStore persists collections in PostgreSQL. Rule configs live as a
// jsonb column next to the cached aggregate fields; the denormalization trades
// write complexity for read speed, and UpdateAggregates is the only writer of
// the cached fields.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed collection store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const collectionColumns = `
id, category, slug, path, name, target_count, min_required,
rules, excluded_recipe_ids,
cached_published_count, cached_pending_count, cached_draft_count,
qualified_status, aggregates_updated_at,
sort_order, publication_state, created_at, updated_at`

const insertCollection = `
INSERT INTO collections (` + collectionColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

const selectCollection = `
SELECT ` + collectionColumns + `
FROM collections
WHERE id = $1`

const selectByCategories = `
SELECT ` + collectionColumns + `
FROM collections
WHERE category = ANY($1) AND publication_state = $2
ORDER BY sort_order ASC, cached_published_count DESC`

const selectActive = `
SELECT ` + collectionColumns + `
FROM collections
WHERE publication_state <> 'archived'
ORDER BY category, sort_order`

const selectAutoByRef = `
SELECT ` + collectionColumns + `
FROM collections
WHERE rules->>'type' = 'auto' AND rules->'auto'->>'ref' = $1`

const updateRules = `
UPDATE collections
SET rules = $2, updated_at = $3
WHERE id = $1`

const updateExclusions = `
UPDATE collections
SET excluded_recipe_ids = $2, updated_at = $3
WHERE id = $1`

const updateAggregates = `
UPDATE collections
SET cached_published_count = $2,
    cached_pending_count = $3,
    cached_draft_count = $4,
    qualified_status = $5,
    aggregates_updated_at = $6
WHERE id = $1`

const archiveCollection = `
UPDATE collections
SET publication_state = 'archived', updated_at = $2
WHERE id = $1`

// Create inserts a new collection. TargetCount is floored to 1 so the field
// can always serve as a progress denominator.
func (s *PostgresStore) Create(ctx context.Context, c *models.Collection) error {
	if c == nil {
		return fmt.Errorf("collection is required")
	}
	if c.TargetCount < 1 {
		c.TargetCount = 1
	}

	rulesJSON, err := json.Marshal(c.Rules)
	if err != nil {
		return fmt.Errorf("marshal rules: %w", err)
	}

	now := requestcontext.Now(ctx)
	c.CreatedAt = now
	c.UpdatedAt = now

	_, err = s.db.ExecContext(ctx, insertCollection,
		uuid.UUID(c.ID), string(c.Category), c.Slug, c.Path, c.Name,
		c.TargetCount, c.MinRequired,
		rulesJSON, pq.Array(recipeUUIDs(c.ExcludedRecipeIDs)),
		c.CachedPublishedCount, c.CachedPendingCount, c.CachedDraftCount,
		string(c.QualifiedStatus), c.AggregatesUpdatedAt,
		c.SortOrder, string(c.PublicationState), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert collection: %w", err)
	}
	return nil
}

// Get fetches one collection by id.
func (s *PostgresStore) Get(ctx context.Context, id domain.CollectionID) (*models.Collection, error) {
	row := s.db.QueryRowContext(ctx, selectCollection, uuid.UUID(id))
	c, err := scanCollection(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get collection: %w", err)
	}
	return c, nil
}

// ListByCategories fetches collections in the given categories and publication
// state, ordered by sort_order then cached published count. Qualification is
// derived, not stored as a queryable boolean, so callers filter post-fetch.
func (s *PostgresStore) ListByCategories(ctx context.Context, categories []domain.CollectionCategory, state domain.PublicationState) ([]*models.Collection, error) {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}

	rows, err := s.db.QueryContext(ctx, selectByCategories, pq.Array(names), string(state))
	if err != nil {
		return nil, fmt.Errorf("list collections by category: %w", err)
	}
	defer rows.Close()
	return scanCollections(rows)
}

// ListActive fetches every non-archived collection for batch recomputation.
func (s *PostgresStore) ListActive(ctx context.Context) ([]*models.Collection, error) {
	rows, err := s.db.QueryContext(ctx, selectActive)
	if err != nil {
		return nil, fmt.Errorf("list active collections: %w", err)
	}
	defer rows.Close()
	return scanCollections(rows)
}

// FindAutoByRef locates the system-derived collection linked to a taxonomy
// term, if one exists.
func (s *PostgresStore) FindAutoByRef(ctx context.Context, ref domain.TermID) (*models.Collection, error) {
	row := s.db.QueryRowContext(ctx, selectAutoByRef, ref.String())
	c, err := scanCollection(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find auto collection: %w", err)
	}
	return c, nil
}

// UpdateRules replaces a collection's rule config wholesale.
func (s *PostgresStore) UpdateRules(ctx context.Context, id domain.CollectionID, cfg rules.Config) error {
	rulesJSON, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal rules: %w", err)
	}
	return s.exec(ctx, updateRules, "update collection rules", uuid.UUID(id), rulesJSON, requestcontext.Now(ctx))
}

// UpdateExclusions replaces the manual exclusion list wholesale.
func (s *PostgresStore) UpdateExclusions(ctx context.Context, id domain.CollectionID, excluded []domain.RecipeID) error {
	return s.exec(ctx, updateExclusions, "update collection exclusions", uuid.UUID(id), pq.Array(recipeUUIDs(excluded)), requestcontext.Now(ctx))
}

// UpdateAggregates writes the calculator's output to the cached fields. This
// is the single write path for derived state; last-write-wins is acceptable
// because recompute is idempotent for an unchanged corpus.
func (s *PostgresStore) UpdateAggregates(ctx context.Context, id domain.CollectionID, agg models.AggregateResult, updatedAt time.Time) error {
	return s.exec(ctx, updateAggregates, "update collection aggregates",
		uuid.UUID(id),
		agg.PublishedCount, agg.PendingCount, agg.DraftCount,
		string(agg.QualifiedStatus), updatedAt,
	)
}

// Archive retires a collection. Destruction is always explicit, never implied
// by rule or content changes.
func (s *PostgresStore) Archive(ctx context.Context, id domain.CollectionID) error {
	return s.exec(ctx, archiveCollection, "archive collection", uuid.UUID(id), requestcontext.Now(ctx))
}

func (s *PostgresStore) exec(ctx context.Context, query, what string, args ...any) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCollection(row rowScanner) (*models.Collection, error) {
	var (
		id                  uuid.UUID
		category            string
		rulesJSON           []byte
		excluded            []uuid.UUID
		qualifiedStatus     string
		publicationState    string
		aggregatesUpdatedAt sql.NullTime
		c                   models.Collection
	)

	err := row.Scan(
		&id, &category, &c.Slug, &c.Path, &c.Name,
		&c.TargetCount, &c.MinRequired,
		&rulesJSON, pq.Array(&excluded),
		&c.CachedPublishedCount, &c.CachedPendingCount, &c.CachedDraftCount,
		&qualifiedStatus, &aggregatesUpdatedAt,
		&c.SortOrder, &publicationState, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.ID = domain.CollectionID(id)
	c.Category = domain.CollectionCategory(category)
	c.QualifiedStatus = models.QualifiedStatus(qualifiedStatus)
	c.PublicationState = domain.PublicationState(publicationState)
	if aggregatesUpdatedAt.Valid {
		c.AggregatesUpdatedAt = aggregatesUpdatedAt.Time
	}

	if err := json.Unmarshal(rulesJSON, &c.Rules); err != nil {
		return nil, fmt.Errorf("unmarshal rules: %w", err)
	}

	c.ExcludedRecipeIDs = make([]domain.RecipeID, len(excluded))
	for i, u := range excluded {
		c.ExcludedRecipeIDs[i] = domain.RecipeID(u)
	}

	return &c, nil
}

func scanCollections(rows *sql.Rows) ([]*models.Collection, error) {
	var collections []*models.Collection
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, fmt.Errorf("scan collection: %w", err)
		}
		collections = append(collections, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate collections: %w", err)
	}
	return collections, nil
}

func recipeUUIDs(ids []domain.RecipeID) []uuid.UUID {
	out := make([]uuid.UUID, len(ids))
	for i, id := range ids {
		out[i] = uuid.UUID(id)
	}
	return out
}
