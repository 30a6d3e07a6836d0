package resolver

import (
	"context"
	"database/sql"
	"fmt"

	"tastebook/internal/collection/models"
	domain "tastebook/pkg/domain"
)

// BlockStore loads stored block overrides for an aggregation page.
type BlockStore interface {
	ListBlocks(ctx context.Context, page string) ([]models.BlockConfig, error)
}

// PostgresBlockStore persists per-page block overrides.
type PostgresBlockStore struct {
	db *sql.DB
}

// NewPostgresBlockStore constructs a PostgreSQL-backed block store.
func NewPostgresBlockStore(db *sql.DB) *PostgresBlockStore {
	return &PostgresBlockStore{db: db}
}

const selectBlocks = `
SELECT category, enabled, sort_order, card_count, min_threshold
FROM page_blocks
WHERE page = $1
ORDER BY sort_order`

// ListBlocks returns the stored overrides for a page. A page with no stored
// rows returns an empty slice; ResolveBlocks supplies the defaults.
func (s *PostgresBlockStore) ListBlocks(ctx context.Context, page string) ([]models.BlockConfig, error) {
	rows, err := s.db.QueryContext(ctx, selectBlocks, page)
	if err != nil {
		return nil, fmt.Errorf("list page blocks: %w", err)
	}
	defer rows.Close()

	var blocks []models.BlockConfig
	for rows.Next() {
		var (
			category string
			b        models.BlockConfig
		)
		if err := rows.Scan(&category, &b.Enabled, &b.Order, &b.CardCount, &b.MinThreshold); err != nil {
			return nil, fmt.Errorf("scan page block: %w", err)
		}
		b.Category = domain.CollectionCategory(category)
		blocks = append(blocks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate page blocks: %w", err)
	}
	return blocks, nil
}

// StaticBlockStore serves a fixed override list; used in tests and for
// deployments without editor-configured pages.
type StaticBlockStore struct {
	Blocks []models.BlockConfig
}

func (s *StaticBlockStore) ListBlocks(context.Context, string) ([]models.BlockConfig, error) {
	return s.Blocks, nil
}
