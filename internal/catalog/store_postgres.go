package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"tastebook/internal/rules"
	domain "tastebook/pkg/domain"
)

// factsPageSize bounds one page of the corpus stream. Tag rows are fetched per
// page with ANY(ids), so the page size also caps that query's parameter set.
const factsPageSize = 500

// PostgresSource projects recipe rows into ContentFacts.
type PostgresSource struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed facts source.
func NewPostgres(db *sql.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

const selectFactsPage = `
SELECT id, state, cuisine_id, location_id,
       cook_time_minutes, prep_time_minutes, difficulty, servings
FROM recipes
WHERE id > $1
ORDER BY id
LIMIT $2`

const selectTagsForPage = `
SELECT recipe_id, tag_kind, term_id
FROM recipe_tags
WHERE recipe_id = ANY($1)`

// StreamFacts pages through the recipe corpus in id order and hands each
// recipe's projection to fn.
func (s *PostgresSource) StreamFacts(ctx context.Context, fn func(rules.ContentFacts) error) error {
	cursor := uuid.Nil
	for {
		page, err := s.fetchPage(ctx, cursor)
		if err != nil {
			return err
		}
		if len(page) == 0 {
			return nil
		}

		if err := s.attachTags(ctx, page); err != nil {
			return err
		}

		for _, facts := range page {
			if err := fn(*facts); err != nil {
				return err
			}
		}

		cursor = uuid.UUID(page[len(page)-1].ID)
	}
}

func (s *PostgresSource) fetchPage(ctx context.Context, cursor uuid.UUID) ([]*rules.ContentFacts, error) {
	rows, err := s.db.QueryContext(ctx, selectFactsPage, cursor, factsPageSize)
	if err != nil {
		return nil, fmt.Errorf("fetch recipe facts page: %w", err)
	}
	defer rows.Close()

	var page []*rules.ContentFacts
	for rows.Next() {
		var (
			id       uuid.UUID
			state    string
			cuisine  sql.Null[uuid.UUID]
			location sql.Null[uuid.UUID]
			cookTime sql.NullFloat64
			prepTime sql.NullFloat64
			diff     sql.NullFloat64
			servings sql.NullFloat64
		)
		if err := rows.Scan(&id, &state, &cuisine, &location, &cookTime, &prepTime, &diff, &servings); err != nil {
			return nil, fmt.Errorf("scan recipe facts: %w", err)
		}

		facts := &rules.ContentFacts{
			ID:      domain.RecipeID(id),
			State:   domain.PublicationState(state),
			Tags:    make(map[domain.TagKind][]domain.TermID),
			Numbers: make(map[rules.Field]float64),
		}
		if cuisine.Valid {
			facts.Cuisine = domain.TermID(cuisine.V)
		}
		if location.Valid {
			facts.Location = domain.TermID(location.V)
		}
		setNumber(facts, rules.FieldCookTime, cookTime)
		setNumber(facts, rules.FieldPrepTime, prepTime)
		setNumber(facts, rules.FieldDifficulty, diff)
		setNumber(facts, rules.FieldServings, servings)

		page = append(page, facts)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipe facts: %w", err)
	}
	return page, nil
}

func (s *PostgresSource) attachTags(ctx context.Context, page []*rules.ContentFacts) error {
	byID := make(map[domain.RecipeID]*rules.ContentFacts, len(page))
	ids := make([]uuid.UUID, 0, len(page))
	for _, facts := range page {
		byID[facts.ID] = facts
		ids = append(ids, uuid.UUID(facts.ID))
	}

	rows, err := s.db.QueryContext(ctx, selectTagsForPage, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("fetch recipe tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			recipeID uuid.UUID
			tagKind  string
			termID   uuid.UUID
		)
		if err := rows.Scan(&recipeID, &tagKind, &termID); err != nil {
			return fmt.Errorf("scan recipe tag: %w", err)
		}
		facts, ok := byID[domain.RecipeID(recipeID)]
		if !ok {
			continue
		}
		kind := domain.TagKind(tagKind)
		facts.Tags[kind] = append(facts.Tags[kind], domain.TermID(termID))
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate recipe tags: %w", err)
	}
	return nil
}

func setNumber(facts *rules.ContentFacts, field rules.Field, v sql.NullFloat64) {
	if v.Valid {
		facts.Numbers[field] = v.Float64
	}
}
