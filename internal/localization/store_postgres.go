package localization

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	domain "tastebook/pkg/domain"
)

// PostgresTranslator reads collection name translations from the database.
type PostgresTranslator struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed Translator.
func NewPostgres(db *sql.DB) *PostgresTranslator {
	return &PostgresTranslator{db: db}
}

const selectName = `
SELECT name
FROM collection_translations
WHERE collection_id = $1 AND locale = $2`

func (t *PostgresTranslator) CollectionName(ctx context.Context, id domain.CollectionID, locale string) (string, error) {
	var name string
	err := t.db.QueryRowContext(ctx, selectName, id.String(), NormalizeLocale(locale)).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoTranslation
	}
	if err != nil {
		return "", fmt.Errorf("select collection translation: %w", err)
	}
	return name, nil
}
