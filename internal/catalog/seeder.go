package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// TxBeginner starts a transaction. *pgxpool.Pool satisfies it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// SeedResult counts the rows written by a seed run.
type SeedResult struct {
	Categories int
	Books      int
}

// Seeder upserts a catalogue document in a single transaction.
type Seeder struct {
	db     TxBeginner
	logger zerolog.Logger
}

// NewSeeder creates a new catalogue seeder.
func NewSeeder(db TxBeginner, logger zerolog.Logger) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger.With().Str("component", "catalog-seeder").Logger(),
	}
}

const upsertCategorySQL = `
	INSERT INTO category (category_id, name)
	VALUES ($1, $2)
	ON CONFLICT (category_id) DO UPDATE SET name = EXCLUDED.name
`

const upsertBookSQL = `
	INSERT INTO book (book_id, title, author, price, is_public, category_id, description, is_featured, rating)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (book_id) DO UPDATE SET
		title = EXCLUDED.title,
		author = EXCLUDED.author,
		price = EXCLUDED.price,
		is_public = EXCLUDED.is_public,
		category_id = EXCLUDED.category_id,
		description = EXCLUDED.description,
		is_featured = EXCLUDED.is_featured,
		rating = EXCLUDED.rating
`

// Explicit ids bypass the BIGSERIAL sequences, so they are moved past the highest id.
const (
	syncCategorySequenceSQL = `SELECT setval(pg_get_serial_sequence('category', 'category_id'), COALESCE(MAX(category_id), 1), MAX(category_id) IS NOT NULL) FROM category`
	syncBookSequenceSQL     = `SELECT setval(pg_get_serial_sequence('book', 'book_id'), COALESCE(MAX(book_id), 1), MAX(book_id) IS NOT NULL) FROM book`
)

// Seed validates doc and upserts its categories and books. Nothing is written
// unless every row succeeds.
func (s *Seeder) Seed(ctx context.Context, doc *Document) (result SeedResult, err error) {
	if err := doc.Validate(); err != nil {
		return SeedResult{}, fmt.Errorf("invalid catalog: %w", err)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return SeedResult{}, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				s.logger.Error().Err(rbErr).Msg("failed to rollback catalog seed")
			}
		}
	}()

	batch := &pgx.Batch{}
	for _, c := range doc.ModelCategories() {
		batch.Queue(upsertCategorySQL, c.CategoryID, c.Name)
	}
	for _, b := range doc.ModelBooks() {
		batch.Queue(upsertBookSQL,
			b.BookID, b.Title, b.Author, b.Price, b.IsPublic,
			b.CategoryID, b.Description, b.IsFeatured, b.Rating,
		)
	}
	batch.Queue(syncCategorySequenceSQL)
	batch.Queue(syncBookSequenceSQL)

	if err = tx.SendBatch(ctx, batch).Close(); err != nil {
		s.logger.Error().Err(err).Msg("failed to write catalog")
		return SeedResult{}, fmt.Errorf("failed to write catalog: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return SeedResult{}, fmt.Errorf("failed to commit catalog: %w", err)
	}

	result = SeedResult{Categories: len(doc.Categories), Books: len(doc.Books)}

	s.logger.Info().
		Int("categories", result.Categories).
		Int("books", result.Books).
		Msg("catalog seeded")

	return result, nil
}
