package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/willmarsh13/BookstoreDemo/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// bookRepository implements the BookRepository interface using PostgreSQL.
type bookRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewBookRepository creates a new PostgreSQL-backed book repository.
func NewBookRepository(pool *pgxpool.Pool, logger zerolog.Logger) BookRepository {
	return &bookRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "book").Logger(),
	}
}

// GetByID retrieves a single book by its ID.
func (r *bookRepository) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM book WHERE book_id = $1`

	book, err := scanBook(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("book_id", id).Msg("book not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("book_id", id).Msg("failed to query book")
		return nil, fmt.Errorf("failed to query book: %w", err)
	}

	return &book, nil
}

// GetByCategoryID retrieves the books in a category ordered by title.
func (r *bookRepository) GetByCategoryID(ctx context.Context, categoryID int64, limit, offset int) ([]model.Book, error) {
	query := `
		SELECT ` + bookColumns + `
		FROM book
		WHERE category_id = $1
		ORDER BY title, book_id
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, categoryID, limit, offset)
	if err != nil {
		r.logger.Error().Err(err).
			Int64("category_id", categoryID).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to query books by category")
		return nil, fmt.Errorf("failed to query books by category: %w", err)
	}

	books, err := collect(rows, scanBook)
	if err != nil {
		r.logger.Error().Err(err).Int64("category_id", categoryID).Msg("failed to read book rows")
		return nil, fmt.Errorf("failed to read books: %w", err)
	}

	return books, nil
}

// GetFeatured retrieves featured public books.
func (r *bookRepository) GetFeatured(ctx context.Context, limit int) ([]model.Book, error) {
	query := `
		SELECT ` + bookColumns + `
		FROM book
		WHERE is_featured AND is_public
		ORDER BY rating DESC, book_id
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		r.logger.Error().Err(err).Int("limit", limit).Msg("failed to query featured books")
		return nil, fmt.Errorf("failed to query featured books: %w", err)
	}

	books, err := collect(rows, scanBook)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to read featured book rows")
		return nil, fmt.Errorf("failed to read books: %w", err)
	}

	return books, nil
}
