package repository

import (
	"context"
	"fmt"

	"github.com/willmarsh13/BookstoreDemo/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// lineItemRepository implements the LineItemRepository interface using PostgreSQL.
type lineItemRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewLineItemRepository creates a new PostgreSQL-backed line item repository.
func NewLineItemRepository(pool *pgxpool.Pool, logger zerolog.Logger) LineItemRepository {
	return &lineItemRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "line_item").Logger(),
	}
}

// Create inserts a line item within the provided transaction and returns its new ID.
func (r *lineItemRepository) Create(ctx context.Context, tx pgx.Tx, item *model.LineItem) (int64, error) {
	query := `
		INSERT INTO order_line_item (book_id, customer_order_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING line_item_id
	`

	var id int64
	err := tx.QueryRow(ctx, query, item.BookID, item.OrderID, item.Quantity).Scan(&id)
	if err != nil {
		r.logger.Error().
			Err(err).
			Int64("order_id", item.OrderID).
			Int64("book_id", item.BookID).
			Msg("failed to create line item")
		return 0, fmt.Errorf("failed to create line item: %w", err)
	}

	return id, nil
}

// GetByOrderID retrieves the line items of an order in insertion order.
func (r *lineItemRepository) GetByOrderID(ctx context.Context, orderID int64) ([]model.LineItem, error) {
	query := `
		SELECT ` + lineItemColumns + `
		FROM order_line_item
		WHERE customer_order_id = $1
		ORDER BY line_item_id
	`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		r.logger.Error().
			Err(err).
			Int64("order_id", orderID).
			Msg("failed to query line items")
		return nil, fmt.Errorf("failed to query line items: %w", err)
	}

	items, err := collect(rows, scanLineItem)
	if err != nil {
		r.logger.Error().Err(err).Int64("order_id", orderID).Msg("failed to read line item rows")
		return nil, fmt.Errorf("failed to read line items: %w", err)
	}

	return items, nil
}
