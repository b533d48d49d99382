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

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *orderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Create inserts an order within the provided transaction and returns its new ID.
// DateCreated is assigned by the database when zero.
func (r *orderRepository) Create(ctx context.Context, tx pgx.Tx, order *model.Order) (int64, error) {
	query := `
		INSERT INTO customer_order (amount, date_created, confirmation_number, customer_id)
		VALUES ($1, COALESCE($2, NOW()), $3, $4)
		RETURNING customer_order_id
	`

	var dateCreated any
	if !order.DateCreated.IsZero() {
		dateCreated = order.DateCreated
	}

	var id int64
	err := tx.QueryRow(ctx, query, order.Amount, dateCreated, order.ConfirmationNumber, order.CustomerID).Scan(&id)
	if err != nil {
		r.logger.Error().
			Err(err).
			Int64("customer_id", order.CustomerID).
			Msg("failed to create order")
		return 0, fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().
		Int64("order_id", id).
		Int64("customer_id", order.CustomerID).
		Msg("order created successfully")

	return id, nil
}

// GetByID retrieves an order by its ID.
func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM customer_order WHERE customer_order_id = $1`

	order, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("order_id", id).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("order_id", id).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	return &order, nil
}
