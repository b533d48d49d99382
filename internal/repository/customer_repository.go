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

// customerRepository implements the CustomerRepository interface using PostgreSQL.
type customerRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCustomerRepository creates a new PostgreSQL-backed customer repository.
func NewCustomerRepository(pool *pgxpool.Pool, logger zerolog.Logger) CustomerRepository {
	return &customerRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "customer").Logger(),
	}
}

// Create inserts a customer within the provided transaction and returns its new ID.
func (r *customerRepository) Create(ctx context.Context, tx pgx.Tx, customer *model.Customer) (int64, error) {
	query := `
		INSERT INTO customer (name, address, phone, email, cc_number, cc_exp_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING customer_id
	`

	var id int64
	err := tx.QueryRow(ctx, query,
		customer.Name,
		customer.Address,
		customer.Phone,
		customer.Email,
		customer.CCNumber,
		customer.CCExpDate,
	).Scan(&id)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to create customer")
		return 0, fmt.Errorf("failed to create customer: %w", err)
	}

	r.logger.Debug().Int64("customer_id", id).Msg("customer created successfully")

	return id, nil
}

// GetByID retrieves a customer by its ID.
func (r *customerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customer WHERE customer_id = $1`

	customer, err := scanCustomer(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("customer_id", id).Msg("customer not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("customer_id", id).Msg("failed to query customer")
		return nil, fmt.Errorf("failed to query customer: %w", err)
	}

	return &customer, nil
}
