package repository

import (
	"context"

	"github.com/willmarsh13/BookstoreDemo/internal/model"

	"github.com/jackc/pgx/v5"
)

// BookRepository defines read-only access to the book catalogue.
type BookRepository interface {
	// GetByID retrieves a single book by its ID. Returns nil, nil when absent.
	GetByID(ctx context.Context, id int64) (*model.Book, error)

	// GetByCategoryID retrieves the books in a category ordered by title.
	GetByCategoryID(ctx context.Context, categoryID int64, limit, offset int) ([]model.Book, error)

	// GetFeatured retrieves featured public books.
	GetFeatured(ctx context.Context, limit int) ([]model.Book, error)
}

// CategoryRepository defines read-only access to catalogue categories.
type CategoryRepository interface {
	// GetAll retrieves every category ordered by ID.
	GetAll(ctx context.Context) ([]model.Category, error)

	// GetByID retrieves a single category. Returns nil, nil when absent.
	GetByID(ctx context.Context, id int64) (*model.Category, error)
}

// CustomerRepository defines customer persistence.
type CustomerRepository interface {
	// Create inserts a customer within the provided transaction and returns its new ID.
	Create(ctx context.Context, tx pgx.Tx, customer *model.Customer) (int64, error)

	// GetByID retrieves a customer. Returns nil, nil when absent.
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
}

// OrderRepository defines order persistence.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// Create inserts an order within the provided transaction and returns its new ID.
	Create(ctx context.Context, tx pgx.Tx, order *model.Order) (int64, error)

	// GetByID retrieves an order. Returns nil, nil when absent.
	GetByID(ctx context.Context, id int64) (*model.Order, error)
}

// LineItemRepository defines order line item persistence.
type LineItemRepository interface {
	// Create inserts a line item within the provided transaction and returns its new ID.
	Create(ctx context.Context, tx pgx.Tx, item *model.LineItem) (int64, error)

	// GetByOrderID retrieves the line items of an order in insertion order.
	GetByOrderID(ctx context.Context, orderID int64) ([]model.LineItem, error)
}
