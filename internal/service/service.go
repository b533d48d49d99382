package service

import (
	"context"

	"github.com/willmarsh13/BookstoreDemo/internal/model"
)

// CatalogService defines read operations on categories and books.
type CatalogService interface {
	// GetCategories retrieves every category.
	GetCategories(ctx context.Context) ([]model.Category, error)

	// GetCategory retrieves a single category by ID.
	GetCategory(ctx context.Context, id int64) (*model.Category, error)

	// GetBooksByCategory retrieves a page of books in a category.
	GetBooksByCategory(ctx context.Context, categoryID int64, limit, offset int) ([]model.Book, error)

	// GetBook retrieves a single book by ID.
	GetBook(ctx context.Context, id int64) (*model.Book, error)

	// GetFeaturedBooks retrieves featured public books.
	GetFeaturedBooks(ctx context.Context, limit int) ([]model.Book, error)
}

// OrderService defines order placement and retrieval.
type OrderService interface {
	// PlaceOrder validates the form and cart, then atomically stores the customer,
	// the order and its line items. It returns the new order ID.
	PlaceOrder(ctx context.Context, form model.CustomerForm, cart model.Cart) (int64, error)

	// GetOrderDetails assembles an order with its customer, line items and books.
	GetOrderDetails(ctx context.Context, orderID int64) (*model.OrderDetails, error)
}
