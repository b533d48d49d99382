package validation

import (
	"context"
	"fmt"

	"github.com/willmarsh13/BookstoreDemo/internal/model"
)

// BookFinder looks up the authoritative copy of a book.
// It returns nil, nil when the book does not exist.
type BookFinder interface {
	GetByID(ctx context.Context, id int64) (*model.Book, error)
}

// ValidateCart checks the cart against the catalogue and stops at the first bad item.
// On success it returns the authoritative books, aligned with cart.Items.
func ValidateCart(ctx context.Context, cart model.Cart, books BookFinder) ([]model.Book, error) {
	if len(cart.Items) == 0 {
		return nil, model.NewInvalidParameter("", "Cart is empty.")
	}

	resolved := make([]model.Book, 0, len(cart.Items))
	for _, item := range cart.Items {
		if validate.Var(item.Quantity, "min=1,max=99") != nil {
			return nil, model.NewInvalidParameter("", "All quantities must be between 1 and 99.")
		}

		book, err := books.GetByID(ctx, item.BookID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up book %d: %w", item.BookID, err)
		}
		if book == nil {
			return nil, model.NewInvalidParameter("", fmt.Sprintf("Book %d does not exist.", item.BookID))
		}

		if book.Price != item.BookForm.Price {
			return nil, model.NewInvalidParameter("", "Price does not match for "+book.Title+
				". Try refreshing the page, the price may have updated!")
		}
		if book.CategoryID != item.BookForm.CategoryID {
			return nil, model.NewInvalidParameter("", "Category does not match for "+book.Title+
				". Try refreshing the page, the category may have updated!")
		}

		resolved = append(resolved, *book)
	}

	return resolved, nil
}

// Subtotal sums quantity times authoritative price, excluding the surcharge.
// books must be aligned with items.
func Subtotal(items []model.CartItem, books []model.Book) int64 {
	var total int64
	for i, item := range items {
		total += int64(item.Quantity) * books[i].Price
	}
	return total
}
