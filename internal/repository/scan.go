package repository

import (
	"github.com/willmarsh13/BookstoreDemo/internal/model"

	"github.com/jackc/pgx/v5"
)

// Column lists must stay in step with the scan functions below.
const (
	bookColumns     = "book_id, title, author, price, is_public, category_id, description, is_featured, rating"
	categoryColumns = "category_id, name"
	customerColumns = "customer_id, name, address, phone, email, cc_number, cc_exp_date"
	orderColumns    = "customer_order_id, amount, date_created, confirmation_number, customer_id"
	lineItemColumns = "line_item_id, book_id, customer_order_id, quantity"
)

func scanBook(row pgx.Row) (model.Book, error) {
	var b model.Book
	err := row.Scan(
		&b.BookID,
		&b.Title,
		&b.Author,
		&b.Price,
		&b.IsPublic,
		&b.CategoryID,
		&b.Description,
		&b.IsFeatured,
		&b.Rating,
	)
	return b, err
}

func scanCategory(row pgx.Row) (model.Category, error) {
	var c model.Category
	err := row.Scan(&c.CategoryID, &c.Name)
	return c, err
}

func scanCustomer(row pgx.Row) (model.Customer, error) {
	var c model.Customer
	err := row.Scan(
		&c.CustomerID,
		&c.Name,
		&c.Address,
		&c.Phone,
		&c.Email,
		&c.CCNumber,
		&c.CCExpDate,
	)
	return c, err
}

func scanOrder(row pgx.Row) (model.Order, error) {
	var o model.Order
	err := row.Scan(&o.OrderID, &o.Amount, &o.DateCreated, &o.ConfirmationNumber, &o.CustomerID)
	return o, err
}

func scanLineItem(row pgx.Row) (model.LineItem, error) {
	var li model.LineItem
	err := row.Scan(&li.LineItemID, &li.BookID, &li.OrderID, &li.Quantity)
	return li, err
}

// collect scans every row with scan and closes rows.
func collect[T any](rows pgx.Rows, scan func(pgx.Row) (T, error)) ([]T, error) {
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
