package model

import "time"

// Order represents a placed customer order. Amount is in cents and includes the surcharge.
type Order struct {
	OrderID            int64     `json:"orderId" db:"customer_order_id"`
	Amount             int64     `json:"amount" db:"amount"`
	DateCreated        time.Time `json:"dateCreated" db:"date_created"`
	ConfirmationNumber int       `json:"confirmationNumber" db:"confirmation_number"`
	CustomerID         int64     `json:"customerId" db:"customer_id"`
}

// LineItem represents one book and quantity within an order.
type LineItem struct {
	LineItemID int64 `json:"-" db:"line_item_id"`
	BookID     int64 `json:"bookId" db:"book_id"`
	OrderID    int64 `json:"orderId" db:"customer_order_id"`
	Quantity   int   `json:"quantity" db:"quantity"`
}

// OrderForm is the request payload for placing an order.
type OrderForm struct {
	Cart         Cart         `json:"cart"`
	CustomerForm CustomerForm `json:"customerForm"`
}

// OrderDetails is an order with its customer, line items and the book for each line item.
// Books[i] is the book referenced by LineItems[i].
type OrderDetails struct {
	Order     Order      `json:"order"`
	Customer  Customer   `json:"customer"`
	LineItems []LineItem `json:"lineItems"`
	Books     []Book     `json:"books"`
}
