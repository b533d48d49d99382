package model

// Surcharge is the flat fee in cents added to every order.
const Surcharge int64 = 5

// BookForm is the client's last-seen copy of a book; used only to detect stale pages.
type BookForm struct {
	BookID     int64 `json:"bookId"`
	Price      int64 `json:"price"`
	CategoryID int64 `json:"categoryId"`
}

// CartItem is one entry of a submitted shopping cart.
type CartItem struct {
	BookID   int64    `json:"bookId"`
	Quantity int      `json:"quantity"`
	BookForm BookForm `json:"bookForm"`
}

// Cart is the shopping cart submitted with an order.
type Cart struct {
	Items []CartItem `json:"itemArray"`
}

// Surcharge returns the flat fee applied to the cart.
func (c *Cart) Surcharge() int64 {
	return Surcharge
}
