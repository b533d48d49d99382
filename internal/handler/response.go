package handler

import (
	"strings"

	"github.com/willmarsh13/BookstoreDemo/internal/catalog"
	"github.com/willmarsh13/BookstoreDemo/internal/model"
)

// bookResponse adds a formatted dollar price to a book.
type bookResponse struct {
	model.Book
	DisplayPrice string `json:"displayPrice"`
}

// placedOrderResponse is returned when an order was stored but its details could not be read back.
type placedOrderResponse struct {
	OrderID int64 `json:"orderId"`
}

type orderResponse struct {
	model.Order
	DisplayAmount string `json:"displayAmount"`
}

// customerResponse hides all but the last four card digits.
type customerResponse struct {
	CustomerID int64  `json:"customerId"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	CCNumber   string `json:"ccNumber"`
	CCExpDate  string `json:"ccExpDate"`
}

type orderDetailsResponse struct {
	Order     orderResponse    `json:"order"`
	Customer  customerResponse `json:"customer"`
	LineItems []model.LineItem `json:"lineItems"`
	Books     []bookResponse   `json:"books"`
}

func displayAmount(cents int64) string {
	return catalog.FromCents(cents).StringFixed(2)
}

func newBookResponse(b model.Book) bookResponse {
	return bookResponse{Book: b, DisplayPrice: displayAmount(b.Price)}
}

func newBookResponses(books []model.Book) []bookResponse {
	out := make([]bookResponse, len(books))
	for i, b := range books {
		out[i] = newBookResponse(b)
	}
	return out
}

func newOrderDetailsResponse(d *model.OrderDetails) orderDetailsResponse {
	return orderDetailsResponse{
		Order: orderResponse{Order: d.Order, DisplayAmount: displayAmount(d.Order.Amount)},
		Customer: customerResponse{
			CustomerID: d.Customer.CustomerID,
			Name:       d.Customer.Name,
			Address:    d.Customer.Address,
			Phone:      d.Customer.Phone,
			Email:      d.Customer.Email,
			CCNumber:   maskCardNumber(d.Customer.CCNumber),
			CCExpDate:  d.Customer.CCExpDate.Format("01/2006"),
		},
		LineItems: d.LineItems,
		Books:     newBookResponses(d.Books),
	}
}

func maskCardNumber(number string) string {
	digits := []rune(strings.NewReplacer(" ", "", "-", "").Replace(number))
	if len(digits) <= 4 {
		return string(digits)
	}
	return strings.Repeat("*", len(digits)-4) + string(digits[len(digits)-4:])
}
