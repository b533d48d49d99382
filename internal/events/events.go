// Package events publishes notifications about placed orders.
package events

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// RoutingKeyOrderPlaced is the routing key used for order placed messages.
const RoutingKeyOrderPlaced = "order.placed"

// OrderPlaced is published once an order transaction has committed.
type OrderPlaced struct {
	MessageID          string            `json:"messageId"`
	OrderID            int64             `json:"orderId"`
	ConfirmationNumber int               `json:"confirmationNumber"`
	CustomerID         int64             `json:"customerId"`
	Amount             int64             `json:"amount"`
	Items              []OrderPlacedItem `json:"items"`
	PlacedAt           time.Time         `json:"placedAt"`
}

// OrderPlacedItem is one line of a placed order.
type OrderPlacedItem struct {
	BookID   int64 `json:"bookId"`
	Quantity int   `json:"quantity"`
}

// Publisher delivers order events to interested consumers.
type Publisher interface {
	// PublishOrderPlaced publishes an order placed event.
	PublishOrderPlaced(ctx context.Context, event OrderPlaced) error

	// Close releases the underlying connection.
	Close() error
}

type noopPublisher struct {
	logger zerolog.Logger
}

// NewNoopPublisher returns a Publisher that only logs events.
func NewNoopPublisher(logger zerolog.Logger) Publisher {
	return &noopPublisher{
		logger: logger.With().Str("component", "noop-publisher").Logger(),
	}
}

func (p *noopPublisher) PublishOrderPlaced(_ context.Context, event OrderPlaced) error {
	p.logger.Debug().
		Int64("order_id", event.OrderID).
		Msg("order event publishing disabled")
	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}
