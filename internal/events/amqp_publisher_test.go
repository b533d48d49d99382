package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	exchange   string
	key        string
	published  []amqp.Publishing
	publishErr error
	closed     bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.exchange = exchange
	f.key = key
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestAMQPPublisher_PublishOrderPlaced(t *testing.T) {
	ch := &fakeChannel{}
	p := newAMQPPublisher(ch, "bookstore.orders", zerolog.Nop())

	placedAt := time.Date(2026, time.October, 16, 9, 30, 0, 0, time.UTC)
	event := OrderPlaced{
		OrderID:            42,
		ConfirmationNumber: 987654321,
		CustomerID:         7,
		Amount:             1304,
		Items:              []OrderPlacedItem{{BookID: 3, Quantity: 1}},
		PlacedAt:           placedAt,
	}

	require.NoError(t, p.PublishOrderPlaced(context.Background(), event))

	require.Len(t, ch.published, 1)
	assert.Equal(t, "bookstore.orders", ch.exchange)
	assert.Equal(t, RoutingKeyOrderPlaced, ch.key)

	msg := ch.published[0]
	assert.Equal(t, uint8(amqp.Persistent), msg.DeliveryMode)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.NotEmpty(t, msg.MessageId)
	assert.Equal(t, placedAt, msg.Timestamp)

	var decoded OrderPlaced
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, int64(42), decoded.OrderID)
	assert.Equal(t, msg.MessageId, decoded.MessageID)
	assert.Equal(t, event.Items, decoded.Items)
}

func TestAMQPPublisher_PublishError(t *testing.T) {
	ch := &fakeChannel{publishErr: errors.New("channel closed")}
	p := newAMQPPublisher(ch, "bookstore.orders", zerolog.Nop())

	err := p.PublishOrderPlaced(context.Background(), OrderPlaced{OrderID: 1})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish order event")
}

func TestAMQPPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	p := newAMQPPublisher(ch, "bookstore.orders", zerolog.Nop())

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestNoopPublisher(t *testing.T) {
	p := NewNoopPublisher(zerolog.Nop())

	assert.NoError(t, p.PublishOrderPlaced(context.Background(), OrderPlaced{OrderID: 1}))
	assert.NoError(t, p.Close())
}
