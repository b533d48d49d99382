package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/willmarsh13/BookstoreDemo/internal/events"
	"github.com/willmarsh13/BookstoreDemo/internal/model"
	"github.com/willmarsh13/BookstoreDemo/internal/repository"
	"github.com/willmarsh13/BookstoreDemo/internal/validation"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// confirmationNumberBound is the exclusive upper bound of confirmation numbers.
const confirmationNumberBound = 999999999

// orderService implements OrderService.
type orderService struct {
	bookRepo     repository.BookRepository
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
	lineItemRepo repository.LineItemRepository
	publisher    events.Publisher
	logger       zerolog.Logger

	now                func() time.Time
	confirmationNumber func() int
}

// NewOrderService creates a new order service.
func NewOrderService(
	bookRepo repository.BookRepository,
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
	lineItemRepo repository.LineItemRepository,
	publisher events.Publisher,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		bookRepo:           bookRepo,
		customerRepo:       customerRepo,
		orderRepo:          orderRepo,
		lineItemRepo:       lineItemRepo,
		publisher:          publisher,
		logger:             logger.With().Str("service", "order").Logger(),
		now:                time.Now,
		confirmationNumber: generateConfirmationNumber,
	}
}

// generateConfirmationNumber returns a customer-facing reference. It is not unique.
func generateConfirmationNumber() int {
	return rand.IntN(confirmationNumberBound)
}

// PlaceOrder validates the form and cart, then atomically stores the customer,
// the order and its line items.
func (s *orderService) PlaceOrder(ctx context.Context, form model.CustomerForm, cart model.Cart) (int64, error) {
	if err := validation.ValidateCustomerForm(form, s.now()); err != nil {
		s.logger.Warn().Err(err).Msg("customer form rejected")
		return 0, err
	}

	books, err := validation.ValidateCart(ctx, cart, s.bookRepo)
	if err != nil {
		s.logger.Warn().Err(err).Int("item_count", len(cart.Items)).Msg("cart rejected")
		return 0, err
	}

	ccExpDate, err := validation.CardExpirationDate(form.CCExpiryMonth, form.CCExpiryYear)
	if err != nil {
		return 0, err
	}

	customer := &model.Customer{
		Name:      form.Name,
		Address:   form.Address,
		Phone:     form.Phone,
		Email:     form.Email,
		CCNumber:  validation.NormalizeCCNumber(form.CCNumber),
		CCExpDate: ccExpDate,
	}
	order := &model.Order{
		Amount:             validation.Subtotal(cart.Items, books) + cart.Surcharge(),
		ConfirmationNumber: s.confirmationNumber(),
	}

	orderID, err := s.placeOrderTx(ctx, customer, order, cart.Items)
	if err != nil {
		return 0, err
	}

	s.logger.Info().
		Int64("order_id", orderID).
		Int64("customer_id", order.CustomerID).
		Int64("amount", order.Amount).
		Int("item_count", len(cart.Items)).
		Msg("order placed successfully")

	s.publishOrderPlaced(ctx, order, cart.Items)

	return orderID, nil
}

// placeOrderTx writes the customer, order and line items in one transaction.
// Any failure rolls the transaction back exactly once and is reported as a
// *model.StorageError; a failed rollback is attached to that error.
func (s *orderService) placeOrderTx(
	ctx context.Context,
	customer *model.Customer,
	order *model.Order,
	items []model.CartItem,
) (orderID int64, err error) {
	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return 0, &model.StorageError{Op: "failed to begin transaction", Err: err}
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err == nil {
			return
		}
		rbErr := tx.Rollback(ctx)
		if rbErr == nil || errors.Is(rbErr, pgx.ErrTxClosed) {
			return
		}
		s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
		var storageErr *model.StorageError
		if errors.As(err, &storageErr) {
			storageErr.RollbackErr = rbErr
		}
	}()

	var customerID int64
	customerID, err = s.customerRepo.Create(ctx, tx, customer)
	if err != nil {
		return 0, &model.StorageError{Op: "failed to create customer", Err: err}
	}
	customer.CustomerID = customerID
	order.CustomerID = customerID

	orderID, err = s.orderRepo.Create(ctx, tx, order)
	if err != nil {
		return 0, &model.StorageError{Op: "failed to create order", Err: err}
	}
	order.OrderID = orderID

	for _, item := range items {
		lineItem := &model.LineItem{
			BookID:   item.BookID,
			OrderID:  orderID,
			Quantity: item.Quantity,
		}
		if _, err = s.lineItemRepo.Create(ctx, tx, lineItem); err != nil {
			return 0, &model.StorageError{
				Op:  fmt.Sprintf("failed to create line item for book %d", item.BookID),
				Err: err,
			}
		}
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Int64("order_id", orderID).Msg("failed to commit transaction")
		return 0, &model.StorageError{Op: "failed to commit transaction", Err: err}
	}

	return orderID, nil
}

// publishOrderPlaced notifies consumers about a committed order. Failures are logged only.
func (s *orderService) publishOrderPlaced(ctx context.Context, order *model.Order, items []model.CartItem) {
	event := events.OrderPlaced{
		OrderID:            order.OrderID,
		ConfirmationNumber: order.ConfirmationNumber,
		CustomerID:         order.CustomerID,
		Amount:             order.Amount,
		Items:              make([]events.OrderPlacedItem, len(items)),
		PlacedAt:           s.now().UTC(),
	}
	for i, item := range items {
		event.Items[i] = events.OrderPlacedItem{BookID: item.BookID, Quantity: item.Quantity}
	}

	if err := s.publisher.PublishOrderPlaced(ctx, event); err != nil {
		s.logger.Warn().Err(err).Int64("order_id", order.OrderID).Msg("failed to publish order placed event")
	}
}

// GetOrderDetails assembles an order with its customer, line items and the book of each line item.
func (s *orderService) GetOrderDetails(ctx context.Context, orderID int64) (*model.OrderDetails, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		s.logger.Error().Err(err).Int64("order_id", orderID).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		s.logger.Debug().Int64("order_id", orderID).Msg("order not found")
		return nil, model.NewNotFound("order", orderID)
	}

	customer, err := s.customerRepo.GetByID(ctx, order.CustomerID)
	if err != nil {
		s.logger.Error().Err(err).Int64("customer_id", order.CustomerID).Msg("failed to get customer")
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if customer == nil {
		return nil, model.NewNotFound("customer", order.CustomerID)
	}

	lineItems, err := s.lineItemRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		s.logger.Error().Err(err).Int64("order_id", orderID).Msg("failed to get line items")
		return nil, fmt.Errorf("failed to get line items: %w", err)
	}

	books := make([]model.Book, 0, len(lineItems))
	for _, item := range lineItems {
		book, err := s.bookRepo.GetByID(ctx, item.BookID)
		if err != nil {
			s.logger.Error().Err(err).Int64("book_id", item.BookID).Msg("failed to get book")
			return nil, fmt.Errorf("failed to get book: %w", err)
		}
		if book == nil {
			return nil, model.NewNotFound("book", item.BookID)
		}
		books = append(books, *book)
	}

	return &model.OrderDetails{
		Order:     *order,
		Customer:  *customer,
		LineItems: lineItems,
		Books:     books,
	}, nil
}
