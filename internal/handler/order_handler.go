package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/willmarsh13/BookstoreDemo/internal/middleware"
	"github.com/willmarsh13/BookstoreDemo/internal/model"
	"github.com/willmarsh13/BookstoreDemo/internal/service"

	"github.com/rs/zerolog"
)

const maxOrderBodyBytes = 1 << 20

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// PlaceOrder handles POST /api/orders. The body is {"cart": ..., "customerForm": ...};
// the response is the stored order with its customer, line items and books.
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var form model.OrderForm
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxOrderBodyBytes)).Decode(&form); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrorResponse{
			Error:   model.ErrCodeInvalidJSON,
			Message: "invalid request body",
		}, h.logger)
		return
	}

	orderID, err := h.service.PlaceOrder(r.Context(), form.CustomerForm, form.Cart)
	if err != nil {
		respondError(w, r, err, "failed to place order", h.logger)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/orders/%d", orderID))

	// The order is committed; a failed lookup must not make the client retry.
	details, err := h.service.GetOrderDetails(r.Context(), orderID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Int64("order_id", orderID).
			Str("request_id", middleware.RequestIDFromContext(r.Context())).
			Msg("order placed but details could not be loaded")
		writeJSON(w, http.StatusCreated, placedOrderResponse{OrderID: orderID})
		return
	}

	writeJSON(w, http.StatusCreated, newOrderDetailsResponse(details))
}

// GetByID handles GET /api/orders/{id}.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(r, "id")
	if !ok {
		writeError(w, r, http.StatusBadRequest, invalidParameter("id", "invalid order ID"), h.logger)
		return
	}

	details, err := h.service.GetOrderDetails(r.Context(), orderID)
	if err != nil {
		respondError(w, r, err, "failed to retrieve order", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, newOrderDetailsResponse(details))
}
