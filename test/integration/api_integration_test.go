package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/willmarsh13/BookstoreDemo/internal/events"
	"github.com/willmarsh13/BookstoreDemo/internal/handler"
	"github.com/willmarsh13/BookstoreDemo/internal/middleware"
	"github.com/willmarsh13/BookstoreDemo/internal/model"
	"github.com/willmarsh13/BookstoreDemo/internal/repository"
	"github.com/willmarsh13/BookstoreDemo/internal/router"
	"github.com/willmarsh13/BookstoreDemo/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiBook struct {
	BookID       int64  `json:"bookId"`
	Title        string `json:"title"`
	Price        int64  `json:"price"`
	CategoryID   int64  `json:"categoryId"`
	DisplayPrice string `json:"displayPrice"`
}

type apiOrderDetails struct {
	Order struct {
		OrderID       int64  `json:"orderId"`
		Amount        int64  `json:"amount"`
		CustomerID    int64  `json:"customerId"`
		DisplayAmount string `json:"displayAmount"`
	} `json:"order"`
	Customer struct {
		CustomerID int64  `json:"customerId"`
		Email      string `json:"email"`
		CCNumber   string `json:"ccNumber"`
	} `json:"customer"`
	LineItems []model.LineItem `json:"lineItems"`
	Books     []apiBook        `json:"books"`
}

func setupTestServer(t *testing.T, testDB *TestDB) http.Handler {
	t.Helper()

	logger := zerolog.Nop()

	bookRepo := repository.NewBookRepository(testDB.Pool, logger)
	categoryRepo := repository.NewCategoryRepository(testDB.Pool, logger)
	customerRepo := repository.NewCustomerRepository(testDB.Pool, logger)
	orderRepo := repository.NewOrderRepository(testDB.Pool, logger)
	lineItemRepo := repository.NewLineItemRepository(testDB.Pool, logger)

	catalogService := service.NewCatalogService(categoryRepo, bookRepo, logger)
	orderService := service.NewOrderService(bookRepo, customerRepo, orderRepo, lineItemRepo, events.NewNoopPublisher(logger), logger)

	return router.New(
		handler.NewCatalogHandler(catalogService, logger),
		handler.NewOrderHandler(orderService, logger),
		testDB.Pool,
		logger,
	)
}

func doRequest(t *testing.T, server http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	return w
}

func TestCatalogAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	t.Run("GET /health", func(t *testing.T) {
		w := doRequest(t, server, http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("GET /api/categories lists the seeded categories", func(t *testing.T) {
		w := doRequest(t, server, http.MethodGet, "/api/categories", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var categories []model.Category
		require.NoError(t, json.NewDecoder(w.Body).Decode(&categories))
		require.Len(t, categories, 4)
		assert.Equal(t, "Classics", categories[0].Name)
	})

	t.Run("GET /api/categories/{id}/books orders by title", func(t *testing.T) {
		w := doRequest(t, server, http.MethodGet, "/api/categories/"+strconv.FormatInt(scienceFictionID, 10)+"/books", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var books []apiBook
		require.NoError(t, json.NewDecoder(w.Body).Decode(&books))
		require.Len(t, books, 3)
		assert.Equal(t, "Dune", books[0].Title)
		assert.Equal(t, "12.99", books[0].DisplayPrice)
		assert.Equal(t, "The Time Machine", books[2].Title)
	})

	t.Run("GET /api/categories/{id}/books pages", func(t *testing.T) {
		w := doRequest(t, server, http.MethodGet, "/api/categories/1004/books?limit=1&offset=1", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var books []apiBook
		require.NoError(t, json.NewDecoder(w.Body).Decode(&books))
		require.Len(t, books, 1)
		assert.Equal(t, "The Left Hand of Darkness", books[0].Title)
	})

	t.Run("GET /api/categories/{id}/books for unknown category", func(t *testing.T) {
		w := doRequest(t, server, http.MethodGet, "/api/categories/77/books", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("GET /api/books/featured ranks by rating", func(t *testing.T) {
		w := doRequest(t, server, http.MethodGet, "/api/books/featured", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var books []apiBook
		require.NoError(t, json.NewDecoder(w.Body).Decode(&books))
		require.Len(t, books, 3)
		assert.Equal(t, "The Hobbit", books[0].Title)
		assert.Equal(t, "Dune", books[2].Title)
	})

	t.Run("GET /api/books/{id}", func(t *testing.T) {
		w := doRequest(t, server, http.MethodGet, "/api/books/1008", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var book apiBook
		require.NoError(t, json.NewDecoder(w.Body).Decode(&book))
		assert.Equal(t, int64(1299), book.Price)
	})
}

func TestOrderAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)
	repos := newRepositories(testDB)

	dune := loadBook(t, repos, duneID)
	timeMachine := loadBook(t, repos, timeMachineID)

	t.Run("POST /api/orders places an order and GET returns it", func(t *testing.T) {
		CleanupOrders(t, testDB.Pool)

		form := model.OrderForm{
			Cart:         model.Cart{Items: []model.CartItem{CartItem(dune, 2), CartItem(timeMachine, 1)}},
			CustomerForm: ValidCustomerForm(),
		}

		w := doRequest(t, server, http.MethodPost, "/api/orders", form)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created apiOrderDetails
		require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
		assert.Equal(t, int64(3202), created.Order.Amount)
		assert.Equal(t, "32.02", created.Order.DisplayAmount)
		assert.Equal(t, "************1111", created.Customer.CCNumber)
		require.Len(t, created.LineItems, 2)
		assert.Equal(t, duneID, created.LineItems[0].BookID)
		assert.Equal(t, timeMachineID, created.Books[1].BookID)

		location := w.Header().Get("Location")
		assert.Equal(t, "/api/orders/"+strconv.FormatInt(created.Order.OrderID, 10), location)

		w = doRequest(t, server, http.MethodGet, location, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var fetched apiOrderDetails
		require.NoError(t, json.NewDecoder(w.Body).Decode(&fetched))
		assert.Equal(t, created, fetched)
	})

	t.Run("POST /api/orders rejections", func(t *testing.T) {
		CleanupOrders(t, testDB.Pool)

		stale := CartItem(dune, 1)
		stale.BookForm.Price = 999

		badEmail := ValidCustomerForm()
		badEmail.Email = "jane.example.com"

		expired := ValidCustomerForm()
		expired.CCExpiryYear = "2001"

		tests := []struct {
			name         string
			body         any
			expectedCode string
		}{
			{
				name:         "Empty cart",
				body:         model.OrderForm{CustomerForm: ValidCustomerForm()},
				expectedCode: model.ErrCodeInvalidParameter,
			},
			{
				name:         "Stale price",
				body:         model.OrderForm{Cart: model.Cart{Items: []model.CartItem{stale}}, CustomerForm: ValidCustomerForm()},
				expectedCode: model.ErrCodeInvalidParameter,
			},
			{
				name:         "Invalid email",
				body:         model.OrderForm{Cart: model.Cart{Items: []model.CartItem{CartItem(dune, 1)}}, CustomerForm: badEmail},
				expectedCode: model.ErrCodeValidationFailure,
			},
			{
				name:         "Expired card",
				body:         model.OrderForm{Cart: model.Cart{Items: []model.CartItem{CartItem(dune, 1)}}, CustomerForm: expired},
				expectedCode: model.ErrCodeInvalidParameter,
			},
			{
				name:         "Malformed body",
				body:         "not an order",
				expectedCode: model.ErrCodeInvalidJSON,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				w := doRequest(t, server, http.MethodPost, "/api/orders", tt.body)

				assert.Equal(t, http.StatusBadRequest, w.Code)
				var resp model.ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedCode, resp.Error)
				assert.Equal(t, w.Header().Get(middleware.RequestIDHeader), resp.CorrelationID)
			})
		}

		assert.Zero(t, CountRows(t, testDB.Pool, "customer"))
		assert.Zero(t, CountRows(t, testDB.Pool, "customer_order"))
	})

	t.Run("GET /api/orders/{id} for unknown order", func(t *testing.T) {
		w := doRequest(t, server, http.MethodGet, "/api/orders/999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
