package integration

import (
	"context"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/willmarsh13/BookstoreDemo/internal/catalog"
	"github.com/willmarsh13/BookstoreDemo/internal/config"
	"github.com/willmarsh13/BookstoreDemo/internal/database"
	"github.com/willmarsh13/BookstoreDemo/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Sample catalogue ids used throughout the integration tests.
const (
	scienceFictionID int64 = 1004
	duneID           int64 = 1008
	timeMachineID    int64 = 1010
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB starts PostgreSQL, applies the schema and seeds the sample catalogue.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	dbConfig := config.DatabaseConfig{
		MaxConnections:  10,
		MinConnections:  2,
		MaxConnLifetime: 300,
	}

	logger := zerolog.Nop()
	pool, err := database.NewPoolFromConnString(ctx, connStr, dbConfig, logger)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	if err := database.Migrate(ctx, pool, logger); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	if _, err := catalog.NewSeeder(pool, logger).Seed(ctx, catalog.SampleDocument()); err != nil {
		t.Fatalf("failed to seed catalog: %v", err)
	}

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// CleanupOrders removes every customer, order and line item.
func CleanupOrders(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		"TRUNCATE order_line_item, customer_order, customer RESTART IDENTITY CASCADE")
	if err != nil {
		t.Fatalf("failed to clean order tables: %v", err)
	}
}

// CountRows returns the number of rows in table.
func CountRows(t *testing.T, pool *pgxpool.Pool, table string) int {
	t.Helper()

	var n int
	if err := pool.QueryRow(context.Background(), fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&n); err != nil {
		t.Fatalf("failed to count %s: %v", table, err)
	}
	return n
}

// ValidCustomerForm returns a form that passes validation, with a card expiring in two years.
func ValidCustomerForm() model.CustomerForm {
	return model.CustomerForm{
		Name:          "Jane Reader",
		Address:       "123 Main Street, Springfield",
		Phone:         "555-234-5678",
		Email:         "jane@example.com",
		CCNumber:      "4111 1111 1111 1111",
		CCExpiryMonth: "6",
		CCExpiryYear:  strconv.Itoa(time.Now().Year() + 2),
	}
}

// CartItem builds a cart entry whose form copy matches the stored book.
func CartItem(book model.Book, quantity int) model.CartItem {
	return model.CartItem{
		BookID:   book.BookID,
		Quantity: quantity,
		BookForm: model.BookForm{BookID: book.BookID, Price: book.Price, CategoryID: book.CategoryID},
	}
}
