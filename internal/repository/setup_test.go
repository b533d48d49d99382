package repository

import (
	"context"
	"testing"
	"time"

	"github.com/willmarsh13/BookstoreDemo/internal/database"
	"github.com/willmarsh13/BookstoreDemo/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB creates a PostgreSQL testcontainer with the bookstore schema and returns a pool.
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	ctx := context.Background()

	// Start PostgreSQL container
	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	require.NoError(t, database.Migrate(ctx, pool, zerolog.Nop()))

	cleanup := func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return pool, cleanup
}

// seedCategories inserts categories with their explicit IDs.
func seedCategories(t *testing.T, pool *pgxpool.Pool, categories []model.Category) {
	ctx := context.Background()
	for _, c := range categories {
		_, err := pool.Exec(ctx, `INSERT INTO category (category_id, name) VALUES ($1, $2)`, c.CategoryID, c.Name)
		require.NoError(t, err)
	}
}

// seedBooks inserts books with their explicit IDs.
func seedBooks(t *testing.T, pool *pgxpool.Pool, books []model.Book) {
	ctx := context.Background()

	query := `
		INSERT INTO book (book_id, title, author, price, is_public, category_id, description, is_featured, rating)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	for _, b := range books {
		_, err := pool.Exec(ctx, query,
			b.BookID, b.Title, b.Author, b.Price, b.IsPublic, b.CategoryID, b.Description, b.IsFeatured, b.Rating)
		require.NoError(t, err)
	}
}

var (
	testCategories = []model.Category{
		{CategoryID: 1, Name: "Classics"},
		{CategoryID: 2, Name: "Science Fiction"},
	}
	testBooks = []model.Book{
		{BookID: 1, Title: "Emma", Author: "Jane Austen", Price: 899, IsPublic: true, CategoryID: 1, Rating: 4.1},
		{BookID: 2, Title: "Persuasion", Author: "Jane Austen", Price: 999, IsPublic: true, CategoryID: 1, IsFeatured: true, Rating: 4.4},
		{BookID: 3, Title: "Dune", Author: "Frank Herbert", Price: 1299, IsPublic: true, CategoryID: 2, IsFeatured: true, Rating: 4.6},
		{BookID: 4, Title: "Hyperion", Author: "Dan Simmons", Price: 1099, IsPublic: false, CategoryID: 2, IsFeatured: true, Rating: 4.5},
	}
)

func seedCatalog(t *testing.T, pool *pgxpool.Pool) {
	seedCategories(t, pool, testCategories)
	seedBooks(t, pool, testBooks)
}
