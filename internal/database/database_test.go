package database

import (
	"context"
	"testing"
	"time"

	"github.com/willmarsh13/BookstoreDemo/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var testPoolConfig = config.DatabaseConfig{
	MaxConnections:  4,
	MinConnections:  1,
	MaxConnLifetime: 60,
}

func TestNewPoolFromConnString_InvalidConnString(t *testing.T) {
	pool, err := NewPoolFromConnString(context.Background(), "not a dsn ://", testPoolConfig, zerolog.Nop())

	require.Error(t, err)
	assert.Nil(t, pool)
	assert.Contains(t, err.Error(), "failed to parse database config")
}

func TestNewPool_Unreachable(t *testing.T) {
	cfg := testPoolConfig
	cfg.Host = "127.0.0.1"
	cfg.Port = 1
	cfg.User = "postgres"
	cfg.Database = "bookstore"

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := NewPool(ctx, cfg, zerolog.Nop())

	require.Error(t, err)
	assert.Nil(t, pool)
}

func TestMigrate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	ctx := context.Background()

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
	t.Cleanup(func() { _ = pgContainer.Terminate(ctx) })

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := NewPoolFromConnString(ctx, connStr, testPoolConfig, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, Migrate(ctx, pool, zerolog.Nop()))
	require.NoError(t, Migrate(ctx, pool, zerolog.Nop()), "migrating twice must be a no-op")

	var tables []string
	rows, err := pool.Query(ctx, `
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = 'public'
		ORDER BY table_name`)
	require.NoError(t, err)
	defer rows.Close()
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		tables = append(tables, name)
	}
	require.NoError(t, rows.Err())

	assert.Equal(t, []string{"book", "category", "customer", "customer_order", "order_line_item"}, tables)

	_, err = pool.Exec(ctx, `INSERT INTO category (name) VALUES ('Poetry')`)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `INSERT INTO book (title, author, price, category_id) VALUES ('Odes', 'Keats', -1, 1)`)
	assert.Error(t, err, "negative prices are rejected")
}
