package router

import (
	"context"
	"net/http"
	"time"

	"github.com/willmarsh13/BookstoreDemo/internal/handler"
	"github.com/willmarsh13/BookstoreDemo/internal/middleware"

	"github.com/rs/zerolog"
)

// Pinger reports whether the database is reachable. *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// New creates a new HTTP router with all routes and middleware configured.
func New(
	catalogHandler *handler.CatalogHandler,
	orderHandler *handler.OrderHandler,
	db Pinger,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", health(db, logger))

	mux.HandleFunc("GET /api/categories", catalogHandler.GetCategories)
	mux.HandleFunc("GET /api/categories/{id}", catalogHandler.GetCategory)
	mux.HandleFunc("GET /api/categories/{id}/books", catalogHandler.GetBooksByCategory)
	mux.HandleFunc("GET /api/books/featured", catalogHandler.GetFeaturedBooks)
	mux.HandleFunc("GET /api/books/{id}", catalogHandler.GetBook)

	mux.HandleFunc("POST /api/orders", orderHandler.PlaceOrder)
	mux.HandleFunc("GET /api/orders/{id}", orderHandler.GetByID)

	// Apply middleware in order: Recovery -> Logging -> CORS -> RequestID
	var h http.Handler = mux
	h = middleware.RequestID(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}

func health(db Pinger, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				logger.Warn().Err(err).Msg("health check failed")
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte(`{"status": "unhealthy"}`))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	}
}
