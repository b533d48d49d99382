package handler

import (
	"net/http"

	"github.com/willmarsh13/BookstoreDemo/internal/service"

	"github.com/rs/zerolog"
)

// CatalogHandler handles category and book HTTP requests.
type CatalogHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(service service.CatalogService, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger.With().Str("handler", "catalog").Logger(),
	}
}

// GetCategories handles GET /api/categories.
func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetCategories(r.Context())
	if err != nil {
		respondError(w, r, err, "failed to retrieve categories", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

// GetCategory handles GET /api/categories/{id}.
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, r, http.StatusBadRequest, invalidParameter("id", "invalid category ID"), h.logger)
		return
	}

	category, err := h.service.GetCategory(r.Context(), id)
	if err != nil {
		respondError(w, r, err, "failed to retrieve category", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, category)
}

// GetBooksByCategory handles GET /api/categories/{id}/books?limit=&offset=.
func (h *CatalogHandler) GetBooksByCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, r, http.StatusBadRequest, invalidParameter("id", "invalid category ID"), h.logger)
		return
	}

	limit, ok := queryInt(r, "limit", 10)
	if !ok {
		writeError(w, r, http.StatusBadRequest, invalidParameter("limit", "invalid limit parameter"), h.logger)
		return
	}

	offset, ok := queryInt(r, "offset", 0)
	if !ok {
		writeError(w, r, http.StatusBadRequest, invalidParameter("offset", "invalid offset parameter"), h.logger)
		return
	}

	books, err := h.service.GetBooksByCategory(r.Context(), id, limit, offset)
	if err != nil {
		respondError(w, r, err, "failed to retrieve books", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, newBookResponses(books))
}

// GetFeaturedBooks handles GET /api/books/featured?limit=.
func (h *CatalogHandler) GetFeaturedBooks(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(r, "limit", 10)
	if !ok {
		writeError(w, r, http.StatusBadRequest, invalidParameter("limit", "invalid limit parameter"), h.logger)
		return
	}

	books, err := h.service.GetFeaturedBooks(r.Context(), limit)
	if err != nil {
		respondError(w, r, err, "failed to retrieve featured books", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, newBookResponses(books))
}

// GetBook handles GET /api/books/{id}.
func (h *CatalogHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, r, http.StatusBadRequest, invalidParameter("id", "invalid book ID"), h.logger)
		return
	}

	book, err := h.service.GetBook(r.Context(), id)
	if err != nil {
		respondError(w, r, err, "failed to retrieve book", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, newBookResponse(*book))
}
