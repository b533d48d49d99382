package service

import (
	"context"
	"fmt"

	"github.com/willmarsh13/BookstoreDemo/internal/model"
	"github.com/willmarsh13/BookstoreDemo/internal/repository"

	"github.com/rs/zerolog"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// catalogService implements CatalogService.
type catalogService struct {
	categoryRepo repository.CategoryRepository
	bookRepo     repository.BookRepository
	logger       zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(
	categoryRepo repository.CategoryRepository,
	bookRepo repository.BookRepository,
	logger zerolog.Logger,
) CatalogService {
	return &catalogService{
		categoryRepo: categoryRepo,
		bookRepo:     bookRepo,
		logger:       logger.With().Str("service", "catalog").Logger(),
	}
}

// GetCategories retrieves every category.
func (s *catalogService) GetCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get categories")
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// GetCategory retrieves a single category by ID.
func (s *catalogService) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("category_id", id).Msg("failed to get category")
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	if category == nil {
		s.logger.Debug().Int64("category_id", id).Msg("category not found")
		return nil, model.NewNotFound("category", id)
	}

	return category, nil
}

// GetBooksByCategory retrieves a page of books in a category.
func (s *catalogService) GetBooksByCategory(ctx context.Context, categoryID int64, limit, offset int) ([]model.Book, error) {
	limit, offset = clampPage(limit, offset)

	if _, err := s.GetCategory(ctx, categoryID); err != nil {
		return nil, err
	}

	books, err := s.bookRepo.GetByCategoryID(ctx, categoryID, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).
			Int64("category_id", categoryID).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to get books by category")
		return nil, fmt.Errorf("failed to get books: %w", err)
	}

	s.logger.Debug().
		Int64("category_id", categoryID).
		Int("count", len(books)).
		Msg("retrieved books by category")

	return books, nil
}

// GetBook retrieves a single book by ID.
func (s *catalogService) GetBook(ctx context.Context, id int64) (*model.Book, error) {
	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("book_id", id).Msg("failed to get book by ID")
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	if book == nil {
		s.logger.Debug().Int64("book_id", id).Msg("book not found")
		return nil, model.NewNotFound("book", id)
	}

	return book, nil
}

// GetFeaturedBooks retrieves featured public books.
func (s *catalogService) GetFeaturedBooks(ctx context.Context, limit int) ([]model.Book, error) {
	limit, _ = clampPage(limit, 0)

	books, err := s.bookRepo.GetFeatured(ctx, limit)
	if err != nil {
		s.logger.Error().Err(err).Int("limit", limit).Msg("failed to get featured books")
		return nil, fmt.Errorf("failed to get featured books: %w", err)
	}
	return books, nil
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
