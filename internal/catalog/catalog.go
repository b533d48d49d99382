// Package catalog reads the gzipped JSON catalogue of categories and books and
// seeds it into the database.
package catalog

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/willmarsh13/BookstoreDemo/internal/model"
)

// Loader defines the interface for loading catalogue files.
type Loader interface {
	// Load reads a gzipped catalogue file and returns its decoded document.
	Load(ctx context.Context, path string) (*Document, error)
}

// Document is the on-disk catalogue. Prices are dollar amounts such as "12.99".
type Document struct {
	Categories []CategoryEntry `json:"categories"`
	Books      []BookEntry     `json:"books"`
}

// CategoryEntry is one category in a catalogue document.
type CategoryEntry struct {
	CategoryID int64  `json:"categoryId"`
	Name       string `json:"name"`
}

// BookEntry is one book in a catalogue document.
type BookEntry struct {
	BookID      int64           `json:"bookId"`
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	Price       decimal.Decimal `json:"price"`
	IsPublic    bool            `json:"isPublic"`
	CategoryID  int64           `json:"categoryId"`
	Description string          `json:"description,omitempty"`
	IsFeatured  bool            `json:"isFeatured"`
	Rating      float32         `json:"rating"`
}

const (
	maxNameLength  = 45
	maxTitleLength = 60
	maxRating      = 5
)

var hundred = decimal.NewFromInt(100)

// Decode reads a gzipped JSON document from r and validates it.
func Decode(r io.Reader) (*Document, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzipReader.Close()

	var doc Document
	decoder := json.NewDecoder(gzipReader)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Encode writes doc to w as gzipped JSON.
func Encode(w io.Writer, doc *Document) error {
	gzipWriter := gzip.NewWriter(w)

	encoder := json.NewEncoder(gzipWriter)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		gzipWriter.Close()
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	if err := gzipWriter.Close(); err != nil {
		return fmt.Errorf("failed to flush gzip writer: %w", err)
	}
	return nil
}

// Validate checks ids, references, lengths and money amounts.
func (d *Document) Validate() error {
	categoryIDs := make(map[int64]struct{}, len(d.Categories))
	for _, c := range d.Categories {
		if c.CategoryID <= 0 {
			return fmt.Errorf("category %q: id must be positive", c.Name)
		}
		if _, dup := categoryIDs[c.CategoryID]; dup {
			return fmt.Errorf("category %d: duplicate id", c.CategoryID)
		}
		if c.Name == "" || len(c.Name) > maxNameLength {
			return fmt.Errorf("category %d: name must be 1 to %d characters", c.CategoryID, maxNameLength)
		}
		categoryIDs[c.CategoryID] = struct{}{}
	}

	bookIDs := make(map[int64]struct{}, len(d.Books))
	for _, b := range d.Books {
		if b.BookID <= 0 {
			return fmt.Errorf("book %q: id must be positive", b.Title)
		}
		if _, dup := bookIDs[b.BookID]; dup {
			return fmt.Errorf("book %d: duplicate id", b.BookID)
		}
		if b.Title == "" || len(b.Title) > maxTitleLength {
			return fmt.Errorf("book %d: title must be 1 to %d characters", b.BookID, maxTitleLength)
		}
		if b.Author == "" || len(b.Author) > maxTitleLength {
			return fmt.Errorf("book %d: author must be 1 to %d characters", b.BookID, maxTitleLength)
		}
		if _, ok := categoryIDs[b.CategoryID]; !ok {
			return fmt.Errorf("book %d: unknown category %d", b.BookID, b.CategoryID)
		}
		if b.Price.IsNegative() {
			return fmt.Errorf("book %d: price must not be negative", b.BookID)
		}
		if !b.Price.Equal(b.Price.Round(2)) {
			return fmt.Errorf("book %d: price %s has more than two decimal places", b.BookID, b.Price)
		}
		if b.Rating < 0 || b.Rating > maxRating {
			return fmt.Errorf("book %d: rating must be between 0 and %d", b.BookID, maxRating)
		}
		bookIDs[b.BookID] = struct{}{}
	}

	return nil
}

// ModelCategories converts the document's categories.
func (d *Document) ModelCategories() []model.Category {
	categories := make([]model.Category, len(d.Categories))
	for i, c := range d.Categories {
		categories[i] = model.Category{CategoryID: c.CategoryID, Name: c.Name}
	}
	return categories
}

// ModelBooks converts the document's books, with prices in cents.
func (d *Document) ModelBooks() []model.Book {
	books := make([]model.Book, len(d.Books))
	for i, b := range d.Books {
		books[i] = model.Book{
			BookID:      b.BookID,
			Title:       b.Title,
			Author:      b.Author,
			Price:       ToCents(b.Price),
			IsPublic:    b.IsPublic,
			CategoryID:  b.CategoryID,
			Description: b.Description,
			IsFeatured:  b.IsFeatured,
			Rating:      b.Rating,
		}
	}
	return books
}

// ToCents converts a dollar amount to whole cents, rounding half away from zero.
func ToCents(dollars decimal.Decimal) int64 {
	return dollars.Mul(hundred).Round(0).IntPart()
}

// FromCents converts whole cents to a dollar amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
