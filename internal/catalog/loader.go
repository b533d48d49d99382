package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/willmarsh13/BookstoreDemo/internal/config"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for gzipped catalogue files on local disk.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalogue loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads and validates a gzipped catalogue file.
func (l *fileLoader) Load(ctx context.Context, path string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.logger.Info().Str("file", path).Msg("loading catalog file")

	file, err := os.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open catalog file")
		return nil, fmt.Errorf("failed to open catalog file %s: %w", path, err)
	}
	defer file.Close()

	doc, err := Decode(file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to read catalog file")
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	l.logger.Info().
		Str("file", path).
		Int("categories", len(doc.Categories)).
		Int("books", len(doc.Books)).
		Msg("catalog file loaded successfully")

	return doc, nil
}

// NewLoader returns an S3 loader with local fallback when S3 is enabled, and a
// file loader otherwise.
func NewLoader(ctx context.Context, cfg config.S3Config, logger zerolog.Logger) Loader {
	fileLoader := NewFileLoader(logger)
	if !cfg.Enabled {
		logger.Info().Msg("using local file system for catalog files (S3 disabled)")
		return fileLoader
	}

	s3Loader, err := NewS3Loader(ctx, cfg.Bucket, cfg.Region, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 loader, falling back to local file system only")
		return fileLoader
	}

	return NewFallbackLoader(s3Loader, fileLoader, cfg.Prefix, true, logger)
}
