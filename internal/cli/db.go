package cli

import (
	"fmt"

	"github.com/willmarsh13/BookstoreDemo/internal/catalog"
	"github.com/willmarsh13/BookstoreDemo/internal/database"

	"github.com/spf13/cobra"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the bookstore tables if they do not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load(cmd)
			if err != nil {
				return err
			}
			pool, err := opts.openPool(cmd, cfg, logger)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := database.Migrate(cmd.Context(), pool, logger); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
			return nil
		},
	}
}

func newPingCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check the database connection",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load(cmd)
			if err != nil {
				return err
			}
			pool, err := opts.openPool(cmd, cfg, logger)
			if err != nil {
				return err
			}
			defer pool.Close()

			var dbName string
			if err := pool.QueryRow(cmd.Context(), "SELECT current_database()").Scan(&dbName); err != nil {
				return fmt.Errorf("query failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "connected to database %s\n", dbName)
			return nil
		},
	}
}

func newSeedCmd(opts *rootOptions) *cobra.Command {
	var (
		file    string
		sample  bool
		migrate bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a catalog file into the category and book tables",
		Long: "Upsert categories and books from a gzipped JSON catalog. The file is read from S3 " +
			"when S3_ENABLED is set, falling back to the local path.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if sample && file != "" {
				return fmt.Errorf("--sample and --file are mutually exclusive")
			}

			cfg, logger, err := opts.load(cmd)
			if err != nil {
				return err
			}

			var doc *catalog.Document
			if sample {
				doc = catalog.SampleDocument()
			} else {
				if file == "" {
					file = cfg.Catalog.SeedFile
				}
				doc, err = catalog.NewLoader(cmd.Context(), cfg.S3, logger).Load(cmd.Context(), file)
				if err != nil {
					return err
				}
			}

			pool, err := opts.openPool(cmd, cfg, logger)
			if err != nil {
				return err
			}
			defer pool.Close()

			if migrate {
				if err := database.Migrate(cmd.Context(), pool, logger); err != nil {
					return err
				}
			}

			result, err := catalog.NewSeeder(pool, logger).Seed(cmd.Context(), doc)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d categories and %d books\n", result.Categories, result.Books)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "catalog file (defaults to CATALOG_SEED_FILE)")
	cmd.Flags().BoolVar(&sample, "sample", false, "seed the built-in sample catalog")
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply the schema before seeding")
	return cmd
}
