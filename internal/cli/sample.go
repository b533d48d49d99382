package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/willmarsh13/BookstoreDemo/internal/catalog"

	"github.com/spf13/cobra"
)

func newSampleCatalogCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "sample-catalog [path]",
		Short: "Write the built-in sample catalog as a gzipped JSON file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Join("data", "catalog.json.gz")
			if len(args) > 0 {
				path = args[0]
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("creating directory: %w", err)
			}

			file, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("creating %s: %w", path, err)
			}
			defer file.Close()

			doc := catalog.SampleDocument()
			if err := catalog.Encode(file, doc); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d categories and %d books to %s\n", len(doc.Categories), len(doc.Books), path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
