// Package cli implements bookstorectl, the operator tool for the bookstore
// database and catalogue.
package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/willmarsh13/BookstoreDemo/internal/config"
	"github.com/willmarsh13/BookstoreDemo/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

type rootOptions struct {
	dsn     string
	envFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "bookstorectl",
		Short:         "Manage the bookstore database and catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.dsn, "dsn", "", "PostgreSQL connection string (overrides DB_* settings)")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file to load before reading configuration")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newMigrateCmd(opts))
	cmd.AddCommand(newPingCmd(opts))
	cmd.AddCommand(newSeedCmd(opts))
	cmd.AddCommand(newSampleCatalogCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show bookstorectl version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "bookstorectl %s (%s)\n", version, commit)
			return nil
		},
	}
}

// load reads the dotenv file and configuration. Logs go to the command's
// stderr so stdout stays clean for results.
func (o *rootOptions) load(cmd *cobra.Command) (*config.Config, zerolog.Logger, error) {
	if err := godotenv.Load(o.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, zerolog.Nop(), fmt.Errorf("loading %s: %w", o.envFile, err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	return cfg, config.NewLoggerTo(cfg.Logger, cmd.ErrOrStderr()), nil
}

func (o *rootOptions) openPool(cmd *cobra.Command, cfg *config.Config, logger zerolog.Logger) (*pgxpool.Pool, error) {
	connString := o.dsn
	if connString == "" {
		connString = cfg.Database.ConnectionString()
	}

	pool, err := database.NewPoolFromConnString(cmd.Context(), connString, cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return pool, nil
}
