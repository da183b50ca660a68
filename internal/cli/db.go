package cli

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/spf13/cobra"

	"github.com/osse101/HealingGarden_Go/internal/bootstrap"
	"github.com/osse101/HealingGarden_Go/internal/config"
	"github.com/osse101/HealingGarden_Go/internal/persistence"
)

// SchemaOutput is the JSON form of the db commands
type SchemaOutput struct {
	Backend string `json:"backend"`
	Version int64  `json:"version"`
}

func newDBCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Manage the save database (sqlite and postgres backends)",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply pending save-table migrations and print the schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Opening a database backend migrates it
			return printSchema(opts, cmd)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "create",
		Short: "Create the postgres database if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Config.SaveBackend != persistence.BackendPostgres {
				return fmt.Errorf("db create needs SAVE_BACKEND=postgres, have %q", opts.Config.SaveBackend)
			}
			created, err := createDatabase(cmd.Context(), opts.Config)
			if err != nil {
				return err
			}
			out := newFormatter(opts, cmd)
			if created {
				out.Printf("Database %s created\n", opts.Config.DBName)
			} else {
				out.Printf("Database %s already exists\n", opts.Config.DBName)
			}
			return nil
		},
	})
	return cmd
}

func printSchema(opts *RootOptions, cmd *cobra.Command) error {
	out := newFormatter(opts, cmd)
	return opts.withStorage(cmd.Context(), func(st *bootstrap.Storage) error {
		v, err := st.SchemaVersion(cmd.Context())
		if err != nil {
			return err
		}
		if out.JSON() {
			return out.WriteJSON(SchemaOutput{Backend: st.Store.Name(), Version: v})
		}
		out.Printf("%s schema at version %d\n", st.Store.Name(), v)
		return nil
	})
}

// createDatabase connects to the server's maintenance database and creates
// the configured one. It reports whether the database was created.
func createDatabase(ctx context.Context, cfg *config.Config) (bool, error) {
	admin := *cfg
	admin.DBName = "postgres"

	conn, err := pgx.Connect(ctx, admin.GetDBConnString())
	if err != nil {
		return false, fmt.Errorf("unable to connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check if database exists: %w", err)
	}
	if exists {
		return false, nil
	}

	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
		return false, fmt.Errorf("failed to create database: %w", err)
	}
	return true, nil
}
