// Package cli implements gardenctl, the operator tool for inspecting and
// maintaining garden saves outside the server.
package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/osse101/HealingGarden_Go/internal/bootstrap"
	"github.com/osse101/HealingGarden_Go/internal/config"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{FormatText, FormatJSON}

// StorageOpener opens the configured save backend
type StorageOpener func(ctx context.Context, cfg *config.Config) (*bootstrap.Storage, error)

// RootOptions holds global flags and the dependencies shared by subcommands
type RootOptions struct {
	Verbose bool
	Format  string

	// Config is loaded from the environment when nil
	Config      *config.Config
	OpenStorage StorageOpener
}

// NewRootCommand creates the gardenctl root command
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{OpenStorage: bootstrap.OpenStorage})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gardenctl",
		Short: "Inspect and maintain Healing Garden saves",
		Long: `gardenctl reads the same configuration as the server (environment and .env)
and works directly on the configured save backend.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.Config != nil {
				return nil
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			opts.Config = cfg
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", FormatText, "output format (json|text)")

	cmd.AddCommand(newCatalogCommand(opts))
	cmd.AddCommand(newListCommand(opts))
	cmd.AddCommand(newInspectCommand(opts))
	cmd.AddCommand(newResetCommand(opts))
	cmd.AddCommand(newImportCommand(opts))
	cmd.AddCommand(newExportCommand(opts))
	cmd.AddCommand(newDBCommand(opts))

	return cmd
}

// withStorage opens the backend for the duration of fn
func (o *RootOptions) withStorage(ctx context.Context, fn func(st *bootstrap.Storage) error) error {
	st, err := o.OpenStorage(ctx, o.Config)
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(st)
}
