package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// OutputFormatter writes command results as JSON or text
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer
	Verbose   bool
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// JSON reports whether results should be encoded as JSON
func (f *OutputFormatter) JSON() bool {
	return f.Format == FormatJSON
}

// WriteJSON encodes v with indentation
func (f *OutputFormatter) WriteJSON(v any) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Printf writes text output
func (f *OutputFormatter) Printf(format string, args ...any) {
	fmt.Fprintf(f.Writer, format, args...)
}

// Table starts an aligned text table. Call Flush on the result.
func (f *OutputFormatter) Table() *tabwriter.Writer {
	return tabwriter.NewWriter(f.Writer, 0, 4, 2, ' ', 0)
}

// VerboseLog writes to stderr so JSON output stays clean
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if f.Verbose {
		fmt.Fprintf(f.ErrWriter, format+"\n", args...)
	}
}
