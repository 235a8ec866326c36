// Package cli builds the lencount, lenfilter and lenminmax commands. The
// three share one flag vocabulary and one error convention: a single
// "error: ..." line on stderr, the usage text for argument errors, and exit
// status 1.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/spf13/cobra"

	"github.com/bjaus/lenscan"
	"github.com/bjaus/lenscan/render"
)

// Execute runs cmd and returns the process exit code.
func Execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	stderr := cmd.ErrOrStderr()
	fmt.Fprintf(stderr, "error: %v\n", err)
	if errors.Is(err, lenscan.ErrInvalidArgument) {
		fmt.Fprint(stderr, cmd.UsageString())
	}
	return 1
}

// common holds the flags every command takes.
type common struct {
	file      string
	column    string
	separator string
	format    string
	border    string
	verbose   bool
}

// config is common after validation.
type config struct {
	file   string
	column string
	sep    rune // 0 detects from the header
	format render.Format
	border render.BorderStyle
}

func (c *common) config() (config, error) {
	if c.column == "" {
		return config{}, fmt.Errorf("%w: --column is required", lenscan.ErrInvalidArgument)
	}
	sep, err := lenscan.ParseSeparator(c.separator)
	if err != nil {
		return config{}, err
	}
	format, err := render.ParseFormat(c.format)
	if err != nil {
		return config{}, err
	}
	border, err := render.ParseBorder(c.border)
	if err != nil {
		return config{}, err
	}
	return config{
		file:   c.file,
		column: c.column,
		sep:    sep,
		format: format,
		border: border,
	}, nil
}

// defaults are the per-command flag defaults.
type defaults struct {
	separator string
	format    string
	fileUsage string
}

func newCommand(use, short, example string, c *common, d defaults, run func(*cobra.Command) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		Example:       example,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unexpected arguments %q", lenscan.ErrInvalidArgument, args)
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lgr := newLogger(cmd.ErrOrStderr(), c.verbose).WithName(cmd.Name())
			cmd.SetContext(logr.NewContext(cmd.Context(), lgr))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", lenscan.ErrInvalidArgument, err)
	})

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.StringVarP(&c.file, "file", "f", "", d.fileUsage)
	flags.StringVarP(&c.column, "column", "c", "", "name of the target column (required)")
	flags.StringVarP(&c.separator, "separator", "s", d.separator, "field separator: one character, tab, or auto")
	flags.StringVarP(&c.format, "format", "o", d.format, "output format: "+formatList())
	flags.StringVar(&c.border, "border", "none", "table border: none, ascii or rounded")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "log processing details to stderr")
	return cmd
}

func formatList() string {
	fs := render.Formats()
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = f.String()
	}
	return strings.Join(names, ", ")
}

// newLogger writes key/value log lines to w. Only V(1) messages are
// emitted, and only when verbose is set.
func newLogger(w io.Writer, verbose bool) logr.Logger {
	verbosity := 0
	if verbose {
		verbosity = 1
	}
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(w, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(w, args)
	}, funcr.Options{Verbosity: verbosity})
}

// load reads the input file, or stdin when path is empty.
func load(cmd *cobra.Command, path string) (string, error) {
	if path == "" {
		return lenscan.Read(cmd.InOrStdin())
	}
	return lenscan.ReadFile(path)
}

// openTable parses delimited text and resolves the target column.
func openTable(lgr logr.Logger, text string, cfg config) (*lenscan.Table, lenscan.Column, error) {
	t := lenscan.ParseTable(text, cfg.sep)
	lgr.V(1).Info("parsed delimited input",
		"separator", lenscan.SeparatorName(t.Sep),
		"detected", cfg.sep == 0,
		"columns", len(t.Header),
		"rows", len(t.Rows))
	col, err := lenscan.ResolveColumn(t.Header, cfg.column)
	if err != nil {
		return nil, lenscan.Column{}, err
	}
	lgr.V(1).Info("resolved column", "column", col.Name, "index", col.Index)
	if n := t.Short(col); n > 0 {
		lgr.V(1).Info("skipping rows without the target column", "rows", n)
	}
	return t, col, nil
}

// emit renders items in full before writing, so a render error leaves
// stdout untouched.
func emit[T any](cmd *cobra.Command, cfg config, items []T, opts ...render.Option) error {
	opts = append(opts, render.WithBorder(cfg.border))
	b, err := render.Marshal(cfg.format, items, opts...)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(b)
	return err
}
