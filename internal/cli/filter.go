package cli

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/bjaus/lenscan"
	"github.com/bjaus/lenscan/render"
)

type filterFlags struct {
	common
	length    int
	minLength int
	maxLength int
}

// NewFilterCommand builds lenfilter: the rows whose column value has an
// exact length or falls inside a length range.
func NewFilterCommand() *cobra.Command {
	var f filterFlags
	cmd := newCommand(
		"lenfilter",
		"Print the rows whose column value matches a length or length range",
		"  lenfilter -f people.csv -c City -l 3\n  lenfilter -f people.csv -c City --min-length 2 --max-length 4 -o delimited",
		&f.common,
		defaults{separator: ",", format: "table", fileUsage: "input file (default: stdin)"},
		func(cmd *cobra.Command) error { return runFilter(cmd, &f) },
	)
	flags := cmd.Flags()
	flags.IntVarP(&f.length, "length", "l", 0, "exact length to match")
	flags.IntVar(&f.minLength, "min-length", 0, "minimum length, inclusive")
	flags.IntVar(&f.maxLength, "max-length", 0, "maximum length, inclusive")
	return cmd
}

func (f *filterFlags) predicate(cmd *cobra.Command) (lenscan.Predicate, error) {
	var exact, min, max *int
	flags := cmd.Flags()
	if flags.Changed("length") {
		exact = &f.length
	}
	if flags.Changed("min-length") {
		min = &f.minLength
	}
	if flags.Changed("max-length") {
		max = &f.maxLength
	}
	return lenscan.NewPredicate(exact, min, max)
}

func runFilter(cmd *cobra.Command, f *filterFlags) error {
	cfg, err := f.config()
	if err != nil {
		return err
	}
	pred, err := f.predicate(cmd)
	if err != nil {
		return err
	}
	lgr := logr.FromContextOrDiscard(cmd.Context())

	text, err := load(cmd, cfg.file)
	if err != nil {
		return err
	}
	if lenscan.IsJSON(text) {
		return fmt.Errorf("%w: %s reads delimited text only", lenscan.ErrInvalidArgument, cmd.Name())
	}
	t, col, err := openTable(lgr, text, cfg)
	if err != nil {
		return err
	}

	matches := lenscan.Filter(t, col, pred)
	lgr.V(1).Info("filtered rows", "predicate", pred.String(), "matched", len(matches), "rows", len(t.Rows))

	return emit(cmd, cfg, matches,
		render.WithHeader(lenscan.MatchHeader(t.Names())),
		render.WithSeparator(t.Sep),
	)
}
