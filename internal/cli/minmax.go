package cli

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/bjaus/lenscan"
	"github.com/bjaus/lenscan/render"
)

type minMaxFlags struct {
	common
	mode string
}

// NewMinMaxCommand builds lenminmax: the shortest or longest values of a
// column and the lines they occur on.
func NewMinMaxCommand() *cobra.Command {
	var f minMaxFlags
	cmd := newCommand(
		"lenminmax",
		"Report the minimum or maximum value length of a column",
		"  lenminmax -f people.csv -c City\n  lenminmax -f people.csv -c City -m max -o table",
		&f.common,
		defaults{separator: ",", format: "plain", fileUsage: "input file (required)"},
		func(cmd *cobra.Command) error { return runMinMax(cmd, &f) },
	)
	cmd.Flags().StringVarP(&f.mode, "mode", "m", string(lenscan.Min), "min or max")
	return cmd
}

func runMinMax(cmd *cobra.Command, f *minMaxFlags) error {
	if f.file == "" {
		return fmt.Errorf("%w: --file is required", lenscan.ErrInvalidArgument)
	}
	cfg, err := f.config()
	if err != nil {
		return err
	}
	mode, err := lenscan.ParseMode(f.mode)
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

	champ := lenscan.Extreme(t.Values(col), mode)
	values := champ.Values()
	lgr.V(1).Info("found extreme", "mode", string(mode), "length", champ.Length, "values", len(values))

	return emit(cmd, cfg, values, render.WithTitle(champ.Summary(col.Name)))
}
