package cli

import (
	"iter"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/bjaus/lenscan"
)

// NewCountCommand builds lencount: how many values of each length a column
// holds. It accepts delimited text or a JSON array of records.
func NewCountCommand() *cobra.Command {
	var c common
	return newCommand(
		"lencount",
		"Count the values of a column grouped by character length",
		"  lencount -f people.csv -c City\n  cat people.json | lencount -c City -o structured",
		&c,
		defaults{separator: "auto", format: "table", fileUsage: "input file (default: stdin)"},
		func(cmd *cobra.Command) error { return runCount(cmd, &c) },
	)
}

func runCount(cmd *cobra.Command, c *common) error {
	cfg, err := c.config()
	if err != nil {
		return err
	}
	lgr := logr.FromContextOrDiscard(cmd.Context())

	text, err := load(cmd, cfg.file)
	if err != nil {
		return err
	}

	var values iter.Seq2[int, string]
	if lenscan.IsJSON(text) {
		recs, err := lenscan.ParseRecords(text)
		if err != nil {
			return err
		}
		lgr.V(1).Info("parsed JSON input", "records", len(recs))
		values = recs.Values(cfg.column)
	} else {
		t, col, err := openTable(lgr, text, cfg)
		if err != nil {
			return err
		}
		values = t.Values(col)
	}

	return emit(cmd, cfg, lenscan.CountByLength(values))
}
