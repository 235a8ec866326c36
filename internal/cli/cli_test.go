package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/lenscan/internal/cli"
)

const people = "Name,City\nAnn,Rome\nBo,NYC\nCara,LA\n"

type result struct {
	stdout string
	stderr string
	code   int
}

func run(t *testing.T, cmd *cobra.Command, stdin string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	code := cli.Execute(cmd)
	return result{stdout: out.String(), stderr: errOut.String(), code: code}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// --- lencount ---

func TestCount(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "people.csv", people)
	tests := map[string]struct {
		args []string
		want string
	}{
		"table": {
			args: []string{"-f", path, "-c", "City"},
			want: "length  count\n" +
				"------  -----\n" +
				"     2      1\n" +
				"     3      1\n" +
				"     4      1\n",
		},
		"delimited": {
			args: []string{"-f", path, "-c", "City", "-o", "delimited"},
			want: "length,count\n2,1\n3,1\n4,1\n",
		},
		"plain": {
			args: []string{"-f", path, "-c", "Name", "-o", "plain"},
			want: "length 2: 1\nlength 3: 1\nlength 4: 1\n",
		},
		"yaml": {
			args: []string{"-f", path, "-c", "Name", "-o", "yaml"},
			want: "- length: 2\n  count: 1\n- length: 3\n  count: 1\n- length: 4\n  count: 1\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			res := run(t, cli.NewCountCommand(), "", tt.args...)
			require.Equal(t, 0, res.code, res.stderr)
			assert.Equal(t, tt.want, res.stdout)
			assert.Empty(t, res.stderr)
		})
	}
}

func TestCountStructured(t *testing.T) {
	t.Parallel()
	res := run(t, cli.NewCountCommand(), people, "-c", "City", "-o", "structured")
	require.Equal(t, 0, res.code, res.stderr)
	assert.JSONEq(t, `[
		{"length": 2, "count": 1},
		{"length": 3, "count": 1},
		{"length": 4, "count": 1}
	]`, res.stdout)
}

func TestCountQuotedHeader(t *testing.T) {
	t.Parallel()
	input := "\"Full Name\";Age\n\"Ann Lee\";30\n\"Bo\";41\n"
	res := run(t, cli.NewCountCommand(), input, "-c", "Full Name", "-o", "delimited")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "length,count\n2,1\n7,1\n", res.stdout)
}

func TestCountJSONInput(t *testing.T) {
	t.Parallel()
	input := `[{"City":"Rome"},{"City":"LA"},{"Name":"x"},{"City":null}]`
	res := run(t, cli.NewCountCommand(), input, "-c", "City", "-o", "delimited")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "length,count\n0,2\n2,1\n4,1\n", res.stdout)
}

func TestCountEmptyKeepsHeader(t *testing.T) {
	t.Parallel()
	res := run(t, cli.NewCountCommand(), "Name,City\n", "-c", "City", "-o", "delimited")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "length,count\n", res.stdout)
}

func TestCountStripsBOM(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "bom.csv", "\ufeff"+people)
	res := run(t, cli.NewCountCommand(), "", "-f", path, "-c", "Name", "-o", "delimited")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "length,count\n2,1\n3,1\n4,1\n", res.stdout)
}

func TestCountExplicitSeparatorOverridesDetection(t *testing.T) {
	t.Parallel()
	res := run(t, cli.NewCountCommand(), people, "-c", "City", "-s", ";")
	assert.Equal(t, 1, res.code)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, `error: column not found: "City"`)
}

func TestCountVerboseLogsToStderr(t *testing.T) {
	t.Parallel()
	res := run(t, cli.NewCountCommand(), "Name,City\nAnn,Rome\nshort\n", "-c", "City", "-o", "delimited", "-v")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "length,count\n4,1\n", res.stdout)
	assert.Contains(t, res.stderr, "lencount")
	assert.Contains(t, res.stderr, "parsed delimited input")
	assert.Contains(t, res.stderr, "resolved column")
	assert.Contains(t, res.stderr, "skipping rows without the target column")
}

func TestCountQuietWithoutVerbose(t *testing.T) {
	t.Parallel()
	res := run(t, cli.NewCountCommand(), people, "-c", "City")
	require.Equal(t, 0, res.code)
	assert.Empty(t, res.stderr)
}

// --- lenfilter ---

func TestFilter(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "people.csv", people)
	tests := map[string]struct {
		args []string
		want string
	}{
		"exact table": {
			args: []string{"-f", path, "-c", "City", "-l", "3"},
			want: "line  Name  City\n" +
				"----  ----  ----\n" +
				"3     Bo    NYC\n",
		},
		"exact delimited": {
			args: []string{"-f", path, "-c", "City", "--length", "3", "-o", "delimited"},
			want: "line,Name,City\n3,Bo,NYC\n",
		},
		"range": {
			args: []string{"-f", path, "-c", "City", "--min-length", "3", "--max-length", "4", "-o", "delimited"},
			want: "line,Name,City\n2,Ann,Rome\n3,Bo,NYC\n",
		},
		"min only": {
			args: []string{"-f", path, "-c", "Name", "--min-length", "3", "-o", "plain"},
			want: "line 2: Ann,Rome\nline 4: Cara,LA\n",
		},
		"max only zero": {
			args: []string{"-f", path, "-c", "Name", "--max-length", "0", "-o", "delimited"},
			want: "line,Name,City\n",
		},
		"jsonl": {
			args: []string{"-f", path, "-c", "City", "-l", "2", "-o", "jsonl"},
			want: "{\"line\":4,\"Name\":\"Cara\",\"City\":\"LA\"}\n",
		},
		"markdown": {
			args: []string{"-f", path, "-c", "City", "-l", "2", "-o", "markdown"},
			want: "| line | Name | City |\n" +
				"| ---- | ---- | ---- |\n" +
				"| 4    | Cara | LA   |\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			res := run(t, cli.NewFilterCommand(), "", tt.args...)
			require.Equal(t, 0, res.code, res.stderr)
			assert.Equal(t, tt.want, res.stdout)
		})
	}
}

func TestFilterKeepsInputSeparator(t *testing.T) {
	t.Parallel()
	input := "Name;City\nAnn;Rome\nBo;NYC\n"
	res := run(t, cli.NewFilterCommand(), input, "-c", "City", "-s", ";", "-l", "4", "-o", "delimited")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "line;Name;City\n2;Ann;Rome\n", res.stdout)
}

func TestFilterStructured(t *testing.T) {
	t.Parallel()
	res := run(t, cli.NewFilterCommand(), people, "-c", "City", "-l", "3", "-o", "json")
	require.Equal(t, 0, res.code, res.stderr)
	assert.JSONEq(t, `[{"line": 3, "Name": "Bo", "City": "NYC"}]`, res.stdout)
}

func TestFilterYAML(t *testing.T) {
	t.Parallel()
	res := run(t, cli.NewFilterCommand(), people, "-c", "City", "-l", "3", "-o", "yaml")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "- line: 3\n  Name: Bo\n  City: NYC\n", res.stdout)
}

func TestFilterKeepsCellsPastHeader(t *testing.T) {
	t.Parallel()
	input := "A,B\nx,1\ny,22,extra\n"
	tests := map[string]struct {
		format string
		want   string
	}{
		"table": {
			format: "table",
			want: "line  A  B\n" +
				"----  -  --  -----\n" +
				"2     x  1\n" +
				"3     y  22  extra\n",
		},
		"markdown": {
			format: "markdown",
			want: "| line | A   | B   |       |\n" +
				"| ---- | --- | --- | ----- |\n" +
				"| 2    | x   | 1   |       |\n" +
				"| 3    | y   | 22  | extra |\n",
		},
		"delimited": {
			format: "delimited",
			want:   "line,A,B\n2,x,1\n3,y,22,extra\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			res := run(t, cli.NewFilterCommand(), input, "-c", "A", "--max-length", "5", "-o", tt.format)
			require.Equal(t, 0, res.code, res.stderr)
			assert.Equal(t, tt.want, res.stdout)
		})
	}
}

func TestFilterRejectsJSONInput(t *testing.T) {
	t.Parallel()
	res := run(t, cli.NewFilterCommand(), `[{"City":"LA"}]`, "-c", "City", "-l", "2")
	assert.Equal(t, 1, res.code)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "invalid argument")
}

// --- lenminmax ---

func TestMinMax(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "people.csv", people)
	dupes := writeFile(t, "dupes.csv", "w\nbbb\nLA\nNY\nLA\nxyzw\n")
	tests := map[string]struct {
		args []string
		want string
	}{
		"min default plain": {
			args: []string{"-f", path, "-c", "City"},
			want: "min length: 2\n\"LA\" at line 4\n",
		},
		"max table": {
			args: []string{"-f", path, "-c", "City", "-m", "max", "-o", "table"},
			want: "max length: 4\n" +
				"length  value  lines\n" +
				"------  -----  -----\n" +
				"     4  Rome   2\n",
		},
		"ties": {
			args: []string{"-f", dupes, "-c", "w", "--mode", "min"},
			want: "min length: 2\n\"LA\" at lines 3, 5\n\"NY\" at line 4\n",
		},
		"ties delimited": {
			args: []string{"-f", dupes, "-c", "w", "-o", "delimited"},
			want: "length,value,lines\n2,LA,3 5\n2,NY,4\n",
		},
		"ties structured": {
			args: []string{"-f", dupes, "-c", "w", "-o", "jsonl"},
			want: "{\"length\":2,\"value\":\"LA\",\"lines\":[3,5]}\n{\"length\":2,\"value\":\"NY\",\"lines\":[4]}\n",
		},
		"ties yaml": {
			args: []string{"-f", dupes, "-c", "w", "-o", "yaml"},
			want: "- length: 2\n  value: LA\n  lines: [3, 5]\n- length: 2\n  value: NY\n  lines: [4]\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			res := run(t, cli.NewMinMaxCommand(), "", tt.args...)
			require.Equal(t, 0, res.code, res.stderr)
			assert.Equal(t, tt.want, res.stdout)
		})
	}
}

func TestMinMaxNoValues(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "empty.csv", "Name,City\n")
	res := run(t, cli.NewMinMaxCommand(), "", "-f", path, "-c", "City")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "no values in column \"City\"\n", res.stdout)
}

// --- Errors ---

func TestErrors(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "people.csv", people)
	missing := filepath.Join(t.TempDir(), "missing.csv")
	tests := map[string]struct {
		cmd       func() *cobra.Command
		args      []string
		stdin     string
		wantErr   string
		wantUsage bool
	}{
		"exact with range": {
			cmd:       cli.NewFilterCommand,
			args:      []string{"-f", path, "-c", "City", "--length", "3", "--min-length", "1"},
			wantErr:   "cannot be combined",
			wantUsage: true,
		},
		"no predicate": {
			cmd:       cli.NewFilterCommand,
			args:      []string{"-f", path, "-c", "City"},
			wantErr:   "give an exact length",
			wantUsage: true,
		},
		"min above max": {
			cmd:       cli.NewFilterCommand,
			args:      []string{"-f", path, "-c", "City", "--min-length", "5", "--max-length", "2"},
			wantErr:   "greater than max length",
			wantUsage: true,
		},
		"negative length": {
			cmd:       cli.NewFilterCommand,
			args:      []string{"-f", path, "-c", "City", "--length=-1"},
			wantErr:   "negative",
			wantUsage: true,
		},
		"non-integer length": {
			cmd:       cli.NewFilterCommand,
			args:      []string{"-f", path, "-c", "City", "-l", "abc"},
			wantErr:   "invalid argument",
			wantUsage: true,
		},
		"unknown flag": {
			cmd:       cli.NewCountCommand,
			args:      []string{"-f", path, "-c", "City", "--bogus"},
			wantErr:   "unknown flag",
			wantUsage: true,
		},
		"missing column flag": {
			cmd:       cli.NewCountCommand,
			args:      []string{"-f", path},
			wantErr:   "--column is required",
			wantUsage: true,
		},
		"positional argument": {
			cmd:       cli.NewCountCommand,
			args:      []string{"-c", "City", path},
			wantErr:   "unexpected arguments",
			wantUsage: true,
		},
		"bad separator": {
			cmd:       cli.NewCountCommand,
			args:      []string{"-f", path, "-c", "City", "-s", ",;"},
			wantErr:   "single character",
			wantUsage: true,
		},
		"minmax without file": {
			cmd:       cli.NewMinMaxCommand,
			args:      []string{"-c", "City"},
			wantErr:   "--file is required",
			wantUsage: true,
		},
		"bad mode": {
			cmd:       cli.NewMinMaxCommand,
			args:      []string{"-f", path, "-c", "City", "-m", "median"},
			wantErr:   "want min or max",
			wantUsage: true,
		},
		"column not found": {
			cmd:     cli.NewCountCommand,
			args:    []string{"-f", path, "-c", "Zip"},
			wantErr: `error: column not found: "Zip"`,
		},
		"filter column not found": {
			cmd:     cli.NewFilterCommand,
			args:    []string{"-f", path, "-c", "Zip", "-l", "1"},
			wantErr: "column not found",
		},
		"file not found": {
			cmd:     cli.NewCountCommand,
			args:    []string{"-f", missing, "-c", "City"},
			wantErr: "file not found",
		},
		"minmax file not found": {
			cmd:     cli.NewMinMaxCommand,
			args:    []string{"-f", missing, "-c", "City"},
			wantErr: "file not found",
		},
		"unsupported format": {
			cmd:     cli.NewCountCommand,
			args:    []string{"-f", path, "-c", "City", "-o", "xml"},
			wantErr: "unsupported format",
		},
		"bad border": {
			cmd:     cli.NewCountCommand,
			args:    []string{"-f", path, "-c", "City", "--border", "heavy"},
			wantErr: "unsupported format",
		},
		"minmax column not found": {
			cmd:     cli.NewMinMaxCommand,
			args:    []string{"-f", path, "-c", "Nope"},
			wantErr: "column not found",
		},
		"malformed JSON": {
			cmd:       cli.NewCountCommand,
			args:      []string{"-c", "City"},
			stdin:     `[{"City":`,
			wantErr:   "parse JSON input",
			wantUsage: true,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			res := run(t, tt.cmd(), tt.stdin, tt.args...)
			assert.Equal(t, 1, res.code)
			assert.Empty(t, res.stdout)
			assert.True(t, strings.HasPrefix(res.stderr, "error: "), res.stderr)
			assert.Contains(t, res.stderr, tt.wantErr)
			if tt.wantUsage {
				assert.Contains(t, res.stderr, "Usage:")
			} else {
				assert.NotContains(t, res.stderr, "Usage:")
			}
		})
	}
}

func TestHelp(t *testing.T) {
	t.Parallel()
	for _, newCmd := range []func() *cobra.Command{cli.NewCountCommand, cli.NewFilterCommand, cli.NewMinMaxCommand} {
		cmd := newCmd()
		t.Run(cmd.Name(), func(t *testing.T) {
			t.Parallel()
			res := run(t, cmd, "", "--help")
			assert.Equal(t, 0, res.code)
			assert.Contains(t, res.stdout, "--column")
			assert.Contains(t, res.stdout, "--format")
			assert.Contains(t, res.stdout, "table, delimited, structured")
		})
	}
}
