package cmd

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/textable"
)

type result struct {
	stdout, stderr string
	err            error
}

func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })
	t.Setenv("TEXTABLE_CONFIG", "")

	var stdout, stderr bytes.Buffer
	app := &App{
		Stdin:   strings.NewReader(stdin),
		Stdout:  &stdout,
		Stderr:  &stderr,
		Version: "test",
	}
	err := app.Execute(context.Background(), args)
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestConvertCSVToStdout(t *testing.T) {
	path := writeFile(t, "scores.csv", "name;score\nAna;10\nBeto;0\n")

	res := run(t, "", "convert", path)

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, `\textbf{name} & \textbf{score} \\`)
	assert.Contains(t, res.stdout, "Ana & 10 \\\\\nBeto & -- \\\\\n")
}

func TestConvertToOutputFile(t *testing.T) {
	path := writeFile(t, "data.txt", "a;b\n1;2\n")
	dest := filepath.Join(t.TempDir(), "table.tex")

	res := run(t, "", "convert", "--format", "csv", "--output", dest, path)

	require.NoError(t, res.err)
	assert.Empty(t, res.stdout)
	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(got), `\begin{tabular}{cc}`)
	assert.Contains(t, res.stderr, "wrote table")
}

func TestConvertStdinJSONWarns(t *testing.T) {
	res := run(t, `[{"a": "x%y"}]`, "convert", "-")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "x\\%y \\\\")
	assert.Contains(t, res.stderr, "experimental")
}

func TestConvertStdinRejectsCSV(t *testing.T) {
	res := run(t, "a;b\n", "convert", "--format", "csv", "-")

	require.ErrorIs(t, res.err, textable.ErrConfiguration)
	assert.Equal(t, ExitUser, ExitCode(res.err))
}

func TestConvertUsesConfigFormat(t *testing.T) {
	path := writeFile(t, "noext", "a;b\n1;2\n")
	cfg := writeFile(t, "textable.yaml", "format: csv\n")

	res := run(t, "", "--config", cfg, "convert", path)

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, `\textbf{a} & \textbf{b} \\`)
}

func TestConvertErrors(t *testing.T) {
	tests := map[string]struct {
		args     func(t *testing.T) []string
		wantErr  error
		wantCode int
	}{
		"unknown format flag": {
			args:     func(t *testing.T) []string { return []string{"convert", "--format", "ods", "x.ods"} },
			wantErr:  textable.ErrUnsupportedFormat,
			wantCode: ExitUser,
		},
		"unknown extension": {
			args:     func(t *testing.T) []string { return []string{"convert", "table.ods"} },
			wantErr:  textable.ErrUnsupportedFormat,
			wantCode: ExitUser,
		},
		"missing file": {
			args: func(t *testing.T) []string {
				return []string{"convert", filepath.Join(t.TempDir(), "missing.csv")}
			},
			wantErr:  textable.ErrSourceRead,
			wantCode: ExitSource,
		},
		"nested json": {
			args: func(t *testing.T) []string {
				return []string{"convert", writeFile(t, "nested.json", `[{"a": {"b": 1}}]`)}
			},
			wantErr:  textable.ErrSourceRead,
			wantCode: ExitSource,
		},
	}
	for name, tc := range tests {
		name := name
		tc := tc
		t.Run(name, func(t *testing.T) {
			res := run(t, "", tc.args(t)...)
			require.ErrorIs(t, res.err, tc.wantErr)
			assert.Equal(t, tc.wantCode, ExitCode(res.err))
			assert.Contains(t, res.stderr, "Error:")
			assert.Empty(t, res.stdout)
		})
	}
}

func TestPreview(t *testing.T) {
	path := writeFile(t, "scores.csv", "name;score\nAna;10\nBeto;0\n")

	res := run(t, "", "preview", "--border", "ascii", path)

	require.NoError(t, res.err)
	want := "" +
		"+------+-------+\n" +
		"| name | score |\n" +
		"+------+-------+\n" +
		"| Ana  | 10    |\n" +
		"| Beto | --    |\n" +
		"+------+-------+\n"
	assert.Equal(t, want, res.stdout)
}

func TestPreviewBadBorder(t *testing.T) {
	path := writeFile(t, "scores.csv", "name\nAna\n")

	res := run(t, "", "preview", "--border", "double", path)

	assert.ErrorContains(t, res.err, "unknown border style")
	assert.Equal(t, ExitSystem, ExitCode(res.err))
}

func TestFormats(t *testing.T) {
	res := run(t, "", "formats")

	require.NoError(t, res.err)
	assert.Equal(t, "json\ncsv\nxlsx\n", res.stdout)
}

func TestDebugLogging(t *testing.T) {
	path := writeFile(t, "scores.csv", "name\nAna\n")

	res := run(t, "", "--debug", "--log-json", "preview", path)

	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, `"msg":"loaded table"`)
}

func TestExitCode(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		err  error
		want int
	}{
		"nil":         {err: nil, want: ExitOK},
		"canceled":    {err: context.Canceled, want: ExitCanceled},
		"config":      {err: textable.ErrConfiguration, want: ExitUser},
		"unsupported": {err: textable.ErrUnsupportedFormat, want: ExitUser},
		"source":      {err: textable.ErrSourceRead, want: ExitSource},
		"structural":  {err: textable.ErrStructural, want: ExitStructural},
		"other":       {err: errors.New("boom"), want: ExitSystem},
	}
	for name, tc := range tests {
		name := name
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ExitCode(tc.err))
		})
	}
}
