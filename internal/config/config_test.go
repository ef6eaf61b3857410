package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/textable"
)

func TestParse(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		content string
		want    Config
		wantErr bool
	}{
		"full": {
			content: "format: CSV\noutput: table.tex\ndebug: true\nlog_format: json\n",
			want:    Config{Format: textable.CSV, Output: "table.tex", Debug: true, LogFormat: "json"},
		},
		"empty":          {content: ""},
		"invalid yaml":   {content: "format: [csv", wantErr: true},
		"unknown format": {content: "format: ods", wantErr: true},
		"bad log format": {content: "log_format: xml", wantErr: true},
	}
	for name, tc := range tests {
		name := name
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cfg, err := Parse([]byte(tc.content))
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, *cfg)
		})
	}
}

func TestLoadExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textable.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: xlsx\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, textable.XLSX, cfg.Format)
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "not found")
}

func TestLoadFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textable.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: out.tex\n"), 0o600))
	t.Setenv(EnvPath, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "out.tex", cfg.Output)
}

func TestLoadNothingConfigured(t *testing.T) {
	t.Setenv(EnvPath, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Config{}, *cfg)
}
