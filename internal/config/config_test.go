package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"layout-inspector/internal/render"
	"layout-inspector/primitive"
)

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("model", "", "")
	fs.String("arch", "", "")
	fs.StringP("output", "o", "", "")
	fs.BoolP("verbose", "v", false, "")
	fs.String("log-level", "", "")
	fs.Bool("exported-only", false, "")

	return fs
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "layout-inspector.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "lp64", cfg.Model)
	assert.Equal(t, DefaultArch, cfg.Arch)
	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.ExportedOnly)
	assert.Empty(t, cfg.FileUsed)
	assert.Equal(t, primitive.LP64, cfg.DataModel())
	assert.Equal(t, render.ModeText, cfg.Mode())
}

func TestLoad_Precedence(t *testing.T) {
	t.Chdir(t.TempDir())

	path := writeConfig(t, "model: ilp32\noutput: table\nlog_level: info\narch: arm64\n")

	t.Setenv("LAYOUT_OUTPUT", "json")
	t.Setenv("LAYOUT_LOG_LEVEL", "debug")

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--log-level", "error", "--exported-only"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.FileUsed)

	// file
	assert.Equal(t, "ilp32", cfg.Model)
	assert.Equal(t, "arm64", cfg.Arch)

	// env beats file
	assert.Equal(t, "json", cfg.Output)

	// flag beats env
	assert.Equal(t, "error", cfg.LogLevel)
	assert.True(t, cfg.ExportedOnly)
	assert.Equal(t, render.ModeJSON, cfg.Mode())
}

func TestLoad_UnchangedFlagsDoNotOverride(t *testing.T) {
	t.Chdir(t.TempDir())

	path := writeConfig(t, "model: llp64\n")

	flags := newFlags()
	require.NoError(t, flags.Parse(nil))

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "llp64", cfg.Model)
}

func TestLoad_DefaultFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte("verbose: true\n"), 0o644))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, DefaultFile, cfg.FileUsed)
}

func TestLoad_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "model", content: "model: lp128\n", want: "lp128"},
		{name: "output", content: "output: html\n", want: "html"},
		{name: "arch", content: "arch: z80\n", want: "z80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content), nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}
