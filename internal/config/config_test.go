package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("format", "text", "")
	fs.Bool("words", false, "")
	fs.Int("max-attributes", 20, "")
	fs.Duration("timeout", 0, "")
	fs.String("log.level", "warn", "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	c, err := Load(newFlags(), "")
	require.NoError(t, err)
	assert.Equal(t, "text", c.Format)
	assert.False(t, c.Words)
	assert.Equal(t, 20, c.MaxAttributes)
	assert.Equal(t, time.Duration(0), c.Timeout)
	assert.Equal(t, "warn", c.Log.Level)
	assert.Equal(t, "text", c.Log.Format)
}

func TestLoad_FilePrecedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
format: table
words: true
max-attributes: 12
timeout: 5s
log:
  level: debug
  format: json
`), 0o600))

	fs := newFlags()
	c, err := Load(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "table", c.Format)
	assert.True(t, c.Words)
	assert.Equal(t, 12, c.MaxAttributes)
	assert.Equal(t, 5*time.Second, c.Timeout)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "json", c.Log.Format)

	// flags set on the command line win over the file
	fs = newFlags()
	require.NoError(t, fs.Parse([]string{"--format", "json", "--max-attributes", "3"}))
	c, err = Load(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "json", c.Format)
	assert.Equal(t, 3, c.MaxAttributes)
	assert.True(t, c.Words)
}

func TestLoad_CurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ckminer.yaml"), []byte("format: yaml\n"), 0o600))

	c, err := Load(newFlags(), "")
	require.NoError(t, err)
	assert.Equal(t, "yaml", c.Format)
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CKMINER_FORMAT", "table")
	t.Setenv("CKMINER_MAX_ATTRIBUTES", "7")
	t.Setenv("CKMINER_LOG_LEVEL", "error")

	c, err := Load(newFlags(), "")
	require.NoError(t, err)
	assert.Equal(t, "table", c.Format)
	assert.Equal(t, 7, c.MaxAttributes)
	assert.Equal(t, "error", c.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, err := Load(newFlags(), filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err, "an explicit config file must exist")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("format: csv\n"), 0o600))
	_, err = Load(newFlags(), bad)
	assert.ErrorContains(t, err, "unknown format")

	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--max-attributes", "-1"}))
	_, err = Load(fs, "")
	assert.ErrorContains(t, err, "max-attributes")
}
