package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/keilerkonzept/countmin"
	"github.com/keilerkonzept/countmin/internal/config"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
sketch:
  rows: 4
  columns: 5000
  hash: metro
  saturate: true
trace:
  flows: 1000
  exponent: 1.5
output:
  path: /tmp/out.json.gz
  gzip: true
`)
	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, 4, cfg.Sketch.Rows)
	require.Equal(t, 5000, cfg.Sketch.Columns)
	require.Equal(t, uint64(countmin.DefaultSeed), cfg.Sketch.Seed)
	require.True(t, cfg.Sketch.Saturate)
	require.Equal(t, 1000, cfg.Trace.Flows)
	require.Equal(t, uint32(10000), cfg.Trace.MaxSize)
	require.Equal(t, 1.5, cfg.Trace.Exponent)
	require.True(t, cfg.Output.Gzip)
	require.Equal(t, 10, cfg.Output.Top)

	family, err := cfg.HashFamily()
	require.NoError(t, err)
	require.IsType(t, countmin.MetroHash{}, family)

	opts, err := cfg.SketchOptions()
	require.NoError(t, err)
	require.Len(t, opts, 3)
}

func TestLoadConfig_Invalid(t *testing.T) {
	for name, body := range map[string]string{
		"zero rows":    "sketch:\n  rows: 0\n",
		"bad hash":     "sketch:\n  hash: md5\n",
		"bad exponent": "trace:\n  exponent: 0.5\n",
		"negative top": "output:\n  top: -1\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := config.LoadConfig(writeConfig(t, body))
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = config.LoadConfig(writeConfig(t, "sketch: [unterminated"))
	require.Error(t, err)
}

func TestDefault(t *testing.T) {
	require.NoError(t, config.Default().Validate())
}
