package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// unsetAfter removes keys a .env file wrote into the process environment.
func unsetAfter(t *testing.T, keys ...string) {
	t.Cleanup(func() {
		for _, k := range keys {
			_ = os.Unsetenv(Prefix + k)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv(Prefix+"ROWS", "12")
	t.Setenv(Prefix+"COLS", "30")
	t.Setenv(Prefix+"REVEAL_THRESHOLD", "1.5")
	t.Setenv(Prefix+"SEED", "77")
	t.Setenv(Prefix+"GIN_MODE", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.Equal(t, 12, cfg.Rows)
	require.Equal(t, 30, cfg.Cols)
	require.Equal(t, 1.5, cfg.RevealThreshold)
	require.Equal(t, int64(77), cfg.Seed)
	require.Equal(t, "debug", cfg.GinMode)
	require.Equal(t, 50, cfg.MaxCoverage)
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(
		"PATHVIZ_MAX_COVERAGE=80\nPATHVIZ_HTTP_ADDR=127.0.0.1:9000\nPATHVIZ_LOG_LEVEL=debug\n",
	), 0o600))
	unsetAfter(t, "MAX_COVERAGE", "HTTP_ADDR", "LOG_LEVEL")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 80, cfg.MaxCoverage)
	require.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvironmentWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PATHVIZ_TPS=30\n"), 0o600))
	t.Setenv(Prefix+"TPS", "60")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 60, cfg.TPS)
}

func TestLoad_ParseErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")

	t.Run("int", func(t *testing.T) {
		t.Setenv(Prefix+"ROWS", "ten")
		_, err := Load(missing)
		require.ErrorIs(t, err, ErrInvalid)
	})
	t.Run("float", func(t *testing.T) {
		t.Setenv(Prefix+"GRID_GAP", "wide")
		_, err := Load(missing)
		require.ErrorIs(t, err, ErrInvalid)
	})
	t.Run("range", func(t *testing.T) {
		t.Setenv(Prefix+"MAX_COVERAGE", "101")
		_, err := Load(missing)
		require.ErrorIs(t, err, ErrInvalid)
	})
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"single cell":  func(c *Config) { c.Rows, c.Cols = 1, 1 },
		"zero rows":    func(c *Config) { c.Rows = 0 },
		"threshold":    func(c *Config) { c.RevealThreshold = 0 },
		"coverage low": func(c *Config) { c.MaxCoverage = 0 },
		"window":       func(c *Config) { c.WindowHeight = -1 },
		"negative gap": func(c *Config) { c.GridGap = -1 },
		"tps":          func(c *Config) { c.TPS = 0 },
		"api cells":    func(c *Config) { c.MaxAPICells = 1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}
