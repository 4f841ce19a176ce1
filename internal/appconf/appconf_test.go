package appconf

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvFlagToEnvironment(t *testing.T) {
	testCases := []struct {
		flag string
		want Environment
	}{
		{"development", Development},
		{"test", Test},
		{"production", Production},
		{"PROD", Production},
		{"", Development},
		{"staging", Development},
	}

	for _, tc := range testCases {
		t.Run(tc.flag, func(t *testing.T) {
			got := EnvFlagToEnvironment(tc.flag)
			assert.Equal(t, tc.want, got)
		})
	}

	assert.Equal(t, "test", Test.String())
	assert.Equal(t, "production", Production.String())
	assert.Equal(t, "development", Development.String())
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 8050, cfg.Port)
	assert.Equal(t, Development, cfg.Env)
	assert.Equal(t, "spacex_launch_dash.csv", cfg.DataPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "127.0.0.1:8050", cfg.Addr())
}

func TestLoadFromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DASH_HOST", "0.0.0.0")
	t.Setenv("DASH_PORT", "9000")
	t.Setenv("DASH_ENV", "production")
	t.Setenv("DASH_DATA_PATH", "/data/launches.sqlite")
	t.Setenv("DASH_ECHARTS_ASSETS", "/static/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.Addr())
	assert.Equal(t, Production, cfg.Env)
	assert.Equal(t, "/data/launches.sqlite", cfg.DataPath)
	assert.Equal(t, "/static/", cfg.EChartsAsset)
}

func TestLoadRejectsBadValues(t *testing.T) {
	chdir(t, t.TempDir())

	t.Run("non numeric port", func(t *testing.T) {
		t.Setenv("DASH_PORT", "eighty")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("port out of range", func(t *testing.T) {
		t.Setenv("DASH_PORT", "70000")
		_, err := Load()
		assert.ErrorContains(t, err, "invalid port")
	})
}

func TestAddrIPv6(t *testing.T) {
	cfg := Config{Host: "::1", Port: 8050}
	assert.Equal(t, "[::1]:8050", cfg.Addr())
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
