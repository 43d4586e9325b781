package browserctx_test

import (
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hgo124578/sample-project/internal/browserctx"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := browserctx.LoadConfig(lookupFrom(nil))
	require.NoError(t, err)

	assert.Empty(t, cfg.BaseURL)
	assert.True(t, cfg.Headless)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.False(t, cfg.Perf)
	session, err := cfg.Session()
	require.NoError(t, err)
	assert.Equal(t, browserctx.DefaultSession(), session)

	launch := cfg.LaunchOptions()
	assert.True(t, *launch.Headless)
	assert.Nil(t, launch.SlowMo)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	cfg, err := browserctx.LoadConfig(lookupFrom(map[string]string{
		"E2E_BASE_URL": "http://localhost:3000",
		"HEADLESS":     "false",
		"E2E_LOCALE":   "en-US",
		"E2E_TIMEZONE": "Europe/Berlin",
		"E2E_VIEWPORT": "375x667",
		"E2E_TIMEOUT":  "10s",
		"E2E_SLOWMO":   "250ms",
		"PERF":         "true",
	}))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", cfg.BaseURL)
	assert.False(t, cfg.Headless)
	assert.True(t, cfg.Perf)
	assert.Equal(t, float64(10000), cfg.ExpectTimeout())
	session, err := cfg.Session()
	require.NoError(t, err)
	assert.Equal(t, browserctx.Session{
		Viewport:   playwright.Size{Width: 375, Height: 667},
		Locale:     "en-US",
		TimezoneID: "Europe/Berlin",
	}, session)
	assert.Equal(t, float64(250), *cfg.LaunchOptions().SlowMo)
}

func TestLoadConfig_InvalidViewport(t *testing.T) {
	_, err := browserctx.LoadConfig(lookupFrom(map[string]string{"E2E_VIEWPORT": "big"}))

	assert.ErrorIs(t, err, browserctx.ErrInvalidViewport)
}

func TestConfig_Session_InvalidViewport(t *testing.T) {
	cfg := browserctx.Config{Viewport: "bogus", Locale: "ja-JP"}

	_, err := cfg.Session()

	assert.ErrorIs(t, err, browserctx.ErrInvalidViewport)
}
