package browserctx

import (
	"fmt"
	"time"

	"github.com/mstoykov/envconfig"
	"github.com/playwright-community/playwright-go"
)

// Config is the environment configuration of browser runs.
type Config struct {
	// BaseURL of an already running application. Empty starts one in-process.
	BaseURL    string        `envconfig:"E2E_BASE_URL"`
	Headless   bool          `envconfig:"HEADLESS" default:"true"`
	Locale     string        `envconfig:"E2E_LOCALE" default:"ja-JP"`
	TimezoneID string        `envconfig:"E2E_TIMEZONE" default:"Asia/Tokyo"`
	Viewport   string        `envconfig:"E2E_VIEWPORT" default:"1280x720"`
	Timeout    time.Duration `envconfig:"E2E_TIMEOUT" default:"5s"`
	SlowMo     time.Duration `envconfig:"E2E_SLOWMO"`
	// Perf enables the performance measurement suite.
	Perf bool `envconfig:"PERF"`
}

// LoadConfig reads Config from the environment. A lookup function can replace
// os.LookupEnv, e.g. in tests.
func LoadConfig(lookup ...func(key string) (string, bool)) (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg, lookup...); err != nil {
		return Config{}, fmt.Errorf("loading browser config: %w", err)
	}
	if _, err := cfg.Session(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Session returns the context settings of cfg.
func (c Config) Session() (Session, error) {
	viewport, err := ParseViewport(c.Viewport)
	if err != nil {
		return Session{}, err
	}
	return Session{
		Viewport:   viewport,
		Locale:     c.Locale,
		TimezoneID: c.TimezoneID,
	}, nil
}

// LaunchOptions returns the browser launch options of cfg.
func (c Config) LaunchOptions() playwright.BrowserTypeLaunchOptions {
	opts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(c.Headless),
	}
	if c.SlowMo > 0 {
		opts.SlowMo = playwright.Float(float64(c.SlowMo.Milliseconds()))
	}
	return opts
}

// ExpectTimeout is the polling timeout for assertions in milliseconds.
func (c Config) ExpectTimeout() float64 {
	return float64(c.Timeout.Milliseconds())
}
