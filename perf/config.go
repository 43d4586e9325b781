// Package perf times how long the performance test page takes to render its
// elements, either loaded directly or reached by clicking through from home.
package perf

import (
	"log/slog"
	"time"

	"github.com/playwright-community/playwright-go"
)

// CacheConfig controls how much browser state is thrown away between rounds.
type CacheConfig struct {
	// RestartBrowserProcess launches a new browser for every round.
	RestartBrowserProcess bool
	// UseFreshContext creates a new browser context for every round.
	// Implied by RestartBrowserProcess.
	UseFreshContext bool
	// DisableHTTPCache turns the HTTP cache off through the DevTools protocol.
	DisableHTTPCache bool
	// DisableServiceWorker routes every request through the context so
	// service workers cannot answer from their caches.
	DisableServiceWorker bool
}

func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		RestartBrowserProcess: true,
		UseFreshContext:       true,
		DisableHTTPCache:      true,
		DisableServiceWorker:  true,
	}
}

const (
	DefaultRounds         = 5
	DefaultElementTimeout = 30 * time.Second
	// resetPause is waited after blanking a reused page between rounds.
	resetPause = 500 * time.Millisecond
	// settlePause is waited on the home page before a transition is timed.
	settlePause = 300 * time.Millisecond
)

type Options struct {
	// BaseURL of the application, e.g. "http://localhost:3000".
	BaseURL string
	// Rounds is the number of measurements. Default: DefaultRounds
	Rounds int
	// ElementTimeout is how long to wait for a single element. Default: DefaultElementTimeout
	ElementTimeout time.Duration
	Cache          CacheConfig
	// LaunchOptions are used for browsers started by RestartBrowserProcess.
	LaunchOptions playwright.BrowserTypeLaunchOptions
	// ContextOptions are used for every context; BaseURL is set from Options.BaseURL.
	ContextOptions playwright.BrowserNewContextOptions
	// ItemCount is the length of the large list on the measured page.
	// Default: pages.DefaultPerformanceItemCount
	ItemCount int
	// Logger receives one entry per measured element. Default: slog.Default()
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Rounds <= 0 {
		o.Rounds = DefaultRounds
	}
	if o.ElementTimeout <= 0 {
		o.ElementTimeout = DefaultElementTimeout
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}
