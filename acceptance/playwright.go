//go:build acceptance
// +build acceptance

package acceptance

import (
	"fmt"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"

	"github.com/hgo124578/sample-project/internal/browserctx"
)

// PlaywrightSession is the Playwright driver and browser shared by all tests
// of a run, together with the context options every test context starts from.
type PlaywrightSession struct {
	PW      *playwright.Playwright
	Browser playwright.Browser
	Config  browserctx.Config

	contextOptions playwright.BrowserNewContextOptions
}

// NewPlaywrightSession starts Playwright and launches Chromium.
// Set HEADLESS=false to run with a visible browser for debugging.
func NewPlaywrightSession(cfg browserctx.Config) (*PlaywrightSession, error) {
	session, err := cfg.Session()
	if err != nil {
		return nil, err
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("starting playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(cfg.LaunchOptions())
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	return &PlaywrightSession{
		PW:      pw,
		Browser: browser,
		Config:  cfg,

		contextOptions: browserctx.Merge(browserctx.Defaults(), session.Options()),
	}, nil
}

// ContextOptions returns the session options with baseURL set. Each call
// returns a copy, so callers cannot change the options of other tests.
func (ps *PlaywrightSession) ContextOptions(baseURL string) playwright.BrowserNewContextOptions {
	return browserctx.Merge(ps.contextOptions, playwright.BrowserNewContextOptions{
		BaseURL: playwright.String(baseURL),
	})
}

// NewContext creates a browser context with isolated cookies and storage.
// It is closed when the test finishes.
func (ps *PlaywrightSession) NewContext(t *testing.T, baseURL string) playwright.BrowserContext {
	t.Helper()

	ctx, err := ps.Browser.NewContext(ps.ContextOptions(baseURL))
	require.NoError(t, err, "failed to create browser context")
	t.Cleanup(func() { _ = ctx.Close() })

	ctx.SetDefaultTimeout(ps.Config.ExpectTimeout())

	return ctx
}

// NewPage opens a page in ctx. It is closed before ctx.
func (ps *PlaywrightSession) NewPage(t *testing.T, ctx playwright.BrowserContext) playwright.Page {
	t.Helper()

	page, err := ctx.NewPage()
	require.NoError(t, err, "failed to create page")
	t.Cleanup(func() { _ = page.Close() })

	return page
}

// Close releases all Playwright resources.
func (ps *PlaywrightSession) Close() {
	_ = ps.Browser.Close()
	_ = ps.PW.Stop()
}
