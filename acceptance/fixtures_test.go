//go:build acceptance
// +build acceptance

package acceptance

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"

	"github.com/hgo124578/sample-project/pages"
)

// TestFixtures bundles all commonly needed test fixtures.
type TestFixtures struct {
	App     *TestApp
	Session *PlaywrightSession
	Ctx     playwright.BrowserContext
	Page    playwright.Page
}

// WithTestFixtures creates an application, a browser context and a page, registers
// cleanup with t.Cleanup() and calls the test function. The page is not navigated.
// Cleanup runs in reverse order: page, context, application.
func WithTestFixtures(t *testing.T, fn func(t *testing.T, f *TestFixtures)) {
	t.Helper()

	app := NewTestApp(t, session.Config.BaseURL)
	t.Cleanup(func() { app.Close() })

	ctx := session.NewContext(t, app.URL)
	page := session.NewPage(t, ctx)

	fn(t, &TestFixtures{
		App:     app,
		Session: session,
		Ctx:     ctx,
		Page:    page,
	})
}

// WithHomePage provides a page navigated to the home page.
func WithHomePage(t *testing.T, fn func(t *testing.T, page playwright.Page)) {
	t.Helper()

	WithTestFixtures(t, func(t *testing.T, f *TestFixtures) {
		_, err := f.Page.Goto(pages.HomePath)
		require.NoError(t, err)

		fn(t, f.Page)
	})
}

// WithDemoPage provides a page navigated to the demo page.
func WithDemoPage(t *testing.T, fn func(t *testing.T, page playwright.Page)) {
	t.Helper()

	WithTestFixtures(t, func(t *testing.T, f *TestFixtures) {
		_, err := f.Page.Goto(pages.DemoPath)
		require.NoError(t, err)

		fn(t, f.Page)
	})
}

// WithDemoPageObject provides the demo Page Object, already navigated.
func WithDemoPageObject(t *testing.T, fn func(t *testing.T, demo *pages.DemoPage)) {
	t.Helper()

	WithTestFixtures(t, func(t *testing.T, f *TestFixtures) {
		demo := newDemoPage(f.Page)
		require.NoError(t, demo.Goto())

		fn(t, demo)
	})
}

func newDemoPage(page playwright.Page) *pages.DemoPage {
	return pages.NewDemoPage(page, pages.WithExpectTimeout(session.Config.ExpectTimeout()))
}

// expect returns assertions polling for the configured timeout.
func expect() playwright.PlaywrightAssertions {
	return playwright.NewPlaywrightAssertions(session.Config.ExpectTimeout())
}
