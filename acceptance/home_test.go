//go:build acceptance
// +build acceptance

package acceptance

import (
	"regexp"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"

	"github.com/hgo124578/sample-project/pages"
)

func TestHomePage_Displays(t *testing.T) {
	t.Parallel()

	WithHomePage(t, func(t *testing.T, page playwright.Page) {
		home := pages.NewHomePage(page)

		require.NoError(t, expect().Page(page).ToHaveTitle(regexp.MustCompile(`Next\.js`)))
		require.NoError(t, expect().Locator(home.Heading()).ToBeVisible())
		require.NoError(t, expect().Locator(home.Description()).ToBeVisible())
	})
}

func TestHomePage_LinkToAbout(t *testing.T) {
	t.Parallel()

	WithHomePage(t, func(t *testing.T, page playwright.Page) {
		// Act
		about, err := pages.NewHomePage(page).OpenAbout()
		require.NoError(t, err)

		// Assert
		require.NoError(t, expect().Page(page).ToHaveURL(regexp.MustCompile(`/about$`)))
		require.NoError(t, expect().Locator(about.Heading()).ToBeVisible())
	})
}

func TestHomePage_LinkToDemo(t *testing.T) {
	t.Parallel()

	WithHomePage(t, func(t *testing.T, page playwright.Page) {
		// Act
		err := page.GetByRole(*playwright.AriaRoleLink, playwright.PageGetByRoleOptions{
			Name: regexp.MustCompile(`デモページへ`),
		}).Click()
		require.NoError(t, err)

		// Assert
		require.NoError(t, expect().Page(page).ToHaveURL(regexp.MustCompile(`/demo$`)))
		heading := page.GetByRole(*playwright.AriaRoleHeading, playwright.PageGetByRoleOptions{Name: "シャローローティング デモ"})
		require.NoError(t, expect().Locator(heading).ToBeVisible())
	})
}

func TestAboutPage_BackHome(t *testing.T) {
	t.Parallel()

	WithTestFixtures(t, func(t *testing.T, f *TestFixtures) {
		about := pages.NewAboutPage(f.Page)
		require.NoError(t, about.Goto())

		home, err := about.BackHome()
		require.NoError(t, err)

		require.NoError(t, expect().Locator(home.Heading()).ToBeVisible())
	})
}

// TestHomePage_Smoke is the minimal check that the application is up.
func TestHomePage_Smoke(t *testing.T) {
	t.Parallel()

	WithHomePage(t, func(t *testing.T, page playwright.Page) {
		require.NoError(t, expect().Locator(pages.NewHomePage(page).Heading()).ToBeVisible())
	})
}
