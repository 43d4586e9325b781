package pages

import "github.com/playwright-community/playwright-go"

const (
	AboutPath    = "/about"
	AboutHeading = "アバウトページ"
)

type AboutPage struct {
	page    playwright.Page
	options []Option

	heading  playwright.Locator
	homeLink playwright.Locator
}

func NewAboutPage(page playwright.Page, opts ...Option) *AboutPage {
	return &AboutPage{
		page:    page,
		options: opts,

		heading:  heading(page, AboutHeading),
		homeLink: link(page, "← ホームに戻る"),
	}
}

func (a *AboutPage) Goto() error {
	_, err := a.page.Goto(AboutPath)
	return err
}

func (a *AboutPage) Heading() playwright.Locator {
	return a.heading
}

// BackHome follows the link back to the home page.
func (a *AboutPage) BackHome() (*HomePage, error) {
	if err := a.homeLink.Click(); err != nil {
		return nil, err
	}
	if err := a.page.WaitForURL("**" + HomePath); err != nil {
		return nil, err
	}
	return NewHomePage(a.page, a.options...), nil
}
