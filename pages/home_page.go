package pages

import (
	"github.com/playwright-community/playwright-go"
)

const (
	HomePath = "/"

	HomeHeading     = "Hello World!"
	HomeDescription = "Next.js v15 基礎学習用プロジェクトへようこそ"
)

// HomePage is the Page Object of the landing page.
type HomePage struct {
	page    playwright.Page
	options []Option

	heading         playwright.Locator
	description     playwright.Locator
	aboutLink       playwright.Locator
	demoLink        playwright.Locator
	performanceLink playwright.Locator
}

func NewHomePage(page playwright.Page, opts ...Option) *HomePage {
	return &HomePage{
		page:    page,
		options: opts,

		heading:         heading(page, HomeHeading),
		description:     page.GetByText(HomeDescription),
		aboutLink:       link(page, "アバウトページへ →"),
		demoLink:        link(page, "デモページへ（シャローローティング）→"),
		performanceLink: link(page, "パフォーマンステスト"),
	}
}

func (h *HomePage) Goto() error {
	_, err := h.page.Goto(HomePath)
	return err
}

func (h *HomePage) Heading() playwright.Locator {
	return h.heading
}

func (h *HomePage) Description() playwright.Locator {
	return h.description
}

// OpenAbout follows the link to the about page and waits for its address.
func (h *HomePage) OpenAbout() (*AboutPage, error) {
	if err := h.follow(h.aboutLink, "**"+AboutPath); err != nil {
		return nil, err
	}
	return NewAboutPage(h.page, h.options...), nil
}

// OpenDemo follows the link to the demo page and waits for its address.
func (h *HomePage) OpenDemo() (*DemoPage, error) {
	if err := h.follow(h.demoLink, "**"+DemoPath); err != nil {
		return nil, err
	}
	return NewDemoPage(h.page, h.options...), nil
}

func (h *HomePage) OpenPerformanceTest() (*PerformancePage, error) {
	if err := h.follow(h.performanceLink, "**"+PerformancePath); err != nil {
		return nil, err
	}
	return NewPerformancePage(h.page), nil
}

// PerformanceLink is the link timed by transition measurements.
func (h *HomePage) PerformanceLink() playwright.Locator {
	return h.performanceLink
}

func (h *HomePage) follow(link playwright.Locator, urlPattern string) error {
	if err := link.Click(); err != nil {
		return err
	}
	return h.page.WaitForURL(urlPattern)
}
