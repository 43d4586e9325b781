// Package pages contains Page Objects for the sample application. Each page
// object binds its locators once and exposes the actions a test performs.
package pages

import "github.com/playwright-community/playwright-go"

// DefaultExpectTimeout is the polling timeout of Expect* helpers in milliseconds.
const DefaultExpectTimeout = 5000

type pageOptions struct {
	expectTimeout float64
}

// Option configures a page object.
type Option func(*pageOptions)

// WithExpectTimeout sets the polling timeout in milliseconds for Expect* helpers.
func WithExpectTimeout(timeout float64) Option {
	return func(o *pageOptions) {
		o.expectTimeout = timeout
	}
}

func newPageOptions(opts []Option) pageOptions {
	o := pageOptions{expectTimeout: DefaultExpectTimeout}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o pageOptions) assertions() playwright.PlaywrightAssertions {
	return playwright.NewPlaywrightAssertions(o.expectTimeout)
}

func button(page playwright.Page, name string, exact bool) playwright.Locator {
	options := playwright.PageGetByRoleOptions{Name: name}
	if exact {
		options.Exact = playwright.Bool(true)
	}
	return page.GetByRole(*playwright.AriaRoleButton, options)
}

func heading(page playwright.Page, name any) playwright.Locator {
	return page.GetByRole(*playwright.AriaRoleHeading, playwright.PageGetByRoleOptions{Name: name})
}

func link(page playwright.Page, name string) playwright.Locator {
	return page.GetByRole(*playwright.AriaRoleLink, playwright.PageGetByRoleOptions{Name: name})
}
