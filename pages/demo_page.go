package pages

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"

	"github.com/playwright-community/playwright-go"
	"github.com/samber/lo"
)

// DemoPath is where the shallow routing demo is served.
const DemoPath = "/demo"

// counterSelector matches the first element whose whole text is a number.
const counterSelector = `text=/^\d+$/`

// DemoPage is the Page Object of the shallow routing demo.
type DemoPage struct {
	page   playwright.Page
	expect playwright.PlaywrightAssertions

	counter   playwright.Locator
	increment playwright.Locator
	reset     playwright.Locator
	colors    map[Color]playwright.Locator
	tabs      map[Tab]playwright.Locator
}

// NewDemoPage binds the demo page locators to page. It does not navigate.
func NewDemoPage(page playwright.Page, opts ...Option) *DemoPage {
	options := newPageOptions(opts)

	return &DemoPage{
		page:   page,
		expect: options.assertions(),

		counter:   page.Locator(counterSelector).First(),
		increment: button(page, "+1", false),
		reset:     button(page, "リセット", false),
		colors: lo.SliceToMap(Colors, func(c Color) (Color, playwright.Locator) {
			return c, button(page, c.Label(), true)
		}),
		tabs: lo.SliceToMap(Tabs, func(t Tab) (Tab, playwright.Locator) {
			return t, button(page, t.Label(), false)
		}),
	}
}

// Goto navigates to the demo page. Navigation errors are returned unchanged.
func (d *DemoPage) Goto() error {
	_, err := d.page.Goto(DemoPath)
	return err
}

// IncrementCounter clicks "+1" times times, one click after the other.
func (d *DemoPage) IncrementCounter(times int) error {
	for i := 0; i < times; i++ {
		if err := d.increment.Click(); err != nil {
			return err
		}
	}
	return nil
}

// IncrementOnce clicks "+1" a single time.
func (d *DemoPage) IncrementOnce() error {
	return d.IncrementCounter(1)
}

// ResetCounter clicks "リセット".
func (d *DemoPage) ResetCounter() error {
	return d.reset.Click()
}

// SelectColor clicks the button of color, given as token ("red") or label ("赤").
// Unknown colours return an *InvalidColorError without clicking anything.
func (d *DemoPage) SelectColor(color Color) error {
	c, err := ParseColor(string(color))
	if err != nil {
		return err
	}
	return d.colors[c].Click()
}

// SelectTab clicks the button of tab. Unknown tabs return ErrInvalidTab.
func (d *DemoPage) SelectTab(tab Tab) error {
	if err := validateTab(tab); err != nil {
		return err
	}
	return d.tabs[tab].Click()
}

// CounterValue returns the text of the counter, "0" if it is empty.
func (d *DemoPage) CounterValue() (string, error) {
	text, err := d.counter.TextContent()
	if err != nil {
		return "", err
	}
	if text == "" {
		return "0", nil
	}
	return text, nil
}

// URL returns the current address, including changes made with pushState.
func (d *DemoPage) URL() string {
	return d.page.URL()
}

// Page returns the underlying page, e.g. for browser navigation.
func (d *DemoPage) Page() playwright.Page {
	return d.page
}

// Counter is the locator of the counter value.
func (d *DemoPage) Counter() playwright.Locator {
	return d.counter
}

// ColorButton returns the locator of the button for color, nil for unknown colours.
func (d *DemoPage) ColorButton(color Color) playwright.Locator {
	return d.colors[color]
}

// TabPanelHeading returns the heading shown while tab is active.
func (d *DemoPage) TabPanelHeading(tab Tab) playwright.Locator {
	return d.page.GetByText(tab.Heading(), playwright.PageGetByTextOptions{Exact: playwright.Bool(true)})
}

// ExpectCounter waits until the counter shows n.
func (d *DemoPage) ExpectCounter(n int) error {
	return d.expect.Locator(d.counter).ToHaveText(strconv.Itoa(n))
}

// ExpectURLParam waits until the query of the current address contains key=value.
func (d *DemoPage) ExpectURLParam(key, value string) error {
	return d.expect.Page(d.page).ToHaveURL(urlParamPattern(key, value))
}

// HasURLParam reports whether the current address has key=value in its query.
func (d *DemoPage) HasURLParam(key, value string) (bool, error) {
	u, err := url.Parse(d.page.URL())
	if err != nil {
		return false, fmt.Errorf("parsing page url: %w", err)
	}
	return u.Query().Get(key) == value, nil
}

func urlParamPattern(key, value string) *regexp.Regexp {
	return regexp.MustCompile(`[?&]` + regexp.QuoteMeta(url.QueryEscape(key)) + `=` + regexp.QuoteMeta(url.QueryEscape(value)) + `(&|#|$)`)
}
