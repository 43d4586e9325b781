package pages_test

import (
	"fmt"
	"sync"

	"github.com/playwright-community/playwright-go"
)

// fakePage implements the parts of playwright.Page the page objects use.
// Calling anything else panics on the nil embedded interface.
type fakePage struct {
	playwright.Page

	mu      sync.Mutex
	url     string
	gotos   []string
	waits   []any
	clicks  []string
	texts   map[string]string
	failing map[string]error
	gotoErr error
}

func newFakePage() *fakePage {
	return &fakePage{
		url:     "about:blank",
		texts:   map[string]string{},
		failing: map[string]error{},
	}
}

func (p *fakePage) locator(key string) *fakeLocator {
	return &fakeLocator{page: p, key: key}
}

func (p *fakePage) Locator(selector string, options ...playwright.PageLocatorOptions) playwright.Locator {
	return p.locator(selector)
}

func (p *fakePage) GetByRole(role playwright.AriaRole, options ...playwright.PageGetByRoleOptions) playwright.Locator {
	key := string(role)
	if len(options) > 0 {
		key += ":" + fmt.Sprint(options[0].Name)
		if options[0].Exact != nil && *options[0].Exact {
			key += ":exact"
		}
	}
	return p.locator(key)
}

func (p *fakePage) GetByText(text any, options ...playwright.PageGetByTextOptions) playwright.Locator {
	return p.locator("text:" + fmt.Sprint(text))
}

func (p *fakePage) Goto(url string, options ...playwright.PageGotoOptions) (playwright.Response, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gotos = append(p.gotos, url)
	if p.gotoErr != nil {
		return nil, p.gotoErr
	}
	p.url = "http://localhost:3000" + url
	return nil, nil
}

func (p *fakePage) URL() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.url
}

func (p *fakePage) WaitForURL(url any, options ...playwright.PageWaitForURLOptions) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.waits = append(p.waits, url)
	return nil
}

func (p *fakePage) clicked() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.clicks...)
}

// pwLocator avoids a field named Locator, which would hide the Locator method.
type pwLocator = playwright.Locator

type fakeLocator struct {
	pwLocator

	page *fakePage
	key  string
}

func (l *fakeLocator) First() playwright.Locator {
	return l.page.locator(l.key + ":first")
}

func (l *fakeLocator) Nth(index int) playwright.Locator {
	return l.page.locator(fmt.Sprintf("%s:nth(%d)", l.key, index))
}

func (l *fakeLocator) Click(options ...playwright.LocatorClickOptions) error {
	l.page.mu.Lock()
	defer l.page.mu.Unlock()
	if err := l.page.failing[l.key]; err != nil {
		return err
	}
	l.page.clicks = append(l.page.clicks, l.key)
	return nil
}

func (l *fakeLocator) TextContent(options ...playwright.LocatorTextContentOptions) (string, error) {
	l.page.mu.Lock()
	defer l.page.mu.Unlock()
	if err := l.page.failing[l.key]; err != nil {
		return "", err
	}
	return l.page.texts[l.key], nil
}
