package perf

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/gofrs/uuid"
	"github.com/playwright-community/playwright-go"

	"github.com/hgo124578/sample-project/internal/browserctx"
	"github.com/hgo124578/sample-project/pages"
)

// ElementsFunc returns the elements to time on a freshly opened page.
type ElementsFunc func(page playwright.Page) []pages.Element

// PerformancePageElements times the elements of the performance test page.
func PerformancePageElements(itemCount int) ElementsFunc {
	return func(page playwright.Page) []pages.Element {
		p := pages.NewPerformancePage(page)
		if itemCount > 0 {
			p = p.WithItemCount(itemCount)
		}
		return p.Elements()
	}
}

// Measurer runs repeated measurements against a running application.
type Measurer struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	options Options
}

// NewMeasurer creates a measurer. browser is used unless the cache config
// restarts the browser process every round; it may be nil in that case.
func NewMeasurer(pw *playwright.Playwright, browser playwright.Browser, options Options) *Measurer {
	return &Measurer{
		pw:      pw,
		browser: browser,
		options: options.withDefaults(),
	}
}

// MeasureRender loads the performance page once per round and records how long
// every element takes to become visible. An element that does not appear within
// the element timeout is recorded as failed and does not end the round.
func (m *Measurer) MeasureRender(ctx context.Context, elements ElementsFunc) ([]Round, error) {
	logger := m.options.Logger
	logger.InfoContext(ctx, "Starting render measurement", cacheConfigAttrs(m.options.Cache)...)

	var shared *roundSession
	if m.sharesPage() {
		s, err := m.openSession()
		if err != nil {
			return nil, err
		}
		defer s.close()
		shared = s
	}

	var rounds []Round
	for n := 1; n <= m.options.Rounds; n++ {
		if err := ctx.Err(); err != nil {
			return rounds, err
		}

		round, err := m.renderRound(ctx, n, shared, elements)
		if err != nil {
			return rounds, fmt.Errorf("round %d: %w", n, err)
		}
		rounds = append(rounds, round)
	}

	return rounds, nil
}

func (m *Measurer) renderRound(ctx context.Context, n int, shared *roundSession, elements ElementsFunc) (Round, error) {
	s := shared
	if s == nil {
		var err error
		s, err = m.openSession()
		if err != nil {
			return Round{}, err
		}
		defer s.close()
	}

	round := Round{ID: uuid.Must(uuid.NewV4()), Number: n}
	logger := m.options.Logger.With(slog.Int("round", n), slog.String("roundID", round.ID.String()))

	expect := playwright.NewPlaywrightAssertions(float64(m.options.ElementTimeout.Milliseconds()))

	start := time.Now()
	if err := pages.NewPerformancePage(s.page).Goto(); err != nil {
		return round, err
	}

	for _, element := range elements(s.page) {
		sample := Sample{Element: element.Name}
		if err := expect.Locator(element.Locator).ToBeVisible(); err != nil {
			logger.WarnContext(ctx, "Element did not become visible", slog.String("element", element.Name), slog.Any("error", err))
		} else {
			sample.Duration = time.Since(start)
			sample.OK = true
			logger.InfoContext(ctx, "Element visible", slog.String("element", element.Name), slog.Duration("duration", sample.Duration))
		}
		round.Samples = append(round.Samples, sample)
	}

	if slowest, ok := round.Slowest(); ok {
		logger.InfoContext(ctx, "Slowest element", slog.String("element", slowest.Element), slog.Duration("duration", slowest.Duration))
	}

	if shared != nil && n < m.options.Rounds {
		if err := s.blank(); err != nil {
			return round, err
		}
	}

	return round, nil
}

// MeasureTransition opens the home page and times the click through to the
// performance page: until the address changed and until the last list item is visible.
func (m *Measurer) MeasureTransition(ctx context.Context) ([]Transition, error) {
	logger := m.options.Logger
	logger.InfoContext(ctx, "Starting transition measurement", cacheConfigAttrs(m.options.Cache)...)

	var shared *roundSession
	if m.sharesPage() {
		s, err := m.openSession()
		if err != nil {
			return nil, err
		}
		defer s.close()
		shared = s
	}

	var transitions []Transition
	for n := 1; n <= m.options.Rounds; n++ {
		if err := ctx.Err(); err != nil {
			return transitions, err
		}

		transition, err := m.transitionRound(ctx, n, shared)
		if err != nil {
			return transitions, fmt.Errorf("round %d: %w", n, err)
		}
		transitions = append(transitions, transition)
	}

	return transitions, nil
}

func (m *Measurer) transitionRound(ctx context.Context, n int, shared *roundSession) (Transition, error) {
	s := shared
	if s == nil {
		var err error
		s, err = m.openSession()
		if err != nil {
			return Transition{}, err
		}
		defer s.close()
	}

	transition := Transition{ID: uuid.Must(uuid.NewV4()), Number: n}
	expect := playwright.NewPlaywrightAssertions(float64(m.options.ElementTimeout.Milliseconds()))

	home := pages.NewHomePage(s.page)
	if err := home.Goto(); err != nil {
		return transition, err
	}
	if err := expect.Locator(home.Heading()).ToBeVisible(); err != nil {
		return transition, err
	}
	s.page.WaitForTimeout(float64(settlePause.Milliseconds()))

	target := pages.NewPerformancePage(s.page)
	if m.options.ItemCount > 0 {
		target = target.WithItemCount(m.options.ItemCount)
	}

	start := time.Now()
	if err := home.PerformanceLink().Click(); err != nil {
		return transition, err
	}
	if err := expect.Page(s.page).ToHaveURL(urlSuffixPattern(pages.PerformancePath)); err != nil {
		return transition, err
	}
	transition.URLChange = time.Since(start)

	if err := expect.Locator(target.LastListItem()).ToBeVisible(); err != nil {
		return transition, err
	}
	transition.Total = time.Since(start)

	m.options.Logger.InfoContext(ctx, "Transition measured",
		slog.Int("round", n),
		slog.String("roundID", transition.ID.String()),
		slog.Duration("urlChange", transition.URLChange),
		slog.Duration("total", transition.Total),
	)

	if shared != nil && n < m.options.Rounds {
		if err := s.blank(); err != nil {
			return transition, err
		}
	}

	return transition, nil
}

func (m *Measurer) sharesPage() bool {
	return !m.options.Cache.RestartBrowserProcess && !m.options.Cache.UseFreshContext
}

// roundSession is the browser, context and page one round runs in.
type roundSession struct {
	page    playwright.Page
	context playwright.BrowserContext
	// browser is only set if the session launched it.
	browser playwright.Browser
}

func (m *Measurer) openSession() (*roundSession, error) {
	browser := m.browser
	var launched playwright.Browser
	if m.options.Cache.RestartBrowserProcess || browser == nil {
		b, err := m.pw.Chromium.Launch(m.options.LaunchOptions)
		if err != nil {
			return nil, fmt.Errorf("launching browser: %w", err)
		}
		browser, launched = b, b
	}

	contextOptions := browserctx.Merge(m.options.ContextOptions, playwright.BrowserNewContextOptions{
		BaseURL: playwright.String(m.options.BaseURL),
	})
	if m.options.Cache.DisableServiceWorker {
		contextOptions.ServiceWorkers = playwright.ServiceWorkerPolicyBlock
	}

	bctx, err := browser.NewContext(contextOptions)
	if err != nil {
		closeBrowser(launched)
		return nil, fmt.Errorf("creating context: %w", err)
	}
	s := &roundSession{context: bctx, browser: launched}

	s.page, err = bctx.NewPage()
	if err != nil {
		s.close()
		return nil, fmt.Errorf("creating page: %w", err)
	}

	if err := m.setupPage(s); err != nil {
		s.close()
		return nil, err
	}
	return s, nil
}

func (m *Measurer) setupPage(s *roundSession) error {
	if m.options.Cache.DisableHTTPCache {
		cdp, err := s.context.NewCDPSession(s.page)
		if err != nil {
			return fmt.Errorf("opening CDP session: %w", err)
		}
		if _, err := cdp.Send("Network.setCacheDisabled", map[string]interface{}{"cacheDisabled": true}); err != nil {
			return fmt.Errorf("disabling cache: %w", err)
		}
	}

	if m.options.Cache.DisableServiceWorker {
		err := s.context.Route("**/*", func(route playwright.Route) {
			_ = route.Continue()
		})
		if err != nil {
			return fmt.Errorf("routing requests: %w", err)
		}
	}

	return nil
}

// blank resets a reused page before the next round.
func (s *roundSession) blank() error {
	if _, err := s.page.Goto("about:blank"); err != nil {
		return err
	}
	s.page.WaitForTimeout(float64(resetPause.Milliseconds()))
	return nil
}

func (s *roundSession) close() {
	if s.browser != nil {
		closeBrowser(s.browser)
		return
	}
	_ = s.context.Close()
}

func closeBrowser(b playwright.Browser) {
	if b == nil {
		return
	}
	_ = b.Close()
}

func cacheConfigAttrs(c CacheConfig) []any {
	return []any{
		slog.Bool("restartBrowserProcess", c.RestartBrowserProcess),
		slog.Bool("useFreshContext", c.UseFreshContext),
		slog.Bool("disableHTTPCache", c.DisableHTTPCache),
		slog.Bool("disableServiceWorker", c.DisableServiceWorker),
	}
}

// urlSuffixPattern matches addresses whose path is exactly path.
func urlSuffixPattern(path string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(path) + `([?#]|$)`)
}
