package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/spf13/cobra"

	"github.com/hgo124578/sample-project/internal/browserctx"
	"github.com/hgo124578/sample-project/perf"
)

type measureFlags struct {
	baseURL        string
	rounds         int
	elementTimeout time.Duration
	itemCount      int
	headless       bool
	render         bool
	transition     bool
	cache          perf.CacheConfig
}

const defaultBaseURL = "http://localhost:3000"

func newMeasureCmd() *cobra.Command {
	flags := &measureFlags{cache: perf.DefaultCacheConfig()}

	measureCmd := &cobra.Command{
		Use:   "measure",
		Short: "Measure rendering of the performance test page",
		Long: `Measure rendering of the performance test page.

Every round loads the page and records when each of its sections becomes
visible. The transition measurement clicks through from the home page instead.`,
		Example: `
  # Measure a server started with "sample-project serve".
  sample-project measure --base-url http://localhost:3000

  # Keep the browser running between rounds.
  sample-project measure --restart-browser=false`[1:],
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := browserctx.LoadConfig()
			if err != nil {
				return fmt.Errorf("measure: %w", err)
			}
			flags.resolve(cmd, cfg)
			return runMeasure(cmd, cfg, flags)
		},
	}

	f := measureCmd.Flags()
	f.StringVar(&flags.baseURL, "base-url", defaultBaseURL, "address of the running application (default $E2E_BASE_URL)")
	f.IntVar(&flags.rounds, "rounds", perf.DefaultRounds, "number of measurements")
	f.DurationVar(&flags.elementTimeout, "element-timeout", perf.DefaultElementTimeout, "how long to wait for each element")
	f.IntVar(&flags.itemCount, "items", 0, "number of list items the application renders (0 uses the default)")
	f.BoolVar(&flags.headless, "headless", true, "run the browser without a window (default $HEADLESS)")
	f.BoolVar(&flags.render, "render", true, "measure loading the performance page")
	f.BoolVar(&flags.transition, "transition", true, "measure the transition from the home page")
	f.BoolVar(&flags.cache.RestartBrowserProcess, "restart-browser", flags.cache.RestartBrowserProcess, "launch a new browser every round")
	f.BoolVar(&flags.cache.UseFreshContext, "fresh-context", flags.cache.UseFreshContext, "use a new browser context every round")
	f.BoolVar(&flags.cache.DisableHTTPCache, "disable-http-cache", flags.cache.DisableHTTPCache, "disable the HTTP cache")
	f.BoolVar(&flags.cache.DisableServiceWorker, "disable-service-worker", flags.cache.DisableServiceWorker, "block service workers")

	return measureCmd
}

// resolve fills flags not given on the command line from the environment.
func (f *measureFlags) resolve(cmd *cobra.Command, cfg browserctx.Config) {
	if !cmd.Flags().Changed("base-url") && cfg.BaseURL != "" {
		f.baseURL = cfg.BaseURL
	}
	if !cmd.Flags().Changed("headless") {
		f.headless = cfg.Headless
	}
}

func runMeasure(cmd *cobra.Command, cfg browserctx.Config, flags *measureFlags) error {
	ctx := cmd.Context()
	logger := slog.Default()

	session, err := cfg.Session()
	if err != nil {
		return err
	}

	pw, err := playwright.Run()
	if err != nil {
		return fmt.Errorf("starting playwright: %w", err)
	}
	defer func() { _ = pw.Stop() }()

	cfg.Headless = flags.headless
	launchOptions := cfg.LaunchOptions()

	var browser playwright.Browser
	if !flags.cache.RestartBrowserProcess {
		browser, err = pw.Chromium.Launch(launchOptions)
		if err != nil {
			return fmt.Errorf("launching browser: %w", err)
		}
		defer func() { _ = browser.Close() }()
	}

	measurer := perf.NewMeasurer(pw, browser, perf.Options{
		BaseURL:        flags.baseURL,
		Rounds:         flags.rounds,
		ElementTimeout: flags.elementTimeout,
		Cache:          flags.cache,
		LaunchOptions:  launchOptions,
		ContextOptions: browserctx.Merge(browserctx.Defaults(), session.Options()),
		ItemCount:      flags.itemCount,
		Logger:         logger,
	})

	report := perf.Report{Cache: flags.cache}

	if flags.render {
		rounds, err := measurer.MeasureRender(ctx, perf.PerformancePageElements(flags.itemCount))
		if err != nil {
			return fmt.Errorf("measuring render: %w", err)
		}
		summary := perf.Summarize(rounds)
		report.Render = &summary
	}

	if flags.transition {
		transitions, err := measurer.MeasureTransition(ctx)
		if err != nil {
			return fmt.Errorf("measuring transition: %w", err)
		}
		summary := perf.SummarizeTransitions(transitions)
		report.Transition = &summary
	}

	return report.Write(cmd.OutOrStdout())
}
