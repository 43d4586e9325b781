// Package browserctx builds the options used to open browser contexts for the
// suites and the performance measurement.
package browserctx

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/playwright-community/playwright-go"
)

const (
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 720
	DefaultLocale         = "ja-JP"
	DefaultTimezoneID     = "Asia/Tokyo"
)

// ErrInvalidViewport is returned by ParseViewport for malformed sizes.
var ErrInvalidViewport = errors.New("invalid viewport")

// Session holds the context settings shared by every test of a run.
type Session struct {
	Viewport   playwright.Size
	Locale     string
	TimezoneID string
}

// DefaultSession returns the settings the suites run with unless configured otherwise.
func DefaultSession() Session {
	return Session{
		Viewport:   playwright.Size{Width: DefaultViewportWidth, Height: DefaultViewportHeight},
		Locale:     DefaultLocale,
		TimezoneID: DefaultTimezoneID,
	}
}

// Options converts the session settings into context options.
// Empty values are left unset so they do not override anything on Merge.
func (s Session) Options() playwright.BrowserNewContextOptions {
	var opts playwright.BrowserNewContextOptions
	if s.Viewport.Width > 0 && s.Viewport.Height > 0 {
		opts.Viewport = &playwright.Size{Width: s.Viewport.Width, Height: s.Viewport.Height}
	}
	if s.Locale != "" {
		opts.Locale = playwright.String(s.Locale)
	}
	if s.TimezoneID != "" {
		opts.TimezoneId = playwright.String(s.TimezoneID)
	}
	return opts
}

// Defaults are the context options every context starts from.
func Defaults() playwright.BrowserNewContextOptions {
	return playwright.BrowserNewContextOptions{
		Viewport:          &playwright.Size{Width: DefaultViewportWidth, Height: DefaultViewportHeight},
		JavaScriptEnabled: playwright.Bool(true),
		ColorScheme:       playwright.ColorSchemeLight,
	}
}

// Merge returns base with every option that is set in override replacing the
// value in base. Options unset in override keep the base value.
func Merge(base, override playwright.BrowserNewContextOptions) playwright.BrowserNewContextOptions {
	merged := base

	if override.BaseURL != nil {
		merged.BaseURL = override.BaseURL
	}
	if override.Viewport != nil {
		merged.Viewport = override.Viewport
	}
	if override.NoViewport != nil {
		merged.NoViewport = override.NoViewport
	}
	if override.Locale != nil {
		merged.Locale = override.Locale
	}
	if override.TimezoneId != nil {
		merged.TimezoneId = override.TimezoneId
	}
	if override.UserAgent != nil {
		merged.UserAgent = override.UserAgent
	}
	if override.ColorScheme != nil {
		merged.ColorScheme = override.ColorScheme
	}
	if override.JavaScriptEnabled != nil {
		merged.JavaScriptEnabled = override.JavaScriptEnabled
	}
	if override.IgnoreHttpsErrors != nil {
		merged.IgnoreHttpsErrors = override.IgnoreHttpsErrors
	}
	if override.ServiceWorkers != nil {
		merged.ServiceWorkers = override.ServiceWorkers
	}
	if override.ExtraHttpHeaders != nil {
		merged.ExtraHttpHeaders = override.ExtraHttpHeaders
	}

	return merged
}

// ParseViewport parses a size written as WIDTHxHEIGHT, e.g. "1280x720".
func ParseViewport(s string) (playwright.Size, error) {
	width, height, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return playwright.Size{}, fmt.Errorf("%w: %q, expected WIDTHxHEIGHT", ErrInvalidViewport, s)
	}

	w, err := strconv.Atoi(width)
	if err != nil || w <= 0 {
		return playwright.Size{}, fmt.Errorf("%w: width in %q", ErrInvalidViewport, s)
	}
	h, err := strconv.Atoi(height)
	if err != nil || h <= 0 {
		return playwright.Size{}, fmt.Errorf("%w: height in %q", ErrInvalidViewport, s)
	}

	return playwright.Size{Width: w, Height: h}, nil
}
