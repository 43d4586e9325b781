//go:build acceptance
// +build acceptance

package acceptance

import (
	"log/slog"
	"net/http/httptest"
	"testing"

	sampleproject "github.com/hgo124578/sample-project"
	"github.com/hgo124578/sample-project/requestlog"
)

// TestApp is the application a test drives: either served in-process for the
// test or an external server configured with E2E_BASE_URL.
type TestApp struct {
	URL string

	// Server and Instance are nil for an external application.
	Server   *httptest.Server
	Instance *sampleproject.Instance
}

// NewTestApp starts the sample application on a random port unless baseURL is set.
func NewTestApp(t *testing.T, baseURL string) *TestApp {
	t.Helper()

	if baseURL != "" {
		return &TestApp{URL: baseURL}
	}

	instance := sampleproject.NewWithOptions(sampleproject.Options{
		RequestLogCapacity: 100,
		Logger:             slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{Level: slog.LevelDebug})),
	})
	server := httptest.NewServer(instance.Handler())

	return &TestApp{
		URL:      server.URL,
		Server:   server,
		Instance: instance,
	}
}

// RequestLog returns the log of served requests, nil for an external application.
func (ta *TestApp) RequestLog() *requestlog.Log {
	if ta.Instance == nil {
		return nil
	}
	return ta.Instance.RequestLog()
}

// Close shuts down the test application and releases resources.
func (ta *TestApp) Close() {
	if ta.Server != nil {
		ta.Server.Close()
	}
	if ta.Instance != nil {
		ta.Instance.Close()
	}
}

// testWriter sends log output to t.Log so it only shows for failed or verbose tests.
type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}
