package sampleproject_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sampleproject "github.com/hgo124578/sample-project"
	"github.com/hgo124578/sample-project/demoapp"
)

func TestInstance_RecordsRequests(t *testing.T) {
	instance := sampleproject.NewWithOptions(sampleproject.Options{
		RequestLogCapacity: 10,
		HandlerOptions:     []demoapp.HandlerOption{demoapp.WithItemCount(5)},
	})
	defer instance.Close()

	server := httptest.NewServer(instance.Handler())
	defer server.Close()

	client := server.Client()
	for _, path := range []string{"/", "/demo?color=red", "/static/demo.js", "/nope"} {
		req, err := http.NewRequest(http.MethodGet, server.URL+path, nil)
		require.NoError(t, err)
		req.Header.Set("Accept", "text/html")
		if path == "/static/demo.js" {
			req.Header.Set("Sec-Fetch-Dest", "script")
		}

		resp, err := client.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
	}

	requests := instance.RequestLog().Requests(10)
	require.Len(t, requests, 4)

	assert.Equal(t, "/", requests[0].Path)
	assert.Equal(t, http.StatusOK, requests[0].StatusCode)
	assert.Equal(t, "/demo", requests[1].Path)
	assert.Equal(t, "color=red", requests[1].RawQuery)
	assert.False(t, requests[2].Document)
	assert.Equal(t, http.StatusNotFound, requests[3].StatusCode)

	assert.Len(t, instance.RequestLog().Documents("/demo"), 1)
}

func TestInstance_SkipPaths(t *testing.T) {
	instance := sampleproject.NewWithOptions(sampleproject.Options{
		RequestLogSkipPaths: []string{"/static/"},
	})
	defer instance.Close()

	rec := httptest.NewRecorder()
	instance.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/perf.js", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, instance.RequestLog().Requests(10))
}

func TestInstance_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	instance := sampleproject.NewWithOptions(sampleproject.Options{
		Logger:              logger,
		RequestLogSkipPaths: []string{"/static/"},
	})

	for _, path := range []string{"/about", "/static/demo.js", "/nope"} {
		rec := httptest.NewRecorder()
		instance.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	// Close waits until every recorded request is logged.
	instance.Close()

	output := buf.String()
	assert.Equal(t, 2, strings.Count(output, "Served request"))
	assert.Contains(t, output, `path=/about query="" status=200`)
	assert.Contains(t, output, `path=/nope query="" status=404`)
	assert.NotContains(t, output, "/static/")
}
