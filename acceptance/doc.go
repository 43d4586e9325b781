// Package acceptance drives the sample application in Chromium.
//
// The suites are behind the acceptance build tag:
//
//	go test -tags acceptance ./acceptance/...
//
// Set E2E_BASE_URL to test an already running server instead of an
// in-process one, HEADLESS=false to watch the browser and PERF=true to
// include the performance measurements.
package acceptance
