package requestlog

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gofrs/uuid"
)

// DefaultCapacity is the number of requests kept when Options.Capacity is 0.
const DefaultCapacity = 1000

// Options configures a Log.
type Options struct {
	// Capacity is the maximum number of requests to keep.
	// Default: DefaultCapacity
	Capacity uint64

	// SkipPaths is a list of path prefixes that are served but not recorded.
	SkipPaths []string
}

// Log records requests served through its middleware.
// It is used to tell client-side navigations apart from full page loads.
type Log struct {
	buffer   *RingBuffer[Request]
	notifier *Notifier[Request]
	options  Options
}

// New creates a request log with default options.
func New() *Log {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a request log with the given options.
func NewWithOptions(options Options) *Log {
	capacity := options.Capacity
	if capacity == 0 {
		capacity = DefaultCapacity
	}

	return &Log{
		buffer:   NewRingBuffer[Request](capacity),
		notifier: NewNotifier[Request](),
		options:  options,
	}
}

// Middleware records every request handled by next.
func (l *Log) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if l.skip(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		req := Request{
			ID:          uuid.Must(uuid.NewV4()),
			Method:      r.Method,
			Path:        r.URL.Path,
			RawQuery:    r.URL.RawQuery,
			Document:    isDocumentRequest(r),
			RequestTime: time.Now(),
		}

		sw := &statusWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(sw, r)

		req.StatusCode = sw.statusCode
		req.ResponseTime = time.Now()

		l.Add(req)
	})
}

// Add records a request and notifies subscribers.
func (l *Log) Add(req Request) {
	l.buffer.Add(req)
	l.notifier.Notify(req)
}

// Requests returns up to n of the most recent requests, oldest first.
func (l *Log) Requests(n uint64) []Request {
	return l.buffer.Last(n)
}

// Documents returns all recorded document requests for path, oldest first.
func (l *Log) Documents(path string) []Request {
	var result []Request
	for _, req := range l.buffer.Last(l.buffer.Cap()) {
		if req.Document && req.Path == path {
			result = append(result, req)
		}
	}
	return result
}

// Subscribe returns a channel receiving requests recorded after the call.
func (l *Log) Subscribe(ctx context.Context) <-chan Request {
	return l.notifier.Subscribe(ctx)
}

// Reset drops all recorded requests.
func (l *Log) Reset() {
	l.buffer.Reset()
}

// Close stops notifications and closes all subscriptions.
func (l *Log) Close() {
	l.notifier.Close()
}

func (l *Log) skip(path string) bool {
	for _, prefix := range l.options.SkipPaths {
		if prefix != "" && strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// statusWriter captures the status code written by a handler.
type statusWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (sw *statusWriter) WriteHeader(statusCode int) {
	if sw.wroteHeader {
		return
	}
	sw.wroteHeader = true
	sw.statusCode = statusCode
	sw.ResponseWriter.WriteHeader(statusCode)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	if !sw.wroteHeader {
		sw.WriteHeader(http.StatusOK)
	}
	return sw.ResponseWriter.Write(b)
}

// Flush implements http.Flusher if the wrapped writer does.
func (sw *statusWriter) Flush() {
	if f, ok := sw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap lets http.ResponseController reach the wrapped writer.
func (sw *statusWriter) Unwrap() http.ResponseWriter {
	return sw.ResponseWriter
}
