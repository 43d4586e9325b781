package sampleproject

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/hgo124578/sample-project/demoapp"
	"github.com/hgo124578/sample-project/requestlog"
)

// Instance is the demo application together with the log of requests it served.
type Instance struct {
	requestLog *requestlog.Log
	handler    http.Handler
	loggerDone chan struct{}
}

// Close ends the request log. Requests recorded before are still logged.
func (i *Instance) Close() {
	i.requestLog.Close()
	if i.loggerDone != nil {
		<-i.loggerDone
	}
}

type Options struct {
	// RequestLogCapacity is the maximum number of served requests to keep.
	// Default: 0, will use requestlog.DefaultCapacity
	RequestLogCapacity uint64
	// RequestLogSkipPaths are path prefixes that are not recorded, e.g. "/static/".
	// Default: nil
	RequestLogSkipPaths []string

	// HandlerOptions are passed to the demo application handler.
	// Default: nil
	HandlerOptions []demoapp.HandlerOption

	// Logger receives one entry per recorded request.
	// Default: nil, requests are not logged
	Logger *slog.Logger
}

// New creates a new instance with default options.
func New() *Instance {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a new instance with the specified options.
// Default options are the zero value of Options.
func NewWithOptions(options Options) *Instance {
	requestLog := requestlog.NewWithOptions(requestlog.Options{
		Capacity:  options.RequestLogCapacity,
		SkipPaths: options.RequestLogSkipPaths,
	})

	instance := &Instance{
		requestLog: requestLog,
		handler:    requestLog.Middleware(demoapp.NewHandler(options.HandlerOptions...)),
	}

	if options.Logger != nil {
		instance.loggerDone = make(chan struct{})
		// The subscription ends when the request log is closed.
		requests := requestLog.Subscribe(context.Background())
		go func() {
			defer close(instance.loggerDone)
			logRequests(options.Logger, requests)
		}()
	}

	return instance
}

// Handler serves the demo application and records every request in the request log.
func (i *Instance) Handler() http.Handler {
	return i.handler
}

func (i *Instance) RequestLog() *requestlog.Log {
	return i.requestLog
}

func logRequests(logger *slog.Logger, requests <-chan requestlog.Request) {
	for req := range requests {
		logger.Debug("Served request",
			slog.String("method", req.Method),
			slog.String("path", req.Path),
			slog.String("query", req.RawQuery),
			slog.Int("status", req.StatusCode),
			slog.Bool("document", req.Document),
			slog.Duration("duration", req.Duration()),
		)
	}
}
