package requestlog

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofrs/uuid"
)

// Request is one request served by the application.
type Request struct {
	ID         uuid.UUID
	Method     string
	Path       string
	RawQuery   string
	StatusCode int
	// Document is true for top-level page loads (as opposed to scripts,
	// fetches and other subresources).
	Document     bool
	RequestTime  time.Time
	ResponseTime time.Time
}

// Duration returns how long the handler took to respond.
func (r Request) Duration() time.Duration {
	return r.ResponseTime.Sub(r.RequestTime)
}

// isDocumentRequest reports whether r is a top-level navigation.
// Browsers set Sec-Fetch-Dest on navigations; plain clients fall back to the Accept header.
func isDocumentRequest(r *http.Request) bool {
	if dest := r.Header.Get("Sec-Fetch-Dest"); dest != "" {
		return dest == "document"
	}
	return r.Method == http.MethodGet && strings.Contains(r.Header.Get("Accept"), "text/html")
}
