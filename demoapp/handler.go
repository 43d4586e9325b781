package demoapp

import (
	"net/http"
	"slices"

	"github.com/a-h/templ"
	"github.com/gofrs/uuid"
	"github.com/samber/lo"

	"github.com/hgo124578/sample-project/demoapp/static"
	"github.com/hgo124578/sample-project/demoapp/views"
)

// Handler serves the demo application: home, about, the shallow routing demo
// and the performance test page.
type Handler struct {
	options handlerOptions

	mux http.Handler
}

func NewHandler(opts ...HandlerOption) *Handler {
	options := defaultHandlerOptions()
	for _, opt := range opts {
		opt(&options)
	}

	mux := http.NewServeMux()
	handler := &Handler{
		options: options,

		mux: setHandlerOptions(options, mux),
	}

	mux.HandleFunc("GET /{$}", handler.home)
	mux.HandleFunc("GET /about", handler.about)
	mux.HandleFunc("GET /demo", handler.demo)
	mux.HandleFunc("GET /performance-test", handler.performanceTest)

	mux.Handle("GET /static/", http.StripPrefix("/static", http.FileServerFS(static.Assets)))

	return handler
}

func setHandlerOptions(options handlerOptions, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ctx = views.WithHandlerOptions(ctx, views.HandlerOptions{
			PathPrefix: options.PathPrefix,
		})
		r = r.WithContext(ctx)

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, views.Home())
}

func (h *Handler) about(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, views.About())
}

func (h *Handler) demo(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	props := views.DemoProps{
		Color: demoColor(query.Get("color")),
		Tab:   demoTab(query.Get("tab")),
	}

	h.render(w, r, views.Demo(props), "/static/demo.js")
}

func (h *Handler) performanceTest(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, views.PerformanceTest(views.PerformanceProps{
		ItemCount:        h.options.ItemCount,
		ParticleCount:    h.options.ParticleCount,
		AnimatedBoxCount: h.options.AnimatedBoxCount,
		ShadowBoxCount:   h.options.ShadowBoxCount,
	}), "/static/perf.js")
}

// render writes content inside the layout. Every call gets a fresh render id,
// so a changed id in the browser means the document was loaded again.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, content templ.Component, scripts ...string) {
	renderID, err := uuid.NewV4()
	if err != nil {
		http.Error(w, "Failed to generate render id", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	templ.Handler(views.Layout(views.LayoutProps{
		RenderID: renderID.String(),
		Scripts:  scripts,
	}, content)).ServeHTTP(w, r)
}

// demoColor falls back to the default for unknown values, like the client does.
func demoColor(token string) string {
	if slices.ContainsFunc(views.DemoColors, func(c views.ColorOption) bool { return c.Token == token }) {
		return token
	}
	return views.DefaultColor
}

func demoTab(token string) string {
	_, ok := lo.Find(views.DemoTabs, func(t views.TabOption) bool { return t.Token == token })
	if ok {
		return token
	}
	return views.DefaultTab
}
