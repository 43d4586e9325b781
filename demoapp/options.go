package demoapp

// handlerOptions holds configuration for a demo application Handler.
// This is unexported; use HandlerOption functions to configure.
type handlerOptions struct {
	// PathPrefix is where the handler is mounted (e.g. "/app").
	PathPrefix string
	// ItemCount is the number of rows in the large list of the performance page.
	ItemCount int
	// ParticleCount is the number of canvas particles on the performance page.
	ParticleCount int
	// AnimatedBoxCount is the number of CSS animated boxes on the performance page.
	AnimatedBoxCount int
	// ShadowBoxCount is the number of shadow boxes on the performance page.
	ShadowBoxCount int
}

const (
	DefaultItemCount        = 500
	DefaultParticleCount    = 150
	DefaultAnimatedBoxCount = 50
	DefaultShadowBoxCount   = 24
)

func defaultHandlerOptions() handlerOptions {
	return handlerOptions{
		ItemCount:        DefaultItemCount,
		ParticleCount:    DefaultParticleCount,
		AnimatedBoxCount: DefaultAnimatedBoxCount,
		ShadowBoxCount:   DefaultShadowBoxCount,
	}
}

// HandlerOption configures a demo application Handler.
type HandlerOption func(*handlerOptions)

// WithPathPrefix sets the path prefix where the handler is mounted.
// It is used for generating links and script URLs.
func WithPathPrefix(prefix string) HandlerOption {
	return func(o *handlerOptions) {
		o.PathPrefix = prefix
	}
}

// WithItemCount sets the number of list items rendered on the performance page.
// Default is 500. Measurements wait for the last item, so keep it in sync with perf.
func WithItemCount(count int) HandlerOption {
	return func(o *handlerOptions) {
		o.ItemCount = count
	}
}

// WithParticleCount sets the number of canvas particles on the performance page.
func WithParticleCount(count int) HandlerOption {
	return func(o *handlerOptions) {
		o.ParticleCount = count
	}
}

func WithAnimatedBoxCount(count int) HandlerOption {
	return func(o *handlerOptions) {
		o.AnimatedBoxCount = count
	}
}

// WithShadowBoxCount sets the number of shadow boxes. Default is 24.
func WithShadowBoxCount(count int) HandlerOption {
	return func(o *handlerOptions) {
		o.ShadowBoxCount = count
	}
}
