package views

import "context"

type handlerOptionsKey struct{}

// HandlerOptions are request-scoped settings the views need to build URLs.
type HandlerOptions struct {
	// PathPrefix is where the application is mounted, without trailing slash.
	PathPrefix string
}

func WithHandlerOptions(ctx context.Context, opts HandlerOptions) context.Context {
	return context.WithValue(ctx, handlerOptionsKey{}, opts)
}

func MustGetHandlerOptions(ctx context.Context) HandlerOptions {
	opts, ok := ctx.Value(handlerOptionsKey{}).(HandlerOptions)
	if !ok {
		panic("views: handler options missing in context")
	}
	return opts
}

// url prefixes an application path with the mount prefix.
func url(ctx context.Context, path string) string {
	return MustGetHandlerOptions(ctx).PathPrefix + path
}
