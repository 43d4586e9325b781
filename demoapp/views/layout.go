package views

import (
	"context"

	"github.com/a-h/templ"
)

// DocumentTitle is the title shared by every page of the demo application.
const DocumentTitle = "Next.js v15 Sample Project"

type LayoutProps struct {
	// RenderID identifies one server render of a page. Client-side navigation keeps it.
	RenderID string
	Scripts  []string
}

// Layout wraps content in the HTML document shell.
func Layout(props LayoutProps, content templ.Component) templ.Component {
	return component(func(ctx context.Context, hw *htmlWriter) {
		hw.raw(`<!DOCTYPE html><html lang="ja"><head><meta charset="utf-8">`)
		hw.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.raw(`<meta name="description" content="Hello World学習用プロジェクト">`)
		hw.raw(`<title>`)
		hw.text(DocumentTitle)
		hw.raw(`</title>`)
		hw.component(ctx, chromaStyles())
		hw.raw(`</head><body data-render-id="`)
		hw.text(props.RenderID)
		hw.raw(`">`)
		hw.component(ctx, content)
		for _, src := range props.Scripts {
			hw.raw(`<script src="`)
			hw.text(url(ctx, src))
			hw.raw(`" defer></script>`)
		}
		hw.raw(`</body></html>`)
	})
}

// link writes an anchor to an application path.
func link(ctx context.Context, hw *htmlWriter, path, class, label string) {
	hw.raw(`<a href="`)
	hw.text(url(ctx, path))
	hw.raw(`" class="`)
	hw.text(class)
	hw.raw(`">`)
	hw.text(label)
	hw.raw(`</a>`)
}
