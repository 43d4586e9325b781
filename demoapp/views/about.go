package views

import (
	"context"

	"github.com/a-h/templ"
)

// aboutSample is shown on the about page as an example of driving the demo page.
const aboutSample = `demo := pages.NewDemoPage(page)
if err := demo.Goto(); err != nil {
	return err
}
return demo.IncrementCounter(3)`

func About() templ.Component {
	return component(func(ctx context.Context, hw *htmlWriter) {
		hw.raw(`<main class="min-h-screen flex flex-col items-center justify-center bg-gradient-to-b from-green-50 to-green-100 p-8">`)
		hw.raw(`<div class="text-center space-y-6">`)
		hw.raw(`<h1 class="text-5xl font-bold text-green-900">アバウトページ</h1>`)
		hw.raw(`<p class="text-xl text-gray-700">これはNext.js v15のApp Routerを使用した2つ目のページです</p>`)
		hw.raw(`<div class="bg-white p-6 rounded-lg shadow-md max-w-md mx-auto">`)
		hw.raw(`<h2 class="text-2xl font-semibold mb-3 text-gray-800">このプロジェクトについて</h2>`)
		hw.raw(`<ul class="text-left space-y-2 text-gray-600">`)
		for _, item := range []string{"Next.js v15使用", "App Router採用", "Tailwind CSSでスタイリング", "2つのページ構成"} {
			hw.raw(`<li>✓ `)
			hw.text(item)
			hw.raw(`</li>`)
		}
		hw.raw(`</ul>`)
		hw.raw(`<div class="mt-4 text-sm">`)
		hw.component(ctx, highlightCode(aboutSample, "go"))
		hw.raw(`</div></div><div class="pt-4">`)
		link(ctx, hw, "/", "inline-block px-6 py-3 bg-green-600 text-white font-semibold rounded-lg hover:bg-green-700 transition-colors", "← ホームに戻る")
		hw.raw(`</div></div></main>`)
	})
}
