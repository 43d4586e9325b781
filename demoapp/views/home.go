package views

import (
	"context"

	"github.com/a-h/templ"
)

func Home() templ.Component {
	return component(func(ctx context.Context, hw *htmlWriter) {
		hw.raw(`<main class="min-h-screen flex flex-col items-center justify-center bg-gradient-to-b from-blue-50 to-blue-100 p-8">`)
		hw.raw(`<div class="text-center space-y-6">`)
		hw.raw(`<h1 class="text-5xl font-bold text-blue-900">Hello World!</h1>`)
		hw.raw(`<p class="text-xl text-gray-700">Next.js v15 基礎学習用プロジェクトへようこそ</p>`)
		hw.raw(`<div class="pt-4 space-y-3"><div>`)
		link(ctx, hw, "/about", "inline-block px-6 py-3 bg-blue-600 text-white font-semibold rounded-lg hover:bg-blue-700 transition-colors", "アバウトページへ →")
		hw.raw(`</div><div>`)
		link(ctx, hw, "/demo", "inline-block px-6 py-3 bg-purple-600 text-white font-semibold rounded-lg hover:bg-purple-700 transition-colors", "デモページへ（シャローローティング）→")
		hw.raw(`</div><div>`)
		link(ctx, hw, "/performance-test", "inline-block px-6 py-3 bg-gray-800 text-white font-semibold rounded-lg hover:bg-gray-900 transition-colors", "パフォーマンステスト")
		hw.raw(`</div></div></div></main>`)
	})
}
