package views

import (
	"context"
	"fmt"

	"github.com/a-h/templ"
)

type ColorOption struct {
	// Token is the value of the color query parameter.
	Token string
	Label string
}

type TabOption struct {
	// Token is the value of the tab query parameter.
	Token   string
	Label   string
	Heading string
	Body    string
}

var DemoColors = []ColorOption{
	{Token: "red", Label: "赤"},
	{Token: "green", Label: "緑"},
	{Token: "blue", Label: "青"},
}

var DemoTabs = []TabOption{
	{
		Token:   "info",
		Label:   "情報",
		Heading: "情報タブ",
		Body:    "これはシャローローティングのデモです。タブを切り替えてもページは再読み込みされず、URLだけが変更されます。",
	},
	{
		Token:   "settings",
		Label:   "設定",
		Heading: "設定タブ",
		Body:    "URLに ?tab=settings が追加されました。このURLを共有すれば、他の人も同じタブを開くことができます。",
	},
	{
		Token:   "history",
		Label:   "履歴",
		Heading: "履歴タブ",
		Body:    "ブラウザの「戻る」ボタンを押すと、前のタブに戻ります。これはURLが履歴に保存されているためです。",
	},
}

const (
	DefaultColor = "blue"
	DefaultTab   = "info"
)

type DemoProps struct {
	Color string
	Tab   string
}

// Demo renders the shallow routing demo. Counter, colour and tab changes are
// handled by demo.js without reloading the page.
func Demo(props DemoProps) templ.Component {
	return component(func(ctx context.Context, hw *htmlWriter) {
		hw.raw(`<div class="min-h-screen bg-gradient-to-b from-purple-50 to-purple-100 p-8" data-demo>`)
		hw.raw(`<div class="max-w-3xl mx-auto">`)
		hw.raw(`<h1 class="text-4xl font-bold text-purple-900 mb-2">シャローローティング デモ</h1>`)
		hw.raw(`<p class="text-gray-600 mb-8">URLパラメータを変更してもページは再読み込みされません</p>`)

		demoCounter(hw)
		demoColors(hw, props)
		demoTabs(hw, props.Tab)

		hw.raw(`<div class="bg-blue-50 border-l-4 border-blue-500 p-4 mb-6">`)
		hw.raw(`<h3 class="font-semibold text-blue-900 mb-2">試してみよう！</h3>`)
		hw.raw(`<ol class="list-decimal list-inside space-y-1 text-sm text-blue-800">`)
		for _, step := range []string{
			"カウンターを増やしてください",
			"色やタブを変更してください",
			"URLが変わることを確認してください",
			"カウンターの値が保持されていることを確認してください",
			"ブラウザの「戻る」ボタンで前の状態に戻れることを確認してください",
		} {
			hw.raw(`<li>`)
			hw.text(step)
			hw.raw(`</li>`)
		}
		hw.raw(`</ol></div>`)

		hw.raw(`<div class="flex gap-4">`)
		link(ctx, hw, "/", "px-6 py-3 bg-purple-600 text-white font-semibold rounded-lg hover:bg-purple-700 transition-colors", "← ホームに戻る")
		link(ctx, hw, "/about", "px-6 py-3 bg-green-600 text-white font-semibold rounded-lg hover:bg-green-700 transition-colors", "アバウトページへ →")
		hw.raw(`</div></div></div>`)
	})
}

func demoCounter(hw *htmlWriter) {
	hw.raw(`<div class="bg-white p-6 rounded-lg shadow-md mb-6">`)
	hw.raw(`<h2 class="text-2xl font-semibold mb-4 text-gray-800">カウンター（状態の保持デモ）</h2>`)
	hw.raw(`<div class="flex items-center gap-4">`)
	hw.raw(`<span class="text-3xl font-bold text-purple-600" data-counter>0</span>`)
	hw.rawf(`<button type="button" class="%s" data-increment>+1</button>`, templ.EscapeString(buttonClasses(ButtonProps{})))
	hw.rawf(`<button type="button" class="%s" data-reset>リセット</button>`, templ.EscapeString(buttonClasses(ButtonProps{Variant: ButtonVariantMuted})))
	hw.raw(`</div>`)
	hw.raw(`<p class="text-sm text-gray-500 mt-3">※下の色やタブを変更してもカウンターの値は保持されます</p>`)
	hw.raw(`</div>`)
}

func demoColors(hw *htmlWriter, props DemoProps) {
	current := props.Color
	hw.raw(`<div class="bg-white p-6 rounded-lg shadow-md mb-6">`)
	hw.raw(`<h2 class="text-2xl font-semibold mb-4 text-gray-800">カラー選択</h2>`)
	hw.raw(`<p class="text-sm text-gray-600 mb-3">現在のURL: <code class="bg-gray-100 px-2 py-1 rounded" data-current-url>`)
	hw.text(fmt.Sprintf("/demo?color=%s&tab=%s", props.Color, props.Tab))
	hw.raw(`</code></p>`)
	hw.raw(`<div class="flex gap-3">`)
	for _, c := range DemoColors {
		active := c.Token == current
		hw.rawf(`<button type="button" class="%s" data-color="%s" data-active-class="%s" data-inactive-class="%s" aria-pressed="%t">`,
			templ.EscapeString(buttonClasses(ButtonProps{Variant: ButtonVariantColor, Hue: c.Token, Active: active})),
			templ.EscapeString(c.Token),
			templ.EscapeString(colorButtonState(c.Token, true)),
			templ.EscapeString(colorButtonState(c.Token, false)),
			active,
		)
		hw.text(c.Label)
		hw.raw(`</button>`)
	}
	hw.raw(`</div></div>`)
}

func demoTabs(hw *htmlWriter, current string) {
	hw.raw(`<div class="bg-white p-6 rounded-lg shadow-md mb-6">`)
	hw.raw(`<h2 class="text-2xl font-semibold mb-4 text-gray-800">タブ切り替え</h2>`)
	hw.raw(`<div class="flex gap-2 mb-4 border-b">`)
	for _, tab := range DemoTabs {
		active := tab.Token == current
		hw.rawf(`<button type="button" class="%s" data-tab="%s" data-active-class="%s" data-inactive-class="%s" aria-pressed="%t">`,
			templ.EscapeString(buttonClasses(ButtonProps{Variant: ButtonVariantTab, Active: active})),
			templ.EscapeString(tab.Token),
			templ.EscapeString(tabButtonState(true)),
			templ.EscapeString(tabButtonState(false)),
			active,
		)
		hw.text(tab.Label)
		hw.raw(`</button>`)
	}
	hw.raw(`</div><div class="p-4 bg-gray-50 rounded">`)
	for _, tab := range DemoTabs {
		hw.rawf(`<div data-tab-panel="%s"`, templ.EscapeString(tab.Token))
		if tab.Token != current {
			hw.raw(` hidden`)
		}
		hw.raw(`><h3 class="font-semibold text-lg mb-2">`)
		hw.text(tab.Heading)
		hw.raw(`</h3><p class="text-gray-600">`)
		hw.text(tab.Body)
		hw.raw(`</p></div>`)
	}
	hw.raw(`</div></div>`)
}
