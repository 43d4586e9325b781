package views

import (
	"context"
	"fmt"
	"math"

	"github.com/a-h/templ"
)

type PerformanceProps struct {
	ItemCount        int
	ParticleCount    int
	AnimatedBoxCount int
	ShadowBoxCount   int
}

// PerformanceTest renders a page that is deliberately expensive to lay out and paint.
// perf.js drives the canvas, the animated counter and the control toggles.
func PerformanceTest(props PerformanceProps) templ.Component {
	return component(func(ctx context.Context, hw *htmlWriter) {
		hw.rawf(`<div class="min-h-screen bg-gradient-to-br from-gray-900 via-purple-900 to-gray-900 text-white p-4" data-performance data-particles="%d">`, props.ParticleCount)

		hw.raw(`<header class="mb-6"><div class="flex items-center justify-between">`)
		hw.raw(`<h1 class="text-3xl font-bold">Performance Test Page</h1>`)
		link(ctx, hw, "/", "px-4 py-2 bg-white/10 rounded-lg hover:bg-white/20 transition-colors", "ホームに戻る")
		hw.raw(`</div><p class="text-gray-400 mt-2">描画が重い要素を含むパフォーマンステスト用ページ</p>`)
		hw.raw(`<div class="mt-2 text-sm text-cyan-400">カウンター: <span data-ticker>0</span> (100ms毎に更新)</div></header>`)

		hw.raw(`<div class="mb-6 p-4 bg-white/5 rounded-xl backdrop-blur-sm">`)
		hw.raw(`<h2 class="text-lg font-semibold mb-3">表示コントロール</h2><div class="flex flex-wrap gap-4">`)
		for _, toggle := range []struct{ key, label string }{
			{"animate", "アニメーション実行"},
			{"list", fmt.Sprintf("大量リスト (%d件)", props.ItemCount)},
			{"canvas", fmt.Sprintf("Canvas パーティクル (%d個)", props.ParticleCount)},
			{"css", fmt.Sprintf("CSSアニメーション (%d個)", props.AnimatedBoxCount)},
			{"grid", "入れ子グリッド"},
		} {
			hw.rawf(`<label class="flex items-center gap-2 cursor-pointer"><input type="checkbox" checked class="w-4 h-4" data-toggle="%s">`, toggle.key)
			hw.text(toggle.label)
			hw.raw(`</label>`)
		}
		hw.raw(`</div></div>`)

		hw.raw(`<div class="grid grid-cols-1 lg:grid-cols-2 gap-6">`)
		performanceCanvas(hw, props)
		performanceCSS(hw, props)
		performanceGrid(hw)
		performanceList(hw, props)
		hw.raw(`</div>`)

		hw.raw(`<div class="mt-6 grid grid-cols-2 md:grid-cols-4 lg:grid-cols-8 gap-4">`)
		for i := 0; i < props.ShadowBoxCount; i++ {
			hue := (i * 15) % 360
			hw.rawf(`<div class="aspect-square rounded-xl backdrop-blur-md transition-all duration-500 hover:scale-110 cursor-pointer" style="background: linear-gradient(%ddeg, hsl(%d, 70%%, 50%%), hsl(%d, 70%%, 50%%)); box-shadow: 0 0 20px hsl(%d, 70%%, 50%%), 0 0 40px hsl(%d, 70%%, 30%%), inset 0 0 20px rgba(255,255,255,0.2)"></div>`,
				i*15, hue, (hue+60)%360, hue, hue)
		}
		hw.raw(`</div>`)

		hw.raw(`<footer class="mt-8 text-center text-gray-500 text-sm"><p>パフォーマンス計測には DevTools の Performance タブを使用してください</p></footer>`)
		hw.raw(`</div>`)
	})
}

func performanceCanvas(hw *htmlWriter, props PerformanceProps) {
	hw.raw(`<div class="bg-black/30 rounded-xl p-4 backdrop-blur-sm" data-section="canvas">`)
	hw.rawf(`<h2 class="text-lg font-semibold mb-3 text-purple-300">Canvas パーティクル (%d個 + 接続線)</h2>`, props.ParticleCount)
	hw.raw(`<canvas width="500" height="300" class="w-full rounded-lg bg-black"></canvas></div>`)
}

func performanceCSS(hw *htmlWriter, props PerformanceProps) {
	hw.raw(`<div class="bg-black/30 rounded-xl p-4 backdrop-blur-sm overflow-hidden" data-section="css">`)
	hw.rawf(`<h2 class="text-lg font-semibold mb-3 text-pink-300">CSSアニメーション (%d個)</h2>`, props.AnimatedBoxCount)
	hw.raw(`<div class="relative overflow-hidden" style="height:300px">`)
	for i := 0; i < props.AnimatedBoxCount; i++ {
		size := 20 + (i%5)*10
		hue := (i * 20) % 360
		hw.rawf(`<div class="absolute rounded-full opacity-70" style="width:%dpx;height:%dpx;left:%d%%;top:%d%%;background:linear-gradient(%ddeg, hsl(%d, 80%%, 60%%), hsl(%d, 80%%, 60%%));animation:float-%d %ds ease-in-out infinite, pulse %ds ease-in-out infinite, rotate %ds linear infinite;box-shadow:0 0 %dpx hsl(%d, 80%%, 60%%)"></div>`,
			size, size, (i*37)%90, (i*23)%80, i*30, hue, (hue+60)%360, i%3, 2+i%3, 1+i%2, 3+i%4, 10+(i%5)*5, hue)
	}
	hw.raw(`</div><style>`)
	hw.raw(`@keyframes float-0 { 0%, 100% { transform: translateY(0) translateX(0); } 50% { transform: translateY(-30px) translateX(10px); } }`)
	hw.raw(`@keyframes float-1 { 0%, 100% { transform: translateY(0) translateX(0); } 50% { transform: translateY(-20px) translateX(-15px); } }`)
	hw.raw(`@keyframes float-2 { 0%, 100% { transform: translateY(0) translateX(0); } 50% { transform: translateY(-40px) translateX(5px); } }`)
	hw.raw(`@keyframes pulse { 0%, 100% { opacity: 0.7; } 50% { opacity: 1; } }`)
	hw.raw(`@keyframes rotate { from { transform: rotate(0deg); } to { transform: rotate(360deg); } }`)
	hw.raw(`</style></div>`)
}

func performanceGrid(hw *htmlWriter) {
	hw.raw(`<div class="bg-black/30 rounded-xl p-4 backdrop-blur-sm" data-section="grid">`)
	hw.raw(`<h2 class="text-lg font-semibold mb-3 text-cyan-300">入れ子グリッド (4層)</h2><div class="grid grid-cols-4 gap-2">`)
	for i := 0; i < 16; i++ {
		hw.raw(`<div class="bg-white/5 p-2 rounded"><div class="grid grid-cols-2 gap-1">`)
		for j := 0; j < 4; j++ {
			hw.raw(`<div class="bg-white/10 p-1 rounded"><div class="grid grid-cols-2 gap-0.5">`)
			for k := 0; k < 4; k++ {
				hw.rawf(`<div class="h-3 rounded-sm transition-all duration-300 hover:scale-150" data-hue="%d" style="background-color: hsl(%d, 70%%, 50%%)"></div>`,
					(i*20+j*40+k*60)%360, (i*20+j*40+k*60)%360)
			}
			hw.raw(`</div></div>`)
		}
		hw.raw(`</div></div>`)
	}
	hw.raw(`</div></div>`)
}

func performanceList(hw *htmlWriter, props PerformanceProps) {
	hw.raw(`<div class="bg-black/30 rounded-xl p-4 backdrop-blur-sm" data-section="list">`)
	hw.rawf(`<h2 class="text-lg font-semibold mb-3 text-yellow-300">大量リスト (%d件、仮想化なし)</h2>`, props.ItemCount)
	hw.raw(`<div class="overflow-auto" style="height:300px">`)
	for item := 0; item < props.ItemCount; item++ {
		hw.rawf(`<div class="flex items-center justify-between p-2 mb-1 rounded bg-white/5 hover:bg-white/10 transition-colors" style="border-left: 4px solid hsl(%d, 70%%, 50%%)">`, (item*3)%360)
		hw.rawf(`<div class="flex items-center gap-3"><div class="w-8 h-8 rounded-full flex items-center justify-center text-xs font-bold" style="background: linear-gradient(135deg, hsl(%d, 70%%, 50%%), hsl(%d, 70%%, 50%%))">%d</div>`,
			(item*5)%360, (item*5+60)%360, item)
		hw.rawf(`<div><div class="font-medium">アイテム #%d</div><div class="text-xs text-gray-400">計算値: %s</div></div></div>`, item, complexValue(item))
		hw.raw(`<div class="flex gap-1">`)
		for i := 0; i < 5; i++ {
			hw.rawf(`<div class="w-2 h-2 rounded-full" style="background-color: hsl(%d, 70%%, 50%%)"></div>`, (item*10+i*30)%360)
		}
		hw.raw(`</div></div>`)
	}
	hw.raw(`</div></div>`)
}

// complexValue is a deliberately busy calculation shown next to every list item.
func complexValue(index int) string {
	var result float64
	for i := 0; i < 100; i++ {
		result += math.Sin(float64(index*i)) * math.Cos(float64(index+i))
	}
	return fmt.Sprintf("%.2f", result)
}
