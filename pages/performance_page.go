package pages

import (
	"fmt"
	"regexp"

	"github.com/playwright-community/playwright-go"
)

const (
	PerformancePath = "/performance-test"

	// DefaultPerformanceItemCount is the length of the large list the page renders by default.
	DefaultPerformanceItemCount = 500
	// shadowBoxIndex is the last of the shadow boxes rendered by default.
	shadowBoxIndex = 23
)

// Element is a part of a page whose appearance is timed.
type Element struct {
	Name    string
	Locator playwright.Locator
}

// PerformancePage is the Page Object of the rendering heavy test page.
type PerformancePage struct {
	page      playwright.Page
	itemCount int
}

// NewPerformancePage creates the Page Object of the performance test page.
func NewPerformancePage(page playwright.Page) *PerformancePage {
	return &PerformancePage{
		page:      page,
		itemCount: DefaultPerformanceItemCount,
	}
}

// WithItemCount returns a copy expecting a list of count items.
func (p *PerformancePage) WithItemCount(count int) *PerformancePage {
	c := *p
	c.itemCount = count
	return &c
}

// Goto navigates to the page and returns as soon as the response is committed,
// so timing starts before anything is rendered.
func (p *PerformancePage) Goto() error {
	_, err := p.page.Goto(PerformancePath, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateCommit,
	})
	return err
}

// LastListItem is the slowest element to appear on the page.
func (p *PerformancePage) LastListItem() playwright.Locator {
	return p.page.GetByText(p.LastListItemText(), playwright.PageGetByTextOptions{Exact: playwright.Bool(true)})
}

func (p *PerformancePage) LastListItemText() string {
	return fmt.Sprintf("アイテム #%d", p.itemCount-1)
}

// Elements returns the elements timed by render measurements, top to bottom.
func (p *PerformancePage) Elements() []Element {
	return []Element{
		{Name: "ヘッダー（h1）", Locator: heading(p.page, "Performance Test Page")},
		{Name: "コントロールパネル", Locator: p.page.GetByText("表示コントロール")},
		{Name: "Canvas パーティクルセクション", Locator: heading(p.page, regexp.MustCompile(`Canvas パーティクル`))},
		{Name: "CSSアニメーションセクション", Locator: heading(p.page, regexp.MustCompile(`CSSアニメーション`))},
		{Name: "入れ子グリッドセクション", Locator: heading(p.page, regexp.MustCompile(`入れ子グリッド`))},
		{Name: "大量リストセクション", Locator: heading(p.page, regexp.MustCompile(`大量リスト`))},
		{Name: fmt.Sprintf("大量リスト最後のアイテム（#%d）", p.itemCount-1), Locator: p.LastListItem()},
		{Name: fmt.Sprintf("シャドウ/ブラー要素（%d個目）", shadowBoxIndex+1), Locator: p.page.Locator(".aspect-square.rounded-xl").Nth(shadowBoxIndex)},
		{Name: "フッター", Locator: p.page.GetByText("パフォーマンス計測には DevTools の Performance タブを使用してください")},
	}
}
