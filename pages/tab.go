package pages

import (
	"errors"
	"fmt"
)

// Tab is a tab of the demo page, identified by its URL token.
type Tab string

const (
	TabInfo     Tab = "info"
	TabSettings Tab = "settings"
	TabHistory  Tab = "history"
)

var Tabs = []Tab{TabInfo, TabSettings, TabHistory}

var tabLabels = map[Tab]string{
	TabInfo:     "情報",
	TabSettings: "設定",
	TabHistory:  "履歴",
}

// tabHeadings are the headings shown in the panel of the active tab.
var tabHeadings = map[Tab]string{
	TabInfo:     "情報タブ",
	TabSettings: "設定タブ",
	TabHistory:  "履歴タブ",
}

var ErrInvalidTab = errors.New("invalid tab")

func (t Tab) Valid() bool {
	_, ok := tabLabels[t]
	return ok
}

func (t Tab) Label() string {
	return tabLabels[t]
}

func (t Tab) Heading() string {
	return tabHeadings[t]
}

func (t Tab) Token() string {
	return string(t)
}

func validateTab(t Tab) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTab, string(t))
	}
	return nil
}
