package perf

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/samber/lo"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	valueColor   = color.New(color.FgCyan)
	slowColor    = color.New(color.FgYellow)
	faintColor   = color.New(color.Faint)
)

const ruleWidth = 60

// Report is the console summary of a measurement run. Render and Transition
// may be nil if that measurement was not run.
type Report struct {
	Cache      CacheConfig
	Render     *Summary
	Transition *TransitionSummary
}

func (r Report) Write(w io.Writer) error {
	ew := &errWriter{w: w}

	ew.printf("\n%s\n", faintColor.Sprint("【ブラウザキャッシュ設定】"))
	ew.printf("  RESTART_BROWSER_PROCESS: %t\n", r.Cache.RestartBrowserProcess)
	ew.printf("  USE_FRESH_CONTEXT: %t\n", r.Cache.UseFreshContext)
	ew.printf("  DISABLE_HTTP_CACHE: %t\n", r.Cache.DisableHTTPCache)
	ew.printf("  DISABLE_SERVICE_WORKER: %t\n", r.Cache.DisableServiceWorker)

	if r.Render != nil {
		writeRender(ew, *r.Render)
	}
	if r.Transition != nil {
		writeTransition(ew, *r.Transition)
	}

	return ew.err
}

func writeRender(ew *errWriter, s Summary) {
	ew.rule("=")
	ew.printf("%s\n", headingColor.Sprint("計測結果サマリー"))
	ew.rule("=")

	ew.printf("\n【要素別の計測結果】\n")
	ew.rule("-")
	for _, e := range s.Elements {
		ew.printf("\n%s:\n", e.Name)
		ew.printf("  各回: %s\n", perRound(e.Durations))
		ew.printf("  %s\n", formatStat(e.Stat))
	}

	ew.printf("\n")
	ew.rule("-")
	ew.printf("【最も遅い要素（各回）】\n")
	ew.rule("-")
	for _, rs := range s.SlowestPerRound {
		ew.printf("  第%d回: %s (%s)\n", rs.Round, rs.Sample.Element, valueColor.Sprint(ms(rs.Sample.Duration)))
	}

	if s.Overall != nil {
		ew.printf("\n")
		ew.rule("=")
		ew.printf("%s\n", headingColor.Sprint("【総合結果】"))
		ew.rule("=")
		ew.printf("全%d回で最も遅かった瞬間: %s (%s)\n", s.Rounds, s.Overall.Sample.Element, slowColor.Sprint(ms(s.Overall.Sample.Duration)))
		ew.printf("最遅要素の平均表示時間: %s\n", valueColor.Sprint(ms(s.AverageSlowest)))
		ew.rule("=")
	}
}

func writeTransition(ew *errWriter, s TransitionSummary) {
	ew.printf("\n")
	ew.rule("=")
	ew.printf("%s\n", headingColor.Sprint("【遷移時間サマリー】"))
	ew.rule("=")

	ew.printf("\nURL変更完了時間:\n")
	ew.printf("  各回: %s\n", perRound(lo.Map(s.Transitions, func(t Transition, _ int) time.Duration { return t.URLChange })))
	ew.printf("  %s\n", formatStat(s.URLChange))

	ew.printf("\n最重要素表示完了時間:\n")
	ew.printf("  各回: %s\n", perRound(lo.Map(s.Transitions, func(t Transition, _ int) time.Duration { return t.Total })))
	ew.printf("  %s\n", formatStat(s.Total))
	ew.rule("=")
}

func formatStat(s Stat) string {
	return fmt.Sprintf("平均: %s | 最小: %s | 最大: %s",
		valueColor.Sprint(ms(s.Avg)), valueColor.Sprint(ms(s.Min)), valueColor.Sprint(ms(s.Max)))
}

func perRound(durations []time.Duration) string {
	return strings.Join(lo.Map(durations, func(d time.Duration, i int) string {
		return fmt.Sprintf("%d回目=%s", i+1, ms(d))
	}), ", ")
}

// ms formats d in whole milliseconds, e.g. "120ms".
func ms(d time.Duration) string {
	return fmt.Sprintf("%dms", d.Round(time.Millisecond).Milliseconds())
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) rule(char string) {
	ew.printf("%s\n", strings.Repeat(char, ruleWidth))
}
