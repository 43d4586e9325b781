package perf

import (
	"time"

	"github.com/gofrs/uuid"
	"github.com/samber/lo"
)

// Sample is the time from navigation start until one element became visible.
type Sample struct {
	Element  string
	Duration time.Duration
	// OK is false if the element did not become visible in time.
	OK bool
}

// Round is one render measurement.
type Round struct {
	ID      uuid.UUID
	Number  int
	Samples []Sample
}

// Slowest returns the successful sample that took longest.
func (r Round) Slowest() (Sample, bool) {
	ok := lo.Filter(r.Samples, func(s Sample, _ int) bool { return s.OK })
	if len(ok) == 0 {
		return Sample{}, false
	}
	return lo.MaxBy(ok, func(a, b Sample) bool { return a.Duration > b.Duration }), true
}

type Stat struct {
	Avg time.Duration
	Min time.Duration
	Max time.Duration
}

func newStat(durations []time.Duration) Stat {
	if len(durations) == 0 {
		return Stat{}
	}
	return Stat{
		Avg: lo.Sum(durations) / time.Duration(len(durations)),
		Min: lo.Min(durations),
		Max: lo.Max(durations),
	}
}

type ElementSummary struct {
	Name string
	// Durations of the successful samples, in round order.
	Durations []time.Duration
	Stat
}

type RoundSlowest struct {
	Round  int
	Sample Sample
}

// Summary aggregates render rounds.
type Summary struct {
	Rounds   int
	Elements []ElementSummary
	// SlowestPerRound skips rounds without any successful sample.
	SlowestPerRound []RoundSlowest
	Overall         *RoundSlowest
	AverageSlowest  time.Duration
}

// Summarize computes per element statistics over all successful samples and
// the slowest element of every round. Elements keep the order of first appearance.
func Summarize(rounds []Round) Summary {
	summary := Summary{Rounds: len(rounds)}

	names := lo.Uniq(lo.FlatMap(rounds, func(r Round, _ int) []string {
		return lo.Map(r.Samples, func(s Sample, _ int) string { return s.Element })
	}))
	for _, name := range names {
		var durations []time.Duration
		for _, r := range rounds {
			for _, s := range r.Samples {
				if s.Element == name && s.OK {
					durations = append(durations, s.Duration)
				}
			}
		}
		if len(durations) == 0 {
			continue
		}
		summary.Elements = append(summary.Elements, ElementSummary{
			Name:      name,
			Durations: durations,
			Stat:      newStat(durations),
		})
	}

	for _, r := range rounds {
		if slowest, ok := r.Slowest(); ok {
			summary.SlowestPerRound = append(summary.SlowestPerRound, RoundSlowest{Round: r.Number, Sample: slowest})
		}
	}
	if len(summary.SlowestPerRound) > 0 {
		overall := lo.MaxBy(summary.SlowestPerRound, func(a, b RoundSlowest) bool {
			return a.Sample.Duration > b.Sample.Duration
		})
		summary.Overall = &overall
		summary.AverageSlowest = lo.SumBy(summary.SlowestPerRound, func(s RoundSlowest) time.Duration {
			return s.Sample.Duration
		}) / time.Duration(len(summary.SlowestPerRound))
	}

	return summary
}

// Transition is one measurement of clicking from home to the performance page.
type Transition struct {
	ID     uuid.UUID
	Number int
	// URLChange is the time until the address changed.
	URLChange time.Duration
	// Total is the time until the last list item was visible.
	Total time.Duration
}

type TransitionSummary struct {
	Transitions []Transition
	URLChange   Stat
	Total       Stat
}

func SummarizeTransitions(transitions []Transition) TransitionSummary {
	return TransitionSummary{
		Transitions: transitions,
		URLChange:   newStat(lo.Map(transitions, func(t Transition, _ int) time.Duration { return t.URLChange })),
		Total:       newStat(lo.Map(transitions, func(t Transition, _ int) time.Duration { return t.Total })),
	}
}
