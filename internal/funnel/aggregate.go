package funnel

import (
	"fmt"
	"slices"
	"time"
)

// Mode selects how stage counts are computed.
type Mode string

const (
	// ModeEvents counts raw event rows per stage.
	ModeEvents Mode = "events"
	// ModeHCPs counts distinct HCPs with the stage flag set.
	ModeHCPs Mode = "hcps"
)

// ParseMode parses a wire value; the empty string defaults to ModeEvents.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeEvents:
		return ModeEvents, nil
	case ModeHCPs:
		return ModeHCPs, nil
	default:
		return "", fmt.Errorf("%w: unknown mode %q", ErrInvalidArgument, s)
	}
}

// Period selects the time bucket for trend aggregation.
type Period string

const (
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
)

// ParsePeriod parses a wire value; the empty string defaults to PeriodMonth.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case "", PeriodMonth:
		return PeriodMonth, nil
	case PeriodQuarter:
		return PeriodQuarter, nil
	default:
		return "", fmt.Errorf("%w: unknown period %q", ErrInvalidArgument, s)
	}
}

// StageCounts holds the four funnel stage counts.
type StageCounts struct {
	Target int `json:"target"`
	Reach  int `json:"reach"`
	Open   int `json:"open"`
	Click  int `json:"click"`
}

func (c StageCounts) stage(s Stage) int {
	switch s {
	case StageTarget:
		return c.Target
	case StageReach:
		return c.Reach
	case StageOpen:
		return c.Open
	default:
		return c.Click
	}
}

// StageRow is one row of the funnel detail table: a stage, its count and its
// conversion rate against the immediately preceding stage. Target's rate is
// fixed at 1.0 by definition.
type StageRow struct {
	Stage          string  `json:"stage"`
	Count          int     `json:"count"`
	RateVsPrevious float64 `json:"rate_vs_previous"`
}

// Summary is the aggregated funnel view of a (possibly filtered) dataset.
// Every rate with a zero denominator is 0, never NaN, so callers can render
// values without defensive checks.
type Summary struct {
	Mode        Mode        `json:"mode"`
	Counts      StageCounts `json:"counts"`
	ReachRate   float64     `json:"reach_rate"`
	OpenRate    float64     `json:"open_rate"`
	ClickToOpen float64     `json:"click_to_open"`
	Stages      []StageRow  `json:"stages"`
}

// PeriodCounts is one bucket of a trend series.
type PeriodCounts struct {
	Label  string      `json:"label"`
	Counts StageCounts `json:"counts"`
}

// Aggregate computes the funnel summary of events under the given mode.
// Mode values come from ParseMode; anything other than ModeHCPs counts
// event rows.
func Aggregate(events []Event, mode Mode) Summary {
	if mode != ModeHCPs {
		mode = ModeEvents
	}

	counts := countStages(events, mode)
	summary := Summary{
		Mode:        mode,
		Counts:      counts,
		ReachRate:   ratio(counts.Reach, counts.Target),
		OpenRate:    ratio(counts.Open, counts.Reach),
		ClickToOpen: ratio(counts.Click, counts.Open),
	}

	summary.Stages = make([]StageRow, 0, len(Stages))
	prev := 0
	for i, s := range Stages {
		n := counts.stage(s)
		rate := 1.0
		if i > 0 {
			rate = ratio(n, prev)
		}
		summary.Stages = append(summary.Stages, StageRow{
			Stage:          string(s),
			Count:          n,
			RateVsPrevious: rate,
		})
		prev = n
	}
	return summary
}

// AggregateByPeriod buckets events by the period their EventDate falls in and
// computes stage counts per bucket, chronological. Only periods present in
// the input appear; gaps are not zero-filled. Under ModeHCPs the distinct-HCP
// count is taken within each period's rows only, never cumulatively.
// Period and mode values come from ParsePeriod and ParseMode; anything other
// than PeriodQuarter buckets by month.
func AggregateByPeriod(events []Event, period Period, mode Mode) []PeriodCounts {
	buckets := make(map[string][]Event)
	for _, e := range events {
		label := periodLabel(e.EventDate, period)
		buckets[label] = append(buckets[label], e)
	}

	labels := make([]string, 0, len(buckets))
	for label := range buckets {
		labels = append(labels, label)
	}
	// Both "2006-01" and "2006Q1" labels sort chronologically as strings.
	slices.Sort(labels)

	out := make([]PeriodCounts, 0, len(labels))
	for _, label := range labels {
		out = append(out, PeriodCounts{
			Label:  label,
			Counts: countStages(buckets[label], mode),
		})
	}
	return out
}

func periodLabel(t time.Time, period Period) string {
	if period == PeriodQuarter {
		return fmt.Sprintf("%dQ%d", t.Year(), (int(t.Month())-1)/3+1)
	}
	return t.Format("2006-01")
}

func countStages(events []Event, mode Mode) StageCounts {
	var counts StageCounts
	if mode == ModeHCPs {
		seen := map[Stage]map[string]struct{}{}
		for _, s := range Stages {
			seen[s] = make(map[string]struct{})
		}
		for _, e := range events {
			for _, s := range Stages {
				if e.flag(s) {
					seen[s][e.HCPID] = struct{}{}
				}
			}
		}
		counts.Target = len(seen[StageTarget])
		counts.Reach = len(seen[StageReach])
		counts.Open = len(seen[StageOpen])
		counts.Click = len(seen[StageClick])
		return counts
	}

	for _, e := range events {
		if e.Target {
			counts.Target++
		}
		if e.Reach {
			counts.Reach++
		}
		if e.Open {
			counts.Open++
		}
		if e.Click {
			counts.Click++
		}
	}
	return counts
}

// ratio divides num by den, defining 0/0 and n/0 as 0.
func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
