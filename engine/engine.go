package engine

import (
	"sort"
	"sync"

	"github.com/yourloops/basalviz/model"
	"github.com/yourloops/basalviz/util"
)

// DayReport is everything a chart needs for one UTC day of basal delivery.
type DayReport struct {
	Start     int64              `json:"start"`
	End       int64              `json:"end"`
	Events    []model.BasalEvent `json:"events"`
	Groups    []model.PathGroup  `json:"groups"`
	Markers   []model.Marker     `json:"markers"`
	Labels    []ScheduleLabel    `json:"labels"`
	Endpoints Endpoints          `json:"endpoints"`
	Durations GroupDurations     `json:"durations"`
	Total     string             `json:"total"`
	MaxRate   float64            `json:"max_rate"`
}

// Engine holds a normalized basal series and answers per-day queries.
// Safe for concurrent use.
type Engine struct {
	mu     sync.RWMutex
	events []model.BasalEvent
}

// NewEngine wraps events, which must already be normalized.
func NewEngine(events []model.BasalEvent) *Engine {
	e := &Engine{}
	e.Replace(events)
	return e
}

// Replace swaps the series for a new one.
func (e *Engine) Replace(events []model.BasalEvent) {
	cp := make([]model.BasalEvent, len(events))
	copy(cp, events)
	e.mu.Lock()
	e.events = cp
	e.mu.Unlock()
}

// Len returns the number of events held.
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.events)
}

// Days returns the UTC midnights of every day the series touches, in order.
func (e *Engine) Days() []int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	seen := make(map[int64]bool)
	var days []int64
	for _, ev := range e.events {
		last := ev.End() - 1
		if ev.Duration <= 0 {
			last = ev.UTC
		}
		for d := util.DayStart(ev.UTC); d <= last; d += util.MsPerDay {
			if !seen[d] {
				seen[d] = true
				days = append(days, d)
			}
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}

// Day builds the report for the UTC day starting at start.
func (e *Engine) Day(start int64) DayReport {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return BuildReport(e.events, start, start+util.MsPerDay)
}

// Window returns the events overlapping [start, end), unclipped. Events must
// be ordered by start; end times may overlap.
func Window(events []model.BasalEvent, start, end int64) []model.BasalEvent {
	hi := sort.Search(len(events), func(i int) bool { return events[i].UTC >= end })
	var out []model.BasalEvent
	for _, ev := range events[:hi] {
		if ev.End() > start {
			out = append(out, ev)
		}
	}
	return out
}

// BuildReport groups and summarizes the events inside [start, end).
func BuildReport(events []model.BasalEvent, start, end int64) DayReport {
	day := Window(events, start, end)
	groups := GetBasalPathGroups(day)
	r := DayReport{
		Start:     start,
		End:       end,
		Events:    day,
		Groups:    groups,
		Markers:   GroupMarkers(groups),
		Labels:    LabeledSchedules(day),
		Endpoints: GetEndpoints(day, start, end, true),
		Durations: GetGroupDurations(day, start, end),
		Total:     GetTotalBasal(day, start, end),
	}
	for _, ev := range day {
		r.MaxRate = max(r.MaxRate, ev.Rate)
		if ref := ev.Suppressed.Reference(); ref != nil {
			r.MaxRate = max(r.MaxRate, ref.Rate)
		}
	}
	if r.Events == nil {
		r.Events = []model.BasalEvent{}
	}
	return r
}
