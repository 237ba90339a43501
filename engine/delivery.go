package engine

import (
	"github.com/shopspring/decimal"

	"github.com/yourloops/basalviz/model"
	"github.com/yourloops/basalviz/util"
)

// Endpoint is one edge of a time window and the segment index covering it.
type Endpoint struct {
	UTC   int64 `json:"utc"`
	Index int   `json:"index"`
}

// Endpoints locates a [start, end] window within a basal series.
type Endpoints struct {
	Start Endpoint `json:"start"`
	End   Endpoint `json:"end"`
}

// GroupDurations holds automated and manual delivery time in ms.
type GroupDurations struct {
	Automated int64 `json:"automated"`
	Manual    int64 `json:"manual"`
}

func (g *GroupDurations) add(class model.DeliveryClass, ms int64) {
	if class == model.ClassAutomated {
		g.Automated += ms
	} else {
		g.Manual += ms
	}
}

// GetEndpoints finds the first segment overlapping start and the last
// segment overlapping end. A missing segment yields index -1. With
// optionalExtents, segments that merely fall inside the window count too,
// so data that starts late or ends early still produces indices.
func GetEndpoints(events []model.BasalEvent, start, end int64, optionalExtents bool) Endpoints {
	startIdx := -1
	for i, e := range events {
		if (optionalExtents || e.UTC <= start) && start <= e.End() {
			startIdx = i
			break
		}
	}

	endIdx := -1
	for i := len(events) - 1; i >= 0; i-- {
		e := events[i]
		if e.UTC <= end && (optionalExtents || end <= e.End()) {
			endIdx = i
			break
		}
	}

	return Endpoints{
		Start: Endpoint{UTC: start, Index: startIdx},
		End:   Endpoint{UTC: end, Index: endIdx},
	}
}

// overlap returns the ms of e that fall inside [start, end).
func overlap(e model.BasalEvent, start, end int64) int64 {
	return max(min(e.End(), end)-max(e.UTC, start), 0)
}

// GetGroupDurations returns the automated and manual time inside [start, end].
// Classes come from PathGroupType, so a suspend of automated delivery counts
// as manual time, matching how the chart groups it.
func GetGroupDurations(events []model.BasalEvent, start, end int64) GroupDurations {
	var out GroupDurations
	ep := GetEndpoints(events, start, end, true)
	if ep.Start.Index < 0 || ep.End.Index < 0 {
		return out
	}
	for i := ep.Start.Index; i <= ep.End.Index; i++ {
		out.add(PathGroupType(events[i]), overlap(events[i], start, end))
	}
	return out
}

// GetTotalBasal sums the dose delivered inside [start, end), clipping every
// segment to the window.
func GetTotalBasal(events []model.BasalEvent, start, end int64) string {
	total := decimal.Zero
	for _, e := range events {
		total = total.Add(segmentDose(overlap(e, start, end), e.Rate))
	}
	return total.Round(3).String()
}

// GetSegmentDose returns the units delivered at rate over durationMs.
func GetSegmentDose(durationMs int64, rate float64) float64 {
	f, _ := segmentDose(durationMs, rate).Float64()
	return f
}

func segmentDose(durationMs int64, rate float64) decimal.Decimal {
	hours := decimal.NewFromInt(durationMs).Div(decimal.NewFromInt(util.MsPerHour))
	return hours.Mul(decimal.NewFromFloat(rate))
}

// clippedDuration trims the first segment to the window start and the last
// to the window end. Inner segments count in full, and a single segment is
// only trimmed at the start; use GetTotalBasal for an exact window total.
func clippedDuration(events []model.BasalEvent, i int, window [2]int64) int64 {
	e := events[i]
	switch {
	case i == 0:
		return min(e.End()-window[0], e.Duration)
	case i == len(events)-1:
		return min(window[1]-e.UTC, e.Duration)
	}
	return e.Duration
}

// GetTotalBasalFromEndpoints sums the dose delivered between two endpoints
// and formats it with at most three decimals.
func GetTotalBasalFromEndpoints(events []model.BasalEvent, window [2]int64) string {
	total := decimal.Zero
	for i, e := range events {
		total = total.Add(segmentDose(clippedDuration(events, i, window), e.Rate))
	}
	return total.Round(3).String()
}

// GetBasalGroupDurationsFromEndpoints splits the time between two endpoints
// into automated and manual delivery, clipping like GetTotalBasalFromEndpoints.
func GetBasalGroupDurationsFromEndpoints(events []model.BasalEvent, window [2]int64) GroupDurations {
	var out GroupDurations
	for i, e := range events {
		out.add(PathGroupType(e), clippedDuration(events, i, window))
	}
	return out
}
