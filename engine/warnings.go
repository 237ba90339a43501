package engine

import (
	"fmt"

	"github.com/yourloops/basalviz/model"
	"github.com/yourloops/basalviz/util"
)

// Basal rate ceilings in U/h. Pumps cap basal at 35 U/h.
const (
	rateWarn = 10.0
	rateCrit = 35.0
)

// finding counts occurrences of one problem and remembers the first.
type finding struct {
	n     int
	first int64
}

func (f *finding) add(utc int64) {
	if f.n == 0 {
		f.first = utc
	}
	f.n++
}

func (f finding) value() string {
	return fmt.Sprintf("%d, first at %s", f.n, util.Time(f.first).Format("2006-01-02 15:04"))
}

// ComputeWarnings checks a normalized basal series for problems that would
// make its charts misleading.
func ComputeWarnings(events []model.BasalEvent) []model.Warning {
	var warns []model.Warning
	var overlaps, gaps, badDur, unknown, noSupp, suspRate finding
	var longestGap int64
	peak, peakAt := 0.0, int64(0)

	for i, e := range events {
		if i > 0 {
			prev := events[i-1]
			switch {
			case e.UTC < prev.End():
				overlaps.add(e.UTC)
			case e.UTC > prev.End():
				gaps.add(prev.End())
				longestGap = max(longestGap, e.UTC-prev.End())
			}
		}
		if e.Duration <= 0 {
			badDur.add(e.UTC)
		}
		k := e.Kind()
		if !k.Valid() {
			unknown.add(e.UTC)
		}
		if (k == model.SubTypeTemp || k == model.SubTypeSuspend) && e.Suppressed == nil {
			noSupp.add(e.UTC)
		}
		if k == model.SubTypeSuspend && e.Rate > 0 {
			suspRate.add(e.UTC)
		}
		if e.Rate > peak {
			peak, peakAt = e.Rate, e.UTC
		}
	}

	// Overlapping segments double-count delivery
	if overlaps.n > 0 {
		warns = append(warns, model.Warning{
			Severity: "crit",
			Signal:   "overlap",
			Detail:   "Segments start before the previous one ends",
			Value:    overlaps.value(),
			UTC:      overlaps.first,
		})
	}
	if badDur.n > 0 {
		warns = append(warns, model.Warning{
			Severity: "crit",
			Signal:   "duration",
			Detail:   "Segments with zero or negative duration",
			Value:    badDur.value(),
			UTC:      badDur.first,
		})
	}
	if unknown.n > 0 {
		warns = append(warns, model.Warning{
			Severity: "crit",
			Signal:   "subType",
			Detail:   "Segments with an unknown delivery type cannot be drawn",
			Value:    unknown.value(),
			UTC:      unknown.first,
		})
	}
	if noSupp.n > 0 {
		warns = append(warns, model.Warning{
			Severity: "warn",
			Signal:   "suppressed",
			Detail:   "Temp or suspend without the rate it replaced",
			Value:    noSupp.value(),
			UTC:      noSupp.first,
		})
	}
	if suspRate.n > 0 {
		warns = append(warns, model.Warning{
			Severity: "warn",
			Signal:   "suspend rate",
			Detail:   "Suspended segments report a non-zero rate",
			Value:    suspRate.value(),
			UTC:      suspRate.first,
		})
	}
	if gaps.n > 0 {
		warns = append(warns, model.Warning{
			Severity: severity(util.Hours(longestGap), 1, 24),
			Signal:   "gaps",
			Detail:   fmt.Sprintf("Missing data, longest %s", util.FormatDuration(longestGap)),
			Value:    gaps.value(),
			UTC:      gaps.first,
		})
	}
	if peak >= rateWarn {
		warns = append(warns, model.Warning{
			Severity: severity(peak, rateWarn, rateCrit),
			Signal:   "rate",
			Detail:   "Unusually high basal rate",
			Value:    fmt.Sprintf("%s U/h at %s", util.FormatRate(peak), util.Time(peakAt).Format("2006-01-02 15:04")),
			UTC:      peakAt,
		})
	}

	return warns
}

func severity(value, warnThresh, critThresh float64) string {
	if value >= critThresh {
		return "crit"
	}
	if value >= warnThresh {
		return "warn"
	}
	return "info"
}
