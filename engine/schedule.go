package engine

import (
	"github.com/yourloops/basalviz/model"
	"github.com/yourloops/basalviz/util"
)

// minLabeledSegment is the shortest scheduled segment worth a rate label.
const minLabeledSegment = 60 * util.MsPerMinute

// ScheduleLabel is a rate annotation drawn under the basal chart.
type ScheduleLabel struct {
	UTC      int64   `json:"utc"`
	Rate     float64 `json:"rate"`
	Duration int64   `json:"duration"`
	Text     string  `json:"text"`
}

// LabeledSchedules collects one label per scheduled rate change. Short
// segments, zero rates and non-scheduled delivery are skipped; consecutive
// long segments at the same rate extend the previous label.
func LabeledSchedules(events []model.BasalEvent) []ScheduleLabel {
	var labels []ScheduleLabel
	var curRate float64

	for _, e := range events {
		if e.SubType != model.SubTypeScheduled || e.Rate <= 0 || e.Duration < minLabeledSegment {
			continue
		}
		switch {
		case e.Rate != curRate:
			labels = append(labels, ScheduleLabel{
				UTC:      e.UTC,
				Rate:     e.Rate,
				Duration: e.Duration,
				Text:     util.FormatRate(e.Rate),
			})
			curRate = e.Rate
		default:
			labels[len(labels)-1].Duration += e.Duration
		}
	}
	return labels
}
