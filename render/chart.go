package render

import (
	"github.com/yourloops/basalviz/engine"
	"github.com/yourloops/basalviz/model"
)

// ChartOptions sizes a day chart. RateMax of 0 fits the report's own peak.
type ChartOptions struct {
	Width             float64
	Height            float64
	RateMax           float64
	FlushBottomOffset float64
	MarkerRadius      float64
	Labels            map[model.DeliveryClass]string
}

// Chart is the full drawable output for one report.
type Chart struct {
	Start   int64                  `json:"start"`
	End     int64                  `json:"end"`
	Width   float64                `json:"width"`
	Height  float64                `json:"height"`
	RateMax float64                `json:"rateMax"`
	Paths   []model.PathDescriptor `json:"paths"`
	Groups  []GroupPath            `json:"groups"`
	Markers []MarkerShape          `json:"markers"`
}

// Scales returns the time and rate scales for a chart.
func (o ChartOptions) Scales(start, end int64, peak float64) (x, y LinearScale) {
	rateMax := o.RateMax
	if rateMax <= 0 {
		rateMax = peak
	}
	if rateMax <= 0 {
		rateMax = 1
	}
	return TimeScale(start, end, o.Width), RateScale(rateMax, o.Height)
}

// DrawReport renders every sequence of a day report plus group outlines and
// transition markers. The first malformed sequence aborts the chart.
func DrawReport(rep engine.DayReport, opts ChartOptions) (Chart, error) {
	x, y := opts.Scales(rep.Start, rep.End, rep.MaxRate)
	c := Chart{
		Start:   rep.Start,
		End:     rep.End,
		Width:   opts.Width,
		Height:  opts.Height,
		RateMax: y.Domain[1],
		Paths:   []model.PathDescriptor{},
	}
	seqOpts := SequencePathOptions{FlushBottomOffset: opts.FlushBottomOffset}
	for _, g := range rep.Groups {
		for _, seq := range g.Sequences {
			paths, err := GetBasalSequencePaths(seq, x, y, seqOpts)
			if err != nil {
				return Chart{}, err
			}
			c.Paths = append(c.Paths, paths...)
		}
	}
	c.Groups = GetBasalGroupPaths(rep.Groups, x, y, opts.FlushBottomOffset)
	c.Markers = PlaceMarkers(rep.Markers, x, y, opts.MarkerRadius, opts.Labels)
	return c, nil
}
