package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yourloops/basalviz/engine"
	"github.com/yourloops/basalviz/model"
	"github.com/yourloops/basalviz/render"
	"github.com/yourloops/basalviz/util"
)

const axisW = 5 // e.g. "2.25│"

// chartOpts sizes the terminal chart. rateMax of 0 auto-scales.
type chartOpts struct {
	width   int
	height  int
	rateMax float64
	labels  map[model.DeliveryClass]string
}

// column is what one terminal column of the chart shows.
type column struct {
	level       float64 // delivered rate in rows, NaN where no data
	class       model.DeliveryClass
	undelivered float64 // suppressed rate in rows, NaN where nothing was suppressed
	autoBorder  bool
}

// basalChart renders one day of basal delivery with sub-cell resolution.
// Delivered rate is filled in the colour of its delivery class; the rate a
// temp or suspend suppressed is traced with a dotted line; group transitions
// get a lettered marker above the plot.
//
//	Basal U/h                                 total 24.6 U
//	         m         a
//	 2.5│
//	    │▆▆▆▆▆▆▆▆┈┈┈┈┈┈▅▅▅▅▆▆▆▆▆
//	    │█████████     ██████████
//	   0└─────────────────────────
//	     2.25      1.75
//	    00:00  06:00  12:00  18:00
func basalChart(rep engine.DayReport, opts chartOpts) string {
	rows := max(opts.height, 2)
	chartW := max(opts.width-axisW-1, 10)
	rateMax := opts.rateMax
	if rateMax <= 0 {
		rateMax = niceRateMax(rep.MaxRate)
	}

	x := render.TimeScale(rep.Start, rep.End, float64(chartW))
	y := render.RateScale(rateMax, float64(rows))
	cols := sampleColumns(rep, x, y, chartW, rows)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Basal U/h"))
	total := "total " + rep.Total + " U"
	if gap := chartW + axisW - len("Basal U/h") - len(total); gap > 0 {
		sb.WriteString(strings.Repeat(" ", gap))
	} else {
		sb.WriteString("  ")
	}
	sb.WriteString(valueStyle.Render(total))
	sb.WriteString("\n")

	sb.WriteString(strings.Repeat(" ", axisW))
	sb.WriteString(markerRow(rep.Markers, x, y, chartW, opts.labels))
	sb.WriteString("\n")

	subBlocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	for row := rows - 1; row >= 0; row-- {
		label := ""
		if row == rows-1 {
			label = util.FormatRate(rateMax)
		}
		sb.WriteString(dimStyle.Render(fmt.Sprintf("%*s│", axisW-1, label)))

		for _, c := range cols {
			level := c.level
			if math.IsNaN(level) {
				level = 0
			}
			cellBottom := float64(row)
			cellTop := float64(row + 1)

			var ch rune
			switch {
			case level >= cellTop:
				ch = '█'
			case level <= cellBottom:
				ch = ' '
			default:
				idx := int((level - cellBottom) * 8)
				idx = min(max(idx, 0), len(subBlocks)-1)
				ch = subBlocks[idx]
			}

			if ch != '█' && borderRow(c.undelivered, rows) == row {
				sb.WriteString(undeliveredStyle(c.autoBorder).Render("┈"))
				continue
			}
			if ch == ' ' {
				sb.WriteRune(' ')
				continue
			}
			sb.WriteString(classStyle(c.class).Render(string(ch)))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(dimStyle.Render(fmt.Sprintf("%*s└", axisW-1, "0") + strings.Repeat("─", chartW)))
	sb.WriteString("\n")

	sched := blankRow(chartW)
	for _, l := range rep.Labels {
		placeText(sched, col(x, l.UTC, chartW), l.Text)
	}
	sb.WriteString(strings.Repeat(" ", axisW))
	sb.WriteString(labelStyle.Render(strings.TrimRight(string(sched), " ")))
	sb.WriteString("\n")

	times := blankRow(chartW)
	for t := rep.Start; t < rep.End; t += 6 * util.MsPerHour {
		placeText(times, col(x, t, chartW), util.Time(t).Format("15:04"))
	}
	sb.WriteString(strings.Repeat(" ", axisW))
	sb.WriteString(dimStyle.Render(strings.TrimRight(string(times), " ")))

	return sb.String()
}

// sampleColumns rasterizes the report's group outlines and undelivered
// borders onto chartW columns. Levels are measured in rows from the baseline.
func sampleColumns(rep engine.DayReport, x, y render.Scale, chartW, rows int) []column {
	cols := make([]column, chartW)
	for i := range cols {
		cols[i].level = math.NaN()
		cols[i].undelivered = math.NaN()
	}
	h := float64(rows)

	for _, g := range rep.Groups {
		p := render.BuildBasalPath(g.Events(), x, y, render.PathOptions{})
		for i, v := range rasterize(p, chartW) {
			if !math.IsNaN(v) {
				cols[i].level = h - v
				cols[i].class = g.Class
			}
		}

		for _, seq := range g.Sequences {
			if st := seq.SubType(); st != model.SubTypeTemp && st != model.SubTypeSuspend {
				continue
			}
			p, automated, _ := render.UndeliveredPath(seq, x, y, 0)
			for i, v := range rasterize(p, chartW) {
				if !math.IsNaN(v) {
					cols[i].undelivered = h - v
					cols[i].autoBorder = automated
				}
			}
		}
	}
	return cols
}

// rasterize samples the horizontal runs of a step path at column centres.
// Columns the path never covers hold NaN.
func rasterize(p render.Path, cols int) []float64 {
	out := make([]float64, cols)
	for i := range out {
		out[i] = math.NaN()
	}
	for i := 1; i < len(p); i++ {
		a, b := p[i-1], p[i]
		if b.Op != render.LineTo || a.Y != b.Y || b.X <= a.X {
			continue
		}
		lo := max(int(math.Ceil(a.X-0.5)), 0)
		hi := min(int(math.Ceil(b.X-0.5)), cols)
		for c := lo; c < hi; c++ {
			out[c] = b.Y
		}
	}
	return out
}

// borderRow returns the row holding the top edge of level, or -1 when
// there is nothing to trace.
func borderRow(level float64, rows int) int {
	if math.IsNaN(level) || level <= 0 {
		return -1
	}
	return min(int(math.Ceil(level))-1, rows-1)
}

func markerRow(markers []model.Marker, x, y render.Scale, chartW int, labels map[model.DeliveryClass]string) string {
	shapes := render.PlaceMarkers(markers, x, y, 0, labels)
	at := make(map[int]render.MarkerShape, len(shapes))
	for _, s := range shapes {
		at[min(max(int(s.X), 0), chartW-1)] = s
	}
	var sb strings.Builder
	for c := 0; c < chartW; c++ {
		s, ok := at[c]
		if !ok {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteString(classStyle(s.Class).Render(s.Label))
	}
	return strings.TrimRight(sb.String(), " ")
}

func col(x render.Scale, utc int64, chartW int) int {
	return min(max(int(x.Map(float64(utc))), 0), chartW-1)
}

func blankRow(n int) []rune {
	return []rune(strings.Repeat(" ", n))
}

// placeText writes s into row at c when it fits without touching earlier
// text; a one-cell gap is kept on the left.
func placeText(row []rune, c int, s string) bool {
	r := []rune(s)
	if c+len(r) > len(row) {
		c = len(row) - len(r)
	}
	if c < 0 {
		return false
	}
	for i := max(c-1, 0); i < c+len(r); i++ {
		if row[i] != ' ' {
			return false
		}
	}
	copy(row[c:], r)
	return true
}

// niceRateMax picks a rounded rate ceiling with some headroom over peak.
func niceRateMax(peak float64) float64 {
	if peak <= 0 {
		return 1
	}
	target := peak * 1.1
	nice := []float64{0.5, 1, 1.5, 2, 2.5, 3, 4, 5, 6, 8, 10, 12, 15, 20, 25, 30, 40, 50}
	for _, n := range nice {
		if target <= n {
			return n
		}
	}
	return math.Ceil(target/10) * 10
}

// statsLine summarizes delivery time per class for the day.
func statsLine(rep engine.DayReport, labels map[model.DeliveryClass]string) string {
	d := rep.Durations
	total := d.Automated + d.Manual
	pct := func(ms int64) float64 {
		if total == 0 {
			return 0
		}
		return float64(ms) / float64(total) * 100
	}
	part := func(class model.DeliveryClass, ms int64) string {
		name := labels[class]
		if name == "" {
			name = string(class)
		}
		return classStyle(class).Render("■ ") +
			labelStyle.Render(name+" ") +
			valueStyle.Render(fmt.Sprintf("%s (%.0f%%)", util.FormatDuration(ms), pct(ms)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		part(model.ClassAutomated, d.Automated), "   ",
		part(model.ClassManual, d.Manual))
}
