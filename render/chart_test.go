package render

import (
	"errors"
	"testing"

	"github.com/yourloops/basalviz/engine"
	"github.com/yourloops/basalviz/fixtures"
	"github.com/yourloops/basalviz/model"
	"github.com/yourloops/basalviz/util"
)

func chartOptions() ChartOptions {
	return ChartOptions{
		Width:             1440,
		Height:            100,
		FlushBottomOffset: DefaultFlushBottomOffset,
		MarkerRadius:      DefaultMarkerRadius,
	}
}

func TestDrawReport(t *testing.T) {
	rep := engine.NewEngine(fixtures.AutomatedWithSuspend).Day(-util.MsPerDay)
	c, err := DrawReport(rep, chartOptions())
	if err != nil {
		t.Fatalf("DrawReport: %v", err)
	}

	wantTypes := []string{
		model.PathFillAutomated,
		model.PathBorderUndeliveredAutomated,
		model.PathFillAutomated,
	}
	if len(c.Paths) != len(wantTypes) {
		t.Fatalf("got %d paths, want %d", len(c.Paths), len(wantTypes))
	}
	for i, p := range c.Paths {
		if p.Type != wantTypes[i] {
			t.Errorf("path %d type = %q, want %q", i, p.Type, wantTypes[i])
		}
	}
	if len(c.Groups) != 3 || len(c.Markers) != 2 {
		t.Errorf("got %d group outlines, %d markers; want 3, 2", len(c.Groups), len(c.Markers))
	}
	if c.RateMax != 2.25 {
		t.Errorf("rate max = %v, want the report peak 2.25", c.RateMax)
	}
}

func TestDrawReportFixedRateMax(t *testing.T) {
	opts := chartOptions()
	opts.RateMax = 5
	c, err := DrawReport(engine.NewEngine(fixtures.ScheduledFlat).Day(0), opts)
	if err != nil {
		t.Fatalf("DrawReport: %v", err)
	}
	if c.RateMax != 5 {
		t.Errorf("rate max = %v, want 5", c.RateMax)
	}
	// 2.25 of 5 U/h on a 100 tall chart.
	if want := "M 0,99.5 L 0,55 L 1440,55 L 1440,99.5"; c.Paths[0].D != want {
		t.Errorf("d = %q, want %q", c.Paths[0].D, want)
	}
}

func TestDrawReportEmpty(t *testing.T) {
	c, err := DrawReport(engine.NewEngine(nil).Day(0), chartOptions())
	if err != nil {
		t.Fatalf("DrawReport: %v", err)
	}
	if c.Paths == nil || len(c.Paths) != 0 || len(c.Groups) != 0 || len(c.Markers) != 0 {
		t.Errorf("empty chart = %+v", c)
	}
	if c.RateMax != 1 {
		t.Errorf("rate max = %v, want fallback 1", c.RateMax)
	}
}

func TestDrawReportUnknownSubType(t *testing.T) {
	events := []model.BasalEvent{{ID: "x", Type: model.BasalType, SubType: "bolus", UTC: 0, Duration: util.MsPerHour, Rate: 1}}
	_, err := DrawReport(engine.NewEngine(events).Day(0), chartOptions())
	if !errors.Is(err, ErrUnknownSubType) {
		t.Errorf("err = %v, want ErrUnknownSubType", err)
	}
}
