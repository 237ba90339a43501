package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/yourloops/basalviz/config"
	"github.com/yourloops/basalviz/engine"
	"github.com/yourloops/basalviz/fixtures"
	"github.com/yourloops/basalviz/model"
	"github.com/yourloops/basalviz/util"
)

func findCheck(r DoctorReport, category, name string) (CheckResult, bool) {
	for _, c := range r.Checks {
		if c.Category == category && c.Name == name {
			return c, true
		}
	}
	return CheckResult{}, false
}

func TestDoctorReport(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	hour := util.MsPerHour
	overlapping := []model.BasalEvent{
		{ID: "a", Type: model.BasalType, SubType: model.SubTypeScheduled, UTC: 0, Duration: 2 * hour, Rate: 1},
		{ID: "b", Type: model.BasalType, SubType: model.SubTypeScheduled, UTC: hour, Duration: hour, Rate: 1},
	}
	unknown := []model.BasalEvent{
		{ID: "a", Type: model.BasalType, SubType: "bolus", UTC: 0, Duration: hour, Rate: 1},
	}

	tests := []struct {
		name     string
		events   []model.BasalEvent
		stats    engine.LoadStats
		worst    CheckStatus
		category string
		check    string
		status   CheckStatus
	}{
		{"clean", fixtures.SimpleSuspend, engine.LoadStats{}, CheckOK, "Series", "continuity", CheckOK},
		{"marked gaps", fixtures.Discontinuous, engine.LoadStats{}, CheckOK, "Series", "gaps", CheckOK},
		{"skipped lines", fixtures.ScheduledFlat, engine.LoadStats{Skipped: 3}, CheckWarn, "Input", "malformed lines", CheckWarn},
		{"overlap", overlapping, engine.LoadStats{}, CheckCrit, "Series", "overlap", CheckCrit},
		{"undrawable", unknown, engine.LoadStats{}, CheckCrit, "Render", "days", CheckCrit},
		{"empty", nil, engine.LoadStats{}, CheckWarn, "Render", "days", CheckSkip},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := doctorReport(tt.events, tt.stats, "test", config.Default())
			if r.WorstStatus != tt.worst {
				t.Errorf("worst = %s, want %s: %+v", r.WorstStatus, tt.worst, r.Checks)
			}
			c, ok := findCheck(r, tt.category, tt.check)
			if !ok {
				t.Fatalf("no %s/%s check in %+v", tt.category, tt.check, r.Checks)
			}
			if c.Status != tt.status {
				t.Errorf("%s/%s = %s (%s), want %s", tt.category, tt.check, c.Status, c.Detail, tt.status)
			}
		})
	}
}

func TestRunDoctorFormats(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	clean := doctorReport(fixtures.ScheduledFlat, engine.LoadStats{}, "fixture:scheduledFlat", config.Default())

	var buf bytes.Buffer
	if err := runDoctor(&buf, clean, false, false); err != nil {
		t.Fatalf("clean report: %v", err)
	}
	out := ansi.Strip(buf.String())
	for _, want := range []string{"basalviz doctor", "fixture:scheduledFlat", "== Input", "2 days drawable", "All checks passed"} {
		if !strings.Contains(out, want) {
			t.Errorf("CLI output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := runDoctor(&buf, clean, false, true); err != nil {
		t.Fatal(err)
	}
	if md := buf.String(); !strings.Contains(md, "| Status | Category |") || !strings.Contains(md, "**Overall:** OK") {
		t.Errorf("markdown:\n%s", md)
	}

	buf.Reset()
	if err := runDoctor(&buf, clean, true, false); err != nil {
		t.Fatal(err)
	}
	var decoded DoctorReport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Source != "fixture:scheduledFlat" || len(decoded.Checks) != len(clean.Checks) {
		t.Errorf("json round trip = %+v", decoded)
	}
}

func TestRunDoctorExitCode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "basal.jsonl")
	data := `{"type":"basal","subType":"scheduled","utc":0,"duration":7200000,"rate":1}
not json
{"type":"basal","subType":"scheduled","utc":3600000,"duration":3600000,"rate":1}
`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}
	out, _, err := runArgs(t, "-doctor", path)
	var exit ExitCodeError
	if !errors.As(err, &exit) || exit.Code != 2 {
		t.Fatalf("err = %v, want exit 2", err)
	}
	plain := ansi.Strip(out)
	for _, want := range []string{"1 lines skipped", "overlap", "Critical issues found"} {
		if !strings.Contains(plain, want) {
			t.Errorf("output missing %q:\n%s", want, plain)
		}
	}
}
