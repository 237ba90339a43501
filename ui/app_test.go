package ui

import (
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/yourloops/basalviz/config"
	"github.com/yourloops/basalviz/engine"
	"github.com/yourloops/basalviz/fixtures"
	"github.com/yourloops/basalviz/render"
	"github.com/yourloops/basalviz/util"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Model)
	}
	return m
}

func newTestModel() Model {
	return NewModel(engine.NewEngine(fixtures.ScheduledFlat), config.Default(), "flat.json", 0)
}

func TestDayNavigation(t *testing.T) {
	day := util.MsPerDay
	tests := []struct {
		name string
		keys []string
		want int64
	}{
		{"starts on first day", nil, -day},
		{"right", []string{"right"}, 0},
		{"right stops at last day", []string{"right", "right", "l"}, 0},
		{"left stops at first day", []string{"left", "h"}, -day},
		{"last then first", []string{"G", "g"}, -day},
		{"last", []string{"G"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(newTestModel(), tt.keys...)
			if m.report.Start != tt.want {
				t.Errorf("day start = %d, want %d", m.report.Start, tt.want)
			}
		})
	}
}

func TestNewModelStartDay(t *testing.T) {
	m := NewModel(engine.NewEngine(fixtures.ScheduledFlat), config.Default(), "flat.json", 5*util.MsPerHour)
	if m.report.Start != 0 {
		t.Errorf("day start = %d, want 0", m.report.Start)
	}
}

func TestHelpToggle(t *testing.T) {
	m := press(newTestModel(), "?")
	if !m.showHelp || !strings.Contains(m.View(), "Previous day") {
		t.Fatal("help not shown")
	}
	m = press(m, "x")
	if m.showHelp {
		t.Error("help not closed by a key")
	}
}

func TestQuit(t *testing.T) {
	_, cmd := newTestModel().Update(key("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestView(t *testing.T) {
	m := newTestModel()
	if got := m.View(); got != "Loading..." {
		t.Errorf("View() before size = %q", got)
	}
	next, _ := press(m, "right").Update(tea.WindowSizeMsg{Width: 100, Height: 24})
	out := ansi.Strip(next.(Model).View())
	for _, want := range []string{"basalviz", "flat.json", "Thu 01 Jan 1970", "(2/2)", "total 54 U", "Manual 24h00m (100%)"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
	if n := len(strings.Split(out, "\n")); n > 24 {
		t.Errorf("view has %d lines for a 24 line terminal", n)
	}
}

func TestViewNoData(t *testing.T) {
	m := NewModel(engine.NewEngine(nil), config.Default(), "empty.json", 0)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if out := next.(Model).View(); !strings.Contains(out, "No basal data in empty.json") {
		t.Errorf("View() = %q", out)
	}
	_, cmd := next.Update(key("s"))
	if cmd == nil {
		t.Error("save on empty data returned no status command")
	}
}

func TestStatusMessageExpires(t *testing.T) {
	next, cmd := newTestModel().Update(saveConfirmMsg{path: "x.json"})
	m := next.(Model)
	if m.saveMsg != "Saved: x.json" || cmd == nil {
		t.Fatalf("saveMsg = %q", m.saveMsg)
	}
	if !strings.Contains(m.renderStatusBar(), "Saved: x.json") {
		t.Error("status bar does not show the save")
	}

	next, _ = m.Update(clearStatusMsg(time.Now().Add(-time.Hour)))
	if next.(Model).saveMsg == "" {
		t.Error("stale clear message wiped a newer status")
	}
	next, _ = m.Update(clearStatusMsg(m.saveMsgTime))
	if next.(Model).saveMsg != "" {
		t.Error("status not cleared")
	}
}

func TestSaveChart(t *testing.T) {
	t.Chdir(t.TempDir())
	rep := engine.NewEngine(fixtures.AutomatedWithSuspend).Day(-util.MsPerDay)

	msg, ok := saveChart(rep, config.Default(), 0)().(saveConfirmMsg)
	if !ok || msg.err != nil {
		t.Fatalf("saveChart() = %+v", msg)
	}
	if msg.path != "basalviz-paths-19691231.json" {
		t.Errorf("path = %q", msg.path)
	}
	data, err := os.ReadFile(msg.path)
	if err != nil {
		t.Fatal(err)
	}
	var c render.Chart
	if err := json.Unmarshal(data, &c); err != nil {
		t.Fatal(err)
	}
	if len(c.Paths) != 3 || c.Width != config.Default().Chart.Width {
		t.Errorf("saved chart has %d paths, width %v", len(c.Paths), c.Width)
	}
}

func TestPinScale(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	m := press(newTestModel(), "f")
	if m.rateMax != 2.5 {
		t.Errorf("pinned rate max = %v, want 2.5", m.rateMax)
	}
	if got := config.Load().Chart.RateMax; got != 2.5 {
		t.Errorf("saved rate max = %v, want 2.5", got)
	}
	m = press(m, "F")
	if m.rateMax != 0 || config.Load().Chart.RateMax != 0 {
		t.Error("auto scale not restored")
	}
}
