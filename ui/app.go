package ui

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yourloops/basalviz/config"
	"github.com/yourloops/basalviz/engine"
	"github.com/yourloops/basalviz/render"
	"github.com/yourloops/basalviz/util"
)

const statusTTL = 5 * time.Second

// saveConfirmMsg is sent after a save completes.
type saveConfirmMsg struct {
	path string
	err  error
}

// clearStatusMsg expires the status line set at the given time.
type clearStatusMsg time.Time

// Model is the bubbletea model.
type Model struct {
	engine *engine.Engine
	cfg    config.Config
	source string
	width  int
	height int

	days   []int64
	day    int
	report engine.DayReport

	// rateMax pins the vertical scale; 0 auto-scales per day.
	rateMax float64

	showHelp bool

	// Save / status feedback
	saveMsg     string
	saveMsgTime time.Time
}

// NewModel opens the viewer on the first day of data, or on the day holding
// start when start is non-zero.
func NewModel(eng *engine.Engine, cfg config.Config, source string, start int64) Model {
	m := Model{
		engine:  eng,
		cfg:     cfg,
		source:  source,
		days:    eng.Days(),
		rateMax: cfg.Chart.RateMax,
	}
	if start != 0 {
		want := util.DayStart(start)
		for i, d := range m.days {
			if d <= want {
				m.day = i
			}
		}
	}
	m.load()
	return m
}

func (m *Model) load() {
	if len(m.days) == 0 {
		m.report = engine.DayReport{}
		return
	}
	m.report = m.engine.Day(m.days[m.day])
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) setStatus(msg string) tea.Cmd {
	now := time.Now()
	m.saveMsg = msg
	m.saveMsgTime = now
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg(now) })
}

// saveChart writes the current day's chart paths to a JSON file, sized by
// the configured chart rather than the terminal.
func saveChart(rep engine.DayReport, cfg config.Config, rateMax float64) tea.Cmd {
	return func() tea.Msg {
		chart, err := render.DrawReport(rep, render.ChartOptions{
			Width:             cfg.Chart.Width,
			Height:            cfg.Chart.Height,
			RateMax:           rateMax,
			FlushBottomOffset: cfg.Chart.FlushBottomOffset,
			MarkerRadius:      cfg.Chart.MarkerRadius,
			Labels:            cfg.ClassLabels(),
		})
		if err != nil {
			return saveConfirmMsg{err: err}
		}

		path := fmt.Sprintf("basalviz-paths-%s.json", util.Time(rep.Start).Format("20060102"))
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return saveConfirmMsg{err: err}
		}
		defer f.Close()

		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		if err := enc.Encode(chart); err != nil {
			return saveConfirmMsg{err: err}
		}
		return saveConfirmMsg{path: path}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showHelp {
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			default:
				m.showHelp = false
			}
			return m, nil
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "?":
			m.showHelp = true
		case "left", "h":
			if m.day > 0 {
				m.day--
				m.load()
			}
		case "right", "l":
			if m.day < len(m.days)-1 {
				m.day++
				m.load()
			}
		case "home", "g":
			m.day = 0
			m.load()
		case "end", "G":
			m.day = max(len(m.days)-1, 0)
			m.load()
		case "s":
			if len(m.days) == 0 {
				cmd := m.setStatus("Nothing to save")
				return m, cmd
			}
			return m, saveChart(m.report, m.cfg, m.rateMax)
		case "f":
			m.rateMax = niceRateMax(m.report.MaxRate)
			if err := saveRateMax(m.rateMax); err != nil {
				cmd := m.setStatus(fmt.Sprintf("Scale pinned, save failed: %v", err))
				return m, cmd
			}
			cmd := m.setStatus(fmt.Sprintf("Scale pinned at %s U/h", util.FormatRate(m.rateMax)))
			return m, cmd
		case "F":
			m.rateMax = 0
			if err := saveRateMax(0); err != nil {
				cmd := m.setStatus(fmt.Sprintf("Auto scale, save failed: %v", err))
				return m, cmd
			}
			cmd := m.setStatus("Auto scale")
			return m, cmd
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case saveConfirmMsg:
		if msg.err != nil {
			cmd := m.setStatus(fmt.Sprintf("Save failed: %v", msg.err))
			return m, cmd
		}
		cmd := m.setStatus(fmt.Sprintf("Saved: %s", msg.path))
		return m, cmd
	case clearStatusMsg:
		if time.Time(msg).Equal(m.saveMsgTime) {
			m.saveMsg = ""
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.showHelp {
		return m.renderHelp()
	}
	if m.width == 0 {
		return "Loading..."
	}
	if len(m.days) == 0 {
		return "No basal data in " + m.source + "\n" + m.renderStatusBar()
	}

	var sb strings.Builder
	day := util.Time(m.report.Start)
	sb.WriteString(titleStyle.Render("basalviz"))
	sb.WriteString(dimStyle.Render(" " + m.source + "  "))
	sb.WriteString(headerStyle.Render(day.Format("Mon 02 Jan 2006")))
	sb.WriteString(dimStyle.Render(fmt.Sprintf("  (%d/%d)", m.day+1, len(m.days))))
	sb.WriteString("\n")

	// header, marker row, axis, schedule and time rows, stats, status bar
	chartH := max(m.height-10, 4)
	chart := basalChart(m.report, chartOpts{
		width:   m.width - 4,
		height:  chartH,
		rateMax: m.rateMax,
		labels:  m.cfg.ClassLabels(),
	})
	sb.WriteString(panelStyle.Render(chart))
	sb.WriteString("\n")
	sb.WriteString(statsLine(m.report, m.cfg.ClassLabels()))

	lines := strings.Split(sb.String(), "\n")
	if maxLines := m.height - 1; maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return strings.Join(lines, "\n") + "\n" + m.renderStatusBar()
}

func (m Model) renderStatusBar() string {
	if m.saveMsg != "" && time.Since(m.saveMsgTime) < statusTTL {
		style := okStyle
		if strings.Contains(m.saveMsg, "failed") {
			style = critStyle
		}
		return style.Render(m.saveMsg)
	}
	return helpStyle.Render("←/→ day  g/G first/last  s save paths  f/F pin/auto scale  ? help  q quit")
}

func (m Model) renderHelp() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("basalviz - Basal Delivery Viewer"))
	sb.WriteString("\n\n")
	sb.WriteString(headerStyle.Render("Navigation"))
	sb.WriteString("\n")
	sb.WriteString("  ← / h     Previous day\n")
	sb.WriteString("  → / l     Next day\n")
	sb.WriteString("  g / Home  First day\n")
	sb.WriteString("  G / End   Last day\n")
	sb.WriteString("\n")
	sb.WriteString(headerStyle.Render("Controls"))
	sb.WriteString("\n")
	sb.WriteString("  s         Save the day's chart paths to JSON\n")
	sb.WriteString("  f         Pin the rate scale and remember it\n")
	sb.WriteString("  F         Return to auto scale\n")
	sb.WriteString("  ?         Toggle this help\n")
	sb.WriteString("  q/Ctrl+C  Quit\n")
	sb.WriteString("\n")
	sb.WriteString(headerStyle.Render("Chart"))
	sb.WriteString("\n")
	sb.WriteString("  " + automatedStyle.Render("█") + "         Automated delivery\n")
	sb.WriteString("  " + manualStyle.Render("█") + "         Scheduled, temp or suspended delivery\n")
	sb.WriteString("  " + borderStyle.Render("┈") + "         Rate suppressed by a temp or suspend\n")
	sb.WriteString("  " + autoBorderStyle.Render("┈") + "         Automated rate suppressed by a suspend\n")
	sb.WriteString("  A / M     Marker: switch to automated / manual delivery\n")
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("Press any key to close"))
	return sb.String()
}
