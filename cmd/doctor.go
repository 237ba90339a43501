package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/yourloops/basalviz/config"
	"github.com/yourloops/basalviz/engine"
	"github.com/yourloops/basalviz/model"
	"github.com/yourloops/basalviz/render"
	"github.com/yourloops/basalviz/util"
)

// ── ANSI color/style codes ──────────────────────────────────────────────────

const (
	R = "\033[0m" // reset
	B = "\033[1m" // bold
	D = "\033[2m" // dim

	FCyn  = "\033[36m"
	FBRed = "\033[91m"
	FBGrn = "\033[92m"
	FBYel = "\033[93m"
	FBWht = "\033[97m"
	BBlu  = "\033[44m"
)

func titleLine(t string) string {
	pad := max(78-len(t)-2, 0)
	return fmt.Sprintf("%s%s== %s %s%s", B, FCyn, t, strings.Repeat("=", pad), R)
}

func hr() string {
	return fmt.Sprintf("%s%s%s", D, strings.Repeat("-", 78), R)
}

// CheckStatus represents the severity of a doctor check result.
type CheckStatus int

const (
	CheckOK   CheckStatus = 0
	CheckWarn CheckStatus = 1
	CheckCrit CheckStatus = 2
	CheckSkip CheckStatus = 3
)

func (s CheckStatus) String() string {
	switch s {
	case CheckOK:
		return "OK"
	case CheckWarn:
		return "WARN"
	case CheckCrit:
		return "CRIT"
	case CheckSkip:
		return "SKIP"
	}
	return "UNKNOWN"
}

// CheckResult holds the outcome of a single check.
type CheckResult struct {
	Category string      `json:"category"`
	Name     string      `json:"name"`
	Status   CheckStatus `json:"status"`
	Detail   string      `json:"detail"`
	Advice   string      `json:"advice,omitempty"`
}

// DoctorReport holds the full check output for one input.
type DoctorReport struct {
	Timestamp   time.Time     `json:"timestamp"`
	Source      string        `json:"source"`
	Checks      []CheckResult `json:"checks"`
	WorstStatus CheckStatus   `json:"worst_status"`
}

// ExitCodeError signals a non-zero exit code without calling os.Exit directly.
type ExitCodeError struct{ Code int }

func (e ExitCodeError) Error() string { return fmt.Sprintf("exit %d", e.Code) }

var warningAdvice = map[string]string{
	"overlap":      "Re-export the series; overlapping segments double-count insulin",
	"duration":     "Drop or repair zero-length segments before charting",
	"subType":      "Only scheduled, temp, automated and suspend segments can be charted",
	"suppressed":   "The undelivered border is drawn at 0 U/h for these segments",
	"suspend rate": "Check the device export; a suspend should deliver nothing",
	"gaps":         "Charts break at each gap",
	"rate":         "Pin the rate axis with -rate-max to keep other days readable",
}

// doctorReport runs every check over a loaded series.
func doctorReport(events []model.BasalEvent, stats engine.LoadStats, source string, cfg config.Config) DoctorReport {
	report := DoctorReport{
		Timestamp: time.Now(),
		Source:    source,
	}
	report.Checks = append(report.Checks, checkInput(events, stats)...)
	report.Checks = append(report.Checks, checkSeries(events)...)
	report.Checks = append(report.Checks, checkRender(events, cfg)...)
	report.Checks = append(report.Checks, checkConfig(cfg)...)

	for _, c := range report.Checks {
		if c.Status < CheckSkip && c.Status > report.WorstStatus {
			report.WorstStatus = c.Status
		}
	}
	return report
}

func checkInput(events []model.BasalEvent, stats engine.LoadStats) []CheckResult {
	var out []CheckResult
	if len(events) == 0 {
		out = append(out, CheckResult{
			Category: "Input", Name: "events", Status: CheckWarn,
			Detail: "no basal events",
			Advice: "Check the export holds records with type \"basal\"",
		})
	} else {
		span := events[len(events)-1].End() - events[0].UTC
		out = append(out, CheckResult{
			Category: "Input", Name: "events", Status: CheckOK,
			Detail: fmt.Sprintf("%d events over %.1fh", len(events), util.Hours(span)),
		})
	}

	if stats.Skipped > 0 {
		out = append(out, CheckResult{
			Category: "Input", Name: "malformed lines", Status: CheckWarn,
			Detail: fmt.Sprintf("%d lines skipped", stats.Skipped),
			Advice: "Each line of a .jsonl export must be one JSON object",
		})
	} else {
		out = append(out, CheckResult{Category: "Input", Name: "malformed lines", Status: CheckOK, Detail: "none"})
	}

	ids := CheckResult{Category: "Input", Name: "ids", Status: CheckOK, Detail: "all events carry an id"}
	if stats.AssignedIDs > 0 {
		ids.Detail = fmt.Sprintf("%d ids generated", stats.AssignedIDs)
		ids.Advice = "Generated ids change on every load"
	}
	return append(out, ids)
}

func checkSeries(events []model.BasalEvent) []CheckResult {
	warns := engine.ComputeWarnings(events)
	if len(warns) == 0 {
		return []CheckResult{{Category: "Series", Name: "continuity", Status: CheckOK, Detail: "no problems found"}}
	}
	out := make([]CheckResult, 0, len(warns))
	for _, w := range warns {
		status := CheckOK
		switch w.Severity {
		case "warn":
			status = CheckWarn
		case "crit":
			status = CheckCrit
		}
		out = append(out, CheckResult{
			Category: "Series",
			Name:     w.Signal,
			Status:   status,
			Detail:   w.Detail + ": " + w.Value,
			Advice:   warningAdvice[w.Signal],
		})
	}
	return out
}

// checkRender draws every day the way -paths would.
func checkRender(events []model.BasalEvent, cfg config.Config) []CheckResult {
	eng := engine.NewEngine(events)
	days := eng.Days()
	if len(days) == 0 {
		return []CheckResult{{Category: "Render", Name: "days", Status: CheckSkip, Detail: "nothing to draw"}}
	}
	opts := chartOptions(cfg)
	var failed []string
	var firstErr error
	for _, d := range days {
		if _, err := render.DrawReport(eng.Day(d), opts); err != nil {
			failed = append(failed, util.Time(d).Format("2006-01-02"))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if len(failed) == 0 {
		return []CheckResult{{
			Category: "Render", Name: "days", Status: CheckOK,
			Detail: fmt.Sprintf("%d days drawable", len(days)),
		}}
	}
	return []CheckResult{{
		Category: "Render", Name: "days", Status: CheckCrit,
		Detail: fmt.Sprintf("%d of %d days fail: %s\n%v", len(failed), len(days), strings.Join(failed, ", "), firstErr),
	}}
}

func checkConfig(cfg config.Config) []CheckResult {
	p := config.Path()
	if p == "" {
		return []CheckResult{{Category: "Config", Name: "file", Status: CheckSkip, Detail: "no home directory"}}
	}
	scale := "auto"
	if cfg.Chart.RateMax > 0 {
		scale = util.FormatRate(cfg.Chart.RateMax) + " U/h"
	}
	return []CheckResult{{
		Category: "Config", Name: "file", Status: CheckOK,
		Detail: fmt.Sprintf("%s\nchart %gx%g, rate axis %s", p, cfg.Chart.Width, cfg.Chart.Height, scale),
	}}
}

// runDoctor checks the input and writes the report in the requested format.
func runDoctor(w io.Writer, report DoctorReport, jsonMode, mdMode bool) error {
	if jsonMode {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	if mdMode {
		fmt.Fprint(w, renderDoctorMarkdown(report))
		return nil
	}

	renderDoctorCLI(w, report)

	if report.WorstStatus == CheckCrit {
		return ExitCodeError{Code: 2}
	}
	if report.WorstStatus == CheckWarn {
		return ExitCodeError{Code: 1}
	}
	return nil
}

func renderDoctorCLI(w io.Writer, report DoctorReport) {
	ts := report.Timestamp.Format("2006-01-02 15:04:05")
	fmt.Fprintf(w, "\n %s%s basalviz doctor v%s %s - %s%s%s  %s%s%s\n\n",
		B, BBlu+FBWht, Version, R,
		B, report.Source, R,
		D, ts, R)

	const nameW = 16

	lastCategory := ""
	for _, c := range report.Checks {
		if c.Category != lastCategory {
			fmt.Fprintln(w, titleLine(c.Category))
			lastCategory = c.Category
		}

		var icon string
		switch c.Status {
		case CheckOK:
			icon = fmt.Sprintf("%s✓%s", FBGrn, R)
		case CheckWarn:
			icon = fmt.Sprintf("%s⚠%s", FBYel, R)
		case CheckCrit:
			icon = fmt.Sprintf("%s%s✗%s", B, FBRed, R)
		case CheckSkip:
			icon = fmt.Sprintf("%s○%s", D, R)
		}

		name := c.Name
		if len(name) > nameW {
			name = name[:nameW]
		}
		padded := name + strings.Repeat(" ", nameW-len(name))

		lines := strings.Split(c.Detail, "\n")
		fmt.Fprintf(w, " %s %s%s%s  %s\n", icon, B, padded, R, lines[0])
		indent := strings.Repeat(" ", nameW+5)
		for _, extra := range lines[1:] {
			fmt.Fprintf(w, "%s%s\n", indent, extra)
		}
		if c.Advice != "" {
			fmt.Fprintf(w, "%s%s→ %s%s\n", indent, D, c.Advice, R)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, hr())
	switch report.WorstStatus {
	case CheckOK:
		fmt.Fprintf(w, " %s%s✓ All checks passed%s\n", B, FBGrn, R)
	case CheckWarn:
		fmt.Fprintf(w, " %s%s⚠ Some warnings detected%s\n", B, FBYel, R)
	case CheckCrit:
		fmt.Fprintf(w, " %s%s✗ Critical issues found%s\n", B, FBRed, R)
	}
	fmt.Fprintln(w)
}

func renderDoctorMarkdown(report DoctorReport) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# basalviz Doctor Report: %s\n\n", report.Source))
	sb.WriteString(fmt.Sprintf("**Timestamp:** %s\n\n", report.Timestamp.Format(time.RFC3339)))

	statusIcon := map[CheckStatus]string{
		CheckOK:   "✅",
		CheckWarn: "⚠️",
		CheckCrit: "❌",
		CheckSkip: "⏭️",
	}

	sb.WriteString("| Status | Category | Check | Detail | Advice |\n")
	sb.WriteString("|--------|----------|-------|--------|--------|\n")
	for _, c := range report.Checks {
		detail := strings.ReplaceAll(c.Detail, "\n", "<br>")
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
			statusIcon[c.Status], c.Category, c.Name, detail, c.Advice))
	}

	sb.WriteString(fmt.Sprintf("\n**Overall:** %s\n", report.WorstStatus))
	return sb.String()
}
