package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yourloops/basalviz/config"
	"github.com/yourloops/basalviz/engine"
	"github.com/yourloops/basalviz/fixtures"
	"github.com/yourloops/basalviz/model"
	"github.com/yourloops/basalviz/render"
	"github.com/yourloops/basalviz/server"
	"github.com/yourloops/basalviz/ui"
	"github.com/yourloops/basalviz/util"
)

// Version is set at build time via ldflags.
var Version = "0.3.0"

// Options holds CLI configuration.
type Options struct {
	PathsMode  bool
	GroupsMode bool
	StatsMode  bool
	ServeMode  bool
	DoctorMode bool
	JSONMode   bool
	MDMode     bool
	RecordPath string
	Fixture    string
	Start      string
	Listen     string
	Width      float64
	Height     float64
	RateMax    float64
	Flush      float64
	File       string
}

var errUsage = errors.New("usage")

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `basalviz v%s - basal insulin delivery charts

Usage:
  basalviz [OPTIONS] FILE

Modes:
  (default)         Interactive day-by-day chart (bubbletea, fullscreen)
  -paths            Chart path descriptors as JSON, one document per day
  -groups           Sequences grouped into automated/manual spans as JSON
  -stats            Per-day totals and automated/manual split
  -record OUT       Write per-day reports to OUT as JSON lines
  -doctor           Check the input for gaps, overlaps and undrawable days
  -serve            HTTP render service (no FILE needed)
  -version          Print version and exit

Options:
  -fixture NAME     Use a built-in fixture instead of FILE
  -start TIME       Only the UTC day holding TIME (RFC3339 or epoch ms)
  -listen ADDR      Listen address for -serve (default from config)
  -width N          Chart width in drawing units
  -height N         Chart height in drawing units
  -rate-max N       Pin the rate axis at N U/h (0 = fit the data)
  -flush N          Baseline offset for zero rates
  -json             Doctor report as JSON
  -md               Doctor report as Markdown

Input:
  FILE              Basal events as a JSON array, JSON lines (.jsonl) or YAML

Fixtures:
  %s

Examples:
  basalviz pump-export.json
  basalviz -stats pump-export.jsonl
  basalviz -paths -start 2018-01-01T00:00:00Z pump-export.json | jq '.paths[].type'
  basalviz -fixture automatedWithSuspend
  basalviz -doctor -md pump-export.json > report.md
  basalviz -record days.jsonl pump-export.yaml
  basalviz -serve -listen :8087
`, Version, strings.Join(fixtures.Names(), ", "))
}

// Run parses flags and starts the application.
func Run() error {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	}
	var exit ExitCodeError
	if errors.As(err, &exit) {
		os.Exit(exit.Code)
	}
	return err
}

func run(args []string, stdout, stderr io.Writer) error {
	var opts Options
	var showVersion bool
	cfg := config.Load()

	fs := flag.NewFlagSet("basalviz", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.PathsMode, "paths", false, "Output chart paths as JSON")
	fs.BoolVar(&opts.GroupsMode, "groups", false, "Output path groups as JSON")
	fs.BoolVar(&opts.StatsMode, "stats", false, "Output per-day statistics")
	fs.BoolVar(&opts.ServeMode, "serve", false, "Run the HTTP render service")
	fs.BoolVar(&opts.DoctorMode, "doctor", false, "Check the input data")
	fs.BoolVar(&opts.JSONMode, "json", false, "Doctor report as JSON")
	fs.BoolVar(&opts.MDMode, "md", false, "Doctor report as Markdown")
	fs.StringVar(&opts.RecordPath, "record", "", "Write per-day reports as JSON lines")
	fs.StringVar(&opts.Fixture, "fixture", "", "Use a built-in fixture")
	fs.StringVar(&opts.Start, "start", "", "Only the UTC day holding this instant")
	fs.StringVar(&opts.Listen, "listen", cfg.Server.Listen, "Listen address for -serve")
	fs.Float64Var(&opts.Width, "width", cfg.Chart.Width, "Chart width")
	fs.Float64Var(&opts.Height, "height", cfg.Chart.Height, "Chart height")
	fs.Float64Var(&opts.RateMax, "rate-max", cfg.Chart.RateMax, "Rate axis maximum (0 = fit)")
	fs.Float64Var(&opts.Flush, "flush", cfg.Chart.FlushBottomOffset, "Baseline offset for zero rates")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return err
	}

	if showVersion {
		fmt.Fprintf(stdout, "basalviz v%s\n", Version)
		return nil
	}

	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("chart size %gx%g must be positive", opts.Width, opts.Height)
	}
	cfg.Chart.Width = opts.Width
	cfg.Chart.Height = opts.Height
	cfg.Chart.RateMax = opts.RateMax
	cfg.Chart.FlushBottomOffset = opts.Flush
	cfg.Server.Listen = opts.Listen

	if opts.ServeMode {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.New(cfg).ListenAndServe(ctx, cfg.Server.Listen)
	}

	if rest := fs.Args(); len(rest) > 0 {
		opts.File = rest[0]
	}
	if opts.File == "" && opts.Fixture == "" {
		fmt.Fprintln(stderr, "Error: no input FILE given")
		fmt.Fprintln(stderr)
		printUsage(stderr)
		return errUsage
	}

	events, stats, source, err := loadInput(opts, stderr)
	if err != nil {
		return err
	}
	if opts.DoctorMode {
		return runDoctor(stdout, doctorReport(events, stats, source, cfg), opts.JSONMode, opts.MDMode)
	}
	eng := engine.NewEngine(events)

	var start int64
	days := eng.Days()
	if opts.Start != "" {
		if start, err = util.ParseInstant(opts.Start); err != nil {
			return err
		}
		days = []int64{util.DayStart(start)}
	}

	switch {
	case opts.PathsMode:
		return runPaths(stdout, eng, days, cfg)
	case opts.GroupsMode:
		return runGroups(stdout, eng, days)
	case opts.StatsMode:
		return runStats(stdout, eng, days, cfg)
	case opts.RecordPath != "":
		return runRecord(opts.RecordPath, eng, days)
	}

	p := tea.NewProgram(ui.NewModel(eng, cfg, source, start), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func loadInput(opts Options, stderr io.Writer) ([]model.BasalEvent, engine.LoadStats, string, error) {
	if opts.Fixture != "" {
		events, ok := fixtures.ByName(opts.Fixture)
		if !ok {
			return nil, engine.LoadStats{}, "", fmt.Errorf("unknown fixture %q (have %s)", opts.Fixture, strings.Join(fixtures.Names(), ", "))
		}
		stats := engine.LoadStats{Events: len(events)}
		stats.AssignedIDs, stats.Discontinuities = engine.Normalize(events)
		return events, stats, "fixture:" + opts.Fixture, nil
	}

	events, stats, err := engine.Load(opts.File)
	if err != nil {
		return nil, stats, "", fmt.Errorf("load %s: %w", opts.File, err)
	}
	if stats.Skipped > 0 || stats.Discontinuities > 0 {
		fmt.Fprintf(stderr, "basalviz: %s: %d events, %d skipped, %d gaps\n",
			opts.File, stats.Events, stats.Skipped, stats.Discontinuities)
	}
	return events, stats, opts.File, nil
}

func chartOptions(cfg config.Config) render.ChartOptions {
	return render.ChartOptions{
		Width:             cfg.Chart.Width,
		Height:            cfg.Chart.Height,
		RateMax:           cfg.Chart.RateMax,
		FlushBottomOffset: cfg.Chart.FlushBottomOffset,
		MarkerRadius:      cfg.Chart.MarkerRadius,
		Labels:            cfg.ClassLabels(),
	}
}

// runPaths writes one chart document per day.
func runPaths(w io.Writer, eng *engine.Engine, days []int64, cfg config.Config) error {
	enc := json.NewEncoder(w)
	opts := chartOptions(cfg)
	for _, d := range days {
		chart, err := render.DrawReport(eng.Day(d), opts)
		if err != nil {
			return fmt.Errorf("day %s: %w", util.Time(d).Format("2006-01-02"), err)
		}
		if err := enc.Encode(chart); err != nil {
			return err
		}
	}
	return nil
}

func runGroups(w io.Writer, eng *engine.Engine, days []int64) error {
	type dayGroups struct {
		Start   int64             `json:"start"`
		Groups  []model.PathGroup `json:"groups"`
		Markers []model.Marker    `json:"markers"`
	}
	enc := json.NewEncoder(w)
	for _, d := range days {
		rep := eng.Day(d)
		if err := enc.Encode(dayGroups{Start: rep.Start, Groups: rep.Groups, Markers: rep.Markers}); err != nil {
			return err
		}
	}
	return nil
}

func runStats(w io.Writer, eng *engine.Engine, days []int64, cfg config.Config) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "DAY\tTOTAL U\t%s\t%s\tSWITCHES\n",
		strings.ToUpper(cfg.Labels.Automated), strings.ToUpper(cfg.Labels.Manual))
	for _, d := range days {
		rep := eng.Day(d)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n",
			util.Time(d).Format("2006-01-02"),
			rep.Total,
			util.FormatDuration(rep.Durations.Automated),
			util.FormatDuration(rep.Durations.Manual),
			len(rep.Markers))
	}
	return tw.Flush()
}

func runRecord(path string, eng *engine.Engine, days []int64) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("open record file: %w", err)
	}
	defer f.Close()

	rec := engine.NewRecorder(f)
	for _, d := range days {
		if err := rec.Record(eng.Day(d)); err != nil {
			return fmt.Errorf("record: %w", err)
		}
	}
	return f.Close()
}
