package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/yourloops/basalviz/engine"
	"github.com/yourloops/basalviz/fixtures"
	"github.com/yourloops/basalviz/model"
)

const minute = 60000

// testScales maps one minute to 10 units and 0..4 U/h onto 100..0, so the
// fixture-free cases below land on exact binary fractions.
func testScales() (LinearScale, LinearScale) {
	return NewLinearScale(0, minute, 0, 10), RateScale(4, 100)
}

// fixtureScales fits the fixtures: 0..5 U/h onto 100..0.
func fixtureScales() (LinearScale, LinearScale) {
	return TimeScale(fixtures.ScheduledFlat[0].UTC, fixtures.ScheduledFlat[1].End(), 1000), RateScale(5, 100)
}

func twoSteps() []model.BasalEvent {
	return []model.BasalEvent{
		{ID: "a", Type: model.BasalType, SubType: model.SubTypeScheduled, UTC: 0, Duration: minute, Rate: 1},
		{ID: "b", Type: model.BasalType, SubType: model.SubTypeScheduled, UTC: minute, Duration: minute, Rate: 2},
	}
}

func TestBuildBasalPath(t *testing.T) {
	x, y := testScales()

	gap := twoSteps()
	gap[1].UTC = 2 * minute
	gap[0].DiscontinuousEnd = true
	gap[1].DiscontinuousStart = true

	zero := twoSteps()
	zero[1].Rate = 0

	tests := []struct {
		name   string
		events []model.BasalEvent
		opts   PathOptions
		want   string
	}{
		{"outline", twoSteps(), PathOptions{FlushBottomOffset: -0.5},
			"M 0,75 L 10,75 L 10,50 L 20,50"},
		{"filled closes to baseline", twoSteps(), PathOptions{FlushBottomOffset: -0.5, IsFilled: true, StartAtZero: true, EndAtZero: true},
			"M 0,99.5 L 0,75 L 10,75 L 10,50 L 20,50 L 20,99.5"},
		{"outline gap moves", gap, PathOptions{FlushBottomOffset: -0.5},
			"M 0,75 L 10,75 M 20,50 L 30,50"},
		{"filled gap drops and rises", gap, PathOptions{FlushBottomOffset: -0.5, IsFilled: true, StartAtZero: true, EndAtZero: true},
			"M 0,99.5 L 0,75 L 10,75 L 10,99.5 M 20,99.5 L 20,50 L 30,50 L 30,99.5"},
		{"zero rate is flushed", zero, PathOptions{FlushBottomOffset: -0.5},
			"M 0,75 L 10,75 L 10,99.5 L 20,99.5"},
		{"zero offset sits on baseline", zero, PathOptions{},
			"M 0,75 L 10,75 L 10,100 L 20,100"},
		{"single event", twoSteps()[:1:1], PathOptions{},
			"M 0,75 L 10,75"},
		{"empty", nil, PathOptions{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateBasalPath(tt.events, x, y, tt.opts)
			if got != tt.want {
				t.Errorf("CalculateBasalPath() =\n  %q\nwant\n  %q", got, tt.want)
			}
		})
	}
}

func TestBuildBasalPathZeroDuration(t *testing.T) {
	x, y := testScales()
	events := []model.BasalEvent{{SubType: model.SubTypeScheduled, UTC: minute, Rate: 1}}
	p := BuildBasalPath(events, x, y, PathOptions{})
	want := Path{{Op: MoveTo, X: 10, Y: 75}, {Op: LineTo, X: 10, Y: 75}}
	if len(p) != len(want) {
		t.Fatalf("got %d commands, want %d: %v", len(p), len(want), p)
	}
	for i := range want {
		if p[i] != want[i] {
			t.Errorf("command %d = %+v, want %+v", i, p[i], want[i])
		}
	}
}

func TestDiscontinuousMoveCount(t *testing.T) {
	x, y := fixtureScales()
	for _, filled := range []bool{false, true} {
		p := BuildBasalPath(fixtures.Discontinuous, x, y, PathOptions{
			FlushBottomOffset: DefaultFlushBottomOffset,
			IsFilled:          filled,
			StartAtZero:       filled,
			EndAtZero:         filled,
		})
		if got := p.MoveCount(); got != 3 {
			t.Errorf("filled=%v: MoveCount = %d, want 3", filled, got)
		}
		if got := strings.Count(p.String(), "M"); got != 3 {
			t.Errorf("filled=%v: %d M commands in %q, want 3", filled, got, p.String())
		}
	}
}

func TestBaselineFlushCount(t *testing.T) {
	x, y := fixtureScales()
	if y.Range()[0] != 100 {
		t.Fatalf("baseline = %v, want 100", y.Range()[0])
	}
	p := BuildBasalPath(fixtures.SimpleSuspend, x, y, PathOptions{FlushBottomOffset: -0.5})
	if got := p.PointsAtY(99.5); got != 2 {
		t.Errorf("points at y=99.5: got %d, want 2 (%s)", got, p)
	}
	if got := strings.Count(p.String(), ",99.5"); got != 2 {
		t.Errorf("serialized points at y=99.5: got %d, want 2", got)
	}
}

func TestGetBasalSequencePathsBySubType(t *testing.T) {
	x, y := fixtureScales()

	tests := []struct {
		name      string
		seq       model.Sequence
		wantTypes []string
	}{
		{"scheduled", fixtures.ScheduledFlat, []string{model.PathFillScheduled}},
		{"automated", fixtures.Automated, []string{model.PathFillAutomated}},
		{"temp", fixtures.SimpleNegativeTemp[3:4], []string{model.PathFillTemp, model.PathBorderUndelivered}},
		{"temp across schedule", fixtures.PositiveTempAcrossScheduled[3:5], []string{model.PathFillTemp, model.PathBorderUndelivered}},
		{"suspend", fixtures.SimpleSuspend[3:4], []string{model.PathBorderUndelivered}},
		{"suspend of automated", fixtures.AutomatedWithSuspend[4:5], []string{model.PathBorderUndeliveredAutomated}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paths, err := GetBasalSequencePaths(tt.seq, x, y, DefaultSequencePathOptions())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(paths) != len(tt.wantTypes) {
				t.Fatalf("got %d paths, want %d", len(paths), len(tt.wantTypes))
			}
			for i, p := range paths {
				if p.Type != tt.wantTypes[i] {
					t.Errorf("path %d type = %q, want %q", i, p.Type, tt.wantTypes[i])
				}
				if p.D == "" {
					t.Errorf("path %d has empty path data", i)
				}
				if p.BasalType != tt.seq[0].SubType {
					t.Errorf("path %d basalType = %q, want %q", i, p.BasalType, tt.seq[0].SubType)
				}
			}
		})
	}
}

func TestScheduledFlatEndToEnd(t *testing.T) {
	x, y := fixtureScales()
	seqs := engine.GetBasalSequences(fixtures.ScheduledFlat)
	if len(seqs) != 1 || len(seqs[0]) != 2 {
		t.Fatalf("sequences = %v, want one sequence of 2", seqs)
	}
	paths, err := GetBasalSequencePaths(seqs[0], x, y, DefaultSequencePathOptions())
	if err != nil {
		t.Fatalf("GetBasalSequencePaths: %v", err)
	}
	if len(paths) != 1 || paths[0].Type != model.PathFillScheduled {
		t.Fatalf("paths = %+v, want one fill--scheduled", paths)
	}
	if n := strings.Count(paths[0].D, "M"); n != 1 {
		t.Errorf("fill has %d moves, want 1: %s", n, paths[0].D)
	}
	if paths[0].RenderType != model.RenderFill || paths[0].Key != "basalPathFill-"+fixtures.ScheduledFlat[0].ID {
		t.Errorf("unexpected descriptor metadata: %+v", paths[0])
	}
}

func TestGetBasalSequencePathsErrors(t *testing.T) {
	x, y := fixtureScales()

	_, err := GetBasalSequencePaths(model.Sequence{{Type: model.BasalType, DeliveryType: model.SubTypeTemp}}, x, y, DefaultSequencePathOptions())
	if err == nil || err.Error() != "Cannot determine subType of basal sequence!" {
		t.Errorf("missing subType: got %v", err)
	}
	if !errors.Is(err, ErrUnknownSubType) {
		t.Errorf("missing subType: errors.Is(ErrUnknownSubType) = false")
	}

	mixed := model.Sequence{
		{Type: model.BasalType, SubType: model.SubTypeScheduled},
		{Type: model.BasalType, SubType: model.SubTypeTemp},
	}
	_, err = GetBasalSequencePaths(mixed, x, y, DefaultSequencePathOptions())
	if err == nil || err.Error() != "A basal sequence may contain only one subType of basal event." {
		t.Errorf("mixed subTypes: got %v", err)
	}
	var seqErr *SequenceError
	if !errors.As(err, &seqErr) || seqErr.Index != 1 {
		t.Errorf("mixed subTypes: want *SequenceError at index 1, got %#v", err)
	}

	paths, err := GetBasalSequencePaths(nil, x, y, DefaultSequencePathOptions())
	if err != nil || len(paths) != 0 {
		t.Errorf("empty sequence: got %v, %v", paths, err)
	}
}

func TestUndeliveredSuppression(t *testing.T) {
	x, y := testScales()
	temp := func(rate float64, sup *model.Suppressed) model.BasalEvent {
		return model.BasalEvent{Type: model.BasalType, SubType: model.SubTypeTemp, Duration: minute, Rate: rate, Suppressed: sup}
	}
	auto := func(rate float64) *model.Suppressed {
		return &model.Suppressed{SubType: model.SubTypeAutomated, Rate: rate}
	}
	sched := func(rate float64) *model.Suppressed {
		return &model.Suppressed{SubType: model.SubTypeScheduled, Rate: rate}
	}

	t.Run("all automated", func(t *testing.T) {
		seq := model.Sequence{temp(0.5, auto(1)), temp(0.5, auto(2))}
		seq[1].UTC = minute
		paths, err := GetBasalSequencePaths(seq, x, y, DefaultSequencePathOptions())
		if err != nil {
			t.Fatal(err)
		}
		border := paths[1]
		if border.Type != model.PathBorderUndeliveredAutomated || border.MixedSuppression {
			t.Errorf("border = %+v", border)
		}
		if border.D != "M 0,75 L 10,75 L 10,50 L 20,50" {
			t.Errorf("border path = %q", border.D)
		}
	})

	t.Run("mixed is flagged", func(t *testing.T) {
		seq := model.Sequence{temp(0.5, auto(1)), temp(0.5, sched(2))}
		seq[1].UTC = minute
		paths, err := GetBasalSequencePaths(seq, x, y, DefaultSequencePathOptions())
		if err != nil {
			t.Fatal(err)
		}
		if paths[1].Type != model.PathBorderUndelivered || !paths[1].MixedSuppression {
			t.Errorf("border = %+v", paths[1])
		}
	})

	t.Run("nested suppressed uses scheduled rate", func(t *testing.T) {
		seq := model.Sequence{{
			Type: model.BasalType, SubType: model.SubTypeSuspend, Duration: minute,
			Suppressed: &model.Suppressed{SubType: model.SubTypeTemp, Rate: 0.5, Suppressed: sched(1)},
		}}
		paths, err := GetBasalSequencePaths(seq, x, y, DefaultSequencePathOptions())
		if err != nil {
			t.Fatal(err)
		}
		if len(paths) != 1 || paths[0].D != "M 0,75 L 10,75" {
			t.Errorf("paths = %+v", paths)
		}
	})

	t.Run("missing suppressed flushes", func(t *testing.T) {
		seq := model.Sequence{{Type: model.BasalType, SubType: model.SubTypeSuspend, Duration: minute}}
		paths, err := GetBasalSequencePaths(seq, x, y, DefaultSequencePathOptions())
		if err != nil {
			t.Fatal(err)
		}
		if paths[0].D != "M 0,99.5 L 10,99.5" || paths[0].Type != model.PathBorderUndelivered {
			t.Errorf("paths = %+v", paths)
		}
	})
}

func TestGetBasalGroupPaths(t *testing.T) {
	x, y := fixtureScales()
	groups := engine.GetBasalPathGroups(fixtures.AutomatedAndScheduled)
	paths := GetBasalGroupPaths(groups, x, y, -0.25)
	if len(paths) != 3 {
		t.Fatalf("got %d group paths, want 3", len(paths))
	}
	want := []model.DeliveryClass{model.ClassAutomated, model.ClassManual, model.ClassAutomated}
	for i, p := range paths {
		if p.Class != want[i] {
			t.Errorf("group %d class = %q, want %q", i, p.Class, want[i])
		}
		if strings.Count(p.D, "M") != 1 {
			t.Errorf("group %d: want a single run, got %q", i, p.D)
		}
	}
}
