package render

import (
	"errors"

	"github.com/yourloops/basalviz/model"
)

// DefaultFlushBottomOffset lifts zero-rate segments just off the axis line.
const DefaultFlushBottomOffset = -0.5

var (
	ErrUnknownSubType = errors.New("Cannot determine subType of basal sequence!")
	ErrMixedSubTypes  = errors.New("A basal sequence may contain only one subType of basal event.")
)

// SequenceError reports a sequence the path calculator refuses to draw.
// It unwraps to ErrUnknownSubType or ErrMixedSubTypes.
type SequenceError struct {
	Index int // offending event
	Err   error
}

func (e *SequenceError) Error() string { return e.Err.Error() }
func (e *SequenceError) Unwrap() error { return e.Err }

// PathOptions controls CalculateBasalPath.
type PathOptions struct {
	// EndAtZero drops to the baseline after the last segment.
	EndAtZero bool
	// FlushBottomOffset is added to the vertical baseline for zero rates.
	FlushBottomOffset float64
	// IsFilled closes every run down to the baseline around data gaps so
	// the path can be painted as an area.
	IsFilled bool
	// StartAtZero rises from the baseline before the first segment.
	StartAtZero bool
}

// BuildBasalPath walks events in order and returns the step-function outline
// of their rates. Each segment contributes a point at its start and end;
// a gap (discontinuousStart on the event or discontinuousEnd on its
// predecessor) starts a new run with a MoveTo.
func BuildBasalPath(events []model.BasalEvent, x, y Scale, opts PathOptions) Path {
	if len(events) == 0 {
		return nil
	}

	flush := y.Range()[0] + opts.FlushBottomOffset
	yFor := func(rate float64) float64 {
		if rate > 0 {
			return y.Map(rate)
		}
		return flush
	}

	path := make(Path, 0, 2*len(events)+2)
	for i, e := range events {
		x0 := x.Map(float64(e.UTC))
		x1 := x.Map(float64(e.End()))
		ey := yFor(e.Rate)

		switch {
		case i == 0:
			if opts.StartAtZero {
				path.moveTo(x0, flush)
				path.lineTo(x0, ey)
			} else {
				path.moveTo(x0, ey)
			}
		case e.DiscontinuousStart || events[i-1].DiscontinuousEnd:
			if opts.IsFilled {
				path.lineTo(x.Map(float64(events[i-1].End())), flush)
				path.moveTo(x0, flush)
				path.lineTo(x0, ey)
			} else {
				path.moveTo(x0, ey)
			}
		default:
			path.lineTo(x0, ey)
		}
		path.lineTo(x1, ey)
	}

	if opts.EndAtZero {
		last := events[len(events)-1]
		path.lineTo(x.Map(float64(last.End())), flush)
	}
	return path
}

// CalculateBasalPath returns BuildBasalPath serialized as path data.
func CalculateBasalPath(events []model.BasalEvent, x, y Scale, opts PathOptions) string {
	return BuildBasalPath(events, x, y, opts).String()
}

// SequencePathOptions tunes GetBasalSequencePaths.
type SequencePathOptions struct {
	FlushBottomOffset float64
}

// DefaultSequencePathOptions returns the offsets used by the chart views.
func DefaultSequencePathOptions() SequencePathOptions {
	return SequencePathOptions{FlushBottomOffset: DefaultFlushBottomOffset}
}

func checkSequence(seq model.Sequence) error {
	first := seq[0].SubType
	if !first.Valid() {
		return &SequenceError{Index: 0, Err: ErrUnknownSubType}
	}
	for i, e := range seq[1:] {
		if e.SubType != first {
			return &SequenceError{Index: i + 1, Err: ErrMixedSubTypes}
		}
	}
	return nil
}

// GetBasalSequencePaths draws one sequence. Scheduled, temp and automated
// runs get a fill of the delivered rate; temp and suspend runs get a border
// tracing the rate they suppressed. An empty sequence yields no paths.
func GetBasalSequencePaths(seq model.Sequence, x, y Scale, opts SequencePathOptions) ([]model.PathDescriptor, error) {
	if len(seq) == 0 {
		return []model.PathDescriptor{}, nil
	}
	if err := checkSequence(seq); err != nil {
		return nil, err
	}

	first := seq[0]
	subType := first.SubType
	var paths []model.PathDescriptor

	if subType != model.SubTypeSuspend {
		paths = append(paths, model.PathDescriptor{
			Type: "fill--" + string(subType),
			D: CalculateBasalPath(seq, x, y, PathOptions{
				EndAtZero:         true,
				FlushBottomOffset: opts.FlushBottomOffset,
				IsFilled:          true,
				StartAtZero:       true,
			}),
			BasalType:  subType,
			RenderType: model.RenderFill,
			Key:        "basalPathFill-" + first.ID,
		})
	}

	if subType == model.SubTypeTemp || subType == model.SubTypeSuspend {
		border, automated, mixed := UndeliveredPath(seq, x, y, opts.FlushBottomOffset)
		typ := model.PathBorderUndelivered
		if automated {
			typ = model.PathBorderUndeliveredAutomated
		}
		paths = append(paths, model.PathDescriptor{
			Type:             typ,
			D:                border.String(),
			BasalType:        subType,
			RenderType:       model.RenderStroke,
			Key:              "basalPathUndelivered-" + first.ID,
			MixedSuppression: mixed,
		})
	}
	return paths, nil
}

// UndeliveredPath traces the rate a temp or suspend sequence suppressed.
// automated is true only when every event suppresses automated delivery;
// mixed flags a run holding both kinds.
func UndeliveredPath(seq model.Sequence, x, y Scale, flushBottomOffset float64) (p Path, automated, mixed bool) {
	undelivered, automated, mixed := undeliveredSequence(seq)
	return BuildBasalPath(undelivered, x, y, PathOptions{FlushBottomOffset: flushBottomOffset}), automated, mixed
}

// undeliveredSequence swaps each delivered rate for its suppressed reference
// rate. Events without a suppressed rate sit on the baseline. automated is
// true only when every event suppresses automated delivery; mixed flags a
// run holding both kinds.
func undeliveredSequence(seq model.Sequence) (out []model.BasalEvent, automated, mixed bool) {
	out = make([]model.BasalEvent, len(seq))
	nAuto := 0
	for i, e := range seq {
		ref := e.Suppressed.Reference()
		e.Suppressed = nil
		e.Rate = 0
		if ref != nil {
			e.Rate = ref.Rate
			if ref.Kind() == model.SubTypeAutomated {
				nAuto++
			}
		}
		out[i] = e
	}
	return out, nAuto == len(seq), nAuto > 0 && nAuto < len(seq)
}

// GroupPath is the delivered-rate outline of one automated or manual span.
type GroupPath struct {
	Class model.DeliveryClass `json:"class"`
	D     string              `json:"d"`
}

// GetBasalGroupPaths outlines the delivered rate of each path group as an
// unfilled stroke so automated and manual spans can be coloured apart.
func GetBasalGroupPaths(groups []model.PathGroup, x, y Scale, flushBottomOffset float64) []GroupPath {
	out := make([]GroupPath, 0, len(groups))
	for _, g := range groups {
		out = append(out, GroupPath{
			Class: g.Class,
			D: CalculateBasalPath(g.Events(), x, y, PathOptions{
				FlushBottomOffset: flushBottomOffset,
			}),
		})
	}
	return out
}
