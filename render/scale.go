// Package render turns basal sequences into drawable path descriptors.
//
// Geometry is built as a list of MoveTo/LineTo commands and serialized to
// path data ("M x,y L x,y ...") last, so callers can assert on either form.
package render

// Scale maps a domain value (epoch ms or U/h) to a drawing coordinate.
// Range reports the [min, max] drawing bounds; for a vertical scale Range()[0]
// is the baseline that zero rates are flushed to.
type Scale interface {
	Map(v float64) float64
	Range() [2]float64
}

// LinearScale is an affine Scale.
type LinearScale struct {
	Domain [2]float64
	Out    [2]float64
}

// NewLinearScale maps [d0, d1] onto [r0, r1].
func NewLinearScale(d0, d1, r0, r1 float64) LinearScale {
	return LinearScale{Domain: [2]float64{d0, d1}, Out: [2]float64{r0, r1}}
}

// Map projects v. A degenerate domain maps everything to the range start.
func (s LinearScale) Map(v float64) float64 {
	span := s.Domain[1] - s.Domain[0]
	if span == 0 {
		return s.Out[0]
	}
	return s.Out[0] + (v-s.Domain[0])/span*(s.Out[1]-s.Out[0])
}

// Range returns the output bounds.
func (s LinearScale) Range() [2]float64 {
	return s.Out
}

// ScaleFunc adapts an arbitrary monotonic function to Scale.
type ScaleFunc struct {
	F      func(float64) float64
	Bounds [2]float64
}

func (s ScaleFunc) Map(v float64) float64 { return s.F(v) }
func (s ScaleFunc) Range() [2]float64     { return s.Bounds }

// TimeScale maps the epoch-ms window [start, end] onto [0, width].
func TimeScale(start, end int64, width float64) LinearScale {
	return NewLinearScale(float64(start), float64(end), 0, width)
}

// RateScale maps [0, maxRate] U/h onto a chart of the given height with the
// baseline at the bottom (y grows downward).
func RateScale(maxRate, height float64) LinearScale {
	return NewLinearScale(0, maxRate, height, 0)
}
