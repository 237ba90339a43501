package render

import (
	"unicode/utf8"

	"github.com/yourloops/basalviz/model"
)

// DefaultMarkerRadius is the print-view marker size in drawing units.
const DefaultMarkerRadius = 4.0

// MarkerShape is the drawable form of a group-transition marker: a labelled
// circle above the chart with a stem down to the baseline.
type MarkerShape struct {
	model.Marker
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
	Label  string  `json:"label"`
	Stem   string  `json:"stem"`
}

// PlaceMarkers positions markers against the chart scales. labels maps each
// delivery class to its display name; the marker shows its first letter.
func PlaceMarkers(markers []model.Marker, x, y Scale, radius float64, labels map[model.DeliveryClass]string) []MarkerShape {
	out := make([]MarkerShape, 0, len(markers))
	top := y.Range()[1] + radius + 1
	baseline := y.Range()[0]
	for _, m := range markers {
		mx := x.Map(float64(m.UTC))
		var stem Path
		stem.moveTo(mx, top)
		stem.lineTo(mx, baseline)
		out = append(out, MarkerShape{
			Marker: m,
			X:      mx,
			Y:      top,
			Radius: radius,
			Label:  initial(labels[m.Class], m.Class),
			Stem:   stem.String(),
		})
	}
	return out
}

func initial(label string, class model.DeliveryClass) string {
	if label == "" {
		label = string(class)
	}
	r, _ := utf8.DecodeRuneInString(label)
	return string(r)
}
