package model

// DeliveryClass splits basal delivery into automated and manual spans.
type DeliveryClass string

const (
	ClassAutomated DeliveryClass = "automated"
	ClassManual    DeliveryClass = "manual"
)

// PathGroup is a maximal run of sequences sharing one DeliveryClass.
type PathGroup struct {
	Class     DeliveryClass `json:"class"`
	Sequences []Sequence    `json:"sequences"`
}

// Events flattens the group's sequences back into one ordered run.
func (g PathGroup) Events() []BasalEvent {
	n := 0
	for _, s := range g.Sequences {
		n += len(s)
	}
	out := make([]BasalEvent, 0, n)
	for _, s := range g.Sequences {
		out = append(out, s...)
	}
	return out
}

// Start returns the UTC start of the group in ms, or 0 when empty.
func (g PathGroup) Start() int64 {
	for _, s := range g.Sequences {
		if len(s) > 0 {
			return s[0].UTC
		}
	}
	return 0
}

// Marker flags a transition between two path groups.
type Marker struct {
	Class      DeliveryClass `json:"class"`
	UTC        int64         `json:"utc"`
	GroupIndex int           `json:"groupIndex"`
}

// Path descriptor type tags.
const (
	PathFillScheduled              = "fill--scheduled"
	PathFillTemp                   = "fill--temp"
	PathFillAutomated              = "fill--automated"
	PathBorderUndelivered          = "border--undelivered"
	PathBorderUndeliveredAutomated = "border--undelivered--automated"
)

// Render types tell the drawing layer how to paint a path.
const (
	RenderFill   = "fill"
	RenderStroke = "stroke"
)

// PathDescriptor is one drawable path produced for a sequence.
type PathDescriptor struct {
	Type       string  `json:"type"`
	D          string  `json:"d"`
	BasalType  SubType `json:"basalType"`
	RenderType string  `json:"renderType"`
	Key        string  `json:"key"`
	// MixedSuppression is set when the run suppresses both automated and
	// non-automated delivery; Type then falls back to the plain border.
	MixedSuppression bool `json:"mixedSuppression,omitempty"`
}
