package model

// SubType identifies how a basal segment was delivered.
type SubType string

const (
	SubTypeScheduled SubType = "scheduled"
	SubTypeTemp      SubType = "temp"
	SubTypeAutomated SubType = "automated"
	SubTypeSuspend   SubType = "suspend"
)

// BasalType is the only `type` value carried by basal events.
const BasalType = "basal"

// Valid reports whether s is one of the four known delivery subtypes.
func (s SubType) Valid() bool {
	switch s {
	case SubTypeScheduled, SubTypeTemp, SubTypeAutomated, SubTypeSuspend:
		return true
	}
	return false
}

// BasalEvent is one contiguous segment of basal delivery.
type BasalEvent struct {
	ID                 string      `json:"id,omitempty" yaml:"id,omitempty"`
	Type               string      `json:"type" yaml:"type"`
	SubType            SubType     `json:"subType,omitempty" yaml:"subType,omitempty"`
	DeliveryType       SubType     `json:"deliveryType,omitempty" yaml:"deliveryType,omitempty"` // legacy name for SubType
	UTC                int64       `json:"utc" yaml:"utc"`                                       // start, ms since epoch
	Duration           int64       `json:"duration" yaml:"duration"`                             // ms
	Rate               float64     `json:"rate" yaml:"rate"`                                     // U/h actually delivered
	Suppressed         *Suppressed `json:"suppressed,omitempty" yaml:"suppressed,omitempty"`
	DiscontinuousStart bool        `json:"discontinuousStart,omitempty" yaml:"discontinuousStart,omitempty"`
	DiscontinuousEnd   bool        `json:"discontinuousEnd,omitempty" yaml:"discontinuousEnd,omitempty"`
}

// End returns the instant the segment stops, in ms since epoch.
func (e BasalEvent) End() int64 {
	return e.UTC + e.Duration
}

// Kind returns SubType, or the legacy DeliveryType when SubType is unset.
func (e BasalEvent) Kind() SubType {
	if e.SubType != "" {
		return e.SubType
	}
	return e.DeliveryType
}

// Suppressed describes the delivery a temp or suspend overrode.
// A temp interrupted by a suspend nests the scheduled rate one level down.
type Suppressed struct {
	Type         string      `json:"type,omitempty" yaml:"type,omitempty"`
	SubType      SubType     `json:"subType,omitempty" yaml:"subType,omitempty"`
	DeliveryType SubType     `json:"deliveryType,omitempty" yaml:"deliveryType,omitempty"`
	Rate         float64     `json:"rate" yaml:"rate"`
	Suppressed   *Suppressed `json:"suppressed,omitempty" yaml:"suppressed,omitempty"`
}

// Kind returns SubType, or the legacy DeliveryType when SubType is unset.
func (s *Suppressed) Kind() SubType {
	if s.SubType != "" {
		return s.SubType
	}
	return s.DeliveryType
}

// Reference walks the suppressed chain to the underlying scheduled or
// automated delivery. When the chain holds neither, the outermost entry is
// returned. Nil-safe.
func (s *Suppressed) Reference() *Suppressed {
	for cur := s; cur != nil; cur = cur.Suppressed {
		switch cur.Kind() {
		case SubTypeScheduled, SubTypeAutomated:
			return cur
		}
	}
	return s
}

// Sequence is a maximal run of events sharing one SubType.
type Sequence []BasalEvent

// SubType returns the subtype of the first event, or "" when empty.
func (s Sequence) SubType() SubType {
	if len(s) == 0 {
		return ""
	}
	return s[0].SubType
}

// Duration returns the total ms covered by the sequence.
func (s Sequence) Duration() int64 {
	var total int64
	for _, e := range s {
		total += e.Duration
	}
	return total
}
