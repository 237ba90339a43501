package engine

import "github.com/yourloops/basalviz/model"

// GetBasalSequences splits chronologically ordered events into maximal runs
// sharing one SubType. The input is not sorted; ordering is the caller's job.
func GetBasalSequences(events []model.BasalEvent) []model.Sequence {
	var seqs []model.Sequence
	var cur model.Sequence
	for i, e := range events {
		if i > 0 && e.SubType != events[i-1].SubType {
			seqs = append(seqs, cur)
			cur = nil
		}
		cur = append(cur, e)
	}
	if len(cur) > 0 {
		seqs = append(seqs, cur)
	}
	if seqs == nil {
		return []model.Sequence{}
	}
	return seqs
}

// PathGroupType returns the delivery class of a single event. Only automated
// delivery is automated; scheduled, temp and suspend collapse to manual.
func PathGroupType(e model.BasalEvent) model.DeliveryClass {
	if e.Kind() == model.SubTypeAutomated {
		return model.ClassAutomated
	}
	return model.ClassManual
}

// GetBasalPathGroups merges adjacent sequences of the same delivery class.
// Consecutive groups always alternate class.
func GetBasalPathGroups(events []model.BasalEvent) []model.PathGroup {
	groups := []model.PathGroup{}
	for _, seq := range GetBasalSequences(events) {
		class := PathGroupType(seq[0])
		if n := len(groups); n > 0 && groups[n-1].Class == class {
			groups[n-1].Sequences = append(groups[n-1].Sequences, seq)
			continue
		}
		groups = append(groups, model.PathGroup{
			Class:     class,
			Sequences: []model.Sequence{seq},
		})
	}
	return groups
}

// GroupMarkers returns one marker per group transition. The first group has
// nothing to transition from and gets no marker.
func GroupMarkers(groups []model.PathGroup) []model.Marker {
	if len(groups) < 2 {
		return nil
	}
	markers := make([]model.Marker, 0, len(groups)-1)
	for i := 1; i < len(groups); i++ {
		markers = append(markers, model.Marker{
			Class:      groups[i].Class,
			UTC:        groups[i].Start(),
			GroupIndex: i,
		})
	}
	return markers
}
