package fixtures

import (
	"sort"

	"github.com/yourloops/basalviz/model"
)

var byName = map[string][]model.BasalEvent{
	"scheduledFlat":               ScheduledFlat,
	"scheduledNonFlat":            ScheduledNonFlat,
	"automated":                   Automated,
	"automatedWithSuspend":        AutomatedWithSuspend,
	"automatedAndScheduled":       AutomatedAndScheduled,
	"simpleNegativeTemp":          SimpleNegativeTemp,
	"simplePositiveTemp":          SimplePositiveTemp,
	"simpleSuspend":               SimpleSuspend,
	"negativeTempAcrossScheduled": NegativeTempAcrossScheduled,
	"positiveTempAcrossScheduled": PositiveTempAcrossScheduled,
	"suspendAcrossScheduled":      SuspendAcrossScheduled,
	"discontinuous":               Discontinuous,
}

// ByName returns a copy of the named fixture.
func ByName(name string) ([]model.BasalEvent, bool) {
	events, ok := byName[name]
	if !ok {
		return nil, false
	}
	out := make([]model.BasalEvent, len(events))
	copy(out, events)
	return out, true
}

// Names lists the fixtures in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(byName))
	for n := range byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
