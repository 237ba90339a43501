package engine

import (
	"reflect"
	"testing"

	"github.com/yourloops/basalviz/fixtures"
	"github.com/yourloops/basalviz/model"
	"github.com/yourloops/basalviz/util"
)

func TestLabeledSchedules(t *testing.T) {
	hour := util.MsPerHour
	ninePM := -3 * hour

	tests := []struct {
		name   string
		events []model.BasalEvent
		want   []ScheduleLabel
	}{
		{"same rate across midnight extends", fixtures.ScheduledNonFlat, []ScheduleLabel{
			{UTC: ninePM, Rate: 2.25, Duration: 4 * hour, Text: "2.25"},
			{UTC: hour, Rate: 1.75, Duration: 2 * hour, Text: "1.75"},
			{UTC: 3 * hour, Rate: 1.95, Duration: 6 * hour, Text: "1.95"},
		}},
		{"short segments and temps skipped", fixtures.SimpleNegativeTemp, []ScheduleLabel{
			{UTC: ninePM, Rate: 2.25, Duration: 4 * hour, Text: "2.25"},
			{UTC: 3 * hour, Rate: 1.95, Duration: 6 * hour, Text: "1.95"},
		}},
		{"automated only", fixtures.Automated, nil},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LabeledSchedules(tt.events)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("LabeledSchedules() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
