package render

import (
	"math"
	"testing"
)

func TestLinearScale(t *testing.T) {
	tests := []struct {
		name  string
		scale LinearScale
		in    float64
		want  float64
	}{
		{"time start", TimeScale(1000, 2000, 500), 1000, 0},
		{"time mid", TimeScale(1000, 2000, 500), 1500, 250},
		{"time past end", TimeScale(1000, 2000, 500), 2200, 600},
		{"rate zero is baseline", RateScale(5, 100), 0, 100},
		{"rate max is top", RateScale(5, 100), 5, 0},
		{"rate 2.25", RateScale(5, 100), 2.25, 55},
		{"degenerate domain", NewLinearScale(3, 3, 7, 9), 42, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.scale.Map(tt.in); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Map(%g) = %g, want %g", tt.in, got, tt.want)
			}
		})
	}

	if r := RateScale(5, 100).Range(); r != [2]float64{100, 0} {
		t.Errorf("RateScale range = %v, want baseline first", r)
	}
}

func TestScaleFuncDrivesPath(t *testing.T) {
	// logarithmic rate axis
	y := ScaleFunc{
		F:      func(v float64) float64 { return 100 - 50*math.Log2(1+v) },
		Bounds: [2]float64{100, 0},
	}
	x, _ := testScales()
	got := CalculateBasalPath(twoSteps()[:1], x, y, PathOptions{})
	if want := "M 0,50 L 10,50"; got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}
