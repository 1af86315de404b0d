package crossing

import (
	"math"

	"isa-explorer/internal/sounding/probe"
	"isa-explorer/pkg/atmosphere"
)

// Crossing is a probe passing an ISA layer boundary.
type Crossing struct {
	Boundary  float64 // m, geometric
	From      string
	To        string
	Ascending bool
}

// boundaries are the interior layer starts in geometric meters
var boundaries = func() []float64 {
	layers := atmosphere.Layers()
	out := make([]float64, 0, len(layers)-1)
	for _, l := range layers[1:] {
		out = append(out, atmosphere.GeometricHeight(l.Start))
	}
	return out
}()

// Detect lists every boundary passed moving from prev to cur, in the order
// they were passed. A boundary counts as passed once the probe reaches it.
func Detect(prev, cur float64) []Crossing {
	if prev == cur {
		return nil
	}
	layers := atmosphere.Layers()
	var out []Crossing
	if cur > prev {
		for i, b := range boundaries {
			if prev < b && cur >= b {
				out = append(out, Crossing{Boundary: b, From: layers[i].Name, To: layers[i+1].Name, Ascending: true})
			}
		}
		return out
	}
	for i := len(boundaries) - 1; i >= 0; i-- {
		b := boundaries[i]
		if cur < b && prev >= b {
			out = append(out, Crossing{Boundary: b, From: layers[i+1].Name, To: layers[i].Name})
		}
	}
	return out
}

// PredictCrossing projects the probe's current vertical rate forward and
// reports the first boundary it would pass within futureTimeSeconds.
// Returns: (willCross, secondsToCrossing, crossing)
func PredictCrossing(pr *probe.Probe, futureTimeSeconds float64) (bool, float64, Crossing) {
	if pr.VerticalRate == 0 {
		return false, 0, Crossing{}
	}

	// Linear projection, clamped to the target so a leveling probe doesn't
	// predict a crossing it will stop short of.
	projected := pr.Altitude + pr.VerticalRate*futureTimeSeconds
	if pr.VerticalRate > 0 {
		projected = math.Min(projected, pr.TargetAltitude)
	} else {
		projected = math.Max(projected, pr.TargetAltitude)
	}

	crossings := Detect(pr.Altitude, projected)
	if len(crossings) == 0 {
		return false, 0, Crossing{}
	}
	first := crossings[0]
	return true, (first.Boundary - pr.Altitude) / pr.VerticalRate, first
}
