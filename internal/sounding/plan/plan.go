package plan

import (
	"fmt"

	"isa-explorer/pkg/atmosphere"
	"isa-explorer/pkg/types"
)

type AscentSegment struct {
	TargetAltitude float64 // m, geometric
	AscentRate     float64 // m/s, always positive; direction comes from the target
}

type AscentPlan struct {
	LaunchSiteID        string
	ProbeID             types.ProbeID
	Route               []AscentSegment // Sequence of segments
	CurrentSegmentIndex int
}

// NewAscentPlan validates each segment against the model's altitude limits.
func NewAscentPlan(siteID string, id types.ProbeID, segments []AscentSegment) (*AscentPlan, error) {
	for i, seg := range segments {
		if seg.TargetAltitude < atmosphere.MinAltitude || seg.TargetAltitude > atmosphere.MaxAltitude {
			return nil, fmt.Errorf("segment %d: target altitude %.0f outside %.0f to %.0f",
				i, seg.TargetAltitude, atmosphere.MinAltitude, atmosphere.MaxAltitude)
		}
		if seg.AscentRate <= 0 {
			return nil, fmt.Errorf("segment %d: ascent rate must be positive, got %.2f", i, seg.AscentRate)
		}
	}
	return &AscentPlan{
		LaunchSiteID: siteID,
		ProbeID:      id,
		Route:        segments,
	}, nil
}

// Current returns the active segment, or false once the plan is complete.
func (p *AscentPlan) Current() (AscentSegment, bool) {
	if p == nil || p.CurrentSegmentIndex >= len(p.Route) {
		return AscentSegment{}, false
	}
	return p.Route[p.CurrentSegmentIndex], true
}

func (p *AscentPlan) Advance() {
	if p.CurrentSegmentIndex < len(p.Route) {
		p.CurrentSegmentIndex++
	}
}

func (p *AscentPlan) Done() bool {
	return p == nil || p.CurrentSegmentIndex >= len(p.Route)
}

// Ceiling is the highest altitude any segment asks for.
func (p *AscentPlan) Ceiling() float64 {
	ceiling := atmosphere.MinAltitude
	for _, seg := range p.Route {
		if seg.TargetAltitude > ceiling {
			ceiling = seg.TargetAltitude
		}
	}
	return ceiling
}
