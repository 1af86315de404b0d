package probe

import (
	"fmt"
	"math"
	"time"

	"isa-explorer/internal/sounding/plan"
	"isa-explorer/pkg/atmosphere"
	"isa-explorer/pkg/types"
)

type ProbeState int

const (
	GROUNDED ProbeState = iota
	ASCENDING
	FLOATING
	DESCENDING
	LANDED
)

var StateStringMap = map[ProbeState]string{
	GROUNDED:   "GROUNDED",
	ASCENDING:  "ASCENDING",
	FLOATING:   "FLOATING",
	DESCENDING: "DESCENDING",
	LANDED:     "LANDED",
}

const (
	DefaultAscentRate  = 5.0  // m/s, typical radiosonde balloon
	DefaultDescentRate = 15.0 // m/s under parachute

	// minimum altitude change between recorded samples
	sampleSpacing = 50.0
)

// Reporter receives probe events; the simulation's report log satisfies it.
type Reporter func(id types.ProbeID, message string, isUrgent bool)

type Probe struct {
	ID           types.ProbeID
	Position     types.Vec2
	Altitude     float64 // m, geometric
	VerticalRate float64 // m/s, signed

	TargetAltitude float64
	AscentRate     float64
	DescentRate    float64
	BurstAltitude  float64

	State   ProbeState
	Burst   bool
	Elapsed time.Duration

	Model   *atmosphere.Model
	Sample  types.Sample
	Samples []types.Sample
	Plan    *plan.AscentPlan

	report Reporter
}

// NewProbe places a grounded probe at launchAltitude. The model is owned by
// the probe; callers must not share it with another goroutine.
func NewProbe(id types.ProbeID, pos types.Vec2, launchAltitude, burstAltitude float64, model *atmosphere.Model, p *plan.AscentPlan, report Reporter) (*Probe, error) {
	if burstAltitude <= 0 || burstAltitude > atmosphere.MaxAltitude {
		burstAltitude = atmosphere.MaxAltitude
	}
	pr := &Probe{
		ID:             id,
		Position:       pos,
		Altitude:       launchAltitude,
		TargetAltitude: launchAltitude, // Stays put until launched
		AscentRate:     DefaultAscentRate,
		DescentRate:    DefaultDescentRate,
		BurstAltitude:  burstAltitude,
		State:          GROUNDED,
		Model:          model,
		Plan:           p,
		report:         report,
	}
	if err := pr.sample(); err != nil {
		return nil, fmt.Errorf("probe %s: %w", id, err)
	}
	return pr, nil
}

// Launch starts the first plan segment.
func (pr *Probe) Launch() {
	seg, ok := pr.Plan.Current()
	if !ok {
		return
	}
	pr.AscentRate = seg.AscentRate
	pr.SetAltitude(seg.TargetAltitude)
	pr.emit(fmt.Sprintf("Launched, climbing to %.0f m at %.1f m/s", seg.TargetAltitude, seg.AscentRate), false)
}

func (pr *Probe) Update(dt float64) error {
	if pr.State == GROUNDED || pr.State == LANDED {
		return nil
	}
	pr.Elapsed += time.Duration(dt * float64(time.Second))

	switch {
	case pr.Altitude < pr.TargetAltitude:
		step := pr.AscentRate * dt
		if remaining := pr.TargetAltitude - pr.Altitude; step >= remaining {
			pr.Altitude = pr.TargetAltitude
			pr.reachedTarget()
		} else {
			pr.VerticalRate = pr.AscentRate
			pr.Altitude += step
		}
	case pr.Altitude > pr.TargetAltitude:
		step := pr.DescentRate * dt
		if remaining := pr.Altitude - pr.TargetAltitude; step >= remaining {
			pr.Altitude = pr.TargetAltitude
			pr.reachedTarget()
		} else {
			pr.VerticalRate = -pr.DescentRate
			pr.Altitude -= step
		}
	default:
		pr.VerticalRate = 0
	}

	if !pr.Burst && pr.Altitude >= pr.BurstAltitude {
		pr.Altitude = pr.BurstAltitude
		pr.burst()
	}

	return pr.sample()
}

func (pr *Probe) reachedTarget() {
	pr.VerticalRate = 0
	if pr.State == DESCENDING && pr.Altitude <= atmosphere.MinAltitude {
		pr.State = LANDED
		pr.emit("Landed", false)
		return
	}
	seg, _ := pr.Plan.Current()
	if pr.Plan.Done() || pr.Burst || seg.TargetAltitude != pr.Altitude {
		// plan finished, or the probe was sent somewhere off-plan
		pr.State = FLOATING
		return
	}

	pr.Plan.Advance()
	if pr.Plan.Done() {
		pr.State = FLOATING
		pr.emit(fmt.Sprintf("Plan complete, floating at %.0f m", pr.Altitude), false)
		return
	}
	seg, _ = pr.Plan.Current()
	pr.AscentRate = seg.AscentRate
	pr.SetAltitude(seg.TargetAltitude)
}

func (pr *Probe) burst() {
	pr.Burst = true
	pr.State = DESCENDING
	pr.TargetAltitude = atmosphere.MinAltitude
	pr.emit(fmt.Sprintf("Balloon burst at %.0f m, descending", pr.Altitude), true)
}

// CutDown releases the balloon wherever the probe is.
func (pr *Probe) CutDown() {
	if pr.State == GROUNDED || pr.State == LANDED || pr.Burst {
		return
	}
	pr.Burst = true
	pr.State = DESCENDING
	pr.TargetAltitude = atmosphere.MinAltitude
	pr.emit(fmt.Sprintf("Cut down at %.0f m", pr.Altitude), true)
}

func (pr *Probe) SetAltitude(alt float64) {
	if pr.Burst {
		return
	}
	alt = math.Max(atmosphere.MinAltitude, math.Min(pr.BurstAltitude, alt))
	pr.TargetAltitude = alt
	if alt > pr.Altitude {
		pr.State = ASCENDING
	} else if alt < pr.Altitude {
		pr.State = DESCENDING
	} else {
		pr.State = FLOATING
	}
}

func (pr *Probe) SetAscentRate(rate float64) {
	if rate > 0 {
		pr.AscentRate = rate
	}
}

func (pr *Probe) sample() error {
	c, err := pr.Model.CalculateAtmosphere(pr.Altitude)
	if err != nil {
		return err
	}
	layerName := ""
	if l, ok := atmosphere.LayerAtGeometricHeight(pr.Altitude); ok {
		layerName = l.Name
	}
	pr.Sample = types.Sample{
		Altitude:    pr.Altitude,
		Layer:       layerName,
		Pressure:    c.Pressure,
		Temperature: c.Temperature,
		Density:     c.Density,
		At:          pr.Elapsed,
	}
	if n := len(pr.Samples); n == 0 || math.Abs(pr.Altitude-pr.Samples[n-1].Altitude) >= sampleSpacing {
		pr.Samples = append(pr.Samples, pr.Sample)
	}
	return nil
}

func (pr *Probe) emit(message string, isUrgent bool) {
	if pr.report != nil {
		pr.report(pr.ID, message, isUrgent)
	}
}
