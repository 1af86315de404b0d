package simulation

import (
	"fmt"
	"math"
	"sort"

	"github.com/labstack/gommon/log"

	"isa-explorer/internal/config"
	"isa-explorer/internal/sounding/column"
	"isa-explorer/internal/sounding/crossing"
	"isa-explorer/internal/sounding/plan"
	"isa-explorer/internal/sounding/probe"
	"isa-explorer/pkg/atmosphere"
	"isa-explorer/pkg/types"
)

type Simulation struct {
	Probes    map[types.ProbeID]*probe.Probe
	Column    *column.Column
	Model     *atmosphere.Model
	TickRate  float64
	TimeScale float64

	SimTimeSeconds float64

	Launches         int
	Landings         int
	LayerCrossings   int
	Reports          []Report
	maxReportLogSize int

	nextProbeID   int
	maxProbes     int
	ascentRate    float64
	burstAltitude float64
}

func NewSimulation(cfg config.Config) *Simulation {
	return &Simulation{
		Probes:    make(map[types.ProbeID]*probe.Probe),
		Column:    column.NewColumn(cfg.WindowWidth, cfg.WindowHeight),
		Model:     atmosphere.NewModel(cfg.SeaLevelTemperature),
		TickRate:  cfg.TickRate,
		TimeScale: cfg.TimeScale,

		maxReportLogSize: 50,
		nextProbeID:      100,
		maxProbes:        cfg.MaxProbes,
		ascentRate:       cfg.AscentRate,
		burstAltitude:    cfg.BurstAltitude,
	}
}

// Update advances the simulation by dt real seconds.
func (s *Simulation) Update(dt float64) {
	simDt := dt * s.TimeScale
	s.SimTimeSeconds += simDt

	for _, id := range s.ProbeIDs() {
		pr := s.Probes[id]
		prev := pr.Altitude
		wasLanded := pr.State == probe.LANDED

		if err := pr.Update(simDt); err != nil {
			log.Errorf("probe %s: %v", id, err)
			continue
		}

		for _, c := range crossing.Detect(prev, pr.Altitude) {
			s.LayerCrossings++
			dir := "descending"
			if c.Ascending {
				dir = "ascending"
			}
			s.AddReport(id, fmt.Sprintf("%s into %s at %.0f m", dir, c.To, c.Boundary), false)
			log.Debugf("CROSSING: %s %s -> %s at %.0f m", id, c.From, c.To, c.Boundary)
		}

		if !wasLanded && pr.State == probe.LANDED {
			s.Landings++
		}
	}

	s.CleanupProbes()
}

// ProbeIDs returns the active probe IDs in a stable order.
func (s *Simulation) ProbeIDs() []types.ProbeID {
	ids := make([]types.ProbeID, 0, len(s.Probes))
	for id := range s.Probes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// LaunchProbe releases a probe from a site. With no segments the probe
// climbs at the configured rate until it bursts.
func (s *Simulation) LaunchProbe(siteID string, segments ...plan.AscentSegment) (types.ProbeID, error) {
	site, ok := s.Column.Site(siteID)
	if !ok {
		return "", fmt.Errorf("site %s not found", siteID)
	}
	if len(s.Probes) >= s.maxProbes {
		return "", fmt.Errorf("probe limit of %d reached", s.maxProbes)
	}

	if len(segments) == 0 {
		segments = []plan.AscentSegment{{TargetAltitude: s.burstAltitude, AscentRate: s.ascentRate}}
	}

	id := types.ProbeID(fmt.Sprintf("RS%03d", s.nextProbeID))
	ascent, err := plan.NewAscentPlan(site.ID, id, segments)
	if err != nil {
		return "", fmt.Errorf("launch from %s: %w", siteID, err)
	}

	// a plan that asks for more than the configured burst altitude gets it
	burstAltitude := math.Max(s.burstAltitude, ascent.Ceiling())

	model := atmosphere.NewModel(site.SurfaceTemperature)
	pr, err := probe.NewProbe(id, site.Position, site.Elevation, burstAltitude, model, ascent, s.AddReport)
	if err != nil {
		return "", fmt.Errorf("launch from %s: %w", siteID, err)
	}

	s.nextProbeID++
	s.Probes[id] = pr
	s.Launches++
	pr.Launch()

	log.Infof("Launched probe %s from %s (%s), surface %.2f K, burst %.0f m",
		id, site.ID, site.Name, site.SurfaceTemperature, pr.BurstAltitude)
	return id, nil
}

// CleanupProbes drops probes that have landed.
func (s *Simulation) CleanupProbes() {
	for id, pr := range s.Probes {
		if pr.State == probe.LANDED {
			log.Infof("Probe %s landed after %s, %d samples", id, pr.Elapsed, len(pr.Samples))
			delete(s.Probes, id)
		}
	}
}

// SetSeaLevelTemperature changes the reference model and every active probe.
func (s *Simulation) SetSeaLevelTemperature(kelvin float64) {
	s.Model.SetSeaLevelTemperature(kelvin)
	for _, pr := range s.Probes {
		pr.Model.SetSeaLevelTemperature(kelvin)
	}
	log.Infof("Sea-level temperature set to %.2f K (offset %+.2f K)", kelvin, s.Model.TemperatureOffset())
}

// Query evaluates the reference model at a geometric altitude given as any
// Go number.
func (s *Simulation) Query(altitude any) (atmosphere.Conditions, error) {
	return s.Model.CalculateAtmosphereValue(altitude)
}

// IssueAltitude sends a probe to a new target. altitude may be any Go
// number; an out-of-range value is an atmosphere RangeKind error.
func (s *Simulation) IssueAltitude(id types.ProbeID, altitude any) error {
	if pr, ok := s.Probes[id]; ok {
		if err := atmosphere.CheckRange("altitude", altitude, atmosphere.MinAltitude, atmosphere.MaxAltitude); err != nil {
			return err
		}
		alt, _ := atmosphere.CheckNumeric("altitude", altitude)
		pr.SetAltitude(alt)
		return nil
	}
	return fmt.Errorf("probe %s not found", id)
}

func (s *Simulation) IssueAscentRate(id types.ProbeID, rate float64) error {
	if pr, ok := s.Probes[id]; ok {
		if rate <= 0 {
			return fmt.Errorf("ascent rate must be positive, got %.2f", rate)
		}
		pr.SetAscentRate(rate)
		return nil
	}
	return fmt.Errorf("probe %s not found", id)
}

func (s *Simulation) IssueCutDown(id types.ProbeID) error {
	if pr, ok := s.Probes[id]; ok {
		pr.CutDown()
		return nil
	}
	return fmt.Errorf("probe %s not found", id)
}
