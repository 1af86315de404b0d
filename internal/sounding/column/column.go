package column

import (
	"github.com/labstack/gommon/log"

	"isa-explorer/pkg/atmosphere"
)

// defaultSites are the stations every column starts with; x is a fraction
// of the screen width.
var defaultSites = []struct {
	id, name           string
	x                  float64
	elevation          float64 // m
	surfaceTemperature float64 // K
}{
	{"OAK", "Oakland", 0.15, 3, 288.15},
	{"DEN", "Denver", 0.35, 1611, 300.15},
	{"BRW", "Utqiagvik", 0.55, 11, 250.15},
	{"DRW", "Darwin", 0.75, 30, 303.15},
}

// Band is one ISA layer expressed in geometric altitude.
type Band struct {
	Name       string
	Bottom     float64 // m, geometric
	Top        float64 // m, geometric
	Isothermal bool
}

type Column struct {
	Bands     []*Band
	Sites     map[string]*LaunchSite
	SiteOrder []string

	// screen area the column is drawn into
	Width, Height float64
	TopMargin     float64
	BottomMargin  float64
}

func NewColumn(screenWidth, screenHeight int) *Column {
	c := &Column{
		Sites:        make(map[string]*LaunchSite),
		Width:        float64(screenWidth),
		Height:       float64(screenHeight),
		TopMargin:    20,
		BottomMargin: 80,
	}

	for _, l := range atmosphere.Layers() {
		top := atmosphere.GeometricHeight(l.End)
		if top > atmosphere.MaxAltitude {
			top = atmosphere.MaxAltitude
		}
		c.Bands = append(c.Bands, &Band{
			Name:       l.Name,
			Bottom:     atmosphere.GeometricHeight(l.Start),
			Top:        top,
			Isothermal: l.IsIsothermal(),
		})
	}

	for _, site := range defaultSites {
		if err := c.AddLaunchSite(site.id, site.name, site.x*c.Width, site.elevation, site.surfaceTemperature); err != nil {
			log.Fatalf("column: default site: %v", err)
		}
	}
	return c
}

// BandAt returns the band holding a geometric altitude; the top band
// includes the ceiling.
func (c *Column) BandAt(alt float64) (*Band, bool) {
	for i, b := range c.Bands {
		if alt >= b.Bottom && (alt < b.Top || (i == len(c.Bands)-1 && alt <= b.Top)) {
			return b, true
		}
	}
	return nil, false
}

func (c *Column) plotHeight() float64 {
	return c.Height - c.TopMargin - c.BottomMargin
}

// AltitudeToY maps a geometric altitude to a screen row, 0 m at the bottom.
func (c *Column) AltitudeToY(alt float64) float64 {
	frac := alt / atmosphere.MaxAltitude
	return c.Height - c.BottomMargin - frac*c.plotHeight()
}

func (c *Column) YToAltitude(y float64) float64 {
	frac := (c.Height - c.BottomMargin - y) / c.plotHeight()
	alt := frac * atmosphere.MaxAltitude
	if alt < atmosphere.MinAltitude {
		return atmosphere.MinAltitude
	}
	if alt > atmosphere.MaxAltitude {
		return atmosphere.MaxAltitude
	}
	return alt
}
