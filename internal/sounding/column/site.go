package column

import (
	"fmt"
	"sort"

	"isa-explorer/pkg/atmosphere"
	"isa-explorer/pkg/types"
)

// LaunchSite is a sounding station. SurfaceTemperature is used as the
// sea-level temperature of every probe launched there.
type LaunchSite struct {
	ID                 string
	Name               string
	Position           types.Vec2
	Elevation          float64 // m
	SurfaceTemperature float64 // K
}

func (c *Column) AddLaunchSite(id, name string, x, elevation, surfaceTemperature float64) error {
	if elevation < atmosphere.MinAltitude || elevation > atmosphere.MaxAltitude {
		return fmt.Errorf("site %s: elevation %.0f outside %.0f to %.0f",
			id, elevation, atmosphere.MinAltitude, atmosphere.MaxAltitude)
	}
	if _, exists := c.Sites[id]; !exists {
		c.SiteOrder = append(c.SiteOrder, id)
	}
	c.Sites[id] = &LaunchSite{
		ID:                 id,
		Name:               name,
		Position:           types.NewVec2(x, c.AltitudeToY(elevation)),
		Elevation:          elevation,
		SurfaceTemperature: surfaceTemperature,
	}
	return nil
}

func (c *Column) Site(id string) (*LaunchSite, bool) {
	s, ok := c.Sites[id]
	return s, ok
}

// SiteIDs lists sites alphabetically.
func (c *Column) SiteIDs() []string {
	ids := append([]string(nil), c.SiteOrder...)
	sort.Strings(ids)
	return ids
}
