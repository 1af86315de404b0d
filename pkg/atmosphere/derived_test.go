package atmosphere

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeedOfSound(t *testing.T) {
	assert.InDelta(t, 340.294, SpeedOfSound(288.15), 1e-3)
	assert.InDelta(t, 295.07, SpeedOfSound(216.65), 1e-2)
	assert.Zero(t, SpeedOfSound(0))
	assert.Zero(t, SpeedOfSound(-10))
}

func TestAirspeedConversions(t *testing.T) {
	m := NewStandardModel()

	sea, err := m.CalculateAtmosphere(0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, DensityRatio(sea), 1e-7)
	assert.InDelta(t, 1.0, PressureRatio(sea), 1e-12)
	assert.InDelta(t, 100.0, TrueAirspeed(100, sea), 1e-5)

	high, err := m.CalculateAtmosphere(11000)
	require.NoError(t, err)
	tas := TrueAirspeed(150, high)
	assert.Greater(t, tas, 150.0)
	assert.InDelta(t, 150.0, EquivalentAirspeed(tas, high), 1e-9)

	assert.InDelta(t, 1.0, Mach(SpeedOfSound(high.Temperature), high), 1e-12)
	assert.Zero(t, Mach(100, Conditions{}))
	assert.Zero(t, TrueAirspeed(100, Conditions{}))
}
