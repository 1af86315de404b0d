package atmosphere

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Seven decimal places, matching the reference tables these values came from.
const places7 = 1e-7

func TestCalculateAtmosphere_StandardDay(t *testing.T) {
	tests := []struct {
		name   string
		height float64
		want   Conditions
	}{
		{"0km", 0, Conditions{Pressure: 1.01325e5, Temperature: 288.15, Density: 1.225}},
		{"5km", 5e3, Conditions{Pressure: 54048.16782705765, Temperature: 255.67545824847247, Density: 0.7364275717}},
		{"15km", 15e3, Conditions{Pressure: 12111.583535103531, Temperature: 216.65, Density: 0.19475128960438784}},
		{"25km", 25e3, Conditions{Pressure: 2549.089455130193, Temperature: 221.55238950491957, Density: 0.040081756438850216}},
		{"40km", 40e3, Conditions{Pressure: 287.1104191361581, Temperature: 250.3519632284201, Density: 0.003995177308809338}},
		{"50km", 50e3, Conditions{Pressure: 79.76573128665314, Temperature: 270.65, Density: 0.0010267067714370681}},
		{"60km", 60e3, Conditions{Pressure: 21.952917541867947, Temperature: 247.01570363466914, Density: 0.00030960344824027507}},
		{"75km", 75e3, Conditions{Pressure: 2.38699851722098, Temperature: 208.39337517433754, Density: 3.990307341708261e-05}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(288.15)
			got, err := m.CalculateAtmosphere(tt.height)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.Temperature, got.Temperature, places7, "temperature")
			assert.InDelta(t, tt.want.Pressure, got.Pressure, places7, "pressure")
			assert.InDelta(t, tt.want.Density, got.Density, places7, "density")
		})
	}
}

func TestCalculateAtmosphere_OutOfRange(t *testing.T) {
	tests := []struct {
		name    string
		height  float64
		wantMsg string
	}{
		{"above 80km", 100e3, "geometric_height_meters, 100000.0, outside defined limits of 0 to 80000"},
		{"below 0km", -100e3, "geometric_height_meters, -100000.0, outside defined limits of 0 to 80000"},
		{"just above", 80000.5, "geometric_height_meters, 80000.5, outside defined limits of 0 to 80000"},
		{"nan", math.NaN(), "geometric_height_meters, nan, outside defined limits of 0 to 80000"},
		{"inf", math.Inf(1), "geometric_height_meters, inf, outside defined limits of 0 to 80000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewStandardModel()
			got, err := m.CalculateAtmosphere(tt.height)
			require.Error(t, err)
			assert.EqualError(t, err, tt.wantMsg)
			assert.True(t, errors.Is(err, ErrRange))
			assert.False(t, errors.Is(err, ErrType))
			assert.Equal(t, Conditions{}, got)

			var aerr *Error
			require.True(t, errors.As(err, &aerr))
			assert.Equal(t, RangeKind, aerr.Kind)
		})
	}
}

func TestCalculateAtmosphere_Bounds(t *testing.T) {
	m := NewStandardModel()

	_, err := m.CalculateAtmosphere(MinAltitude)
	assert.NoError(t, err)

	top, err := m.CalculateAtmosphere(MaxAltitude)
	require.NoError(t, err)
	assert.InDelta(t, 198.63203778259523, top.Temperature, places7)
	assert.InDelta(t, 1.0518733939065925, top.Pressure, places7)
}

func TestCalculateAtmosphere_NonStandardDay(t *testing.T) {
	m := NewModel(288.15)
	m.SetSeaLevelTemperature(300)

	got, err := m.CalculateAtmosphere(0)
	require.NoError(t, err)

	assert.InDelta(t, 300, got.Temperature, places7)
	assert.InDelta(t, 101325, got.Pressure, places7)
	assert.InDelta(t, 1.1766125174083786, got.Density, places7)
}

func TestCalculateAtmosphere_OffsetLeavesPressureAlone(t *testing.T) {
	std := NewStandardModel()
	hot := NewModel(300)

	for _, h := range []float64{0, 5e3, 11e3, 25e3, 60e3, 80e3} {
		a, err := std.CalculateAtmosphere(h)
		require.NoError(t, err)
		b, err := hot.CalculateAtmosphere(h)
		require.NoError(t, err)

		assert.Equal(t, a.Pressure, b.Pressure, "pressure at %v", h)
		assert.InDelta(t, 300-288.15, b.Temperature-a.Temperature, 1e-9, "offset at %v", h)
		assert.InDelta(t, b.Pressure/(R*b.Temperature), b.Density, 1e-15, "density at %v", h)
	}
}

func TestCalculateAtmosphere_Idempotent(t *testing.T) {
	m := NewModel(275.5)
	for _, h := range []float64{0, 1234.5, 47000, 79999.9} {
		first, err := m.CalculateAtmosphere(h)
		require.NoError(t, err)
		second, err := m.CalculateAtmosphere(h)
		require.NoError(t, err)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("CalculateAtmosphere(%v) not repeatable (-first +second):\n%s", h, diff)
		}
	}
}

// closedForm evaluates the per-layer formulas straight from the table.
func closedForm(h float64) Conditions {
	hp := h * EarthRadius / (EarthRadius + h)
	i := 0
	for i < LayerCount-1 && hp >= layerStartAltitudes[i+1] {
		i++
	}
	base := layerStartAltitudes[i]
	t0 := layerStartTemperatures[i]
	p0 := layerStartPressures[i]
	lapse := layerLapseRates[i]

	temp := t0 + lapse*(hp-base)
	var p float64
	if lapse == 0 {
		p = p0 * math.Exp(-G0*(hp-base)/(R*t0))
	} else {
		p = p0 * math.Pow(temp/t0, -G0/(R*lapse))
	}
	return Conditions{Pressure: p, Temperature: temp, Density: p / (R * temp)}
}

func TestCalculateAtmosphere_MatchesClosedForm(t *testing.T) {
	m := NewStandardModel()
	approx := cmpopts.EquateApprox(1e-12, 0)

	for h := 0.0; h < MaxAltitude; h += 250 {
		got, err := m.CalculateAtmosphere(h)
		require.NoError(t, err)
		if diff := cmp.Diff(closedForm(h), got, approx); diff != "" {
			t.Fatalf("altitude %v (-closed form +got):\n%s", h, diff)
		}
	}
}

func TestCalculateAtmosphere_ContinuousAcrossBoundaries(t *testing.T) {
	m := NewStandardModel()
	for _, l := range Layers()[1:] {
		h := GeometricHeight(l.Start)
		below, err := m.CalculateAtmosphere(h - 1e-3)
		require.NoError(t, err)
		above, err := m.CalculateAtmosphere(h + 1e-3)
		require.NoError(t, err)

		assert.InEpsilon(t, below.Pressure, above.Pressure, 1e-4, "pressure jump at %s", l.Name)
		assert.InDelta(t, below.Temperature, above.Temperature, 1e-3, "temperature jump at %s", l.Name)
	}
}

func TestCalculateAtmosphere_PressureDecreases(t *testing.T) {
	m := NewStandardModel()
	prev := math.Inf(1)
	for h := 0.0; h <= MaxAltitude; h += 500 {
		c, err := m.CalculateAtmosphere(h)
		require.NoError(t, err)
		assert.Less(t, c.Pressure, prev, "altitude %v", h)
		prev = c.Pressure
	}
}

func TestSeaLevelTemperature(t *testing.T) {
	m := NewStandardModel()
	assert.Equal(t, StandardSeaLevelTemperature, m.SeaLevelTemperature())
	assert.Zero(t, m.TemperatureOffset())

	m.SetSeaLevelTemperature(-40)
	assert.Equal(t, -40.0, m.SeaLevelTemperature())
	assert.InDelta(t, -328.15, m.TemperatureOffset(), 1e-12)
}
