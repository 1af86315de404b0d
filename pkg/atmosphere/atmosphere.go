// Package atmosphere computes International Standard Atmosphere conditions
// (pressure, temperature, density) between 0 and 80 km, with an optional
// non-standard sea-level temperature.
//
// A Model is not safe for concurrent use while SetSeaLevelTemperature may be
// called. Give each goroutine its own Model or serialize access.
package atmosphere

import "math"

const (
	EarthRadius                 = 6378e3    // m
	G0                          = 9.80665   // m/s²
	R                           = 287.05287 // J/(kg·K), dry air
	StandardSeaLevelTemperature = 288.15    // K
	StandardSeaLevelPressure    = 101325.0  // Pa
	StandardSeaLevelDensity     = 1.225     // kg/m³

	MinAltitude = 0.0     // m, geometric
	MaxAltitude = 80000.0 // m, geometric
)

const heightArgName = "geometric_height_meters"

// Conditions are the atmospheric properties at one altitude.
type Conditions struct {
	Pressure    float64 // Pa
	Temperature float64 // K
	Density     float64 // kg/m³
}

type Model struct {
	seaLevelTemperature float64
}

// NewModel returns a model for a day with the given sea-level temperature (K).
func NewModel(seaLevelTemperature float64) *Model {
	return &Model{seaLevelTemperature: seaLevelTemperature}
}

func NewStandardModel() *Model {
	return NewModel(StandardSeaLevelTemperature)
}

// SetSeaLevelTemperature sets the sea-level temperature (K) for non-standard
// day queries. No limits are applied.
func (m *Model) SetSeaLevelTemperature(temperatureKelvin float64) {
	m.seaLevelTemperature = temperatureKelvin
}

func (m *Model) SeaLevelTemperature() float64 {
	return m.seaLevelTemperature
}

// TemperatureOffset is the shift applied to every standard-layer temperature.
func (m *Model) TemperatureOffset() float64 {
	return m.seaLevelTemperature - StandardSeaLevelTemperature
}

// CalculateAtmosphere returns the conditions at a geometric altitude in meters.
// Altitudes outside [MinAltitude, MaxAltitude] fail with a RangeKind *Error.
func (m *Model) CalculateAtmosphere(geometricHeightMeters float64) (Conditions, error) {
	if err := checkWithinLimits(heightArgName, geometricHeightMeters, MinAltitude, MaxAltitude); err != nil {
		return Conditions{}, err
	}

	hp := GeopotentialHeight(geometricHeightMeters)
	i, ok := LayerIndex(hp)
	if !ok {
		// unreachable for validated input: 80 km geometric is ~79 km geopotential
		return Conditions{}, newRangeError(heightArgName, formatValue(geometricHeightMeters), MinAltitude, MaxAltitude)
	}
	layer := layerAt(i)

	standardTemperature := layerTemperature(layer, hp)
	pressure := layerPressure(layer, standardTemperature, hp)
	temperature := standardTemperature + m.TemperatureOffset()

	return Conditions{
		Pressure:    pressure,
		Temperature: temperature,
		Density:     pressure / (R * temperature),
	}, nil
}

func layerTemperature(l Layer, geopotentialHeight float64) float64 {
	return l.BaseTemperature + l.LapseRate*(geopotentialHeight-l.Start)
}

// Pressure always uses the standard-day temperature; the sea-level offset
// only shifts reported temperature and density.
func layerPressure(l Layer, temperature, geopotentialHeight float64) float64 {
	if l.IsIsothermal() {
		return l.BasePressure * math.Exp(-G0*(geopotentialHeight-l.Start)/(R*l.BaseTemperature))
	}
	return l.BasePressure * math.Pow(temperature/l.BaseTemperature, -G0/(R*l.LapseRate))
}

func checkWithinLimits(name string, v, low, high float64) error {
	if low <= v && v <= high {
		return nil
	}
	return newRangeError(name, formatValue(v), low, high)
}
