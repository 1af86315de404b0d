package atmosphere

import "math"

// Gamma is the heat capacity ratio of dry air.
const Gamma = 1.4

// SpeedOfSound returns the speed of sound (m/s) at a temperature in Kelvin.
func SpeedOfSound(temperatureKelvin float64) float64 {
	if temperatureKelvin <= 0 {
		return 0
	}
	return math.Sqrt(Gamma * R * temperatureKelvin)
}

// DensityRatio is sigma, density relative to standard sea level.
func DensityRatio(c Conditions) float64 {
	return c.Density / StandardSeaLevelDensity
}

// PressureRatio is delta, pressure relative to standard sea level.
func PressureRatio(c Conditions) float64 {
	return c.Pressure / StandardSeaLevelPressure
}

// TrueAirspeed converts equivalent airspeed to true airspeed in the same units.
func TrueAirspeed(equivalentAirspeed float64, c Conditions) float64 {
	sigma := DensityRatio(c)
	if sigma <= 0 {
		return 0
	}
	return equivalentAirspeed / math.Sqrt(sigma)
}

func EquivalentAirspeed(trueAirspeed float64, c Conditions) float64 {
	return trueAirspeed * math.Sqrt(DensityRatio(c))
}

// Mach returns the Mach number for a true airspeed in m/s.
func Mach(trueAirspeedMPS float64, c Conditions) float64 {
	a := SpeedOfSound(c.Temperature)
	if a == 0 {
		return 0
	}
	return trueAirspeedMPS / a
}
