// Package profile sweeps an atmosphere model over a range of altitudes and
// renders the result as a table or as charts.
package profile

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"

	"isa-explorer/pkg/atmosphere"
	"isa-explorer/pkg/types"
)

// Sweep samples the model at evenly spaced geometric altitudes from `from`
// to `to` inclusive. The spacing is adjusted so both ends are sampled.
func Sweep(m *atmosphere.Model, from, to, step float64) ([]types.Sample, error) {
	if step <= 0 {
		return nil, fmt.Errorf("step must be positive, got %v", step)
	}
	if to <= from {
		return nil, fmt.Errorf("empty range %v to %v", from, to)
	}

	n := int(math.Round((to-from)/step)) + 1
	if n < 2 {
		n = 2
	}
	altitudes := floats.Span(make([]float64, n), from, to)

	samples := make([]types.Sample, 0, n)
	for _, h := range altitudes {
		c, err := m.CalculateAtmosphere(h)
		if err != nil {
			return nil, err
		}
		layerName := ""
		if l, ok := atmosphere.LayerAtGeometricHeight(h); ok {
			layerName = l.Name
		}
		samples = append(samples, types.Sample{
			Altitude:    h,
			Layer:       layerName,
			Pressure:    c.Pressure,
			Temperature: c.Temperature,
			Density:     c.Density,
		})
	}
	return samples, nil
}

// Summary holds the extremes and integrated mass of a sweep.
type Summary struct {
	MinTemperature float64
	MaxTemperature float64
	MinPressure    float64
	MaxPressure    float64
	ColumnMass     float64 // kg/m², density integrated over altitude
}

func Summarize(samples []types.Sample) (Summary, error) {
	if len(samples) < 2 {
		return Summary{}, fmt.Errorf("need at least 2 samples, got %d", len(samples))
	}
	alt := make([]float64, len(samples))
	temp := make([]float64, len(samples))
	pres := make([]float64, len(samples))
	dens := make([]float64, len(samples))
	for i, s := range samples {
		alt[i] = s.Altitude
		temp[i] = s.Temperature
		pres[i] = s.Pressure
		dens[i] = s.Density
	}
	return Summary{
		MinTemperature: floats.Min(temp),
		MaxTemperature: floats.Max(temp),
		MinPressure:    floats.Min(pres),
		MaxPressure:    floats.Max(pres),
		ColumnMass:     integrate.Trapezoidal(alt, dens),
	}, nil
}
