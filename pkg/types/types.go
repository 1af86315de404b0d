package types

import (
	"math"
	"time"
)

type ProbeID string

type Vec2 struct {
	X float64
	Y float64
}

func NewVec2(x, y float64) Vec2 {
	return Vec2{x, y}
}

func (v1 Vec2) DistanceTo(v2 Vec2) float64 {
	dx := v1.X - v2.X
	dy := v1.Y - v2.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Sample is one atmosphere reading at a geometric altitude.
type Sample struct {
	Altitude    float64 // m, geometric
	Layer       string
	Pressure    float64 // Pa
	Temperature float64 // K
	Density     float64 // kg/m³
	At          time.Duration
}

// TemperatureCelsius is the sample temperature in °C.
func (s Sample) TemperatureCelsius() float64 {
	return s.Temperature - 273.15
}

// PressureHPa is the sample pressure in hectopascals.
func (s Sample) PressureHPa() float64 {
	return s.Pressure / 100
}
