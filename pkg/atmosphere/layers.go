package atmosphere

// Layer is one band of the standard atmosphere. Base values apply at Start,
// the geopotential altitude (m) where the layer begins.
type Layer struct {
	Name            string
	Start           float64 // m, geopotential
	End             float64 // m, geopotential
	BaseTemperature float64 // K
	BasePressure    float64 // Pa
	LapseRate       float64 // K/m, 0 for isothermal layers
}

// IsIsothermal reports whether temperature is constant through the layer.
func (l Layer) IsIsothermal() bool {
	return l.LapseRate == 0
}

var layerStartAltitudes = [8]float64{0, 11000, 20000, 32000, 47000, 51000, 71000, 80000}

var layerStartTemperatures = [8]float64{288.15, 216.65, 216.65, 228.65, 270.65, 270.65, 214.65, 196.65}

var layerStartPressures = [8]float64{
	1.01325e5, 2.263204e4, 5.474879e3, 8.68016e2, 1.109058e2, 6.693853e1, 3.956392, 8.8627722e-1,
}

var layerLapseRates = [7]float64{-6.5e-3, 0, 1.0e-3, 2.8e-3, 0, -2.8e-3, -2e-3}

var layerNames = [7]string{
	"Troposphere",
	"Tropopause",
	"Stratosphere 1",
	"Stratosphere 2",
	"Stratopause",
	"Mesosphere 1",
	"Mesosphere 2",
}

// LayerCount is the number of layers in the table.
const LayerCount = len(layerLapseRates)

// Layers returns a copy of the layer table, lowest layer first.
func Layers() []Layer {
	layers := make([]Layer, LayerCount)
	for i := range layers {
		layers[i] = layerAt(i)
	}
	return layers
}

func layerAt(i int) Layer {
	return Layer{
		Name:            layerNames[i],
		Start:           layerStartAltitudes[i],
		End:             layerStartAltitudes[i+1],
		BaseTemperature: layerStartTemperatures[i],
		BasePressure:    layerStartPressures[i],
		LapseRate:       layerLapseRates[i],
	}
}

// LayerIndex finds the layer containing a geopotential height. Layers are
// half-open [Start, End) except the last, which also admits its upper
// boundary. ok is false outside the table.
func LayerIndex(geopotentialHeight float64) (index int, ok bool) {
	for i := 0; i < LayerCount; i++ {
		if layerStartAltitudes[i] <= geopotentialHeight && geopotentialHeight < layerStartAltitudes[i+1] {
			return i, true
		}
	}
	if geopotentialHeight == layerStartAltitudes[LayerCount] {
		return LayerCount - 1, true
	}
	return 0, false
}

// LayerAtGeometricHeight resolves the layer for a geometric altitude in meters.
func LayerAtGeometricHeight(geometricHeight float64) (Layer, bool) {
	i, ok := LayerIndex(GeopotentialHeight(geometricHeight))
	if !ok {
		return Layer{}, false
	}
	return layerAt(i), true
}

// GeometricHeight inverts GeopotentialHeight.
func GeometricHeight(geopotentialHeight float64) float64 {
	return geopotentialHeight * EarthRadius / (EarthRadius - geopotentialHeight)
}

// GeopotentialHeight converts geometric altitude (m) to geopotential altitude (m).
func GeopotentialHeight(geometricHeight float64) float64 {
	return geometricHeight * (EarthRadius / (EarthRadius + geometricHeight))
}
