package atmosphere

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayers(t *testing.T) {
	layers := Layers()
	require.Len(t, layers, 7)

	assert.Equal(t, 0.0, layers[0].Start)
	assert.Equal(t, 80000.0, layers[len(layers)-1].End)
	for i := 1; i < len(layers); i++ {
		assert.Greater(t, layers[i].Start, layers[i-1].Start)
		assert.Equal(t, layers[i-1].End, layers[i].Start)
	}

	assert.True(t, layers[1].IsIsothermal())
	assert.True(t, layers[4].IsIsothermal())
	assert.False(t, layers[0].IsIsothermal())

	// a returned copy can't change the table
	layers[0].BaseTemperature = 0
	assert.Equal(t, 288.15, Layers()[0].BaseTemperature)
}

func TestLayerIndex(t *testing.T) {
	tests := []struct {
		name   string
		hp     float64
		want   int
		wantOK bool
	}{
		{"sea level", 0, 0, true},
		{"just below tropopause", 10999.999, 0, true},
		{"tropopause start", 11000, 1, true},
		{"stratosphere 1", 25000, 2, true},
		{"mesosphere 2", 75000, 6, true},
		{"top boundary", 80000, 6, true},
		{"below table", -1, 0, false},
		{"above table", 80000.1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LayerIndex(tt.hp)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGeopotentialHeight(t *testing.T) {
	assert.Equal(t, 0.0, GeopotentialHeight(0))
	assert.InDelta(t, 4996.083346388846, GeopotentialHeight(5000), 1e-9)
	assert.InDelta(t, 79008.98110870238, GeopotentialHeight(80000), 1e-8)

	for _, h := range []float64{0, 1, 11000, 47123.4, 80000} {
		assert.InDelta(t, h, GeometricHeight(GeopotentialHeight(h)), 1e-6)
	}
}

func TestLayerAtGeometricHeight(t *testing.T) {
	l, ok := LayerAtGeometricHeight(25000)
	require.True(t, ok)
	assert.Equal(t, "Stratosphere 1", l.Name)

	// 11 km geometric sits just below 11 km geopotential
	l, ok = LayerAtGeometricHeight(11000)
	require.True(t, ok)
	assert.Equal(t, "Troposphere", l.Name)

	_, ok = LayerAtGeometricHeight(-5)
	assert.False(t, ok)
}
