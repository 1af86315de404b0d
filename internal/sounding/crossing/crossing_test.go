package crossing

import (
	"testing"

	"isa-explorer/internal/sounding/probe"
	"isa-explorer/pkg/atmosphere"
	"isa-explorer/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	t.Run("no movement", func(t *testing.T) {
		assert.Nil(t, Detect(5000, 5000))
	})

	t.Run("within one layer", func(t *testing.T) {
		assert.Empty(t, Detect(1000, 9000))
	})

	t.Run("tropopause on the way up", func(t *testing.T) {
		got := Detect(10000, 12000)
		require.Len(t, got, 1)
		assert.True(t, got[0].Ascending)
		assert.Equal(t, "Troposphere", got[0].From)
		assert.Equal(t, "Tropopause", got[0].To)
		assert.InDelta(t, atmosphere.GeometricHeight(11000), got[0].Boundary, 1e-9)
	})

	t.Run("whole column", func(t *testing.T) {
		got := Detect(0, atmosphere.MaxAltitude)
		require.Len(t, got, atmosphere.LayerCount-1)
		for i := 1; i < len(got); i++ {
			assert.Greater(t, got[i].Boundary, got[i-1].Boundary)
			assert.Equal(t, got[i-1].To, got[i].From)
		}
	})

	t.Run("descending order", func(t *testing.T) {
		got := Detect(25000, 5000)
		require.Len(t, got, 2)
		assert.False(t, got[0].Ascending)
		assert.Equal(t, "Stratosphere 1", got[0].From)
		assert.Equal(t, "Tropopause", got[0].To)
		assert.Equal(t, "Troposphere", got[1].To)
	})

	t.Run("each boundary counted once", func(t *testing.T) {
		b := atmosphere.GeometricHeight(11000)
		assert.Len(t, Detect(b-1, b), 1)
		assert.Empty(t, Detect(b, b+1), "already counted on arrival")
		assert.Len(t, Detect(b, b-1), 1)
	})
}

func newProbe(t *testing.T, alt, rate, target float64) *probe.Probe {
	t.Helper()
	pr, err := probe.NewProbe("RS200", types.Vec2{}, alt, 0, atmosphere.NewStandardModel(), nil, nil)
	require.NoError(t, err)
	pr.VerticalRate = rate
	pr.TargetAltitude = target
	return pr
}

func TestPredictCrossing(t *testing.T) {
	t.Run("crossing inside the window", func(t *testing.T) {
		pr := newProbe(t, 10000, 5, 20000)
		ok, secs, c := PredictCrossing(pr, 300)
		require.True(t, ok)
		assert.Equal(t, "Tropopause", c.To)
		assert.InDelta(t, (atmosphere.GeometricHeight(11000)-10000)/5, secs, 1e-9)
	})

	t.Run("window too short", func(t *testing.T) {
		pr := newProbe(t, 10000, 5, 20000)
		ok, _, _ := PredictCrossing(pr, 100)
		assert.False(t, ok)
	})

	t.Run("levels off before the boundary", func(t *testing.T) {
		pr := newProbe(t, 10000, 5, 10500)
		ok, _, _ := PredictCrossing(pr, 1000)
		assert.False(t, ok)
	})

	t.Run("descending", func(t *testing.T) {
		pr := newProbe(t, 12000, -15, 0)
		ok, secs, c := PredictCrossing(pr, 120)
		require.True(t, ok)
		assert.False(t, c.Ascending)
		assert.Greater(t, secs, 0.0)
	})

	t.Run("stationary", func(t *testing.T) {
		pr := newProbe(t, 10999, 0, 10999)
		ok, _, _ := PredictCrossing(pr, 1e6)
		assert.False(t, ok)
	})
}
