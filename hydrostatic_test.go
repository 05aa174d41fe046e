package wellbore

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHydrostaticPressure(t *testing.T) {
	fresh := []FluidLayer{{Top: 0, Bottom: 1000, Nam: "water", Density: 1000}}

	// 1000 m of fresh water
	assert.InDelta(t, 9806.65, HydrostaticPressure(fresh, nil, 1000.), 1e-9)
	assert.InDelta(t, 4903.325, HydrostaticPressure(fresh, nil, 500.), 1e-9)

	t.Run("target clamps to the column", func(t *testing.T) {
		assert.InDelta(t, 9806.65, HydrostaticPressure(fresh, nil, 5000.), 1e-9)
		assert.Equal(t, 0., HydrostaticPressure(fresh, nil, -100.))
	})

	t.Run("layered column", func(t *testing.T) {
		lys := []FluidLayer{
			{Top: 0, Bottom: 400, Density: 1000},
			{Top: 400, Bottom: 1000, Density: 1800},
		}
		want := (1000.*400. + 1800.*600.) * gravity / 1000.
		assert.InDelta(t, want, HydrostaticPressure(lys, nil, 1000.), 1e-9)
	})

	t.Run("deviated hole shortens the column", func(t *testing.T) {
		half := func(md float64) float64 { return md / 2. }
		assert.InDelta(t, 1000.*gravity*500./1000., HydrostaticPressure(fresh, half, 500.), 1e-9)
	})

	t.Run("empty layers", func(t *testing.T) {
		assert.Equal(t, 0., HydrostaticPressure(nil, nil, 1000.))
	})

	t.Run("non-finite density dropped", func(t *testing.T) {
		lys := []FluidLayer{
			{Top: 0, Bottom: 500, Density: math.NaN()},
			{Top: 500, Bottom: 1000, Density: 1000},
		}
		assert.InDelta(t, 1000.*gravity*500./1000., HydrostaticPressure(lys, nil, 1000.), 1e-9)
	})
}

func TestHydrostaticMonotone(t *testing.T) {
	lys := []FluidLayer{
		{Top: 0, Bottom: 300, Density: 900},
		{Top: 300, Bottom: 1400, Density: 1240},
		{Top: 1400, Bottom: 2500, Density: 1900},
	}
	prev := 0.
	for d := 0.; d <= 3000.; d += 100. {
		p := HydrostaticPressure(lys, nil, d)
		assert.GreaterOrEqual(t, p, prev)
		prev = p
	}
}

func TestKickDifferential(t *testing.T) {
	str := []FluidLayer{{Top: 0, Bottom: 1000, Density: 1000}}
	ann := []FluidLayer{{Top: 0, Bottom: 1000, Density: 1200}}
	assert.InDelta(t, 200.*gravity*1000./1000., KickDifferential(str, ann, nil, 1000.), 1e-9)
	assert.InDelta(t, 0., KickDifferential(str, str, nil, 1000.), 1e-12)
}
