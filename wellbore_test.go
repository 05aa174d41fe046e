package wellbore

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGeometry() ([]PipeSection, []AnnulusSection) {
	pipes := []PipeSection{{Top: 0, Length: 2500, ID: .0953, OD: .127}}
	annuli := []AnnulusSection{
		{Top: 0, Length: 500, ID: .340, Cased: true},
		{Top: 500, Length: 2000, ID: .311},
	}
	return pipes, annuli
}

func TestSliceGeometry(t *testing.T) {
	pipes, annuli := testGeometry()
	sls := SliceGeometry(pipes, annuli)
	require.Len(t, sls, 2)

	assert.Equal(t, 0., sls[0].Top)
	assert.Equal(t, 500., sls[0].Bottom)
	assert.Equal(t, 500., sls[1].Top)
	assert.Equal(t, 2500., sls[1].Bottom)

	a0 := math.Pi * (.340*.340 - .127*.127) / 4.
	a1 := math.Pi * (.311*.311 - .127*.127) / 4.
	assert.InDelta(t, a0, sls[0].Area, 1e-12)
	assert.InDelta(t, a1, sls[1].Area, 1e-12)
	assert.InDelta(t, a0*500., sls[0].Volume, 1e-9)
	assert.InDelta(t, a1*2000., sls[1].Volume, 1e-9)
}

func TestSliceGeometryEdges(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, SliceGeometry(nil, nil))
		assert.Empty(t, SliceGeometry([]PipeSection{{Top: 0, Length: 100, ID: .1, OD: .12}}, nil))
	})
	t.Run("band outside annulus emits nothing", func(t *testing.T) {
		pipes := []PipeSection{{Top: 0, Length: 1000, ID: .1, OD: .12}}
		annuli := []AnnulusSection{{Top: 0, Length: 400, ID: .2}}
		sls := SliceGeometry(pipes, annuli)
		require.Len(t, sls, 1)
		assert.Equal(t, 400., sls[0].Bottom)
	})
	t.Run("zero-length section contributes nothing", func(t *testing.T) {
		annuli := []AnnulusSection{{Top: 0, Length: 400, ID: .2}, {Top: 400, Length: 0, ID: .3}}
		sls := SliceGeometry(nil, annuli)
		require.Len(t, sls, 1)
	})
	t.Run("pipe larger than hole clamps to zero", func(t *testing.T) {
		pipes := []PipeSection{{Top: 0, Length: 100, ID: .2, OD: .25}}
		annuli := []AnnulusSection{{Top: 0, Length: 100, ID: .2}}
		sls := SliceGeometry(pipes, annuli)
		require.Len(t, sls, 1)
		assert.Equal(t, 0., sls[0].Area)
		assert.Equal(t, 0., sls[0].Volume)
	})
	t.Run("negative diameters clamp", func(t *testing.T) {
		annuli := []AnnulusSection{{Top: 0, Length: 100, ID: -.2}}
		sls := SliceGeometry(nil, annuli)
		require.Len(t, sls, 1)
		assert.Equal(t, 0., sls[0].Volume)
	})
}

func TestVolumesBetween(t *testing.T) {
	pipes, annuli := testGeometry()

	v := VolumesBetween(pipes, annuli, 0., 2500.)
	assert.InDelta(t, math.Pi*.0953*.0953/4.*2500., v.StringCapacity, 1e-9)
	assert.InDelta(t, math.Pi*.127*.127/4.*2500., v.StringDisplacement, 1e-9)

	oh := VolumesBetween(pipes, annuli, 500., 2500.)
	assert.InDelta(t, math.Pi*.311*.311/4.*2000., oh.OpenHole, 1e-9)

	aw := VolumesBetween(pipes, annuli, 0., 500.)
	assert.InDelta(t, math.Pi*(.340*.340-.127*.127)/4.*500., aw.AnnularWithPipe, 1e-9)
}

func TestVolumesBetweenContracts(t *testing.T) {
	pipes, annuli := testGeometry()

	t.Run("inverted interval swaps", func(t *testing.T) {
		assert.Equal(t, VolumesBetween(pipes, annuli, 0., 1200.), VolumesBetween(pipes, annuli, 1200., 0.))
	})

	t.Run("monotone in interval length", func(t *testing.T) {
		prev := Volumes{}
		for x := 0.; x <= 2500.; x += 250. {
			v := VolumesBetween(pipes, annuli, 0., x)
			assert.GreaterOrEqual(t, v.AnnularWithPipe, prev.AnnularWithPipe)
			assert.GreaterOrEqual(t, v.StringCapacity, prev.StringCapacity)
			assert.GreaterOrEqual(t, v.StringDisplacement, prev.StringDisplacement)
			assert.GreaterOrEqual(t, v.OpenHole, prev.OpenHole)
			prev = v
		}
	})

	t.Run("additive", func(t *testing.T) {
		for _, xy := range [][2]float64{{300., 700.}, {0., 2500.}, {500., 500.}, {123.4, 2211.7}} {
			x, y := xy[0], xy[1]
			a, b, c := VolumesBetween(pipes, annuli, 0., x), VolumesBetween(pipes, annuli, x, y), VolumesBetween(pipes, annuli, 0., y)
			assert.InDelta(t, c.AnnularWithPipe, a.AnnularWithPipe+b.AnnularWithPipe, 1e-9)
			assert.InDelta(t, c.StringCapacity, a.StringCapacity+b.StringCapacity, 1e-9)
			assert.InDelta(t, c.StringDisplacement, a.StringDisplacement+b.StringDisplacement, 1e-9)
			assert.InDelta(t, c.OpenHole, a.OpenHole+b.OpenHole, 1e-9)
		}
	})

	t.Run("empty geometry totals zero", func(t *testing.T) {
		assert.Equal(t, Volumes{}, VolumesBetween(nil, nil, 0., 1000.))
	})
}
