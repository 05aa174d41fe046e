package wellbore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader(t *testing.T) {
	dir := t.TempDir()
	write := func(nam, body string) string {
		fp := filepath.Join(dir, nam)
		require.NoError(t, os.WriteFile(fp, []byte(body), 0644))
		return fp
	}

	l := &Loader{
		Nam:      "test",
		BaseNam:  "mud",
		Fstring:  write("string.csv", "top,length,id,od\n2300,200,0.0713,0.165\n0,2300,0.1086,0.127\n"),
		Fannulus: write("annulus.csv", "top,length,id,cased\n0,500,0.340,true\n500,2000,0.216,false\n"),
		Fsteps:   write("steps.csv", "top,bottom,density,name,placement\n2000,2500,1900,slurry,annulus\n0,100,900,diesel,both\n"),
		Fsurvey:  write("survey.csv", "md,inc,azi\n0,0,0\n1000,0,0\n2500,45,120\n"),
	}

	w, sv, err := l.Load(1240.)
	require.NoError(t, err)

	require.Len(t, w.String, 2)
	assert.Equal(t, 0., w.String[0].Top) // sorted on load
	assert.Equal(t, 2300., w.String[1].Top)

	require.Len(t, w.Annulus, 2)
	assert.True(t, w.Annulus[0].Cased)
	assert.False(t, w.Annulus[1].Cased)

	require.Len(t, w.Steps, 2)
	assert.Equal(t, PlaceAnnulus, w.Steps[0].Placement)
	assert.Equal(t, PlaceBoth, w.Steps[1].Placement)

	assert.Equal(t, 1240., w.BaseDensity)
	assert.Equal(t, 2500., w.MaxDepth())
	require.NotNil(t, sv)
	assert.Equal(t, 2500., sv.MaxMD())

	t.Run("missing file errors", func(t *testing.T) {
		l := &Loader{Fstring: filepath.Join(dir, "nope.csv")}
		_, _, err := l.Load(1000.)
		assert.Error(t, err)
	})
}
