package wellbore

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/maseology/mmio"
	"github.com/mudware/wellbore/survey"
)

// Loader holds the required input filepaths. Fsurvey and Fsteps may be left
// blank (vertical hole, no staged fluids).
type Loader struct{ Nam, Fstring, Fannulus, Fsurvey, Fsteps, BaseNam string }

// Load builds the well aggregate from csv inputs:
//
//	string:  top,length,id,od
//	annulus: top,length,id,cased
//	steps:   top,bottom,density,name,placement
//	survey:  md,inc,azi
//
// Rows that do not parse are skipped.
func (l *Loader) Load(baseDensity float64) (*Well, *survey.Survey, error) {
	tt := mmio.NewTimer()
	w := &Well{Nam: l.Nam, BaseNam: l.BaseNam, BaseDensity: baseDensity}

	fmt.Printf(" loading: %s\n", l.Fstring)
	if err := eachrow(l.Fstring, func(rec []string) {
		if v, ok := floats(rec, 4); ok {
			w.String = append(w.String, PipeSection{Top: v[0], Length: v[1], ID: v[2], OD: v[3]})
		}
	}); err != nil {
		return nil, nil, err
	}

	fmt.Printf(" loading: %s\n", l.Fannulus)
	if err := eachrow(l.Fannulus, func(rec []string) {
		if v, ok := floats(rec, 3); ok {
			cased := len(rec) > 3 && strings.EqualFold(strings.TrimSpace(rec[3]), "true")
			w.Annulus = append(w.Annulus, AnnulusSection{Top: v[0], Length: v[1], ID: v[2], Cased: cased})
		}
	}); err != nil {
		return nil, nil, err
	}

	if len(l.Fsteps) > 0 {
		fmt.Printf(" loading: %s\n", l.Fsteps)
		if err := eachrow(l.Fsteps, func(rec []string) {
			v, ok := floats(rec, 3)
			if !ok || len(rec) < 5 {
				return
			}
			pl := PlaceBoth
			switch strings.ToLower(strings.TrimSpace(rec[4])) {
			case "string":
				pl = PlaceString
			case "annulus":
				pl = PlaceAnnulus
			}
			w.Steps = append(w.Steps, MudStep{Top: v[0], Bottom: v[1], Density: v[2], Nam: strings.TrimSpace(rec[3]), Placement: pl})
		}); err != nil {
			return nil, nil, err
		}
	}

	var sv *survey.Survey
	if len(l.Fsurvey) > 0 {
		fmt.Printf(" loading: %s\n", l.Fsurvey)
		var err error
		if sv, err = survey.ReadCSV(l.Fsurvey); err != nil {
			return nil, nil, err
		}
	}

	w.String, w.Annulus = sortPipes(w.String), sortAnnuli(w.Annulus)
	tt.Lap("well loaded")
	return w, sv, nil
}

func eachrow(fp string, fn func(rec []string)) error {
	f, err := os.Open(fp)
	if err != nil {
		return fmt.Errorf(" loader.Load %v", err)
	}
	defer f.Close()
	for rec := range mmio.LoadCSV(f) {
		fn(rec)
	}
	return nil
}

func floats(rec []string, n int) ([]float64, bool) {
	if len(rec) < n {
		return nil, false
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[i]), 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}
