package wellbore

import (
	"math"
	"sort"
)

// AnnulusSection is one run of borehole wall or casing along measured depth.
// ID is the hole (or casing inner) diameter in metres.
type AnnulusSection struct {
	Top, Length float64
	ID          float64
	Cased       bool
}

func (a *AnnulusSection) Bottom() float64 { return a.Top + math.Max(a.Length, 0.) }

// CapacityPerMetre: open-hole volume per metre, ignoring any pipe [m³/m].
func (a *AnnulusSection) CapacityPerMetre() float64 {
	d := math.Max(a.ID, 0.)
	return math.Pi * d * d / 4.
}

// EnforceNoOverlapAnnulus applies the same neighbour-aware clamp used for the
// drill string to an edited annulus section.
func EnforceNoOverlapAnnulus(s AnnulusSection, siblings []AnnulusSection) AnnulusSection {
	s.Top, s.Length = clampToSiblings(s.Top, s.Length, func() ([]float64, []float64) {
		tops, bots := make([]float64, len(siblings)), make([]float64, len(siblings))
		for i, o := range siblings {
			tops[i], bots[i] = o.Top, o.Bottom()
		}
		return tops, bots
	})
	return s
}

func sortAnnuli(annuli []AnnulusSection) []AnnulusSection {
	out := make([]AnnulusSection, len(annuli))
	copy(out, annuli)
	sort.Slice(out, func(i, j int) bool { return out[i].Top < out[j].Top })
	return out
}

func annulusAt(annuli []AnnulusSection, top, bottom float64) *AnnulusSection {
	for i := range annuli {
		if annuli[i].Top <= top && annuli[i].Bottom() >= bottom {
			return &annuli[i]
		}
	}
	return nil
}
