package wellbore

import (
	"fmt"
	"math"
)

// Evaluator carries everything needed to run displacement schedules against
// a fixed geometry: sorted section lists, the base fluid, the MD→TVD mapping
// (nil for a vertical hole) and the pumped-volume increment per step.
type Evaluator struct {
	Pipes       []PipeSection
	Annuli      []AnnulusSection
	BaseNam     string
	BaseDensity float64               // kg/m³
	TVD         func(float64) float64 // from the directional survey
	DV          float64               // m³ per step
}

const defaultDV = 0.5 // m³

// Evaluator builds a schedule evaluator over the well's geometry.
func (w *Well) Evaluator(tvdOf func(float64) float64) *Evaluator {
	return &Evaluator{
		Pipes:       sortPipes(w.String),
		Annuli:      sortAnnuli(w.Annulus),
		BaseNam:     w.BaseNam,
		BaseDensity: w.BaseDensity,
		TVD:         tvdOf,
		DV:          defaultDV,
	}
}

func (ev *Evaluator) tvd(md float64) float64 {
	if ev.TVD == nil {
		return math.Max(md, 0.)
	}
	return ev.TVD(md)
}

func (ev *Evaluator) maxDepth() float64 {
	d := stringBottom(ev.Pipes)
	for i := range ev.Annuli {
		if b := ev.Annuli[i].Bottom(); b > d {
			d = b
		}
	}
	return d
}

func (ev *Evaluator) nsteps(vtot float64) int {
	dv := ev.DV
	if dv <= 0. {
		dv = defaultDV
	}
	return int(math.Ceil(vtot/dv)) + 1
}

func (ev *Evaluator) Checkandprint(stages []Stage) {
	r := ev.buildRealization(stages)
	fmt.Printf("  bit at %.1f m MD (%.1f m TVD)\n", r.sb, r.bittvd)
	fmt.Printf("   string capacity %.2f m³; annular volume above bit %.2f m³\n", r.cstot, r.antot)
	fmt.Printf("   %d stages totalling %.2f m³ in %d steps\n", len(stages), r.vtot, ev.nsteps(r.vtot))
}
