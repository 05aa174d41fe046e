package wellbore

import "math"

// Results are the pressure series of one schedule evaluation, one row per
// pumped-volume step.
type Results struct {
	V        []float64 // cumulative pumped volume [m³]
	Pstring  []float64 // hydrostatic at the bit, string side [kPa]
	Pannulus []float64 // hydrostatic at the bit, annulus side [kPa]
	Kick     []float64 // annulus − string [kPa]
}

// Evaluate runs a displacement schedule, no progress reporting.
func (ev *Evaluator) Evaluate(stages []Stage) Results {
	r := ev.buildRealization(stages)
	nt := ev.nsteps(r.vtot)
	dv := ev.DV
	if dv <= 0. {
		dv = defaultDV
	}

	res := Results{
		V:        make([]float64, nt),
		Pstring:  make([]float64, nt),
		Pannulus: make([]float64, nt),
		Kick:     make([]float64, nt),
	}
	for j := 0; j < nt; j++ {
		pumped := math.Min(float64(j)*dv, r.vtot)
		ps, pa, k := r.pressures(pumped)
		res.V[j], res.Pstring[j], res.Pannulus[j], res.Kick[j] = pumped, ps, pa, k
	}
	return res
}

// Final is the end-of-schedule state: the settled partitions and bit
// pressures once the full volume is pumped.
func (ev *Evaluator) Final(stages []Stage) (str, ann []FluidLayer, ps, pa float64) {
	r := ev.buildRealization(stages)
	str, ann = r.place(r.vtot)
	ps, pa, _ = r.pressures(r.vtot)
	return str, ann, ps, pa
}
