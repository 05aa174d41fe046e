package wellbore

import "math"

// Stage is one pumped fluid batch in a displacement schedule.
type Stage struct {
	Nam     string
	Density float64 // kg/m³
	Volume  float64 // m³
}

// realization is the frozen state of one schedule evaluation: geometry
// reduced to cumulative-volume tables so fluid fronts can be positioned by
// inverting pumped volume along the string-then-annulus path.
type realization struct {
	ev     *Evaluator
	stages []Stage
	slices []DepthSlice // clipped to above the bit
	sb     float64      // bit depth [m MD]
	cstot  float64      // string capacity surface→bit [m³]
	antot  float64      // annular volume bit→surface [m³]
	vtot   float64      // total scheduled volume [m³]
	bittvd float64
}

func (ev *Evaluator) buildRealization(stages []Stage) *realization {
	sb := stringBottom(ev.Pipes)
	r := &realization{
		ev:     ev,
		stages: stages,
		sb:     sb,
		bittvd: ev.tvd(sb),
	}
	for _, s := range SliceGeometry(ev.Pipes, ev.Annuli) {
		if s.Top >= sb {
			continue
		}
		if s.Bottom > sb { // partial band straddling the bit
			s.Volume = s.Area * (sb - s.Top)
			s.Bottom = sb
		}
		r.slices = append(r.slices, s)
		r.antot += s.Volume
	}
	for i := range ev.Pipes {
		r.cstot += ev.Pipes[i].CapacityPerMetre() * math.Max(ev.Pipes[i].Length, 0.)
	}
	for _, s := range stages {
		r.vtot += math.Max(s.Volume, 0.)
	}
	return r
}

// depthAtStringVolume inverts cumulative bore capacity from surface: the
// measured depth at which v m³ of fluid ends inside the string.
func (r *realization) depthAtStringVolume(v float64) float64 {
	if v <= 0. {
		return 0.
	}
	if v >= r.cstot {
		return r.sb
	}
	acc := 0.
	for i := range r.ev.Pipes {
		p := &r.ev.Pipes[i]
		c := p.CapacityPerMetre()
		vol := c * math.Max(p.Length, 0.)
		if v <= acc+vol && c > 0. {
			return p.Top + (v-acc)/c
		}
		acc += vol
	}
	return r.sb
}

// depthAtAnnulusVolume inverts cumulative annular volume from the bit upward.
func (r *realization) depthAtAnnulusVolume(v float64) float64 {
	if v <= 0. || len(r.slices) == 0 {
		return r.sb
	}
	if v >= r.antot {
		return r.slices[0].Top
	}
	acc := 0.
	for i := len(r.slices) - 1; i >= 0; i-- {
		s := r.slices[i]
		if v <= acc+s.Volume && s.Area > 0. {
			return s.Bottom - (v-acc)/s.Area
		}
		acc += s.Volume
	}
	return 0.
}

// place rebuilds the two fluid partitions for a total pumped volume: fluids
// travel down the string and back up the annulus in pumped order, the base
// fluid holding everywhere not yet reached.
func (r *realization) place(pumped float64) (str, ann []FluidLayer) {
	str, ann = RebuildLayers(nil, r.ev.BaseNam, r.ev.BaseDensity, r.ev.maxDepth())

	ptot := r.cstot + r.antot
	acc := 0.
	for _, s := range r.stages {
		a, b := acc, acc+math.Max(s.Volume, 0.)
		acc = b
		// path interval occupied now (0 = string inlet, ptot = surface returns)
		x1, x2 := pumped-b, pumped-a
		if x2 <= 0. || x1 >= ptot {
			continue
		}
		x1, x2 = math.Max(x1, 0.), math.Min(x2, ptot)

		if x1 < r.cstot {
			t := r.depthAtStringVolume(x1)
			bt := r.depthAtStringVolume(math.Min(x2, r.cstot))
			str = Overlay(str, FluidLayer{Domain: DomainString, Top: t, Bottom: bt, Nam: s.Nam, Fluid: s.Nam, Density: s.Density})
		}
		if x2 > r.cstot {
			q1, q2 := math.Max(x1, r.cstot)-r.cstot, x2-r.cstot
			t, bt := r.depthAtAnnulusVolume(q2), r.depthAtAnnulusVolume(q1)
			ann = Overlay(ann, FluidLayer{Domain: DomainAnnulus, Top: t, Bottom: bt, Nam: s.Nam, Fluid: s.Nam, Density: s.Density})
		}
	}
	return str, ann
}

// pressures at the bit for a pumped volume [kPa].
func (r *realization) pressures(pumped float64) (ps, pa, kick float64) {
	str, ann := r.place(pumped)
	ps = HydrostaticPressure(str, r.ev.TVD, r.bittvd)
	pa = HydrostaticPressure(ann, r.ev.TVD, r.bittvd)
	return ps, pa, pa - ps
}
