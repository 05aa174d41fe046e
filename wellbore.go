package wellbore

import (
	"math"
	"sort"
)

// DepthSlice is a derived band over which the governing annulus section and
// (if present) pipe section are both constant. Never persisted.
type DepthSlice struct{ Top, Bottom, Area, Volume float64 }

// SliceGeometry merges the two independent segmentations into a common set of
// depth boundaries and computes the annular area and volume per resulting
// band. Bands outside any annulus section emit no slice; bands with no pipe
// treat the pipe OD as zero. Areas clamp at zero: a pipe larger than the hole
// it sits in yields a zero slice, never a negative one.
func SliceGeometry(pipes []PipeSection, annuli []AnnulusSection) []DepthSlice {
	if len(annuli) == 0 {
		return nil
	}
	bs := make([]float64, 0, 2*(len(pipes)+len(annuli)))
	for i := range pipes {
		bs = append(bs, pipes[i].Top, pipes[i].Bottom())
	}
	for i := range annuli {
		bs = append(bs, annuli[i].Top, annuli[i].Bottom())
	}
	sort.Float64s(bs)

	out := make([]DepthSlice, 0, len(bs))
	for i := 0; i+1 < len(bs); i++ {
		t, b := bs[i], bs[i+1]
		if b <= t {
			continue
		}
		a := annulusAt(annuli, t, b)
		if a == nil {
			continue
		}
		od := 0.
		if p := pipeAt(pipes, t, b); p != nil {
			od = math.Max(p.OD, 0.)
		}
		id := math.Max(a.ID, 0.)
		area := math.Pi * (id*id - od*od) / 4.
		if area < 0. {
			area = 0.
		}
		out = append(out, DepthSlice{Top: t, Bottom: b, Area: area, Volume: area * (b - t)})
	}
	return out
}

// Volumes are the four fluid-volume quantities over a depth interval [m³].
type Volumes struct {
	AnnularWithPipe    float64 // annulus net of any pipe displacement
	StringCapacity     float64 // inner bore volume
	StringDisplacement float64 // OD-swept volume
	OpenHole           float64 // annulus ID ignoring any pipe
}

// VolumesBetween answers how much fluid volume lies between two measured
// depths. Total, never fails: an inverted interval is swapped, malformed
// geometry contributes zero.
func VolumesBetween(pipes []PipeSection, annuli []AnnulusSection, top, bottom float64) Volumes {
	if bottom < top {
		top, bottom = bottom, top
	}
	var v Volumes
	for _, s := range SliceGeometry(pipes, annuli) {
		v.AnnularWithPipe += s.Area * overlapLength(s.Top, s.Bottom, top, bottom)
	}
	for i := range pipes {
		l := overlapLength(pipes[i].Top, pipes[i].Bottom(), top, bottom)
		v.StringCapacity += pipes[i].CapacityPerMetre() * l
		v.StringDisplacement += pipes[i].DisplacementPerMetre() * l
	}
	for i := range annuli {
		v.OpenHole += annuli[i].CapacityPerMetre() * overlapLength(annuli[i].Top, annuli[i].Bottom(), top, bottom)
	}
	return v
}

func overlapLength(t, b, lo, hi float64) float64 {
	l := math.Min(b, hi) - math.Max(t, lo)
	if l < 0. {
		return 0.
	}
	return l
}
