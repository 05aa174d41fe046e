package wellbore

import (
	"math"
	"sort"
)

// PipeSection is one run of drill pipe, heavy-weight or collar along measured
// depth. Depths and lengths in metres MD, diameters in metres.
type PipeSection struct {
	Top, Length float64
	ID, OD      float64
}

func (p *PipeSection) Bottom() float64 { return p.Top + math.Max(p.Length, 0.) }

// CapacityPerMetre: inner bore volume per metre [m³/m].
func (p *PipeSection) CapacityPerMetre() float64 {
	d := math.Max(p.ID, 0.)
	return math.Pi * d * d / 4.
}

// DisplacementPerMetre: volume swept by the pipe OD per metre [m³/m], used
// for annulus-side accounting.
func (p *PipeSection) DisplacementPerMetre() float64 {
	d := math.Max(p.OD, 0.)
	return math.Pi * d * d / 4.
}

// SteelPerMetre: metal cross-section area [m²].
func (p *PipeSection) SteelPerMetre() float64 {
	a := p.DisplacementPerMetre() - p.CapacityPerMetre()
	if a < 0. {
		return 0.
	}
	return a
}

// EnforceNoOverlap clamps an edited section against its siblings (the list
// excluding the section itself): the top is pushed down to the bottom of the
// section above, the length is kept non-negative and capped so the bottom
// does not pass the top of the section below. Only the edited section moves.
func EnforceNoOverlap(s PipeSection, siblings []PipeSection) PipeSection {
	s.Top, s.Length = clampToSiblings(s.Top, s.Length, func() ([]float64, []float64) {
		tops, bots := make([]float64, len(siblings)), make([]float64, len(siblings))
		for i, o := range siblings {
			tops[i], bots[i] = o.Top, o.Bottom()
		}
		return tops, bots
	})
	return s
}

func clampToSiblings(top, length float64, bounds func() ([]float64, []float64)) (float64, float64) {
	tops, bots := bounds()
	iprev, inext := -1, -1
	for i, t := range tops {
		// strictly above: a sibling starting at the edited top is the
		// section below, else a clamp landing flush on it re-clamps through
		if t < top && (iprev < 0 || t > tops[iprev]) {
			iprev = i
		}
		if t >= top && (inext < 0 || t < tops[inext]) {
			inext = i
		}
	}
	if iprev >= 0 && top < bots[iprev] {
		top = bots[iprev]
	}
	if length < 0. {
		length = 0.
	}
	if inext >= 0 && top+length > tops[inext] {
		length = math.Max(tops[inext]-top, 0.)
	}
	return top, length
}

func sortPipes(pipes []PipeSection) []PipeSection {
	out := make([]PipeSection, len(pipes))
	copy(out, pipes)
	sort.Slice(out, func(i, j int) bool { return out[i].Top < out[j].Top })
	return out
}

// pipeAt returns the section covering the full band [top,bottom], nil if none.
func pipeAt(pipes []PipeSection, top, bottom float64) *PipeSection {
	for i := range pipes {
		if pipes[i].Top <= top && pipes[i].Bottom() >= bottom {
			return &pipes[i]
		}
	}
	return nil
}

// stringBottom is the deepest pipe bottom, the bit depth.
func stringBottom(pipes []PipeSection) float64 {
	b := 0.
	for i := range pipes {
		if bb := pipes[i].Bottom(); bb > b {
			b = bb
		}
	}
	return b
}
