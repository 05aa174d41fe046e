package wellbore

import "sort"

// Overlay places a new layer onto a partition: layers wholly outside the new
// interval are kept, layers cut by it keep their remnants above and below,
// and the new layer covers exactly its own interval. The result is re-sorted
// by top. Starting from a full-span base layer the partition invariant (no
// gaps, no overlaps over [0,maxDepth]) is preserved.
func Overlay(layers []FluidLayer, nl FluidLayer) []FluidLayer {
	if nl.Bottom < nl.Top {
		nl.Top, nl.Bottom = nl.Bottom, nl.Top
	}
	if nl.Bottom == nl.Top {
		return layers
	}
	out := make([]FluidLayer, 0, len(layers)+2)
	for _, l := range layers {
		if l.Bottom <= nl.Top || l.Top >= nl.Bottom {
			out = append(out, l)
			continue
		}
		if l.Top < nl.Top {
			u := l
			u.Bottom = nl.Top
			out = append(out, u)
		}
		if l.Bottom > nl.Bottom {
			d := l
			d.Top = nl.Bottom
			out = append(out, d)
		}
	}
	out = append(out, nl)
	sort.Slice(out, func(i, j int) bool { return out[i].Top < out[j].Top })
	return out
}

// RebuildLayers converts the step sequence into the two flat layer
// partitions, each seeded with a full-span base fluid. Steps are applied in
// order; a step placed in both domains overlays both columns.
func RebuildLayers(steps []MudStep, baseNam string, baseDensity, maxDepth float64) (str, ann []FluidLayer) {
	if maxDepth <= 0. {
		return nil, nil
	}
	str = []FluidLayer{{Domain: DomainString, Bottom: maxDepth, Nam: baseNam, Fluid: baseNam, Density: baseDensity}}
	ann = []FluidLayer{{Domain: DomainAnnulus, Bottom: maxDepth, Nam: baseNam, Fluid: baseNam, Density: baseDensity}}
	for _, s := range steps {
		if s.Placement == PlaceString || s.Placement == PlaceBoth {
			str = Overlay(str, FluidLayer{Domain: DomainString, Top: s.Top, Bottom: s.Bottom, Nam: s.Nam, Fluid: s.Nam, Density: s.Density})
		}
		if s.Placement == PlaceAnnulus || s.Placement == PlaceBoth {
			ann = Overlay(ann, FluidLayer{Domain: DomainAnnulus, Top: s.Top, Bottom: s.Bottom, Nam: s.Nam, Fluid: s.Nam, Density: s.Density})
		}
	}
	return str, ann
}
