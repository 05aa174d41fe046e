package wellbore

import "math"

const gravity = 9.80665 // m/s²

// HydrostaticPressure integrates ρ·g·h over a layer partition down to a
// target true vertical depth, in kPa. Layer bounds are measured depths mapped
// through the injected tvdOf (monotone non-decreasing, typically
// survey.Survey.TVDAt); pass nil for a vertical hole. The target clamps to
// the surveyed column; a non-finite contribution is dropped rather than
// propagated.
func HydrostaticPressure(layers []FluidLayer, tvdOf func(float64) float64, toDepthTVD float64) float64 {
	if len(layers) == 0 {
		return 0.
	}
	if tvdOf == nil {
		tvdOf = func(md float64) float64 { return md }
	}

	maxTVD := 0.
	for i := range layers {
		if b := tvdOf(layers[i].Bottom); b > maxTVD {
			maxTVD = b
		}
	}
	limit := math.Min(math.Max(toDepthTVD, 0.), maxTVD)

	p := 0.
	for i := range layers {
		t, b := tvdOf(layers[i].Top), tvdOf(layers[i].Bottom)
		if b < t { // guards a misbehaving survey
			t, b = b, t
		}
		h := math.Min(b, limit) - math.Max(t, 0.)
		if h <= 0. {
			continue
		}
		dp := layers[i].Density * gravity * h / 1000. // kg/m³ → kPa
		if math.IsNaN(dp) || math.IsInf(dp, 0) {
			continue
		}
		p += dp
	}
	return p
}

// KickDifferential is the annulus-minus-string pressure imbalance at a depth,
// the well-control indicator: positive means the annulus column overbalances
// the string.
func KickDifferential(str, ann []FluidLayer, tvdOf func(float64) float64, toDepthTVD float64) float64 {
	return HydrostaticPressure(ann, tvdOf, toDepthTVD) - HydrostaticPressure(str, tvdOf, toDepthTVD)
}
