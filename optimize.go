package wellbore

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/maseology/glbopt"
	"github.com/maseology/mmaths"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
)

// OptimizeKillDensity searches stage istage's mud density over [rhoLo,rhoHi]
// kg/m³ so the settled annulus pressure at the bit meets targetkPa - the
// kill-sheet problem. Returns the density found and the pressure it yields.
func OptimizeKillDensity(ev *Evaluator, stages []Stage, istage int, targetkPa, rhoLo, rhoHi float64) (float64, float64) {
	if istage < 0 || istage >= len(stages) {
		return 0., 0.
	}

	t0 := func(u float64) float64 {
		return mmaths.LogLinearTransform(rhoLo, rhoHi, u)
	}

	eval := func(rho float64) float64 {
		ss := make([]Stage, len(stages))
		copy(ss, stages)
		ss[istage].Density = rho
		r := ev.buildRealization(ss)
		_, pa, _ := r.pressures(r.vtot)
		return pa
	}

	rng := rand.New(mrg63k3a.New())
	rng.Seed(time.Now().UnixNano())

	gen := func(u []float64) float64 {
		return math.Abs(eval(t0(u[0])) - targetkPa)
	}
	fmt.Println(" optimizing..")
	uFinal, _ := glbopt.SCE(16, 1, rng, gen, true)

	rho := t0(uFinal[0])
	return rho, eval(rho)
}
