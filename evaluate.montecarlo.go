package wellbore

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/maseology/mmio"
	"github.com/maseology/montecarlo/smpln"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
)

// GenerateSamples sweeps n latin-hypercube samples of p uncertain factors
// (mud densities, hole washout, stage volumes - whatever gen maps them to)
// across nwrkrs workers, writing the sample space and the settled bit
// pressures to outdir as a time-stamped batch.
func GenerateSamples(gen func(u []float64) (*Evaluator, []Stage), n, p, nwrkrs int, outdir string) {

	// set up workers
	done := make(chan interface{})
	rin := make(chan sampleRun, nwrkrs)
	defer close(done)
	rout := evalstream(done, rin, nwrkrs)

	// build sampling plan
	rng := rand.New(mrg63k3a.New())
	rng.Seed(time.Now().UnixNano())
	sp := smpln.NewLHC(rng, n, p, false)

	outdirbatch := outdir + time.Now().Format("060102150405") // batch number = date
	func() { // save sample space
		lns := make([]string, n)
		for k := 0; k < n; k++ {
			lns[k] = fmt.Sprint(k)
			for j := 0; j < p; j++ {
				lns[k] += fmt.Sprintf(",%f", sp.U[j][k])
			}
		}
		mmio.WriteLines(outdirbatch+".samplespace.csv", lns)
	}()

	go func() {
		for k := 0; k < n; k++ {
			ut := make([]float64, p)
			for j := 0; j < p; j++ {
				ut[j] = sp.U[j][k]
			}
			ev, stages := gen(ut)
			rin <- sampleRun{i: k, ev: ev, stages: stages}
		}
		close(rin)
	}()

	tt := mmio.NewTimer()
	lns := make([]string, n+1)
	lns[0] = "sample,pstring,pannulus,kick,stringcap,annvol"
	for r := range rout {
		lns[r.i+1] = fmt.Sprintf("%d,%f,%f,%f,%f,%f", r.i, r.ps, r.pa, r.kick, r.cstot, r.antot)
	}
	mmio.WriteLines(outdirbatch+".results.csv", lns)
	tt.Lap(fmt.Sprintf("%d samples written to %s", n, outdirbatch))
}
