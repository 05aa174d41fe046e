package wellbore

import (
	"fmt"
	"math"

	"github.com/gosuri/uiprogress"
)

// EvaluateSerial runs a displacement schedule with a progress bar, writing
// the pressure series to outdirprfx when given.
func (ev *Evaluator) EvaluateSerial(stages []Stage, outdirprfx string) Results {
	r := ev.buildRealization(stages)
	nt := ev.nsteps(r.vtot)
	dv := ev.DV
	if dv <= 0. {
		dv = defaultDV
	}

	uiprogress.Start()
	pumpstep := make(chan string)
	bar := uiprogress.AddBar(nt).AppendCompleted().PrependElapsed()
	bar.PrependFunc(func(b *uiprogress.Bar) string {
		return <-pumpstep
	})

	res := Results{
		V:        make([]float64, nt),
		Pstring:  make([]float64, nt),
		Pannulus: make([]float64, nt),
		Kick:     make([]float64, nt),
	}
	for j := 0; j < nt; j++ {
		pumped := math.Min(float64(j)*dv, r.vtot)
		pumpstep <- fmt.Sprintf("%.1f m³", pumped)
		ps, pa, k := r.pressures(pumped)
		res.V[j], res.Pstring[j], res.Pannulus[j], res.Kick[j] = pumped, ps, pa, k
		bar.Incr()
	}
	close(pumpstep)
	uiprogress.Stop()

	if len(outdirprfx) > 0 {
		res.write(outdirprfx)
	}
	return res
}
