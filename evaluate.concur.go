package wellbore

import "sync"

type sampleRun struct {
	i      int
	ev     *Evaluator
	stages []Stage
}

type sampleResult struct {
	i            int
	ps, pa, kick float64 // end-of-schedule bit pressures [kPa]
	cstot, antot float64 // realized geometry volumes [m³]
}

// evalstream fans sample runs out to nwrkrs workers, each evaluating the
// full schedule to its settled state.
func evalstream(done <-chan interface{}, rin <-chan sampleRun, nwrkrs int) <-chan sampleResult {
	rout := make(chan sampleResult, nwrkrs)
	var wg sync.WaitGroup
	wg.Add(nwrkrs)
	for w := 0; w < nwrkrs; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				case s, ok := <-rin:
					if !ok {
						return
					}
					r := s.ev.buildRealization(s.stages)
					ps, pa, k := r.pressures(r.vtot)
					rout <- sampleResult{i: s.i, ps: ps, pa: pa, kick: k, cstot: r.cstot, antot: r.antot}
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(rout)
	}()
	return rout
}
