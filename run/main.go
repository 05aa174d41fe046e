package main

import (
	"fmt"
	"runtime"

	"github.com/maseology/mmio"
	"github.com/mudware/wellbore"
	"github.com/mudware/wellbore/survey"
)

func main() {

	const outdirprfx = "out/demo."

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap(fmt.Sprintf("\nRun complete. n processes: %v", runtime.GOMAXPROCS(0)))

	// 2500 m well: surface casing over an 8 1/2" open hole, 5" drill pipe
	w := &wellbore.Well{
		Nam: "demo",
		String: []wellbore.PipeSection{
			{Top: 0, Length: 2300, ID: .1086, OD: .127},
			{Top: 2300, Length: 200, ID: .0713, OD: .165}, // collars
		},
		Annulus: []wellbore.AnnulusSection{
			{Top: 0, Length: 500, ID: .340, Cased: true},
			{Top: 500, Length: 2000, ID: .216},
		},
		BaseNam:     "mud",
		BaseDensity: 1240.,
	}
	sv := survey.New([]survey.Station{
		{MD: 0, Inc: 0, Azi: 0},
		{MD: 1500, Inc: 0, Azi: 0},
		{MD: 2000, Inc: 30, Azi: 85},
		{MD: 2500, Inc: 60, Azi: 85},
	})
	w.Checkandprint()

	mmio.MakeDir("out")
	wellbore.WriteSlices(outdirprfx+"slices.csv", w.Slices())

	// displace a cement job: spacer, slurry, then drilling mud to chase
	ev := w.Evaluator(sv.TVDAt)
	stages := []wellbore.Stage{
		{Nam: "spacer", Density: 1100., Volume: 3.},
		{Nam: "slurry", Density: 1900., Volume: 12.},
		{Nam: "mud", Density: 1240., Volume: 19.},
	}
	ev.Checkandprint(stages)
	res := ev.EvaluateSerial(stages, outdirprfx)

	str, ann, ps, pa := ev.Final(stages)
	fmt.Printf("\n final bit pressures: string %.0f kPa, annulus %.0f kPa (differential %.0f)\n", ps, pa, pa-ps)
	wellbore.WriteLayers(outdirprfx+"layers.string.csv", str)
	wellbore.WriteLayers(outdirprfx+"layers.annulus.csv", ann)
	fmt.Printf(" %d pressure steps written\n", len(res.V))

	// what density closes a 500 kPa underbalance at TD
	rho, p := wellbore.OptimizeKillDensity(ev, stages, 2, pa+500., 1000., 2200.)
	fmt.Printf(" kill mud: %.0f kg/m³ -> %.0f kPa at bit\n", rho, p)

	if err := wellbore.SaveDomain(outdirprfx, w, sv); err != nil {
		fmt.Println(err)
	}
}
