package wellbore

import "github.com/maseology/mmio"

// WriteSlices dumps the merged slice table.
func WriteSlices(fp string, sls []DepthSlice) {
	t, b, a, v := make([]interface{}, len(sls)), make([]interface{}, len(sls)), make([]interface{}, len(sls)), make([]interface{}, len(sls))
	for i, s := range sls {
		t[i], b[i], a[i], v[i] = s.Top, s.Bottom, s.Area, s.Volume
	}
	mmio.WriteCSV(fp, "top,bottom,area,volume", t, b, a, v)
}

// WriteLayers dumps a domain's fluid partition.
func WriteLayers(fp string, lys []FluidLayer) {
	t, b, n, d := make([]interface{}, len(lys)), make([]interface{}, len(lys)), make([]interface{}, len(lys)), make([]interface{}, len(lys))
	for i, l := range lys {
		t[i], b[i], n[i], d[i] = l.Top, l.Bottom, l.Nam, l.Density
	}
	mmio.WriteCSV(fp, "top,bottom,fluid,density", t, b, n, d)
}

func (res *Results) write(outdirprfx string) {
	n := len(res.V)
	v, ps, pa, k := make([]interface{}, n), make([]interface{}, n), make([]interface{}, n), make([]interface{}, n)
	for i := 0; i < n; i++ {
		v[i], ps[i], pa[i], k[i] = res.V[i], res.Pstring[i], res.Pannulus[i], res.Kick[i]
	}
	mmio.WriteCSV(outdirprfx+"pressures.csv", "pumped,pstring,pannulus,kick", v, ps, pa, k)
}

// WriteCSV saves the pressure series of a schedule evaluation.
func (res *Results) WriteCSV(outdirprfx string) { res.write(outdirprfx) }
