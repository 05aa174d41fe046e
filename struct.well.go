package wellbore

import (
	"encoding/gob"
	"fmt"
	"os"
)

// Well is the project aggregate: the two independently segmented geometry
// lists, the authored mud steps and the base fluid seeding both columns.
type Well struct {
	Nam         string
	String      []PipeSection
	Annulus     []AnnulusSection
	Steps       []MudStep
	BaseNam     string
	BaseDensity float64 // kg/m³
}

// MaxDepth is the deepest defined geometry bottom.
func (w *Well) MaxDepth() float64 {
	d := stringBottom(w.String)
	for i := range w.Annulus {
		if b := w.Annulus[i].Bottom(); b > d {
			d = b
		}
	}
	return d
}

// Layers rebuilds the two fluid partitions from the step list.
func (w *Well) Layers() (str, ann []FluidLayer) {
	return RebuildLayers(w.Steps, w.BaseNam, w.BaseDensity, w.MaxDepth())
}

// Slices rebuilds the merged depth-slice sequence.
func (w *Well) Slices() []DepthSlice { return SliceGeometry(w.String, w.Annulus) }

// Totals are the whole-well volumes, [0,MaxDepth].
func (w *Well) Totals() Volumes {
	return VolumesBetween(w.String, w.Annulus, 0., w.MaxDepth())
}

func (w *Well) Checkandprint() {
	ncsd := 0
	for i := range w.Annulus {
		if w.Annulus[i].Cased {
			ncsd++
		}
	}
	tot := w.Totals()
	fmt.Printf("  %s: %d string sections to %.1f m, %d annulus sections (%d cased) to %.1f m\n",
		w.Nam, len(w.String), stringBottom(w.String), len(w.Annulus), ncsd, w.MaxDepth())
	fmt.Printf("   string capacity %.2f m³; displacement %.2f m³\n", tot.StringCapacity, tot.StringDisplacement)
	fmt.Printf("   annular volume %.2f m³; open hole %.2f m³\n", tot.AnnularWithPipe, tot.OpenHole)
}

func (w *Well) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" well.SaveGob %v", err)
	}
	if err := gob.NewEncoder(f).Encode(w); err != nil {
		return fmt.Errorf(" well.SaveGob %v", err)
	}
	f.Close()
	return nil
}

func LoadGobWell(fp string) (*Well, error) {
	var w Well
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	if err := gob.NewDecoder(f).Decode(&w); err != nil {
		return nil, err
	}
	f.Close()
	return &w, nil
}
