package wellbore

import "github.com/mudware/wellbore/survey"

// LoadDomain restores a previously saved well and its directional survey
// from gob snapshots sharing a model prefix.
func LoadDomain(mdlprfx string) (*Well, *survey.Survey) {
	chkerr := func(err error) {
		if err != nil {
			panic(err)
		}
	}
	w, err := LoadGobWell(mdlprfx + "well.gob")
	chkerr(err)
	sv, err := survey.LoadGob(mdlprfx + "survey.gob")
	chkerr(err)
	return w, sv
}

// SaveDomain snapshots a well and survey to mdlprfx{well,survey}.gob.
func SaveDomain(mdlprfx string, w *Well, sv *survey.Survey) error {
	if err := w.SaveGob(mdlprfx + "well.gob"); err != nil {
		return err
	}
	return sv.SaveGob(mdlprfx + "survey.gob")
}
