// Package survey converts directional survey stations to an MD→TVD mapping
// by the minimum curvature method.
package survey

import (
	"encoding/gob"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"

	"github.com/maseology/mmio"
)

// Station is one directional survey record: measured depth [m], inclination
// and azimuth [degrees].
type Station struct{ MD, Inc, Azi float64 }

// Survey holds the computed MD→TVD table, both monotone non-decreasing.
type Survey struct{ MD, TVD []float64 }

// New builds a survey from stations by minimum curvature. Stations are
// sorted by measured depth; a surface station is assumed at MD 0 holding the
// first recorded inclination. TVD steps clamp at zero so the mapping stays
// monotone even through horizontal or up-dip sections.
func New(stations []Station) *Survey {
	ss := make([]Station, 0, len(stations)+1)
	for _, s := range stations {
		if s.MD >= 0. {
			ss = append(ss, s)
		}
	}
	sort.Slice(ss, func(i, j int) bool { return ss[i].MD < ss[j].MD })
	if len(ss) == 0 || ss[0].MD > 0. {
		s0 := Station{}
		if len(ss) > 0 {
			s0.Inc, s0.Azi = ss[0].Inc, ss[0].Azi
		}
		ss = append([]Station{s0}, ss...)
	}

	sv := &Survey{MD: make([]float64, len(ss)), TVD: make([]float64, len(ss))}
	for i, s := range ss {
		sv.MD[i] = s.MD
		if i == 0 {
			continue
		}
		p := ss[i-1]
		dmd := s.MD - p.MD
		i1, i2 := p.Inc*math.Pi/180., s.Inc*math.Pi/180.
		da := (s.Azi - p.Azi) * math.Pi / 180.
		cdl := math.Cos(i1)*math.Cos(i2) + math.Sin(i1)*math.Sin(i2)*math.Cos(da)
		if cdl > 1. {
			cdl = 1.
		} else if cdl < -1. {
			cdl = -1.
		}
		dl := math.Acos(cdl)
		rf := 1.
		if dl > 1e-9 {
			rf = 2. / dl * math.Tan(dl/2.)
		}
		dtv := dmd / 2. * (math.Cos(i1) + math.Cos(i2)) * rf
		if dtv < 0. {
			dtv = 0.
		}
		sv.TVD[i] = sv.TVD[i-1] + dtv
	}
	return sv
}

// TVDAt interpolates true vertical depth at a measured depth, clamped to the
// surveyed range. A nil or empty survey is treated as a vertical hole.
func (s *Survey) TVDAt(md float64) float64 {
	if s == nil || len(s.MD) == 0 {
		return math.Max(md, 0.)
	}
	if md <= s.MD[0] {
		return s.TVD[0]
	}
	n := len(s.MD)
	if md >= s.MD[n-1] {
		return s.TVD[n-1]
	}
	i := sort.SearchFloat64s(s.MD, md) // first index with MD >= md
	dmd := s.MD[i] - s.MD[i-1]
	if dmd <= 0. {
		return s.TVD[i]
	}
	f := (md - s.MD[i-1]) / dmd
	return s.TVD[i-1] + f*(s.TVD[i]-s.TVD[i-1])
}

func (s *Survey) MaxMD() float64 {
	if s == nil || len(s.MD) == 0 {
		return 0.
	}
	return s.MD[len(s.MD)-1]
}

func (s *Survey) MaxTVD() float64 {
	if s == nil || len(s.TVD) == 0 {
		return 0.
	}
	return s.TVD[len(s.TVD)-1]
}

func (s *Survey) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" survey.SaveGob %v", err)
	}
	if err := gob.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf(" survey.SaveGob %v", err)
	}
	f.Close()
	return nil
}

func LoadGob(fp string) (*Survey, error) {
	var sv Survey
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	if err := gob.NewDecoder(f).Decode(&sv); err != nil {
		return nil, err
	}
	f.Close()
	return &sv, nil
}

// ReadCSV loads stations from a md,inc,azi file; rows that do not parse are
// skipped.
func ReadCSV(fp string) (*Survey, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf(" survey.ReadCSV %v", err)
	}
	defer f.Close()
	var ss []Station
	for rec := range mmio.LoadCSV(f) {
		if len(rec) < 3 {
			continue
		}
		md, err0 := strconv.ParseFloat(rec[0], 64)
		inc, err1 := strconv.ParseFloat(rec[1], 64)
		azi, err2 := strconv.ParseFloat(rec[2], 64)
		if err0 != nil || err1 != nil || err2 != nil {
			continue
		}
		ss = append(ss, Station{MD: md, Inc: inc, Azi: azi})
	}
	return New(ss), nil
}
