package wellbore

// Domain selects which fluid column a layer belongs to.
type Domain int

const (
	DomainString Domain = iota // inside the drill string
	DomainAnnulus
)

func (d Domain) String() string {
	if d == DomainString {
		return "string"
	}
	return "annulus"
}

// Placement directs where a mud step is applied.
type Placement int

const (
	PlaceString Placement = iota
	PlaceAnnulus
	PlaceBoth
)

// FluidLayer is a constant-density fluid occupying [Top,Bottom] MD in one
// domain. A domain's layer set partitions [0,maxDepth] with no gaps or
// overlaps; see Overlay.
type FluidLayer struct {
	Domain      Domain
	Top, Bottom float64
	Nam, Fluid  string
	Density     float64 // kg/m³
}

func (l *FluidLayer) Thickness() float64 {
	if l.Bottom < l.Top {
		return 0.
	}
	return l.Bottom - l.Top
}

// MudStep is a user-authored candidate fluid placement. Steps need not be
// contiguous or ordered; they are applied in sequence by RebuildLayers.
type MudStep struct {
	Top, Bottom float64
	Density     float64 // kg/m³
	Nam         string
	Placement   Placement
}
