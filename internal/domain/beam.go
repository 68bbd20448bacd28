package domain

// Physical attributes of one catalog beam profile.
// Weight is the weight of a single beam at LengthBase.
type BeamSpec struct {
	BeamID   string
	Gauge    string
	WidthMM  float64
	HeightMM float64
	WeightKg float64
}

// Catalog is a read-only lookup of beam profiles keyed by BeamID.
// It must be fully populated before a calculation starts.
type Catalog map[string]BeamSpec

func NewCatalog(specs []BeamSpec) Catalog {
	c := make(Catalog, len(specs))
	for _, s := range specs {
		c[s.BeamID] = s
	}
	return c
}

// Lookup returns the profile for id and whether it exists.
func (c Catalog) Lookup(id string) (BeamSpec, bool) {
	s, ok := c[id]
	return s, ok
}
