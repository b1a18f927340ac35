package domain

import "strconv"

// Site is one entry of a lattice state: a species label attached to a
// lattice position. The index is carried as a text token so that both
// numbered sites and symbolic positions render the same way.
type Site struct {
	Label string `json:"label" yaml:"label"`
	Index string `json:"index" yaml:"index"`
}

// SiteAt builds a site on a numbered lattice position.
func SiteAt(label string, index int) Site {
	return Site{Label: label, Index: strconv.Itoa(index)}
}

// SiteToken builds a site with a symbolic position token.
func SiteToken(label, index string) Site {
	return Site{Label: label, Index: index}
}

// Token returns the concatenated label and index, the form every renderer
// uses for a single site.
func (s Site) Token() string {
	return s.Label + s.Index
}
