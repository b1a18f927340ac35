package domain

import (
	"strconv"
	"strings"

	"github.com/aretw0/espalier/pkg/schema"
)

// State is an ordered, immutable sequence of sites. Order matters for
// rendering and for window extraction; entry identity matters for the
// mean-field overlap algebra. States are only built through NewState (or
// the helpers that call it), so a State in circulation is always valid.
type State struct {
	sites []Site
}

// NewState validates and builds a state. Every site needs a non-blank
// label; an empty state is rejected because it names no probability.
func NewState(sites ...Site) (State, error) {
	if len(sites) == 0 {
		return State{}, schema.Invalid("state", "requires at least one site", nil)
	}
	var errs []error
	for i, s := range sites {
		if strings.TrimSpace(s.Label) == "" {
			errs = append(errs, schema.Invalid("state", "site "+strconv.Itoa(i)+" has a blank label", s))
		}
	}
	if err := schema.Aggregate(errs); err != nil {
		return State{}, err
	}
	copied := make([]Site, len(sites))
	copy(copied, sites)
	return State{sites: copied}, nil
}

// MustState is NewState for literals in tests and examples; it panics on
// invalid input.
func MustState(sites ...Site) State {
	st, err := NewState(sites...)
	if err != nil {
		panic(err)
	}
	return st
}

// Len returns the number of sites.
func (s State) Len() int { return len(s.sites) }

// At returns the site at position i.
func (s State) At(i int) Site { return s.sites[i] }

// Sites returns a defensive copy of the site sequence.
func (s State) Sites() []Site {
	out := make([]Site, len(s.sites))
	copy(out, s.sites)
	return out
}

// Window returns the sub-state of length at position start. The caller
// guarantees the bounds; windows of a valid state are themselves valid.
func (s State) Window(start, length int) State {
	return State{sites: s.sites[start : start+length]}
}

// Equal reports whether two states hold the same sites in the same order.
func (s State) Equal(other State) bool {
	if len(s.sites) != len(other.sites) {
		return false
	}
	for i, site := range s.sites {
		if site != other.sites[i] {
			return false
		}
	}
	return true
}

// Contains reports whether the state holds the given site entry.
func (s State) Contains(site Site) bool {
	for _, candidate := range s.sites {
		if candidate == site {
			return true
		}
	}
	return false
}

// Intersect returns the site entries shared with other, in the order they
// appear in the receiver, each entry at most once. The receiver order is
// what keeps mean-field denominators deterministic.
func (s State) Intersect(other State) []Site {
	var shared []Site
	seen := make(map[Site]bool, len(s.sites))
	for _, site := range s.sites {
		if seen[site] {
			continue
		}
		if other.Contains(site) {
			shared = append(shared, site)
			seen[site] = true
		}
	}
	return shared
}

// Key returns a stable identity string for map lookups and aggregation.
// It is not a rendered form; renderers build their own text.
func (s State) Key() string {
	var b strings.Builder
	for _, site := range s.sites {
		b.WriteString(site.Label)
		b.WriteByte(0x1f)
		b.WriteString(site.Index)
		b.WriteByte(0x1e)
	}
	return b.String()
}
