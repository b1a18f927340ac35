package dsl

import (
	"strings"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/schema"
)

// Labels the buckets carry inside the finalized notebook. They differ
// from the bucket names on purpose: bucket names are wire vocabulary,
// labels must be valid identifiers in the target tool.
var bucketLabels = map[string]string{
	domain.BucketConstraints:       "constraints",
	domain.BucketEquations:         "equations",
	domain.BucketInitialConditions: "initialConditions",
	domain.BucketRateValues:        "rateValues",
	domain.BucketRawStates:         "states",
}

// Notebook collects rendered lines per bucket and joins them into one
// declaration text. One method per bucket keeps the key set right by
// construction; FromBuckets is the entry point for callers holding a raw
// map, and validates the key set instead.
type Notebook struct {
	buckets map[string][]string
}

// NewNotebook returns an empty notebook.
func NewNotebook() *Notebook {
	return &Notebook{buckets: make(map[string][]string)}
}

// FromBuckets builds a notebook from a raw bucket map. The map must hold
// exactly the five bucket names, each present even when empty.
func FromBuckets(buckets map[string][]string) (*Notebook, error) {
	if err := schema.RequireKeys(buckets, domain.BucketNames()...); err != nil {
		return nil, err
	}
	nb := NewNotebook()
	for name, entries := range buckets {
		nb.buckets[name] = append(nb.buckets[name], entries...)
	}
	return nb, nil
}

// AddConstraint appends constraint lines.
func (n *Notebook) AddConstraint(lines ...string) *Notebook {
	return n.add(domain.BucketConstraints, lines)
}

// AddEquation appends equation lines.
func (n *Notebook) AddEquation(lines ...string) *Notebook {
	return n.add(domain.BucketEquations, lines)
}

// AddInitialCondition appends initial-condition lines.
func (n *Notebook) AddInitialCondition(lines ...string) *Notebook {
	return n.add(domain.BucketInitialConditions, lines)
}

// AddRateValue appends rate-declaration lines.
func (n *Notebook) AddRateValue(lines ...string) *Notebook {
	return n.add(domain.BucketRateValues, lines)
}

// AddRawState appends raw state symbols.
func (n *Notebook) AddRawState(lines ...string) *Notebook {
	return n.add(domain.BucketRawStates, lines)
}

func (n *Notebook) add(bucket string, lines []string) *Notebook {
	n.buckets[bucket] = append(n.buckets[bucket], lines...)
	return n
}

// Len returns the total number of collected lines.
func (n *Notebook) Len() int {
	total := 0
	for _, entries := range n.buckets {
		total += len(entries)
	}
	return total
}

// Finalize joins the buckets into the notebook text. Buckets appear in
// their fixed order, each as a braced block with entries separated by
// ",\n\t" and no separator after the last entry; empty buckets are
// omitted entirely.
func (n *Notebook) Finalize() string {
	var blocks []string
	for _, name := range domain.BucketNames() {
		entries := n.buckets[name]
		if len(entries) == 0 {
			continue
		}
		blocks = append(blocks, bucketLabels[name]+" = {\n\t"+strings.Join(entries, ",\n\t")+"\n}")
	}
	return strings.Join(blocks, "\n\n")
}
