package lattice

import "github.com/aretw0/espalier/pkg/domain"

// COOxidation returns the CO oxidation model on a line of the given
// number of sites. Carbon monoxide adsorbs on a single empty site and
// oxygen dissociates onto an empty pair; both species hop by swapping
// with an empty neighbor; CO2 leaves through the Langmuir-Hinshelwood
// channel on adjacent CO/O pairs and through the Eley-Rideal channel on
// a single oxygen site.
func COOxidation(sites int) domain.Model {
	return domain.Model{
		Name:        "co-oxidation",
		Description: "CO oxidation on a one-dimensional lattice",
		Species:     []string{"CO", "O", "E"},
		Sites:       sites,
		Processes: []domain.Process{
			{Rate: "k.O.ads", Rules: []domain.Rule{
				{From: []string{"E", "E"}, To: []string{"O", "O"}},
			}},
			{Rate: "k.O.des", Rules: []domain.Rule{
				{From: []string{"O", "O"}, To: []string{"E", "E"}},
			}},
			{Rate: "k.O.dif", Rules: []domain.Rule{
				{From: []string{"E", "O"}, To: []string{"O", "E"}},
				{From: []string{"O", "E"}, To: []string{"E", "O"}},
			}},
			{Rate: "k.CO.ads", Rules: []domain.Rule{
				{From: []string{"E"}, To: []string{"CO"}},
			}},
			{Rate: "k.CO.des", Rules: []domain.Rule{
				{From: []string{"CO"}, To: []string{"E"}},
			}},
			{Rate: "k.CO.dif", Rules: []domain.Rule{
				{From: []string{"E", "CO"}, To: []string{"CO", "E"}},
				{From: []string{"CO", "E"}, To: []string{"E", "CO"}},
			}},
			{Rate: "k.COO.lh", Rules: []domain.Rule{
				{From: []string{"CO", "O"}, To: []string{"E", "E"}},
				{From: []string{"O", "CO"}, To: []string{"E", "E"}},
			}},
			{Rate: "k.COO.er", Rules: []domain.Rule{
				{From: []string{"O"}, To: []string{"E"}},
			}},
		},
	}
}
