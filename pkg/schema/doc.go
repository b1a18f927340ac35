// Package schema provides the validation vocabulary shared by the espalier
// constructors and adapters.
//
// Every malformed input is reported as a ValidationError carrying the field
// name, a human-readable reason, and (when type information matters) the
// offending value. Multiple failures on one input are bundled into an
// AggregateError so callers see the full picture in a single round trip.
//
// Basic usage:
//
//	if err := schema.NonEmpty("label", site.Label); err != nil {
//	    return err
//	}
//
//	err := schema.RequireKeys(buckets,
//	    "constraints", "equations", "initial conditions", "rate values", "raw states")
//
// Callers that need the individual failures can unwrap them:
//
//	for _, e := range schema.ValidationErrors(err) {
//	    fmt.Println(e)
//	}
//
// This package is designed to be library-agnostic, with zero external
// dependencies beyond the Go standard library. It can be embedded in larger
// systems or extracted as a standalone library.
package schema
