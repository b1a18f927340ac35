/*
Package domain contains the core domain models for the espalier formatter.

It defines the value objects of a lattice Master Equation system: Sites and
States, weighted states, rate tokens, equation records, constraints, and the
kinetic models they are generated from. This package is kept pure and free of
external I/O, following Hexagonal Architecture principles; rendering to a
target syntax lives behind the ports.

Values are built through constructors that validate shape up front, so a
malformed State or Equation cannot exist past the point of creation. The
constructors return the validation vocabulary from pkg/schema.

# Key Entities

  - Site: One (label, index) entry of a lattice state.
  - State: An ordered, immutable sequence of sites.
  - WeightedState: A state with an aggregated multiplicity.
  - RateMap: An insertion-ordered map from rate tokens to weighted states.
  - Equation: One Master Equation record (target, creation, decay).
  - Constraint: A marginalization identity between a short state and its
    one-site extensions.
  - Model: A kinetic lattice model (species, sites, elementary processes).
  - System: The five-bucket bundle handed to a renderer.
*/
package domain
