/*
Package ports defines the driven ports (interfaces) for the espalier
formatter.

These interfaces decouple the core logic from external implementations,
allowing the formatter to work with different target syntaxes and model
sources.

# Key Interfaces

  - SystemRenderer: Renders domain values into a target syntax (the
    Mathematica renderer is the built-in implementation).
  - ModelCatalog: Provides named kinetic models (e.g., from a Loam
    repository or standalone files).
*/
package ports
