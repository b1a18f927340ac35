package espalier

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/espalier/internal/lattice"
	"github.com/aretw0/espalier/internal/logging"
	"github.com/aretw0/espalier/internal/presentation/mathematica"
	loamAdapter "github.com/aretw0/espalier/pkg/adapters/loam"
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/ports"
	"github.com/aretw0/espalier/pkg/registry"
	"github.com/aretw0/loam"
)

// FormatMathematica is the built-in output format.
const FormatMathematica = "mathematica"

// Formatter is the high-level entry point for the espalier library.
// It resolves a renderer from the format registry and provides a
// simplified API for consumers.
type Formatter struct {
	renderer ports.SystemRenderer
	formats  *registry.Registry
	format   string
	catalog  ports.ModelCatalog
	logger   *slog.Logger
	Name     string
}

// Option defines a functional option for configuring the Formatter.
type Option func(*Formatter)

// WithFormat selects the output format (default: mathematica).
func WithFormat(name string) Option {
	return func(f *Formatter) {
		f.format = name
	}
}

// WithRenderer registers an additional output format.
func WithRenderer(name string, factory registry.Factory) Option {
	return func(f *Formatter) {
		f.formats.Register(name, factory)
	}
}

// WithCatalog injects a custom ModelCatalog, bypassing the default Loam
// initialization.
func WithCatalog(c ports.ModelCatalog) Option {
	return func(f *Formatter) {
		f.catalog = c
	}
}

// WithLogger sets a custom structured logger for the formatter.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Formatter) {
		f.logger = logger
	}
}

// New initializes a new espalier Formatter.
// With no options it renders Mathematica syntax and carries no model
// catalog; use Open or WithCatalog to attach one.
func New(opts ...Option) (*Formatter, error) {
	f := &Formatter{
		formats: registry.NewRegistry(),
		format:  FormatMathematica,
	}
	f.formats.Register(FormatMathematica, func() ports.SystemRenderer {
		return mathematica.New()
	})

	for _, opt := range opts {
		opt(f)
	}

	if f.logger == nil {
		f.logger = logging.NewNop()
	}
	if f.Name != "" {
		f.logger = f.logger.With("catalog", f.Name)
	}

	renderer, err := f.formats.Resolve(f.format)
	if err != nil {
		return nil, err
	}
	f.renderer = renderer

	return f, nil
}

// Open initializes a Formatter with a Loam model catalog at the given
// path. It is New plus the default catalog wiring.
func Open(modelsPath string, opts ...Option) (*Formatter, error) {
	if modelsPath == "" {
		return nil, fmt.Errorf("modelsPath is required")
	}

	absPath, err := filepath.Abs(modelsPath)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	// Strict mode keeps frontmatter numerics unambiguous and ReadOnly
	// keeps Loam from sandboxing the catalog in dev mode; the formatter
	// never writes model documents.
	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}

	typedRepo := loam.NewTypedRepository[loamAdapter.ModelMetadata](repo)

	f, err := New(append(opts, WithCatalog(loamAdapter.New(typedRepo)))...)
	if err != nil {
		return nil, err
	}
	f.Name = filepath.Base(absPath)
	f.logger = f.logger.With("catalog", f.Name)
	return f, nil
}

// State renders a state probability at the given mean-field order.
func (f *Formatter) State(state domain.State, order int) (string, error) {
	return f.renderer.State(state, order)
}

// RawState renders the bare probability symbol without a time argument.
func (f *Formatter) RawState(state domain.State) string {
	return f.renderer.RawState(state)
}

// Rate renders the rate-constant symbol.
func (f *Formatter) Rate(rate domain.Rate) string {
	return f.renderer.Rate(rate)
}

// RateValue renders a rate declaration.
func (f *Formatter) RateValue(rv domain.RateValue) string {
	return f.renderer.RateValue(rv)
}

// InitialCondition renders a fixed-time condition.
func (f *Formatter) InitialCondition(ic domain.InitialCondition) string {
	return f.renderer.InitialCondition(ic)
}

// Constraint renders a marginalization identity.
func (f *Formatter) Constraint(c domain.Constraint) string {
	return f.renderer.Constraint(c)
}

// Equation renders one differential equation line at the given order.
func (f *Formatter) Equation(eq domain.Equation, order int) (string, error) {
	return f.renderer.Equation(eq, order)
}

// System renders a full system into one notebook at the given order.
func (f *Formatter) System(sys domain.System, order int) (string, error) {
	f.logger.Debug("rendering system",
		"format", f.format,
		"order", order,
		"equations", len(sys.Equations),
		"constraints", len(sys.Constraints),
	)
	return f.renderer.System(sys, order)
}

// GenerateSystem builds the exact Master Equation system for a model.
func (f *Formatter) GenerateSystem(model domain.Model) (domain.System, error) {
	f.logger.Debug("generating system", "model", model.Name, "sites", model.Sites)
	return lattice.Generate(model)
}

// COOxidation returns the built-in CO oxidation model on the given
// number of lattice sites.
func COOxidation(sites int) domain.Model {
	return lattice.COOxidation(sites)
}

// RenderModel generates a model's system and renders it in one step.
func (f *Formatter) RenderModel(model domain.Model, order int) (string, error) {
	sys, err := f.GenerateSystem(model)
	if err != nil {
		return "", err
	}
	return f.System(sys, order)
}

// Model returns a model from the attached catalog.
func (f *Formatter) Model(ctx context.Context, id string) (domain.Model, error) {
	if f.catalog == nil {
		return domain.Model{}, fmt.Errorf("no model catalog configured")
	}
	return f.catalog.Get(ctx, id)
}

// Models lists the ids available in the attached catalog.
func (f *Formatter) Models(ctx context.Context) ([]string, error) {
	if f.catalog == nil {
		return nil, fmt.Errorf("no model catalog configured")
	}
	return f.catalog.List(ctx)
}

// Catalog returns the underlying ModelCatalog, or nil when none is
// attached.
func (f *Formatter) Catalog() ports.ModelCatalog {
	return f.catalog
}

// Formats returns the registered output format names.
func (f *Formatter) Formats() []string {
	return f.formats.Names()
}
