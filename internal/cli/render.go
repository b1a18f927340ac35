package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/internal/exporter"
	"github.com/aretw0/espalier/internal/lattice"
	"github.com/aretw0/espalier/pkg/adapters/modelfile"
	"github.com/aretw0/espalier/pkg/domain"
)

// defaultSites is the lattice size built-in models get when the user
// does not pick one.
const defaultSites = 3

// RenderOptions collects everything the render command can ask for.
type RenderOptions struct {
	ModelID   string // catalog id or built-in name
	ModelFile string // path to a YAML/JSON model definition
	Catalog   string // catalog directory, empty means no catalog
	Sites     int    // lattice size for built-in models
	Order     int    // mean-field truncation order, 0 is exact
	Format    string // output format, empty means the default
	OutputDir string // empty renders to stdout
	Name      string // file name under OutputDir
	Verbose   bool
}

// Render runs the full pipeline: resolve the model, generate its Master
// Equation system, render it, and deliver the notebook.
func Render(opts RenderOptions) error {
	f, err := newFormatter(opts)
	if err != nil {
		return err
	}

	model, err := resolveModel(context.Background(), f, opts)
	if err != nil {
		return err
	}

	notebook, err := f.RenderModel(model, opts.Order)
	if err != nil {
		return err
	}

	if opts.OutputDir == "" {
		fmt.Println(notebook)
		return nil
	}

	name := opts.Name
	if name == "" {
		name = "equations"
	}
	path, err := exporter.Save(opts.OutputDir, name, notebook)
	if err != nil {
		return err
	}
	printSystemMessage("Notebook written to %s", path)
	return nil
}

func newFormatter(opts RenderOptions) (*espalier.Formatter, error) {
	formatterOpts := []espalier.Option{
		espalier.WithLogger(createLogger(opts.Verbose)),
	}
	if opts.Format != "" {
		formatterOpts = append(formatterOpts, espalier.WithFormat(opts.Format))
	}

	if opts.Catalog != "" {
		return espalier.Open(opts.Catalog, formatterOpts...)
	}
	return espalier.New(formatterOpts...)
}

// resolveModel picks the model the options name. A model file wins over
// an id; ids try the catalog first and fall back to the built-ins.
func resolveModel(ctx context.Context, f *espalier.Formatter, opts RenderOptions) (domain.Model, error) {
	if opts.ModelFile != "" {
		return modelfile.Load(opts.ModelFile)
	}
	if opts.ModelID == "" {
		return domain.Model{}, fmt.Errorf("a model id or --file is required")
	}

	if f.Catalog() != nil {
		model, err := f.Model(ctx, opts.ModelID)
		if err == nil {
			return model, nil
		}
		if builtin, ok := builtinModel(opts.ModelID, opts.Sites); ok {
			return builtin, nil
		}
		return domain.Model{}, err
	}

	if builtin, ok := builtinModel(opts.ModelID, opts.Sites); ok {
		return builtin, nil
	}
	return domain.Model{}, fmt.Errorf("unknown model %q (no catalog attached)", opts.ModelID)
}

// builtinModel returns the named built-in, sized to sites.
func builtinModel(id string, sites int) (domain.Model, bool) {
	if sites <= 0 {
		sites = defaultSites
	}
	switch id {
	case "co-oxidation":
		return lattice.COOxidation(sites), true
	}
	return domain.Model{}, false
}

func builtinIDs() []string {
	return []string{"co-oxidation"}
}
