package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/internal/presentation/tui"
	"github.com/aretw0/espalier/pkg/domain"
)

// ListModels prints the available model ids, one per line. Without a
// catalog it lists the built-ins.
func ListModels(catalogPath string, verbose bool) error {
	if catalogPath == "" {
		for _, id := range builtinIDs() {
			fmt.Println(id)
		}
		return nil
	}

	f, err := espalier.Open(catalogPath, espalier.WithLogger(createLogger(verbose)))
	if err != nil {
		return err
	}
	ids, err := f.Models(context.Background())
	if err != nil {
		return err
	}
	for _, id := range ids {
		fmt.Println(id)
	}
	return nil
}

// ShowModel renders one model's card to the terminal.
func ShowModel(catalogPath, id string, verbose bool) error {
	model, err := lookupModel(catalogPath, id, verbose)
	if err != nil {
		return err
	}

	render := tui.NewRenderer()
	out, err := render(tui.ModelMarkdown(model))
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func lookupModel(catalogPath, id string, verbose bool) (domain.Model, error) {
	if catalogPath == "" {
		model, ok := builtinModel(id, 0)
		if !ok {
			return domain.Model{}, fmt.Errorf("unknown model %q (no catalog attached)", id)
		}
		return model, nil
	}

	f, err := espalier.Open(catalogPath, espalier.WithLogger(createLogger(verbose)))
	if err != nil {
		return domain.Model{}, err
	}
	model, err := f.Model(context.Background(), id)
	if err != nil {
		if builtin, ok := builtinModel(id, 0); ok {
			return builtin, nil
		}
		return domain.Model{}, err
	}
	return model, nil
}
