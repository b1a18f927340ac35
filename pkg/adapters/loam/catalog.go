package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aretw0/loam"

	"github.com/aretw0/espalier/pkg/domain"
)

// Catalog adapts a Loam repository of model documents to the
// ports.ModelCatalog interface. Each document carries the model
// definition in its frontmatter; the markdown body becomes the model's
// description.
type Catalog struct {
	Repo *loam.TypedRepository[ModelMetadata]
}

// New creates a new Loam-backed model catalog.
func New(repo *loam.TypedRepository[ModelMetadata]) *Catalog {
	return &Catalog{Repo: repo}
}

// Get loads and validates the model stored under id.
func (c *Catalog) Get(ctx context.Context, id string) (domain.Model, error) {
	doc, err := c.Repo.Get(ctx, id)
	if err != nil {
		return domain.Model{}, fmt.Errorf("loam get failed for %s: %w", id, err)
	}

	model, err := convert(doc.ID, doc.Data, doc.Content)
	if err != nil {
		return domain.Model{}, fmt.Errorf("invalid model %s: %w", id, err)
	}
	if err := model.Validate(); err != nil {
		return domain.Model{}, fmt.Errorf("invalid model %s: %w", id, err)
	}

	return model, nil
}

// List returns the available model ids, preferring the frontmatter name
// over the filename. Two documents resolving to the same id is a
// configuration error, not a silent shadow.
func (c *Catalog) List(ctx context.Context) ([]string, error) {
	docs, err := c.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string)
	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		rawID := doc.Data.Name
		if rawID == "" {
			rawID = doc.ID
		}
		id := trimExtension(rawID)

		if existing, ok := seen[id]; ok {
			return nil, fmt.Errorf("collision detected: model '%s' is defined in both '%s' and '%s'", id, existing, doc.ID)
		}
		seen[id] = doc.ID
		ids = append(ids, id)
	}

	return ids, nil
}

func convert(docID string, meta ModelMetadata, content string) (domain.Model, error) {
	name := meta.Name
	if name == "" {
		name = trimExtension(docID)
	}

	processes := make([]domain.Process, 0, len(meta.Processes))
	for _, p := range meta.Processes {
		rules := make([]domain.Rule, 0, len(p.Rules))
		for _, raw := range p.Rules {
			rule, err := parseRule(raw)
			if err != nil {
				return domain.Model{}, fmt.Errorf("process %s: %w", p.Rate, err)
			}
			rules = append(rules, domain.Rule{From: rule.From, To: rule.To})
		}
		processes = append(processes, domain.Process{Rate: p.Rate, Rules: rules})
	}

	return domain.Model{
		Name:        name,
		Description: strings.TrimSpace(content),
		Species:     meta.Species,
		Sites:       meta.Sites,
		Processes:   processes,
	}, nil
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}
