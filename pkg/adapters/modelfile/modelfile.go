// Package modelfile loads kinetic model definitions from YAML or JSON
// files.
package modelfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/espalier/pkg/domain"
)

// Load reads a model definition and validates it. The extension decides
// the codec: .json parses as JSON, everything else as YAML.
func Load(path string) (domain.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Model{}, fmt.Errorf("failed to read model file: %w", err)
	}

	var model domain.Model
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &model); err != nil {
			return domain.Model{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		if err := yaml.Unmarshal(data, &model); err != nil {
			return domain.Model{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	if err := model.Validate(); err != nil {
		return domain.Model{}, fmt.Errorf("invalid model %s: %w", filepath.Base(path), err)
	}

	return model, nil
}
