package httpapi

import (
	"github.com/aretw0/espalier/internal/dto"
	"github.com/aretw0/espalier/pkg/domain"
)

// RenderRequest asks for a full notebook. The model is given inline or
// looked up by id in the formatter's catalog.
type RenderRequest struct {
	Model   *domain.Model `json:"model,omitempty"`
	ModelID string        `json:"model_id,omitempty"`
	Order   int           `json:"order"`
}

// RenderResponse carries the rendered notebook text.
type RenderResponse struct {
	Notebook string `json:"notebook"`
}

// EquationRequest asks for one rendered equation line.
type EquationRequest struct {
	Equation dto.Equation `json:"equation"`
	Order    int          `json:"order"`
}

// EquationResponse carries the rendered line.
type EquationResponse struct {
	Equation string `json:"equation"`
}

// ModelsResponse lists the catalog's model ids.
type ModelsResponse struct {
	Models []string `json:"models"`
}
