package domain

import (
	"strings"

	"github.com/aretw0/espalier/pkg/schema"
)

// Rate is a rate-constant token, conventionally dot-separated by scope,
// e.g. "k.CO.ads". Renderers strip the dots and upper-case the rest.
type Rate string

// NewRate validates a rate token.
func NewRate(token string) (Rate, error) {
	if err := schema.NonEmpty("rate", token); err != nil {
		return "", err
	}
	return Rate(token), nil
}

// Symbol returns the rendered constant name: dots removed, upper-cased.
// "k.CO.ads" becomes "KCOADS".
func (r Rate) Symbol() string {
	return strings.ToUpper(strings.ReplaceAll(string(r), ".", ""))
}

// RateValue attaches a declaration value to a rate. The value is an opaque
// token printed verbatim; espalier never does arithmetic on it.
type RateValue struct {
	Rate  Rate   `json:"rate" yaml:"rate"`
	Value string `json:"value" yaml:"value"`
}
