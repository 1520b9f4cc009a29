package taxonomy

import (
	_ "embed"
	"fmt"
)

//go:embed default.yaml
var defaultDocument []byte

// DefaultDocument returns the built-in taxonomy document
func DefaultDocument() []byte {
	return append([]byte(nil), defaultDocument...)
}

// Default returns the built-in taxonomy
func Default() (*Taxonomy, error) {
	t, err := Parse(defaultDocument)
	if err != nil {
		return nil, fmt.Errorf("failed to parse built-in taxonomy: %w", err)
	}
	return t, nil
}
