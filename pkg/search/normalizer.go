package search

import "strings"

// Normalizer folds an ingredient term before it is matched against
// stored ingredient names. Injected so a smarter lemmatizer can replace
// the default without touching the engine.
type Normalizer interface {
	Normalize(text string) string
}

type basicNormalizer struct{}

// NewBasicNormalizer lowercases, trims and collapses inner whitespace.
func NewBasicNormalizer() Normalizer {
	return basicNormalizer{}
}

func (basicNormalizer) Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
