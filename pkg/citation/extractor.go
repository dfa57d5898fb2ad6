package citation

import (
	"github.com/coolbeans/lawlink/pkg/alias"
)

// Extractor is the extraction pipeline: one grammar scan over the whole
// input, each match expanded into references, results concatenated in match
// order then within-match Cartesian order.
type Extractor struct {
	matcher  *Matcher
	expander *Expander
}

// NewExtractor wires the pipeline against a frozen alias index. The index
// must not be mutated afterwards; extraction calls may then run fully in
// parallel.
func NewExtractor(index *alias.Index) *Extractor {
	return &Extractor{
		matcher:  NewMatcher(),
		expander: NewExpander(alias.NewResolver(index)),
	}
}

// Extract returns every reference cited in the text, in order. It is total:
// any input yields a (possibly empty) slice, never an error. Identical
// citations appearing more than once yield repeated entries.
func (e *Extractor) Extract(text string) []LawReference {
	refs := []LawReference{}
	for _, m := range e.matcher.Scan(text) {
		refs = append(refs, e.expander.Expand(m)...)
	}
	return refs
}
