package citation

import (
	"strings"

	"github.com/coolbeans/lawlink/pkg/alias"
)

// Expander turns one grammar match into the individual references it
// denotes. The instrument name is resolved once per match; the resolved id
// is shared by every expanded reference.
type Expander struct {
	resolver *alias.Resolver
}

// NewExpander creates an expander resolving against the given resolver.
func NewExpander(resolver *alias.Resolver) *Expander {
	return &Expander{resolver: resolver}
}

// Expand emits the Cartesian product of article x point x subpoint
// candidates, article outermost, preserving candidate order within each
// field. A match with no structural clauses at all (a bare instrument
// mention) yields exactly one reference with all numeric fields absent.
func (e *Expander) Expand(m Match) []LawReference {
	articles := fieldCandidates(m.ArticleNums)

	// A часть clause stands in for пункт when no explicit point is given.
	points := []string{""}
	if m.PointNums != "" {
		points = fieldCandidates(m.PointNums)
	} else if m.PartNums != "" {
		points = fieldCandidates(m.PartNums)
	}

	subpoints := fieldCandidates(m.SubpointNums)

	var lawID *alias.LawID
	if id, ok := e.resolver.Resolve(m.Instrument); ok {
		lawID = &id
	}

	refs := make([]LawReference, 0, len(articles)*len(points)*len(subpoints))
	for _, article := range articles {
		for _, point := range points {
			for _, subpoint := range subpoints {
				refs = append(refs, LawReference{
					LawID:           lawID,
					Article:         optional(article),
					PointArticle:    optional(point),
					SubpointArticle: optional(subpoint),
				})
			}
		}
	}
	return refs
}

// fieldCandidates expands one captured number-list field into its candidate
// values: absent fields contribute a single absent candidate, a single
// value passes through unchanged, and a comma- or и-separated list is
// split.
func fieldCandidates(raw string) []string {
	if raw == "" {
		return []string{""}
	}
	if strings.Contains(raw, ",") || strings.Contains(raw, "и") {
		return SplitNumberList(raw, raw)
	}
	return []string{raw}
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
