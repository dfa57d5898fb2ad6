// Package citation extracts structured references to Russian legal
// instruments (codes, federal laws, decrees, accounting standards) from
// free-form text. A grammar-driven matcher locates citation phrases, a
// splitter decomposes comma- and и-separated number lists, and an expander
// resolves the instrument name against an alias index and emits one
// LawReference per concrete (law, article, point, subpoint) combination.
package citation

import (
	"github.com/coolbeans/lawlink/pkg/alias"
)

// LawReference is one concrete citation: a resolved law plus the specific
// article, point and subpoint it names. Lists in the source text are
// expanded before this type is populated, so a LawReference is always a
// leaf. A nil field means the citation did not specify that level; LawID is
// nil when the instrument name resolved to no known law.
type LawReference struct {
	LawID           *alias.LawID `json:"law_id"`
	Article         *string      `json:"article"`
	PointArticle    *string      `json:"point_article"`
	SubpointArticle *string      `json:"subpoint_article"`
}
