package citation

import (
	"github.com/dlclark/regexp2"
)

// Match is one grammar-level hit over the input: the captured number-list
// fields and instrument name as raw substrings (empty when the clause is
// absent; a present clause always captures a non-empty list), plus the span
// of the whole citation in the source text.
type Match struct {
	SubpointNums string
	PointNums    string
	PartNums     string
	ArticleNums  string
	Instrument   string

	Offset int
	Length int
}

// Matcher scans input text for citation phrases. Patterns are compiled once
// at construction; scanning holds no state and is safe for concurrent use.
//
// Matching is case-insensitive and leftmost-first: at a given start
// position the first instrument alternative that matches wins, and
// successive matches never overlap.
type Matcher struct {
	patterns []*regexp2.Regexp
}

// NewMatcher compiles the citation grammar, deduplicating identical pattern
// sources first.
func NewMatcher() *Matcher {
	seen := make(map[string]bool)
	var compiled []*regexp2.Regexp
	for _, src := range grammarPatterns() {
		if seen[src] {
			continue
		}
		seen[src] = true
		compiled = append(compiled, regexp2.MustCompile(src, regexp2.IgnoreCase))
	}
	return &Matcher{patterns: compiled}
}

// Scan returns every match in the text in left-to-right order.
func (m *Matcher) Scan(text string) []Match {
	var matches []Match
	for _, re := range m.patterns {
		match, err := re.FindStringMatch(text)
		for err == nil && match != nil {
			matches = append(matches, Match{
				SubpointNums: groupText(match, "subpoint_nums"),
				PointNums:    groupText(match, "point_nums"),
				PartNums:     groupText(match, "part_nums"),
				ArticleNums:  groupText(match, "article_nums"),
				Instrument:   groupText(match, "instrument"),
				Offset:       match.Index,
				Length:       match.Length,
			})
			match, err = re.FindNextMatch(match)
		}
	}
	return matches
}

// groupText returns a named group's capture, or "" when the group did not
// participate in the match.
func groupText(m *regexp2.Match, name string) string {
	g := m.GroupByName(name)
	if g == nil || len(g.Captures) == 0 {
		return ""
	}
	return g.String()
}
