package citation

import (
	"reflect"
	"testing"

	"github.com/coolbeans/lawlink/pkg/alias"
)

func testResolver() *alias.Resolver {
	return alias.NewResolver(alias.NewIndex(map[alias.LawID][]string{
		1: {"Гражданский кодекс", "Гражданского кодекса", "ГК РФ", "ГК"},
		2: {"Налоговый кодекс", "Налогового кодекса", "НК РФ", "НК"},
		3: {"Трудовой кодекс", "Трудового кодекса", "ТК РФ", "ТК"},
		4: {"Уголовный кодекс", "Уголовного кодекса", "УК РФ", "УК"},
	}))
}

// ref builds an expected reference; law 0 and empty strings mean absent.
func ref(law alias.LawID, article, point, subpoint string) LawReference {
	r := LawReference{}
	if law != 0 {
		r.LawID = &law
	}
	if article != "" {
		r.Article = &article
	}
	if point != "" {
		r.PointArticle = &point
	}
	if subpoint != "" {
		r.SubpointArticle = &subpoint
	}
	return r
}

func TestExpand(t *testing.T) {
	e := NewExpander(testResolver())

	cases := []struct {
		name  string
		match Match
		want  []LawReference
	}{
		{
			name:  "bare instrument",
			match: Match{Instrument: "Налоговый кодекс"},
			want:  []LawReference{ref(2, "", "", "")},
		},
		{
			name:  "single article",
			match: Match{ArticleNums: "5", Instrument: "ГК РФ"},
			want:  []LawReference{ref(1, "5", "", "")},
		},
		{
			name:  "point list expands in order",
			match: Match{PointNums: "1, 2 и 3", ArticleNums: "10", Instrument: "НК РФ"},
			want: []LawReference{
				ref(2, "10", "1", ""),
				ref(2, "10", "2", ""),
				ref(2, "10", "3", ""),
			},
		},
		{
			name:  "part substitutes for absent point",
			match: Match{PartNums: "2", ArticleNums: "14", Instrument: "УК РФ"},
			want:  []LawReference{ref(4, "14", "2", "")},
		},
		{
			name:  "part list substitutes for absent point",
			match: Match{PartNums: "1 и 2", ArticleNums: "14", Instrument: "УК РФ"},
			want: []LawReference{
				ref(4, "14", "1", ""),
				ref(4, "14", "2", ""),
			},
		},
		{
			name:  "explicit point wins over part",
			match: Match{PointNums: "5", PartNums: "2", ArticleNums: "14", Instrument: "УК РФ"},
			want:  []LawReference{ref(4, "14", "5", "")},
		},
		{
			name:  "cartesian product order",
			match: Match{SubpointNums: "а, б", ArticleNums: "1 и 2", Instrument: "ТК РФ"},
			want: []LawReference{
				ref(3, "1", "", "а"),
				ref(3, "1", "", "б"),
				ref(3, "2", "", "а"),
				ref(3, "2", "", "б"),
			},
		},
		{
			name:  "unresolved instrument keeps fields",
			match: Match{ArticleNums: "7", Instrument: "Неизвестный документ"},
			want:  []LawReference{ref(0, "7", "", "")},
		},
		{
			name:  "single subpoint letter",
			match: Match{SubpointNums: "а", PointNums: "2", ArticleNums: "15", Instrument: "ТК РФ"},
			want:  []LawReference{ref(3, "15", "2", "а")},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := e.Expand(tc.match)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Expand(%+v) = %+v, want %+v", tc.match, got, tc.want)
			}
		})
	}
}

func TestExpandSharesResolvedID(t *testing.T) {
	e := NewExpander(testResolver())
	got := e.Expand(Match{PointNums: "1 и 2", ArticleNums: "3", Instrument: "ГК РФ"})
	if len(got) != 2 {
		t.Fatalf("expanded %d references, want 2", len(got))
	}
	if got[0].LawID != got[1].LawID {
		t.Error("expanded references must share the same resolved law id")
	}
}

func TestFieldCandidates(t *testing.T) {
	cases := []struct {
		raw  string
		want []string
	}{
		{"", []string{""}},
		{"5", []string{"5"}},
		{"1, 2", []string{"1", "2"}},
		{"1 и 2", []string{"1", "2"}},
		{"15.1", []string{"15.1"}},
	}
	for _, tc := range cases {
		if got := fieldCandidates(tc.raw); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("fieldCandidates(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}
