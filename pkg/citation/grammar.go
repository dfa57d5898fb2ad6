package citation

import "strings"

// The citation grammar mirrors how Russian legal citations nest when several
// levels are present ("подп. 2 п. 3 ст. 5 ..."): an optional subpoint
// clause, then optional point, part and article clauses, followed by a
// mandatory instrument name. Each clause is an optional "в", a marker
// keyword, and a number-list; the clause ends with mandatory whitespace.
// The instrument field ends at whitespace, comma, period, semicolon or end
// of input, enforced by a lookahead, which is why the grammar is compiled
// with a backtracking engine rather than RE2.

// Number-list token shapes. They differ per clause: subpoints accept a
// plain number with an optional trailing letter or a bare letter, points
// and articles additionally accept dotted/hyphenated compounds ("15.1",
// "12-3а"), parts accept at most one dotted component.
const (
	subpointToken = `(?:\d{1,4}[а-я]?|[а-я])`
	pointToken    = `(?:\d{1,4}(?:[.\-]\d{1,3})*[а-я]?|[а-я])`
	partToken     = `(?:\d{1,3}(?:\.\d{1,3})?|[а-я])`
	articleToken  = `(?:\d{1,4}(?:[.\-]\d{1,3})*[а-я]?)`
)

// instrumentAlternatives is the closed set of legal-instrument name
// patterns, tried in order; the first alternative that matches at a
// position wins.
var instrumentAlternatives = []string{
	// Named codes with an optional federation suffix.
	`(?:Арбитражн(?:ого|ый)\s+процессуальн(?:ого|ый)|Бюджетн(?:ого|ый)|Водн(?:ого|ый)|Воздушн(?:ого|ый)|Градостроительн(?:ого|ый)|Гражданск(?:ого|ий)|Гражданск(?:ого|ий)\s+процессуальн(?:ого|ый)|Жилищн(?:ого|ый)|Семейн(?:ого|ый)|Таможенн(?:ого|ый)|Трудов(?:ого|ой)|Уголовно-исполнительн(?:ого|ый)|Уголовно-процессуальн(?:ого|ый)|Уголовн(?:ого|ый)|Лесн(?:ого|ой)|Налогов(?:ого|ый)|Земельн(?:ого|ый))\s+кодекс(?:а|)(?:\s+Российской Федерации|\s+России|\s+РФ|)`,

	// Code abbreviations.
	`АПК(?:\s+(?:России|РФ))?`,
	`БК(?:\s+(?:России|РФ))?`,
	`ГК(?:\s+РФ)?`,
	`ГПК(?:\s+(?:России|РФ))?`,
	`ЖК(?:\s+(?:России|РФ))?`,
	`СК(?:\s+(?:России|РФ))?`,
	`ТК(?:\s+РФ)?`,
	`УИК(?:\s+(?:России|РФ))?`,
	`УПК(?:\s+(?:России|РФ))?`,
	`УК(?:\s+(?:России|РФ))?`,
	`ЛК(?:\s+(?:России|РФ))?`,
	`НК(?:\s+(?:России|РФ))?`,
	`ЗК(?:\s+(?:России|РФ))?`,

	// Administrative-offenses code and its abbreviation.
	`Кодекс(?:а|)(?:\s+Российской Федерации|\s+России|\s+РФ|)?\s+об\s+административных\s+правонарушениях`,
	`КоАП(?:\s+Российской Федерации|\s+России|\s+РФ|)?`,

	// Other named codes.
	`Кодекс(?:а|)\s+административного\s+судопроизводства(?:\s+Российской Федерации|\s+России|\s+РФ|)?`,
	`Кодекс(?:а|)\s+внутреннего\s+водного\s+транспорта(?:\s+Российской Федерации|\s+России|\s+РФ|)?`,
	`Кодекс(?:а|)\s+торгового\s+мореплавания(?:\s+Российской Федерации|\s+России|\s+РФ|)?`,

	// Presidential decrees, with an optional number, date or quoted title.
	`Указ(?:а|)(?:\s+Президента(?:\s+Российской Федерации|\s+России|\s+РФ|)?)?(?:\s+(?:№?\s*\d+|\s*от\s*\d{2}\.\d{2}\.\d{4}))?(?:\s*«[^»]*»)?`,

	// Presidential orders.
	`Распоряжени(?:я|е)(?:\s+Президента(?:\s+Российской Федерации|\s+России|\s+РФ|)?)?(?:\s+(?:№?\s*\d+-\s*рп|от\s*\d{2}\.\d{2}\.\d{4}))?(?:\s*«[^»]*»)?`,
	`РП(?:\s+(?:№?\s*\d+-\s*рп|от\s*\d{2}\.\d{2}\.\d{4}))?(?:\s*«[^»]*»)?`,

	// Federal laws, named generically or as ФЗ, with an open-ended name
	// fragment running to the next punctuation.
	`Федеральн(?:ого|ый)\s+закон(?:а|)(?:\s+[^,.;]*)?`,
	`ФЗ(?:\s+[^,.;]*)?`,
	`Закона\s+«[^»]*»`,
	`Закона\s+"[^"]*"`,

	// The Constitution.
	`Конституци(?:и|я)(?:\s+РФ|\s+России|\s+Российской Федерации)?`,

	// Legislative "Basics" acts.
	`Основы\s+законодательства(?:\s+(?:Российской\s+Федерации|России|РФ))?(?:\s+№?\s*\d+(?:-I)?)?(?:\s+от\s+\d{2}\.\d{2}\.\d{4})?(?:\s*«[^»]*»)?`,

	// Generic "Law of the Russian Federation" phrasing.
	`Закон(?:\s+(?:Российской\s+Федерации|России|РФ))?(?:\s+№?\s*\d+(?:-I)?)?(?:\s+от\s+\d{2}\.\d{2}\.\d{4})?(?:\s*«[^»]*»)?`,

	// Accounting standards (ФСБУ) with an optional code and quoted title.
	`Федеральный\s+стандарт\s+бухгалтерского\s+учета(?:\s+(?:государственных\s+финансов|для\s+организаций\s+государственного\s+сектора))?(?:\s+ФСБУ\s*\d+(?:/\d{4})?)?(?:\s*«[^»]*»)?`,
	`ФСБУ(?:\s+(?:государственных\s+финансов|для\s+организаций\s+государственного\s+сектора))?(?:\s*\d+(?:/\d{4})?)?(?:\s*«[^»]*»)?`,

	// Accounting regulations (ПБУ).
	`Положение\s+по\s+бухгалтерскому\s+учету(?:\s+ПБУ\s*\d+(?:/\d{4})?)?(?:\s*«[^»]*»)?`,
	`ПБУ(?:\s*\d+(?:/\d{4})?)?(?:\s*«[^»]*»)?`,
	`Положени(?:я|е)\s+по\s+ведению\s+бухгалтерского\s+учета\s+и\s+бухгалтерской\s+отчетности\s+в\s+Российской\s+Федерации`,
}

// numberList wraps a token into the full list shape: one token, any number
// of comma-joined tokens, an optional final и-joined token.
func numberList(token string) string {
	return token + `(?:\s*,\s*` + token + `)*(?:\s*и\s*` + token + `)?`
}

// subpointClause matches "пп. 1, 2а" / "подпункта б" / "подп. 3".
func subpointClause() string {
	return `(?:в\s+)?(?:(?<subpoint_key>пп\.|подпункт[а-я]{0,7}|подп\.)\s*(?<subpoint_nums>` + numberList(subpointToken) + `)\s+)?`
}

// pointClause matches "п. 1, 2 и 3" / "пункта 15.1"; the marker also
// accepts the frequent "пунт" misspelling.
func pointClause() string {
	return `(?:в\s+)?(?:(?<point_key>п\.|пункт[а-я]{0,5}|пунт[а-я]{0,5})\s*(?<point_nums>` + numberList(pointToken) + `)\s+)?`
}

// partClause matches "ч. 2" / "части 1 и 3", with a tolerated trailing
// comma before the next clause.
func partClause() string {
	return `(?:в\s+)?(?:(?<part_key>ч\.|част[ьи])\s*(?<part_nums>` + numberList(partToken) + `)(?:\s*,\s*)?\s+)?`
}

// articleClause matches "ст. 5" / "статьи 10, 11"; a stray preposition
// between the marker and the numbers is skipped.
func articleClause() string {
	return `(?:в\s+)?(?:(?<article_key>ст\.|стать[ейиюя]|статей?|статья)\s*(?:(?:в|на|по)\s+)?(?<article_nums>` + numberList(articleToken) + `)\s+)?`
}

// instrumentField is the mandatory trailing field naming the cited
// instrument, terminated by whitespace, comma, period, semicolon or end of
// input.
func instrumentField() string {
	return `(?<instrument>(?:` + strings.Join(instrumentAlternatives, "|") + `)(?=\s|,|\.|;|$))`
}

// citationPattern assembles the whole grammar, left to right.
func citationPattern() string {
	return subpointClause() + pointClause() + partClause() + articleClause() + instrumentField()
}

// grammarPatterns is the pattern set scanned by the matcher. A single
// alternation covers the grammar today; the matcher deduplicates the set
// before compiling.
func grammarPatterns() []string {
	return []string{citationPattern()}
}
