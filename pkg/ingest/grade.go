package ingest

import (
	"regexp"
	"strconv"
	"strings"
)

// gradeStrategy is one extraction pattern for text-form grade cells.
// Strategies are tried in declaration order and the first one that
// matches at least one value in the column wins; that strategy is then
// applied uniformly to the whole column. The order is a documented
// contract; reordering changes which values extract.
type gradeStrategy struct {
	name string
	re   *regexp.Regexp
}

var gradeStrategies = []gradeStrategy{
	{name: "grade-prefix", re: regexp.MustCompile(`Grade\s*(\d+)`)}, // "Grade 12"
	{name: "g-prefix", re: regexp.MustCompile(`G\s*(\d+)`)},         // "G 12"
	{name: "bare-digits", re: regexp.MustCompile(`(\d+)`)},          // just the number
}

// extractGrades coerces the GRADE column to integers. Already-numeric
// values pass straight through. Otherwise the extraction strategies run
// in order; individual values the winning strategy cannot match become
// missing (nil), never 0. A column no strategy matches returns
// ok == false with the strategy name empty.
func extractGrades(values []string) (grades []*int, strategy string, ok bool) {
	if allNumeric(values) {
		grades = make([]*int, len(values))
		for i, v := range values {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				continue
			}
			g := int(f)
			grades[i] = &g
		}
		return grades, "numeric", true
	}

	for _, s := range gradeStrategies {
		extracted := make([]*int, len(values))
		matchedAny := false
		for i, v := range values {
			m := s.re.FindStringSubmatch(v)
			if m == nil {
				continue
			}
			g, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			extracted[i] = &g
			matchedAny = true
		}
		if matchedAny {
			return extracted, s.name, true
		}
	}
	return nil, "", false
}

// allNumeric reports whether every non-empty value in the column parses
// as a plain number, meaning the column needs no pattern extraction.
func allNumeric(values []string) bool {
	sawValue := false
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		sawValue = true
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return false
		}
	}
	return sawValue
}

// sampleValues returns up to n raw values for error diagnostics.
func sampleValues(values []string, n int) []string {
	if len(values) < n {
		n = len(values)
	}
	out := make([]string, n)
	copy(out, values[:n])
	return out
}
