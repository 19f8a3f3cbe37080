package dochtml

import "strings"

// SeenLines records the lines already seen during one conversion.
// A SeenLines must not be shared between conversions.
type SeenLines struct {
	m map[string]struct{}
}

// NewSeenLines returns an empty set.
func NewSeenLines() *SeenLines {
	return &SeenLines{m: make(map[string]struct{})}
}

// Contains reports whether line has been seen.
func (s *SeenLines) Contains(line string) bool {
	_, ok := s.m[line]
	return ok
}

// Add records line. Adding a line twice has no effect.
func (s *SeenLines) Add(line string) {
	s.m[line] = struct{}{}
}

// LineFilter drops lines that contain any of ExcludeContains or start with
// any of ExcludePrefixes. Matching is case-sensitive.
type LineFilter struct {
	ExcludeContains []string
	ExcludePrefixes []string
}

// DefaultLineFilter removes disclaimer boilerplate and office-use stamps.
var DefaultLineFilter = LineFilter{
	ExcludeContains: []string{"Disclaimer"},
	ExcludePrefixes: []string{"For Office Use Only"},
}

// With returns a copy of f extended with extra patterns.
func (f LineFilter) With(contains, prefixes []string) LineFilter {
	return LineFilter{
		ExcludeContains: append(append([]string(nil), f.ExcludeContains...), contains...),
		ExcludePrefixes: append(append([]string(nil), f.ExcludePrefixes...), prefixes...),
	}
}

// Excludes reports whether line matches an exclusion pattern.
func (f LineFilter) Excludes(line string) bool {
	for _, s := range f.ExcludeContains {
		if strings.Contains(line, s) {
			return true
		}
	}
	for _, p := range f.ExcludePrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// Admit reports whether line should be kept.
// Lines are compared verbatim, surrounding whitespace included. A line
// already in seen is rejected. Otherwise it is recorded in seen, even when
// an exclusion pattern then rejects it.
func (f LineFilter) Admit(line string, seen *SeenLines) bool {
	if seen.Contains(line) {
		return false
	}
	seen.Add(line)
	return !f.Excludes(line)
}

// NormalizedPage is a page whose text has been deduplicated and filtered.
type NormalizedPage struct {
	Number int
	Tables []Table
	Lines  []string
}

// NormalizePages splits each page's text into lines and keeps the admitted
// ones in order. One set of seen lines spans the whole document, so a line
// repeated on a later page is dropped there.
func NormalizePages(pages []Page, filter LineFilter) []NormalizedPage {
	seen := NewSeenLines()
	out := make([]NormalizedPage, 0, len(pages))
	for _, page := range pages {
		np := NormalizedPage{Number: page.Number, Tables: page.Tables}
		if page.Text != "" {
			for _, line := range strings.Split(page.Text, "\n") {
				if filter.Admit(line, seen) {
					np.Lines = append(np.Lines, line)
				}
			}
		}
		out = append(out, np)
	}
	return out
}
