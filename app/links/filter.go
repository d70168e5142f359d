package links

import (
	"strings"
)

type Filter struct {
	Includes []string
	Excludes []string
}

func NewFilter(includes, excludes string) *Filter {
	return &Filter{
		Includes: ParseKeywords(includes),
		Excludes: ParseKeywords(excludes),
	}
}

// ParseKeywords splits comma separated user input into lowercased keywords.
// Blank input yields no keywords.
func ParseKeywords(input string) []string {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	parts := strings.Split(input, ",")
	keywords := make([]string, 0, len(parts))
	for _, part := range parts {
		keywords = append(keywords, strings.ToLower(strings.TrimSpace(part)))
	}
	return keywords
}

func (f *Filter) Matches(value string) bool {
	if f == nil {
		return true
	}
	return Matches(value, f.Includes, f.Excludes)
}

// Matches reports whether value contains every include keyword and none of
// the exclude keywords, ignoring case.
func Matches(value string, includes, excludes []string) bool {
	value = strings.ToLower(value)

	for _, include := range includes {
		if !matchesKeyword(value, include) {
			return false
		}
	}

	for _, exclude := range excludes {
		if matchesKeyword(value, exclude) {
			return false
		}
	}

	return true
}

func matchesKeyword(lowered, keyword string) bool {
	return strings.Contains(lowered, strings.ToLower(keyword))
}
