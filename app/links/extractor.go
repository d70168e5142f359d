package links

import (
	"log/slog"
	"regexp"
	"slices"
)

var (
	urlPattern = regexp.MustCompile(`https?://(?:[-A-Za-z0-9_.]|%[0-9A-Fa-f]{2})+[-A-Za-z0-9/_.~!*'();:@&=+$,%#?]*`)

	// Both shapes must match the whole URL, so query strings and fragments fall through to garbage.
	userinfoPattern = regexp.MustCompile(`^https?://[^/]+/[A-Za-z0-9_-]+/?$`)
	postinfoPattern = regexp.MustCompile(`^https?://[^/]+/[A-Za-z0-9_-]+/(?:\d+|[A-Za-z0-9_-]+)/?$`)
)

type Extractor struct {
	filter *Filter
}

func NewExtractor(filter *Filter) *Extractor {
	return &Extractor{filter: filter}
}

// FindURLs returns every URL in content in order of appearance, duplicates included.
func FindURLs(content string) []string {
	return urlPattern.FindAllString(content, -1)
}

func (e *Extractor) Classify(url string) Category {
	if !e.filter.Matches(url) {
		return CategoryGarbage
	}

	switch {
	case userinfoPattern.MatchString(url):
		return CategoryUserinfo
	case postinfoPattern.MatchString(url):
		return CategoryPostinfo
	default:
		return CategoryGarbage
	}
}

func (e *Extractor) Run(content string) (*Result, error) {
	urls := FindURLs(content)
	if len(urls) == 0 {
		return nil, ErrNoURLs
	}

	result := &Result{}
	distinct := make(map[string]struct{}, len(urls))
	for _, url := range urls {
		distinct[url] = struct{}{}

		switch e.Classify(url) {
		case CategoryUserinfo:
			result.Userinfo = append(result.Userinfo, url)
		case CategoryPostinfo:
			result.Postinfo = append(result.Postinfo, url)
		default:
			result.Garbage = append(result.Garbage, url)
		}
	}

	slices.Sort(result.Userinfo)
	slices.Sort(result.Postinfo)
	slices.Sort(result.Garbage)

	result.Total = len(result.Userinfo) + len(result.Postinfo) + len(result.Garbage)
	result.Unique = len(distinct)

	slog.Debug("Links classified",
		"matches", len(urls),
		"unique", result.Unique,
		"userinfo", len(result.Userinfo),
		"postinfo", len(result.Postinfo),
		"garbage", len(result.Garbage))

	return result, nil
}
