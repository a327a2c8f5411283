package sites

import (
	"net/url"
	"regexp"
	"strings"

	"shopnav/pkg/command"
)

// naverSearchPattern tolerates an optional 쇼핑 qualifier and postposition
// between the site name and the query.
var naverSearchPattern = regexp.MustCompile(`네이버(?:\s*쇼핑)?(?:에서|에)?\s*(.+?)\s*검색`)

// NaverShoppingSearchURL builds the Naver shopping search URL for a query.
func NaverShoppingSearchURL(query string) string {
	q := strings.TrimSpace(query)
	return "https://search.shopping.naver.com/ns/search?query=" + url.QueryEscape(q)
}

// Naver is the Naver shopping rule set. Unlike Coupang, search goes straight
// to the search-result URL; there is no search box to drive.
type Naver struct{}

// Name implements RuleSet.
func (Naver) Name() string { return "naver" }

// RuleCommands tests the Naver phrase rules.
func (Naver) RuleCommands(text string) command.Batch {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if strings.Contains(text, "네이버") && strings.Contains(text, "검색") {
		query := naverSearchQuery(text)
		if query == "" {
			return nil
		}
		return command.Batch{
			command.New("start_browser", command.Arguments{"headless": false}),
			command.New("open_url", command.Arguments{"url": NaverShoppingSearchURL(query)}),
			command.New("wait", command.Arguments{"ms": 800}),
		}
	}

	return nil
}

func naverSearchQuery(text string) string {
	if m := naverSearchPattern.FindStringSubmatch(text); m != nil {
		if q := strings.TrimSpace(m[1]); q != "" {
			return q
		}
	}
	stripped := strings.ReplaceAll(text, "네이버", "")
	stripped = strings.ReplaceAll(stripped, "쇼핑", "")
	stripped = strings.ReplaceAll(stripped, "검색", "")
	return strings.TrimSpace(stripped)
}
