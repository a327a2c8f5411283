package sites

import (
	"net/url"
	"strings"

	"github.com/gobwas/glob"

	"shopnav/pkg/lexicon"
)

// shoppingHosts is the set of exact hostnames classified as shopping sites.
var shoppingHosts = map[string]struct{}{
	"coupang.com":               {},
	"www.coupang.com":           {},
	"search.shopping.naver.com": {},
	"shopping.naver.com":        {},
	"11st.co.kr":                {},
	"www.11st.co.kr":            {},
	"gmarket.co.kr":             {},
	"www.gmarket.co.kr":         {},
	"auction.co.kr":             {},
	"www.auction.co.kr":         {},
	"ssg.com":                   {},
	"www.ssg.com":               {},
	"wemakeprice.com":           {},
	"www.wemakeprice.com":       {},
	"tmon.co.kr":                {},
	"www.tmon.co.kr":            {},
	"interpark.com":             {},
	"shopping.interpark.com":    {},
}

// Coupang is the one registered apex whose subdomains all count as shopping
// hosts (login.coupang.com, mc.coupang.com, ...).
var coupangSubdomain = glob.MustCompile("*.coupang.com")

func hostFromURL(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(parsed.Host)
}

// IsShoppingSite reports whether rawURL points at a known shopping host.
func IsShoppingSite(rawURL string) bool {
	host := hostFromURL(rawURL)
	if host == "" {
		return false
	}
	if _, ok := shoppingHosts[host]; ok {
		return true
	}
	return coupangSubdomain.Match(host)
}

// ShouldClickSearchResult is the contextual click heuristic: free text typed
// while the last navigation landed on a shopping site most likely names a
// product or link visible on the page. It must stay conservative: any hint
// of a search verb, a URL, or a known generic action means the text is a
// command, not a label.
func ShouldClickSearchResult(userText, lastURL string) bool {
	text := strings.TrimSpace(userText)
	if text == "" {
		return false
	}
	if !IsShoppingSite(lastURL) {
		return false
	}
	lowered := strings.ToLower(text)
	if strings.Contains(text, "검색") || strings.Contains(lowered, "search") || strings.Contains(lowered, "find") {
		return false
	}
	if strings.Contains(lowered, "http://") || strings.Contains(lowered, "https://") {
		return false
	}
	if lexicon.IsGenericAction(text) {
		return false
	}
	return true
}
