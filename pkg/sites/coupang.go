package sites

import (
	"regexp"
	"strings"

	"shopnav/pkg/command"
)

// Canonical Coupang URLs.
const (
	CoupangHomeURL  = "https://www.coupang.com/"
	CoupangLoginURL = "https://login.coupang.com/login/login.pang?" +
		"rtnUrl=https%3A%2F%2Fwww.coupang.com%2Fnp%2Fpost%2Flogin%3Fr%3D" +
		"http%253A%252F%252Fwww.coupang.com%252F"
)

// coupangSelectors are the hand-verified selectors for the Coupang frontend.
// The logout button has no stable class name, only the fw-* utility classes.
var coupangSelectors = map[string]string{
	"login_button":  ".login__button.login__button--submit._loginSubmitButton.login__button--submit-rds",
	"logout_button": `[class*="fw-border-"][class*="fw-bg-"][class*="fw-text-"]`,
	"search_button": ".headerSearchBtn",
	"search_input":  `input[name="q"]`,
}

// coupangSearchPattern captures the query between the site name (with an
// optional Korean postposition) and the trailing search verb. The longer
// postposition must come first in the alternation or 에서 leaves a stray 서
// in the capture.
var coupangSearchPattern = regexp.MustCompile(`쿠팡(?:에서|에)?\s*(.+?)\s*검색`)

// CoupangSelectors returns a copy of the selector table.
func CoupangSelectors() map[string]string {
	out := make(map[string]string, len(coupangSelectors))
	for k, v := range coupangSelectors {
		out[k] = v
	}
	return out
}

// CoupangLogoutCommands is the logout batch. It is also used by the resolver
// for the bare "로그아웃" input, where logout intent is unambiguous without a
// site name.
func CoupangLogoutCommands() command.Batch {
	return command.Batch{
		command.New("start_browser", command.Arguments{"headless": false}),
		command.New("click", command.Arguments{"selector": coupangSelectors["logout_button"]}),
	}
}

// Coupang is the Coupang rule set.
type Coupang struct{}

// Name implements RuleSet.
func (Coupang) Name() string { return "coupang" }

// RuleCommands tests the Coupang phrase rules in order and returns the batch
// of the first one that fires.
func (Coupang) RuleCommands(text string) command.Batch {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if strings.Contains(text, "쿠팡") && strings.Contains(text, "접속") {
		return command.Batch{
			command.New("start_browser", command.Arguments{"headless": false}),
			command.New("open_url", command.Arguments{"url": CoupangHomeURL}),
			command.New("wait", command.Arguments{"ms": 800}),
		}
	}

	if strings.Contains(text, "로그인") && strings.Contains(text, "쿠팡") {
		return command.Batch{
			command.New("start_browser", command.Arguments{"headless": false}),
			command.New("open_url", command.Arguments{"url": CoupangLoginURL}),
			command.New("wait", command.Arguments{"ms": 800}),
		}
	}

	if strings.Contains(text, "로그아웃") && strings.Contains(text, "쿠팡") {
		return CoupangLogoutCommands()
	}

	if strings.Contains(text, "로그인") && strings.Contains(text, "버튼") {
		return command.Batch{
			command.New("start_browser", command.Arguments{"headless": false}),
			command.New("click", command.Arguments{"selector": coupangSelectors["login_button"]}),
		}
	}

	if strings.Contains(text, "쿠팡") && strings.Contains(text, "검색") {
		query := coupangSearchQuery(text)
		if query == "" {
			return nil
		}
		input := coupangSelectors["search_input"]
		return command.Batch{
			command.New("start_browser", command.Arguments{"headless": false}),
			command.New("open_url", command.Arguments{"url": CoupangHomeURL}),
			command.New("wait", command.Arguments{"ms": 800}),
			command.New("click", command.Arguments{"selector": input}),
			command.New("fill", command.Arguments{"selector": input, "text": query}),
			command.New("press", command.Arguments{"selector": input, "key": "Enter"}),
		}
	}

	return nil
}

// coupangSearchQuery extracts the search query from a Coupang search phrase.
// When the pattern misses (verb ordering, missing postposition), fall back to
// stripping the known tokens and using whatever remains.
func coupangSearchQuery(text string) string {
	if m := coupangSearchPattern.FindStringSubmatch(text); m != nil {
		if q := strings.TrimSpace(m[1]); q != "" {
			return q
		}
	}
	stripped := strings.ReplaceAll(text, "쿠팡", "")
	stripped = strings.ReplaceAll(stripped, "검색", "")
	return strings.TrimSpace(stripped)
}
