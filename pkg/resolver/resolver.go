// Package resolver turns one line of user text into an ordered command
// batch. Strategies run in a fixed precedence order and the first non-empty
// result wins: deterministic local rules must never be overridden by the
// language model, and site-specific rules must win over the generic search
// rule.
package resolver

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"shopnav/pkg/command"
	"shopnav/pkg/lexicon"
	"shopnav/pkg/sites"
)

// Translator is the language-model fallback. Implementations must return an
// empty batch on any failure (missing credentials, network error, malformed
// output) rather than an error; translator trouble is a decline, not a fault.
type Translator interface {
	Translate(ctx context.Context, text string) command.Batch
}

// Resolver runs the strategy chain over registered site rule sets with an
// optional translator as the last resort.
type Resolver struct {
	sites      []sites.RuleSet
	translator Translator
}

// New builds a resolver. translator may be nil, in which case unresolved
// input simply yields an empty batch.
func New(ruleSets []sites.RuleSet, translator Translator) *Resolver {
	return &Resolver{sites: ruleSets, translator: translator}
}

var (
	genericSearchPattern = regexp.MustCompile(`(.+?)\s*검색`)

	padDigitPattern    = regexp.MustCompile(`^(\d)\s*$`)
	padDigitClick      = regexp.MustCompile(`^(\d)\s*클릭\s*$`)
	padPosClick        = regexp.MustCompile(`(?i)^pad-pos-(\d)\s*클릭\s*$`)
	padKeyDigitClick   = regexp.MustCompile(`(?i)^pad-key\s*(\d)\s*클릭\s*$`)
	padKeyBareSelector = "a.pad-key"
)

// Resolve maps one line of input to a command batch. lastURL is the most
// recent successfully navigated URL and feeds the contextual click
// heuristic; pass "" when nothing has been opened yet. An empty batch means
// no strategy (including the translator) could map the input.
func (r *Resolver) Resolve(ctx context.Context, text, lastURL string) command.Batch {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	// 1. Explicit syntax has absolute priority.
	if cmd, ok := ParseExplicit(trimmed); ok {
		return command.Batch{cmd}
	}

	// 2. Bare logout precedes the site rules: logout intent is unambiguous
	// without a site name.
	if trimmed == "로그아웃" {
		return sites.CoupangLogoutCommands()
	}

	// 3. Site rule sets in registration order.
	for _, site := range r.sites {
		if batch := site.RuleCommands(trimmed); len(batch) > 0 {
			return batch
		}
	}

	// 4. Generic search via a web search engine.
	if batch := genericSearchCommands(trimmed); len(batch) > 0 {
		return batch
	}

	// 5. Numeric keypad shorthand.
	if batch := padCommands(trimmed); len(batch) > 0 {
		return batch
	}

	// 6. Generic action phrase: click by label with synonym expansion.
	if lexicon.IsGenericAction(trimmed) {
		return command.Single("click_text", command.Arguments{"text": trimmed})
	}

	// 7. Contextual click: free text on a shopping site names something
	// visible on the page.
	if sites.ShouldClickSearchResult(trimmed, lastURL) {
		return command.Single("click_text", command.Arguments{"text": trimmed})
	}

	// 8. Language-model fallback.
	if r.translator != nil {
		return r.translator.Translate(ctx, trimmed)
	}
	return nil
}

// genericSearchCommands drives a Google search when the text carries the
// Korean search verb but no site rule claimed it.
func genericSearchCommands(text string) command.Batch {
	if !strings.Contains(text, "검색") {
		return nil
	}
	m := genericSearchPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	query := strings.TrimSpace(m[1])
	if query == "" {
		return nil
	}
	const searchInput = `input[name="q"]`
	return command.Batch{
		command.New("start_browser", command.Arguments{"headless": false}),
		command.New("open_url", command.Arguments{"url": "https://www.google.com"}),
		command.New("wait", command.Arguments{"ms": 800}),
		command.New("click", command.Arguments{"selector": searchInput}),
		command.New("fill", command.Arguments{"selector": searchInput, "text": query}),
		command.New("press", command.Arguments{"selector": searchInput, "key": "Enter"}),
	}
}

// padCommands recognizes the numeric-keypad shorthands used by banking and
// payment widgets rendered inside frames.
func padCommands(text string) command.Batch {
	if m := padDigitPattern.FindStringSubmatch(text); m != nil {
		return padKeyClick(m[1])
	}
	if m := padDigitClick.FindStringSubmatch(text); m != nil {
		return padKeyClick(m[1])
	}
	if m := padPosClick.FindStringSubmatch(text); m != nil {
		return command.Single("click_in_frames", command.Arguments{
			"selector": fmt.Sprintf(".pad-pos-%s", m[1]),
		})
	}
	if m := padKeyDigitClick.FindStringSubmatch(text); m != nil {
		return padKeyClick(m[1])
	}
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "pad-key 클릭", "pad key 클릭":
		return command.Single("click_in_frames", command.Arguments{"selector": padKeyBareSelector})
	}
	return nil
}

func padKeyClick(digit string) command.Batch {
	return command.Single("click_in_frames", command.Arguments{
		"selector": fmt.Sprintf("a.pad-key[data-key='%s']", digit),
	})
}
