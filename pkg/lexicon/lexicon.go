// Package lexicon maps canonical shopping actions to their localized surface
// forms. The tables are static: loaded at init, never mutated.
package lexicon

import "strings"

// Entry pairs a canonical action key with its ordered synonym list. Order
// matters: when an entry matches, the locator tries its synonyms in this
// declared order.
type Entry struct {
	Key   string
	Terms []string
}

// entries is the generic-action table. Matching is case-insensitive
// substring containment, so near-duplicate casings are still listed to keep
// the term order used when searching the page.
var entries = []Entry{
	{
		Key: "login",
		Terms: []string{
			"로그인",
			"로그인하기",
			"로그인 하기",
			"Sign in",
			"Sign In",
			"Log in",
			"Log In",
			"Login",
		},
	},
	{
		Key: "signup",
		Terms: []string{
			"회원가입",
			"가입",
			"Sign up",
			"Sign Up",
			"Register",
			"Join",
			"Create account",
			"Create Account",
		},
	},
	{
		Key: "cart",
		Terms: []string{
			"장바구니",
			"카트",
			"Cart",
			"Basket",
			"My Cart",
		},
	},
	{
		Key: "buy",
		Terms: []string{
			"구매",
			"바로구매",
			"구매하기",
			"Buy",
			"Buy now",
			"Purchase",
		},
	},
	{
		Key: "checkout",
		Terms: []string{
			"결제",
			"결제하기",
			"주문",
			"주문하기",
			"Checkout",
			"Check out",
			"Place order",
			"Pay",
			"Pay now",
		},
	},
}

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// MatchedSynonyms returns every synonym of every entry that has at least one
// synonym contained in text. The full synonym list of a matched entry is
// included, not just the matching term: the page may render the action in a
// different language or casing than the user typed, so the locator must try
// all known spellings. Entry order and per-entry term order are preserved;
// duplicates across entries are skipped.
func MatchedSynonyms(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	lowered := normalize(text)

	var terms []string
	seen := make(map[string]struct{})
	for _, entry := range entries {
		for _, term := range entry.Terms {
			if !strings.Contains(lowered, normalize(term)) {
				continue
			}
			for _, candidate := range entry.Terms {
				if _, dup := seen[candidate]; dup {
					continue
				}
				seen[candidate] = struct{}{}
				terms = append(terms, candidate)
			}
			break
		}
	}
	return terms
}

// IsGenericAction reports whether text mentions any known generic action.
func IsGenericAction(text string) bool {
	return len(MatchedSynonyms(text)) > 0
}

// Entries returns the full action table, primarily for diagnostics.
func Entries() []Entry {
	return entries
}
