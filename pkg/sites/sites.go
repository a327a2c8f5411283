// Package sites holds the per-site rule tables that translate localized
// phrases into command batches, plus the shopping-host registry used by the
// contextual click heuristic.
package sites

import "shopnav/pkg/command"

// RuleSet resolves site-specific phrases into command batches. A nil or
// empty batch means no rule fired and the caller should fall through to the
// next strategy.
type RuleSet interface {
	Name() string
	RuleCommands(text string) command.Batch
}

// Registered returns the rule sets in resolution order. Order is part of the
// precedence policy: earlier sites win when both would match.
func Registered() []RuleSet {
	return []RuleSet{Coupang{}, Naver{}}
}
