package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"

	"shopnav/pkg/lexicon"
)

// ClickInFrames clicks the first element matching the selector, searching
// every frame on the current page in order. Returns whether a match was
// clicked; per-frame locator errors are skipped so one broken frame does not
// hide matches in later frames.
func (s *Session) ClickInFrames(selector string) (bool, error) {
	page, err := s.EnsurePage()
	if err != nil {
		return false, err
	}

	for _, frame := range page.Frames() {
		if clickFirst(frame.Locator(selector)) {
			return true, nil
		}
	}
	return false, nil
}

// ClickByLabel clicks the first element whose label matches the given text.
//
// The text is expanded through the generic-action lexicon, so "구매" also
// tries "구입", "buy" and the rest of its synonym group. Each term is tried
// per frame in a fixed priority: accessible button role, visible text, then
// the aria-label, title and input-value attributes. The first hit wins and
// its matched term is returned.
func (s *Session) ClickByLabel(text string) (string, bool, error) {
	page, err := s.EnsurePage()
	if err != nil {
		return "", false, err
	}

	terms := lexicon.MatchedSynonyms(text)
	if len(terms) == 0 {
		terms = []string{text}
	}

	for _, frame := range page.Frames() {
		for _, term := range terms {
			if clickFirst(frame.GetByRole(*playwright.AriaRoleButton, playwright.FrameGetByRoleOptions{
				Name: term,
			})) {
				return term, true, nil
			}
			if clickFirst(frame.GetByText(term)) {
				return term, true, nil
			}
			for _, selector := range []string{
				fmt.Sprintf("[aria-label*='%s']", term),
				fmt.Sprintf("[title*='%s']", term),
				fmt.Sprintf("input[value*='%s']", term),
			} {
				if clickFirst(frame.Locator(selector)) {
					return term, true, nil
				}
			}
		}
	}
	return "", false, nil
}

// clickFirst clicks the first element of a locator if it matches anything.
// Errors count as no match: frames detach and elements vanish mid-scan, and
// the caller only cares whether a click landed.
func clickFirst(locator playwright.Locator) bool {
	count, err := locator.Count()
	if err != nil || count == 0 {
		return false
	}
	return locator.First().Click() == nil
}
