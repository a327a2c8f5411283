package browser

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

const innerTextScript = "() => document.body?.innerText || ''"

// visibleButtonsScript collects button-like elements that actually render:
// zero-size and css-hidden nodes are skipped. Pad-key anchors are a Coupang
// login widget and only included when asked.
const visibleButtonsScript = `({ maxItems, includePadKeys }) => {
  const selectors = [
    "button",
    "a[role='button']",
    "input[type='button']",
    "input[type='submit']",
  ];
  if (includePadKeys) {
    selectors.push("a.pad-key");
  }
  const nodes = Array.from(document.querySelectorAll(selectors.join(",")));
  const visible = [];
  for (const el of nodes) {
    if (visible.length >= maxItems) break;
    const rect = el.getBoundingClientRect();
    if (!rect || rect.width === 0 || rect.height === 0) continue;
    const style = window.getComputedStyle(el);
    if (style.display === "none" || style.visibility === "hidden" || style.opacity === "0") continue;
    const text = (el.innerText || el.value || el.getAttribute("aria-label") || "").trim();
    visible.push({
      class: (el.className || "").toString(),
      text,
      dataKey: el.getAttribute("data-key") || "",
    });
  }
  return visible;
}`

// GetText returns the page's visible text, truncated to maxChars with a
// trailing ellipsis. When script evaluation is blocked it falls back to
// extracting text from the raw HTML.
func (s *Session) GetText(maxChars int) (string, error) {
	page, err := s.EnsurePage()
	if err != nil {
		return "", err
	}
	if maxChars <= 0 {
		maxChars = DefaultTextMaxChars
	}

	var text string
	result, err := page.Evaluate(innerTextScript)
	if err == nil {
		text, _ = result.(string)
	} else {
		content, contentErr := page.Content()
		if contentErr != nil {
			return "", fmt.Errorf("text extraction failed: %w", err)
		}
		text = textFromHTML(content)
	}

	runes := []rune(text)
	if len(runes) > maxChars {
		return string(runes[:maxChars]) + "...", nil
	}
	return text, nil
}

// GetVisibleButtons scans every frame for visible button-like elements and
// returns them as a JSON array, at most maxItems entries across all frames.
// Frames that refuse evaluation (cross-origin, detached) are skipped.
func (s *Session) GetVisibleButtons(maxItems int) (string, error) {
	page, err := s.EnsurePage()
	if err != nil {
		return "", err
	}
	if maxItems <= 0 {
		maxItems = DefaultButtonMaxItems
	}

	results := make([]VisibleButton, 0, maxItems)
	remaining := maxItems

	for _, frame := range page.Frames() {
		if remaining <= 0 {
			break
		}
		frameURL := frame.URL()
		raw, err := frame.Evaluate(visibleButtonsScript, map[string]any{
			"maxItems":       remaining,
			"includePadKeys": strings.Contains(frameURL, "coupang.com"),
		})
		if err != nil {
			continue
		}
		for _, button := range decodeButtons(raw) {
			if remaining <= 0 {
				break
			}
			button.FrameURL = frameURL
			results = append(results, button)
			remaining--
		}
	}

	encoded, err := json.Marshal(results)
	if err != nil {
		return "", fmt.Errorf("failed to encode buttons: %w", err)
	}
	return string(encoded), nil
}

// decodeButtons converts the evaluate result into typed entries.
func decodeButtons(raw any) []VisibleButton {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	buttons := make([]VisibleButton, 0, len(items))
	for _, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			continue
		}
		button := VisibleButton{}
		button.Class, _ = fields["class"].(string)
		button.Text, _ = fields["text"].(string)
		button.DataKey, _ = fields["dataKey"].(string)
		buttons = append(buttons, button)
	}
	return buttons
}

// textFromHTML extracts visible text nodes from an HTML document, skipping
// script and style subtrees.
func textFromHTML(content string) string {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return ""
	}

	var builder strings.Builder
	var walk func(node *html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode {
			switch node.Data {
			case "script", "style", "noscript":
				return
			}
		}
		if node.Type == html.TextNode {
			if trimmed := strings.TrimSpace(node.Data); trimmed != "" {
				if builder.Len() > 0 {
					builder.WriteByte('\n')
				}
				builder.WriteString(trimmed)
			}
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)
	return builder.String()
}
