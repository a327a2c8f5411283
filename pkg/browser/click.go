package browser

import (
	"context"
	"fmt"

	"shopnav/pkg/command"
	"shopnav/pkg/tools"
)

// ClickTool clicks an element on the current page by CSS selector.
type ClickTool struct {
	session *Session
}

// NewClickTool creates a new click tool.
func NewClickTool(session *Session) *ClickTool {
	return &ClickTool{session: session}
}

// Name returns the tool name.
func (t *ClickTool) Name() string {
	return "click"
}

// Description returns the tool description.
func (t *ClickTool) Description() string {
	return "Click an element by selector."
}

// Schema returns the tool's JSON schema.
func (t *ClickTool) Schema() map[string]any {
	return tools.BaseToolSchema(
		map[string]any{
			"selector": map[string]any{
				"type":        "string",
				"description": "CSS selector for the element to click",
			},
		},
		[]string{"selector"},
	)
}

// Execute clicks the element.
func (t *ClickTool) Execute(_ context.Context, args command.Arguments) (string, error) {
	selector := args.String("selector")
	if selector == "" {
		return "", fmt.Errorf("selector is required")
	}
	if err := t.session.Click(selector); err != nil {
		return "", err
	}
	return fmt.Sprintf("clicked %s", selector), nil
}

// ClickInFramesTool clicks the first matching element across all frames.
// Needed for login widgets that live inside iframes, where a plain click by
// selector never finds its target.
type ClickInFramesTool struct {
	session *Session
}

// NewClickInFramesTool creates a new cross-frame click tool.
func NewClickInFramesTool(session *Session) *ClickInFramesTool {
	return &ClickInFramesTool{session: session}
}

// Name returns the tool name.
func (t *ClickInFramesTool) Name() string {
	return "click_in_frames"
}

// Description returns the tool description.
func (t *ClickInFramesTool) Description() string {
	return "Click the first element matching selector across frames."
}

// Schema returns the tool's JSON schema.
func (t *ClickInFramesTool) Schema() map[string]any {
	return tools.BaseToolSchema(
		map[string]any{
			"selector": map[string]any{
				"type":        "string",
				"description": "CSS selector searched in every frame",
			},
		},
		[]string{"selector"},
	)
}

// Execute clicks the first match across frames.
func (t *ClickInFramesTool) Execute(_ context.Context, args command.Arguments) (string, error) {
	selector := args.String("selector")
	if selector == "" {
		return "", fmt.Errorf("selector is required")
	}
	clicked, err := t.session.ClickInFrames(selector)
	if err != nil {
		return "", err
	}
	if !clicked {
		return "", &tools.NotFoundError{
			Target: selector,
			Result: fmt.Sprintf("not_found_selector %s", selector),
		}
	}
	return fmt.Sprintf("clicked %s", selector), nil
}

// ClickTextTool clicks the first element whose label matches the given text,
// across frames, expanding the text through the generic-action synonyms.
type ClickTextTool struct {
	session *Session
}

// NewClickTextTool creates a new text click tool.
func NewClickTextTool(session *Session) *ClickTextTool {
	return &ClickTextTool{session: session}
}

// Name returns the tool name.
func (t *ClickTextTool) Name() string {
	return "click_text"
}

// Description returns the tool description.
func (t *ClickTextTool) Description() string {
	return "Click the first element that matches the given text, across frames."
}

// Schema returns the tool's JSON schema.
func (t *ClickTextTool) Schema() map[string]any {
	return tools.BaseToolSchema(
		map[string]any{
			"text": map[string]any{
				"type":        "string",
				"description": "Label text to click; action synonyms are tried too",
			},
		},
		[]string{"text"},
	)
}

// Execute clicks the first label match.
func (t *ClickTextTool) Execute(_ context.Context, args command.Arguments) (string, error) {
	text := args.String("text")
	if text == "" {
		return "", fmt.Errorf("text is required")
	}
	term, clicked, err := t.session.ClickByLabel(text)
	if err != nil {
		return "", err
	}
	if !clicked {
		return "", &tools.NotFoundError{
			Target: text,
			Result: fmt.Sprintf("not_found_text %s", text),
		}
	}
	return fmt.Sprintf("clicked_text %s", term), nil
}
