package browser

import (
	"context"
	"fmt"

	"shopnav/pkg/command"
	"shopnav/pkg/tools"
)

// FillTool fills an input element by CSS selector.
type FillTool struct {
	session *Session
}

// NewFillTool creates a new fill tool.
func NewFillTool(session *Session) *FillTool {
	return &FillTool{session: session}
}

// Name returns the tool name.
func (t *FillTool) Name() string {
	return "fill"
}

// Description returns the tool description.
func (t *FillTool) Description() string {
	return "Fill an input by selector."
}

// Schema returns the tool's JSON schema.
func (t *FillTool) Schema() map[string]any {
	return tools.BaseToolSchema(
		map[string]any{
			"selector": map[string]any{
				"type":        "string",
				"description": "CSS selector for the input element",
			},
			"text": map[string]any{
				"type":        "string",
				"description": "Value to set",
			},
		},
		[]string{"selector", "text"},
	)
}

// Execute fills the input.
func (t *FillTool) Execute(_ context.Context, args command.Arguments) (string, error) {
	selector := args.String("selector")
	if selector == "" {
		return "", fmt.Errorf("selector is required")
	}
	if err := t.session.Fill(selector, args.String("text")); err != nil {
		return "", err
	}
	return fmt.Sprintf("filled %s", selector), nil
}

// PressTool sends a key to an element by CSS selector.
type PressTool struct {
	session *Session
}

// NewPressTool creates a new press tool.
func NewPressTool(session *Session) *PressTool {
	return &PressTool{session: session}
}

// Name returns the tool name.
func (t *PressTool) Name() string {
	return "press"
}

// Description returns the tool description.
func (t *PressTool) Description() string {
	return "Press a key on a focused element."
}

// Schema returns the tool's JSON schema.
func (t *PressTool) Schema() map[string]any {
	return tools.BaseToolSchema(
		map[string]any{
			"selector": map[string]any{
				"type":        "string",
				"description": "CSS selector for the target element",
			},
			"key": map[string]any{
				"type":        "string",
				"description": "Key name, e.g. 'Enter'",
			},
		},
		[]string{"selector", "key"},
	)
}

// Execute presses the key.
func (t *PressTool) Execute(_ context.Context, args command.Arguments) (string, error) {
	selector := args.String("selector")
	key := args.String("key")
	if selector == "" {
		return "", fmt.Errorf("selector is required")
	}
	if key == "" {
		return "", fmt.Errorf("key is required")
	}
	if err := t.session.Press(selector, key); err != nil {
		return "", err
	}
	return fmt.Sprintf("pressed %s on %s", key, selector), nil
}
