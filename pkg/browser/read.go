package browser

import (
	"context"
	"fmt"

	"shopnav/pkg/command"
	"shopnav/pkg/tools"
)

// TextTool returns the page's visible text.
type TextTool struct {
	session *Session
}

// NewTextTool creates a new text extraction tool.
func NewTextTool(session *Session) *TextTool {
	return &TextTool{session: session}
}

// Name returns the tool name.
func (t *TextTool) Name() string {
	return "get_text"
}

// Description returns the tool description.
func (t *TextTool) Description() string {
	return "Return visible text from the page (truncated)."
}

// Schema returns the tool's JSON schema.
func (t *TextTool) Schema() map[string]any {
	return tools.BaseToolSchema(
		map[string]any{
			"max_chars": map[string]any{
				"type":        "integer",
				"description": "Maximum characters to return (default 2000)",
			},
		},
		nil,
	)
}

// Execute extracts text.
func (t *TextTool) Execute(_ context.Context, args command.Arguments) (string, error) {
	return t.session.GetText(args.Int("max_chars", DefaultTextMaxChars))
}

// ButtonsTool lists visible button-like elements across frames.
type ButtonsTool struct {
	session *Session
}

// NewButtonsTool creates a new button listing tool.
func NewButtonsTool(session *Session) *ButtonsTool {
	return &ButtonsTool{session: session}
}

// Name returns the tool name.
func (t *ButtonsTool) Name() string {
	return "get_visible_buttons"
}

// Description returns the tool description.
func (t *ButtonsTool) Description() string {
	return "Return visible button-like elements with class and label text, across frames."
}

// Schema returns the tool's JSON schema.
func (t *ButtonsTool) Schema() map[string]any {
	return tools.BaseToolSchema(
		map[string]any{
			"max_items": map[string]any{
				"type":        "integer",
				"description": "Maximum elements to return (default 200)",
			},
		},
		nil,
	)
}

// Execute lists buttons as JSON.
func (t *ButtonsTool) Execute(_ context.Context, args command.Arguments) (string, error) {
	return t.session.GetVisibleButtons(args.Int("max_items", DefaultButtonMaxItems))
}

// ScreenshotTool captures the page to a local file.
type ScreenshotTool struct {
	session *Session
}

// NewScreenshotTool creates a new screenshot tool.
func NewScreenshotTool(session *Session) *ScreenshotTool {
	return &ScreenshotTool{session: session}
}

// Name returns the tool name.
func (t *ScreenshotTool) Name() string {
	return "screenshot"
}

// Description returns the tool description.
func (t *ScreenshotTool) Description() string {
	return "Take a screenshot to a local path."
}

// Schema returns the tool's JSON schema.
func (t *ScreenshotTool) Schema() map[string]any {
	return tools.BaseToolSchema(
		map[string]any{
			"path": map[string]any{
				"type":        "string",
				"description": "Local file path for the image",
			},
			"full_page": map[string]any{
				"type":        "boolean",
				"description": "Capture the full scrollable page (default true)",
			},
		},
		[]string{"path"},
	)
}

// Execute captures the screenshot.
func (t *ScreenshotTool) Execute(_ context.Context, args command.Arguments) (string, error) {
	path := args.String("path")
	if path == "" {
		return "", fmt.Errorf("path is required")
	}
	if err := t.session.Screenshot(path, args.Bool("full_page", true)); err != nil {
		return "", err
	}
	return fmt.Sprintf("screenshot %s", path), nil
}
