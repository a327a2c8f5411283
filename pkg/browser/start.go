package browser

import (
	"context"
	"fmt"

	"shopnav/pkg/command"
	"shopnav/pkg/tools"
)

// StartTool starts the shared browser session if it is not already running.
type StartTool struct {
	session *Session
}

// NewStartTool creates a new start tool.
func NewStartTool(session *Session) *StartTool {
	return &StartTool{session: session}
}

// Name returns the tool name.
func (t *StartTool) Name() string {
	return "start_browser"
}

// Description returns the tool description.
func (t *StartTool) Description() string {
	return "Start a Chromium browser instance if not already running."
}

// Schema returns the tool's JSON schema.
func (t *StartTool) Schema() map[string]any {
	return tools.BaseToolSchema(
		map[string]any{
			"headless": map[string]any{
				"type":        "boolean",
				"description": "Run without a visible window (default false)",
			},
		},
		nil,
	)
}

// Execute starts the browser.
func (t *StartTool) Execute(_ context.Context, args command.Arguments) (string, error) {
	headless := args.Bool("headless", false)
	t.session.SetHeadless(headless)
	if _, err := t.session.EnsurePage(); err != nil {
		return "", err
	}
	return fmt.Sprintf("browser_started headless=%t", t.session.Headless()), nil
}

// SwitchPageTool switches to the most recently opened page, typically after a
// login popup or a product page opened in a new tab.
type SwitchPageTool struct {
	session *Session
}

// NewSwitchPageTool creates a new switch tool.
func NewSwitchPageTool(session *Session) *SwitchPageTool {
	return &SwitchPageTool{session: session}
}

// Name returns the tool name.
func (t *SwitchPageTool) Name() string {
	return "switch_latest_page"
}

// Description returns the tool description.
func (t *SwitchPageTool) Description() string {
	return "Switch to the most recently opened page in the current context."
}

// Schema returns the tool's JSON schema.
func (t *SwitchPageTool) Schema() map[string]any {
	return tools.BaseToolSchema(nil, nil)
}

// Execute switches to the latest page.
func (t *SwitchPageTool) Execute(_ context.Context, _ command.Arguments) (string, error) {
	page, err := t.session.SwitchToLatestPage()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("switched %s", page.URL()), nil
}
