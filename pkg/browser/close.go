package browser

import (
	"context"

	"shopnav/pkg/command"
	"shopnav/pkg/tools"
)

// CloseTool shuts the shared browser session down.
type CloseTool struct {
	session *Session
}

// NewCloseTool creates a new close tool.
func NewCloseTool(session *Session) *CloseTool {
	return &CloseTool{session: session}
}

// Name returns the tool name.
func (t *CloseTool) Name() string {
	return "close_browser"
}

// Description returns the tool description.
func (t *CloseTool) Description() string {
	return "Close browser/context and stop Playwright."
}

// Schema returns the tool's JSON schema.
func (t *CloseTool) Schema() map[string]any {
	return tools.BaseToolSchema(nil, nil)
}

// Execute closes the session.
func (t *CloseTool) Execute(_ context.Context, _ command.Arguments) (string, error) {
	if err := t.session.Close(); err != nil {
		return "", err
	}
	return "browser_closed", nil
}
