package browser

import (
	"context"
	"fmt"

	"shopnav/pkg/command"
	"shopnav/pkg/tools"
)

// NavigateTool opens a URL on the current page.
type NavigateTool struct {
	session *Session
}

// NewNavigateTool creates a new navigate tool.
func NewNavigateTool(session *Session) *NavigateTool {
	return &NavigateTool{session: session}
}

// Name returns the tool name.
func (t *NavigateTool) Name() string {
	return "open_url"
}

// Description returns the tool description.
func (t *NavigateTool) Description() string {
	return "Navigate to a URL."
}

// Schema returns the tool's JSON schema.
func (t *NavigateTool) Schema() map[string]any {
	return tools.BaseToolSchema(
		map[string]any{
			"url": map[string]any{
				"type":        "string",
				"description": "Absolute URL to open",
			},
		},
		[]string{"url"},
	)
}

// Execute navigates to the URL and reports the page title.
func (t *NavigateTool) Execute(_ context.Context, args command.Arguments) (string, error) {
	url := args.String("url")
	if url == "" {
		return "", fmt.Errorf("url is required")
	}
	title, err := t.session.Navigate(url)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("opened %s title=%s", url, title), nil
}
