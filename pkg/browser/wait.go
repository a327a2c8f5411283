package browser

import (
	"context"
	"fmt"

	"shopnav/pkg/command"
	"shopnav/pkg/tools"
)

// WaitTool pauses on the page clock for a number of milliseconds.
type WaitTool struct {
	session *Session
}

// NewWaitTool creates a new wait tool.
func NewWaitTool(session *Session) *WaitTool {
	return &WaitTool{session: session}
}

// Name returns the tool name.
func (t *WaitTool) Name() string {
	return "wait"
}

// Description returns the tool description.
func (t *WaitTool) Description() string {
	return "Wait for a number of milliseconds."
}

// Schema returns the tool's JSON schema.
func (t *WaitTool) Schema() map[string]any {
	return tools.BaseToolSchema(
		map[string]any{
			"ms": map[string]any{
				"type":        "integer",
				"description": "Milliseconds to wait",
			},
		},
		[]string{"ms"},
	)
}

// Execute waits.
func (t *WaitTool) Execute(_ context.Context, args command.Arguments) (string, error) {
	ms := args.Int("ms", 0)
	if ms < 0 {
		return "", fmt.Errorf("ms must not be negative")
	}
	if err := t.session.WaitMillis(ms); err != nil {
		return "", err
	}
	return fmt.Sprintf("waited %dms", ms), nil
}

// ScrollTool scrolls the page vertically.
type ScrollTool struct {
	session *Session
}

// NewScrollTool creates a new scroll tool.
func NewScrollTool(session *Session) *ScrollTool {
	return &ScrollTool{session: session}
}

// Name returns the tool name.
func (t *ScrollTool) Name() string {
	return "scroll"
}

// Description returns the tool description.
func (t *ScrollTool) Description() string {
	return "Scroll the page by delta_y pixels."
}

// Schema returns the tool's JSON schema.
func (t *ScrollTool) Schema() map[string]any {
	return tools.BaseToolSchema(
		map[string]any{
			"delta_y": map[string]any{
				"type":        "integer",
				"description": "Vertical scroll distance; negative scrolls up",
			},
		},
		[]string{"delta_y"},
	)
}

// Execute scrolls.
func (t *ScrollTool) Execute(_ context.Context, args command.Arguments) (string, error) {
	deltaY := args.Int("delta_y", 0)
	if err := t.session.Scroll(deltaY); err != nil {
		return "", err
	}
	return fmt.Sprintf("scrolled %d", deltaY), nil
}

// HumanizeTool performs small human-like mouse and scroll activity.
type HumanizeTool struct {
	session *Session
}

// NewHumanizeTool creates a new humanize tool.
func NewHumanizeTool(session *Session) *HumanizeTool {
	return &HumanizeTool{session: session}
}

// Name returns the tool name.
func (t *HumanizeTool) Name() string {
	return "humanize"
}

// Description returns the tool description.
func (t *HumanizeTool) Description() string {
	return "Perform small human-like actions: move mouse, scroll, and wait."
}

// Schema returns the tool's JSON schema.
func (t *HumanizeTool) Schema() map[string]any {
	return tools.BaseToolSchema(
		map[string]any{
			"steps": map[string]any{
				"type":        "integer",
				"description": "Number of activity rounds (default 3)",
			},
			"min_wait_ms": map[string]any{
				"type":        "integer",
				"description": "Minimum pause between actions (default 200)",
			},
			"max_wait_ms": map[string]any{
				"type":        "integer",
				"description": "Maximum pause between actions (default 800)",
			},
			"max_scroll": map[string]any{
				"type":        "integer",
				"description": "Maximum scroll distance per round (default 800)",
			},
		},
		nil,
	)
}

// Execute runs the activity loop.
func (t *HumanizeTool) Execute(_ context.Context, args command.Arguments) (string, error) {
	opts := HumanizeOptions{
		Steps:     args.Int("steps", DefaultHumanizeSteps),
		MinWaitMs: args.Int("min_wait_ms", DefaultHumanizeMinWaitMs),
		MaxWaitMs: args.Int("max_wait_ms", DefaultHumanizeMaxWaitMs),
		MaxScroll: args.Int("max_scroll", DefaultHumanizeMaxScroll),
	}
	if err := t.session.Humanize(opts); err != nil {
		return "", err
	}
	return "humanized", nil
}
