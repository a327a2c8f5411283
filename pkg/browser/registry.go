package browser

import (
	"shopnav/pkg/tools"
)

// RegisterTools creates the full browser tool set over one shared session.
func RegisterTools(session *Session) []tools.Tool {
	return []tools.Tool{
		NewStartTool(session),
		NewNavigateTool(session),
		NewClickTool(session),
		NewClickInFramesTool(session),
		NewClickTextTool(session),
		NewFillTool(session),
		NewPressTool(session),
		NewWaitTool(session),
		NewScrollTool(session),
		NewHumanizeTool(session),
		NewTextTool(session),
		NewButtonsTool(session),
		NewScreenshotTool(session),
		NewSwitchPageTool(session),
		NewCloseTool(session),
	}
}
