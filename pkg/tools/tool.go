// Package tools defines the browser tool contract and the dispatcher that
// runs resolved command batches against registered tools.
package tools

import (
	"context"
	"fmt"

	"shopnav/pkg/command"
)

// Tool represents a single browser capability addressable by command name.
type Tool interface {
	// Name returns the unique identifier for this tool (e.g., "open_url")
	Name() string

	// Description returns a human-readable description of what this tool does
	Description() string

	// Schema returns the JSON schema for this tool's input parameters
	Schema() map[string]any

	// Execute runs the tool with the given arguments and returns a result
	// string describing the outcome. A NotFoundError result means the target
	// element was absent; other errors mean execution failed.
	Execute(ctx context.Context, args command.Arguments) (string, error)
}

// NotFoundError reports that a tool could not locate its target element.
// Distinct from execution failures so the dispatcher can stop the batch with
// the tool's outcome string rather than an error.
type NotFoundError struct {
	Target string
	Result string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s", e.Target)
}

// IsNotFound reports whether err is a NotFoundError and returns it.
func IsNotFound(err error) (*NotFoundError, bool) {
	nf, ok := err.(*NotFoundError)
	return nf, ok
}

// BaseToolSchema creates a common JSON schema structure for a tool
// with the given properties and required fields.
func BaseToolSchema(properties map[string]any, required []string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}
