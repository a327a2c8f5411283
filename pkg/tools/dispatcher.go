package tools

import (
	"context"
	"fmt"
	"sync"

	"shopnav/pkg/command"
	"shopnav/pkg/logging"
)

// Registry holds the available tools by name.
type Registry struct {
	tools map[string]Tool
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool; duplicate names are an error.
func (r *Registry) Register(tool Tool) error {
	name := tool.Name()
	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("tool %q already registered", name)
	}
	r.tools[name] = tool
	r.order = append(r.order, name)
	return nil
}

// RegisterAll registers a list of tools, stopping at the first error.
func (r *Registry) RegisterAll(tools []Tool) error {
	for _, tool := range tools {
		if err := r.Register(tool); err != nil {
			return err
		}
	}
	return nil
}

// Get returns a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// Names returns the registered tool names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Dispatcher executes command batches sequentially against a registry. It is
// the single writer of the last-URL context used by the resolver's
// shopping-site heuristics.
type Dispatcher struct {
	registry *Registry
	logger   *logging.Logger

	mu      sync.RWMutex
	lastURL string
}

// NewDispatcher creates a dispatcher over a registry.
func NewDispatcher(registry *Registry, logger *logging.Logger) *Dispatcher {
	return &Dispatcher{registry: registry, logger: logger}
}

// LastURL returns the URL of the most recent successful open_url command.
func (d *Dispatcher) LastURL() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lastURL
}

// Dispatch runs a batch in order, collecting each tool's result string.
//
// Execution is fail-fast: an unknown tool or an execution error stops the
// batch and returns the results so far alongside the error. A tool reporting
// its target as not found also stops the batch, but its outcome string is
// appended and no error is returned, since a missing element is an answer
// rather than a failure.
func (d *Dispatcher) Dispatch(ctx context.Context, batch command.Batch) ([]string, error) {
	results := make([]string, 0, len(batch))

	for _, cmd := range batch {
		tool, ok := d.registry.Get(cmd.Name)
		if !ok {
			return results, fmt.Errorf("unknown tool %q", cmd.Name)
		}

		if d.logger != nil {
			d.logger.Debugf("dispatch %s args=%v", cmd.Name, cmd.Arguments)
		}

		result, err := tool.Execute(ctx, cmd.Arguments)
		if err != nil {
			if nf, isNotFound := IsNotFound(err); isNotFound {
				if d.logger != nil {
					d.logger.Infof("%s: %v", cmd.Name, err)
				}
				results = append(results, nf.Result)
				return results, nil
			}
			return results, fmt.Errorf("%s failed: %w", cmd.Name, err)
		}

		results = append(results, result)

		if cmd.Name == "open_url" {
			if url := cmd.Arguments.String("url"); url != "" {
				d.mu.Lock()
				d.lastURL = url
				d.mu.Unlock()
			}
		}
	}

	return results, nil
}
