// Package command defines the resolved command values that flow from the
// resolver to the dispatcher. A Command is immutable once produced; a Batch
// preserves resolution order, which is also execution order.
package command

// Arguments holds the named arguments of a command. Values may arrive as
// native Go types (from the explicit grammar and rule tables) or as JSON
// decode results (from the translator), so the accessors coerce both shapes.
type Arguments map[string]any

// Command is a single primitive invocation.
type Command struct {
	Name      string
	Arguments Arguments
}

// Batch is an ordered command sequence produced from one line of input.
// An empty batch means no resolution strategy matched.
type Batch []Command

// New builds a command. A nil argument map is normalized to an empty one so
// accessors never need a nil check.
func New(name string, args Arguments) Command {
	if args == nil {
		args = Arguments{}
	}
	return Command{Name: name, Arguments: args}
}

// Single wraps one command into a batch.
func Single(name string, args Arguments) Batch {
	return Batch{New(name, args)}
}

// String returns the string value for key, or "" if absent or not a string.
func (a Arguments) String(key string) string {
	if v, ok := a[key].(string); ok {
		return v
	}
	return ""
}

// Int returns the integer value for key, accepting int, int64, and the
// float64 values produced by JSON decoding. Returns def when absent or
// non-numeric.
func (a Arguments) Int(key string, def int) int {
	switch v := a[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return def
}

// Bool returns the boolean value for key, or def when absent or not a bool.
func (a Arguments) Bool(key string, def bool) bool {
	if v, ok := a[key].(bool); ok {
		return v
	}
	return def
}
