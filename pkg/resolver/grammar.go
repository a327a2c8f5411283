package resolver

import (
	"strconv"
	"strings"

	"shopnav/pkg/command"
)

// knownCommands is the explicit grammar vocabulary. Anything else falls
// through to the rule strategies.
var knownCommands = map[string]struct{}{
	"open":     {},
	"click":    {},
	"fill":     {},
	"press":    {},
	"wait":     {},
	"scroll":   {},
	"humanize": {},
	"text":     {},
	"buttons":  {},
	"shot":     {},
	"start":    {},
	"close":    {},
	"switch":   {},
}

// Explicit grammar defaults.
const (
	defaultHumanizeSteps = 3
	defaultTextChars     = 2000
	defaultButtonItems   = 200
)

// ParseExplicit parses one line of the explicit command grammar. The second
// return value is false when the line does not belong to the grammar
// (unknown first token, missing arguments, or a non-numeric count) so the
// caller can fall through to the next strategy instead of reporting an error.
func ParseExplicit(line string) (command.Command, bool) {
	parts := splitFields(line)
	if len(parts) == 0 {
		return command.Command{}, false
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	if _, ok := knownCommands[cmd]; !ok {
		return command.Command{}, false
	}

	switch cmd {
	case "open":
		if len(args) > 0 {
			return command.New("open_url", command.Arguments{"url": args[0]}), true
		}
	case "click":
		if len(args) > 0 {
			return command.New("click", command.Arguments{"selector": args[0]}), true
		}
	case "fill":
		if len(args) >= 2 {
			return command.New("fill", command.Arguments{
				"selector": args[0],
				"text":     strings.Join(args[1:], " "),
			}), true
		}
	case "press":
		if len(args) >= 2 {
			return command.New("press", command.Arguments{
				"selector": args[0],
				"key":      args[1],
			}), true
		}
	case "wait":
		if len(args) > 0 {
			if ms, err := strconv.Atoi(args[0]); err == nil {
				return command.New("wait", command.Arguments{"ms": ms}), true
			}
		}
	case "scroll":
		if len(args) > 0 {
			if delta, err := strconv.Atoi(args[0]); err == nil {
				return command.New("scroll", command.Arguments{"delta_y": delta}), true
			}
		}
	case "humanize":
		steps := defaultHumanizeSteps
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return command.Command{}, false
			}
			steps = n
		}
		return command.New("humanize", command.Arguments{"steps": steps}), true
	case "text":
		maxChars := defaultTextChars
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return command.Command{}, false
			}
			maxChars = n
		}
		return command.New("get_text", command.Arguments{"max_chars": maxChars}), true
	case "buttons":
		maxItems := defaultButtonItems
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return command.Command{}, false
			}
			maxItems = n
		}
		return command.New("get_visible_buttons", command.Arguments{"max_items": maxItems}), true
	case "shot":
		if len(args) > 0 {
			return command.New("screenshot", command.Arguments{
				"path":      args[0],
				"full_page": true,
			}), true
		}
	case "start":
		headless := len(args) > 0 && strings.ToLower(args[0]) == "headless"
		return command.New("start_browser", command.Arguments{"headless": headless}), true
	case "close":
		return command.New("close_browser", command.Arguments{}), true
	case "switch":
		return command.New("switch_latest_page", command.Arguments{}), true
	}

	return command.Command{}, false
}

// splitFields splits a line into whitespace-separated fields, keeping quoted
// spans (single or double) together so selectors like 'a[href="/x y"]' survive
// as one argument. Quotes are stripped; there is no escape syntax.
func splitFields(line string) []string {
	var fields []string
	var cur strings.Builder
	var quote rune
	inField := false

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inField = true
		case r == ' ' || r == '\t':
			if inField {
				fields = append(fields, cur.String())
				cur.Reset()
				inField = false
			}
		default:
			cur.WriteRune(r)
			inField = true
		}
	}
	if inField {
		fields = append(fields, cur.String())
	}
	return fields
}
