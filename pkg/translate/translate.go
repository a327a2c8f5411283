// Package translate converts free-form user text into browser command batches
// using an LLM provider. It is the last resort of the resolution chain and is
// deliberately forgiving: any provider error or unparseable reply yields an
// empty batch rather than an error, so callers fall through cleanly.
package translate

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"shopnav/pkg/command"
	"shopnav/pkg/llm"
	"shopnav/pkg/logging"
)

// DefaultTimeout bounds a single translation round trip.
const DefaultTimeout = 20 * time.Second

const systemPrompt = `You convert natural language into browser tool calls. Return ONLY valid JSON. Allowed tools:
- start_browser(headless: bool)
- open_url(url: str)
- click(selector: str)
- click_in_frames(selector: str)
- click_text(text: str)
- fill(selector: str, text: str)
- press(selector: str, key: str)
- wait(ms: int)
- scroll(delta_y: int)
- humanize(steps: int, min_wait_ms: int, max_wait_ms: int, max_scroll: int)
- get_text(max_chars: int)
- get_visible_buttons(max_items: int)
- screenshot(path: str, full_page: bool)
- switch_latest_page()
- close_browser()
If multiple steps are needed, return:
{"commands":[{"tool":"open_url","arguments":{"url":"https://example.com"}}]}
If one step, return:
{"tool":"open_url","arguments":{"url":"https://example.com"}}`

// Translator asks an LLM to map user text onto tool invocations. Successful
// translations are appended to the audit log.
type Translator struct {
	provider  llm.Provider
	logger    *logging.Logger
	auditPath string
	timeout   time.Duration
}

// Option configures a Translator.
type Option func(*Translator)

// WithTimeout overrides the per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(t *Translator) {
		if d > 0 {
			t.timeout = d
		}
	}
}

// WithAuditPath overrides where translated tool calls are recorded.
func WithAuditPath(path string) Option {
	return func(t *Translator) {
		t.auditPath = path
	}
}

// New creates a Translator over a provider. A nil provider is allowed and
// produces a translator that always returns empty batches.
func New(provider llm.Provider, logger *logging.Logger, opts ...Option) *Translator {
	t := &Translator{
		provider:  provider,
		logger:    logger,
		auditPath: logging.DefaultAuditPath(),
		timeout:   DefaultTimeout,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Translate maps user text to a command batch. It never returns an error:
// provider failures, timeouts, and malformed replies all produce an empty
// batch so the caller can report an unmapped input.
func (t *Translator) Translate(ctx context.Context, userText string) command.Batch {
	if t.provider == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	reply, err := t.provider.Complete(ctx, []*llm.Message{
		llm.NewSystemMessage(systemPrompt),
		llm.NewUserMessage(userText),
	})
	if err != nil {
		if t.logger != nil {
			t.logger.Warnf("llm error: %v", err)
		}
		return nil
	}

	batch := parseReply(reply.Content)
	if len(batch) > 0 {
		logging.AppendAudit(t.auditPath, userText, batch)
	}
	return batch
}

// rawCall mirrors the JSON shape the model is instructed to emit.
type rawCall struct {
	Tool      string         `json:"tool"`
	Arguments map[string]any `json:"arguments"`
}

type rawReply struct {
	rawCall
	Commands []rawCall `json:"commands"`
}

// parseReply extracts a command batch from model output. Accepts either a
// single {"tool":...,"arguments":...} object or a {"commands":[...]} wrapper,
// optionally fenced in a markdown code block. Anything else is an empty batch.
func parseReply(content string) command.Batch {
	text := stripCodeFence(strings.TrimSpace(content))
	if text == "" {
		return nil
	}

	var parsed rawReply
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil
	}

	if len(parsed.Commands) > 0 {
		batch := make(command.Batch, 0, len(parsed.Commands))
		for _, call := range parsed.Commands {
			if call.Tool == "" {
				continue
			}
			batch = append(batch, command.New(call.Tool, call.Arguments))
		}
		return batch
	}

	if parsed.Tool != "" {
		return command.Single(parsed.Tool, parsed.Arguments)
	}
	return nil
}

// stripCodeFence removes a surrounding markdown code fence if present. Models
// occasionally wrap JSON in ```json blocks despite the prompt.
func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
