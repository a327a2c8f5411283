package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"shopnav/pkg/command"
)

// AuditToolCall is one tool call inside an audit record.
type AuditToolCall struct {
	Tool      string            `json:"tool"`
	Arguments command.Arguments `json:"arguments"`
}

// AuditRecord is one JSONL line: the raw input that reached the language
// model and the commands it produced.
type AuditRecord struct {
	TS        string          `json:"ts"`
	Input     string          `json:"input"`
	ToolCalls []AuditToolCall `json:"tool_calls"`
}

// DefaultAuditPath returns the audit log path under the log directory, or a
// path in the working directory when the log directory is unavailable.
func DefaultAuditPath() string {
	dir, err := GetLogDirectory()
	if err != nil {
		return "llm_tool_calls.log"
	}
	return filepath.Join(dir, "llm_tool_calls.log")
}

// AppendAudit appends one record for a translator-produced batch. Empty
// batches are not recorded. Write failures are swallowed: auditing must never
// abort command execution.
func AppendAudit(path, input string, batch command.Batch) {
	if len(batch) == 0 {
		return
	}

	record := AuditRecord{
		TS:    time.Now().UTC().Format(time.RFC3339),
		Input: input,
	}
	for _, cmd := range batch {
		record.ToolCalls = append(record.ToolCalls, AuditToolCall{
			Tool:      cmd.Name,
			Arguments: cmd.Arguments,
		})
	}

	line, err := json.Marshal(record)
	if err != nil {
		return
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return
	}
	defer file.Close()
	_, _ = file.Write(append(line, '\n'))
}
