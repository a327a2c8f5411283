package logging

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopnav/pkg/command"
)

func TestAppendAudit_WritesOneLinePerBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")

	batch := command.Batch{
		command.New("open_url", command.Arguments{"url": "https://example.com"}),
		command.New("wait", command.Arguments{"ms": 800}),
	}
	AppendAudit(path, "예제 열어줘", batch)
	AppendAudit(path, "second input", command.Single("close_browser", nil))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	var records []AuditRecord
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var rec AuditRecord
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		records = append(records, rec)
	}
	require.Len(t, records, 2)

	assert.Equal(t, "예제 열어줘", records[0].Input)
	require.Len(t, records[0].ToolCalls, 2)
	assert.Equal(t, "open_url", records[0].ToolCalls[0].Tool)
	assert.Equal(t, "https://example.com", records[0].ToolCalls[0].Arguments.String("url"))

	ts, err := time.Parse(time.RFC3339, records[0].TS)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, time.Minute)
}

func TestAppendAudit_SkipsEmptyBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")
	AppendAudit(path, "nothing resolved", nil)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestAppendAudit_SwallowsWriteFailures(t *testing.T) {
	// Directory path cannot be opened as a file; must not panic or error.
	AppendAudit(t.TempDir(), "input", command.Single("wait", command.Arguments{"ms": 1}))
}
