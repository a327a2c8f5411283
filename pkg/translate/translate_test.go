package translate

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopnav/pkg/command"
	"shopnav/pkg/llm"
)

type stubProvider struct {
	reply string
	err   error
}

func (s *stubProvider) Complete(_ context.Context, _ []*llm.Message) (*llm.Message, error) {
	if s.err != nil {
		return nil, s.err
	}
	return llm.NewAssistantMessage(s.reply), nil
}

func (s *stubProvider) GetModel() string   { return "stub" }
func (s *stubProvider) GetBaseURL() string { return "" }

func newTestTranslator(t *testing.T, provider llm.Provider) *Translator {
	t.Helper()
	auditPath := filepath.Join(t.TempDir(), "audit.log")
	return New(provider, nil, WithAuditPath(auditPath))
}

func TestTranslate_SingleCommand(t *testing.T) {
	tr := newTestTranslator(t, &stubProvider{
		reply: `{"tool":"open_url","arguments":{"url":"https://example.com"}}`,
	})

	batch := tr.Translate(context.Background(), "go to example")

	require.Len(t, batch, 1)
	assert.Equal(t, "open_url", batch[0].Name)
	assert.Equal(t, "https://example.com", batch[0].Arguments.String("url"))
}

func TestTranslate_CommandList(t *testing.T) {
	tr := newTestTranslator(t, &stubProvider{
		reply: `{"commands":[
			{"tool":"open_url","arguments":{"url":"https://example.com"}},
			{"tool":"wait","arguments":{"ms":500}},
			{"tool":"click_text","arguments":{"text":"로그인"}}
		]}`,
	})

	batch := tr.Translate(context.Background(), "log in to example")

	require.Len(t, batch, 3)
	assert.Equal(t, "open_url", batch[0].Name)
	assert.Equal(t, "wait", batch[1].Name)
	assert.Equal(t, 500, batch[1].Arguments.Int("ms", 0))
	assert.Equal(t, "click_text", batch[2].Name)
}

func TestTranslate_CodeFencedReply(t *testing.T) {
	tr := newTestTranslator(t, &stubProvider{
		reply: "```json\n{\"tool\":\"wait\",\"arguments\":{\"ms\":800}}\n```",
	})

	batch := tr.Translate(context.Background(), "wait a bit")

	require.Len(t, batch, 1)
	assert.Equal(t, "wait", batch[0].Name)
}

func TestTranslate_ProviderErrorReturnsEmpty(t *testing.T) {
	tr := newTestTranslator(t, &stubProvider{err: errors.New("connection refused")})

	assert.Empty(t, tr.Translate(context.Background(), "anything"))
}

func TestTranslate_MalformedReplyReturnsEmpty(t *testing.T) {
	for _, reply := range []string{
		"",
		"not json at all",
		`{"commands":"oops"}`,
		`{"arguments":{"url":"https://example.com"}}`,
	} {
		tr := newTestTranslator(t, &stubProvider{reply: reply})
		assert.Empty(t, tr.Translate(context.Background(), "anything"), "reply %q", reply)
	}
}

func TestTranslate_SkipsEntriesWithoutTool(t *testing.T) {
	tr := newTestTranslator(t, &stubProvider{
		reply: `{"commands":[
			{"arguments":{"url":"https://example.com"}},
			{"tool":"wait","arguments":{"ms":100}}
		]}`,
	})

	batch := tr.Translate(context.Background(), "anything")

	require.Len(t, batch, 1)
	assert.Equal(t, "wait", batch[0].Name)
}

func TestTranslate_NilProviderReturnsEmpty(t *testing.T) {
	tr := newTestTranslator(t, nil)
	assert.Empty(t, tr.Translate(context.Background(), "anything"))
}

func TestParseReply_MissingArgumentsBecomesEmptyMap(t *testing.T) {
	batch := parseReply(`{"tool":"switch_latest_page"}`)

	require.Len(t, batch, 1)
	assert.Equal(t, "switch_latest_page", batch[0].Name)
	assert.NotNil(t, batch[0].Arguments)
	assert.IsType(t, command.Arguments{}, batch[0].Arguments)
}
