package tools

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopnav/pkg/command"
)

type fakeTool struct {
	name   string
	result string
	err    error
	calls  int
}

func (f *fakeTool) Name() string            { return f.name }
func (f *fakeTool) Description() string     { return "fake tool" }
func (f *fakeTool) Schema() map[string]any  { return BaseToolSchema(nil, nil) }
func (f *fakeTool) Execute(_ context.Context, args command.Arguments) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if f.result != "" {
		return f.result, nil
	}
	return fmt.Sprintf("%s ok", f.name), nil
}

func newTestDispatcher(t *testing.T, tools ...Tool) *Dispatcher {
	t.Helper()
	registry := NewRegistry()
	require.NoError(t, registry.RegisterAll(tools))
	return NewDispatcher(registry, nil)
}

func TestDispatch_RunsBatchInOrder(t *testing.T) {
	open := &fakeTool{name: "open_url", result: "opened https://www.coupang.com title=쿠팡!"}
	wait := &fakeTool{name: "wait", result: "waited 800ms"}
	d := newTestDispatcher(t, open, wait)

	results, err := d.Dispatch(context.Background(), command.Batch{
		command.New("open_url", command.Arguments{"url": "https://www.coupang.com"}),
		command.New("wait", command.Arguments{"ms": 800}),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"opened https://www.coupang.com title=쿠팡!", "waited 800ms"}, results)
	assert.Equal(t, 1, open.calls)
	assert.Equal(t, 1, wait.calls)
}

func TestDispatch_TracksLastURL(t *testing.T) {
	open := &fakeTool{name: "open_url"}
	d := newTestDispatcher(t, open)

	_, err := d.Dispatch(context.Background(), command.Single("open_url",
		command.Arguments{"url": "https://www.coupang.com"}))

	require.NoError(t, err)
	assert.Equal(t, "https://www.coupang.com", d.LastURL())
}

func TestDispatch_FailedOpenDoesNotUpdateLastURL(t *testing.T) {
	open := &fakeTool{name: "open_url", err: errors.New("net::ERR_CONNECTION_REFUSED")}
	d := newTestDispatcher(t, open)

	_, err := d.Dispatch(context.Background(), command.Single("open_url",
		command.Arguments{"url": "https://unreachable.example"}))

	require.Error(t, err)
	assert.Empty(t, d.LastURL())
}

func TestDispatch_UnknownToolStopsBatch(t *testing.T) {
	open := &fakeTool{name: "open_url"}
	d := newTestDispatcher(t, open)

	results, err := d.Dispatch(context.Background(), command.Batch{
		command.New("open_url", command.Arguments{"url": "https://example.com"}),
		command.New("teleport", nil),
		command.New("open_url", command.Arguments{"url": "https://example.org"}),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "teleport")
	assert.Len(t, results, 1)
	assert.Equal(t, 1, open.calls)
}

func TestDispatch_ExecutionErrorStopsBatch(t *testing.T) {
	click := &fakeTool{name: "click", err: errors.New("boom")}
	wait := &fakeTool{name: "wait"}
	d := newTestDispatcher(t, click, wait)

	results, err := d.Dispatch(context.Background(), command.Batch{
		command.New("click", command.Arguments{"selector": "#go"}),
		command.New("wait", command.Arguments{"ms": 100}),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "click failed")
	assert.Empty(t, results)
	assert.Equal(t, 0, wait.calls)
}

func TestDispatch_NotFoundStopsBatchWithoutError(t *testing.T) {
	click := &fakeTool{
		name: "click_text",
		err:  &NotFoundError{Target: "로그인", Result: "not_found_text 로그인"},
	}
	wait := &fakeTool{name: "wait"}
	d := newTestDispatcher(t, click, wait)

	results, err := d.Dispatch(context.Background(), command.Batch{
		command.New("click_text", command.Arguments{"text": "로그인"}),
		command.New("wait", command.Arguments{"ms": 100}),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"not_found_text 로그인"}, results)
	assert.Equal(t, 0, wait.calls)
}

func TestRegistry_DuplicateName(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(&fakeTool{name: "wait"}))
	assert.Error(t, registry.Register(&fakeTool{name: "wait"}))
}

func TestRegistry_NamesPreservesOrder(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.RegisterAll([]Tool{
		&fakeTool{name: "start_browser"},
		&fakeTool{name: "open_url"},
		&fakeTool{name: "close_browser"},
	}))

	assert.Equal(t, []string{"start_browser", "open_url", "close_browser"}, registry.Names())
}
