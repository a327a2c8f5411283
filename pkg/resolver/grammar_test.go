package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExplicit(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantName string
		wantArgs map[string]any
	}{
		{
			name:     "open",
			line:     "open https://www.coupang.com",
			wantName: "open_url",
			wantArgs: map[string]any{"url": "https://www.coupang.com"},
		},
		{
			name:     "click",
			line:     `click .login__button`,
			wantName: "click",
			wantArgs: map[string]any{"selector": ".login__button"},
		},
		{
			name:     "fill joins free text",
			line:     `fill input[name="q"] wireless mouse pad`,
			wantName: "fill",
			wantArgs: map[string]any{"selector": `input[name=q]`, "text": "wireless mouse pad"},
		},
		{
			name:     "press",
			line:     "press #search Enter",
			wantName: "press",
			wantArgs: map[string]any{"selector": "#search", "key": "Enter"},
		},
		{
			name:     "wait",
			line:     "wait 800",
			wantName: "wait",
			wantArgs: map[string]any{"ms": 800},
		},
		{
			name:     "scroll negative",
			line:     "scroll -300",
			wantName: "scroll",
			wantArgs: map[string]any{"delta_y": -300},
		},
		{
			name:     "humanize default steps",
			line:     "humanize",
			wantName: "humanize",
			wantArgs: map[string]any{"steps": 3},
		},
		{
			name:     "humanize with steps",
			line:     "humanize 5",
			wantName: "humanize",
			wantArgs: map[string]any{"steps": 5},
		},
		{
			name:     "text default",
			line:     "text",
			wantName: "get_text",
			wantArgs: map[string]any{"max_chars": 2000},
		},
		{
			name:     "buttons default",
			line:     "buttons",
			wantName: "get_visible_buttons",
			wantArgs: map[string]any{"max_items": 200},
		},
		{
			name:     "shot",
			line:     "shot page.png",
			wantName: "screenshot",
			wantArgs: map[string]any{"path": "page.png", "full_page": true},
		},
		{
			name:     "start headed",
			line:     "start",
			wantName: "start_browser",
			wantArgs: map[string]any{"headless": false},
		},
		{
			name:     "start headless",
			line:     "start headless",
			wantName: "start_browser",
			wantArgs: map[string]any{"headless": true},
		},
		{
			name:     "close",
			line:     "close",
			wantName: "close_browser",
			wantArgs: map[string]any{},
		},
		{
			name:     "switch",
			line:     "switch",
			wantName: "switch_latest_page",
			wantArgs: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := ParseExplicit(tt.line)
			require.True(t, ok)
			assert.Equal(t, tt.wantName, cmd.Name)
			for k, v := range tt.wantArgs {
				assert.Equal(t, v, cmd.Arguments[k], "argument %q", k)
			}
		})
	}
}

func TestParseExplicit_NoMatch(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "unknown command", line: "navigate somewhere"},
		{name: "fill missing text", line: "fill onlyoneword"},
		{name: "press missing key", line: "press #selector"},
		{name: "open missing url", line: "open"},
		{name: "click missing selector", line: "click"},
		{name: "wait non numeric", line: "wait soon"},
		{name: "scroll non numeric", line: "scroll down"},
		{name: "shot missing path", line: "shot"},
		{name: "empty", line: ""},
		{name: "korean phrase", line: "쿠팡 생수 검색해줘"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseExplicit(tt.line)
			assert.False(t, ok)
		})
	}
}

func TestSplitFields_Quoting(t *testing.T) {
	assert.Equal(t,
		[]string{"click", "a.pad-key[data-key='3']"},
		splitFields(`click "a.pad-key[data-key='3']"`))
	assert.Equal(t,
		[]string{"fill", "#q", "two words"},
		splitFields(`fill #q "two words"`))
	assert.Equal(t,
		[]string{"open", "https://example.com"},
		splitFields("  open   https://example.com  "))
}
