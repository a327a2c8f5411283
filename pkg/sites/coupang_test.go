package sites

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoupang_SearchPhrase(t *testing.T) {
	batch := Coupang{}.RuleCommands("쿠팡 생수 검색해줘")
	require.Len(t, batch, 6)

	assert.Equal(t, "start_browser", batch[0].Name)
	assert.Equal(t, false, batch[0].Arguments["headless"])

	assert.Equal(t, "open_url", batch[1].Name)
	assert.Equal(t, CoupangHomeURL, batch[1].Arguments.String("url"))

	assert.Equal(t, "wait", batch[2].Name)
	assert.Equal(t, 800, batch[2].Arguments.Int("ms", 0))

	input := CoupangSelectors()["search_input"]
	assert.Equal(t, "click", batch[3].Name)
	assert.Equal(t, input, batch[3].Arguments.String("selector"))

	assert.Equal(t, "fill", batch[4].Name)
	assert.Equal(t, "생수", batch[4].Arguments.String("text"))

	assert.Equal(t, "press", batch[5].Name)
	assert.Equal(t, "Enter", batch[5].Arguments.String("key"))
}

func TestCoupang_SearchQueryExtraction(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "postposition-e", text: "쿠팡에 생수 검색해줘", want: "생수"},
		{name: "postposition-eseo", text: "쿠팡에서 무선 마우스 검색", want: "무선 마우스"},
		{name: "no postposition", text: "쿠팡 노트북 검색", want: "노트북"},
		{name: "fallback strip", text: "생수 쿠팡 검색", want: "생수"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, coupangSearchQuery(tt.text))
		})
	}
}

func TestCoupang_SearchWithEmptyQueryFallsThrough(t *testing.T) {
	assert.Empty(t, Coupang{}.RuleCommands("쿠팡 검색"))
}

func TestCoupang_ConnectPhrase(t *testing.T) {
	batch := Coupang{}.RuleCommands("쿠팡 접속해줘")
	require.Len(t, batch, 3)
	assert.Equal(t, "start_browser", batch[0].Name)
	assert.Equal(t, "open_url", batch[1].Name)
	assert.Equal(t, CoupangHomeURL, batch[1].Arguments.String("url"))
	assert.Equal(t, "wait", batch[2].Name)
}

func TestCoupang_LoginPhrase(t *testing.T) {
	batch := Coupang{}.RuleCommands("쿠팡 로그인 해줘")
	require.Len(t, batch, 3)
	assert.Equal(t, CoupangLoginURL, batch[1].Arguments.String("url"))
}

func TestCoupang_LoginButtonPhrase(t *testing.T) {
	batch := Coupang{}.RuleCommands("로그인 버튼 눌러줘")
	require.Len(t, batch, 2)
	assert.Equal(t, "click", batch[1].Name)
	assert.Equal(t, CoupangSelectors()["login_button"], batch[1].Arguments.String("selector"))
}

func TestCoupang_LogoutPhrase(t *testing.T) {
	batch := Coupang{}.RuleCommands("쿠팡 로그아웃")
	require.Len(t, batch, 2)
	assert.Equal(t, "start_browser", batch[0].Name)
	assert.Equal(t, "click", batch[1].Name)
	assert.Equal(t, CoupangSelectors()["logout_button"], batch[1].Arguments.String("selector"))
}

func TestCoupang_NoMatch(t *testing.T) {
	assert.Empty(t, Coupang{}.RuleCommands("네이버 생수 검색"))
	assert.Empty(t, Coupang{}.RuleCommands("hello"))
	assert.Empty(t, Coupang{}.RuleCommands(""))
}
