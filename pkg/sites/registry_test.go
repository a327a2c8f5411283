package sites

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsShoppingSite(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{name: "coupang www", url: "https://www.coupang.com/np/search?q=a", want: true},
		{name: "coupang apex", url: "https://coupang.com/", want: true},
		{name: "coupang subdomain", url: "https://login.coupang.com/login/login.pang", want: true},
		{name: "coupang nested subdomain", url: "https://m.login.coupang.com/", want: true},
		{name: "naver shopping search", url: "https://search.shopping.naver.com/ns/search?query=a", want: true},
		{name: "gmarket", url: "https://www.gmarket.co.kr/", want: true},
		{name: "plain naver", url: "https://www.naver.com/", want: false},
		{name: "google", url: "https://www.google.com/", want: false},
		{name: "lookalike host", url: "https://coupang.com.evil.example/", want: false},
		{name: "empty", url: "", want: false},
		{name: "garbage", url: "::::", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsShoppingSite(tt.url))
		})
	}
}

func TestShouldClickSearchResult(t *testing.T) {
	shoppingURL := "https://www.coupang.com/np/search?q=mouse"

	tests := []struct {
		name    string
		text    string
		lastURL string
		want    bool
	}{
		{name: "product title on shopping site", text: "Wireless Mouse", lastURL: shoppingURL, want: true},
		{name: "korean product title", text: "로지텍 무선 마우스", lastURL: shoppingURL, want: true},
		{name: "empty text", text: "", lastURL: shoppingURL, want: false},
		{name: "not a shopping site", text: "Wireless Mouse", lastURL: "https://www.google.com", want: false},
		{name: "korean search verb", text: "생수 검색", lastURL: shoppingURL, want: false},
		{name: "english search verb", text: "search mouse", lastURL: shoppingURL, want: false},
		{name: "find verb", text: "find mouse", lastURL: shoppingURL, want: false},
		{name: "url in text", text: "https://example.com", lastURL: shoppingURL, want: false},
		{name: "generic action", text: "로그인", lastURL: shoppingURL, want: false},
		{name: "generic action english", text: "add to cart", lastURL: shoppingURL, want: false},
		{name: "no last url", text: "Wireless Mouse", lastURL: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldClickSearchResult(tt.text, tt.lastURL))
		})
	}
}

func TestRegistered_Order(t *testing.T) {
	sets := Registered()
	assert.Len(t, sets, 2)
	assert.Equal(t, "coupang", sets[0].Name())
	assert.Equal(t, "naver", sets[1].Name())
}
