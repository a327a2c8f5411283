package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, store.SetSection("browser", map[string]any{
		"use_cdp": false,
		"cdp_url": "http://127.0.0.1:9333",
	}))
	require.NoError(t, store.Save())

	reloaded, err := NewFileStore(path)
	require.NoError(t, err)

	data, err := reloaded.GetSection("browser")
	require.NoError(t, err)
	assert.Equal(t, false, data["use_cdp"])
	assert.Equal(t, "http://127.0.0.1:9333", data["cdp_url"])
}

func TestFileStore_MissingFileStartsEmpty(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)

	data, err := store.GetSection("browser")
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFileStore_GetSectionReturnsCopy(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)

	require.NoError(t, store.SetSection("llm", map[string]any{"model": "gpt-4o-mini"}))

	data, err := store.GetSection("llm")
	require.NoError(t, err)
	data["model"] = "mutated"

	fresh, err := store.GetSection("llm")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", fresh["model"])
}

func TestBrowserSection_Defaults(t *testing.T) {
	section := NewBrowserSection()

	assert.True(t, section.UseCDP)
	assert.Equal(t, DefaultCDPURL, section.CDPURL)
	assert.Equal(t, DefaultLocale, section.Locale)
	assert.Equal(t, DefaultTimezone, section.Timezone)
	assert.NotEmpty(t, section.UserAgent)
	assert.False(t, section.Headless)
}

func TestBrowserSection_SetDataPartial(t *testing.T) {
	section := NewBrowserSection()

	require.NoError(t, section.SetData(map[string]any{
		"use_cdp":  false,
		"headless": true,
		"locale":   "en-US",
	}))

	assert.False(t, section.UseCDP)
	assert.True(t, section.Headless)
	assert.Equal(t, "en-US", section.Locale)
	// Untouched keys keep their defaults.
	assert.Equal(t, DefaultCDPURL, section.CDPURL)
}

func TestBrowserSection_ApplyEnv(t *testing.T) {
	t.Setenv("SHOPNAV_CDP_URL", "http://127.0.0.1:9444")

	section := NewBrowserSection()
	section.ApplyEnv()

	assert.Equal(t, "http://127.0.0.1:9444", section.CDPURL)
}

func TestLLMSection_EnvOverridesFile(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("OPENAI_MODEL", "gpt-4o")

	section := NewLLMSection()
	require.NoError(t, section.SetData(map[string]any{
		"api_key": "sk-file",
		"model":   "gpt-4o-mini",
	}))
	section.ApplyEnv()

	assert.Equal(t, "sk-env", section.GetAPIKey())
	assert.Equal(t, "gpt-4o", section.GetModel())
}

func TestLLMSection_DefaultModel(t *testing.T) {
	section := NewLLMSection()
	assert.Equal(t, DefaultModel, section.GetModel())
}

func TestManager_RegisterDuplicate(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)

	manager := NewManager(store)
	require.NoError(t, manager.RegisterSection(NewLLMSection()))
	assert.Error(t, manager.RegisterSection(NewLLMSection()))
}

func TestManager_SaveAllPersistsSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	manager := NewManager(store)
	llm := NewLLMSection()
	require.NoError(t, manager.RegisterSection(llm))

	require.NoError(t, llm.SetData(map[string]any{"model": "gpt-4o"}))
	require.NoError(t, manager.SaveAll())

	_, err = os.Stat(path)
	require.NoError(t, err)

	reloaded, err := NewFileStore(path)
	require.NoError(t, err)
	data, err := reloaded.GetSection(SectionIDLLM)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", data["model"])
}
