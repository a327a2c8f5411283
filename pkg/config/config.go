// Package config persists browser and LLM settings in a sectioned JSON file
// with environment-variable overlays.
package config

import (
	"sync"
)

var (
	globalManager *Manager
	globalMu      sync.Mutex
)

// Initialize creates and loads the global configuration manager. Call once
// at application startup. Environment variables override file values.
func Initialize(configPath string) error {
	globalMu.Lock()
	defer globalMu.Unlock()

	store, err := NewFileStore(configPath)
	if err != nil {
		return err
	}

	manager := NewManager(store)

	browser := NewBrowserSection()
	llm := NewLLMSection()
	if err := manager.RegisterSection(browser); err != nil {
		return err
	}
	if err := manager.RegisterSection(llm); err != nil {
		return err
	}

	if err := manager.LoadAll(); err != nil {
		return err
	}

	browser.ApplyEnv()
	llm.ApplyEnv()

	globalManager = manager
	return nil
}

// Global returns the global configuration manager. Panics if Initialize has
// not been called.
func Global() *Manager {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalManager == nil {
		panic("config not initialized: call config.Initialize first")
	}
	return globalManager
}

// IsInitialized reports whether Initialize has completed.
func IsInitialized() bool {
	globalMu.Lock()
	defer globalMu.Unlock()
	return globalManager != nil
}

// GetBrowser returns the browser section, or nil before initialization.
func GetBrowser() *BrowserSection {
	if !IsInitialized() {
		return nil
	}
	section, ok := Global().GetSection(SectionIDBrowser)
	if !ok {
		return nil
	}
	browser, ok := section.(*BrowserSection)
	if !ok {
		return nil
	}
	return browser
}

// GetLLM returns the LLM section, or nil before initialization.
func GetLLM() *LLMSection {
	if !IsInitialized() {
		return nil
	}
	section, ok := Global().GetSection(SectionIDLLM)
	if !ok {
		return nil
	}
	llm, ok := section.(*LLMSection)
	if !ok {
		return nil
	}
	return llm
}
