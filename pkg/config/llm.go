package config

import (
	"os"
	"sync"
)

// SectionIDLLM is the identifier for the LLM settings section.
const SectionIDLLM = "llm"

// DefaultModel is used when neither config nor environment names a model.
const DefaultModel = "gpt-4o-mini"

// LLMSection manages the translator's provider settings.
type LLMSection struct {
	Model   string
	BaseURL string
	APIKey  string
	mu      sync.RWMutex
}

// NewLLMSection creates an empty LLM section. Empty settings are valid: the
// translator is optional and resolution degrades to the deterministic rules.
func NewLLMSection() *LLMSection {
	return &LLMSection{}
}

// ID implements Section.
func (s *LLMSection) ID() string { return SectionIDLLM }

// Data implements Section.
func (s *LLMSection) Data() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]any{
		"model":    s.Model,
		"base_url": s.BaseURL,
		"api_key":  s.APIKey,
	}
}

// SetData implements Section.
func (s *LLMSection) SetData(data map[string]any) error {
	if data == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := data["model"].(string); ok {
		s.Model = v
	}
	if v, ok := data["base_url"].(string); ok {
		s.BaseURL = v
	}
	if v, ok := data["api_key"].(string); ok {
		s.APIKey = v
	}
	return nil
}

// Validate implements Section. LLM settings are optional; actual validation
// happens when the provider is constructed.
func (s *LLMSection) Validate() error { return nil }

// ApplyEnv overlays OPENAI_* environment variables, which take precedence
// over the config file.
func (s *LLMSection) ApplyEnv() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		s.APIKey = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		s.Model = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		s.BaseURL = v
	}
}

// GetModel returns the configured model, or the default when unset.
func (s *LLMSection) GetModel() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Model == "" {
		return DefaultModel
	}
	return s.Model
}

// GetBaseURL returns the configured base URL; empty means the provider
// default.
func (s *LLMSection) GetBaseURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.BaseURL
}

// GetAPIKey returns the configured API key; empty disables the translator.
func (s *LLMSection) GetAPIKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.APIKey
}
