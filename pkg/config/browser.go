package config

import (
	"os"
	"path/filepath"
	"sync"
)

// SectionIDBrowser is the identifier for the browser settings section.
const SectionIDBrowser = "browser"

// Browser defaults. The locale/timezone/user-agent trio must stay mutually
// consistent or sites flag the session as automated.
const (
	DefaultCDPURL    = "http://127.0.0.1:9222"
	DefaultLocale    = "ko-KR"
	DefaultTimezone  = "Asia/Seoul"
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/121.0.0.0 Safari/537.36"
	DefaultViewportWidth  = 1365
	DefaultViewportHeight = 768
)

// BrowserSection manages browser acquisition settings: remote-attach (CDP)
// versus persistent-profile launch, and the fingerprint knobs.
type BrowserSection struct {
	UseCDP      bool
	CDPURL      string
	UserDataDir string
	Headless    bool
	Locale      string
	Timezone    string
	UserAgent   string
	mu          sync.RWMutex
}

// NewBrowserSection creates a browser section with defaults: remote-attach
// enabled against the local debugging port, profile data under ~/.shopnav.
func NewBrowserSection() *BrowserSection {
	userDataDir := "user_data"
	if homeDir, err := os.UserHomeDir(); err == nil {
		userDataDir = filepath.Join(homeDir, ".shopnav", "user_data")
	}
	return &BrowserSection{
		UseCDP:      true,
		CDPURL:      DefaultCDPURL,
		UserDataDir: userDataDir,
		Locale:      DefaultLocale,
		Timezone:    DefaultTimezone,
		UserAgent:   DefaultUserAgent,
	}
}

// ID implements Section.
func (s *BrowserSection) ID() string { return SectionIDBrowser }

// Data implements Section.
func (s *BrowserSection) Data() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]any{
		"use_cdp":       s.UseCDP,
		"cdp_url":       s.CDPURL,
		"user_data_dir": s.UserDataDir,
		"headless":      s.Headless,
		"locale":        s.Locale,
		"timezone":      s.Timezone,
		"user_agent":    s.UserAgent,
	}
}

// SetData implements Section; unknown keys are ignored, absent keys keep
// their current values.
func (s *BrowserSection) SetData(data map[string]any) error {
	if data == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := data["use_cdp"].(bool); ok {
		s.UseCDP = v
	}
	if v, ok := data["cdp_url"].(string); ok && v != "" {
		s.CDPURL = v
	}
	if v, ok := data["user_data_dir"].(string); ok && v != "" {
		s.UserDataDir = v
	}
	if v, ok := data["headless"].(bool); ok {
		s.Headless = v
	}
	if v, ok := data["locale"].(string); ok && v != "" {
		s.Locale = v
	}
	if v, ok := data["timezone"].(string); ok && v != "" {
		s.Timezone = v
	}
	if v, ok := data["user_agent"].(string); ok && v != "" {
		s.UserAgent = v
	}
	return nil
}

// Validate implements Section. All browser settings have usable defaults.
func (s *BrowserSection) Validate() error { return nil }

// ApplyEnv overlays environment variables on top of stored settings.
func (s *BrowserSection) ApplyEnv() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v := os.Getenv("SHOPNAV_CDP_URL"); v != "" {
		s.CDPURL = v
	}
	if v := os.Getenv("PLAYWRIGHT_CDP_URL"); v != "" {
		s.CDPURL = v
	}
}

// Snapshot returns a copy of the current settings.
func (s *BrowserSection) Snapshot() BrowserSection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return BrowserSection{
		UseCDP:      s.UseCDP,
		CDPURL:      s.CDPURL,
		UserDataDir: s.UserDataDir,
		Headless:    s.Headless,
		Locale:      s.Locale,
		Timezone:    s.Timezone,
		UserAgent:   s.UserAgent,
	}
}
