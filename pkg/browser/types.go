// Package browser owns the shared Playwright session and the page-level
// primitives the command tools are built on. One session serves the whole
// process: tools acquire the current page through Session.EnsurePage and
// never hold browser handles themselves.
package browser

import (
	"shopnav/pkg/config"
)

// State describes the session lifecycle: Uninitialized -> Attached ->
// PageReady. Close returns the session to Uninitialized, so the cycle can
// start again.
type State int

const (
	StateUninitialized State = iota
	StateAttached
	StatePageReady
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateAttached:
		return "attached"
	case StatePageReady:
		return "page_ready"
	default:
		return "unknown"
	}
}

// Options controls how the session acquires a browser. UseCDP attaches to an
// already-running Chrome over its debugging port; otherwise a persistent
// profile is launched with the anti-automation fingerprint settings.
type Options struct {
	UseCDP      bool
	CDPURL      string
	UserDataDir string
	Headless    bool
	Locale      string
	Timezone    string
	UserAgent   string
}

// DefaultOptions returns CDP-first options with the standard fingerprint.
func DefaultOptions() Options {
	return Options{
		UseCDP:    true,
		CDPURL:    config.DefaultCDPURL,
		Locale:    config.DefaultLocale,
		Timezone:  config.DefaultTimezone,
		UserAgent: config.DefaultUserAgent,
	}
}

// OptionsFromConfig builds session options from a browser config section.
func OptionsFromConfig(section *config.BrowserSection) Options {
	if section == nil {
		return DefaultOptions()
	}
	snap := section.Snapshot()
	return Options{
		UseCDP:      snap.UseCDP,
		CDPURL:      snap.CDPURL,
		UserDataDir: snap.UserDataDir,
		Headless:    snap.Headless,
		Locale:      snap.Locale,
		Timezone:    snap.Timezone,
		UserAgent:   snap.UserAgent,
	}
}

// VisibleButton describes one button-like element found on a page.
type VisibleButton struct {
	Class    string `json:"class"`
	Text     string `json:"text"`
	DataKey  string `json:"dataKey"`
	FrameURL string `json:"frameUrl"`
}

// Defaults for the page primitives.
const (
	DefaultTextMaxChars   = 2000
	DefaultButtonMaxItems = 200

	DefaultHumanizeSteps     = 3
	DefaultHumanizeMinWaitMs = 200
	DefaultHumanizeMaxWaitMs = 800
	DefaultHumanizeMaxScroll = 800
)
