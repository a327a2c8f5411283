package browser

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/playwright-community/playwright-go"

	"shopnav/pkg/config"
	"shopnav/pkg/logging"
)

const webdriverMaskScript = "Object.defineProperty(navigator, 'webdriver', {get: () => undefined});"

const acceptLanguageHeader = "ko-KR,ko;q=0.9,en-US;q=0.8,en;q=0.7"

// Session is the process-wide browser session. All tools share one instance;
// the first primitive that needs a page triggers acquisition.
type Session struct {
	mu               sync.Mutex
	opts             Options
	logger           *logging.Logger
	pw               *playwright.Playwright
	browser          playwright.Browser
	context          playwright.BrowserContext
	listenerAttached bool
	state            State

	// The current page is written by the popup listener from playwright's
	// event goroutine, so it has its own lock.
	pageMu sync.Mutex
	page   playwright.Page
}

// NewSession creates an unstarted session.
func NewSession(opts Options, logger *logging.Logger) *Session {
	return &Session{opts: opts, logger: logger, state: StateUninitialized}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetHeadless changes the headless flag for a future launch. Has no effect on
// an already-acquired browser.
func (s *Session) SetHeadless(headless bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts.Headless = headless
}

// Headless reports the configured headless flag.
func (s *Session) Headless() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.Headless
}

func (s *Session) currentPage() playwright.Page {
	s.pageMu.Lock()
	defer s.pageMu.Unlock()
	return s.page
}

func (s *Session) setCurrentPage(page playwright.Page) {
	s.pageMu.Lock()
	defer s.pageMu.Unlock()
	s.page = page
}

// EnsurePage returns the current page, acquiring the browser on first use.
// Acquisition attaches over CDP when configured, falling back to launching a
// persistent profile with the stealth fingerprint otherwise. Safe to call
// repeatedly; an already-open page is returned as-is.
func (s *Session) EnsurePage() (playwright.Page, error) {
	if page := s.currentPage(); page != nil && !page.IsClosed() {
		return page, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pw == nil {
		pw, err := playwright.Run(&playwright.RunOptions{
			Verbose: false,
			Stdout:  io.Discard,
			Stderr:  io.Discard,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to start playwright: %w", err)
		}
		s.pw = pw
	}

	if s.opts.UseCDP && s.browser == nil {
		browser, err := s.pw.Chromium.ConnectOverCDP(s.opts.CDPURL)
		if err != nil {
			return nil, fmt.Errorf("failed to attach over CDP at %s: %w", s.opts.CDPURL, err)
		}
		s.browser = browser
		if s.logger != nil {
			s.logger.Infof("attached to browser at %s", s.opts.CDPURL)
		}
	}

	if s.context == nil {
		context, err := s.acquireContext()
		if err != nil {
			return nil, err
		}
		s.context = context
	}
	s.state = StateAttached

	if !s.listenerAttached {
		s.context.OnPage(func(page playwright.Page) {
			s.setCurrentPage(page)
		})
		s.listenerAttached = true
	}

	page, err := s.context.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	s.setCurrentPage(page)
	s.state = StatePageReady
	return page, nil
}

// acquireContext picks the existing CDP context when attached, otherwise
// launches a persistent profile configured to pass automation checks.
// Callers hold s.mu.
func (s *Session) acquireContext() (playwright.BrowserContext, error) {
	if s.opts.UseCDP && s.browser != nil {
		if contexts := s.browser.Contexts(); len(contexts) > 0 {
			return contexts[0], nil
		}
		context, err := s.browser.NewContext()
		if err != nil {
			return nil, fmt.Errorf("failed to create context: %w", err)
		}
		return context, nil
	}

	if s.opts.UserDataDir != "" {
		if err := os.MkdirAll(s.opts.UserDataDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create profile dir: %w", err)
		}
	}

	context, err := s.pw.Chromium.LaunchPersistentContext(
		s.opts.UserDataDir,
		playwright.BrowserTypeLaunchPersistentContextOptions{
			Headless:          playwright.Bool(s.opts.Headless),
			Args:              []string{"--disable-blink-features=AutomationControlled"},
			Locale:            playwright.String(s.opts.Locale),
			TimezoneId:        playwright.String(s.opts.Timezone),
			UserAgent:         playwright.String(s.opts.UserAgent),
			Viewport: &playwright.Size{
				Width:  config.DefaultViewportWidth,
				Height: config.DefaultViewportHeight,
			},
			DeviceScaleFactor: playwright.Float(1.0),
			IsMobile:          playwright.Bool(false),
			HasTouch:          playwright.Bool(false),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	if err := context.AddInitScript(playwright.Script{
		Content: playwright.String(webdriverMaskScript),
	}); err != nil {
		return nil, fmt.Errorf("failed to add init script: %w", err)
	}
	if err := context.SetExtraHTTPHeaders(map[string]string{
		"Accept-Language": acceptLanguageHeader,
	}); err != nil {
		return nil, fmt.Errorf("failed to set headers: %w", err)
	}

	return context, nil
}

// SwitchToLatestPage makes the most recently opened page in the context the
// current one. Without a context it degrades to EnsurePage.
func (s *Session) SwitchToLatestPage() (playwright.Page, error) {
	s.mu.Lock()
	context := s.context
	s.mu.Unlock()

	if context == nil {
		return s.EnsurePage()
	}
	pages := context.Pages()
	if len(pages) == 0 {
		return s.EnsurePage()
	}
	latest := pages[len(pages)-1]
	s.setCurrentPage(latest)
	return latest, nil
}

// Close tears the session down: page, then context, then browser, then the
// Playwright driver. Each step tolerates an already-closed or never-opened
// resource, and close errors are logged rather than propagated so teardown
// always completes. The session ends up uninitialized and can be started
// again.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if page := s.currentPage(); page != nil {
		if err := page.Close(); err != nil && s.logger != nil {
			s.logger.Warnf("page close: %v", err)
		}
		s.setCurrentPage(nil)
	}

	if s.context != nil {
		if err := s.context.Close(); err != nil && s.logger != nil {
			s.logger.Warnf("context close: %v", err)
		}
		s.context = nil
	}
	s.listenerAttached = false

	if s.browser != nil {
		if err := s.browser.Close(); err != nil && s.logger != nil {
			s.logger.Warnf("browser close: %v", err)
		}
		s.browser = nil
	}

	if s.pw != nil {
		if err := s.pw.Stop(); err != nil && s.logger != nil {
			s.logger.Warnf("playwright stop: %v", err)
		}
		s.pw = nil
	}

	s.state = StateUninitialized
	return nil
}
