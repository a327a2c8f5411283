package browser

import (
	"fmt"
	"math/rand"

	"github.com/playwright-community/playwright-go"

	"shopnav/pkg/config"
)

// Navigate opens a URL on the current page and returns the resulting title.
// Navigation waits for DOMContentLoaded only; shopping pages keep streaming
// assets long after they are usable.
func (s *Session) Navigate(url string) (string, error) {
	page, err := s.EnsurePage()
	if err != nil {
		return "", err
	}

	if _, err := page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		return "", fmt.Errorf("navigation failed: %w", err)
	}

	title, err := page.Title()
	if err != nil {
		title = ""
	}
	return title, nil
}

// Click clicks the first element matching the selector on the current page.
func (s *Session) Click(selector string) error {
	page, err := s.EnsurePage()
	if err != nil {
		return err
	}
	if err := page.Click(selector); err != nil {
		return fmt.Errorf("click failed: %w", err)
	}
	return nil
}

// Fill sets the value of an input matching the selector.
func (s *Session) Fill(selector, text string) error {
	page, err := s.EnsurePage()
	if err != nil {
		return err
	}
	if err := page.Fill(selector, text); err != nil {
		return fmt.Errorf("fill failed: %w", err)
	}
	return nil
}

// Press sends a key to the element matching the selector.
func (s *Session) Press(selector, key string) error {
	page, err := s.EnsurePage()
	if err != nil {
		return err
	}
	if err := page.Press(selector, key); err != nil {
		return fmt.Errorf("press failed: %w", err)
	}
	return nil
}

// WaitMillis pauses on the page clock for the given duration. Using the page
// clock rather than time.Sleep keeps waits consistent with in-page timers.
func (s *Session) WaitMillis(ms int) error {
	page, err := s.EnsurePage()
	if err != nil {
		return err
	}
	page.WaitForTimeout(float64(ms))
	return nil
}

// Scroll scrolls the page vertically by deltaY pixels.
func (s *Session) Scroll(deltaY int) error {
	page, err := s.EnsurePage()
	if err != nil {
		return err
	}
	if err := page.Mouse().Wheel(0, float64(deltaY)); err != nil {
		return fmt.Errorf("scroll failed: %w", err)
	}
	return nil
}

// HumanizeOptions tunes the synthetic activity loop.
type HumanizeOptions struct {
	Steps     int
	MinWaitMs int
	MaxWaitMs int
	MaxScroll int
}

// DefaultHumanizeOptions returns the standard activity profile.
func DefaultHumanizeOptions() HumanizeOptions {
	return HumanizeOptions{
		Steps:     DefaultHumanizeSteps,
		MinWaitMs: DefaultHumanizeMinWaitMs,
		MaxWaitMs: DefaultHumanizeMaxWaitMs,
		MaxScroll: DefaultHumanizeMaxScroll,
	}
}

// Humanize performs small human-like actions on the page: cursor movement in
// several sub-steps, randomized waits, and probabilistic scrolling.
func (s *Session) Humanize(opts HumanizeOptions) error {
	page, err := s.EnsurePage()
	if err != nil {
		return err
	}

	width := config.DefaultViewportWidth
	height := config.DefaultViewportHeight
	if size := page.ViewportSize(); size != nil {
		width = size.Width
		height = size.Height
	}

	steps := opts.Steps
	if steps < 1 {
		steps = 1
	}
	for i := 0; i < steps; i++ {
		x := randBetween(10, maxInt(10, width-10))
		y := randBetween(10, maxInt(10, height-10))
		if err := page.Mouse().Move(float64(x), float64(y), playwright.MouseMoveOptions{
			Steps: playwright.Int(randBetween(5, 20)),
		}); err != nil {
			return fmt.Errorf("mouse move failed: %w", err)
		}
		page.WaitForTimeout(float64(randBetween(opts.MinWaitMs, opts.MaxWaitMs)))

		if opts.MaxScroll > 0 && rand.Float64() < 0.7 {
			delta := randBetween(-opts.MaxScroll, opts.MaxScroll)
			if delta != 0 {
				if err := page.Mouse().Wheel(0, float64(delta)); err != nil {
					return fmt.Errorf("scroll failed: %w", err)
				}
				page.WaitForTimeout(float64(randBetween(opts.MinWaitMs, opts.MaxWaitMs)))
			}
		}
	}
	return nil
}

// Screenshot captures the page to a local file.
func (s *Session) Screenshot(path string, fullPage bool) error {
	page, err := s.EnsurePage()
	if err != nil {
		return err
	}
	if _, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(fullPage),
	}); err != nil {
		return fmt.Errorf("screenshot failed: %w", err)
	}
	return nil
}

// randBetween returns a uniform int in [lo, hi]. A degenerate range returns lo.
func randBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rand.Intn(hi-lo+1)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
