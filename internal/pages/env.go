// Package pages holds one page object per marketplace screen. Accessors
// return fresh locators, actions return wrapped errors and checks return
// *check.Failure values. Nothing here retries or recovers.
package pages

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/rentzila/e2e/internal/browser"
	"github.com/rentzila/e2e/internal/check"
	"github.com/rentzila/e2e/internal/locator"
	"github.com/rentzila/e2e/internal/random"
)

// DefaultDialogTimeout bounds the wait for a native confirm or alert
const DefaultDialogTimeout = 10 * time.Second

// Env is what every page object is built from
type Env struct {
	Page          playwright.Page
	Find          locator.Finder
	Check         *check.Checker
	Rand          random.Source
	Logger        *slog.Logger
	DialogTimeout time.Duration
}

// NewEnv creates an Env rooted at page
func NewEnv(page playwright.Page, checker *check.Checker, src random.Source, logger *slog.Logger) Env {
	return Env{
		Page:          page,
		Find:          locator.ForPage(page),
		Check:         checker,
		Rand:          src,
		Logger:        logger,
		DialogTimeout: DefaultDialogTimeout,
	}
}

// acceptDialog runs action and accepts the dialog it raises
func (e Env) acceptDialog(action func() error) error {
	timeout := e.DialogTimeout
	if timeout <= 0 {
		timeout = DefaultDialogTimeout
	}
	return browser.AcceptNextDialog(e.Page, timeout, action)
}

// click clicks l and wraps the error with what was clicked
func click(l playwright.Locator, what string, opts ...playwright.LocatorClickOptions) error {
	if err := l.Click(opts...); err != nil {
		return fmt.Errorf("click %s: %w", what, err)
	}
	return nil
}

// fill replaces the value of l
func fill(l playwright.Locator, what, value string) error {
	if err := l.Fill(value); err != nil {
		return fmt.Errorf("fill %s: %w", what, err)
	}
	return nil
}

// clearInput empties the value of l
func clearInput(l playwright.Locator, what string) error {
	if err := l.Clear(); err != nil {
		return fmt.Errorf("clear %s: %w", what, err)
	}
	return nil
}

// inputValue reads the current value of an input
func inputValue(l playwright.Locator, what string) (string, error) {
	v, err := l.InputValue()
	if err != nil {
		return "", fmt.Errorf("read %s: %w", what, err)
	}
	return v, nil
}

// innerText reads the rendered text of l
func innerText(l playwright.Locator, what string) (string, error) {
	v, err := l.InnerText()
	if err != nil {
		return "", fmt.Errorf("read %s: %w", what, err)
	}
	return v, nil
}

// all resolves l into one locator per current match
func all(l playwright.Locator, what string) ([]playwright.Locator, error) {
	items, err := l.All()
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", what, err)
	}
	return items, nil
}

// waitVisible waits until l is visible
func waitVisible(l playwright.Locator, what string) error {
	if err := l.WaitFor(playwright.LocatorWaitForOptions{State: playwright.WaitForSelectorStateVisible}); err != nil {
		return fmt.Errorf("wait for %s: %w", what, err)
	}
	return nil
}

// hasClass reports whether the class attribute of l contains fragment
func hasClass(l playwright.Locator, what, fragment string) (bool, error) {
	class, err := l.GetAttribute("class")
	if err != nil {
		return false, fmt.Errorf("read class of %s: %w", what, err)
	}
	return strings.Contains(class, fragment), nil
}

// pickVisible picks a random option, asserts it is visible and returns it
// together with its rendered text
func (e Env) pickVisible(options []playwright.Locator, what string) (playwright.Locator, string, error) {
	option, err := random.Pick(e.Rand, options)
	if err != nil {
		return nil, "", fmt.Errorf("pick %s: %w", what, err)
	}
	text, err := innerText(option, what)
	if err != nil {
		return nil, "", err
	}
	if err := e.Check.Visible(option, what); err != nil {
		return nil, "", err
	}
	return option, text, nil
}
