// Package check runs playwright assertions and reports failures as typed
// errors that tell an element that never appeared from one with a wrong value.
package check

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Colours the marketplace uses for validation state
const (
	ErrorColor    = "rgb(247, 56, 89)"
	NeutralBorder = "rgb(229, 229, 229)"
)

// Kind classifies a failed assertion
type Kind int

const (
	// KindTimeout means the element never resolved
	KindTimeout Kind = iota + 1
	// KindMismatch means the element exists but its state or value differs
	KindMismatch
)

// String returns a short description of the kind
func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "never appeared"
	case KindMismatch:
		return "had wrong value"
	default:
		return "unknown failure"
	}
}

// Failure is a failed assertion on a named subject
type Failure struct {
	Kind    Kind
	Subject string
	Err     error
}

// Error implements error
func (f *Failure) Error() string {
	return fmt.Sprintf("%s %s: %v", f.Subject, f.Kind, f.Err)
}

// Unwrap returns the underlying assertion error
func (f *Failure) Unwrap() error {
	return f.Err
}

// IsTimeout reports whether err is a Failure of KindTimeout
func IsTimeout(err error) bool {
	var f *Failure
	return errors.As(err, &f) && f.Kind == KindTimeout
}

// IsMismatch reports whether err is a Failure of KindMismatch
func IsMismatch(err error) bool {
	var f *Failure
	return errors.As(err, &f) && f.Kind == KindMismatch
}

// counter is the part of a locator used to classify failures
type counter interface {
	Count() (int, error)
}

// classify wraps a failed assertion. The element is queried once more: if it
// has matches the failure is a mismatch, otherwise it never appeared.
func classify(target counter, subject string, err error) error {
	if err == nil {
		return nil
	}
	kind := KindTimeout
	if n, cerr := target.Count(); cerr == nil && n > 0 {
		kind = KindMismatch
	}
	return &Failure{Kind: kind, Subject: subject, Err: err}
}

// anyValue matches any attribute value
var anyValue = regexp.MustCompile(".*")

// Checker asserts on locators with a single timeout
type Checker struct {
	expect playwright.PlaywrightAssertions
}

// New creates a Checker; a zero timeout keeps playwright's default
func New(timeout time.Duration) *Checker {
	if timeout <= 0 {
		return &Checker{expect: playwright.NewPlaywrightAssertions()}
	}
	return &Checker{expect: playwright.NewPlaywrightAssertions(float64(timeout.Milliseconds()))}
}

// Visible asserts l is visible
func (c *Checker) Visible(l playwright.Locator, subject string) error {
	return classify(l, subject, c.expect.Locator(l).ToBeVisible())
}

// Hidden asserts l is hidden or detached
func (c *Checker) Hidden(l playwright.Locator, subject string) error {
	return classify(l, subject, c.expect.Locator(l).ToBeHidden())
}

// Text asserts the full text of l
func (c *Checker) Text(l playwright.Locator, subject, text string) error {
	return classify(l, subject, c.expect.Locator(l).ToHaveText(text))
}

// NotText asserts l does not have text
func (c *Checker) NotText(l playwright.Locator, subject, text string) error {
	return classify(l, subject, c.expect.Locator(l).Not().ToHaveText(text))
}

// ContainsText asserts l contains text
func (c *Checker) ContainsText(l playwright.Locator, subject, text string) error {
	return classify(l, subject, c.expect.Locator(l).ToContainText(text))
}

// Value asserts the value of an input
func (c *Checker) Value(l playwright.Locator, subject, value string) error {
	return classify(l, subject, c.expect.Locator(l).ToHaveValue(value))
}

// Attribute asserts an attribute value
func (c *Checker) Attribute(l playwright.Locator, subject, name, value string) error {
	return classify(l, subject, c.expect.Locator(l).ToHaveAttribute(name, value))
}

// NoAttribute asserts l has no attribute called name
func (c *Checker) NoAttribute(l playwright.Locator, subject, name string) error {
	return classify(l, subject, c.expect.Locator(l).Not().ToHaveAttribute(name, anyValue))
}

// CSS asserts a computed style property
func (c *Checker) CSS(l playwright.Locator, subject, property, value string) error {
	return classify(l, subject, c.expect.Locator(l).ToHaveCSS(property, value))
}

// NotCSS asserts a computed style property differs from value
func (c *Checker) NotCSS(l playwright.Locator, subject, property, value string) error {
	return classify(l, subject, c.expect.Locator(l).Not().ToHaveCSS(property, value))
}

// Checked asserts a checkbox is checked
func (c *Checker) Checked(l playwright.Locator, subject string) error {
	return classify(l, subject, c.expect.Locator(l).ToBeChecked())
}

// Count asserts the number of matches
func (c *Checker) Count(l playwright.Locator, subject string, n int) error {
	err := c.expect.Locator(l).ToHaveCount(n)
	if err == nil {
		return nil
	}
	return &Failure{Kind: KindMismatch, Subject: subject, Err: err}
}

// Highlighted asserts l has the error border
func (c *Checker) Highlighted(l playwright.Locator, subject string) error {
	return c.CSS(l, subject, "border-color", ErrorColor)
}

// NotHighlighted asserts l does not have the error border
func (c *Checker) NotHighlighted(l playwright.Locator, subject string) error {
	return c.NotCSS(l, subject, "border-color", ErrorColor)
}

// NeutralBordered asserts l has the neutral input border
func (c *Checker) NeutralBordered(l playwright.Locator, subject string) error {
	return c.CSS(l, subject, "border-color", NeutralBorder)
}

// ErrorColored asserts the text of l is rendered in the error colour
func (c *Checker) ErrorColored(l playwright.Locator, subject string) error {
	return c.CSS(l, subject, "color", ErrorColor)
}

// URL asserts the page URL matches pattern
func (c *Checker) URL(page playwright.Page, pattern *regexp.Regexp) error {
	if err := c.expect.Page(page).ToHaveURL(pattern); err != nil {
		return &Failure{Kind: KindMismatch, Subject: "page url", Err: err}
	}
	return nil
}
