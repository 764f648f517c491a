package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// CopyAndPaste puts text on the system clipboard and pastes it into target,
// so the field sees a paste event rather than typed keys
func CopyAndPaste(page playwright.Page, target playwright.Locator, text string) error {
	if _, err := page.Evaluate(`text => navigator.clipboard.writeText(text)`, text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	if err := target.Focus(); err != nil {
		return fmt.Errorf("focus paste target: %w", err)
	}
	if err := page.Keyboard().Press("Control+V"); err != nil {
		return fmt.Errorf("paste: %w", err)
	}
	return nil
}
