package browser

import (
	"errors"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
)

// ErrNoDialog is returned when an action was expected to raise a dialog but did not
var ErrNoDialog = errors.New("no dialog was raised")

// AcceptNextDialog runs action and accepts the first dialog it raises.
// It returns once the dialog has been accepted or timeout elapses. The handler
// is removed when action fails or no dialog arrives.
func AcceptNextDialog(page playwright.Page, timeout time.Duration, action func() error) error {
	accepted := make(chan error, 1)
	handler := func(dialog playwright.Dialog) {
		accepted <- dialog.Accept()
	}
	page.Once("dialog", handler)

	if err := action(); err != nil {
		page.RemoveListener("dialog", handler)
		return err
	}

	select {
	case err := <-accepted:
		if err != nil {
			return fmt.Errorf("accept dialog: %w", err)
		}
		return nil
	case <-time.After(timeout):
		page.RemoveListener("dialog", handler)
		return fmt.Errorf("%w within %s", ErrNoDialog, timeout)
	}
}
