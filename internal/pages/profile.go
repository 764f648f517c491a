package pages

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// ProfilePage is the owner cabinet
type ProfilePage struct {
	env Env
}

// NewProfilePage creates a ProfilePage
func NewProfilePage(env Env) *ProfilePage {
	return &ProfilePage{env: env}
}

// IsOpen waits until the owner cabinet has loaded
func (p *ProfilePage) IsOpen() error {
	if err := p.env.Page.WaitForURL("**/owner-cabinet/", playwright.PageWaitForURLOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
	}); err != nil {
		return fmt.Errorf("wait for owner cabinet: %w", err)
	}
	return nil
}

func (p *ProfilePage) PhoneInput() playwright.Locator {
	return p.env.Find.TestID("input_OwnerProfileNumber")
}

func (p *ProfilePage) PhoneVerificationLabel() playwright.Locator {
	return p.env.Find.TestID("verification_OwnerProfileNumber")
}

func (p *ProfilePage) LogoutButton() playwright.Locator {
	return p.env.Find.TestID("logOut")
}

// PhoneNumberValue returns the phone number without the display spaces
func (p *ProfilePage) PhoneNumberValue() (string, error) {
	v, err := inputValue(p.PhoneInput(), "profile phone input")
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(v, " ", ""), nil
}

func (p *ProfilePage) ClickLogout() error {
	return click(p.LogoutButton(), "profile logout")
}
