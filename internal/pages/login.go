package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// LoginPage is the authorization form and the signed-in profile menu
type LoginPage struct {
	env Env
}

// NewLoginPage creates a LoginPage
func NewLoginPage(env Env) *LoginPage {
	return &LoginPage{env: env}
}

func (p *LoginPage) AuthorizationForm() playwright.Locator {
	return p.env.Find.TestID("authorizationContainer")
}

func (p *LoginPage) ErrorMessage() playwright.Locator {
	return p.env.Find.TestID("errorMessage")
}

func (p *LoginPage) EnterButton() playwright.Locator {
	return p.env.Find.ClassFragment("NavbarAuthBlock_buttonEnter")
}

func (p *LoginPage) ProfileDropdown() playwright.Locator {
	return p.env.Find.ClassFragment("ProfileDropdownMenu_container")
}

func (p *LoginPage) DropdownMyProfile() playwright.Locator {
	return p.env.Find.Within(p.ProfileDropdown()).TestID("profile")
}

func (p *LoginPage) DropdownLogout() playwright.Locator {
	return p.env.Find.Within(p.ProfileDropdown()).TestID("logout")
}

func (p *LoginPage) DropdownEmail() playwright.Locator {
	return p.env.Find.Within(p.ProfileDropdown()).TestID("email")
}

func (p *LoginPage) ProfileIcon() playwright.Locator {
	return p.env.Find.TestID("avatarBlock")
}

func (p *LoginPage) EmailInput() playwright.Locator {
	return p.env.Find.Role(*playwright.AriaRoleTextbox, "E-mail або номер телефону")
}

func (p *LoginPage) PasswordInput() playwright.Locator {
	return p.env.Find.Role(*playwright.AriaRoleTextbox, "Пароль")
}

func (p *LoginPage) LoginButton() playwright.Locator {
	return p.env.Find.Role(*playwright.AriaRoleButton, "Увійти").First()
}

func (p *LoginPage) EmailError() playwright.Locator {
	return p.env.Find.ClassFragment("CustomReactHookInput_error_message").First()
}

func (p *LoginPage) PasswordError() playwright.Locator {
	return p.env.Find.ClassFragment("CustomReactHookInput_error_message").Last()
}

func (p *LoginPage) HiddenPasswordIcon() playwright.Locator {
	return p.env.Find.TestID("reactHookButton")
}

// FillEmail types email; an empty email types the word "email"
func (p *LoginPage) FillEmail(email string) error {
	if email == "" {
		email = "email"
	}
	return fill(p.EmailInput(), "email input", email)
}

// FillPassword types password; an empty password types the word "password"
func (p *LoginPage) FillPassword(password string) error {
	if password == "" {
		password = "password"
	}
	return fill(p.PasswordInput(), "password input", password)
}

func (p *LoginPage) ClearEmail() error {
	return clearInput(p.EmailInput(), "email input")
}

func (p *LoginPage) ClearPassword() error {
	return clearInput(p.PasswordInput(), "password input")
}

func (p *LoginPage) ClickEnter() error {
	return click(p.EnterButton(), "enter button")
}

func (p *LoginPage) ClickLogin() error {
	return click(p.LoginButton(), "login button")
}

func (p *LoginPage) ClickLogout() error {
	return click(p.DropdownLogout(), "logout")
}

func (p *LoginPage) ClickMyProfile() error {
	return click(p.DropdownMyProfile(), "my profile")
}

func (p *LoginPage) ClickProfileIcon() error {
	return click(p.ProfileIcon(), "profile icon")
}

func (p *LoginPage) ClickHiddenPasswordIcon() error {
	return click(p.HiddenPasswordIcon(), "hidden password icon")
}

// PressEnter submits the form from the password field
func (p *LoginPage) PressEnter() error {
	if err := p.PasswordInput().Press("Enter"); err != nil {
		return fmt.Errorf("press enter in password input: %w", err)
	}
	return nil
}

func (p *LoginPage) passwordType() (string, error) {
	t, err := p.PasswordInput().GetAttribute("type")
	if err != nil {
		return "", fmt.Errorf("read password input type: %w", err)
	}
	return t, nil
}

// IsPasswordHidden reports whether the password is masked
func (p *LoginPage) IsPasswordHidden() (bool, error) {
	t, err := p.passwordType()
	return t == "password", err
}

// IsPasswordVisible reports whether the password is shown in clear text
func (p *LoginPage) IsPasswordVisible() (bool, error) {
	t, err := p.passwordType()
	return t == "text", err
}

// WaitForAuthorizationFormHidden waits for the network to settle and the form to close
func (p *LoginPage) WaitForAuthorizationFormHidden() error {
	if err := p.env.Page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateNetworkidle,
	}); err != nil {
		return fmt.Errorf("wait for network idle: %w", err)
	}
	if err := p.AuthorizationForm().WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateHidden,
	}); err != nil {
		return fmt.Errorf("wait for authorization form to close: %w", err)
	}
	return nil
}

func (p *LoginPage) EmailHighlighted() error {
	return p.env.Check.Highlighted(p.EmailInput(), "email input")
}

func (p *LoginPage) PasswordHighlighted() error {
	return p.env.Check.Highlighted(p.PasswordInput(), "password input")
}

func (p *LoginPage) EmailNotHighlighted() error {
	return p.env.Check.NotHighlighted(p.EmailInput(), "email input")
}

func (p *LoginPage) PasswordNotHighlighted() error {
	return p.env.Check.NotHighlighted(p.PasswordInput(), "password input")
}

// LogIn fills both fields and submits the form
func (p *LoginPage) LogIn(email, password string) error {
	if err := p.FillEmail(email); err != nil {
		return err
	}
	if err := p.FillPassword(password); err != nil {
		return err
	}
	return p.ClickLogin()
}
