package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/rentzila/e2e/internal/locator"
)

// MainPage is the landing page with its proposals, footer and consultation form
type MainPage struct {
	env Env
}

// NewMainPage creates a MainPage
func NewMainPage(env Env) *MainPage {
	return &MainPage{env: env}
}

// Open navigates to the landing page
func (p *MainPage) Open() error {
	if _, err := p.env.Page.Goto("/", playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
	}); err != nil {
		return fmt.Errorf("open main page: %w", err)
	}
	return nil
}

// IsOpen waits until the landing page has loaded
func (p *MainPage) IsOpen() error {
	if err := p.env.Page.WaitForURL("/", playwright.PageWaitForURLOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
	}); err != nil {
		return fmt.Errorf("wait for main page: %w", err)
	}
	return nil
}

func (p *MainPage) ServicesHeader() playwright.Locator {
	return p.env.Find.Role(*playwright.AriaRoleHeading, "Послуги")
}

func (p *MainPage) EquipmentHeader() playwright.Locator {
	return p.env.Find.Role(*playwright.AriaRoleHeading, "Спецтехніка")
}

func (p *MainPage) proposes(last bool) locator.Finder {
	container := p.env.Find.ClassFragment("RentzilaProposes_container")
	if last {
		return p.env.Find.Within(container.Last())
	}
	return p.env.Find.Within(container.First())
}

// CategoryButtons lists the service category tabs
func (p *MainPage) CategoryButtons() ([]playwright.Locator, error) {
	return all(p.proposes(false).ClassPrefix("RentzilaProposes_service"), "service categories")
}

// ProposeButtons lists the services of the selected category
func (p *MainPage) ProposeButtons() ([]playwright.Locator, error) {
	return all(p.proposes(false).ClassPrefix("RentzilaProposes_name"), "services")
}

// TabButtons lists the equipment category tabs
func (p *MainPage) TabButtons() ([]playwright.Locator, error) {
	return all(p.proposes(true).ClassPrefix("RentzilaProposes_service"), "equipment categories")
}

// EquipmentButtons lists the equipment of the selected tab
func (p *MainPage) EquipmentButtons() ([]playwright.Locator, error) {
	return all(p.proposes(true).ClassPrefix("RentzilaProposes_name"), "equipment")
}

func (p *MainPage) TelegramPopup() playwright.Locator {
	return p.env.Find.TestID("completeTenderRectangle")
}

func (p *MainPage) TelegramPopupClose() playwright.Locator {
	return p.env.Find.TestID("crossButton")
}

func (p *MainPage) Footer() playwright.Locator {
	return p.env.Find.CSS(locator.ClassContains("Footer_footer", "div"))
}

func (p *MainPage) footer() locator.Finder {
	return p.env.Find.Within(p.Footer())
}

func (p *MainPage) FooterLogo() playwright.Locator {
	return p.footer().CSS(locator.TestIDSelector("logo", "div")).Last()
}

func (p *MainPage) Logo() playwright.Locator {
	return p.env.Find.CSS(locator.TestIDSelector("logo", "div")).First()
}

func (p *MainPage) AboutUsLabel() playwright.Locator {
	return p.footer().TestID("content").Filter(playwright.LocatorFilterOptions{HasText: "Про нас"})
}

func (p *MainPage) ForBuyersLabel() playwright.Locator {
	return p.footer().ClassFragment("RentzilaForBuyers_title").Filter(playwright.LocatorFilterOptions{HasText: "Користувачам"})
}

func (p *MainPage) ContactsLabel() playwright.Locator {
	return p.footer().ClassFragment("RentzilaContacts_title").Filter(playwright.LocatorFilterOptions{HasText: "Контакти"})
}

// FooterLink finds a footer link by its visible name
func (p *MainPage) FooterLink(name string) playwright.Locator {
	return p.footer().Role(*playwright.AriaRoleLink, name)
}

func (p *MainPage) EmailLink() playwright.Locator {
	return p.footer().CSS(`[href^="mailto:"]`)
}

// Copyright finds the copyright line carrying text
func (p *MainPage) Copyright(text string) playwright.Locator {
	return p.footer().TestID("copyright").Filter(playwright.LocatorFilterOptions{HasText: text})
}

func (p *MainPage) ConsultationHeader() playwright.Locator {
	return p.env.Find.Role(*playwright.AriaRoleHeading, "У Вас залишилися питання?")
}

func (p *MainPage) OrderConsultationButton() playwright.Locator {
	return p.env.Find.Role(*playwright.AriaRoleButton, "Замовити консультацію")
}

func (p *MainPage) NameInput() playwright.Locator {
	return p.env.Find.Role(*playwright.AriaRoleTextbox, "Ім'я")
}

func (p *MainPage) PhoneInput() playwright.Locator {
	return p.env.Find.Role(*playwright.AriaRoleTextbox, "Номер телефону")
}

func (p *MainPage) NameError() playwright.Locator {
	return p.env.Find.ClassFragment("ConsultationForm_error_message").First()
}

func (p *MainPage) PhoneError() playwright.Locator {
	return p.env.Find.ClassFragment("ConsultationForm_error_message").Last()
}

func (p *MainPage) AddAnnouncementButton() playwright.Locator {
	return p.env.Find.Role(*playwright.AriaRoleButton, "Подати оголошення")
}

// CloseTelegramPopup dismisses the telegram banner if it is showing
func (p *MainPage) CloseTelegramPopup() error {
	visible, err := p.TelegramPopup().IsVisible()
	if err != nil {
		return fmt.Errorf("check telegram popup: %w", err)
	}
	if !visible {
		return nil
	}
	return click(p.TelegramPopupClose(), "telegram popup close button")
}

// ScrollToConsultationForm brings the consultation form into view
func (p *MainPage) ScrollToConsultationForm() error {
	if err := p.ConsultationHeader().ScrollIntoViewIfNeeded(); err != nil {
		return fmt.Errorf("scroll to consultation form: %w", err)
	}
	return p.env.Check.Visible(p.ConsultationHeader(), "consultation header")
}

// ScrollToFooter brings the footer into view and checks its logo is not a link
func (p *MainPage) ScrollToFooter() error {
	if err := p.Footer().ScrollIntoViewIfNeeded(); err != nil {
		return fmt.Errorf("scroll to footer: %w", err)
	}
	if err := p.env.Check.Visible(p.Footer(), "footer"); err != nil {
		return err
	}
	if err := p.env.Check.Visible(p.FooterLogo(), "footer logo"); err != nil {
		return err
	}
	return p.env.Check.NoAttribute(p.FooterLogo(), "footer logo", "href")
}

// ClickOrderConsultation waits for the submit button and clicks it
func (p *MainPage) ClickOrderConsultation() error {
	if err := waitVisible(p.OrderConsultationButton(), "order consultation button"); err != nil {
		return err
	}
	return click(p.OrderConsultationButton(), "order consultation button")
}

// ClickFooterLink follows a footer link by name
func (p *MainPage) ClickFooterLink(name string) error {
	return click(p.FooterLink(name), "footer link "+name)
}

// ClickLogo clicks the header logo and waits for the landing page
func (p *MainPage) ClickLogo() error {
	if err := click(p.Logo(), "logo"); err != nil {
		return err
	}
	return p.IsOpen()
}

func (p *MainPage) ClickAddAnnouncementButton() error {
	return click(p.AddAnnouncementButton(), "add announcement button")
}

func (p *MainPage) ClickPhoneInput() error {
	return click(p.PhoneInput(), "consultation phone input")
}

func (p *MainPage) FillName(value string) error {
	return fill(p.NameInput(), "consultation name input", value)
}

func (p *MainPage) FillPhone(value string) error {
	return fill(p.PhoneInput(), "consultation phone input", value)
}

func (p *MainPage) NameValue() (string, error) {
	return inputValue(p.NameInput(), "consultation name input")
}

func (p *MainPage) PhoneValue() (string, error) {
	return inputValue(p.PhoneInput(), "consultation phone input")
}

func (p *MainPage) NameHighlighted() error {
	return p.env.Check.Highlighted(p.NameInput(), "consultation name input")
}

func (p *MainPage) PhoneHighlighted() error {
	return p.env.Check.Highlighted(p.PhoneInput(), "consultation phone input")
}

func (p *MainPage) NameNotHighlighted() error {
	return p.env.Check.NotHighlighted(p.NameInput(), "consultation name input")
}

func (p *MainPage) PhoneNotHighlighted() error {
	return p.env.Check.NotHighlighted(p.PhoneInput(), "consultation phone input")
}

func (p *MainPage) NameHasError(message string) error {
	return p.env.Check.Text(p.NameError(), "consultation name error", message)
}

func (p *MainPage) PhoneHasError(message string) error {
	return p.env.Check.Text(p.PhoneError(), "consultation phone error", message)
}

// AcceptDialog runs action and returns once the alert it raised was accepted
func (p *MainPage) AcceptDialog(action func() error) error {
	return p.env.acceptDialog(action)
}
