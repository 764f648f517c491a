package pages

import (
	"fmt"
	"strconv"

	"github.com/playwright-community/playwright-go"

	"github.com/rentzila/e2e/internal/fixtures"
)

// Step is a tab of the listing wizard
type Step int

// Wizard tabs in display order
const (
	StepGeneralInfo Step = iota
	StepPhotos
	StepServices
	StepPrice
	StepContacts
)

// String returns the tab title shown in the wizard
func (s Step) String() string {
	if s < StepGeneralInfo || int(s) >= len(fixtures.GeneralInfo.TabTitles) {
		return "Step(" + strconv.Itoa(int(s)) + ")"
	}
	return fixtures.GeneralInfo.TabTitles[s].Name
}

// Wizard is the tab strip and navigation buttons shared by every wizard tab
type Wizard struct {
	env Env
}

// NewWizard creates a Wizard
func NewWizard(env Env) *Wizard {
	return &Wizard{env: env}
}

// IsOpen waits until the create-unit flow has loaded
func (w *Wizard) IsOpen() error {
	if err := w.env.Page.WaitForURL("**/create-unit/", playwright.PageWaitForURLOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
	}); err != nil {
		return fmt.Errorf("wait for create unit page: %w", err)
	}
	return nil
}

// PrevButton is "Скасувати" on the first tab and "Назад" after it
func (w *Wizard) PrevButton() playwright.Locator {
	return w.env.Find.TestID("prevButton")
}

func (w *Wizard) NextButton() playwright.Locator {
	return w.env.Find.TestID("nextButton")
}

// Tabs lists the wizard tabs
func (w *Wizard) Tabs() ([]playwright.Locator, error) {
	tablist := w.env.Find.Role(*playwright.AriaRoleTablist, "")
	return all(w.env.Find.Within(tablist).Role(*playwright.AriaRoleTab, ""), "wizard tabs")
}

func (w *Wizard) TabNumber(tab playwright.Locator) playwright.Locator {
	return w.env.Find.Within(tab).TestID("labelNumber")
}

func (w *Wizard) TabName(tab playwright.Locator) playwright.Locator {
	return w.env.Find.Within(tab).ClassFragment("CustomLabel_labelTitle")
}

// ClickNext force-clicks the next button
func (w *Wizard) ClickNext() error {
	return click(w.NextButton(), "next button", playwright.LocatorClickOptions{Force: playwright.Bool(true)})
}

func (w *Wizard) ClickPrev() error {
	return click(w.PrevButton(), "prev button")
}

// VerifyTabs checks number, title and selection of every tab with selected as the active one
func (w *Wizard) VerifyTabs(selected Step) error {
	titles := fixtures.GeneralInfo.TabTitles
	if err := w.env.Check.Count(w.env.Find.Role(*playwright.AriaRoleTab, ""), "wizard tabs", len(titles)); err != nil {
		return err
	}
	tabs, err := w.Tabs()
	if err != nil {
		return err
	}
	for i, tab := range tabs {
		if i >= len(titles) {
			break
		}
		subject := "wizard tab " + titles[i].Number
		if err := w.env.Check.Text(w.TabNumber(tab), subject+" number", titles[i].Number); err != nil {
			return err
		}
		if err := w.env.Check.Text(w.TabName(tab), subject+" name", titles[i].Name); err != nil {
			return err
		}
		want := strconv.FormatBool(Step(i) == selected)
		if err := w.env.Check.Attribute(tab, subject, "aria-selected", want); err != nil {
			return err
		}
	}
	return nil
}
