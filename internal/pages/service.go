package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/rentzila/e2e/internal/check"
	"github.com/rentzila/e2e/internal/fixtures"
	"github.com/rentzila/e2e/internal/locator"
	"github.com/rentzila/e2e/internal/random"
)

// ServiceTab is the third wizard tab where services are searched and attached
type ServiceTab struct {
	env Env
}

// NewServiceTab creates a ServiceTab
func NewServiceTab(env Env) *ServiceTab {
	return &ServiceTab{env: env}
}

func (t *ServiceTab) Title() playwright.Locator {
	return t.env.Find.ClassFragment("ServicesUnitFlow_title")
}

func (t *ServiceTab) Paragraph() playwright.Locator {
	return t.env.Find.ClassFragment("ServicesUnitFlow_paragraph")
}

func (t *ServiceTab) Description() playwright.Locator {
	return t.env.Find.TestID("add-info")
}

func (t *ServiceTab) SelectDiv() playwright.Locator {
	return t.env.Find.TestID("searchResult")
}

func (t *ServiceTab) Input() playwright.Locator {
	return t.env.Find.Within(t.SelectDiv()).Role(*playwright.AriaRoleTextbox, "")
}

func (t *ServiceTab) LoopIcon() playwright.Locator {
	return t.env.Find.Within(t.SelectDiv()).Role(*playwright.AriaRoleImg, "")
}

func (t *ServiceTab) Dropdown() playwright.Locator {
	return t.env.Find.ClassFragment("ServicesUnitFlow_searchedServicesCatWrapper")
}

func (t *ServiceTab) dropdown() locator.Finder {
	return t.env.Find.Within(t.Dropdown())
}

func (t *ServiceTab) DropdownItems() playwright.Locator {
	return t.dropdown().TestID("searchItem-servicesUnitFlow")
}

// PlusIcon is shown on a suggestion that is not selected yet
func (t *ServiceTab) PlusIcon(item playwright.Locator) playwright.Locator {
	return t.env.Find.Within(item).TestID("unitServicesButton").Locator(locator.SVGSize(14, 14))
}

// CheckIcon is shown on a suggestion that is already selected
func (t *ServiceTab) CheckIcon(item playwright.Locator) playwright.Locator {
	return t.env.Find.Within(item).TestID("unitServicesButton").Locator(locator.SVGSize(15, 12))
}

func (t *ServiceTab) CreateButton() playwright.Locator {
	return t.dropdown().TestID("btn-addNewItem")
}

func (t *ServiceTab) CreateButtonPlusIcon() playwright.Locator {
	return t.env.Find.Within(t.CreateButton()).TestID("svg-plus-addNewItem")
}

func (t *ServiceTab) SelectedServicesDescription() playwright.Locator {
	return t.env.Find.Text(fixtures.Service.SelectedServicesHeading)
}

func (t *ServiceTab) SelectedServices() playwright.Locator {
	return t.env.Find.TestID("item-servicesUnitFlow")
}

func (t *ServiceTab) RemoveButton(item playwright.Locator) playwright.Locator {
	return t.env.Find.Within(item).TestID("remove-servicesUnitFlow")
}

// ContainsService reports whether a selected service is exactly name
func (t *ServiceTab) ContainsService(name string) (bool, error) {
	texts, err := t.SelectedServices().AllInnerTexts()
	if err != nil {
		return false, fmt.Errorf("read selected services: %w", err)
	}
	for _, text := range texts {
		if text == name {
			return true, nil
		}
	}
	return false, nil
}

func (t *ServiceTab) DescriptionIsRed() error {
	return t.env.Check.ErrorColored(t.Description(), "service description")
}

func (t *ServiceTab) InputHighlighted() error {
	return t.env.Check.Highlighted(t.SelectDiv(), "service input")
}

func (t *ServiceTab) FillInput(text string) error {
	return fill(t.Input(), "service input", text)
}

func (t *ServiceTab) ClearServiceInput() error {
	return clearInput(t.Input(), "service input")
}

func (t *ServiceTab) ClickCreateButton() error {
	return click(t.CreateButton(), "create service button")
}

func (t *ServiceTab) ClickRemove(item playwright.Locator) error {
	return click(t.RemoveButton(item), "remove service button")
}

// SelectService searches by a random letter, attaches one suggestion and
// returns its name
func (t *ServiceTab) SelectService() (string, error) {
	if err := t.FillInput(random.Letter(t.env.Rand)); err != nil {
		return "", err
	}
	if err := t.env.Check.Visible(t.Dropdown(), "service dropdown"); err != nil {
		return "", err
	}

	items, err := all(t.DropdownItems(), "service suggestions")
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", &check.Failure{Kind: check.KindTimeout, Subject: "service suggestions", Err: random.ErrNoOptions}
	}
	item, name, err := t.env.pickVisible(items, "service suggestion")
	if err != nil {
		return "", err
	}
	if err := click(item, "service suggestion"); err != nil {
		return "", err
	}

	heading := fixtures.Service.SelectedServicesHeading
	if err := t.env.Check.Visible(t.SelectedServicesDescription(), "selected services heading"); err != nil {
		return "", err
	}
	if err := t.env.Check.Text(t.SelectedServicesDescription(), "selected services heading", heading); err != nil {
		return "", err
	}
	found, err := t.ContainsService(name)
	if err != nil {
		return "", err
	}
	if !found {
		return "", &check.Failure{
			Kind:    check.KindMismatch,
			Subject: "selected services",
			Err:     fmt.Errorf("%q is not listed", name),
		}
	}
	return name, nil
}
