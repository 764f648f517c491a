package pages

import (
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/rentzila/e2e/internal/fixtures"
	"github.com/rentzila/e2e/internal/locator"
)

// unitListSettle is how long the card list is given to re-render after the count appears
const unitListSettle = time.Second

// ProductsPage is the catalogue with its filters and unit cards
type ProductsPage struct {
	env Env
}

// NewProductsPage creates a ProductsPage
func NewProductsPage(env Env) *ProductsPage {
	return &ProductsPage{env: env}
}

// IsOpen waits until the catalogue has loaded
func (p *ProductsPage) IsOpen() error {
	if err := p.env.Page.WaitForURL("**/products/**", playwright.PageWaitForURLOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
	}); err != nil {
		return fmt.Errorf("wait for products page: %w", err)
	}
	return nil
}

func (p *ProductsPage) UnitCount() playwright.Locator {
	return p.env.Find.CSS(locator.ClassContains("MapPagination_count", "h1"))
}

func (p *ProductsPage) Checkbox(name string) playwright.Locator {
	return p.env.Find.Role(*playwright.AriaRoleCheckbox, name)
}

func (p *ProductsPage) ServicesExpandButton() playwright.Locator {
	return p.env.Find.TestID("filterCaption").Last()
}

func (p *ProductsPage) FilterContainer() playwright.Locator {
	return p.env.Find.ClassFragment("ResetFilters_container")
}

func (p *ProductsPage) ServiceWrapper() playwright.Locator {
	return p.env.Find.ClassFragment("Services_wrapper")
}

// SelectedFilters lists the applied filter chips
func (p *ProductsPage) SelectedFilters() ([]playwright.Locator, error) {
	return all(p.env.Find.Within(p.FilterContainer()).ClassFragment("ResetFilters_selectedCategory"), "selected filters")
}

// ExpandCheckboxLists opens the services filter and every collapsed category in it
func (p *ProductsPage) ExpandCheckboxLists() error {
	caption := p.ServicesExpandButton()
	if err := waitVisible(caption, "services filter caption"); err != nil {
		return err
	}
	collapsed, err := hasClass(caption, "services filter caption", "FilterCaption_rotate")
	if err != nil {
		return err
	}
	if collapsed {
		if err := click(caption, "services filter caption"); err != nil {
			return err
		}
	}
	if err := waitVisible(p.ServiceWrapper(), "services filter"); err != nil {
		return err
	}

	arrows, err := all(p.env.Find.TestID("rightArrow"), "service category arrows")
	if err != nil {
		return err
	}
	for _, arrow := range arrows {
		if err := waitVisible(arrow, "service category arrow"); err != nil {
			return err
		}
		open, err := hasClass(arrow, "service category arrow", "ServiceCategory_clicked")
		if err != nil {
			return err
		}
		if !open {
			if err := click(arrow, "service category arrow"); err != nil {
				return err
			}
		}
	}
	return nil
}

// UnitList waits for the result count and returns the unit cards on the page
func (p *ProductsPage) UnitList() ([]playwright.Locator, error) {
	if err := waitVisible(p.UnitCount(), "unit count"); err != nil {
		return nil, err
	}
	p.env.Page.WaitForTimeout(float64(unitListSettle.Milliseconds()))
	container := p.env.Find.ClassFragment("MapPagination_units_container")
	return all(p.env.Find.Within(container).TestID("cardWrapper"), "unit cards")
}

// UnitTitle reads the title of a unit card
func (p *ProductsPage) UnitTitle(unit playwright.Locator) (string, error) {
	return innerText(p.env.Find.Within(unit).ClassFragment("UnitCard_title"), "unit card title")
}

// IsUnitListEmpty reports whether list is empty and the count says nothing was found
func (p *ProductsPage) IsUnitListEmpty(list []playwright.Locator) (bool, error) {
	if len(list) != 0 {
		return false, nil
	}
	text, err := innerText(p.UnitCount(), "unit count")
	if err != nil {
		return false, err
	}
	return strings.Contains(text, fixtures.Main.EmptyUnitListText), nil
}

// HasServiceFilter reports whether an applied filter mentions title
func (p *ProductsPage) HasServiceFilter(title string) (bool, error) {
	return p.hasFilter(title)
}

// HasEquipmentFilter reports whether the filter the catalogue shows for
// equipment title is applied
func (p *ProductsPage) HasEquipmentFilter(title string) (bool, error) {
	return p.hasFilter(fixtures.Products.EquipmentFilter(title))
}

func (p *ProductsPage) hasFilter(text string) (bool, error) {
	if err := waitVisible(p.FilterContainer(), "filter container"); err != nil {
		return false, err
	}
	filters, err := p.SelectedFilters()
	if err != nil {
		return false, err
	}
	for _, filter := range filters {
		if err := waitVisible(filter, "selected filter"); err != nil {
			return false, err
		}
		name, err := innerText(filter, "selected filter")
		if err != nil {
			return false, err
		}
		if strings.Contains(name, text) {
			return true, nil
		}
	}
	return false, nil
}
