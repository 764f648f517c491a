package pages

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/rentzila/e2e/internal/check"
	"github.com/rentzila/e2e/internal/fixtures"
	"github.com/rentzila/e2e/internal/locator"
)

// UnitPage is the detail page of one listing
type UnitPage struct {
	env Env
}

// NewUnitPage creates a UnitPage
func NewUnitPage(env Env) *UnitPage {
	return &UnitPage{env: env}
}

func (p *UnitPage) Title() playwright.Locator {
	return p.env.Find.CSS(locator.ClassContains("UnitName_name", "h1"))
}

func (p *UnitPage) ServiceCharacteristics() playwright.Locator {
	return p.env.Find.ClassFragment("UnitCharacteristics_services").First()
}

func (p *UnitPage) EquipmentCharacteristics() playwright.Locator {
	return p.env.Find.ClassFragment("UnitCharacteristics_characteristics_wrapper")
}

// IsOpen waits for the page to load and checks its title contains title
func (p *UnitPage) IsOpen(title string) error {
	if err := p.env.Page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateLoad,
	}); err != nil {
		return fmt.Errorf("wait for unit page: %w", err)
	}
	got, err := innerText(p.Title(), "unit title")
	if err != nil {
		return err
	}
	if !strings.Contains(got, title) {
		return &check.Failure{
			Kind:    check.KindMismatch,
			Subject: "unit title",
			Err:     fmt.Errorf("%q does not contain %q", got, title),
		}
	}
	return nil
}

// ContainsServiceCharacteristic checks the services block lists c
func (p *UnitPage) ContainsServiceCharacteristic(c string) error {
	block := p.ServiceCharacteristics()
	if err := waitVisible(block, "service characteristics"); err != nil {
		return err
	}
	if err := p.env.Check.ContainsText(block, "service characteristics", fixtures.Products.ServiceCharacteristicsHeading); err != nil {
		return err
	}
	return p.env.Check.ContainsText(block, "service characteristics", c)
}

// ContainsEquipmentCharacteristic checks the characteristics block shows
// what the catalogue maps equipment c to
func (p *UnitPage) ContainsEquipmentCharacteristic(c string) error {
	block := p.EquipmentCharacteristics()
	if err := waitVisible(block, "equipment characteristics"); err != nil {
		return err
	}
	if err := p.env.Check.ContainsText(block, "equipment characteristics", fixtures.Products.EquipmentCharacteristicsHeading); err != nil {
		return err
	}
	return p.env.Check.ContainsText(block, "equipment characteristics", fixtures.Products.EquipmentCharacteristic(c))
}
