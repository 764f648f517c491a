package pages

import (
	"strconv"

	"github.com/playwright-community/playwright-go"

	"github.com/rentzila/e2e/internal/fixtures"
	"github.com/rentzila/e2e/internal/locator"
	"github.com/rentzila/e2e/internal/random"
)

// PriceTab is the fourth wizard tab
type PriceTab struct {
	env Env
}

// NewPriceTab creates a PriceTab
func NewPriceTab(env Env) *PriceTab {
	return &PriceTab{env: env}
}

func (t *PriceTab) Title() playwright.Locator {
	return t.env.Find.ClassFragment("PricesUnitFlow_title")
}

func (t *PriceTab) PaymentParagraph() playwright.Locator {
	return t.env.Find.ClassFragment("PricesUnitFlow_paragraph").First()
}

func (t *PriceTab) MinOrderParagraph() playwright.Locator {
	return t.env.Find.ClassFragment("PricesUnitFlow_paragraph").Nth(1)
}

// Minimum order row

func (t *PriceTab) MinOrderWrapper() playwright.Locator {
	return t.env.Find.ClassFragment("PricesUnitFlow_unitPriceWrapper")
}

func (t *PriceTab) minOrderInputBlock() locator.Finder {
	return t.env.Find.Within(t.env.Find.Within(t.MinOrderWrapper()).ClassFragment("RowUnitPrice_inputWithError"))
}

func (t *PriceTab) MinOrderDiv() playwright.Locator {
	return t.minOrderInputBlock().TestID("input_wrapper_RowUnitPrice")
}

func (t *PriceTab) MinOrderInput() playwright.Locator {
	return t.minOrderInputBlock().TestID("priceInput_RowUnitPrice")
}

func (t *PriceTab) MinOrderError() playwright.Locator {
	return t.minOrderInputBlock().ClassFragment("RowUnitPrice_error")
}

func (t *PriceTab) MinOrderCurrencyDiv() playwright.Locator {
	return t.env.Find.Within(t.MinOrderWrapper()).ClassFragment("RowUnitPrice_selectorsWrapper")
}

func (t *PriceTab) MinOrderCurrencyInput() playwright.Locator {
	return t.env.Find.Within(t.MinOrderCurrencyDiv()).TestID("priceInput_RowUnitPrice")
}

// Payment method select

func (t *PriceTab) PaymentSelect() playwright.Locator {
	return t.env.Find.TestID("div_CustomSelect")
}

func (t *PriceTab) PaymentDropdown() playwright.Locator {
	return t.env.Find.TestID("listItems-customSelect")
}

func (t *PriceTab) PaymentItems() playwright.Locator {
	return t.env.Find.Within(t.PaymentDropdown()).TestID("item-customSelect")
}

// Service prices

func (t *PriceTab) ServicePriceParagraph() playwright.Locator {
	return t.env.Find.TestID("div_servicePrices_PricesUnitFlow")
}

func (t *PriceTab) ServicePriceDescription() playwright.Locator {
	return t.env.Find.ClassFragment("PricesUnitFlow_description")
}

// ServicePriceRows lists one row per selected service
func (t *PriceTab) ServicePriceRows() ([]playwright.Locator, error) {
	return all(t.env.Find.ClassFragment("ServicePrice_wrapper"), "service price rows")
}

func (t *PriceTab) ServiceName(row playwright.Locator) playwright.Locator {
	return t.env.Find.Within(row).ClassFragment("ServicePrice_service_")
}

func (t *PriceTab) ServiceAddButton(row playwright.Locator) playwright.Locator {
	return t.env.Find.Within(row).TestID("addPriceButton_ServicePrice")
}

func (t *PriceTab) ServiceDeleteButton(row playwright.Locator) playwright.Locator {
	return t.env.Find.Within(row).TestID("div_removePrice_RowUnitPrice")
}

func (t *PriceTab) ServiceAddPlusIcon(row playwright.Locator) playwright.Locator {
	return t.env.Find.Within(row).Role(*playwright.AriaRoleImg, "")
}

func (t *PriceTab) serviceInputBlock(row playwright.Locator) locator.Finder {
	return t.env.Find.Within(t.env.Find.Within(row).ClassFragment("RowUnitPrice_inputWithError"))
}

func (t *PriceTab) ServicePriceDiv(row playwright.Locator) playwright.Locator {
	return t.serviceInputBlock(row).TestID("input_wrapper_RowUnitPrice")
}

func (t *PriceTab) ServicePriceInput(row playwright.Locator) playwright.Locator {
	return t.serviceInputBlock(row).TestID("priceInput_RowUnitPrice")
}

func (t *PriceTab) serviceSelectors(row playwright.Locator) locator.Finder {
	return t.env.Find.Within(t.env.Find.Within(row).ClassFragment("RowUnitPrice_selectorsWrapper"))
}

func (t *PriceTab) ServiceCurrencyInput(row playwright.Locator) playwright.Locator {
	return t.serviceSelectors(row).TestID("priceInput_RowUnitPrice")
}

func (t *PriceTab) ServicePerUnitSelect(row playwright.Locator) playwright.Locator {
	return t.serviceSelectors(row).TestID("div_CustomSelect").First()
}

func (t *PriceTab) ServiceShiftSelect(row playwright.Locator) playwright.Locator {
	return t.serviceSelectors(row).TestID("div_CustomSelect").Last()
}

func (t *PriceTab) ServiceDropdown(row playwright.Locator) playwright.Locator {
	return t.env.Find.Within(row).TestID("listItems-customSelect")
}

func (t *PriceTab) ServiceDropdownItems(row playwright.Locator) playwright.Locator {
	return t.env.Find.Within(t.ServiceDropdown(row)).TestID("item-customSelect")
}

// Validation state

func (t *PriceTab) MinOrderHighlighted() error {
	return t.env.Check.Highlighted(t.MinOrderDiv(), "minimum order input")
}

func (t *PriceTab) MinOrderNotHighlighted() error {
	return t.env.Check.NotHighlighted(t.MinOrderDiv(), "minimum order input")
}

func (t *PriceTab) MinOrderErrorIsRed() error {
	return t.env.Check.ErrorColored(t.MinOrderError(), "minimum order error")
}

// Actions

func (t *PriceTab) ClickPaymentSelect() error {
	return click(t.PaymentSelect(), "payment method select")
}

func (t *PriceTab) ClickServiceAdd(row playwright.Locator) error {
	return click(t.ServiceAddButton(row), "add service price button")
}

func (t *PriceTab) ClickServiceDelete(row playwright.Locator) error {
	return click(t.ServiceDeleteButton(row), "delete service price button")
}

func (t *PriceTab) ClickServicePerUnit(row playwright.Locator) error {
	return click(t.ServicePerUnitSelect(row), "per unit select")
}

func (t *PriceTab) ClickServiceShift(row playwright.Locator) error {
	return click(t.ServiceShiftSelect(row), "shift select")
}

func (t *PriceTab) FillMinOrder(text string) error {
	return fill(t.MinOrderInput(), "minimum order input", text)
}

func (t *PriceTab) FillServicePrice(row playwright.Locator, text string) error {
	return fill(t.ServicePriceInput(row), "service price input", text)
}

func (t *PriceTab) ClearMinOrder() error {
	return clearInput(t.MinOrderInput(), "minimum order input")
}

func (t *PriceTab) ClearServicePrice(row playwright.Locator) error {
	return clearInput(t.ServicePriceInput(row), "service price input")
}

// SelectServicePrice picks a random payment method and fills a valid
// minimum order. It returns the method and the price.
func (t *PriceTab) SelectServicePrice() (method, price string, err error) {
	if err := t.ClickPaymentSelect(); err != nil {
		return "", "", err
	}
	if err := t.env.Check.Visible(t.PaymentDropdown(), "payment method dropdown"); err != nil {
		return "", "", err
	}
	items, err := all(t.PaymentItems(), "payment methods")
	if err != nil {
		return "", "", err
	}
	names := fixtures.Price.PaymentMethods
	if len(items) < len(names) {
		names = names[:len(items)]
	}
	i, err := random.Index(t.env.Rand, len(names))
	if err != nil {
		return "", "", err
	}
	method = names[i]
	if err := click(items[i], "payment method "+method); err != nil {
		return "", "", err
	}
	if err := t.env.Check.Hidden(t.PaymentDropdown(), "payment method dropdown"); err != nil {
		return "", "", err
	}
	if err := t.env.Check.Text(t.PaymentSelect(), "payment method select", method); err != nil {
		return "", "", err
	}

	if err := t.env.Check.Visible(t.MinOrderDiv(), "minimum order input"); err != nil {
		return "", "", err
	}
	if err := t.env.Check.Attribute(t.MinOrderInput(), "minimum order input", "placeholder", fixtures.Price.MinOrderPlaceholder); err != nil {
		return "", "", err
	}
	price = strconv.Itoa(random.IntBetween(t.env.Rand, fixtures.Price.MinOrderMin, fixtures.Price.MinOrderMax))
	if err := t.FillMinOrder(price); err != nil {
		return "", "", err
	}
	if err := t.env.Check.Value(t.MinOrderInput(), "minimum order input", price); err != nil {
		return "", "", err
	}
	return method, price, nil
}
