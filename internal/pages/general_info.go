package pages

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/rentzila/e2e/internal/check"
	"github.com/rentzila/e2e/internal/fixtures"
	"github.com/rentzila/e2e/internal/locator"
	"github.com/rentzila/e2e/internal/random"
)

// GeneralInfoTab is the first wizard tab
type GeneralInfoTab struct {
	env Env
}

// NewGeneralInfoTab creates a GeneralInfoTab
func NewGeneralInfoTab(env Env) *GeneralInfoTab {
	return &GeneralInfoTab{env: env}
}

func (t *GeneralInfoTab) AvatarIcon() playwright.Locator {
	return t.env.Find.Role(*playwright.AriaRoleImg, "Avatar").First()
}

func (t *GeneralInfoTab) MainTitle() playwright.Locator {
	return t.env.Find.ClassFragment("CreateEditFlowLayout_title")
}

// Category block

func (t *GeneralInfoTab) CategoryTitle() playwright.Locator {
	return t.env.Find.ClassFragment("CategorySelect_title")
}

func (t *GeneralInfoTab) CategoryButton() playwright.Locator {
	return t.env.Find.TestID("buttonDiv")
}

func (t *GeneralInfoTab) CategoryError() playwright.Locator {
	return t.env.Find.ClassFragment("CategorySelect_errorTextVisible")
}

func (t *GeneralInfoTab) CategoryArrow() playwright.Locator {
	return t.env.Find.AltText("Arrow-down")
}

func (t *GeneralInfoTab) CategoryPopup() playwright.Locator {
	return t.env.Find.TestID("categoryPopup")
}

func (t *GeneralInfoTab) popup() locator.Finder {
	return t.env.Find.Within(t.CategoryPopup())
}

func (t *GeneralInfoTab) PopupTitle() playwright.Locator {
	return t.popup().ClassFragment("CategoryPopup_title")
}

func (t *GeneralInfoTab) PopupCloseIcon() playwright.Locator {
	return t.popup().TestID("closeIcon")
}

// FirstColumn matches the top-level categories in the popup
func (t *GeneralInfoTab) FirstColumn() playwright.Locator {
	return t.env.Find.Within(t.popup().TestID("firstCategoryList")).ClassFragment("FirstCategoryList_content")
}

// SecondColumn matches the subcategories of the selected category
func (t *GeneralInfoTab) SecondColumn() playwright.Locator {
	return t.env.Find.Within(t.popup().ClassFragment("LevelCategoryList_wrapper").First()).ClassFragment("SecondCategory_wrapper_unit")
}

// ThirdColumn matches the items of the selected subcategory
func (t *GeneralInfoTab) ThirdColumn() playwright.Locator {
	return t.env.Find.Within(t.popup().ClassFragment("LevelCategoryList_wrapper").Last()).ClassFragment("ThirdCategory_wrapper_unit")
}

// Announcement and model inputs share one component; the announcement is first

func (t *GeneralInfoTab) AnnouncementTitle() playwright.Locator {
	return t.env.Find.ClassFragment("CustomInput_title").First()
}

func (t *GeneralInfoTab) AnnouncementInput() playwright.Locator {
	return t.env.Find.TestID("custom-input").First()
}

func (t *GeneralInfoTab) AnnouncementError() playwright.Locator {
	return t.env.Find.TestID("descriptionError").First()
}

func (t *GeneralInfoTab) ModelTitle() playwright.Locator {
	return t.env.Find.ClassFragment("CustomInput_title").Last()
}

func (t *GeneralInfoTab) ModelInput() playwright.Locator {
	return t.env.Find.TestID("custom-input").Last()
}

func (t *GeneralInfoTab) ModelError() playwright.Locator {
	return t.env.Find.TestID("descriptionError").Last()
}

// Manufacturer autocomplete

func (t *GeneralInfoTab) ManufacturerTitle() playwright.Locator {
	return t.env.Find.ClassFragment("SelectManufacturer_title")
}

func (t *GeneralInfoTab) ManufacturerInput() playwright.Locator {
	return t.env.Find.TestID("input-customSelectWithSearch")
}

// ManufacturerSelectDiv shows the chosen manufacturer
func (t *GeneralInfoTab) ManufacturerSelectDiv() playwright.Locator {
	return t.env.Find.TestID("div-service-customSelectWithSearch")
}

func (t *GeneralInfoTab) ManufacturerInputDiv() playwright.Locator {
	return t.env.Find.ClassFragment("CustomSelectWithSearch_searchResult")
}

func (t *GeneralInfoTab) ManufacturerCloseButton() playwright.Locator {
	return t.env.Find.TestID("closeButton")
}

func (t *GeneralInfoTab) ManufacturerLoopIcon() playwright.Locator {
	return t.env.Find.Within(t.env.Find.ClassFragment("CustomSelectWithSearch_searchInput")).Role(*playwright.AriaRoleImg, "")
}

func (t *GeneralInfoTab) ManufacturerDropdown() playwright.Locator {
	return t.env.Find.ClassFragment("CustomSelectWithSearch_searchedServicesCat_wrapper")
}

func (t *GeneralInfoTab) ManufacturerItems() playwright.Locator {
	return t.env.Find.Within(t.ManufacturerDropdown()).ClassFragment("CustomSelectWithSearch_flexForServices")
}

func (t *GeneralInfoTab) ManufacturerError() playwright.Locator {
	return t.env.Find.ClassFragment("CustomSelectWithSearch_errorTextVisible")
}

// Text areas

func (t *GeneralInfoTab) TechCharacteristicsTitle() playwright.Locator {
	return t.env.Find.ClassFragment("CustomTextAriaDescription_title").First()
}

func (t *GeneralInfoTab) TechCharacteristicsTextArea() playwright.Locator {
	return t.env.Find.TestID("textarea-customTextAriaDescription").First()
}

func (t *GeneralInfoTab) DescriptionTitle() playwright.Locator {
	return t.env.Find.ClassFragment("CustomTextAriaDescription_title").Last()
}

func (t *GeneralInfoTab) DescriptionTextArea() playwright.Locator {
	return t.env.Find.TestID("textarea-customTextAriaDescription").Last()
}

// Address block and map popup

func (t *GeneralInfoTab) AddressTitle() playwright.Locator {
	return t.env.Find.ClassFragment("AddressSelectionBlock_title")
}

func (t *GeneralInfoTab) AddressLabel() playwright.Locator {
	return t.env.Find.TestID("mapLabel")
}

func (t *GeneralInfoTab) AddressButton() playwright.Locator {
	return t.env.Find.Role(*playwright.AriaRoleButton, "Вибрати на мапі")
}

func (t *GeneralInfoTab) AddressError() playwright.Locator {
	return t.env.Find.ClassFragment("AddressSelectionBlock_errorTextVisible")
}

func (t *GeneralInfoTab) MapPopup() playwright.Locator {
	return t.env.Find.TestID("div-mapPopup")
}

func (t *GeneralInfoTab) MapPopupTitle() playwright.Locator {
	return t.env.Find.ClassFragment("MapPopup_title")
}

func (t *GeneralInfoTab) MapPopupClose() playwright.Locator {
	return t.env.Find.ClassFragment("MapPopup_icon")
}

func (t *GeneralInfoTab) MapAddressLine() playwright.Locator {
	return t.env.Find.TestID("address")
}

func (t *GeneralInfoTab) Map() playwright.Locator {
	return t.env.Find.CSS("#map")
}

func (t *GeneralInfoTab) MapApproveButton() playwright.Locator {
	return t.env.Find.Role(*playwright.AriaRoleButton, "Підтвердити вибір")
}

// Clicks and input

func (t *GeneralInfoTab) ClickCategoryButton() error {
	return click(t.CategoryButton(), "category button")
}

func (t *GeneralInfoTab) ClickPopupClose() error {
	return click(t.PopupCloseIcon(), "category popup close icon")
}

// ClickAvatarIcon clicks the avatar behind the popup overlay
func (t *GeneralInfoTab) ClickAvatarIcon() error {
	return click(t.AvatarIcon(), "avatar icon", playwright.LocatorClickOptions{Force: playwright.Bool(true)})
}

func (t *GeneralInfoTab) ClickManufacturerClose() error {
	return click(t.ManufacturerCloseButton(), "manufacturer close button")
}

func (t *GeneralInfoTab) ClickAddressButton() error {
	return click(t.AddressButton(), "address button")
}

func (t *GeneralInfoTab) ClickMapApprove() error {
	return click(t.MapApproveButton(), "map approve button")
}

func (t *GeneralInfoTab) ClickMapClose() error {
	return click(t.MapPopupClose(), "map popup close button")
}

func (t *GeneralInfoTab) FillAnnouncement(text string) error {
	return fill(t.AnnouncementInput(), "announcement input", text)
}

func (t *GeneralInfoTab) FillManufacturer(text string) error {
	return fill(t.ManufacturerInput(), "manufacturer input", text)
}

func (t *GeneralInfoTab) FillModel(text string) error {
	return fill(t.ModelInput(), "model input", text)
}

func (t *GeneralInfoTab) FillTechCharacteristics(text string) error {
	return fill(t.TechCharacteristicsTextArea(), "technical characteristics", text)
}

func (t *GeneralInfoTab) FillDescription(text string) error {
	return fill(t.DescriptionTextArea(), "description", text)
}

func (t *GeneralInfoTab) ClearAnnouncement() error {
	return clearInput(t.AnnouncementInput(), "announcement input")
}

func (t *GeneralInfoTab) ClearManufacturer() error {
	return clearInput(t.ManufacturerInput(), "manufacturer input")
}

func (t *GeneralInfoTab) ClearModel() error {
	return clearInput(t.ModelInput(), "model input")
}

func (t *GeneralInfoTab) ClearTechCharacteristics() error {
	return clearInput(t.TechCharacteristicsTextArea(), "technical characteristics")
}

func (t *GeneralInfoTab) ClearDescription() error {
	return clearInput(t.DescriptionTextArea(), "description")
}

// Validation state

func (t *GeneralInfoTab) CategoryErrorIsRed() error {
	return t.env.Check.ErrorColored(t.CategoryError(), "category error")
}

func (t *GeneralInfoTab) CategoryButtonHighlighted() error {
	return t.env.Check.Highlighted(t.CategoryButton(), "category button")
}

func (t *GeneralInfoTab) AnnouncementErrorIsRed() error {
	return t.env.Check.ErrorColored(t.AnnouncementError(), "announcement error")
}

func (t *GeneralInfoTab) AnnouncementHighlighted() error {
	return t.env.Check.Highlighted(t.AnnouncementInput(), "announcement input")
}

// AnnouncementNotHighlighted checks the input is back to the neutral border
func (t *GeneralInfoTab) AnnouncementNotHighlighted() error {
	return t.env.Check.NeutralBordered(t.AnnouncementInput(), "announcement input")
}

func (t *GeneralInfoTab) ManufacturerErrorIsRed() error {
	return t.env.Check.ErrorColored(t.ManufacturerError(), "manufacturer error")
}

func (t *GeneralInfoTab) ManufacturerHighlighted() error {
	return t.env.Check.Highlighted(t.ManufacturerInputDiv(), "manufacturer input")
}

func (t *GeneralInfoTab) ModelErrorIsRed() error {
	return t.env.Check.ErrorColored(t.ModelError(), "model error")
}

func (t *GeneralInfoTab) ModelHighlighted() error {
	return t.env.Check.Highlighted(t.ModelInput(), "model input")
}

func (t *GeneralInfoTab) AddressErrorIsRed() error {
	return t.env.Check.ErrorColored(t.AddressError(), "address error")
}

func (t *GeneralInfoTab) AddressLabelHighlighted() error {
	return t.env.Check.Highlighted(t.AddressLabel(), "address label")
}

// Workflows

// AcceptConfirmation runs action and accepts the "leave the page" confirm it raises
func (t *GeneralInfoTab) AcceptConfirmation(action func() error) error {
	return t.env.acceptDialog(action)
}

// pickColumn lists what column currently renders, clicks a random item and
// returns its text
func (t *GeneralInfoTab) pickColumn(column playwright.Locator, what string) (string, error) {
	if err := waitVisible(column.First(), what); err != nil {
		return "", err
	}
	items, err := all(column, what)
	if err != nil {
		return "", err
	}
	item, text, err := t.env.pickVisible(items, what)
	if err != nil {
		return "", err
	}
	if err := click(item, what); err != nil {
		return "", err
	}
	return text, nil
}

// SelectCategory walks the category popup down to a random leaf and checks
// the trigger then shows it. It returns the leaf in lower case.
func (t *GeneralInfoTab) SelectCategory() (string, error) {
	if err := t.ClickCategoryButton(); err != nil {
		return "", err
	}
	if err := t.env.Check.Visible(t.CategoryPopup(), "category popup"); err != nil {
		return "", err
	}

	first, err := t.pickColumn(t.FirstColumn(), "first level category")
	if err != nil {
		return "", err
	}
	second, err := t.pickColumn(t.SecondColumn(), "second level category")
	if err != nil {
		return "", err
	}
	leaf, err := t.pickColumn(t.ThirdColumn(), "third level category")
	if err != nil {
		return "", err
	}
	leaf = strings.ToLower(leaf)
	t.env.Logger.Debug("category selected", "category", first, "subcategory", second, "item", leaf)

	if err := t.env.Check.Hidden(t.CategoryPopup(), "category popup"); err != nil {
		return "", err
	}
	shown, err := innerText(t.CategoryButton(), "category button")
	if err != nil {
		return "", err
	}
	if strings.ToLower(shown) != leaf {
		return "", &check.Failure{
			Kind:    check.KindMismatch,
			Subject: "category button",
			Err:     fmt.Errorf("shows %q, want %q", shown, leaf),
		}
	}
	return leaf, nil
}

// CategoryColumns returns the labels each popup column currently renders
func (t *GeneralInfoTab) CategoryColumns() ([3][]string, error) {
	var columns [3][]string
	for i, column := range []playwright.Locator{t.FirstColumn(), t.SecondColumn(), t.ThirdColumn()} {
		labels, err := column.AllInnerTexts()
		if err != nil {
			return columns, fmt.Errorf("read category column %d: %w", i+1, err)
		}
		for j := range labels {
			labels[j] = strings.TrimSpace(labels[j])
		}
		columns[i] = labels
	}
	return columns, nil
}

// SelectManufacturer searches by a random letter and picks one of the suggestions
func (t *GeneralInfoTab) SelectManufacturer() (string, error) {
	if err := t.FillManufacturer(random.Letter(t.env.Rand)); err != nil {
		return "", err
	}
	if err := t.env.Check.Visible(t.ManufacturerDropdown(), "manufacturer dropdown"); err != nil {
		return "", err
	}

	items, err := all(t.ManufacturerItems(), "manufacturer suggestions")
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", &check.Failure{Kind: check.KindTimeout, Subject: "manufacturer suggestions", Err: random.ErrNoOptions}
	}
	item, name, err := t.env.pickVisible(items, "manufacturer suggestion")
	if err != nil {
		return "", err
	}
	if err := click(item, "manufacturer suggestion"); err != nil {
		return "", err
	}

	if err := t.env.Check.Hidden(t.ManufacturerDropdown(), "manufacturer dropdown"); err != nil {
		return "", err
	}
	if err := t.env.Check.Text(t.ManufacturerSelectDiv(), "selected manufacturer", name); err != nil {
		return "", err
	}
	return name, nil
}

// SelectNewAddress clicks a random point on the map
func (t *GeneralInfoTab) SelectNewAddress() error {
	box, err := t.Map().BoundingBox()
	if err != nil {
		return fmt.Errorf("measure map: %w", err)
	}
	if box == nil {
		return &check.Failure{Kind: check.KindTimeout, Subject: "map", Err: fmt.Errorf("map is not rendered")}
	}
	x, y := random.PointIn(t.env.Rand, box.Width, box.Height)
	return click(t.Map(), "map", playwright.LocatorClickOptions{
		Position: &playwright.Position{X: x, Y: y},
	})
}

// ChooseAddress picks a new address on the map and approves it
func (t *GeneralInfoTab) ChooseAddress() (string, error) {
	if err := t.ClickAddressButton(); err != nil {
		return "", err
	}
	if err := t.env.Check.Visible(t.MapPopup(), "map popup"); err != nil {
		return "", err
	}
	if err := waitVisible(t.Map(), "map"); err != nil {
		return "", err
	}
	if err := t.env.Check.Text(t.MapAddressLine(), "map address", fixtures.GeneralInfo.DefaultAddress); err != nil {
		return "", err
	}

	if err := t.SelectNewAddress(); err != nil {
		return "", err
	}
	if err := t.env.Check.NotText(t.MapAddressLine(), "map address", fixtures.GeneralInfo.DefaultAddress); err != nil {
		return "", err
	}
	address, err := innerText(t.MapAddressLine(), "map address")
	if err != nil {
		return "", err
	}

	if err := t.ClickMapApprove(); err != nil {
		return "", err
	}
	if err := t.env.Check.Hidden(t.MapPopup(), "map popup"); err != nil {
		return "", err
	}
	if err := t.env.Check.Text(t.AddressLabel(), "address label", address); err != nil {
		return "", err
	}
	return address, nil
}
