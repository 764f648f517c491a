// Package fixtures holds the literals, category tree and upload files the
// scenarios assert against. The data mirrors what the marketplace renders and
// has to be kept in step with it by hand.
package fixtures

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed data/*.json
var dataFS embed.FS

// Subcategory is a second-level category with its leaf items
type Subcategory struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// Category is a top-level category
type Category struct {
	Name          string        `json:"name"`
	Subcategories []Subcategory `json:"subcategories"`
}

// CategoryTree is the three-level category popup content, in display order
type CategoryTree struct {
	Categories []Category `json:"categories"`
}

// Leaves returns every third-level item in display order
func (t CategoryTree) Leaves() []string {
	var leaves []string
	for _, c := range t.Categories {
		for _, s := range c.Subcategories {
			leaves = append(leaves, s.Items...)
		}
	}
	return leaves
}

// Validate checks the tree invariants
func (t CategoryTree) Validate() error {
	if len(t.Categories) == 0 {
		return fmt.Errorf("category tree is empty")
	}
	for i, c := range t.Categories {
		if c.Name == "" {
			return fmt.Errorf("category %d has no name", i)
		}
		if len(c.Subcategories) == 0 {
			return fmt.Errorf("category %q has no subcategories", c.Name)
		}
		for j, s := range c.Subcategories {
			if s.Name == "" {
				return fmt.Errorf("subcategory %d of %q has no name", j, c.Name)
			}
			if len(s.Items) == 0 {
				return fmt.Errorf("subcategory %q has no items", s.Name)
			}
			for k, item := range s.Items {
				if item == "" {
					return fmt.Errorf("item %d of %q is empty", k, s.Name)
				}
			}
		}
	}
	return nil
}

// TabTitle is the label of one wizard tab
type TabTitle struct {
	Number string `json:"number"`
	Name   string `json:"name"`
}

// GeneralInfoMessages are the validation texts of the general info tab
type GeneralInfoMessages struct {
	Required             string `json:"required"`
	AnnouncementTooShort string `json:"announcementTooShort"`
	AnnouncementTooLong  string `json:"announcementTooLong"`
	ModelTooLong         string `json:"modelTooLong"`
	AddressInvalid       string `json:"addressInvalid"`
	ManufacturerNotFound string `json:"manufacturerNotFound"`
}

// GeneralInfoLimits are the input length limits of the general info tab
type GeneralInfoLimits struct {
	AnnouncementMin int `json:"announcementMin"`
	AnnouncementMax int `json:"announcementMax"`
	ModelMax        int `json:"modelMax"`
	ManufacturerMax int `json:"manufacturerMax"`
	TextAreaMax     int `json:"textAreaMax"`
}

// GeneralInfoData is the general info tab fixture
type GeneralInfoData struct {
	TabTitles                 []TabTitle          `json:"tabTitles"`
	DefaultAddress            string              `json:"defaultAddress"`
	MainTitle                 string              `json:"mainTitle"`
	CategoryTitle             string              `json:"categoryTitle"`
	CategoryPlaceholder       string              `json:"categoryPlaceholder"`
	CategoryPopupTitle        string              `json:"categoryPopupTitle"`
	AnnouncementTitle         string              `json:"announcementTitle"`
	AnnouncementPlaceholder   string              `json:"announcementPlaceholder"`
	ManufacturerTitle         string              `json:"manufacturerTitle"`
	ManufacturerPlaceholder   string              `json:"manufacturerPlaceholder"`
	ModelTitle                string              `json:"modelTitle"`
	ModelPlaceholder          string              `json:"modelPlaceholder"`
	TechCharacteristicsTitle  string              `json:"techCharacteristicsTitle"`
	DescriptionTitle          string              `json:"descriptionTitle"`
	AddressTitle              string              `json:"addressTitle"`
	AddressPlaceholder        string              `json:"addressPlaceholder"`
	MapPopupTitle             string              `json:"mapPopupTitle"`
	Messages                  GeneralInfoMessages `json:"messages"`
	Limits                    GeneralInfoLimits   `json:"limits"`
	ManufacturerSearches      []string            `json:"manufacturerSearches"`
	ManufacturerInvalidValues []string            `json:"manufacturerInvalidValues"`
	ModelTooLongValues        []string            `json:"modelTooLongValues"`
	ModelStrippedValues       []string            `json:"modelStrippedValues"`
	ModelValidValue           string              `json:"modelValidValue"`
}

// ManufacturerNotFound renders the "not found" text for query
func (g GeneralInfoData) ManufacturerNotFound(query string) string {
	return fmt.Sprintf(g.Messages.ManufacturerNotFound, query)
}

// PhotoData is the photo tab fixture
type PhotoData struct {
	Title                      string `json:"title"`
	Paragraph                  string `json:"paragraph"`
	ImageUnitDescription       string `json:"imageUnitDescription"`
	PopupOkButtonText          string `json:"popupOkButtonText"`
	DuplicatePhotoErrorMessage string `json:"duplicatePhotoErrorMessage"`
	InvalidPhotoErrorMessage   string `json:"invalidPhotoErrorMessage"`
}

// ServiceData is the services tab fixture
type ServiceData struct {
	Title                   string `json:"title"`
	Paragraph               string `json:"paragraph"`
	Description             string `json:"description"`
	Placeholder             string `json:"placeholder"`
	SelectedServicesHeading string `json:"selectedServicesHeading"`
	CreateButtonText        string `json:"createButtonText"`
	NotFoundMessage         string `json:"notFoundMessage"`
	QueryMax                int    `json:"queryMax"`
	MultiSelectQuery        string `json:"multiSelectQuery"`
	SearchLower             string `json:"searchLower"`
	SearchUpper             string `json:"searchUpper"`
	ExistingLower           string `json:"existingLower"`
	ExistingUpper           string `json:"existingUpper"`
	ExistingPrefix          string `json:"existingPrefix"`
	SpecialSuffixBase       string `json:"specialSuffixBase"`
}

// NotFound renders the "service not found" text for query
func (s ServiceData) NotFound(query string) string {
	return fmt.Sprintf(s.NotFoundMessage, query)
}

// PriceData is the price tab fixture
type PriceData struct {
	Title                     string   `json:"title"`
	PaymentParagraph          string   `json:"paymentParagraph"`
	PaymentMethods            []string `json:"paymentMethods"`
	MinOrderParagraph         string   `json:"minOrderParagraph"`
	MinOrderPlaceholder       string   `json:"minOrderPlaceholder"`
	MinOrderMin               int      `json:"minOrderMin"`
	MinOrderMax               int      `json:"minOrderMax"`
	Currency                  string   `json:"currency"`
	ServicePriceParagraph     string   `json:"servicePriceParagraph"`
	ServicePriceDescription   string   `json:"servicePriceDescription"`
	AddButtonText             string   `json:"addButtonText"`
	PerUnitNames              []string `json:"perUnitNames"`
	ShiftNames                []string `json:"shiftNames"`
	ActualText                string   `json:"actualText"`
	ExpectedText              string   `json:"expectedText"`
	InvalidValues             []string `json:"invalidValues"`
	RequiredFieldErrorMessage string   `json:"requiredFieldErrorMessage"`
	MinPriceErrorMessage      string   `json:"minPriceErrorMessage"`
	ContactTitle              string   `json:"contactTitle"`
}

// LoginData is the authorization form fixture
type LoginData struct {
	EmptyFieldMessage       string   `json:"emptyFieldMessage"`
	InvalidFormatMessage    string   `json:"invalidFormatMessage"`
	WrongCredentialsMessage string   `json:"wrongCredentialsMessage"`
	PasswordRulesMessage    string   `json:"passwordRulesMessage"`
	VerifiedLabel           string   `json:"verifiedLabel"`
	InvalidPhones           []string `json:"invalidPhones"`
	InvalidEmails           []string `json:"invalidEmails"`
	InvalidPasswords        []string `json:"invalidPasswords"`
	WrongPassword           string   `json:"wrongPassword"`
}

// FooterLink is a footer link and the path it leads to
type FooterLink struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// ConsultationData is the consultation form fixture
type ConsultationData struct {
	Heading             string   `json:"heading"`
	Button              string   `json:"button"`
	PhonePrefix         string   `json:"phonePrefix"`
	ValidPhone          string   `json:"validPhone"`
	InvalidPhones       []string `json:"invalidPhones"`
	EmptyFieldMessage   string   `json:"emptyFieldMessage"`
	InvalidPhoneMessage string   `json:"invalidPhoneMessage"`
	NamePrefix          string   `json:"namePrefix"`
}

// MainData is the main page fixture
type MainData struct {
	FooterLinks       []FooterLink     `json:"footerLinks"`
	Copyright         string           `json:"copyright"`
	Consultation      ConsultationData `json:"consultation"`
	EmptyUnitListText string           `json:"emptyUnitListText"`
}

// ProductsData maps main page equipment names to what the catalogue shows
type ProductsData struct {
	EquipmentFilters                map[string]string `json:"equipmentFilters"`
	EquipmentCharacteristics        map[string]string `json:"equipmentCharacteristics"`
	ServiceCharacteristicsHeading   string            `json:"serviceCharacteristicsHeading"`
	EquipmentCharacteristicsHeading string            `json:"equipmentCharacteristicsHeading"`
}

// EquipmentFilter returns the filter label the catalogue shows for equipment
func (p ProductsData) EquipmentFilter(equipment string) string {
	if v, ok := p.EquipmentFilters[equipment]; ok {
		return v
	}
	return equipment
}

// EquipmentCharacteristic returns the characteristic a unit page shows for equipment
func (p ProductsData) EquipmentCharacteristic(equipment string) string {
	if v, ok := p.EquipmentCharacteristics[equipment]; ok {
		return v
	}
	return equipment
}

// Loaded fixtures
var (
	Categories  CategoryTree
	GeneralInfo GeneralInfoData
	Photo       PhotoData
	Service     ServiceData
	Price       PriceData
	Login       LoginData
	Main        MainData
	Products    ProductsData
)

func init() {
	mustDecode("categories.json", &Categories)
	mustDecode("general_info.json", &GeneralInfo)
	mustDecode("photo.json", &Photo)
	mustDecode("service.json", &Service)
	mustDecode("price.json", &Price)
	mustDecode("login.json", &Login)
	mustDecode("main.json", &Main)
	mustDecode("products.json", &Products)

	if err := Categories.Validate(); err != nil {
		panic(fmt.Sprintf("fixtures: categories.json: %v", err))
	}
}

// Decode parses the embedded fixture file name into v
func Decode(name string, v any) error {
	data, err := dataFS.ReadFile("data/" + name)
	if err != nil {
		return fmt.Errorf("failed to read fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse fixture %s: %w", name, err)
	}
	return nil
}

func mustDecode(name string, v any) {
	if err := Decode(name, v); err != nil {
		panic("fixtures: " + err.Error())
	}
}
