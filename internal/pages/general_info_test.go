package pages_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentzila/e2e/internal/fixtures"
	"github.com/rentzila/e2e/internal/pages"
	"github.com/rentzila/e2e/internal/random"
)

// Scenario: Selecting a category leaf
//
//	Given the category popup lists the fixture tree
//	When a random item is chosen in each of the three columns
//	Then the popup closes and the category button shows the chosen leaf
func TestGeneralInfoTab_SelectCategory(t *testing.T) {
	tests := []struct {
		name string
		src  random.Source
		want string
	}{
		{
			name: "first leaf",
			src:  firstSource{},
			want: fixtures.Categories.Categories[0].Subcategories[0].Items[0],
		},
		{
			name: "last leaf",
			src:  lastSource{},
			want: func() string {
				cats := fixtures.Categories.Categories
				subs := cats[len(cats)-1].Subcategories
				items := subs[len(subs)-1].Items
				return items[len(items)-1]
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := openFixture(t, "create_unit.html", tt.src, serveCategories)
			tab := pages.NewGeneralInfoTab(env)

			leaf, err := tab.SelectCategory()
			require.NoError(t, err)
			assert.Equal(t, strings.ToLower(tt.want), leaf)
		})
	}
}

// Scenario: Category columns follow the selection
//
//	Given the category popup is open
//	When the first category and its first subcategory are clicked
//	Then each column lists what the fixture tree holds for that path
//	And clicking the same subcategory again renders the same items
func TestGeneralInfoTab_CategoryColumns(t *testing.T) {
	env := openFixture(t, "create_unit.html", firstSource{}, serveCategories)
	tab := pages.NewGeneralInfoTab(env)

	require.NoError(t, tab.ClickCategoryButton())
	require.NoError(t, env.Check.Visible(tab.CategoryPopup(), "category popup"))
	require.NoError(t, tab.FirstColumn().First().Click())
	require.NoError(t, tab.SecondColumn().First().Click())

	category := fixtures.Categories.Categories[0]
	var names, subNames []string
	for _, c := range fixtures.Categories.Categories {
		names = append(names, c.Name)
	}
	for _, s := range category.Subcategories {
		subNames = append(subNames, s.Name)
	}

	columns, err := tab.CategoryColumns()
	require.NoError(t, err)
	assert.Equal(t, names, columns[0])
	assert.Equal(t, subNames, columns[1])
	assert.Equal(t, category.Subcategories[0].Items, columns[2])

	require.NoError(t, tab.SecondColumn().First().Click())
	again, err := tab.CategoryColumns()
	require.NoError(t, err)
	assert.Equal(t, columns, again)

	require.NoError(t, tab.ClickPopupClose())
	require.NoError(t, env.Check.Hidden(tab.CategoryPopup(), "category popup"))
}

func TestGeneralInfoTab_SelectManufacturer(t *testing.T) {
	env := openFixture(t, "create_unit.html", random.New(7), serveCategories)
	tab := pages.NewGeneralInfoTab(env)

	name, err := tab.SelectManufacturer()
	require.NoError(t, err)
	assert.NotEmpty(t, name)
	require.NoError(t, env.Check.Text(tab.ManufacturerSelectDiv(), "selected manufacturer", name))
}

func TestGeneralInfoTab_ManufacturerRequired(t *testing.T) {
	env := openFixture(t, "create_unit.html", firstSource{}, serveCategories)
	tab := pages.NewGeneralInfoTab(env)
	wizard := pages.NewWizard(env)

	require.NoError(t, wizard.ClickNext())
	require.NoError(t, tab.ManufacturerHighlighted())
}

// Scenario: Choosing an address on the map
//
//	Given the map popup shows the default address
//	When a random point on the map is clicked and approved
//	Then the address label shows the new address
func TestGeneralInfoTab_ChooseAddress(t *testing.T) {
	env := openFixture(t, "create_unit.html", random.New(11), serveCategories)
	tab := pages.NewGeneralInfoTab(env)

	address, err := tab.ChooseAddress()
	require.NoError(t, err)
	assert.NotEqual(t, fixtures.GeneralInfo.DefaultAddress, address)
	require.NoError(t, env.Check.Hidden(tab.MapPopup(), "map popup"))
}

func TestGeneralInfoTab_AcceptConfirmation(t *testing.T) {
	env := openFixture(t, "create_unit.html", firstSource{}, serveCategories)
	tab := pages.NewGeneralInfoTab(env)
	wizard := pages.NewWizard(env)

	require.NoError(t, tab.AcceptConfirmation(wizard.ClickPrev))
	require.NoError(t, env.Check.Text(env.Find.CSS("#status"), "status", "left"))
}

func TestGeneralInfoTab_TextAreas(t *testing.T) {
	env := openFixture(t, "create_unit.html", firstSource{}, serveCategories)
	tab := pages.NewGeneralInfoTab(env)

	require.NoError(t, tab.FillTechCharacteristics("вага 5 т"))
	require.NoError(t, tab.FillDescription("екскаватор у доброму стані"))
	require.NoError(t, env.Check.Value(env.Find.CSS("#characteristics"), "characteristics", "вага 5 т"))
	require.NoError(t, env.Check.Value(env.Find.CSS("#description"), "description", "екскаватор у доброму стані"))

	require.NoError(t, tab.ClearTechCharacteristics())
	require.NoError(t, env.Check.Value(tab.TechCharacteristicsTextArea(), "characteristics", ""))
	require.NoError(t, env.Check.Value(tab.DescriptionTextArea(), "description", "екскаватор у доброму стані"))

	require.NoError(t, tab.ClearDescription())
	require.NoError(t, env.Check.Value(tab.DescriptionTextArea(), "description", ""))
}

func TestWizard_VerifyTabs(t *testing.T) {
	env := openFixture(t, "create_unit.html", firstSource{}, serveCategories)
	wizard := pages.NewWizard(env)

	require.NoError(t, wizard.VerifyTabs(pages.StepGeneralInfo))
	assert.Error(t, wizard.VerifyTabs(pages.StepPhotos))
}

func TestWizard_VerifyTabs_LateRender(t *testing.T) {
	env := openFixture(t, "create_unit.html", firstSource{}, serveCategories)
	wizard := pages.NewWizard(env)

	_, err := env.Page.Evaluate(`() => {
		const strip = document.querySelector('[role="tablist"]');
		const parent = strip.parentNode;
		const next = strip.nextSibling;
		strip.remove();
		setTimeout(() => parent.insertBefore(strip, next), 300);
	}`)
	require.NoError(t, err)

	assert.Error(t, wizard.VerifyTabs(pages.StepPhotos))
	require.NoError(t, wizard.VerifyTabs(pages.StepGeneralInfo))
}

func TestStep_String(t *testing.T) {
	tests := []struct {
		step pages.Step
		want string
	}{
		{step: pages.StepGeneralInfo, want: "Основна інформація"},
		{step: pages.StepContacts, want: "Контакти"},
		{step: pages.Step(9), want: "Step(9)"},
		{step: pages.Step(-1), want: "Step(-1)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.step.String())
		})
	}
}
