package pages_test

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentzila/e2e/internal/fixtures"
	"github.com/rentzila/e2e/internal/pages"
	"github.com/rentzila/e2e/internal/random"
)

// Scenario: Selecting a service from the search results
//
//	Given the services tab
//	When a random letter is searched and a suggestion is clicked
//	Then the selected services heading appears and lists the suggestion
//	And the suggestion shows the check icon
func TestServiceTab_SelectService(t *testing.T) {
	env := openFixture(t, "service.html", firstSource{}, nil)
	tab := pages.NewServiceTab(env)

	name, err := tab.SelectService()
	require.NoError(t, err)
	assert.NotEmpty(t, name)

	item := tab.DropdownItems().Filter(playwright.LocatorFilterOptions{HasText: name}).First()
	require.NoError(t, env.Check.Visible(tab.CheckIcon(item), "check icon"))
	require.NoError(t, env.Check.Count(tab.PlusIcon(item), "plus icon", 0))

	contains, err := tab.ContainsService(name + " ")
	require.NoError(t, err)
	assert.False(t, contains)
}

func TestServiceTab_SelectServiceNoMatches(t *testing.T) {
	env := openFixture(t, "service.html", lastSource{}, nil)
	tab := pages.NewServiceTab(env)

	// no service contains "z", so only the create button is offered
	_, err := tab.SelectService()
	require.Error(t, err)
	assert.ErrorIs(t, err, random.ErrNoOptions)
}

// Scenario: Creating and removing a custom service
//
//	Given a query that matches no service
//	When the create button is clicked
//	Then the query is listed as a selected service
//	When its remove button is clicked
//	Then no service is selected
func TestServiceTab_CreateAndRemove(t *testing.T) {
	env := openFixture(t, "service.html", firstSource{}, nil)
	tab := pages.NewServiceTab(env)
	query := "Фрезерування"

	require.NoError(t, tab.FillInput(query))
	require.NoError(t, env.Check.Text(tab.CreateButton(), "create service button", fixtures.Service.CreateButtonText))
	require.NoError(t, env.Check.Visible(tab.CreateButtonPlusIcon(), "create button icon"))
	require.NoError(t, tab.ClickCreateButton())

	contains, err := tab.ContainsService(query)
	require.NoError(t, err)
	assert.True(t, contains)

	require.NoError(t, tab.ClickRemove(tab.SelectedServices().First()))
	require.NoError(t, env.Check.Count(tab.SelectedServices(), "selected services", 0))

	require.NoError(t, tab.ClearServiceInput())
	require.NoError(t, env.Check.Hidden(tab.Dropdown(), "service dropdown"))
	require.NoError(t, env.Check.Visible(tab.LoopIcon(), "loop icon"))
}
