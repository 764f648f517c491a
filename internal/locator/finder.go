// Package locator resolves marketplace elements without waiting. Every query
// returns a lazy playwright.Locator that is re-resolved on each use.
package locator

import (
	"github.com/playwright-community/playwright-go"
)

// Finder is the set of element queries page objects are built from.
// Queries never wait and never fail; zero matches yield an empty locator.
type Finder interface {
	// Role matches by accessible role and name; an empty name matches any
	Role(role playwright.AriaRole, name string) playwright.Locator
	// TestID matches the data-testid attribute
	TestID(id string) playwright.Locator
	// ClassFragment matches elements whose class contains fragment
	ClassFragment(fragment string) playwright.Locator
	// ClassPrefix matches elements whose class starts with prefix
	ClassPrefix(prefix string) playwright.Locator
	CSS(selector string) playwright.Locator
	Text(text string) playwright.Locator
	AltText(text string) playwright.Locator
	// Within scopes every query under parent
	Within(parent playwright.Locator) Finder
}

// ForPage returns a Finder rooted at the whole page
func ForPage(page playwright.Page) Finder {
	return pageFinder{page: page}
}

// Within returns a Finder rooted at parent
func Within(parent playwright.Locator) Finder {
	return scopedFinder{parent: parent}
}

type pageFinder struct {
	page playwright.Page
}

func (f pageFinder) Role(role playwright.AriaRole, name string) playwright.Locator {
	if name == "" {
		return f.page.GetByRole(role)
	}
	return f.page.GetByRole(role, playwright.PageGetByRoleOptions{Name: name})
}

func (f pageFinder) TestID(id string) playwright.Locator {
	return f.page.GetByTestId(id)
}

func (f pageFinder) ClassFragment(fragment string) playwright.Locator {
	return f.page.Locator(ClassContains(fragment))
}

func (f pageFinder) ClassPrefix(prefix string) playwright.Locator {
	return f.page.Locator(ClassStartsWith(prefix))
}

func (f pageFinder) CSS(selector string) playwright.Locator {
	return f.page.Locator(selector)
}

func (f pageFinder) Text(text string) playwright.Locator {
	return f.page.GetByText(text)
}

func (f pageFinder) AltText(text string) playwright.Locator {
	return f.page.GetByAltText(text)
}

func (f pageFinder) Within(parent playwright.Locator) Finder {
	return scopedFinder{parent: parent}
}

type scopedFinder struct {
	parent playwright.Locator
}

func (f scopedFinder) Role(role playwright.AriaRole, name string) playwright.Locator {
	if name == "" {
		return f.parent.GetByRole(role)
	}
	return f.parent.GetByRole(role, playwright.LocatorGetByRoleOptions{Name: name})
}

func (f scopedFinder) TestID(id string) playwright.Locator {
	return f.parent.GetByTestId(id)
}

func (f scopedFinder) ClassFragment(fragment string) playwright.Locator {
	return f.parent.Locator(ClassContains(fragment))
}

func (f scopedFinder) ClassPrefix(prefix string) playwright.Locator {
	return f.parent.Locator(ClassStartsWith(prefix))
}

func (f scopedFinder) CSS(selector string) playwright.Locator {
	return f.parent.Locator(selector)
}

func (f scopedFinder) Text(text string) playwright.Locator {
	return f.parent.GetByText(text)
}

func (f scopedFinder) AltText(text string) playwright.Locator {
	return f.parent.GetByAltText(text)
}

func (f scopedFinder) Within(parent playwright.Locator) Finder {
	return scopedFinder{parent: parent}
}
