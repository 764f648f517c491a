package pages

import "github.com/playwright-community/playwright-go"

// ContactTab is the last wizard tab
type ContactTab struct {
	env Env
}

// NewContactTab creates a ContactTab
func NewContactTab(env Env) *ContactTab {
	return &ContactTab{env: env}
}

func (t *ContactTab) Title() playwright.Locator {
	return t.env.Find.ClassFragment("AuthContactCard_title")
}
