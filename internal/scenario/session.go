// Package scenario bundles the page objects of one browser session and the
// multi-page flows the e2e tests start from.
package scenario

import (
	"log/slog"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/playwright-community/playwright-go"

	"github.com/rentzila/e2e/internal/apiclient"
	"github.com/rentzila/e2e/internal/browser"
	"github.com/rentzila/e2e/internal/check"
	"github.com/rentzila/e2e/internal/config"
	"github.com/rentzila/e2e/internal/pages"
	"github.com/rentzila/e2e/internal/random"
)

// Session is everything one scenario drives
type Session struct {
	Page   playwright.Page
	Env    pages.Env
	Check  *check.Checker
	Rand   *gofakeit.Faker
	API    *apiclient.Client
	Logger *slog.Logger

	Login       *pages.LoginPage
	Main        *pages.MainPage
	Profile     *pages.ProfilePage
	Products    *pages.ProductsPage
	Unit        *pages.UnitPage
	Wizard      *pages.Wizard
	GeneralInfo *pages.GeneralInfoTab
	Photo       *pages.PhotoTab
	Service     *pages.ServiceTab
	Price       *pages.PriceTab
	Contact     *pages.ContactTab
}

// New builds the page objects for bs. api may be nil when the scenario
// never talks to the backend.
func New(bs *browser.Session, cfg *config.SuiteConfig, api *apiclient.Client, logger *slog.Logger) *Session {
	checker := check.New(cfg.ActionTimeout)
	faker := random.New(cfg.Seed)
	env := pages.NewEnv(bs.Page, checker, faker, logger)

	return &Session{
		Page:   bs.Page,
		Env:    env,
		Check:  checker,
		Rand:   faker,
		API:    api,
		Logger: logger,

		Login:       pages.NewLoginPage(env),
		Main:        pages.NewMainPage(env),
		Profile:     pages.NewProfilePage(env),
		Products:    pages.NewProductsPage(env),
		Unit:        pages.NewUnitPage(env),
		Wizard:      pages.NewWizard(env),
		GeneralInfo: pages.NewGeneralInfoTab(env),
		Photo:       pages.NewPhotoTab(env),
		Service:     pages.NewServiceTab(env),
		Price:       pages.NewPriceTab(env),
		Contact:     pages.NewContactTab(env),
	}
}
