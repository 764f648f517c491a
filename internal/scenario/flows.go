package scenario

import (
	"context"
	"fmt"

	"github.com/rentzila/e2e/internal/config"
	"github.com/rentzila/e2e/internal/fixtures"
	"github.com/rentzila/e2e/internal/pages"
	"github.com/rentzila/e2e/internal/random"
)

// LogIn signs in from the landing page and waits for the profile icon
func (s *Session) LogIn(account config.Account) error {
	s.Logger.Debug("logging in", "email", account.Email)

	if err := s.Main.Open(); err != nil {
		return err
	}
	if err := s.Main.CloseTelegramPopup(); err != nil {
		return err
	}
	if err := s.Login.ClickEnter(); err != nil {
		return err
	}
	if err := s.Login.LogIn(account.Email, account.Password); err != nil {
		return err
	}
	if err := s.Login.WaitForAuthorizationFormHidden(); err != nil {
		return err
	}
	return s.Check.Visible(s.Login.ProfileIcon(), "profile icon")
}

// OpenCreateUnit starts the listing wizard from the landing page
func (s *Session) OpenCreateUnit() error {
	s.Logger.Debug("opening create unit")

	if err := s.Main.ClickAddAnnouncementButton(); err != nil {
		return err
	}
	return s.Wizard.IsOpen()
}

// AnnouncementName returns a random listing name within the allowed length
func (s *Session) AnnouncementName() string {
	limits := fixtures.GeneralInfo.Limits
	return random.Text(s.Rand, limits.AnnouncementMin, limits.AnnouncementMax)
}

// CompleteGeneralInfo fills every required field of the first tab, moves on
// and checks the photo tab is shown
func (s *Session) CompleteGeneralInfo() error {
	category, err := s.GeneralInfo.SelectCategory()
	if err != nil {
		return fmt.Errorf("select category: %w", err)
	}
	name := s.AnnouncementName()
	if err := s.GeneralInfo.FillAnnouncement(name); err != nil {
		return err
	}
	manufacturer, err := s.GeneralInfo.SelectManufacturer()
	if err != nil {
		return fmt.Errorf("select manufacturer: %w", err)
	}
	address, err := s.GeneralInfo.ChooseAddress()
	if err != nil {
		return fmt.Errorf("choose address: %w", err)
	}
	s.Logger.Debug("general info filled",
		"category", category, "name", name, "manufacturer", manufacturer, "address", address)

	if err := s.Wizard.ClickNext(); err != nil {
		return err
	}
	if err := s.Check.Text(s.Photo.Title(), "photo title", fixtures.Photo.Title); err != nil {
		return err
	}
	return s.Wizard.VerifyTabs(pages.StepPhotos)
}

// CompletePhotos uploads paths into consecutive slots, moves on and checks
// the services tab is shown
func (s *Session) CompletePhotos(paths []string) error {
	for i, path := range paths {
		blocks, err := s.Photo.ImageBlocks()
		if err != nil {
			return err
		}
		if i >= len(blocks) {
			return fmt.Errorf("no image slot left for %s", path)
		}
		if err := s.Photo.AddImage(blocks[i], path); err != nil {
			return err
		}
		if err := s.Check.Visible(s.Photo.UnitImage(blocks[i]), "uploaded image"); err != nil {
			return err
		}
	}
	s.Logger.Debug("photos uploaded", "count", len(paths))

	if err := s.Wizard.ClickNext(); err != nil {
		return err
	}
	if err := s.Check.Text(s.Service.Title(), "service title", fixtures.Service.Title); err != nil {
		return err
	}
	return s.Wizard.VerifyTabs(pages.StepServices)
}

// CompleteServices attaches a random service, moves on and checks the price
// tab is shown. It returns the service name.
func (s *Session) CompleteServices() (string, error) {
	service, err := s.Service.SelectService()
	if err != nil {
		return "", fmt.Errorf("select service: %w", err)
	}
	s.Logger.Debug("service selected", "service", service)

	if err := s.Wizard.ClickNext(); err != nil {
		return "", err
	}
	if err := s.Check.Text(s.Price.Title(), "price title", fixtures.Price.Title); err != nil {
		return "", err
	}
	if err := s.Wizard.VerifyTabs(pages.StepPrice); err != nil {
		return "", err
	}
	return service, nil
}

// CompletePrice picks a payment method and minimum order, moves on and
// checks the contacts tab is shown
func (s *Session) CompletePrice() error {
	method, price, err := s.Price.SelectServicePrice()
	if err != nil {
		return fmt.Errorf("select price: %w", err)
	}
	s.Logger.Debug("price filled", "method", method, "min_order", price)

	if err := s.Wizard.ClickNext(); err != nil {
		return err
	}
	if err := s.Check.Text(s.Contact.Title(), "contact title", fixtures.Price.ContactTitle); err != nil {
		return err
	}
	return s.Wizard.VerifyTabs(pages.StepContacts)
}

// BackcallExists reports whether the backend recorded a consultation request
func (s *Session) BackcallExists(ctx context.Context, name, phone string) (bool, error) {
	if s.API == nil {
		return false, fmt.Errorf("session has no API client")
	}
	return s.API.FindBackcall(ctx, name, phone)
}
